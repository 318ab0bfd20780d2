package comm

import (
	"time"
)

// Clock provides the time base for bit slots.
type Clock interface {
	Now() time.Time
	// SleepUntil returns at or after t.
	SleepUntil(t time.Time)
}

// RealClock sleeps for the coarse part of a wait and spins for the rest.
type RealClock struct {
	// SpinThreshold is the remaining duration below which it spins.
	SpinThreshold time.Duration
}

// DefaultSpinThreshold is used when SpinThreshold is zero.
const DefaultSpinThreshold = 2 * time.Millisecond

// Now implements Clock.
func (c RealClock) Now() time.Time {
	return time.Now()
}

// SleepUntil implements Clock.
func (c RealClock) SleepUntil(t time.Time) {
	spin := c.SpinThreshold
	if spin == 0 {
		spin = DefaultSpinThreshold
	}
	if d := time.Until(t); d > spin {
		time.Sleep(d - spin)
	}
	for time.Now().Before(t) {
	}
}
