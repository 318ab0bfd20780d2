package comm

import (
	"fmt"
	"runtime"
	"time"

	"periph.io/x/conn/v3/physic"
)

// Defaults for BitBang.
const (
	DefaultBaud       = 9600 * physic.Hertz
	DefaultTurnaround = 8
)

// BitBang drives frames bit by bit over a single Line.
type BitBang struct {
	Line  Line
	Clock Clock
	Baud  physic.Frequency
	// Turnaround is the number of bit intervals to wait before sampling a
	// reply, covering node processing and the direction switch.
	Turnaround int
	// RxSlack is how far sampling may fall behind before ErrTimeout.
	// Zero means one bit interval.
	RxSlack time.Duration
}

// NewBitBang creates a BitBang link with defaults.
func NewBitBang(line Line) *BitBang {
	return &BitBang{
		Line:       line,
		Clock:      RealClock{},
		Baud:       DefaultBaud,
		Turnaround: DefaultTurnaround,
	}
}

// Interval is the duration of one bit.
func (b *BitBang) Interval() time.Duration {
	baud := b.Baud
	if baud == 0 {
		baud = DefaultBaud
	}
	return baud.Period()
}

func (b *BitBang) clock() Clock {
	if b.Clock == nil {
		return RealClock{}
	}
	return b.Clock
}

// Transmit implements Link.
func (b *BitBang) Transmit(f Frame) (err error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err = b.Line.SetDirection(Output); err != nil {
		b.Line.SetDirection(Output)
		b.Line.SetValue(true)
		return fmt.Errorf("set direction out: %w", err)
	}
	clk, interval := b.clock(), b.Interval()
	start := clk.Now()
	for n := 0; n < f.Len; n++ {
		if err = b.Line.SetValue(f.Bit(n)); err != nil {
			b.Line.SetValue(true)
			return fmt.Errorf("bit %d of %d: %w", n, f.Len, err)
		}
		clk.SleepUntil(start.Add(time.Duration(n+1) * interval))
	}
	// stop condition: idle high for one interval.
	if err = b.Line.SetValue(true); err != nil {
		return fmt.Errorf("idle: %w", err)
	}
	clk.SleepUntil(start.Add(time.Duration(f.Len+1) * interval))
	return nil
}

// Receive implements Link.
func (b *BitBang) Receive(bits int) (reply uint64, err error) {
	if bits <= 0 || bits > 64 {
		return 0, ErrFrameLength
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err = b.Line.SetDirection(Input); err != nil {
		b.Line.SetDirection(Output)
		return 0, fmt.Errorf("set direction in: %w", err)
	}
	defer func() {
		if dirErr := b.Line.SetDirection(Output); dirErr != nil && err == nil {
			err = fmt.Errorf("set direction out: %w", dirErr)
		}
		b.Line.SetValue(true)
	}()

	clk, interval := b.clock(), b.Interval()
	slack := b.RxSlack
	if slack == 0 {
		slack = interval
	}
	start := clk.Now()
	first := start.Add(time.Duration(b.Turnaround) * interval)
	clk.SleepUntil(first)
	for n := 0; n < bits; n++ {
		slot := first.Add(time.Duration(n) * interval)
		clk.SleepUntil(slot)
		if clk.Now().Sub(slot) > slack {
			return 0, fmt.Errorf("bit %d of %d sampled late: %w", n, bits, ErrTimeout)
		}
		v, err := b.Line.Value()
		if err != nil {
			return 0, fmt.Errorf("bit %d of %d: %w", n, bits, err)
		}
		reply <<= 1
		if v {
			reply |= 1
		}
	}
	return reply, nil
}
