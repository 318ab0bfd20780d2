package hw

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/robotalks/tmc.go/pkg/l0/comm"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init loads the periph host drivers once.
func Init() error {
	initOnce.Do(func() {
		_, initErr = host.Init()
	})
	return initErr
}

// Pin implements comm.Line over a periph GPIO pin.
type Pin struct {
	IO gpio.PinIO
	// Pull is applied when the pin is an input. The line idles high so
	// it defaults to a pull-up.
	Pull gpio.Pull

	consumer string
}

// OpenPin finds a GPIO pin by name, e.g. "GPIO17".
func OpenPin(name string) (*Pin, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("unknown gpio %q", name)
	}
	return &Pin{IO: p, Pull: gpio.PullUp}, nil
}

// Request implements comm.Line.
func (p *Pin) Request(consumer string, dir comm.Direction) error {
	p.consumer = consumer
	return p.SetDirection(dir)
}

// SetDirection implements comm.Line. An output starts idle high.
func (p *Pin) SetDirection(dir comm.Direction) error {
	if dir == comm.Input {
		return p.IO.In(p.Pull, gpio.NoEdge)
	}
	return p.IO.Out(gpio.High)
}

// SetValue implements comm.Line.
func (p *Pin) SetValue(v bool) error {
	return p.IO.Out(gpio.Level(v))
}

// Value implements comm.Line.
func (p *Pin) Value() (bool, error) {
	return bool(p.IO.Read()), nil
}

// String returns the pin name and its consumer.
func (p *Pin) String() string {
	if p.consumer == "" {
		return p.IO.Name()
	}
	return p.IO.Name() + "(" + p.consumer + ")"
}
