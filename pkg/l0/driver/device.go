// Package driver provides register access to the ICs on a line.
package driver

import (
	"context"
	"fmt"
	"sync"

	"github.com/golang/glog"

	"github.com/robotalks/tmc.go/pkg/l0/comm"
	"github.com/robotalks/tmc.go/pkg/l0/regs"
)

// Device is one IC on a bus.
type Device struct {
	Codec comm.Codec

	node uint8
	regs *regs.Map
	bus  *comm.Bus
	lock sync.Mutex
}

// NewDevice creates a Device on a node.
func NewDevice(bus *comm.Bus, node uint8) *Device {
	return &Device{
		Codec: comm.DefaultCodec,
		node:  node,
		regs:  regs.New(),
		bus:   bus,
	}
}

// Node returns the node address.
func (d *Device) Node() uint8 {
	return d.node
}

// Registers returns the cached register map.
func (d *Device) Registers() *regs.Map {
	return d.regs
}

// Read reads a register from the IC.
func (d *Device) Read(ctx context.Context, name string) (uint32, error) {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.read(ctx, name)
}

func (d *Device) read(ctx context.Context, name string) (uint32, error) {
	def, err := d.regs.CheckRead(name)
	if err != nil {
		return 0, err
	}
	req := d.Codec.EncodeRead(d.node, def.Addr)
	d.bus.Trace(comm.TraceFrameBuilt, req)
	bits, err := d.bus.Exchange(ctx, req, comm.ReplyFrameBits)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", name, err)
	}
	reply, err := d.Codec.DecodeReply(bits)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", name, err)
	}
	if (reply.Node != d.node && reply.Node != comm.MasterAddr) || reply.Addr != def.Addr {
		return 0, &ReplyMismatchError{Node: d.node, Addr: def.Addr, Reply: reply}
	}
	return d.regs.ApplyRead(name, reply.Data)
}

// Write writes a register. It's not verified and never retried.
func (d *Device) Write(ctx context.Context, name string, value uint32) error {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.write(ctx, name, value)
}

func (d *Device) write(ctx context.Context, name string, value uint32) error {
	def, word, err := d.regs.PrepareWrite(name, value)
	if err != nil {
		return err
	}
	req := d.Codec.EncodeWrite(d.node, def.Addr, word)
	d.bus.Trace(comm.TraceFrameBuilt, req)
	if _, err := d.bus.Exchange(ctx, req, 0); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return d.regs.ApplyWrite(name, value&def.Mask)
}

// WriteVerified writes a register and checks the IC's write counter
// advanced by exactly one.
func (d *Device) WriteVerified(ctx context.Context, name string, value uint32) error {
	d.lock.Lock()
	defer d.lock.Unlock()
	if _, err := d.regs.ValidateWrite(name, value); err != nil {
		return err
	}
	before, err := d.read(ctx, "ifcnt")
	if err != nil {
		return err
	}
	if err := d.write(ctx, name, value); err != nil {
		return err
	}
	after, err := d.read(ctx, "ifcnt")
	if err != nil {
		return err
	}
	if uint8(after) != uint8(before)+1 {
		return &DeliveryError{Register: name, Before: uint8(before), After: uint8(after)}
	}
	return nil
}

// ApplyOverlay queues the values of an overlay for Sync.
func (d *Device) ApplyOverlay(o regs.Overlay, permissive bool) error {
	return d.regs.ApplyOverlay(o, permissive)
}

// Sync writes all pending registers in table order and stops at the first
// failure.
func (d *Device) Sync(ctx context.Context) error {
	d.lock.Lock()
	defer d.lock.Unlock()
	for _, reg := range d.regs.Pending() {
		if err := d.write(ctx, reg.Name, reg.Value); err != nil {
			return err
		}
		glog.V(2).Infof("node %d: %s = 0x%08x", d.node, reg.Name, reg.Value)
	}
	return nil
}
