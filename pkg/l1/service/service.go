// Package service exposes the devices of a line as L1 commands.
package service

import (
	"context"
	"fmt"

	"github.com/golang/glog"

	fx "github.com/robotalks/tmc.go/pkg/framework"
	"github.com/robotalks/tmc.go/pkg/l0/driver"
	"github.com/robotalks/tmc.go/pkg/l1"
	"github.com/robotalks/tmc.go/pkg/l1/msgs"
	pb "github.com/robotalks/tmc.go/pkg/proto/tmc/l1/v1"
)

// Service implements l1.CommandHandler over the devices of a line.
type Service struct {
	Devices *driver.Devices
	// Events receives RegisterChanged after successful writes.
	Events l1.Registrar
}

// New creates a Service.
func New(devices *driver.Devices) *Service {
	return &Service{Devices: devices}
}

func (s *Service) device(node uint32) (*driver.Device, error) {
	if node > 0xff {
		return nil, fmt.Errorf("node %d: %w", node, driver.ErrUnknownNode)
	}
	return s.Devices.Device(uint8(node))
}

// HandleCommand implements l1.CommandHandler.
func (s *Service) HandleCommand(ctx context.Context, msg fx.Message) (fx.Message, error) {
	switch m := msg.(type) {
	case *msgs.NodesQuery:
		reply := &msgs.Nodes{}
		for _, node := range s.Devices.Nodes() {
			reply.Nodes.Nodes = append(reply.Nodes.Nodes, uint32(node))
		}
		return reply, nil
	case *msgs.RegisterRead:
		return s.read(ctx, m)
	case *msgs.RegisterWrite:
		return s.write(ctx, m)
	case *msgs.RegisterListQuery:
		return s.list(m)
	}
	return nil, msgs.ErrUnsupportedCommand
}

func (s *Service) read(ctx context.Context, m *msgs.RegisterRead) (fx.Message, error) {
	dev, err := s.device(m.Node)
	if err != nil {
		return nil, err
	}
	val, err := dev.Read(ctx, m.Name)
	if err != nil {
		return nil, err
	}
	reply := &msgs.RegisterValue{}
	reply.Node, reply.Name, reply.Value = m.Node, m.Name, val
	return reply, nil
}

func (s *Service) write(ctx context.Context, m *msgs.RegisterWrite) (fx.Message, error) {
	dev, err := s.device(m.Node)
	if err != nil {
		return nil, err
	}
	if m.Verify {
		err = dev.WriteVerified(ctx, m.Name, m.Value)
	} else {
		err = dev.Write(ctx, m.Name, m.Value)
	}
	if err != nil {
		return nil, err
	}
	reg, err := dev.Registers().Get(m.Name)
	if err != nil {
		return nil, err
	}
	reply := &msgs.RegisterValue{}
	reply.Node, reply.Name, reply.Value = m.Node, m.Name, reg.Value
	if s.Events != nil {
		event := &msgs.RegisterChanged{}
		event.Node, event.Name, event.Value = m.Node, m.Name, reg.Value
		if err := s.Events.SendEvent(ctx, event); err != nil {
			glog.Warningf("send event: %v", err)
		}
	}
	return reply, nil
}

func (s *Service) list(m *msgs.RegisterListQuery) (fx.Message, error) {
	dev, err := s.device(m.Node)
	if err != nil {
		return nil, err
	}
	reply := &msgs.RegisterList{}
	reply.Node = m.Node
	for _, reg := range dev.Registers().Registers() {
		reply.Entries = append(reply.Entries, &pb.RegisterEntry{
			Name:    reg.Name,
			Addr:    uint32(reg.Addr),
			Access:  reg.Access.String(),
			Mask:    reg.Mask,
			Value:   reg.Value,
			Touched: reg.Touched,
			Pending: reg.Pending,
		})
	}
	return reply, nil
}
