package driver

import (
	"context"
	"fmt"
	"sort"

	"github.com/robotalks/tmc.go/pkg/l0/comm"
	"github.com/robotalks/tmc.go/pkg/l0/regs"
)

// Devices are the devices sharing one bus.
type Devices struct {
	Bus *comm.Bus

	devices map[uint8]*Device
	nodes   []uint8
}

// NewDevices creates a Device for each node on the bus.
func NewDevices(bus *comm.Bus, nodes ...uint8) *Devices {
	s := &Devices{Bus: bus, devices: make(map[uint8]*Device)}
	for _, node := range nodes {
		if _, ok := s.devices[node]; ok {
			continue
		}
		s.devices[node] = NewDevice(bus, node)
		s.nodes = append(s.nodes, node)
	}
	sort.Slice(s.nodes, func(i, j int) bool { return s.nodes[i] < s.nodes[j] })
	return s
}

// Nodes returns the configured nodes in order.
func (s *Devices) Nodes() []uint8 {
	return append([]uint8(nil), s.nodes...)
}

// Device returns the device on a node.
func (s *Devices) Device(node uint8) (*Device, error) {
	if d, ok := s.devices[node]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("node %d: %w", node, ErrUnknownNode)
}

// ApplyOverlay queues an overlay on every device.
func (s *Devices) ApplyOverlay(o regs.Overlay, permissive bool) error {
	for _, node := range s.nodes {
		if err := s.devices[node].ApplyOverlay(o, permissive); err != nil {
			return fmt.Errorf("node %d: %w", node, err)
		}
	}
	return nil
}

// Sync writes the pending registers of every device.
func (s *Devices) Sync(ctx context.Context) error {
	for _, node := range s.nodes {
		if err := s.devices[node].Sync(ctx); err != nil {
			return fmt.Errorf("node %d: %w", node, err)
		}
	}
	return nil
}
