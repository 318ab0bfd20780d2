package driver

import (
	"errors"
	"fmt"

	"github.com/robotalks/tmc.go/pkg/l0/comm"
)

// ErrUnknownNode indicates no device is configured on a node.
var ErrUnknownNode = errors.New("unknown node")

// ReplyMismatchError reports a valid reply for another address, or from a
// node that is neither the requested one nor the master address.
type ReplyMismatchError struct {
	Node  uint8
	Addr  uint8
	Reply comm.Reply
}

func (e *ReplyMismatchError) Error() string {
	return fmt.Sprintf("reply from node %d addr 0x%02x, expect node %d addr 0x%02x",
		e.Reply.Node, e.Reply.Addr, e.Node, e.Addr)
}

// DeliveryError reports a write the IC didn't count.
type DeliveryError struct {
	Register string
	Before   uint8
	After    uint8
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("write %s not delivered: ifcnt %d -> %d", e.Register, e.Before, e.After)
}

// Is matches comm.ErrTimeout.
func (e *DeliveryError) Is(target error) bool {
	return target == comm.ErrTimeout
}
