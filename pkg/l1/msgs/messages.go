package msgs

import (
	"errors"

	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/tmc.go/pkg/framework"
	"github.com/robotalks/tmc.go/pkg/l0/comm"
	"github.com/robotalks/tmc.go/pkg/l0/driver"
	"github.com/robotalks/tmc.go/pkg/l0/regs"
	pb "github.com/robotalks/tmc.go/pkg/proto/tmc/l1/v1"
)

// CommandOK is the generic reply indicating success for commands.
type CommandOK struct {
	pb.CommandOK
}

// NewCommandOK creates a CommandOK.
func NewCommandOK() *CommandOK {
	return &CommandOK{}
}

// NewMessage implements Message.
func (m *CommandOK) NewMessage() fx.Message { return &CommandOK{} }

// TypeID implements SerializableMessage.
func (m *CommandOK) TypeID() uint32 { return CommandOKTypeID }

// Serializable implements SerializableMessage.
func (m *CommandOK) Serializable() proto.Message { return &m.CommandOK }

// Error codes carried by CommandErr.
const (
	CodeUnknown uint32 = iota
	CodeUnknownRegister
	CodeAccessDenied
	CodeValueOutOfRange
	CodeChecksumMismatch
	CodeTimeout
	CodeLineBusy
	CodeUnknownNode
	CodeUnsupported
)

var errorCodes = []struct {
	code uint32
	err  error
}{
	{CodeUnknownRegister, regs.ErrUnknownRegister},
	{CodeAccessDenied, regs.ErrAccessDenied},
	{CodeValueOutOfRange, regs.ErrValueOutOfRange},
	{CodeChecksumMismatch, comm.ErrChecksumMismatch},
	{CodeTimeout, comm.ErrTimeout},
	{CodeLineBusy, comm.ErrLineBusy},
	{CodeUnknownNode, driver.ErrUnknownNode},
	{CodeUnsupported, ErrUnsupportedCommand},
}

// ErrorCode maps an error to the code sent to clients.
func ErrorCode(err error) uint32 {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return CodeUnknown
}

// CommandErr is the generic message representing command error.
type CommandErr struct {
	pb.CommandErr
}

// NewCommandErr creates a CommandErr from an error.
func NewCommandErr(err error) *CommandErr {
	cmdErr := NewCommandErrFromMsg(err.Error())
	cmdErr.Code = ErrorCode(err)
	return cmdErr
}

// NewCommandErrFromMsg creates a CommandErr.
func NewCommandErrFromMsg(message string) *CommandErr {
	return &CommandErr{
		CommandErr: pb.CommandErr{
			Message: message,
		},
	}
}

// NewMessage implements Message.
func (m *CommandErr) NewMessage() fx.Message { return &CommandErr{} }

// TypeID implements SerializableMessage.
func (m *CommandErr) TypeID() uint32 { return CommandErrTypeID }

// Serializable implements SerializableMessage.
func (m *CommandErr) Serializable() proto.Message { return &m.CommandErr }

// Error implements error.
func (m *CommandErr) Error() string { return m.Message }

// Unwrap returns the error identified by Code so errors.Is works on
// the client side.
func (m *CommandErr) Unwrap() error {
	for _, ec := range errorCodes {
		if ec.code == m.Code {
			return ec.err
		}
	}
	return nil
}

// RegisterRead command reads a register from the IC.
type RegisterRead struct {
	pb.RegisterRead
}

// NewMessage implements Message.
func (m *RegisterRead) NewMessage() fx.Message { return &RegisterRead{} }

// TypeID implements SerializableMessage.
func (m *RegisterRead) TypeID() uint32 { return RegisterReadTypeID }

// Serializable implements SerializableMessage.
func (m *RegisterRead) Serializable() proto.Message { return &m.RegisterRead }

// RegisterWrite command writes a register, optionally verified by the
// IC's write counter.
type RegisterWrite struct {
	pb.RegisterWrite
}

// NewMessage implements Message.
func (m *RegisterWrite) NewMessage() fx.Message { return &RegisterWrite{} }

// TypeID implements SerializableMessage.
func (m *RegisterWrite) TypeID() uint32 { return RegisterWriteTypeID }

// Serializable implements SerializableMessage.
func (m *RegisterWrite) Serializable() proto.Message { return &m.RegisterWrite }

// RegisterListQuery command.
type RegisterListQuery struct {
	pb.RegisterListQuery
}

// NewMessage implements Message.
func (m *RegisterListQuery) NewMessage() fx.Message { return &RegisterListQuery{} }

// TypeID implements SerializableMessage.
func (m *RegisterListQuery) TypeID() uint32 { return RegisterListQueryTypeID }

// Serializable implements SerializableMessage.
func (m *RegisterListQuery) Serializable() proto.Message { return &m.RegisterListQuery }

// RegisterList response.
type RegisterList struct {
	pb.RegisterList
}

// NewMessage implements Message.
func (m *RegisterList) NewMessage() fx.Message { return &RegisterList{} }

// TypeID implements SerializableMessage.
func (m *RegisterList) TypeID() uint32 { return RegisterListTypeID }

// Serializable implements SerializableMessage.
func (m *RegisterList) Serializable() proto.Message { return &m.RegisterList }

// RegisterValue response.
type RegisterValue struct {
	pb.RegisterValue
}

// NewMessage implements Message.
func (m *RegisterValue) NewMessage() fx.Message { return &RegisterValue{} }

// TypeID implements SerializableMessage.
func (m *RegisterValue) TypeID() uint32 { return RegisterValueTypeID }

// Serializable implements SerializableMessage.
func (m *RegisterValue) Serializable() proto.Message { return &m.RegisterValue }

// NodesQuery command.
type NodesQuery struct {
	pb.NodesQuery
}

// NewMessage implements Message.
func (m *NodesQuery) NewMessage() fx.Message { return &NodesQuery{} }

// TypeID implements SerializableMessage.
func (m *NodesQuery) TypeID() uint32 { return NodesQueryTypeID }

// Serializable implements SerializableMessage.
func (m *NodesQuery) Serializable() proto.Message { return &m.NodesQuery }

// Nodes response.
type Nodes struct {
	pb.Nodes
}

// NewMessage implements Message.
func (m *Nodes) NewMessage() fx.Message { return &Nodes{} }

// TypeID implements SerializableMessage.
func (m *Nodes) TypeID() uint32 { return NodesTypeID }

// Serializable implements SerializableMessage.
func (m *Nodes) Serializable() proto.Message { return &m.Nodes }

// RegisterChanged event.
type RegisterChanged struct {
	pb.RegisterChanged
}

// NewMessage implements Message.
func (m *RegisterChanged) NewMessage() fx.Message { return &RegisterChanged{} }

// TypeID implements SerializableMessage.
func (m *RegisterChanged) TypeID() uint32 { return RegisterChangedTypeID }

// Serializable implements SerializableMessage.
func (m *RegisterChanged) Serializable() proto.Message { return &m.RegisterChanged }

// TypeID Groups
const (
	GroupCommand  uint32 = 0x00000000
	GroupRegister uint32 = 0x00030000
	GroupCustom   uint32 = 0x7f000000 // base group id for custom messages.
)

// TypeIDs
const (
	CommandOKTypeID         uint32 = GroupCommand | TypeIDMaskReply | 0x0000
	CommandErrTypeID        uint32 = GroupCommand | TypeIDMaskReply | 0x0001
	RegisterReadTypeID      uint32 = GroupRegister | 0x0000
	RegisterValueTypeID     uint32 = RegisterReadTypeID | TypeIDMaskReply
	RegisterWriteTypeID     uint32 = GroupRegister | 0x0001
	RegisterListQueryTypeID uint32 = GroupRegister | 0x0002
	RegisterListTypeID      uint32 = RegisterListQueryTypeID | TypeIDMaskReply
	NodesQueryTypeID        uint32 = GroupRegister | 0x0003
	NodesTypeID             uint32 = NodesQueryTypeID | TypeIDMaskReply
	RegisterChangedTypeID   uint32 = TypeIDKindEvent | GroupRegister | 0x0001
)
