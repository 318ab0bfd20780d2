package msgs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/tmc.go/pkg/l0/comm"
	"github.com/robotalks/tmc.go/pkg/l0/driver"
	"github.com/robotalks/tmc.go/pkg/l0/regs"
)

func TestTypedRoundTrip(t *testing.T) {
	msg := &RegisterWrite{}
	msg.Node, msg.Name, msg.Value, msg.Verify = 1, "x_target", 0x12345678, true
	typed, err := TypedFrom(msg)
	require.NoError(t, err)
	require.True(t, typed.IsCommand())
	typed.Sequence = 9
	data, err := typed.Encode()
	require.NoError(t, err)

	decodedTyped, err := DecodeTyped(data)
	require.NoError(t, err)
	require.Equal(t, uint32(9), decodedTyped.Sequence)
	decoded, err := decodedTyped.Decode()
	require.NoError(t, err)
	write, ok := decoded.(*RegisterWrite)
	require.True(t, ok)
	require.Equal(t, uint32(1), write.Node)
	require.Equal(t, "x_target", write.Name)
	require.Equal(t, uint32(0x12345678), write.Value)
	require.True(t, write.Verify)
}

func TestDecodeTyped(t *testing.T) {
	msg := &RegisterRead{}
	msg.Node, msg.Name = 2, "gconf"
	typed, err := TypedFrom(msg)
	require.NoError(t, err)
	data, err := typed.Encode()
	require.NoError(t, err)

	decodedTyped, err := DecodeTyped(data)
	require.NoError(t, err)
	require.Equal(t, typed.TypeId, decodedTyped.TypeId)
	require.Equal(t, typed.Message, decodedTyped.Message)
	decoded, err := decodedTyped.Decode()
	require.NoError(t, err)
	read, ok := decoded.(*RegisterRead)
	require.True(t, ok)
	require.Equal(t, uint32(2), read.Node)
	require.Equal(t, "gconf", read.Name)

	_, err = DecodeTyped([]byte{0xff})
	require.Error(t, err)
}

func TestTypedKinds(t *testing.T) {
	typed, err := TypedFrom(&RegisterChanged{})
	require.NoError(t, err)
	require.True(t, typed.IsEvent())

	_, err = TypedFrom(nil)
	require.Equal(t, ErrNotSerializable, err)

	require.False(t, typed.IsReply())
	require.Equal(t, GroupRegister, typed.Group())

	typed, err = TypedFrom(NewCommandOK())
	require.NoError(t, err)
	require.True(t, typed.IsReply())

	typed.TypeId = GroupCustom | 1
	_, err = typed.Decode()
	require.EqualError(t, err, "unknown type: 7f000001")
	require.True(t, errors.Is(err, ErrUnsupportedCommand))
	require.Equal(t, CodeUnsupported, NewCommandErr(err).Code)

	typed.TypeId = TypeIDKindEvent | GroupCustom | 1
	_, err = typed.Decode()
	require.False(t, errors.Is(err, ErrUnsupportedCommand))
}

func TestRegisterTypesRejectsDuplicates(t *testing.T) {
	require.Panics(t, func() { RegisterTypes(&RegisterRead{}) })
}

func TestCommandErrCodes(t *testing.T) {
	cases := []struct {
		err  error
		code uint32
	}{
		{fmt.Errorf("x: %w", regs.ErrUnknownRegister), CodeUnknownRegister},
		{&regs.Error{Register: "ifcnt", Value: 1, Err: regs.ErrAccessDenied}, CodeAccessDenied},
		{regs.ErrValueOutOfRange, CodeValueOutOfRange},
		{&comm.ChecksumError{Computed: 1, Received: 2}, CodeChecksumMismatch},
		{&driver.DeliveryError{Register: "gconf"}, CodeTimeout},
		{comm.ErrLineBusy, CodeLineBusy},
		{driver.ErrUnknownNode, CodeUnknownNode},
		{ErrUnsupportedCommand, CodeUnsupported},
		{errors.New("other"), CodeUnknown},
	}
	for _, c := range cases {
		cmdErr := NewCommandErr(c.err)
		require.Equal(t, c.code, cmdErr.Code, c.err.Error())
		require.Equal(t, c.err.Error(), cmdErr.Error())

		typed, err := TypedFrom(cmdErr)
		require.NoError(t, err)
		msg, err := typed.Decode()
		require.NoError(t, err)
		decoded := msg.(*CommandErr)
		require.Equal(t, c.code, decoded.Code)
		for _, ec := range errorCodes {
			require.Equal(t, ec.code == c.code, errors.Is(decoded, ec.err))
		}
	}
	decoded := NewCommandErr(fmt.Errorf("write: %w", comm.ErrTimeout))
	require.True(t, errors.Is(decoded, comm.ErrTimeout))
}
