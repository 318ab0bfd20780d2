package comm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeRead(t *testing.T) {
	testCases := []struct {
		name   string
		node   uint8
		addr   uint8
		expect uint64
	}{
		{"gconf node 0", 0x00, 0x00, 0xa9000069},
		{"ifcnt node 0", 0x00, 0x02, 0xa9000489},
		{"x_act node 1", 0x01, 0x21, 0xa9014216},
		{"drv_status node 3", 0x03, 0x6f, 0xa903dee2},
		{"ramp_stat node 0", 0x00, 0x35, 0xa9006acc},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := EncodeRead(tc.node, tc.addr)
			require.Equal(t, ReadFrameBits, f.Len)
			require.Equal(t, tc.expect, f.Bits)
			require.Equal(t, Checksum(f.Bytes()[:3]), f.CRC())
		})
	}
}

func TestEncodeReadTopBytes(t *testing.T) {
	f := EncodeRead(0, 0)
	require.Equal(t, []byte{0xa9, 0x00, 0x00}, f.Bytes()[:3])
	require.Equal(t, Checksum([]byte{0xa9, 0x00, 0x00}), f.Bytes()[3])
}

func TestEncodeWrite(t *testing.T) {
	testCases := []struct {
		name   string
		node   uint8
		addr   uint8
		value  uint32
		expect uint64
	}{
		{"gconf", 0x00, 0x00, 0x00000004, 0xa900010000000484},
		{"x_target", 0x00, 0x2d, 0x12345678, 0xa9005b12345678fc},
		{"i_hold_i_run node 1", 0x01, 0x10, 0x00061f0a, 0xa9012100061f0ac9},
		{"gstat clear", 0x00, 0x01, 0x0000001f, 0xa900030000001f4a},
		{"io output node 2", 0x02, 0x04, 0x00001000, 0xa902090000100088},
		{"ramp_stat clear", 0x00, 0x35, 0x000010cc, 0xa9006b000010cce4},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := EncodeWrite(tc.node, tc.addr, tc.value)
			require.Equal(t, WriteFrameBits, f.Len)
			require.Equal(t, tc.expect, f.Bits)
			require.Equal(t, Checksum(f.Bytes()[:7]), f.CRC())
		})
	}
}

func TestEncodeWriteMSBFirstCodec(t *testing.T) {
	codec := Codec{CRC: CRC8{Poly: 0x07, Order: MSBFirst}}
	require.Equal(t, uint64(0xa900010000000460), codec.EncodeWrite(0, 0, 4).Bits)
	require.Equal(t, uint64(0xa9000072), codec.EncodeRead(0, 0).Bits)
}

func TestDecodeReplyRoundTrip(t *testing.T) {
	for _, addr := range []uint8{0x00, 0x02, 0x21, 0x35, 0x6f, 0x76} {
		for _, value := range []uint32{0, 1, 0x12345678, 0xffffffff} {
			w := EncodeWrite(0x05, addr, value)
			r, err := DecodeReply(w.Bits)
			require.NoError(t, err)
			require.Equal(t, addr, r.Addr)
			require.Equal(t, value, r.Data)
			require.Equal(t, uint8(0x05), r.Node)
			require.True(t, r.Write)

			r, err = DecodeReply(EncodeReply(0x05, addr, value).Bits)
			require.NoError(t, err)
			require.Equal(t, addr, r.Addr)
			require.Equal(t, value, r.Data)
			require.False(t, r.Write)
		}
	}
}

func TestEncodeReplyKnownAnswer(t *testing.T) {
	require.Equal(t, uint64(0xa900040000002a3c), EncodeReply(0, 0x02, 0x2a).Bits)
	require.Equal(t, uint64(0xa90000123456784c), EncodeReply(0, 0x00, 0x12345678).Bits)
}

func TestDecodeReplyChecksumMismatch(t *testing.T) {
	bits := EncodeReply(0, 0x02, 0x2a).Bits ^ 0x0100 // flip one data bit
	_, err := DecodeReply(bits)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrChecksumMismatch))
	var crcErr *ChecksumError
	require.True(t, errors.As(err, &crcErr))
	require.Equal(t, byte(0x3c), crcErr.Received)
	require.Equal(t, Checksum([]byte{0xa9, 0x00, 0x04, 0x00, 0x00, 0x00, 0x2b}), crcErr.Computed)
	require.NotEqual(t, crcErr.Received, crcErr.Computed)
}

func TestDecodeReplyBadSync(t *testing.T) {
	payload := []byte{0x55, 0x00, 0x04, 0x00, 0x00, 0x00, 0x2a}
	f, err := FrameFromBytes(append(payload, Checksum(payload)))
	require.NoError(t, err)
	_, err = DecodeReply(f.Bits)
	require.Equal(t, ErrBadSync, err)
}

func TestFrameBits(t *testing.T) {
	f := EncodeRead(0, 0)
	var bits []bool
	for n := 0; n < f.Len; n++ {
		bits = append(bits, f.Bit(n))
	}
	// 0xa9 = 1010 1001
	require.Equal(t, []bool{true, false, true, false, true, false, false, true}, bits[:8])
	require.Equal(t, "a9000069/32", f.String())
}

func TestFrameFromBytes(t *testing.T) {
	_, err := FrameFromBytes([]byte{1, 2, 3})
	require.Equal(t, ErrFrameLength, err)
	f, err := FrameFromBytes([]byte{0xa9, 0, 0, 0x69})
	require.NoError(t, err)
	require.Equal(t, EncodeRead(0, 0), f)
}
