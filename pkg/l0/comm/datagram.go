package comm

import (
	"encoding/binary"
	"fmt"
)

// Frame bit lengths.
const (
	ReadFrameBits  = 32
	WriteFrameBits = 64
	ReplyFrameBits = 64
)

const (
	syncNibble     byte = 0xa
	reservedNibble byte = 0x9
	// SyncByte is the first byte of every datagram.
	SyncByte = syncNibble<<4 | reservedNibble
	// MasterAddr is the node byte ICs put in replies.
	MasterAddr byte = 0xff

	writeFlag byte = 0x01
	writeBit  byte = 0x80
)

// Frame is an assembled datagram, right-aligned in Bits.
type Frame struct {
	Bits uint64
	Len  int
}

// Bytes returns the big-endian bytes of the frame.
func (f Frame) Bytes() []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], f.Bits)
	return b[8-f.Len/8:]
}

// Bit returns the n-th bit in transmission order (0 is sent first).
func (f Frame) Bit(n int) bool {
	return f.Bits&(1<<uint(f.Len-1-n)) != 0
}

// CRC returns the trailing CRC byte.
func (f Frame) CRC() byte {
	return byte(f.Bits)
}

// String implements fmt.Stringer.
func (f Frame) String() string {
	return fmt.Sprintf("%0*x/%d", f.Len/4, f.Bits, f.Len)
}

// FrameFromBytes assembles a frame from big-endian bytes.
func FrameFromBytes(b []byte) (Frame, error) {
	if len(b) != ReadFrameBits/8 && len(b) != WriteFrameBits/8 {
		return Frame{}, ErrFrameLength
	}
	var f Frame
	for _, v := range b {
		f.Bits = f.Bits<<8 | uint64(v)
	}
	f.Len = len(b) * 8
	return f, nil
}

// Reply is a decoded reply datagram.
type Reply struct {
	Node  uint8
	Addr  uint8
	Write bool
	Data  uint32
	CRC   byte
}

// Codec encodes requests and decodes replies.
type Codec struct {
	CRC CRC8
}

// DefaultCodec uses DefaultCRC.
var DefaultCodec = Codec{CRC: DefaultCRC}

func (c Codec) seal(payload []byte) Frame {
	b := append(payload, c.CRC.Sum(payload))
	f, _ := FrameFromBytes(b)
	return f
}

// EncodeRead builds a 32-bit read request.
func (c Codec) EncodeRead(node, addr uint8) Frame {
	return c.seal([]byte{SyncByte, node, addr << 1})
}

// EncodeWrite builds a 64-bit write request.
// The register byte only holds 8 bits so the write marker 0x80 shifts out
// and the field is addr<<1 with the write flag set.
func (c Codec) EncodeWrite(node, addr uint8, value uint32) Frame {
	reg := byte(uint(addr|writeBit)<<1) | writeFlag
	return c.seal(c.payload(node, reg, value))
}

// EncodeReply builds the 64-bit reply a node sends for a read.
func (c Codec) EncodeReply(node, addr uint8, value uint32) Frame {
	return c.seal(c.payload(node, addr<<1, value))
}

func (c Codec) payload(node, reg byte, value uint32) []byte {
	b := make([]byte, 7, 8)
	b[0], b[1], b[2] = SyncByte, node, reg
	binary.BigEndian.PutUint32(b[3:], value)
	return b
}

// DecodeReply decodes a 64-bit reply and validates its CRC and sync byte.
func (c Codec) DecodeReply(bits uint64) (Reply, error) {
	f := Frame{Bits: bits, Len: ReplyFrameBits}
	b := f.Bytes()
	r := Reply{
		Node:  b[1],
		Addr:  b[2] >> 1,
		Write: b[2]&writeFlag != 0,
		Data:  binary.BigEndian.Uint32(b[3:7]),
		CRC:   b[7],
	}
	if crc := c.CRC.Sum(b[:7]); crc != r.CRC {
		return r, &ChecksumError{Computed: crc, Received: r.CRC}
	}
	if b[0] != SyncByte {
		return r, ErrBadSync
	}
	return r, nil
}

// EncodeRead builds a read request using DefaultCodec.
func EncodeRead(node, addr uint8) Frame {
	return DefaultCodec.EncodeRead(node, addr)
}

// EncodeWrite builds a write request using DefaultCodec.
func EncodeWrite(node, addr uint8, value uint32) Frame {
	return DefaultCodec.EncodeWrite(node, addr, value)
}

// EncodeReply builds a reply using DefaultCodec.
func EncodeReply(node, addr uint8, value uint32) Frame {
	return DefaultCodec.EncodeReply(node, addr, value)
}

// DecodeReply decodes a reply using DefaultCodec.
func DecodeReply(bits uint64) (Reply, error) {
	return DefaultCodec.DecodeReply(bits)
}
