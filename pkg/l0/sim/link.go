// Package sim simulates ICs on a line for tests and dry runs.
package sim

import (
	"sync"

	"github.com/golang/glog"

	"github.com/robotalks/tmc.go/pkg/l0/comm"
)

// Link is a comm.Link with simulated chips attached.
type Link struct {
	Codec comm.Codec
	// MasterReplies makes chips reply with comm.MasterAddr as the node,
	// the way real ICs do.
	MasterReplies bool

	lock    sync.Mutex
	chips   map[uint8]*Chip
	reply   *comm.Frame
	corrupt bool
	drop    bool
	frames  []comm.Frame
}

// New creates a Link with a chip on each node.
func New(nodes ...uint8) *Link {
	l := &Link{Codec: comm.DefaultCodec, chips: make(map[uint8]*Chip)}
	for _, node := range nodes {
		l.chips[node] = NewChip(node)
	}
	return l
}

// Chip returns the chip on a node.
func (l *Link) Chip(node uint8) *Chip {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.chips[node]
}

// CorruptNextReply flips a data bit of the next reply.
func (l *Link) CorruptNextReply() {
	l.lock.Lock()
	l.corrupt = true
	l.lock.Unlock()
}

// DropWrites makes chips ignore write datagrams.
func (l *Link) DropWrites(drop bool) {
	l.lock.Lock()
	l.drop = drop
	l.lock.Unlock()
}

// Frames returns the frames transmitted so far.
func (l *Link) Frames() []comm.Frame {
	l.lock.Lock()
	defer l.lock.Unlock()
	return append([]comm.Frame(nil), l.frames...)
}

// Transmit implements comm.Link.
func (l *Link) Transmit(f comm.Frame) error {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.frames = append(l.frames, f)
	l.reply = nil
	b := f.Bytes()
	if len(b) < 4 || b[0] != comm.SyncByte {
		glog.V(2).Infof("sim: ignore %s: bad sync", f)
		return nil
	}
	if crc := l.Codec.CRC.Sum(b[:len(b)-1]); crc != f.CRC() {
		glog.V(2).Infof("sim: ignore %s: crc 0x%02x", f, crc)
		return nil
	}
	chip := l.chips[b[1]]
	if chip == nil {
		return nil
	}
	addr := b[2] >> 1
	switch {
	case f.Len == comm.ReadFrameBits:
		node := chip.Node
		if l.MasterReplies {
			node = comm.MasterAddr
		}
		reply := l.Codec.EncodeReply(node, addr, chip.read(addr))
		if l.corrupt {
			reply.Bits ^= 1 << 8
			l.corrupt = false
		}
		l.reply = &reply
	case f.Len == comm.WriteFrameBits && b[2]&1 != 0:
		if !l.drop {
			chip.write(addr, uint32(f.Bits>>8))
		}
	}
	return nil
}

// Receive implements comm.Link. Without a reply the line idles high.
func (l *Link) Receive(bits int) (uint64, error) {
	if bits <= 0 || bits > 64 {
		return 0, comm.ErrFrameLength
	}
	l.lock.Lock()
	defer l.lock.Unlock()
	reply := l.reply
	l.reply = nil
	if reply == nil || reply.Len != bits {
		return ^uint64(0) >> uint(64-bits), nil
	}
	return reply.Bits, nil
}
