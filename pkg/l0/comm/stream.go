package comm

import (
	"fmt"
	"io"
	"time"
)

// DefaultStreamTimeout bounds reading a reply from a StreamLink.
const DefaultStreamTimeout = 100 * time.Millisecond

// StreamLink sends frames as bytes over a byte stream, e.g. a UART
// whose reads return (0, nil) when the port read timeout expires.
type StreamLink struct {
	RW      io.ReadWriter
	Timeout time.Duration
}

// Transmit implements Link.
func (l *StreamLink) Transmit(f Frame) error {
	_, err := l.RW.Write(f.Bytes())
	return err
}

// Receive implements Link.
func (l *StreamLink) Receive(bits int) (uint64, error) {
	if bits <= 0 || bits > 64 || bits%8 != 0 {
		return 0, ErrFrameLength
	}
	timeout := l.Timeout
	if timeout == 0 {
		timeout = DefaultStreamTimeout
	}
	buf := make([]byte, bits/8)
	deadline := time.Now().Add(timeout)
	got := 0
	for got < len(buf) {
		if time.Now().After(deadline) {
			return 0, fmt.Errorf("got %d/%d bytes: %w", got, len(buf), ErrTimeout)
		}
		n, err := l.RW.Read(buf[got:])
		got += n
		if err != nil && got < len(buf) {
			return 0, fmt.Errorf("read after %d/%d bytes: %w", got, len(buf), err)
		}
	}
	var reply uint64
	for _, b := range buf {
		reply = reply<<8 | uint64(b)
	}
	return reply, nil
}
