package comm

import (
	"fmt"
)

// SPILink sends frames as whole bytes over an SPI connection.
// Chip select handling belongs to the Transferer.
type SPILink struct {
	Conn Transferer
}

// Transmit implements Link.
func (l *SPILink) Transmit(f Frame) error {
	_, err := l.Conn.Transfer(f.Bytes())
	return err
}

// Receive implements Link.
func (l *SPILink) Receive(bits int) (uint64, error) {
	if bits <= 0 || bits > 64 || bits%8 != 0 {
		return 0, ErrFrameLength
	}
	rx, err := l.Conn.Transfer(make([]byte, bits/8))
	if err != nil {
		return 0, err
	}
	if len(rx) != bits/8 {
		return 0, fmt.Errorf("short transfer %d/%d bytes: %w", len(rx), bits/8, ErrTimeout)
	}
	var reply uint64
	for _, b := range rx {
		reply = reply<<8 | uint64(b)
	}
	return reply, nil
}
