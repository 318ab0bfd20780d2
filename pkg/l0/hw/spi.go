package hw

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// SPI implements comm.Transferer over a periph SPI port.
type SPI struct {
	Port spi.PortCloser
	Conn spi.Conn
}

// OpenSPI opens an SPI port by name, e.g. "/dev/spidev0.0" or "" for the
// first one, in mode 3 with 8-bit words.
func OpenSPI(name string, freq physic.Frequency) (*SPI, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	port, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open spi %q: %w", name, err)
	}
	conn, err := port.Connect(freq, spi.Mode3, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("connect spi %q: %w", name, err)
	}
	return &SPI{Port: port, Conn: conn}, nil
}

// Transfer implements comm.Transferer.
func (s *SPI) Transfer(w []byte) ([]byte, error) {
	r := make([]byte, len(w))
	if err := s.Conn.Tx(w, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Close releases the port.
func (s *SPI) Close() error {
	return s.Port.Close()
}
