package hw

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// SerialReadTimeout bounds each read from a serial port, after which the
// read returns no data.
const SerialReadTimeout = 10 * time.Millisecond

// OpenSerial opens a UART in 8N1 mode.
func OpenSerial(path string, baud int) (serial.Port, error) {
	port, err := serial.Open(path, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := port.SetReadTimeout(SerialReadTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("set timeout %s: %w", path, err)
	}
	if err := port.ResetInputBuffer(); err != nil {
		port.Close()
		return nil, fmt.Errorf("reset %s: %w", path, err)
	}
	return port, nil
}
