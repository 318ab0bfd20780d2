package comm

// Link shifts frames onto the physical medium and samples replies.
// A Link is not safe for concurrent use; Bus serialises access.
type Link interface {
	// Transmit sends a complete frame and leaves the medium idle.
	Transmit(Frame) error
	// Receive samples a reply of the specified bit length.
	Receive(bits int) (uint64, error)
}

// Direction is the direction of a signal line.
type Direction int

const (
	// Output drives the line.
	Output Direction = iota
	// Input samples the line.
	Input
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Input {
		return "in"
	}
	return "out"
}

// Line is a single bidirectional signal line (e.g. a GPIO).
type Line interface {
	// Request acquires the line for a consumer with an initial direction.
	Request(consumer string, dir Direction) error
	// SetDirection switches the line direction.
	SetDirection(Direction) error
	// SetValue drives the line when it's an output.
	SetValue(bool) error
	// Value samples the line when it's an input.
	Value() (bool, error)
}

// Transferer is a full-duplex SPI connection.
type Transferer interface {
	// Transfer clocks out tx and returns the same number of bytes clocked in.
	Transfer(tx []byte) ([]byte, error)
}
