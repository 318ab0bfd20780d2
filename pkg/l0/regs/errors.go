package regs

import (
	"errors"
	"fmt"
)

// Errors of the register map.
var (
	ErrUnknownRegister = errors.New("unknown register")
	ErrAccessDenied    = errors.New("access denied")
	ErrValueOutOfRange = errors.New("value out of range")
	ErrOverlayShape    = errors.New("wrong number of values")
)

// Error reports a failed register operation.
type Error struct {
	Register string
	Value    uint32
	Err      error
}

func (e *Error) Error() string {
	if e.Value != 0 {
		return fmt.Sprintf("%s = 0x%08x: %v", e.Register, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Register, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func regError(name string, value uint32, err error) error {
	return &Error{Register: name, Value: value, Err: err}
}
