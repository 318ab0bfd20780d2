package comm

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout indicates the expected reply bits could not be sampled
	// within the receive window.
	ErrTimeout = errors.New("transport timeout")
	// ErrLineBusy indicates the line is held by another transaction.
	ErrLineBusy = errors.New("line busy")
	// ErrChecksumMismatch is matched by ChecksumError.
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrBadSync indicates a reply not starting with the sync byte.
	ErrBadSync = errors.New("bad sync")
	// ErrFrameLength indicates a frame length other than 32 or 64 bits.
	ErrFrameLength = errors.New("invalid frame length")
)

// ChecksumError reports a reply whose trailing CRC byte doesn't match.
type ChecksumError struct {
	Computed byte
	Received byte
}

// Error implements error.
func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch: computed 0x%02x, received 0x%02x", e.Computed, e.Received)
}

// Is matches ErrChecksumMismatch.
func (e *ChecksumError) Is(target error) bool {
	return target == ErrChecksumMismatch
}
