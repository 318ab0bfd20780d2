package regs

// Access is the access mode of a register field.
type Access uint8

// Access modes.
const (
	ReadOnly Access = iota
	WriteOnly
	ReadWrite
	// ReadClear bits read as flags and are cleared by writing ones.
	ReadClear
)

// Readable tells if the field can be read back.
func (a Access) Readable() bool {
	return a != WriteOnly
}

// Writable tells if writing the field has an effect on the IC.
func (a Access) Writable() bool {
	return a != ReadOnly
}

func (a Access) String() string {
	switch a {
	case ReadOnly:
		return "R"
	case WriteOnly:
		return "W"
	case ReadWrite:
		return "RW"
	case ReadClear:
		return "RC"
	}
	return "?"
}
