package sim

import (
	"sync"

	"github.com/robotalks/tmc.go/pkg/l0/regs"
)

// Chip is a simulated IC answering on one node address.
type Chip struct {
	Node uint8

	lock  sync.Mutex
	words map[uint8]uint32
}

// NewChip creates a chip with all registers zero.
func NewChip(node uint8) *Chip {
	return &Chip{Node: node, words: make(map[uint8]uint32)}
}

// ifcntAddr is the address of the write counter.
const ifcntAddr = 0x02

func (c *Chip) read(addr uint8) uint32 {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.words[addr]
}

// write applies a write datagram: read-write bits are replaced, read-clear
// bits are cleared by ones and read-only bits are kept. The write counter
// advances for every accepted datagram.
func (c *Chip) write(addr uint8, data uint32) {
	c.lock.Lock()
	defer c.lock.Unlock()
	word := c.words[addr]
	for _, def := range regs.Table() {
		if def.Addr != addr {
			continue
		}
		switch def.Access {
		case regs.ReadWrite, regs.WriteOnly:
			word = word&^def.Mask | data&def.Mask
		case regs.ReadClear:
			word &^= data & def.Mask
		}
	}
	c.words[addr] = word
	c.words[ifcntAddr] = (c.words[ifcntAddr] + 1) & 0xff
}

// Set forces the bits of a register, e.g. to raise status flags.
func (c *Chip) Set(name string, value uint32) error {
	def, err := regs.Lookup(name)
	if err != nil {
		return err
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.words[def.Addr] = c.words[def.Addr]&^def.Mask | value&def.Mask
	return nil
}

// Value returns the masked bits of a register.
func (c *Chip) Value(name string) (uint32, error) {
	def, err := regs.Lookup(name)
	if err != nil {
		return 0, err
	}
	return c.read(def.Addr) & def.Mask, nil
}
