package regs

import (
	"sort"
	"strings"
	"sync"
)

// Def is the fixed description of a register field.
type Def struct {
	Name   string
	Addr   uint8
	Access Access
	Mask   uint32
}

// Register is a snapshot of a register field and its cached value.
type Register struct {
	Def
	Value   uint32
	Touched bool
	Pending bool
}

// Table returns a copy of the register layout.
func Table() []Def {
	return append([]Def(nil), table...)
}

// Lookup finds the definition of a register.
func Lookup(name string) (Def, error) {
	if n, ok := tableIndex[name]; ok {
		return table[n], nil
	}
	return Def{}, regError(name, 0, ErrUnknownRegister)
}

// Group returns the entry names of a pair, e.g. "io" gives
// "io[0]" and "io[1]". A single register gives its own name.
func Group(name string) ([]string, bool) {
	if names, ok := groups[name]; ok {
		return append([]string(nil), names...), true
	}
	if _, ok := tableIndex[name]; ok {
		return []string{name}, true
	}
	return nil, false
}

var (
	tableIndex = make(map[string]int)
	groups     = make(map[string][]string)
)

func init() {
	for n, def := range table {
		tableIndex[def.Name] = n
		if pos := strings.IndexByte(def.Name, '['); pos > 0 {
			base := def.Name[:pos]
			groups[base] = append(groups[base], def.Name)
		}
	}
}

type entry struct {
	def     Def
	value   uint32
	pending uint32
	touched bool
	queued  bool
}

// Map holds the cached values of one IC's registers.
// It is safe for concurrent use.
type Map struct {
	lock    sync.RWMutex
	entries []entry
}

// New creates a Map with all values zero.
func New() *Map {
	m := &Map{entries: make([]entry, len(table))}
	for n, def := range table {
		m.entries[n].def = def
	}
	return m
}

func (m *Map) find(name string) (*entry, error) {
	n, ok := tableIndex[name]
	if !ok {
		return nil, regError(name, 0, ErrUnknownRegister)
	}
	return &m.entries[n], nil
}

// siblings calls fn for every other entry at the same address.
func (m *Map) siblings(e *entry, fn func(*entry)) {
	for n := range m.entries {
		if s := &m.entries[n]; s != e && s.def.Addr == e.def.Addr {
			fn(s)
		}
	}
}

func (e *entry) snapshot() Register {
	return Register{Def: e.def, Value: e.value, Touched: e.touched, Pending: e.queued}
}

// Get returns the current state of a register.
func (m *Map) Get(name string) (Register, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	e, err := m.find(name)
	if err != nil {
		return Register{}, err
	}
	return e.snapshot(), nil
}

// CheckRead tells if a register can be read back.
func (m *Map) CheckRead(name string) (Def, error) {
	def, err := Lookup(name)
	if err != nil {
		return def, err
	}
	if !def.Access.Readable() {
		return def, regError(name, 0, ErrAccessDenied)
	}
	return def, nil
}

func validate(def Def, raw uint32) error {
	if !def.Access.Writable() {
		return regError(def.Name, raw, ErrAccessDenied)
	}
	if raw&^def.Mask != 0 {
		return regError(def.Name, raw, ErrValueOutOfRange)
	}
	return nil
}

// ValidateWrite checks a value against the access mode and the mask.
// Values with bits outside the mask are rejected, not truncated.
func (m *Map) ValidateWrite(name string, raw uint32) (uint32, error) {
	def, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	if err := validate(def, raw); err != nil {
		return 0, err
	}
	return raw & def.Mask, nil
}

// PrepareWrite validates a write and composes the 32-bit word sent to the
// IC. Bits of writable siblings sharing the address are taken from the
// cache; read-only and read-clear siblings contribute zeros.
func (m *Map) PrepareWrite(name string, raw uint32) (Def, uint32, error) {
	masked, err := m.ValidateWrite(name, raw)
	if err != nil {
		return Def{}, 0, err
	}
	m.lock.RLock()
	defer m.lock.RUnlock()
	e, _ := m.find(name)
	word := masked
	m.siblings(e, func(s *entry) {
		if s.def.Access == ReadWrite || s.def.Access == WriteOnly {
			word |= s.value & s.def.Mask
		}
	})
	return e.def, word, nil
}

// ApplyRead stores a word read from the IC into every entry at the
// register's address and returns the register's own masked value.
func (m *Map) ApplyRead(name string, raw uint32) (uint32, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	e, err := m.find(name)
	if err != nil {
		return 0, err
	}
	e.value, e.touched = raw&e.def.Mask, true
	m.siblings(e, func(s *entry) {
		if s.def.Access.Readable() {
			s.value, s.touched = raw&s.def.Mask, true
		}
	})
	return e.value, nil
}

// ApplyWrite records a value written to the IC.
func (m *Map) ApplyWrite(name string, masked uint32) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	e, err := m.find(name)
	if err != nil {
		return err
	}
	if e.def.Access == ReadClear {
		e.value &^= masked
	} else {
		e.value = masked & e.def.Mask
	}
	e.touched, e.queued = true, false
	return nil
}

// ApplyClearAck clears bits of a read-clear register after they were
// acknowledged by writing ones.
func (m *Map) ApplyClearAck(name string, bits uint32) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	e, err := m.find(name)
	if err != nil {
		return err
	}
	e.value &^= bits
	e.touched = true
	return nil
}

// Registers returns all registers in table order.
func (m *Map) Registers() []Register {
	m.lock.RLock()
	defer m.lock.RUnlock()
	regs := make([]Register, len(m.entries))
	for n := range m.entries {
		regs[n] = m.entries[n].snapshot()
	}
	return regs
}

// Touched returns the names of registers read or written at least once.
func (m *Map) Touched() []string {
	m.lock.RLock()
	defer m.lock.RUnlock()
	var names []string
	for n := range m.entries {
		if m.entries[n].touched {
			names = append(names, m.entries[n].def.Name)
		}
	}
	return names
}

// Pending returns the registers queued by overlays in table order.
// Value is the value to be written.
func (m *Map) Pending() []Register {
	m.lock.RLock()
	defer m.lock.RUnlock()
	var regs []Register
	for n := range m.entries {
		if e := &m.entries[n]; e.queued {
			reg := e.snapshot()
			reg.Value = e.pending
			regs = append(regs, reg)
		}
	}
	return regs
}

// ClearPending drops a queued value.
func (m *Map) ClearPending(name string) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	e, err := m.find(name)
	if err != nil {
		return err
	}
	e.queued = false
	return nil
}

// Names returns all register and pair names sorted.
func Names() []string {
	names := make([]string, 0, len(table)+len(groups))
	for _, def := range table {
		names = append(names, def.Name)
	}
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
