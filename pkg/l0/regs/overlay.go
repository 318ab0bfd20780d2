package regs

import (
	"sort"

	"github.com/golang/glog"

	fx "github.com/robotalks/tmc.go/pkg/framework"
)

// Overlay maps register names to values to be written. A pair name
// (e.g. "ramp_stat") takes one value per entry of the pair, a register
// name takes a single value.
type Overlay map[string][]uint32

// Keys returns the overlay keys sorted.
func (o Overlay) Keys() []string {
	keys := make([]string, 0, len(o))
	for key := range o {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

type overlayValue struct {
	index int
	value uint32
}

// ApplyOverlay validates all entries of an overlay before queuing any of
// them as pending writes. In strict mode any problem is returned and
// nothing is applied; permissive mode logs the problems and applies the
// valid entries. A zero for a read-only entry is accepted and ignored so
// a pair can be given in full.
func (m *Map) ApplyOverlay(o Overlay, permissive bool) error {
	var errs fx.AggregatedError
	var values []overlayValue
	for _, key := range o.Keys() {
		vals := o[key]
		names, ok := Group(key)
		if !ok {
			errs.Add(regError(key, 0, ErrUnknownRegister))
			continue
		}
		if len(vals) != len(names) {
			errs.Add(regError(key, 0, ErrOverlayShape))
			continue
		}
		for n, name := range names {
			index := tableIndex[name]
			def, val := table[index], vals[n]
			if !def.Access.Writable() {
				if val != 0 {
					errs.Add(regError(name, val, ErrAccessDenied))
				}
				continue
			}
			if err := validate(def, val); err != nil {
				errs.Add(err)
				continue
			}
			values = append(values, overlayValue{index: index, value: val})
		}
	}
	if err := errs.Aggregate(); err != nil {
		if !permissive {
			return err
		}
		for _, e := range errs.Errors {
			glog.Warningf("overlay: skip %v", e)
		}
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	for _, v := range values {
		e := &m.entries[v.index]
		e.pending, e.queued = v.value, true
	}
	return nil
}
