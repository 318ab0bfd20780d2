// Package overlay loads register overlays from TOML files.
//
// Keys at the top level and inside any [section] are register names or
// pair names; sections only group keys. Values are integers (decimal, hex
// or binary, underscores allowed) or, for pairs, lists of integers:
//
//	gconf = 0x0000_0004
//
//	[ramp]
//	v_max = 51200
//	"x_comp" = [0, 0]
package overlay

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/robotalks/tmc.go/pkg/l0/regs"
)

// Errors of overlay parsing.
var (
	ErrBadValue     = errors.New("bad value")
	ErrDuplicateKey = errors.New("duplicate key")
)

// Parse decodes an overlay from TOML text.
func Parse(r io.Reader) (regs.Overlay, error) {
	var doc map[string]interface{}
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return fromDoc(doc)
}

// ParseString decodes an overlay from a string.
func ParseString(s string) (regs.Overlay, error) {
	var doc map[string]interface{}
	if _, err := toml.Decode(s, &doc); err != nil {
		return nil, err
	}
	return fromDoc(doc)
}

func fromDoc(doc map[string]interface{}) (regs.Overlay, error) {
	o := make(regs.Overlay)
	sections := make(map[string]string)
	for key, val := range doc {
		if section, ok := val.(map[string]interface{}); ok {
			for name, val := range section {
				if err := add(o, sections, key, name, val); err != nil {
					return nil, err
				}
			}
			continue
		}
		if err := add(o, sections, "", key, val); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func add(o regs.Overlay, sections map[string]string, section, key string, val interface{}) error {
	where := key
	if section != "" {
		where = section + "." + key
	}
	if prev, ok := sections[key]; ok {
		return fmt.Errorf("%s: also in [%s]: %w", where, prev, ErrDuplicateKey)
	}
	sections[key] = section
	var vals []uint32
	switch v := val.(type) {
	case []interface{}:
		for _, item := range v {
			n, err := toUint32(item)
			if err != nil {
				return fmt.Errorf("%s: %w", where, err)
			}
			vals = append(vals, n)
		}
	default:
		n, err := toUint32(v)
		if err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}
		vals = append(vals, n)
	}
	o[key] = vals
	return nil
}

func toUint32(v interface{}) (uint32, error) {
	n, ok := v.(int64)
	if !ok {
		return 0, fmt.Errorf("%v is not an integer: %w", v, ErrBadValue)
	}
	if n < 0 || n > math.MaxUint32 {
		return 0, fmt.Errorf("%d not in 32 bits: %w", n, ErrBadValue)
	}
	return uint32(n), nil
}

// Load reads an overlay file.
func Load(path string) (regs.Overlay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	o, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return o, nil
}

// Merge combines overlays, later ones taking precedence.
func Merge(overlays ...regs.Overlay) regs.Overlay {
	merged := make(regs.Overlay)
	for _, o := range overlays {
		for key, vals := range o {
			merged[key] = append([]uint32(nil), vals...)
		}
	}
	return merged
}
