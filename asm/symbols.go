package asm

import (
	"iter"
	"regexp"
)

var labelRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

// ValidLabel reports whether name can be defined as a label.
func ValidLabel(name string) bool {
	return labelRegexp.MatchString(name)
}

// Symbols is the label table of a single assembly run.
type Symbols struct {
	Limit int // Maximum number of labels. Zero is unlimited.

	names   []string
	address map[string]uint32
}

// Define adds a label. The first definition of a name is kept.
func (sym *Symbols) Define(name string, address uint32) (err error) {
	if !ValidLabel(name) {
		err = ErrLabelInvalid
		return
	}

	if _, ok := sym.address[name]; ok {
		err = ErrLabelDuplicate
		return
	}

	if sym.Limit > 0 && len(sym.names) >= sym.Limit {
		err = ErrLabelTableFull
		return
	}

	if sym.address == nil {
		sym.address = make(map[string]uint32, 16)
	}
	sym.address[name] = address
	sym.names = append(sym.names, name)

	return
}

// Lookup returns the address of a label.
func (sym *Symbols) Lookup(name string) (address uint32, ok bool) {
	address, ok = sym.address[name]
	return
}

// Len returns the number of labels defined.
func (sym *Symbols) Len() int {
	return len(sym.names)
}

// All returns the labels in definition order.
func (sym *Symbols) All() iter.Seq2[string, uint32] {
	return func(yield func(name string, address uint32) bool) {
		for _, name := range sym.names {
			if !yield(name, sym.address[name]) {
				return
			}
		}
	}
}
