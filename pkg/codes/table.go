package codes

import (
	"errors"
	"fmt"
)

// Errors returned when encoding user-supplied names.
var (
	// ErrUnknownName is returned when a name has no row in the table.
	ErrUnknownName = errors.New("unknown name")

	// ErrNameCount is returned when an ordinal table is given anything
	// other than exactly one name.
	ErrNameCount = errors.New("ordinal tables encode exactly one name")
)

// Entry is one row of a translation table.
type Entry[T comparable] struct {
	// Wire is the value as it appears on the bus.
	Wire uint32

	// Value is the variant the wire value translates to.
	Value T

	// Name is the canonical, case-sensitive name of the variant.
	Name string
}

// Kind distinguishes ordinal tables from bitmask tables.
type Kind uint8

const (
	// KindOrdinal tables map one wire value to one variant.
	KindOrdinal Kind = 0

	// KindBitmask tables map each set bit to an independent flag.
	KindBitmask Kind = 1
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindOrdinal:
		return "ORDINAL"
	case KindBitmask:
		return "BITMASK"
	default:
		return "UNKNOWN"
	}
}

// Table is the type-erased view of a translation table, used by code that
// handles many tables uniformly (the registry, the CLI, the event log).
type Table interface {
	// Kind reports whether the table is an ordinal or a bitmask table.
	Kind() Kind

	// Known reports whether wire decodes without falling back or dropping bits.
	Known(wire uint32) bool

	// Describe returns the names of the variants wire decodes to.
	Describe(wire uint32) []string

	// EncodeNames returns the wire value for the given variant names.
	EncodeNames(names ...string) (uint32, error)

	// Names returns every name in table order.
	Names() []string
}

// index holds the lookup maps shared by both table kinds.
type index[T comparable] struct {
	entries []Entry[T]
	byWire  map[uint32]int
	byValue map[T]int
	byName  map[string]int
}

func newIndex[T comparable](entries []Entry[T]) index[T] {
	idx := index[T]{
		entries: make([]Entry[T], 0, len(entries)),
		byWire:  make(map[uint32]int, len(entries)),
		byValue: make(map[T]int, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		idx.add(e)
	}
	return idx
}

// add appends a row. Tables are static, so a duplicate wire value or name is
// a programming error and panics.
func (idx *index[T]) add(e Entry[T]) {
	if _, dup := idx.byWire[e.Wire]; dup {
		panic(fmt.Sprintf("codes: duplicate wire value 0x%08X (%s)", e.Wire, e.Name))
	}
	if _, dup := idx.byName[e.Name]; dup {
		panic(fmt.Sprintf("codes: duplicate name %q", e.Name))
	}
	i := len(idx.entries)
	idx.entries = append(idx.entries, e)
	idx.byWire[e.Wire] = i
	idx.byName[e.Name] = i
	// Several wire values may translate to one variant; the first row wins
	// when encoding.
	if _, seen := idx.byValue[e.Value]; !seen {
		idx.byValue[e.Value] = i
	}
}

func (idx *index[T]) names() []string {
	names := make([]string, len(idx.entries))
	for i, e := range idx.entries {
		names[i] = e.Name
	}
	return names
}

func (idx *index[T]) copyEntries() []Entry[T] {
	out := make([]Entry[T], len(idx.entries))
	copy(out, idx.entries)
	return out
}
