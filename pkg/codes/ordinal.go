package codes

import "fmt"

// OrdinalTable translates plain ordinal wire codes.
type OrdinalTable[T comparable] struct {
	index[T]
	fallback T
}

// NewOrdinalTable builds a table from rows in wire order. Wire values without
// a row decode to fallback; fallback should itself have a row so that it
// encodes back to its documented wire value.
func NewOrdinalTable[T comparable](fallback T, entries ...Entry[T]) *OrdinalTable[T] {
	return &OrdinalTable[T]{
		index:    newIndex(entries),
		fallback: fallback,
	}
}

// Decode returns the variant for wire, or the fallback variant.
func (t *OrdinalTable[T]) Decode(wire uint32) T {
	v, _ := t.Lookup(wire)
	return v
}

// Lookup returns the variant for wire and whether wire has a row.
func (t *OrdinalTable[T]) Lookup(wire uint32) (T, bool) {
	if i, ok := t.byWire[wire]; ok {
		return t.entries[i].Value, true
	}
	return t.fallback, false
}

// Encode returns the wire value of v. A variant without a row encodes as the
// fallback's wire value.
func (t *OrdinalTable[T]) Encode(v T) uint32 {
	if i, ok := t.byValue[v]; ok {
		return t.entries[i].Wire
	}
	if i, ok := t.byValue[t.fallback]; ok {
		return t.entries[i].Wire
	}
	return 0
}

// Parse returns the variant whose name equals s exactly, or the fallback.
func (t *OrdinalTable[T]) Parse(s string) T {
	v, _ := t.LookupName(s)
	return v
}

// LookupName returns the variant named s and whether such a row exists.
func (t *OrdinalTable[T]) LookupName(s string) (T, bool) {
	if i, ok := t.byName[s]; ok {
		return t.entries[i].Value, true
	}
	return t.fallback, false
}

// Name returns the canonical name of v, or the fallback's name.
func (t *OrdinalTable[T]) Name(v T) string {
	if i, ok := t.byValue[v]; ok {
		return t.entries[i].Name
	}
	if i, ok := t.byValue[t.fallback]; ok {
		return t.entries[i].Name
	}
	return "UNKNOWN"
}

// Fallback returns the variant used for unmapped wire values.
func (t *OrdinalTable[T]) Fallback() T {
	return t.fallback
}

// Entries returns a copy of the rows in table order.
func (t *OrdinalTable[T]) Entries() []Entry[T] {
	return t.copyEntries()
}

// Kind implements Table.
func (t *OrdinalTable[T]) Kind() Kind {
	return KindOrdinal
}

// Known implements Table.
func (t *OrdinalTable[T]) Known(wire uint32) bool {
	_, ok := t.byWire[wire]
	return ok
}

// Describe implements Table.
func (t *OrdinalTable[T]) Describe(wire uint32) []string {
	if i, ok := t.byWire[wire]; ok {
		return []string{t.entries[i].Name}
	}
	return []string{t.Name(t.fallback)}
}

// EncodeNames implements Table.
func (t *OrdinalTable[T]) EncodeNames(names ...string) (uint32, error) {
	if len(names) != 1 {
		return 0, fmt.Errorf("%w: got %d", ErrNameCount, len(names))
	}
	i, ok := t.byName[names[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownName, names[0])
	}
	return t.entries[i].Wire, nil
}

// Names implements Table.
func (t *OrdinalTable[T]) Names() []string {
	return t.names()
}

var _ Table = (*OrdinalTable[uint8])(nil)
