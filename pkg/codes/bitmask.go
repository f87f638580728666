package codes

import "fmt"

// BitmaskTable translates bitmask wire codes into flag sets.
type BitmaskTable[T comparable] struct {
	index[T]
	none   Entry[T]
	any    Entry[T]
	hasAny bool
	flags  []Entry[T]
	all    uint32
}

// NewBitmaskTable builds a table from the NONE row and the flag rows. Flag
// rows must have a non-zero wire value; the NONE row is usually wire 0.
func NewBitmaskTable[T comparable](none Entry[T], flags ...Entry[T]) *BitmaskTable[T] {
	t := &BitmaskTable[T]{
		index: newIndex([]Entry[T]{none}),
		none:  none,
	}
	for _, f := range flags {
		if f.Wire == 0 {
			panic(fmt.Sprintf("codes: flag %q has no bits set", f.Name))
		}
		t.add(f)
		t.flags = append(t.flags, f)
		t.all |= f.Wire
	}
	return t
}

// WithAny registers the reserved all-flags pattern and its sentinel variant.
// It is meant to be chained onto NewBitmaskTable when the table is declared.
func (t *BitmaskTable[T]) WithAny(e Entry[T]) *BitmaskTable[T] {
	t.add(e)
	t.any = e
	t.hasAny = true
	return t
}

// Decode returns the set view of mask: one variant per recognized flag, the
// ANY singleton for the reserved pattern, or the NONE singleton when no
// recognized bit is set.
func (t *BitmaskTable[T]) Decode(mask uint32) Set[T] {
	return NewSet(t.Flags(mask)...)
}

// Flags is the ordered form of Decode. Variants appear in table order.
func (t *BitmaskTable[T]) Flags(mask uint32) []T {
	if t.hasAny && mask == t.any.Wire {
		return []T{t.any.Value}
	}
	var out []T
	seen := make(map[T]struct{}, len(t.flags))
	for _, f := range t.flags {
		if mask&f.Wire != f.Wire {
			continue
		}
		if _, dup := seen[f.Value]; dup {
			continue
		}
		seen[f.Value] = struct{}{}
		out = append(out, f.Value)
	}
	if len(out) == 0 {
		return []T{t.none.Value}
	}
	return out
}

// Single returns the single view of mask. The reserved pattern yields ANY, a
// mask equal to exactly one row's wire value yields that row's variant, and
// every other mask (zero, unrecognized, or several flags at once) yields
// NONE. Callers that can see several flags at once should use Decode.
func (t *BitmaskTable[T]) Single(mask uint32) T {
	if t.hasAny && mask == t.any.Wire {
		return t.any.Value
	}
	if i, ok := t.byWire[mask]; ok {
		return t.entries[i].Value
	}
	return t.none.Value
}

// SingleName returns the name of the single view of mask.
func (t *BitmaskTable[T]) SingleName(mask uint32) string {
	return t.Name(t.Single(mask))
}

// Encode ORs together the wire value of every flag in set. A set holding the
// ANY sentinel encodes as the reserved pattern; NONE contributes no bits.
func (t *BitmaskTable[T]) Encode(set Set[T]) uint32 {
	if t.hasAny && set.Contains(t.any.Value) {
		return t.any.Wire
	}
	var mask uint32
	for v := range set {
		i, ok := t.byValue[v]
		if !ok {
			continue
		}
		if e := t.entries[i]; e.Value != t.none.Value {
			mask |= e.Wire
		}
	}
	return mask
}

// EncodeFlags is Encode for a literal list of variants.
func (t *BitmaskTable[T]) EncodeFlags(values ...T) uint32 {
	return t.Encode(NewSet(values...))
}

// Residual returns the bits of mask that no row recognizes. The reserved
// pattern has no residual bits.
func (t *BitmaskTable[T]) Residual(mask uint32) uint32 {
	if t.hasAny && mask == t.any.Wire {
		return 0
	}
	return mask &^ t.all
}

// Ordered returns the members of set in table order.
func (t *BitmaskTable[T]) Ordered(set Set[T]) []T {
	out := make([]T, 0, len(set))
	seen := make(map[T]struct{}, len(set))
	for _, e := range t.entries {
		if !set.Contains(e.Value) {
			continue
		}
		if _, dup := seen[e.Value]; dup {
			continue
		}
		seen[e.Value] = struct{}{}
		out = append(out, e.Value)
	}
	return out
}

// None returns the variant used for masks without recognized bits.
func (t *BitmaskTable[T]) None() T {
	return t.none.Value
}

// Any returns the ANY sentinel and whether the table has one.
func (t *BitmaskTable[T]) Any() (T, bool) {
	return t.any.Value, t.hasAny
}

// LookupName returns the variant named s and whether such a row exists.
func (t *BitmaskTable[T]) LookupName(s string) (T, bool) {
	if i, ok := t.byName[s]; ok {
		return t.entries[i].Value, true
	}
	return t.none.Value, false
}

// Name returns the canonical name of v, or the NONE row's name.
func (t *BitmaskTable[T]) Name(v T) string {
	if i, ok := t.byValue[v]; ok {
		return t.entries[i].Name
	}
	return t.none.Name
}

// Entries returns a copy of the rows in table order.
func (t *BitmaskTable[T]) Entries() []Entry[T] {
	return t.copyEntries()
}

// Kind implements Table.
func (t *BitmaskTable[T]) Kind() Kind {
	return KindBitmask
}

// Known implements Table.
func (t *BitmaskTable[T]) Known(mask uint32) bool {
	return t.Residual(mask) == 0
}

// Describe implements Table.
func (t *BitmaskTable[T]) Describe(mask uint32) []string {
	if t.hasAny && mask == t.any.Wire {
		return []string{t.any.Name}
	}
	var names []string
	for _, f := range t.flags {
		if mask&f.Wire == f.Wire {
			names = append(names, f.Name)
		}
	}
	if len(names) == 0 {
		return []string{t.none.Name}
	}
	return names
}

// EncodeNames implements Table. No names encode as the NONE row; a name
// resolving to ANY makes the whole result the reserved pattern.
func (t *BitmaskTable[T]) EncodeNames(names ...string) (uint32, error) {
	var mask uint32
	anySeen := false
	for _, n := range names {
		i, ok := t.byName[n]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownName, n)
		}
		e := t.entries[i]
		if t.hasAny && e.Wire == t.any.Wire {
			anySeen = true
			continue
		}
		mask |= e.Wire
	}
	if anySeen {
		return t.any.Wire, nil
	}
	if len(names) == 0 {
		return t.none.Wire, nil
	}
	return mask, nil
}

// Names implements Table.
func (t *BitmaskTable[T]) Names() []string {
	return t.names()
}

var _ Table = (*BitmaskTable[uint8])(nil)
