package codes

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Set is a set of flag variants.
//
// The zero value (nil) is an empty set that can be read but not added to.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding the given variants.
func NewSet[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v into the set.
func (s Set[T]) Add(v T) {
	s[v] = struct{}{}
}

// Contains reports whether v is in the set.
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of variants in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// Equal reports whether both sets hold the same variants.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// Slice returns the variants in unspecified order.
// Use BitmaskTable.Ordered for table order.
func (s Set[T]) Slice() []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}

// MarshalJSON encodes the set as a JSON array. Elements are sorted by their
// encoded form so the output is deterministic.
func (s Set[T]) MarshalJSON() ([]byte, error) {
	encoded := make([][]byte, 0, len(s))
	for v := range s {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		encoded = append(encoded, b)
	}
	sort.Slice(encoded, func(i, j int) bool {
		return bytes.Compare(encoded[i], encoded[j]) < 0
	})

	var buf bytes.Buffer
	buf.WriteByte('[')
	buf.Write(bytes.Join(encoded, []byte{','}))
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON array into the set.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = NewSet(values...)
	return nil
}
