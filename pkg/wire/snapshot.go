package wire

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidSnapshot is returned for snapshots missing an ID or object.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Snapshot is the captured property state of one D-Bus object.
type Snapshot struct {
	// ID identifies the capture.
	ID string `cbor:"1,keyasint"`

	// Timestamp is when the properties were read.
	Timestamp time.Time `cbor:"2,keyasint"`

	// Object is the D-Bus object path.
	Object string `cbor:"3,keyasint"`

	// Properties maps interface name to property name to value.
	Properties map[string]map[string]any `cbor:"4,keyasint"`
}

// NewSnapshot creates an empty snapshot of object with a fresh ID.
func NewSnapshot(object string) *Snapshot {
	return &Snapshot{
		ID:         uuid.NewString(),
		Timestamp:  time.Now().UTC(),
		Object:     object,
		Properties: make(map[string]map[string]any),
	}
}

// FromProperties creates a snapshot holding a copy of props.
func FromProperties(object string, props map[string]map[string]any) *Snapshot {
	s := NewSnapshot(object)
	for iface, values := range props {
		for name, v := range values {
			s.Set(iface, name, v)
		}
	}
	return s
}

// Set stores a property value.
func (s *Snapshot) Set(iface, name string, value any) {
	if s.Properties == nil {
		s.Properties = make(map[string]map[string]any)
	}
	m, ok := s.Properties[iface]
	if !ok {
		m = make(map[string]any)
		s.Properties[iface] = m
	}
	m[name] = value
}

// Get returns a property value. It makes Snapshot a property source for the
// decoders in package props.
func (s *Snapshot) Get(iface, name string) (any, bool) {
	v, ok := s.Properties[iface][name]
	return v, ok
}

// ObjectPath returns the object the snapshot was taken of.
func (s *Snapshot) ObjectPath() string {
	return s.Object
}

// Interfaces returns the captured interface names, sorted.
func (s *Snapshot) Interfaces() []string {
	out := make([]string, 0, len(s.Properties))
	for iface := range s.Properties {
		out = append(out, iface)
	}
	sort.Strings(out)
	return out
}

// Has reports whether the snapshot carries any property of iface.
func (s *Snapshot) Has(iface string) bool {
	return len(s.Properties[iface]) > 0
}

// Validate checks that the snapshot can be stored.
func (s *Snapshot) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidSnapshot)
	}
	if s.Object == "" {
		return fmt.Errorf("%w: missing object path", ErrInvalidSnapshot)
	}
	return nil
}
