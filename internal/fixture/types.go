// Package fixture loads the YAML translation fixtures used by the table tests.
package fixture

import "strconv"

// Suite is one fixture file: translation cases for one table.
type Suite struct {
	// Table is the registry name of the table under test (e.g. "mm.access-technology").
	Table string `yaml:"table"`

	// Description explains what the suite covers.
	Description string `yaml:"description"`

	// Cases are the wire values to translate.
	Cases []Case `yaml:"cases"`
}

// Case is one wire value and what it must translate to.
type Case struct {
	// Name labels the subtest; defaults to the hex wire value.
	Name string `yaml:"name,omitempty"`

	// Wire is the value as read from the bus. Hex literals are accepted.
	Wire uint32 `yaml:"wire"`

	// Names are the variant names the value decodes to: one for ordinal
	// tables, the set view in table order for bitmask tables.
	Names []string `yaml:"names"`

	// Single is the expected single view of a bitmask value.
	Single string `yaml:"single,omitempty"`

	// Status are the expected status model names, in any order.
	Status []string `yaml:"status,omitempty"`

	// Known reports whether the value decodes without fallback or dropped bits.
	Known bool `yaml:"known"`

	// RoundTrip requires that encoding Names reproduces Wire.
	RoundTrip bool `yaml:"roundtrip"`
}

// Label returns the subtest name for the case.
func (c Case) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return "0x" + strconv.FormatUint(uint64(c.Wire), 16)
}

// Properties is a captured set of D-Bus property values keyed by interface
// and property name.
type Properties map[string]map[string]any

// Get implements the property source used by the decoders.
func (p Properties) Get(iface, name string) (any, bool) {
	v, ok := p[iface][name]
	return v, ok
}

// LoadError provides details about a fixture loading error.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Line is the line number where the error occurred (0 if unknown).
	Line int

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return e.File + ":" + strconv.Itoa(e.Line) + ": " + e.Message
	}
	return e.File + ": " + e.Message
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
