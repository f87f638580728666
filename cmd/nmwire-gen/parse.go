package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Enum kinds understood by the generator.
const (
	KindOrdinal = "ordinal"
	KindBitmask = "bitmask"
)

// RawDefs is one definitions file: all enums of one Go package.
type RawDefs struct {
	Package string       `yaml:"package"`
	Path    string       `yaml:"path"` // output directory relative to the module root
	Enums   []RawEnumDef `yaml:"enums"`
}

// RawEnumDef describes one D-Bus enumeration.
type RawEnumDef struct {
	Name        string         `yaml:"name"`
	DBus        string         `yaml:"dbus"` // C name used by the daemon, e.g. NMDeviceState
	Kind        string         `yaml:"kind"` // "ordinal" or "bitmask"
	Description string         `yaml:"description"`
	Fallback    string         `yaml:"fallback"` // ordinal: variant for unmapped values
	None        string         `yaml:"none"`     // bitmask: variant for masks without known bits
	Any         string         `yaml:"any"`      // bitmask: optional all-flags sentinel
	Values      []RawEnumValue `yaml:"values"`
}

// RawEnumValue is one row of an enumeration.
type RawEnumValue struct {
	Name  string `yaml:"name"`
	Value uint32 `yaml:"value"`
	Go    string `yaml:"go"` // optional Go identifier suffix overriding the derived one
}

// ParseDefs parses a definitions file from YAML bytes and validates it.
func ParseDefs(data []byte) (*RawDefs, error) {
	var defs RawDefs
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parsing defs: %w", err)
	}
	if defs.Package == "" {
		return nil, fmt.Errorf("defs missing package")
	}
	for i := range defs.Enums {
		if err := defs.Enums[i].validate(); err != nil {
			return nil, err
		}
	}
	return &defs, nil
}

// LoadDefs loads and parses a definitions file.
func LoadDefs(path string) (*RawDefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseDefs(data)
}

func (e *RawEnumDef) validate() error {
	if e.Name == "" {
		return fmt.Errorf("enum missing name")
	}
	if len(e.Values) == 0 {
		return fmt.Errorf("enum %s: no values", e.Name)
	}

	names := make(map[string]bool, len(e.Values))
	wires := make(map[uint32]bool, len(e.Values))
	for _, v := range e.Values {
		if names[v.Name] {
			return fmt.Errorf("enum %s: duplicate name %s", e.Name, v.Name)
		}
		if wires[v.Value] {
			return fmt.Errorf("enum %s: duplicate value 0x%X", e.Name, v.Value)
		}
		names[v.Name] = true
		wires[v.Value] = true
	}

	switch e.Kind {
	case KindOrdinal:
		if !names[e.Fallback] {
			return fmt.Errorf("enum %s: fallback %q is not a value", e.Name, e.Fallback)
		}
	case KindBitmask:
		if !names[e.None] {
			return fmt.Errorf("enum %s: none %q is not a value", e.Name, e.None)
		}
		if e.Any != "" && !names[e.Any] {
			return fmt.Errorf("enum %s: any %q is not a value", e.Name, e.Any)
		}
		for _, v := range e.Values {
			if v.Name != e.None && v.Name != e.Any && v.Value == 0 {
				return fmt.Errorf("enum %s: flag %s has no bits set", e.Name, v.Name)
			}
		}
	default:
		return fmt.Errorf("enum %s: unknown kind %q", e.Name, e.Kind)
	}
	return nil
}

// value returns the row named name.
func (e *RawEnumDef) value(name string) (RawEnumValue, bool) {
	for _, v := range e.Values {
		if v.Name == name {
			return v, true
		}
	}
	return RawEnumValue{}, false
}
