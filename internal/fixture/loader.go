package fixture

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// ParseSuite parses a fixture suite from YAML bytes.
func ParseSuite(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		le := &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
		if te, ok := err.(*yaml.TypeError); ok && len(te.Errors) > 0 {
			le.Message = te.Errors[0]
		}
		return nil, le
	}

	if s.Table == "" {
		return nil, &LoadError{
			Message: "suite table is required",
		}
	}

	if len(s.Cases) == 0 {
		return nil, &LoadError{
			Message: "suite must have at least one case",
		}
	}

	return &s, nil
}

// LoadSuite loads a fixture suite from a file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	s, err := ParseSuite(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{
			File:    path,
			Message: err.Error(),
		}
	}

	return s, nil
}

// LoadDirectory loads all suites from a directory.
// Only files with .yaml or .yml extensions are loaded.
func LoadDirectory(dir string) ([]*Suite, error) {
	var suites []*Suite

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{
			File:    dir,
			Message: "failed to read directory",
			Cause:   err,
		}
	}

	for _, entry := range entries {
		if entry.IsDir() || !isYAML(entry.Name()) {
			continue
		}

		s, err := LoadSuite(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		suites = append(suites, s)
	}

	return suites, nil
}

// LoadProperties loads a captured property set from a file.
func LoadProperties(path string) (Properties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	var props Properties
	if err := yaml.Unmarshal(data, &props); err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}
	return props, nil
}

// MustLoadDirectory loads all suites from dir and fails the test on error.
func MustLoadDirectory(tb testing.TB, dir string) []*Suite {
	tb.Helper()
	suites, err := LoadDirectory(dir)
	if err != nil {
		tb.Fatalf("loading fixtures: %v", err)
	}
	if len(suites) == 0 {
		tb.Fatalf("no fixtures in %s", dir)
	}
	return suites
}

// MustLoadProperties loads a property set and fails the test on error.
func MustLoadProperties(tb testing.TB, path string) Properties {
	tb.Helper()
	props, err := LoadProperties(path)
	if err != nil {
		tb.Fatalf("loading properties: %v", err)
	}
	return props
}

func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
