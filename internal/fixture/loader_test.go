package fixture_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmwire/nmwire-go/internal/fixture"
)

func TestParseSuite(t *testing.T) {
	yaml := `
table: mm.access-technology
description: sample
cases:
  - name: pots and gsm
    wire: 0x3
    names: [POTS, GSM]
    status: [GSM, POTS]
    known: true
    roundtrip: true
  - wire: 0xFFFFFFFF
    names: [ANY]
`
	s, err := fixture.ParseSuite([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "mm.access-technology", s.Table)
	require.Len(t, s.Cases, 2)
	assert.Equal(t, uint32(3), s.Cases[0].Wire)
	assert.Equal(t, []string{"POTS", "GSM"}, s.Cases[0].Names)
	assert.True(t, s.Cases[0].RoundTrip)
	assert.Equal(t, "pots and gsm", s.Cases[0].Label())
	assert.Equal(t, uint32(0xFFFFFFFF), s.Cases[1].Wire)
	assert.Equal(t, "0xffffffff", s.Cases[1].Label())
	assert.False(t, s.Cases[1].Known)
}

func TestParseSuiteErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing table", "cases: [{wire: 1, names: [A]}]"},
		{"no cases", "table: x"},
		{"wire out of range", "table: x\ncases: [{wire: 0x100000000, names: [A]}]"},
		{"not yaml", "table: [unclosed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fixture.ParseSuite([]byte(tt.yaml))
			var le *fixture.LoadError
			assert.True(t, errors.As(err, &le))
		})
	}
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"),
		[]byte("table: nm.wifi-mode\ncases: [{wire: 3, names: [AP]}]\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644))

	suites, err := fixture.LoadDirectory(dir)
	require.NoError(t, err)
	require.Len(t, suites, 1)
	assert.Equal(t, "nm.wifi-mode", suites[0].Table)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yml"), []byte("table: x\n"), 0o644))
	_, err = fixture.LoadDirectory(dir)
	var le *fixture.LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, filepath.Join(dir, "b.yml"), le.File)
}

func TestLoadProperties(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
org.freedesktop.NetworkManager.Device:
  State: 100
  Interface: eth0
`), 0o644))

	props, err := fixture.LoadProperties(path)
	require.NoError(t, err)

	v, ok := props.Get("org.freedesktop.NetworkManager.Device", "State")
	assert.True(t, ok)
	assert.Equal(t, 100, v)

	_, ok = props.Get("org.freedesktop.NetworkManager.Device", "Mtu")
	assert.False(t, ok)
	_, ok = props.Get("org.freedesktop.NetworkManager.AccessPoint", "Ssid")
	assert.False(t, ok)
}

func TestLoadErrorMessage(t *testing.T) {
	err := &fixture.LoadError{File: "a.yaml", Line: 12, Message: "bad"}
	assert.Equal(t, "a.yaml:12: bad", err.Error())

	cause := errors.New("boom")
	err = &fixture.LoadError{File: "a.yaml", Message: "bad", Cause: cause}
	assert.Equal(t, "a.yaml: bad", err.Error())
	assert.ErrorIs(t, err, cause)
}
