package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nmwire/nmwire-go/pkg/log"
	"github.com/nmwire/nmwire-go/pkg/registry"
)

type recorder struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *recorder) Log(e log.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func newTestEnv(format string) (*Env, *bytes.Buffer, *recorder) {
	var buf bytes.Buffer
	rec := &recorder{}
	env := NewEnv(&buf, format, rec)
	env.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return env, &buf, rec
}

func TestParseWire(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"100", 100, false},
		{"0x4000", 0x4000, false},
		{"0b101", 5, false},
		{" 7 ", 7, false},
		{"-1", 0xFFFFFFFF, false},
		{"4294967295", 0xFFFFFFFF, false},
		{"4294967296", 0, true},
		{"-2147483649", 0, true},
		{"LTE", 0, true},
		{"010", 10, false},
		{"-010", 0xFFFFFFF6, false},
		{"00", 0, false},
		{"0", 0, false},
		{"0o10", 8, false},
		{"-0x10", 0xFFFFFFF0, false},
		{"-", 0, true},
		{"09", 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWire(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslate(t *testing.T) {
	entry, err := registry.Resolve("mm.access-technology")
	require.NoError(t, err)

	tr := Translate(entry, 0x80004000)
	assert.Equal(t, []string{"LTE"}, tr.Names)
	assert.Equal(t, []string{"LTE"}, tr.Status)
	assert.False(t, tr.Known)
	assert.Equal(t, uint32(0x80000000), tr.Residual)

	state, err := registry.Resolve("nm.device-state")
	require.NoError(t, err)
	tr = Translate(state, 100)
	assert.Equal(t, []string{"ACTIVATED"}, tr.Names)
	assert.True(t, tr.Known)
	assert.Empty(t, tr.Single)
}

func TestRunDecodeText(t *testing.T) {
	env, buf, rec := newTestEnv(FormatText)

	err := RunDecode(env, "nm.device-state", []string{"100", "7"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "nm.device-state 0x00000064 (100): ACTIVATED")
	assert.Contains(t, out, "unknown:  no row for this value")

	require.Len(t, rec.events, 2)
	assert.Equal(t, log.CategoryDecode, rec.events[0].Category)
	assert.Equal(t, log.CategoryUnknown, rec.events[1].Category)
	assert.Equal(t, env.Session, rec.events[0].SessionID)
	assert.False(t, rec.events[0].Timestamp.IsZero())
}

func TestRunDecodeByProperty(t *testing.T) {
	env, buf, _ := newTestEnv(FormatJSON)

	err := RunDecode(env, "org.freedesktop.ModemManager1.Modem.AccessTechnologies", []string{"0x4000"})
	require.NoError(t, err)

	var out []Translation
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "mm.access-technology", out[0].Table)
	assert.Equal(t, []string{"LTE"}, out[0].Names)
}

func TestRunDecodeErrors(t *testing.T) {
	env, _, _ := newTestEnv(FormatText)

	assert.Error(t, RunDecode(env, "nm.nope", []string{"1"}))
	assert.Error(t, RunDecode(env, "nm.device-state", []string{"ACTIVATED"}))
}

func TestRunEncode(t *testing.T) {
	tests := []struct {
		name  string
		table string
		names []string
		want  string
	}{
		{"bitmask joined", "nm.wifi-capabilities", []string{"WPA|RSN"}, "0x00000030\n"},
		{"bitmask separate", "nm.wifi-capabilities", []string{"WPA", "RSN"}, "0x00000030\n"},
		{"ordinal", "nm.device-state", []string{"ACTIVATED"}, "100\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, buf, rec := newTestEnv(FormatText)
			require.NoError(t, RunEncode(env, tt.table, tt.names))
			assert.Equal(t, tt.want, buf.String())
			require.Len(t, rec.events, 1)
			assert.Equal(t, log.CategoryEncode, rec.events[0].Category)
		})
	}
}

func TestRunEncodeUnknownName(t *testing.T) {
	env, buf, rec := newTestEnv(FormatText)

	err := RunEncode(env, "nm.device-state", []string{"activated"})
	assert.Error(t, err)
	assert.Empty(t, buf.String())
	require.Len(t, rec.events, 1)
	assert.Equal(t, log.CategoryError, rec.events[0].Category)
	assert.NotEmpty(t, rec.events[0].Message)
}

func TestRunEncodeYAML(t *testing.T) {
	env, buf, _ := newTestEnv(FormatYAML)

	require.NoError(t, RunEncode(env, "mm.mode", []string{"3G|4G"}))

	var out map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "mm.mode", out["table"])
	assert.Equal(t, []any{"3G", "4G"}, out["names"])
}

func TestRunList(t *testing.T) {
	env, buf, _ := newTestEnv(FormatText)

	require.NoError(t, RunList(env, "mm.", false))
	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "mm.band")
	assert.NotContains(t, out, "nm.device-state")

	env, buf, _ = newTestEnv(FormatJSON)
	require.NoError(t, RunList(env, "nm.wifi-mode", true))
	var infos []TableInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "ORDINAL", infos[0].Kind)
	assert.Contains(t, infos[0].Names, "AP")
}

func TestRunLocation(t *testing.T) {
	tests := []struct {
		name    string
		caps    string
		enabled string
		gps     bool
		want    string
		wantErr bool
	}{
		{"enable gps", "0x17", "0x0", true, "Setup(0x00000010, false): NONE -> GPS_UNMANAGED", false},
		{"already enabled", "0x17", "0x10", true, "No change: GPS_UNMANAGED already enabled", false},
		{"disable", "0x17", "0x5", false, "Setup(0x00000000, false)", false},
		{"nothing to disable", "0x17", "0", false, "No change: NONE already enabled", false},
		{"gps unsupported", "0x1", "0", true, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, buf, rec := newTestEnv(FormatText)
			err := RunLocation(env, tt.caps, tt.enabled, tt.gps)
			if tt.wantErr {
				assert.Error(t, err)
				require.Len(t, rec.events, 1)
				assert.Equal(t, log.CategoryError, rec.events[0].Category)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(dir, "nmwire.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\nlog_level: debug\n"), 0644))
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "nmwire> ", cfg.Prompt)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("format: xml\n"), 0644))
	_, err = LoadConfig(bad)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.nlog")
	cfg := DefaultConfig()
	cfg.LogFile = path

	var stderr bytes.Buffer
	logger, closeLog, err := NewLogger(cfg, &stderr)
	require.NoError(t, err)

	env := NewEnv(&bytes.Buffer{}, FormatText, logger)
	require.NoError(t, RunDecode(env, "mm.access-technology", []string{"0x80004000"}))
	require.NoError(t, closeLog())

	assert.Contains(t, stderr.String(), "mm.access-technology", "unknown events reach the console at warn level")

	reader, err := log.NewReader(path)
	require.NoError(t, err)
	defer reader.Close()
	events, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, uint32(0x80000000), events[0].Residual)
}
