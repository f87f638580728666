package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nmwire/nmwire-go/pkg/mm"
	"github.com/nmwire/nmwire-go/pkg/nm"
	"github.com/nmwire/nmwire-go/pkg/props"
	"github.com/nmwire/nmwire-go/pkg/registry"
	"github.com/nmwire/nmwire-go/pkg/status"
	"github.com/nmwire/nmwire-go/pkg/wire"
)

// ObjectCapture is the YAML form of one captured object.
type ObjectCapture struct {
	Object     string                    `yaml:"object" json:"object"`
	Properties map[string]map[string]any `yaml:"properties" json:"properties"`
}

// LoadCaptures reads a YAML list of captured objects.
func LoadCaptures(path string) ([]ObjectCapture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read capture: %w", err)
	}
	var captures []ObjectCapture
	if err := yaml.Unmarshal(data, &captures); err != nil {
		return nil, fmt.Errorf("failed to parse capture %s: %w", path, err)
	}
	return captures, nil
}

// RunSnapshotCreate converts YAML captures into a CBOR snapshot file. A
// capture whose object and properties repeat an earlier one is skipped.
func RunSnapshotCreate(env *Env, inputs []string, output string) error {
	var (
		snaps   []*wire.Snapshot
		seen    []ObjectCapture
		skipped int
	)
	for _, in := range inputs {
		captures, err := LoadCaptures(in)
		if err != nil {
			return err
		}
		for _, c := range captures {
			if containsCapture(seen, c) {
				skipped++
				continue
			}
			seen = append(seen, c)
			snaps = append(snaps, wire.FromProperties(c.Object, c.Properties))
		}
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := wire.WriteSnapshots(f, snaps...); err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "Wrote %d snapshots to %s\n", len(snaps), output)
	if skipped > 0 {
		fmt.Fprintf(env.Out, "Skipped %d duplicate captures\n", skipped)
	}
	return nil
}

// containsCapture reports whether an object with identical properties was
// already captured. Repeated polls of an idle device produce such copies.
func containsCapture(seen []ObjectCapture, c ObjectCapture) bool {
	for _, s := range seen {
		if s.Object == c.Object && wire.Equal(s.Properties, c.Properties) {
			return true
		}
	}
	return false
}

func readSnapshotFile(path string) ([]*wire.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer f.Close()
	return wire.ReadSnapshots(f)
}

// RunSnapshotShow prints the properties of every snapshot in a file. Values
// of registered properties are annotated with their names.
func RunSnapshotShow(env *Env, path string) error {
	snaps, err := readSnapshotFile(path)
	if err != nil {
		return err
	}

	if env.Format != FormatText {
		out := make([]ObjectCapture, 0, len(snaps))
		for _, s := range snaps {
			p := make(map[string]map[string]any, len(s.Properties))
			for iface, values := range s.Properties {
				p[iface] = make(map[string]any, len(values))
				for name, v := range values {
					p[iface][name] = normalize(v)
				}
			}
			out = append(out, ObjectCapture{Object: s.Object, Properties: p})
		}
		return env.structured(out)
	}

	for _, s := range snaps {
		fmt.Fprintf(env.Out, "%s [snap:%s] %s\n", s.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"), shortID(s.ID), s.Object)
		for _, iface := range s.Interfaces() {
			fmt.Fprintf(env.Out, "  %s\n", iface)
			names := make([]string, 0, len(s.Properties[iface]))
			for name := range s.Properties[iface] {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				v := s.Properties[iface][name]
				fmt.Fprintf(env.Out, "    %-22s %v%s\n", name, normalize(v), annotate(iface, name, v))
			}
		}
		fmt.Fprintln(env.Out)
	}
	return nil
}

// annotate returns " = NAMES" for values of registered properties.
func annotate(iface, name string, v any) string {
	entry, ok := registry.ForProperty(iface, name)
	if !ok {
		return ""
	}
	var wires []uint32
	switch x := v.(type) {
	case []any:
		for _, e := range x {
			if n, err := ParseWire(fmt.Sprint(e)); err == nil {
				wires = append(wires, n)
			}
		}
	default:
		n, err := ParseWire(fmt.Sprint(x))
		if err != nil {
			return ""
		}
		wires = append(wires, n)
	}
	if len(wires) == 0 {
		return ""
	}
	parts := make([]string, 0, len(wires))
	for _, w := range wires {
		parts = append(parts, strings.Join(entry.Table.Describe(w), "|"))
	}
	return " = " + strings.Join(parts, ", ")
}

// normalize converts CBOR decoded values into forms encoding/json accepts.
func normalize(v any) any {
	switch x := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalize(e)
		}
		return out
	case []byte:
		return string(x)
	}
	return v
}

// Record is the decoded status of one object.
type Record struct {
	Kind   string               `json:"kind"`
	Object string               `json:"object"`
	Device *status.DeviceStatus `json:"device,omitempty"`
	Wifi   *status.WifiStatus   `json:"wifi,omitempty"`
	Modem  *status.ModemStatus  `json:"modem,omitempty"`
}

// Record kinds.
const (
	KindDevice = "device"
	KindWifi   = "wifi"
	KindModem  = "modem"
)

// DecodeSnapshots decodes every device and modem in snaps. Access point
// and IP4Config objects are resolved through the object paths the devices
// reference and are not reported on their own.
func DecodeSnapshots(d *props.Decoder, snaps []*wire.Snapshot) ([]Record, error) {
	byObject := make(map[string]*wire.Snapshot, len(snaps))
	for _, s := range snaps {
		byObject[s.Object] = s
	}
	ref := func(s *wire.Snapshot, iface, name string) props.PropertySource {
		v, _ := s.Get(iface, name)
		path, _ := v.(string)
		if target, ok := byObject[path]; ok {
			return target
		}
		return nil
	}

	var out []Record
	for _, s := range snaps {
		switch {
		case s.Has(mm.ModemInterface):
			st, err := d.DecodeModem(s)
			if err != nil {
				return out, fmt.Errorf("%s: %w", s.Object, err)
			}
			out = append(out, Record{Kind: KindModem, Object: s.Object, Modem: &st})

		case s.Has(nm.WirelessInterface):
			src := props.WifiSources{
				Device:            s,
				IP4Config:         ref(s, nm.DeviceInterface, "Ip4Config"),
				ActiveAccessPoint: ref(s, nm.WirelessInterface, "ActiveAccessPoint"),
			}
			if v, ok := s.Get(nm.WirelessInterface, "AccessPoints"); ok {
				paths, _ := v.([]any)
				for _, p := range paths {
					if target, ok := byObject[fmt.Sprint(p)]; ok {
						src.AccessPoints = append(src.AccessPoints, target)
					}
				}
			}
			st, err := d.DecodeWifi(src)
			if err != nil {
				return out, fmt.Errorf("%s: %w", s.Object, err)
			}
			out = append(out, Record{Kind: KindWifi, Object: s.Object, Wifi: &st})

		case s.Has(nm.DeviceInterface):
			st, err := d.DecodeDevice(s, ref(s, nm.DeviceInterface, "Ip4Config"))
			if err != nil {
				return out, fmt.Errorf("%s: %w", s.Object, err)
			}
			out = append(out, Record{Kind: KindDevice, Object: s.Object, Device: &st})
		}
	}
	return out, nil
}

// RunSnapshotDecode decodes the snapshots of a file into status records.
func RunSnapshotDecode(env *Env, path string) error {
	snaps, err := readSnapshotFile(path)
	if err != nil {
		return err
	}

	d := props.NewDecoder(props.WithLogger(env.Logger), props.WithSessionID(env.Session))
	records, err := DecodeSnapshots(d, snaps)
	if err != nil {
		return err
	}

	if env.Format != FormatText {
		return env.structured(records)
	}
	for _, r := range records {
		formatRecord(env, r)
	}
	return nil
}

func formatRecord(env *Env, r Record) {
	w := env.Out
	switch r.Kind {
	case KindDevice:
		formatDevice(env, r.Device)
	case KindWifi:
		formatDevice(env, &r.Wifi.DeviceStatus)
		fmt.Fprintf(w, "  Mode: %s  Bitrate: %d kb/s\n", r.Wifi.Mode, r.Wifi.Bitrate)
		fmt.Fprintf(w, "  Capabilities: %s\n", joinNames(r.Wifi.Capabilities.Slice()))
		if ap := r.Wifi.ActiveAccessPoint; ap != nil {
			fmt.Fprintf(w, "  Access point: %q %s %d MHz %d%%\n", ap.SSID, ap.HardwareAddress, ap.Frequency, ap.Strength)
			fmt.Fprintf(w, "    WPA: %s  RSN: %s\n", joinNames(ap.WPASecurity.Slice()), joinNames(ap.RSNSecurity.Slice()))
		}
	case KindModem:
		m := r.Modem
		fmt.Fprintf(w, "%s %s %s\n", m.Object, m.ConnectionStatus, m.PowerState)
		if m.Model != "" {
			fmt.Fprintf(w, "  Model: %s %s (%s)\n", m.Manufacturer, m.Model, m.Revision)
		}
		fmt.Fprintf(w, "  Access: %s  Signal: %d%%\n", joinNames(m.AccessTechnologies.Slice()), m.SignalQuality)
		fmt.Fprintf(w, "  Bands: %s\n", joinNames(m.CurrentBands))
		fmt.Fprintf(w, "  Modes: %s (preferred %s)\n", joinNames(m.CurrentModes.Allowed.Slice()), m.CurrentModes.Preferred)
		fmt.Fprintf(w, "  Registration: %s %s\n", m.RegistrationStatus, m.OperatorName)
		for _, p := range m.Ports {
			fmt.Fprintf(w, "  Port: %s %s\n", p.Name, p.Type)
		}
	}
	fmt.Fprintln(w)
}

func formatDevice(env *Env, d *status.DeviceStatus) {
	w := env.Out
	up := "down"
	if d.Up {
		up = "up"
	}
	fmt.Fprintf(w, "%s %s %s %s mtu %d\n", d.Interface, d.Type, d.State, up, d.MTU)
	if d.HardwareAddress != "" {
		fmt.Fprintf(w, "  HwAddress: %s\n", d.HardwareAddress)
	}
	if d.IPv4 != nil {
		for _, a := range d.IPv4.Addresses {
			fmt.Fprintf(w, "  IPv4: %s/%d\n", a.Address, a.Prefix)
		}
		if d.IPv4.Gateway.IsValid() {
			fmt.Fprintf(w, "  Gateway: %s\n", d.IPv4.Gateway)
		}
		for _, ns := range d.IPv4.DNS {
			fmt.Fprintf(w, "  DNS: %s\n", ns)
		}
	}
}

func joinNames[T fmt.Stringer](values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}
