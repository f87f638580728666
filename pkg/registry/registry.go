// Package registry indexes every translation table by a short name and by
// the D-Bus properties that carry its codes.
package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/nmwire/nmwire-go/pkg/codes"
	"github.com/nmwire/nmwire-go/pkg/mm"
	"github.com/nmwire/nmwire-go/pkg/nm"
)

// ErrUnknownTable is returned by Resolve when nothing matches.
var ErrUnknownTable = errors.New("unknown table")

// Entry describes one registered table.
type Entry struct {
	// Name is the short name, e.g. "nm.device-state".
	Name string

	// DBus is the C enum name used by the daemon.
	DBus string

	// Table translates the codes.
	Table codes.Table

	// Status returns the status model names a wire value converts to. Tables
	// without a status counterpart report their own names.
	Status func(wire uint32) []string

	// Properties are the "Interface.Property" keys whose values are codes of
	// this table.
	Properties []string
}

var entries = []Entry{
	{
		Name:   "nm.device-state",
		DBus:   "NMDeviceState",
		Table:  nm.DeviceStateTable,
		Status: func(w uint32) []string { return one(nm.DeviceStateFromUInt32(w).Status()) },
		Properties: []string{
			prop(nm.DeviceInterface, "State"),
		},
	},
	{
		Name:   "nm.device-type",
		DBus:   "NMDeviceType",
		Table:  nm.DeviceTypeTable,
		Status: func(w uint32) []string { return one(nm.DeviceTypeFromUInt32(w).Status()) },
		Properties: []string{
			prop(nm.DeviceInterface, "DeviceType"),
		},
	},
	{
		Name:   "nm.wifi-capabilities",
		DBus:   "NMDeviceWifiCapabilities",
		Table:  nm.DeviceWifiCapabilitiesTable,
		Status: func(w uint32) []string { return many(nm.WifiCapabilities(w)) },
		Properties: []string{
			prop(nm.WirelessInterface, "WirelessCapabilities"),
		},
	},
	{
		Name:   "nm.ap-security",
		DBus:   "NM80211ApSecurityFlags",
		Table:  nm.ApSecurityFlagsTable,
		Status: func(w uint32) []string { return many(nm.WifiSecurity(w)) },
		Properties: []string{
			prop(nm.AccessPointInterface, "WpaFlags"),
			prop(nm.AccessPointInterface, "RsnFlags"),
		},
	},
	{
		Name:   "nm.wifi-mode",
		DBus:   "NM80211Mode",
		Table:  nm.WifiModeTable,
		Status: func(w uint32) []string { return one(nm.WifiModeFromUInt32(w).Status()) },
		Properties: []string{
			prop(nm.WirelessInterface, "Mode"),
			prop(nm.AccessPointInterface, "Mode"),
		},
	},
	{
		Name:   "mm.modem-state",
		DBus:   "MMModemState",
		Table:  mm.ModemStateTable,
		Status: func(w uint32) []string { return one(mm.ModemStateFromUInt32(w).Status()) },
		Properties: []string{
			prop(mm.ModemInterface, "State"),
		},
	},
	{
		Name:   "mm.access-technology",
		DBus:   "MMModemAccessTechnology",
		Table:  mm.ModemAccessTechnologyTable,
		Status: func(w uint32) []string { return many(mm.AccessTechnologies(w)) },
		Properties: []string{
			prop(mm.ModemInterface, "AccessTechnologies"),
		},
	},
	{
		Name:   "mm.band",
		DBus:   "MMModemBand",
		Table:  mm.ModemBandTable,
		Status: func(w uint32) []string { return one(mm.ModemBandFromUInt32(w).Status()) },
		Properties: []string{
			prop(mm.ModemInterface, "CurrentBands"),
			prop(mm.ModemInterface, "SupportedBands"),
		},
	},
	{
		Name:   "mm.bearer-ip-family",
		DBus:   "MMBearerIpFamily",
		Table:  mm.BearerIPFamilyTable,
		Status: func(w uint32) []string { return many(mm.IPFamilies(w)) },
		Properties: []string{
			prop(mm.ModemInterface, "SupportedIpFamilies"),
		},
	},
	{
		Name:   "mm.location-source",
		DBus:   "MMModemLocationSource",
		Table:  mm.ModemLocationSourceTable,
		Status: func(w uint32) []string { return many(mm.LocationSources(w)) },
		Properties: []string{
			prop(mm.LocationInterface, "Capabilities"),
			prop(mm.LocationInterface, "Enabled"),
		},
	},
	{
		Name:   "mm.3gpp-registration-state",
		DBus:   "MMModem3gppRegistrationState",
		Table:  mm.Modem3gppRegistrationStateTable,
		Status: func(w uint32) []string { return one(mm.Modem3gppRegistrationStateFromUInt32(w).Status()) },
		Properties: []string{
			prop(mm.Modem3gppInterface, "RegistrationState"),
		},
	},
	{
		Name:   "mm.capability",
		DBus:   "MMModemCapability",
		Table:  mm.ModemCapabilityTable,
		Status: func(w uint32) []string { return many(mm.Capabilities(w)) },
		Properties: []string{
			prop(mm.ModemInterface, "CurrentCapabilities"),
			prop(mm.ModemInterface, "SupportedCapabilities"),
		},
	},
	{
		Name:   "mm.mode",
		DBus:   "MMModemMode",
		Table:  mm.ModemModeTable,
		Status: func(w uint32) []string { return many(mm.Modes(w)) },
		Properties: []string{
			prop(mm.ModemInterface, "CurrentModes"),
			prop(mm.ModemInterface, "SupportedModes"),
		},
	},
	{
		Name:   "mm.power-state",
		DBus:   "MMModemPowerState",
		Table:  mm.ModemPowerStateTable,
		Status: func(w uint32) []string { return one(mm.ModemPowerStateFromUInt32(w).Status()) },
		Properties: []string{
			prop(mm.ModemInterface, "PowerState"),
		},
	},
	{
		Name:   "mm.port-type",
		DBus:   "MMModemPortType",
		Table:  mm.ModemPortTypeTable,
		Status: func(w uint32) []string { return one(mm.ModemPortTypeFromUInt32(w).Status()) },
		Properties: []string{
			prop(mm.ModemInterface, "Ports"),
		},
	},
	{
		Name:   "mm.sim-type",
		DBus:   "MMSimType",
		Table:  mm.SimTypeTable,
		Status: func(w uint32) []string { return one(mm.SimTypeFromUInt32(w).Status()) },
		Properties: []string{
			prop(mm.SimInterface, "SimType"),
		},
	},
}

var (
	byName     = make(map[string]int, len(entries))
	byProperty = make(map[string]int)
)

func init() {
	for i, e := range entries {
		if _, dup := byName[e.Name]; dup {
			panic(fmt.Sprintf("registry: duplicate table %q", e.Name))
		}
		byName[e.Name] = i
		for _, p := range e.Properties {
			if _, dup := byProperty[p]; dup {
				panic(fmt.Sprintf("registry: property %q registered twice", p))
			}
			byProperty[p] = i
		}
	}
}

func one[S fmt.Stringer](s S) []string {
	return []string{s.String()}
}

func many[S interface {
	comparable
	fmt.Stringer
}](set codes.Set[S]) []string {
	names := make([]string, 0, set.Len())
	for _, v := range set.Slice() {
		names = append(names, v.String())
	}
	sort.Strings(names)
	return names
}

func prop(iface, name string) string {
	return iface + "." + name
}

// Lookup returns the table registered under a short name.
func Lookup(name string) (Entry, bool) {
	i, ok := byName[name]
	if !ok {
		return Entry{}, false
	}
	return entries[i], true
}

// ForProperty returns the table whose codes the given property carries.
func ForProperty(iface, name string) (Entry, bool) {
	i, ok := byProperty[prop(iface, name)]
	if !ok {
		return Entry{}, false
	}
	return entries[i], true
}

// Resolve accepts either a short name or an "Interface.Property" key.
func Resolve(key string) (Entry, error) {
	if i, ok := byName[key]; ok {
		return entries[i], nil
	}
	if i, ok := byProperty[key]; ok {
		return entries[i], nil
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownTable, key)
}

// All returns every registered table sorted by name.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
