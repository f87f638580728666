// Package nm holds the NetworkManager D-Bus enumerations and their
// translation into the status model.
//
// The enumerations in codes_gen.go mirror the daemon's C enums one to one:
// a value of DeviceState is the wire code itself. The hand-written files map
// those codes onto status types:
//
//	state := nm.DeviceStateFromUInt32(raw) // unmapped codes become UNKNOWN
//	st := state.Status()                   // status.InterfaceStateActivated
//	caps := nm.WifiCapabilities(rawCaps)   // codes.Set[status.WifiCapability]
//
//go:generate go run ../../cmd/nmwire-gen -defs ../../defs -root ../..
package nm

// D-Bus names used by NetworkManager.
const (
	BusName    = "org.freedesktop.NetworkManager"
	ObjectPath = "/org/freedesktop/NetworkManager"

	DeviceInterface      = BusName + ".Device"
	WirelessInterface    = DeviceInterface + ".Wireless"
	GenericInterface     = DeviceInterface + ".Generic"
	AccessPointInterface = BusName + ".AccessPoint"
	IP4ConfigInterface   = BusName + ".IP4Config"
)
