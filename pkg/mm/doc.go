// Package mm holds the ModemManager D-Bus enumerations and their
// translation into the status model.
//
// Bitmask properties have two views. The set view keeps every recognized
// flag; the single view returns one variant and is only exact for masks
// carrying one flag:
//
//	techs := mm.AccessTechnologies(0x3)      // {POTS, GSM}
//	one := mm.AccessTechnology(0x4000)       // status.AccessTechnologyLTE
//	all := mm.AccessTechnologies(mm.AnyMask) // {ANY}
//
//go:generate go run ../../cmd/nmwire-gen -defs ../../defs -root ../..
package mm

// D-Bus names used by ModemManager.
const (
	BusName    = "org.freedesktop.ModemManager1"
	ObjectPath = "/org/freedesktop/ModemManager1"

	ModemInterface     = BusName + ".Modem"
	Modem3gppInterface = ModemInterface + ".Modem3gpp"
	LocationInterface  = ModemInterface + ".Location"
	SimpleInterface    = ModemInterface + ".Simple"
	BearerInterface    = BusName + ".Bearer"
	SimInterface       = BusName + ".Sim"
)

// AnyMask is the all-flags pattern most ModemManager bitmasks reserve for
// ANY. BearerIPFamily uses its own pattern.
const AnyMask uint32 = 0xFFFFFFFF
