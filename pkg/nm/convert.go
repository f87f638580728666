package nm

import (
	"github.com/nmwire/nmwire-go/pkg/codes"
	"github.com/nmwire/nmwire-go/pkg/status"
)

// mirror is satisfied by every generated enumeration.
type mirror interface {
	~uint32
	String() string
}

// to builds one conversion row from a mirror value to a status variant.
func to[S comparable, M mirror](m M, s S) codes.Entry[S] {
	return codes.Entry[S]{Wire: uint32(m), Value: s, Name: m.String()}
}

var deviceStateStatus = codes.NewOrdinalTable(status.InterfaceStateUnknown,
	to(DeviceStateUnknown, status.InterfaceStateUnknown),
	to(DeviceStateUnmanaged, status.InterfaceStateUnmanaged),
	to(DeviceStateUnavailable, status.InterfaceStateUnavailable),
	to(DeviceStateDisconnected, status.InterfaceStateDisconnected),
	to(DeviceStatePrepare, status.InterfaceStatePrepare),
	to(DeviceStateConfig, status.InterfaceStateConfig),
	to(DeviceStateNeedAuth, status.InterfaceStateNeedAuth),
	to(DeviceStateIPConfig, status.InterfaceStateIPConfig),
	to(DeviceStateIPCheck, status.InterfaceStateIPCheck),
	to(DeviceStateSecondaries, status.InterfaceStateSecondaries),
	to(DeviceStateActivated, status.InterfaceStateActivated),
	to(DeviceStateDeactivating, status.InterfaceStateDeactivating),
	to(DeviceStateFailed, status.InterfaceStateFailed),
)

// Device types without a status counterpart fall back to UNKNOWN.
var deviceTypeStatus = codes.NewOrdinalTable(status.InterfaceTypeUnknown,
	to(DeviceTypeUnknown, status.InterfaceTypeUnknown),
	to(DeviceTypeEthernet, status.InterfaceTypeEthernet),
	to(DeviceTypeWifi, status.InterfaceTypeWifi),
	to(DeviceTypeBT, status.InterfaceTypeBluetooth),
	to(DeviceTypeModem, status.InterfaceTypeModem),
	to(DeviceTypeBond, status.InterfaceTypeBond),
	to(DeviceTypeVLAN, status.InterfaceTypeVLAN),
	to(DeviceTypeBridge, status.InterfaceTypeBridge),
	to(DeviceTypeTUN, status.InterfaceTypeTUN),
	to(DeviceTypeWireGuard, status.InterfaceTypeWireGuard),
	to(DeviceTypeLoopback, status.InterfaceTypeLoopback),
)

var wifiModeStatus = codes.NewOrdinalTable(status.WifiModeUnknown,
	to(WifiModeUnknown, status.WifiModeUnknown),
	to(WifiModeAdHoc, status.WifiModeAdHoc),
	to(WifiModeInfra, status.WifiModeInfra),
	to(WifiModeAP, status.WifiModeMaster),
	to(WifiModeMesh, status.WifiModeUnknown),
)

// Only the cipher and WPA flags are reported; frequency, mode and mesh
// capabilities are dropped.
var wifiCapabilityStatus = codes.NewBitmaskTable(
	to(DeviceWifiCapabilitiesNone, status.WifiCapabilityNone),
	to(DeviceWifiCapabilitiesCipherWEP40, status.WifiCapabilityCipherWEP40),
	to(DeviceWifiCapabilitiesCipherWEP104, status.WifiCapabilityCipherWEP104),
	to(DeviceWifiCapabilitiesCipherTKIP, status.WifiCapabilityCipherTKIP),
	to(DeviceWifiCapabilitiesCipherCCMP, status.WifiCapabilityCipherCCMP),
	to(DeviceWifiCapabilitiesWPA, status.WifiCapabilityWPA),
	to(DeviceWifiCapabilitiesRSN, status.WifiCapabilityRSN),
)

// SAE, OWE and Suite-B key management flags have no status counterpart.
var wifiSecurityStatus = codes.NewBitmaskTable(
	to(ApSecurityFlagsNone, status.WifiSecurityNone),
	to(ApSecurityFlagsPairWEP40, status.WifiSecurityPairWEP40),
	to(ApSecurityFlagsPairWEP104, status.WifiSecurityPairWEP104),
	to(ApSecurityFlagsPairTKIP, status.WifiSecurityPairTKIP),
	to(ApSecurityFlagsPairCCMP, status.WifiSecurityPairCCMP),
	to(ApSecurityFlagsGroupWEP40, status.WifiSecurityGroupWEP40),
	to(ApSecurityFlagsGroupWEP104, status.WifiSecurityGroupWEP104),
	to(ApSecurityFlagsGroupTKIP, status.WifiSecurityGroupTKIP),
	to(ApSecurityFlagsGroupCCMP, status.WifiSecurityGroupCCMP),
	to(ApSecurityFlagsKeyMgmtPSK, status.WifiSecurityKeyMgmtPSK),
	to(ApSecurityFlagsKeyMgmt8021X, status.WifiSecurityKeyMgmt8021X),
)

// DeviceStateFromUInt32 returns the device state for a wire code.
func DeviceStateFromUInt32(v uint32) DeviceState {
	return DeviceStateTable.Decode(v)
}

// UInt32 returns the wire code of s.
func (s DeviceState) UInt32() uint32 {
	return DeviceStateTable.Encode(s)
}

// Status converts s to the status model.
func (s DeviceState) Status() status.InterfaceState {
	return deviceStateStatus.Decode(uint32(s))
}

// IsConnected reports whether a device in state s is up: anything from
// PREPARE through DEACTIVATING.
func (s DeviceState) IsConnected() bool {
	if !DeviceStateTable.Known(uint32(s)) {
		return false
	}
	return s >= DeviceStatePrepare && s <= DeviceStateDeactivating
}

// DeviceStateFromStatus returns the device state that reports as st.
func DeviceStateFromStatus(st status.InterfaceState) DeviceState {
	return DeviceState(deviceStateStatus.Encode(st))
}

// DeviceTypeFromUInt32 returns the device type for a wire code.
func DeviceTypeFromUInt32(v uint32) DeviceType {
	return DeviceTypeTable.Decode(v)
}

// DeviceTypeFromString returns the device type named s, as used in
// configuration properties ("ETHERNET", "LOOPBACK"). Names are
// case-sensitive; anything else is UNKNOWN.
func DeviceTypeFromString(s string) DeviceType {
	return DeviceTypeTable.Parse(s)
}

// UInt32 returns the wire code of t.
func (t DeviceType) UInt32() uint32 {
	return DeviceTypeTable.Encode(t)
}

// Status converts t to the status model.
func (t DeviceType) Status() status.InterfaceType {
	return deviceTypeStatus.Decode(uint32(t))
}

// GenericLoopbackDescription is the TypeDescription NetworkManager reports
// for loopback devices that it exposes as GENERIC.
const GenericLoopbackDescription = "loopback"

// ResolveDeviceType corrects the device type of loopback interfaces.
// NetworkManager releases before LOOPBACK existed publish them as GENERIC
// with a generic TypeDescription of "loopback".
func ResolveDeviceType(t DeviceType, typeDescription string) DeviceType {
	if t == DeviceTypeGeneric && typeDescription == GenericLoopbackDescription {
		return DeviceTypeLoopback
	}
	return t
}

// WifiModeFromUInt32 returns the 802.11 mode for a wire code.
func WifiModeFromUInt32(v uint32) WifiMode {
	return WifiModeTable.Decode(v)
}

// UInt32 returns the wire code of m.
func (m WifiMode) UInt32() uint32 {
	return WifiModeTable.Encode(m)
}

// Status converts m to the status model. AP becomes MASTER; MESH has no
// counterpart and becomes UNKNOWN.
func (m WifiMode) Status() status.WifiMode {
	return wifiModeStatus.Decode(uint32(m))
}

// WifiModeFromStatus returns the 802.11 mode that reports as st.
func WifiModeFromStatus(st status.WifiMode) WifiMode {
	return WifiMode(wifiModeStatus.Encode(st))
}

// DeviceWifiCapabilitiesFromUInt32 returns the capability flags set in mask,
// in table order.
func DeviceWifiCapabilitiesFromUInt32(mask uint32) []DeviceWifiCapabilities {
	return DeviceWifiCapabilitiesTable.Flags(mask)
}

// DeviceWifiCapabilitiesToUInt32 returns the mask for flags.
func DeviceWifiCapabilitiesToUInt32(flags ...DeviceWifiCapabilities) uint32 {
	return DeviceWifiCapabilitiesTable.EncodeFlags(flags...)
}

// WifiCapabilities converts a WirelessCapabilities mask to status flags.
func WifiCapabilities(mask uint32) codes.Set[status.WifiCapability] {
	return wifiCapabilityStatus.Decode(mask)
}

// WifiCapabilitiesToUInt32 returns the mask reporting as caps.
func WifiCapabilitiesToUInt32(caps codes.Set[status.WifiCapability]) uint32 {
	return wifiCapabilityStatus.Encode(caps)
}

// ApSecurityFlagsFromUInt32 returns the security flags set in mask, in
// table order.
func ApSecurityFlagsFromUInt32(mask uint32) []ApSecurityFlags {
	return ApSecurityFlagsTable.Flags(mask)
}

// ApSecurityFlagsToUInt32 returns the mask for flags.
func ApSecurityFlagsToUInt32(flags ...ApSecurityFlags) uint32 {
	return ApSecurityFlagsTable.EncodeFlags(flags...)
}

// WifiSecurity converts a WpaFlags or RsnFlags mask to status flags.
func WifiSecurity(mask uint32) codes.Set[status.WifiSecurity] {
	return wifiSecurityStatus.Decode(mask)
}

// WifiSecurityToUInt32 returns the mask reporting as flags.
func WifiSecurityToUInt32(flags codes.Set[status.WifiSecurity]) uint32 {
	return wifiSecurityStatus.Encode(flags)
}
