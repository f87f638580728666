package mm

import (
	"errors"
	"fmt"

	"github.com/nmwire/nmwire-go/pkg/codes"
	"github.com/nmwire/nmwire-go/pkg/status"
)

// ErrGPSUnsupported is returned by PlanLocationSetup when the modem cannot
// run an unmanaged GPS source.
var ErrGPSUnsupported = errors.New("modem does not support unmanaged GPS")

type mirror interface {
	~uint32
	String() string
}

func to[S comparable, M mirror](m M, s S) codes.Entry[S] {
	return codes.Entry[S]{Wire: uint32(m), Value: s, Name: m.String()}
}

var modemStateStatus = codes.NewOrdinalTable(status.ModemConnectionStatusUnknown,
	to(ModemStateFailed, status.ModemConnectionStatusFailed),
	to(ModemStateUnknown, status.ModemConnectionStatusUnknown),
	to(ModemStateInitializing, status.ModemConnectionStatusInitializing),
	to(ModemStateLocked, status.ModemConnectionStatusLocked),
	to(ModemStateDisabled, status.ModemConnectionStatusDisabled),
	to(ModemStateDisabling, status.ModemConnectionStatusDisabling),
	to(ModemStateEnabling, status.ModemConnectionStatusEnabling),
	to(ModemStateEnabled, status.ModemConnectionStatusEnabled),
	to(ModemStateSearching, status.ModemConnectionStatusSearching),
	to(ModemStateRegistered, status.ModemConnectionStatusRegistered),
	to(ModemStateDisconnecting, status.ModemConnectionStatusDisconnecting),
	to(ModemStateConnecting, status.ModemConnectionStatusConnecting),
	to(ModemStateConnected, status.ModemConnectionStatusConnected),
)

var accessTechnologyStatus = codes.NewBitmaskTable(
	to(ModemAccessTechnologyUnknown, status.AccessTechnologyUnknown),
	to(ModemAccessTechnologyPOTS, status.AccessTechnologyPOTS),
	to(ModemAccessTechnologyGSM, status.AccessTechnologyGSM),
	to(ModemAccessTechnologyGSMCompact, status.AccessTechnologyGSMCompact),
	to(ModemAccessTechnologyGPRS, status.AccessTechnologyGPRS),
	to(ModemAccessTechnologyEDGE, status.AccessTechnologyEDGE),
	to(ModemAccessTechnologyUMTS, status.AccessTechnologyUMTS),
	to(ModemAccessTechnologyHSDPA, status.AccessTechnologyHSDPA),
	to(ModemAccessTechnologyHSUPA, status.AccessTechnologyHSUPA),
	to(ModemAccessTechnologyHSPA, status.AccessTechnologyHSPA),
	to(ModemAccessTechnologyHSPAPlus, status.AccessTechnologyHSPAPlus),
	to(ModemAccessTechnology1xRTT, status.AccessTechnology1xRTT),
	to(ModemAccessTechnologyEVDO0, status.AccessTechnologyEVDO0),
	to(ModemAccessTechnologyEVDOA, status.AccessTechnologyEVDOA),
	to(ModemAccessTechnologyEVDOB, status.AccessTechnologyEVDOB),
	to(ModemAccessTechnologyLTE, status.AccessTechnologyLTE),
	to(ModemAccessTechnology5GNR, status.AccessTechnology5GNR),
	to(ModemAccessTechnologyLTECatM, status.AccessTechnologyLTECatM),
	to(ModemAccessTechnologyLTENBIoT, status.AccessTechnologyLTENBIoT),
).WithAny(to(ModemAccessTechnologyAny, status.AccessTechnologyAny))

// Both band enumerations share names and order, so rows are matched by name.
var bandStatus = newBandStatus()

func newBandStatus() *codes.OrdinalTable[status.ModemBand] {
	rows := make([]codes.Entry[status.ModemBand], 0, len(ModemBandTable.Names()))
	for _, e := range ModemBandTable.Entries() {
		var b status.ModemBand
		if err := b.UnmarshalText([]byte(e.Name)); err != nil {
			panic(fmt.Sprintf("mm: band %s has no status counterpart", e.Name))
		}
		rows = append(rows, codes.Entry[status.ModemBand]{Wire: e.Wire, Value: b, Name: e.Name})
	}
	return codes.NewOrdinalTable(status.ModemBandUnknown, rows...)
}

var ipFamilyStatus = codes.NewBitmaskTable(
	to(BearerIPFamilyNone, status.BearerIPFamilyNone),
	to(BearerIPFamilyIPv4, status.BearerIPFamilyIPv4),
	to(BearerIPFamilyIPv6, status.BearerIPFamilyIPv6),
	to(BearerIPFamilyIPv4v6, status.BearerIPFamilyIPv4v6),
	to(BearerIPFamilyNonIP, status.BearerIPFamilyNonIP),
).WithAny(to(BearerIPFamilyAny, status.BearerIPFamilyAny))

// The first row for a status wins when converting back.
var registrationStatus = codes.NewOrdinalTable(status.RegistrationStatusNotRegistered,
	to(Modem3gppRegistrationStateIdle, status.RegistrationStatusNotRegistered),
	to(Modem3gppRegistrationStateHome, status.RegistrationStatusRegisteredHome),
	to(Modem3gppRegistrationStateSearching, status.RegistrationStatusSearching),
	to(Modem3gppRegistrationStateDenied, status.RegistrationStatusRegistrationDenied),
	to(Modem3gppRegistrationStateUnknown, status.RegistrationStatusUnknown),
	to(Modem3gppRegistrationStateRoaming, status.RegistrationStatusRegisteredRoaming),
	to(Modem3gppRegistrationStateHomeSMSOnly, status.RegistrationStatusRegisteredHome),
	to(Modem3gppRegistrationStateRoamingSMSOnly, status.RegistrationStatusRegisteredRoaming),
	to(Modem3gppRegistrationStateEmergencyOnly, status.RegistrationStatusEmergencyOnly),
	to(Modem3gppRegistrationStateHomeCSFBNotPreferred, status.RegistrationStatusRegisteredHome),
	to(Modem3gppRegistrationStateRoamingCSFBNotPreferred, status.RegistrationStatusRegisteredRoaming),
	to(Modem3gppRegistrationStateAttachedRLOS, status.RegistrationStatusEmergencyOnly),
)

var capabilityStatus = codes.NewBitmaskTable(
	to(ModemCapabilityNone, status.ModemCapabilityNone),
	to(ModemCapabilityPOTS, status.ModemCapabilityPOTS),
	to(ModemCapabilityCDMAEVDO, status.ModemCapabilityCDMAEVDO),
	to(ModemCapabilityGSMUMTS, status.ModemCapabilityGSMUMTS),
	to(ModemCapabilityLTE, status.ModemCapabilityLTE),
	to(ModemCapabilityIridium, status.ModemCapabilityIridium),
	to(ModemCapability5GNR, status.ModemCapability5GNR),
	to(ModemCapabilityTDS, status.ModemCapabilityTDS),
).WithAny(to(ModemCapabilityAny, status.ModemCapabilityAny))

var modeStatus = codes.NewBitmaskTable(
	to(ModemModeNone, status.ModemModeNone),
	to(ModemModeCS, status.ModemModeCS),
	to(ModemMode2G, status.ModemMode2G),
	to(ModemMode3G, status.ModemMode3G),
	to(ModemMode4G, status.ModemMode4G),
	to(ModemMode5G, status.ModemMode5G),
).WithAny(to(ModemModeAny, status.ModemModeAny))

var powerStateStatus = codes.NewOrdinalTable(status.ModemPowerStateUnknown,
	to(ModemPowerStateUnknown, status.ModemPowerStateUnknown),
	to(ModemPowerStateOff, status.ModemPowerStateOff),
	to(ModemPowerStateLow, status.ModemPowerStateLow),
	to(ModemPowerStateOn, status.ModemPowerStateOn),
)

var portTypeStatus = codes.NewOrdinalTable(status.ModemPortTypeUnknown,
	to(ModemPortTypeUnknown, status.ModemPortTypeUnknown),
	to(ModemPortTypeNet, status.ModemPortTypeNet),
	to(ModemPortTypeAT, status.ModemPortTypeAT),
	to(ModemPortTypeQCDM, status.ModemPortTypeQCDM),
	to(ModemPortTypeGPS, status.ModemPortTypeGPS),
	to(ModemPortTypeQMI, status.ModemPortTypeQMI),
	to(ModemPortTypeMBIM, status.ModemPortTypeMBIM),
	to(ModemPortTypeAudio, status.ModemPortTypeAudio),
	to(ModemPortTypeIgnored, status.ModemPortTypeIgnored),
	to(ModemPortTypeXMMRPC, status.ModemPortTypeXMMRPC),
)

var simTypeStatus = codes.NewOrdinalTable(status.SimTypeUnknown,
	to(SimTypeUnknown, status.SimTypeUnknown),
	to(SimTypePhysical, status.SimTypePhysical),
	to(SimTypeESIM, status.SimTypeESIM),
)

// ModemStateFromUInt32 returns the modem state for a wire code.
func ModemStateFromUInt32(v uint32) ModemState {
	return ModemStateTable.Decode(v)
}

// ModemStateFromInt32 returns the modem state for the signed code
// ModemManager publishes (FAILED is -1).
func ModemStateFromInt32(v int32) ModemState {
	return ModemStateFromUInt32(uint32(v))
}

// UInt32 returns the wire code of s.
func (s ModemState) UInt32() uint32 {
	return ModemStateTable.Encode(s)
}

// Int32 returns the signed code of s.
func (s ModemState) Int32() int32 {
	return int32(s.UInt32())
}

// Before reports whether s precedes o in the modem lifecycle. FAILED
// precedes every other state.
func (s ModemState) Before(o ModemState) bool {
	return s.Int32() < o.Int32()
}

// NeedsEnable reports whether a modem in state s has to be enabled before
// it can register or connect.
func (s ModemState) NeedsEnable() bool {
	return s.Before(ModemStateEnabled)
}

// Status converts s to the status model.
func (s ModemState) Status() status.ModemConnectionStatus {
	return modemStateStatus.Decode(uint32(s))
}

// ModemStateFromStatus returns the modem state that reports as st.
func ModemStateFromStatus(st status.ModemConnectionStatus) ModemState {
	return ModemState(modemStateStatus.Encode(st))
}

// ModemAccessTechnologyFromUInt32 returns the technologies set in mask, in
// table order.
func ModemAccessTechnologyFromUInt32(mask uint32) []ModemAccessTechnology {
	return ModemAccessTechnologyTable.Flags(mask)
}

// ModemAccessTechnologyToUInt32 returns the mask for techs.
func ModemAccessTechnologyToUInt32(techs ...ModemAccessTechnology) uint32 {
	return ModemAccessTechnologyTable.EncodeFlags(techs...)
}

// AccessTechnologies converts an AccessTechnologies mask to status flags.
func AccessTechnologies(mask uint32) codes.Set[status.AccessTechnology] {
	return accessTechnologyStatus.Decode(mask)
}

// AccessTechnology is the single view of an AccessTechnologies mask. A mask
// with several technologies yields UNKNOWN; use AccessTechnologies for those.
func AccessTechnology(mask uint32) status.AccessTechnology {
	return accessTechnologyStatus.Single(mask)
}

// AccessTechnologiesToUInt32 returns the mask reporting as techs.
func AccessTechnologiesToUInt32(techs codes.Set[status.AccessTechnology]) uint32 {
	return accessTechnologyStatus.Encode(techs)
}

// ModemBandFromUInt32 returns the band for a wire code.
func ModemBandFromUInt32(v uint32) ModemBand {
	return ModemBandTable.Decode(v)
}

// UInt32 returns the wire code of b.
func (b ModemBand) UInt32() uint32 {
	return ModemBandTable.Encode(b)
}

// Status converts b to the status model.
func (b ModemBand) Status() status.ModemBand {
	return bandStatus.Decode(uint32(b))
}

// Bands converts a CurrentBands or SupportedBands array to status bands.
func Bands(wire []uint32) []status.ModemBand {
	out := make([]status.ModemBand, len(wire))
	for i, v := range wire {
		out[i] = bandStatus.Decode(v)
	}
	return out
}

// BandsToUInt32 returns the wire array reporting as bands, as passed to
// SetCurrentBands.
func BandsToUInt32(bands []status.ModemBand) []uint32 {
	out := make([]uint32, len(bands))
	for i, b := range bands {
		out[i] = bandStatus.Encode(b)
	}
	return out
}

// IPFamilies converts a bearer IP family mask to status flags.
func IPFamilies(mask uint32) codes.Set[status.BearerIPFamily] {
	return ipFamilyStatus.Decode(mask)
}

// IPFamily is the single view of a bearer IP family mask.
func IPFamily(mask uint32) status.BearerIPFamily {
	return ipFamilyStatus.Single(mask)
}

// IPFamiliesToUInt32 returns the mask reporting as families.
func IPFamiliesToUInt32(families codes.Set[status.BearerIPFamily]) uint32 {
	return ipFamilyStatus.Encode(families)
}

// LocationSources returns the location sources set in mask.
func LocationSources(mask uint32) codes.Set[ModemLocationSource] {
	return ModemLocationSourceTable.Decode(mask)
}

// LocationSourcesToUInt32 returns the mask for sources.
func LocationSourcesToUInt32(sources codes.Set[ModemLocationSource]) uint32 {
	return ModemLocationSourceTable.Encode(sources)
}

// PlanLocationSetup decides the sources mask to pass to Location.Setup from
// the location Capabilities and Enabled masks. With gps set the only desired
// source is GPS_UNMANAGED, otherwise no source is. change is false when the
// enabled sources already match.
func PlanLocationSetup(capabilities, enabled uint32, gps bool) (mask uint32, change bool, err error) {
	desired := codes.NewSet(ModemLocationSourceNone)
	if gps {
		if !LocationSources(capabilities).Contains(ModemLocationSourceGPSUnmanaged) {
			return 0, false, ErrGPSUnsupported
		}
		desired = codes.NewSet(ModemLocationSourceGPSUnmanaged)
	}
	if LocationSources(enabled).Equal(desired) {
		return enabled, false, nil
	}
	return LocationSourcesToUInt32(desired), true, nil
}

// Modem3gppRegistrationStateFromUInt32 returns the registration state for a
// wire code. Unmapped codes become IDLE.
func Modem3gppRegistrationStateFromUInt32(v uint32) Modem3gppRegistrationState {
	return Modem3gppRegistrationStateTable.Decode(v)
}

// UInt32 returns the wire code of s.
func (s Modem3gppRegistrationState) UInt32() uint32 {
	return Modem3gppRegistrationStateTable.Encode(s)
}

// Status converts s to the status model. The SMS-only and CSFB variants
// collapse onto home or roaming registration.
func (s Modem3gppRegistrationState) Status() status.RegistrationStatus {
	return registrationStatus.Decode(uint32(s))
}

// RegistrationStateFromStatus returns the registration state that reports
// as st.
func RegistrationStateFromStatus(st status.RegistrationStatus) Modem3gppRegistrationState {
	return Modem3gppRegistrationState(registrationStatus.Encode(st))
}

// Capabilities converts a capability mask to status flags.
func Capabilities(mask uint32) codes.Set[status.ModemCapability] {
	return capabilityStatus.Decode(mask)
}

// CapabilitiesToUInt32 returns the mask reporting as caps.
func CapabilitiesToUInt32(caps codes.Set[status.ModemCapability]) uint32 {
	return capabilityStatus.Encode(caps)
}

// Modes converts a mode mask to status flags.
func Modes(mask uint32) codes.Set[status.ModemMode] {
	return modeStatus.Decode(mask)
}

// Mode is the single view of a mode mask, as used for the preferred mode.
func Mode(mask uint32) status.ModemMode {
	return modeStatus.Single(mask)
}

// ModesToUInt32 returns the mask reporting as modes.
func ModesToUInt32(modes codes.Set[status.ModemMode]) uint32 {
	return modeStatus.Encode(modes)
}

// ModePair converts a CurrentModes (allowed, preferred) pair.
func ModePair(allowed, preferred uint32) status.ModemModePair {
	return status.ModemModePair{
		Allowed:   Modes(allowed),
		Preferred: Mode(preferred),
	}
}

// ModemPowerStateFromUInt32 returns the power state for a wire code.
func ModemPowerStateFromUInt32(v uint32) ModemPowerState {
	return ModemPowerStateTable.Decode(v)
}

// Status converts s to the status model.
func (s ModemPowerState) Status() status.ModemPowerState {
	return powerStateStatus.Decode(uint32(s))
}

// ModemPortTypeFromUInt32 returns the port type for a wire code.
func ModemPortTypeFromUInt32(v uint32) ModemPortType {
	return ModemPortTypeTable.Decode(v)
}

// Status converts t to the status model.
func (t ModemPortType) Status() status.ModemPortType {
	return portTypeStatus.Decode(uint32(t))
}

// SimTypeFromUInt32 returns the SIM type for a wire code.
func SimTypeFromUInt32(v uint32) SimType {
	return SimTypeTable.Decode(v)
}

// Status converts t to the status model.
func (t SimType) Status() status.SimType {
	return simTypeStatus.Decode(uint32(t))
}
