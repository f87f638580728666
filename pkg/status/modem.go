package status

// ModemConnectionStatus is the connection state of a modem.
type ModemConnectionStatus uint8

const (
	ModemConnectionStatusUnknown ModemConnectionStatus = iota
	ModemConnectionStatusFailed
	ModemConnectionStatusInitializing
	ModemConnectionStatusLocked
	ModemConnectionStatusDisabled
	ModemConnectionStatusDisabling
	ModemConnectionStatusEnabling
	ModemConnectionStatusEnabled
	ModemConnectionStatusSearching
	ModemConnectionStatusRegistered
	ModemConnectionStatusDisconnecting
	ModemConnectionStatusConnecting
	ModemConnectionStatusConnected

	modemConnectionStatusCount
)

// String returns the modem connection status name.
func (s ModemConnectionStatus) String() string {
	switch s {
	case ModemConnectionStatusUnknown:
		return "UNKNOWN"
	case ModemConnectionStatusFailed:
		return "FAILED"
	case ModemConnectionStatusInitializing:
		return "INITIALIZING"
	case ModemConnectionStatusLocked:
		return "LOCKED"
	case ModemConnectionStatusDisabled:
		return "DISABLED"
	case ModemConnectionStatusDisabling:
		return "DISABLING"
	case ModemConnectionStatusEnabling:
		return "ENABLING"
	case ModemConnectionStatusEnabled:
		return "ENABLED"
	case ModemConnectionStatusSearching:
		return "SEARCHING"
	case ModemConnectionStatusRegistered:
		return "REGISTERED"
	case ModemConnectionStatusDisconnecting:
		return "DISCONNECTING"
	case ModemConnectionStatusConnecting:
		return "CONNECTING"
	case ModemConnectionStatusConnected:
		return "CONNECTED"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s ModemConnectionStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ModemConnectionStatus) UnmarshalText(text []byte) error {
	return parseText(s, "modem connection status", text, modemConnectionStatusCount)
}

// AccessTechnology is one radio access technology.
type AccessTechnology uint8

const (
	AccessTechnologyUnknown AccessTechnology = iota
	AccessTechnologyPOTS
	AccessTechnologyGSM
	AccessTechnologyGSMCompact
	AccessTechnologyGPRS
	AccessTechnologyEDGE
	AccessTechnologyUMTS
	AccessTechnologyHSDPA
	AccessTechnologyHSUPA
	AccessTechnologyHSPA
	AccessTechnologyHSPAPlus
	// AccessTechnology1xRTT is CDMA2000 1xRTT.
	AccessTechnology1xRTT
	AccessTechnologyEVDO0
	AccessTechnologyEVDOA
	AccessTechnologyEVDOB
	AccessTechnologyLTE
	// AccessTechnology5GNR is 5G New Radio.
	AccessTechnology5GNR
	AccessTechnologyLTECatM
	AccessTechnologyLTENBIoT
	// AccessTechnologyAny stands for every technology at once.
	AccessTechnologyAny

	accessTechnologyCount
)

// String returns the access technology name.
func (a AccessTechnology) String() string {
	switch a {
	case AccessTechnologyUnknown:
		return "UNKNOWN"
	case AccessTechnologyPOTS:
		return "POTS"
	case AccessTechnologyGSM:
		return "GSM"
	case AccessTechnologyGSMCompact:
		return "GSM_COMPACT"
	case AccessTechnologyGPRS:
		return "GPRS"
	case AccessTechnologyEDGE:
		return "EDGE"
	case AccessTechnologyUMTS:
		return "UMTS"
	case AccessTechnologyHSDPA:
		return "HSDPA"
	case AccessTechnologyHSUPA:
		return "HSUPA"
	case AccessTechnologyHSPA:
		return "HSPA"
	case AccessTechnologyHSPAPlus:
		return "HSPA_PLUS"
	case AccessTechnology1xRTT:
		return "ONEXRTT"
	case AccessTechnologyEVDO0:
		return "EVDO0"
	case AccessTechnologyEVDOA:
		return "EVDOA"
	case AccessTechnologyEVDOB:
		return "EVDOB"
	case AccessTechnologyLTE:
		return "LTE"
	case AccessTechnology5GNR:
		return "FIVEGNR"
	case AccessTechnologyLTECatM:
		return "LTE_CAT_M"
	case AccessTechnologyLTENBIoT:
		return "LTE_NB_IOT"
	case AccessTechnologyAny:
		return "ANY"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a AccessTechnology) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *AccessTechnology) UnmarshalText(text []byte) error {
	return parseText(a, "access technology", text, accessTechnologyCount)
}

// BearerIPFamily is one IP family a bearer can carry.
type BearerIPFamily uint8

const (
	BearerIPFamilyNone BearerIPFamily = iota
	BearerIPFamilyIPv4
	BearerIPFamilyIPv6
	BearerIPFamilyIPv4v6
	BearerIPFamilyNonIP
	BearerIPFamilyAny

	bearerIPFamilyCount
)

// String returns the bearer IP family name.
func (f BearerIPFamily) String() string {
	switch f {
	case BearerIPFamilyNone:
		return "NONE"
	case BearerIPFamilyIPv4:
		return "IPV4"
	case BearerIPFamilyIPv6:
		return "IPV6"
	case BearerIPFamilyIPv4v6:
		return "IPV4V6"
	case BearerIPFamilyNonIP:
		return "NON_IP"
	case BearerIPFamilyAny:
		return "ANY"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f BearerIPFamily) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *BearerIPFamily) UnmarshalText(text []byte) error {
	return parseText(f, "bearer IP family", text, bearerIPFamilyCount)
}

// RegistrationStatus is the network registration state of a modem.
type RegistrationStatus uint8

const (
	RegistrationStatusUnknown RegistrationStatus = iota
	RegistrationStatusNotRegistered
	RegistrationStatusSearching
	RegistrationStatusRegisteredHome
	RegistrationStatusRegisteredRoaming
	RegistrationStatusRegistrationDenied
	RegistrationStatusEmergencyOnly

	registrationStatusCount
)

// String returns the registration status name.
func (r RegistrationStatus) String() string {
	switch r {
	case RegistrationStatusUnknown:
		return "UNKNOWN"
	case RegistrationStatusNotRegistered:
		return "NOT_REGISTERED"
	case RegistrationStatusSearching:
		return "SEARCHING"
	case RegistrationStatusRegisteredHome:
		return "REGISTERED_HOME"
	case RegistrationStatusRegisteredRoaming:
		return "REGISTERED_ROAMING"
	case RegistrationStatusRegistrationDenied:
		return "REGISTRATION_DENIED"
	case RegistrationStatusEmergencyOnly:
		return "EMERGENCY_ONLY"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r RegistrationStatus) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *RegistrationStatus) UnmarshalText(text []byte) error {
	return parseText(r, "registration status", text, registrationStatusCount)
}

// ModemCapability is one radio capability family of a modem.
type ModemCapability uint8

const (
	ModemCapabilityNone ModemCapability = iota
	ModemCapabilityPOTS
	ModemCapabilityCDMAEVDO
	ModemCapabilityGSMUMTS
	ModemCapabilityLTE
	ModemCapabilityIridium
	ModemCapability5GNR
	ModemCapabilityTDS
	ModemCapabilityAny

	modemCapabilityCount
)

// String returns the modem capability name.
func (c ModemCapability) String() string {
	switch c {
	case ModemCapabilityNone:
		return "NONE"
	case ModemCapabilityPOTS:
		return "POTS"
	case ModemCapabilityCDMAEVDO:
		return "CDMA_EVDO"
	case ModemCapabilityGSMUMTS:
		return "GSM_UMTS"
	case ModemCapabilityLTE:
		return "LTE"
	case ModemCapabilityIridium:
		return "IRIDIUM"
	case ModemCapability5GNR:
		return "5GNR"
	case ModemCapabilityTDS:
		return "TDS"
	case ModemCapabilityAny:
		return "ANY"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c ModemCapability) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ModemCapability) UnmarshalText(text []byte) error {
	return parseText(c, "modem capability", text, modemCapabilityCount)
}

// ModemMode is one access mode generation.
type ModemMode uint8

const (
	ModemModeNone ModemMode = iota
	ModemModeCS
	ModemMode2G
	ModemMode3G
	ModemMode4G
	ModemMode5G
	ModemModeAny

	modemModeCount
)

// String returns the modem mode name.
func (m ModemMode) String() string {
	switch m {
	case ModemModeNone:
		return "NONE"
	case ModemModeCS:
		return "CS"
	case ModemMode2G:
		return "2G"
	case ModemMode3G:
		return "3G"
	case ModemMode4G:
		return "4G"
	case ModemMode5G:
		return "5G"
	case ModemModeAny:
		return "ANY"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m ModemMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ModemMode) UnmarshalText(text []byte) error {
	return parseText(m, "modem mode", text, modemModeCount)
}

// ModemPowerState is the power state of a modem.
type ModemPowerState uint8

const (
	ModemPowerStateUnknown ModemPowerState = iota
	ModemPowerStateOff
	ModemPowerStateLow
	ModemPowerStateOn

	modemPowerStateCount
)

// String returns the modem power state name.
func (p ModemPowerState) String() string {
	switch p {
	case ModemPowerStateUnknown:
		return "UNKNOWN"
	case ModemPowerStateOff:
		return "OFF"
	case ModemPowerStateLow:
		return "LOW"
	case ModemPowerStateOn:
		return "ON"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p ModemPowerState) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *ModemPowerState) UnmarshalText(text []byte) error {
	return parseText(p, "modem power state", text, modemPowerStateCount)
}

// ModemPortType is the kind of a port exposed by a modem.
type ModemPortType uint8

const (
	ModemPortTypeUnknown ModemPortType = iota
	ModemPortTypeNet
	ModemPortTypeAT
	ModemPortTypeQCDM
	ModemPortTypeGPS
	ModemPortTypeQMI
	ModemPortTypeMBIM
	ModemPortTypeAudio
	ModemPortTypeIgnored
	ModemPortTypeXMMRPC

	modemPortTypeCount
)

// String returns the modem port type name.
func (p ModemPortType) String() string {
	switch p {
	case ModemPortTypeUnknown:
		return "UNKNOWN"
	case ModemPortTypeNet:
		return "NET"
	case ModemPortTypeAT:
		return "AT"
	case ModemPortTypeQCDM:
		return "QCDM"
	case ModemPortTypeGPS:
		return "GPS"
	case ModemPortTypeQMI:
		return "QMI"
	case ModemPortTypeMBIM:
		return "MBIM"
	case ModemPortTypeAudio:
		return "AUDIO"
	case ModemPortTypeIgnored:
		return "IGNORED"
	case ModemPortTypeXMMRPC:
		return "XMMRPC"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p ModemPortType) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *ModemPortType) UnmarshalText(text []byte) error {
	return parseText(p, "modem port type", text, modemPortTypeCount)
}

// SimType is the kind of SIM in a modem slot.
type SimType uint8

const (
	SimTypeUnknown SimType = iota
	SimTypePhysical
	SimTypeESIM

	simTypeCount
)

// String returns the SIM type name.
func (s SimType) String() string {
	switch s {
	case SimTypeUnknown:
		return "UNKNOWN"
	case SimTypePhysical:
		return "PHYSICAL"
	case SimTypeESIM:
		return "ESIM"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s SimType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SimType) UnmarshalText(text []byte) error {
	return parseText(s, "SIM type", text, simTypeCount)
}
