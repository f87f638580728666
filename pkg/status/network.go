package status

// InterfaceState is the operational state of a network interface.
type InterfaceState uint8

const (
	InterfaceStateUnknown InterfaceState = iota
	// InterfaceStateUnmanaged means the interface is not under management.
	InterfaceStateUnmanaged
	InterfaceStateUnavailable
	InterfaceStateDisconnected
	InterfaceStatePrepare
	InterfaceStateConfig
	// InterfaceStateNeedAuth means the interface waits for secrets.
	InterfaceStateNeedAuth
	InterfaceStateIPConfig
	InterfaceStateIPCheck
	InterfaceStateSecondaries
	// InterfaceStateActivated means the interface is fully configured and up.
	InterfaceStateActivated
	InterfaceStateDeactivating
	// InterfaceStateFailed means the last activation attempt failed.
	InterfaceStateFailed

	interfaceStateCount
)

// String returns the interface state name.
func (s InterfaceState) String() string {
	switch s {
	case InterfaceStateUnknown:
		return "UNKNOWN"
	case InterfaceStateUnmanaged:
		return "UNMANAGED"
	case InterfaceStateUnavailable:
		return "UNAVAILABLE"
	case InterfaceStateDisconnected:
		return "DISCONNECTED"
	case InterfaceStatePrepare:
		return "PREPARE"
	case InterfaceStateConfig:
		return "CONFIG"
	case InterfaceStateNeedAuth:
		return "NEED_AUTH"
	case InterfaceStateIPConfig:
		return "IP_CONFIG"
	case InterfaceStateIPCheck:
		return "IP_CHECK"
	case InterfaceStateSecondaries:
		return "SECONDARIES"
	case InterfaceStateActivated:
		return "ACTIVATED"
	case InterfaceStateDeactivating:
		return "DEACTIVATING"
	case InterfaceStateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s InterfaceState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *InterfaceState) UnmarshalText(text []byte) error {
	return parseText(s, "interface state", text, interfaceStateCount)
}

// InterfaceType is the kind of a network interface.
type InterfaceType uint8

const (
	InterfaceTypeUnknown InterfaceType = iota
	InterfaceTypeEthernet
	InterfaceTypeWifi
	InterfaceTypeModem
	InterfaceTypeLoopback
	InterfaceTypeBluetooth
	InterfaceTypeVLAN
	InterfaceTypeBridge
	InterfaceTypeBond
	InterfaceTypeTUN
	InterfaceTypeWireGuard

	interfaceTypeCount
)

// String returns the interface type name.
func (t InterfaceType) String() string {
	switch t {
	case InterfaceTypeUnknown:
		return "UNKNOWN"
	case InterfaceTypeEthernet:
		return "ETHERNET"
	case InterfaceTypeWifi:
		return "WIFI"
	case InterfaceTypeModem:
		return "MODEM"
	case InterfaceTypeLoopback:
		return "LOOPBACK"
	case InterfaceTypeBluetooth:
		return "BLUETOOTH"
	case InterfaceTypeVLAN:
		return "VLAN"
	case InterfaceTypeBridge:
		return "BRIDGE"
	case InterfaceTypeBond:
		return "BOND"
	case InterfaceTypeTUN:
		return "TUN"
	case InterfaceTypeWireGuard:
		return "WIREGUARD"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t InterfaceType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *InterfaceType) UnmarshalText(text []byte) error {
	return parseText(t, "interface type", text, interfaceTypeCount)
}

// WifiMode is the operating mode of a wireless interface or access point.
type WifiMode uint8

const (
	WifiModeUnknown WifiMode = iota
	WifiModeAdHoc
	// WifiModeInfra is a station associated with an access point.
	WifiModeInfra
	// WifiModeMaster is an interface acting as the access point.
	WifiModeMaster

	wifiModeCount
)

// String returns the wifi mode name.
func (m WifiMode) String() string {
	switch m {
	case WifiModeUnknown:
		return "UNKNOWN"
	case WifiModeAdHoc:
		return "ADHOC"
	case WifiModeInfra:
		return "INFRA"
	case WifiModeMaster:
		return "MASTER"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m WifiMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *WifiMode) UnmarshalText(text []byte) error {
	return parseText(m, "wifi mode", text, wifiModeCount)
}

// WifiCapability is one capability flag of a wireless interface.
type WifiCapability uint8

const (
	WifiCapabilityNone WifiCapability = iota
	WifiCapabilityCipherWEP40
	WifiCapabilityCipherWEP104
	WifiCapabilityCipherTKIP
	WifiCapabilityCipherCCMP
	WifiCapabilityWPA
	WifiCapabilityRSN

	wifiCapabilityCount
)

// String returns the wifi capability name.
func (c WifiCapability) String() string {
	switch c {
	case WifiCapabilityNone:
		return "NONE"
	case WifiCapabilityCipherWEP40:
		return "CIPHER_WEP40"
	case WifiCapabilityCipherWEP104:
		return "CIPHER_WEP104"
	case WifiCapabilityCipherTKIP:
		return "CIPHER_TKIP"
	case WifiCapabilityCipherCCMP:
		return "CIPHER_CCMP"
	case WifiCapabilityWPA:
		return "WPA"
	case WifiCapabilityRSN:
		return "RSN"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c WifiCapability) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *WifiCapability) UnmarshalText(text []byte) error {
	return parseText(c, "wifi capability", text, wifiCapabilityCount)
}

// WifiSecurity is one security flag advertised by an access point.
type WifiSecurity uint8

const (
	WifiSecurityNone WifiSecurity = iota
	WifiSecurityPairWEP40
	WifiSecurityPairWEP104
	WifiSecurityPairTKIP
	WifiSecurityPairCCMP
	WifiSecurityGroupWEP40
	WifiSecurityGroupWEP104
	WifiSecurityGroupTKIP
	WifiSecurityGroupCCMP
	WifiSecurityKeyMgmtPSK
	WifiSecurityKeyMgmt8021X

	wifiSecurityCount
)

// String returns the wifi security name.
func (s WifiSecurity) String() string {
	switch s {
	case WifiSecurityNone:
		return "NONE"
	case WifiSecurityPairWEP40:
		return "PAIR_WEP40"
	case WifiSecurityPairWEP104:
		return "PAIR_WEP104"
	case WifiSecurityPairTKIP:
		return "PAIR_TKIP"
	case WifiSecurityPairCCMP:
		return "PAIR_CCMP"
	case WifiSecurityGroupWEP40:
		return "GROUP_WEP40"
	case WifiSecurityGroupWEP104:
		return "GROUP_WEP104"
	case WifiSecurityGroupTKIP:
		return "GROUP_TKIP"
	case WifiSecurityGroupCCMP:
		return "GROUP_CCMP"
	case WifiSecurityKeyMgmtPSK:
		return "KEY_MGMT_PSK"
	case WifiSecurityKeyMgmt8021X:
		return "KEY_MGMT_802_1X"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s WifiSecurity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *WifiSecurity) UnmarshalText(text []byte) error {
	return parseText(s, "wifi security", text, wifiSecurityCount)
}
