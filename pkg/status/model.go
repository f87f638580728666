package status

import (
	"net/netip"

	"github.com/nmwire/nmwire-go/pkg/codes"
)

// DeviceStatus is the status of one network interface.
type DeviceStatus struct {
	Interface       string         `json:"interface"`
	Type            InterfaceType  `json:"type"`
	State           InterfaceState `json:"state"`
	Up              bool           `json:"up"`
	Virtual         bool           `json:"virtual"`
	Loopback        bool           `json:"loopback"`
	AutoConnect     bool           `json:"autoConnect"`
	Driver          string         `json:"driver,omitempty"`
	DriverVersion   string         `json:"driverVersion,omitempty"`
	FirmwareVersion string         `json:"firmwareVersion,omitempty"`
	MTU             uint32         `json:"mtu"`
	HardwareAddress string         `json:"hardwareAddress,omitempty"`
	IPv4            *IPv4Status    `json:"ipv4,omitempty"`
}

// IPv4Status is the IPv4 configuration applied to an interface.
type IPv4Status struct {
	Addresses []IPv4Address `json:"addresses"`
	Gateway   netip.Addr    `json:"gateway"`
	DNS       []netip.Addr  `json:"dns,omitempty"`
}

// IPv4Address is one address assigned to an interface.
type IPv4Address struct {
	Address netip.Addr `json:"address"`
	Prefix  uint8      `json:"prefix"`
	Netmask netip.Addr `json:"netmask"`
}

// WifiStatus is the status of a wireless interface.
type WifiStatus struct {
	DeviceStatus

	Mode         WifiMode                  `json:"mode"`
	Bitrate      uint32                    `json:"bitrate"`
	Capabilities codes.Set[WifiCapability] `json:"capabilities"`

	// ActiveAccessPoint is the access point the interface is associated
	// with, or the one it provides in MASTER mode.
	ActiveAccessPoint *AccessPoint `json:"activeAccessPoint,omitempty"`
}

// AccessPoint describes a wireless access point seen by an interface.
type AccessPoint struct {
	SSID            string                  `json:"ssid"`
	Mode            WifiMode                `json:"mode"`
	HardwareAddress string                  `json:"hardwareAddress"`
	Frequency       uint32                  `json:"frequency"`
	MaxBitrate      uint32                  `json:"maxBitrate"`
	Strength        uint8                   `json:"strength"`
	WPASecurity     codes.Set[WifiSecurity] `json:"wpaSecurity"`
	RSNSecurity     codes.Set[WifiSecurity] `json:"rsnSecurity"`
}

// ModemModePair is a combination of allowed modes and the preferred one.
type ModemModePair struct {
	Allowed   codes.Set[ModemMode] `json:"allowed"`
	Preferred ModemMode            `json:"preferred"`
}

// ModemPort is one port exposed by a modem.
type ModemPort struct {
	Name string        `json:"name"`
	Type ModemPortType `json:"type"`
}

// ModemStatus is the status of one modem.
type ModemStatus struct {
	Object                string                      `json:"object"`
	Model                 string                      `json:"model,omitempty"`
	Manufacturer          string                      `json:"manufacturer,omitempty"`
	Revision              string                      `json:"revision,omitempty"`
	ConnectionStatus      ModemConnectionStatus       `json:"connectionStatus"`
	PowerState            ModemPowerState             `json:"powerState"`
	AccessTechnologies    codes.Set[AccessTechnology] `json:"accessTechnologies"`
	CurrentBands          []ModemBand                 `json:"currentBands"`
	CurrentModes          ModemModePair               `json:"currentModes"`
	CurrentCapabilities   codes.Set[ModemCapability]  `json:"currentCapabilities"`
	SupportedCapabilities codes.Set[ModemCapability]  `json:"supportedCapabilities"`
	SignalQuality         uint32                      `json:"signalQuality"`
	Ports                 []ModemPort                 `json:"ports,omitempty"`

	// RegistrationStatus is only known for modems exposing the 3GPP
	// interface; others report UNKNOWN.
	RegistrationStatus RegistrationStatus `json:"registrationStatus"`
	OperatorName       string             `json:"operatorName,omitempty"`
}
