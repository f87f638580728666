package props

import (
	"fmt"
	"net"
	"net/netip"
	"strings"

	"github.com/nmwire/nmwire-go/pkg/nm"
	"github.com/nmwire/nmwire-go/pkg/status"
)

// DecodeDevice decodes the properties of an NM Device object. ip4config
// holds the properties of the device's IP4Config object and may be nil
// when the device has none.
func (d *Decoder) DecodeDevice(device, ip4config PropertySource) (status.DeviceStatus, error) {
	r := d.reader(device)
	var st status.DeviceStatus
	var err error

	if st.Interface, err = r.string(nm.DeviceInterface, "Interface"); err != nil {
		return st, err
	}

	wireType, err := r.code(nm.DeviceInterface, "DeviceType")
	if err != nil {
		return st, err
	}
	description, err := r.optString(nm.GenericInterface, "TypeDescription")
	if err != nil {
		return st, err
	}
	devType := nm.ResolveDeviceType(nm.DeviceTypeFromUInt32(wireType), description)
	st.Type = devType.Status()
	if devType == nm.DeviceTypeLoopback {
		st.Virtual = true
		st.Loopback = true
	}

	wireState, err := r.code(nm.DeviceInterface, "State")
	if err != nil {
		return st, err
	}
	state := nm.DeviceStateFromUInt32(wireState)
	st.State = state.Status()
	st.Up = state.IsConnected()

	if st.AutoConnect, err = r.optBool(nm.DeviceInterface, "Autoconnect"); err != nil {
		return st, err
	}
	if st.Driver, err = r.optString(nm.DeviceInterface, "Driver"); err != nil {
		return st, err
	}
	if st.DriverVersion, err = r.optString(nm.DeviceInterface, "DriverVersion"); err != nil {
		return st, err
	}
	if st.FirmwareVersion, err = r.optString(nm.DeviceInterface, "FirmwareVersion"); err != nil {
		return st, err
	}
	if st.MTU, err = r.optUint32(nm.DeviceInterface, "Mtu"); err != nil {
		return st, err
	}
	if st.HardwareAddress, err = r.hwAddress(nm.DeviceInterface, "HwAddress"); err != nil {
		return st, err
	}

	if ip4config != nil {
		if st.IPv4, err = d.decodeIPv4(ip4config); err != nil {
			return st, err
		}
	}
	return st, nil
}

// hwAddress reads an optional colon separated MAC address.
func (r *reader) hwAddress(iface, name string) (string, error) {
	s, err := r.optString(iface, name)
	if err != nil || s == "" {
		return "", err
	}
	mac, err := net.ParseMAC(s)
	if err != nil {
		return "", r.fail(iface, name, fmt.Errorf("%w: %s: %v", ErrPropertyValue, key(iface, name), err))
	}
	return strings.ToUpper(mac.String()), nil
}

func (d *Decoder) decodeIPv4(ip4config PropertySource) (*status.IPv4Status, error) {
	r := d.reader(ip4config)
	st := &status.IPv4Status{Addresses: []status.IPv4Address{}}

	gateway, err := r.optString(nm.IP4ConfigInterface, "Gateway")
	if err != nil {
		return nil, err
	}
	if gateway != "" {
		st.Gateway, err = r.addr(nm.IP4ConfigInterface, "Gateway", gateway)
		if err != nil {
			return nil, err
		}
	}

	addresses, err := r.dicts(nm.IP4ConfigInterface, "AddressData")
	if err != nil {
		return nil, err
	}
	for _, a := range addresses {
		address, err := r.ipv4Address(a)
		if err != nil {
			return nil, err
		}
		st.Addresses = append(st.Addresses, address)
	}

	nameservers, err := r.dicts(nm.IP4ConfigInterface, "NameserverData")
	if err != nil {
		return nil, err
	}
	for _, ns := range nameservers {
		s, ok := asString(ns["address"])
		if !ok {
			return nil, r.fail(nm.IP4ConfigInterface, "NameserverData",
				typeError(key(nm.IP4ConfigInterface, "NameserverData")+"[address]", ns["address"], "string"))
		}
		a, err := r.addr(nm.IP4ConfigInterface, "NameserverData", s)
		if err != nil {
			return nil, err
		}
		st.DNS = append(st.DNS, a)
	}
	return st, nil
}

// dicts reads an optional aa{sv} property.
func (r *reader) dicts(iface, name string) ([]map[string]any, error) {
	list, err := r.optList(iface, name)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(list))
	for _, e := range list {
		m, ok := asDict(e)
		if !ok {
			return nil, r.fail(iface, name, typeError(key(iface, name), e, "map[string]any"))
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *reader) addr(iface, name, s string) (netip.Addr, error) {
	a, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, r.fail(iface, name, fmt.Errorf("%w: %s: %v", ErrPropertyValue, key(iface, name), err))
	}
	return a, nil
}

func (r *reader) ipv4Address(m map[string]any) (status.IPv4Address, error) {
	const iface, name = nm.IP4ConfigInterface, "AddressData"
	var out status.IPv4Address

	s, ok := asString(m["address"])
	if !ok {
		return out, r.fail(iface, name, typeError(key(iface, name)+"[address]", m["address"], "string"))
	}
	prefix, ok := asUint32(m["prefix"])
	if !ok {
		return out, r.fail(iface, name, typeError(key(iface, name)+"[prefix]", m["prefix"], "uint32"))
	}
	if prefix > 32 {
		return out, r.fail(iface, name, fmt.Errorf("%w: %s: prefix %d", ErrPropertyValue, key(iface, name), prefix))
	}

	a, err := r.addr(iface, name, s)
	if err != nil {
		return out, err
	}
	out.Address = a
	out.Prefix = uint8(prefix)
	out.Netmask, _ = netip.AddrFromSlice(net.CIDRMask(int(prefix), 32))
	return out, nil
}

// WifiSources groups the objects a wireless device status is built from.
type WifiSources struct {
	// Device carries the Device and Device.Wireless interfaces.
	Device PropertySource

	// IP4Config may be nil.
	IP4Config PropertySource

	// ActiveAccessPoint may be nil.
	ActiveAccessPoint PropertySource

	// AccessPoints are the access points the device sees. In MASTER mode
	// the first one is the access point the device provides.
	AccessPoints []PropertySource
}

// DecodeWifi decodes a wireless device together with its access point.
func (d *Decoder) DecodeWifi(src WifiSources) (status.WifiStatus, error) {
	var st status.WifiStatus
	var err error

	if st.DeviceStatus, err = d.DecodeDevice(src.Device, src.IP4Config); err != nil {
		return st, err
	}

	r := d.reader(src.Device)
	wireMode, err := r.code(nm.WirelessInterface, "Mode")
	if err != nil {
		return st, err
	}
	mode := nm.WifiModeFromUInt32(wireMode)
	st.Mode = mode.Status()

	if st.Bitrate, err = r.optUint32(nm.WirelessInterface, "Bitrate"); err != nil {
		return st, err
	}

	caps, err := r.code(nm.WirelessInterface, "WirelessCapabilities")
	if err != nil {
		return st, err
	}
	st.Capabilities = nm.WifiCapabilities(caps)

	var ap PropertySource
	if mode == nm.WifiModeAP {
		if len(src.AccessPoints) > 0 {
			ap = src.AccessPoints[0]
		}
	} else {
		ap = src.ActiveAccessPoint
	}
	if ap != nil {
		a, err := d.DecodeAccessPoint(ap)
		if err != nil {
			return st, err
		}
		st.ActiveAccessPoint = &a
	}
	return st, nil
}

// DecodeAccessPoint decodes an NM AccessPoint object.
func (d *Decoder) DecodeAccessPoint(ap PropertySource) (status.AccessPoint, error) {
	const iface = nm.AccessPointInterface
	r := d.reader(ap)
	var st status.AccessPoint

	ssid, err := r.bytes(iface, "Ssid")
	if err != nil {
		return st, err
	}
	st.SSID = string(ssid)

	mode, err := r.code(iface, "Mode")
	if err != nil {
		return st, err
	}
	st.Mode = nm.WifiModeFromUInt32(mode).Status()

	if st.HardwareAddress, err = r.hwAddress(iface, "HwAddress"); err != nil {
		return st, err
	}
	if st.Frequency, err = r.optUint32(iface, "Frequency"); err != nil {
		return st, err
	}
	if st.MaxBitrate, err = r.optUint32(iface, "MaxBitrate"); err != nil {
		return st, err
	}
	strength, err := r.optUint32(iface, "Strength")
	if err != nil {
		return st, err
	}
	if strength > 100 {
		return st, r.fail(iface, "Strength", fmt.Errorf("%w: %s: %d", ErrPropertyValue, key(iface, "Strength"), strength))
	}
	st.Strength = uint8(strength)

	wpa, err := r.code(iface, "WpaFlags")
	if err != nil {
		return st, err
	}
	st.WPASecurity = nm.WifiSecurity(wpa)

	rsn, err := r.code(iface, "RsnFlags")
	if err != nil {
		return st, err
	}
	st.RSNSecurity = nm.WifiSecurity(rsn)
	return st, nil
}
