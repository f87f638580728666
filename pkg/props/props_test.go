package props_test

import (
	"net/netip"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nmwire/nmwire-go/internal/fixture"
	"github.com/nmwire/nmwire-go/pkg/codes"
	"github.com/nmwire/nmwire-go/pkg/log"
	"github.com/nmwire/nmwire-go/pkg/mm"
	"github.com/nmwire/nmwire-go/pkg/nm"
	"github.com/nmwire/nmwire-go/pkg/props"
	"github.com/nmwire/nmwire-go/pkg/status"
)

type stubLogger struct{ mock.Mock }

func (l *stubLogger) Log(e log.Event) { l.Called(e) }

// recorder collects every event.
type recorder struct{ events []log.Event }

func (r *recorder) Log(e log.Event) { r.events = append(r.events, e) }

type stubSource struct{ mock.Mock }

func (s *stubSource) Get(iface, name string) (any, bool) {
	ret := s.Called(iface, name)
	return ret.Get(0), ret.Bool(1)
}
func (s *stubSource) ObjectPath() string { return s.Called().String(0) }

func load(t *testing.T, name string) fixture.Properties {
	t.Helper()
	return fixture.MustLoadProperties(t, filepath.Join("testdata", name))
}

func TestDecodeEthernet(t *testing.T) {
	d := props.NewDecoder()

	st, err := d.DecodeDevice(load(t, "eth0.yaml"), load(t, "eth0_ip4.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "eth0", st.Interface)
	assert.Equal(t, status.InterfaceTypeEthernet, st.Type)
	assert.Equal(t, status.InterfaceStateActivated, st.State)
	assert.True(t, st.Up)
	assert.False(t, st.Virtual)
	assert.False(t, st.Loopback)
	assert.True(t, st.AutoConnect)
	assert.Equal(t, "r8169", st.Driver)
	assert.Empty(t, st.DriverVersion)
	assert.Equal(t, uint32(1500), st.MTU)
	assert.Equal(t, "00:E0:4C:68:01:02", st.HardwareAddress)

	require.NotNil(t, st.IPv4)
	assert.Equal(t, netip.MustParseAddr("192.168.1.1"), st.IPv4.Gateway)
	assert.Equal(t, []status.IPv4Address{
		{Address: netip.MustParseAddr("192.168.1.20"), Prefix: 24, Netmask: netip.MustParseAddr("255.255.255.0")},
		{Address: netip.MustParseAddr("10.0.0.5"), Prefix: 8, Netmask: netip.MustParseAddr("255.0.0.0")},
	}, st.IPv4.Addresses)
	assert.Equal(t, []netip.Addr{
		netip.MustParseAddr("192.168.1.1"),
		netip.MustParseAddr("8.8.8.8"),
	}, st.IPv4.DNS)
}

func TestDecodeDeviceWithoutIP4Config(t *testing.T) {
	st, err := props.NewDecoder().DecodeDevice(load(t, "eth0.yaml"), nil)
	require.NoError(t, err)
	assert.Nil(t, st.IPv4)
}

func TestDecodeLoopbackPublishedAsGeneric(t *testing.T) {
	st, err := props.NewDecoder().DecodeDevice(load(t, "lo.yaml"), nil)
	require.NoError(t, err)

	assert.Equal(t, status.InterfaceTypeLoopback, st.Type)
	assert.True(t, st.Virtual)
	assert.True(t, st.Loopback)
	assert.False(t, st.Up)
}

func TestDecodeWifiInfrastructure(t *testing.T) {
	st, err := props.NewDecoder().DecodeWifi(props.WifiSources{
		Device:            load(t, "wlan0.yaml"),
		ActiveAccessPoint: load(t, "ap_home.yaml"),
		AccessPoints:      []props.PropertySource{load(t, "ap_hotspot.yaml")},
	})
	require.NoError(t, err)

	assert.Equal(t, "wlan0", st.Interface)
	assert.Equal(t, status.WifiModeInfra, st.Mode)
	assert.Equal(t, uint32(65000), st.Bitrate)
	assert.True(t, st.Capabilities.Equal(codes.NewSet(
		status.WifiCapabilityCipherWEP40,
		status.WifiCapabilityCipherWEP104,
		status.WifiCapabilityCipherTKIP,
		status.WifiCapabilityCipherCCMP,
		status.WifiCapabilityWPA,
		status.WifiCapabilityRSN,
	)), "got %v", st.Capabilities.Slice())

	require.NotNil(t, st.ActiveAccessPoint)
	ap := st.ActiveAccessPoint
	assert.Equal(t, "HomeNet", ap.SSID)
	assert.Equal(t, status.WifiModeInfra, ap.Mode)
	assert.Equal(t, uint32(5180), ap.Frequency)
	assert.Equal(t, uint8(74), ap.Strength)
	assert.True(t, ap.WPASecurity.Equal(codes.NewSet(status.WifiSecurityNone)))
	assert.True(t, ap.RSNSecurity.Equal(codes.NewSet(
		status.WifiSecurityPairCCMP,
		status.WifiSecurityGroupCCMP,
		status.WifiSecurityKeyMgmtPSK,
	)))
}

func TestDecodeWifiMasterUsesFirstAccessPoint(t *testing.T) {
	device := load(t, "wlan0.yaml")
	device[nm.WirelessInterface]["Mode"] = 3

	st, err := props.NewDecoder().DecodeWifi(props.WifiSources{
		Device:            device,
		ActiveAccessPoint: load(t, "ap_home.yaml"),
		AccessPoints:      []props.PropertySource{load(t, "ap_hotspot.yaml")},
	})
	require.NoError(t, err)

	assert.Equal(t, status.WifiModeMaster, st.Mode)
	require.NotNil(t, st.ActiveAccessPoint)
	assert.Equal(t, "edge", st.ActiveAccessPoint.SSID)
}

func TestDecodeWifiMasterWithoutAccessPoints(t *testing.T) {
	device := load(t, "wlan0.yaml")
	device[nm.WirelessInterface]["Mode"] = 3

	st, err := props.NewDecoder().DecodeWifi(props.WifiSources{Device: device})
	require.NoError(t, err)
	assert.Nil(t, st.ActiveAccessPoint)
}

func TestDecodeModem(t *testing.T) {
	rec := &recorder{}
	st, err := props.NewDecoder(props.WithLogger(rec)).DecodeModem(load(t, "modem.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "EG25-G", st.Model)
	assert.Equal(t, "Quectel", st.Manufacturer)
	assert.Equal(t, status.ModemConnectionStatusConnected, st.ConnectionStatus)
	assert.Equal(t, status.ModemPowerStateOn, st.PowerState)
	assert.True(t, st.AccessTechnologies.Equal(codes.NewSet(status.AccessTechnologyLTE)))
	assert.Equal(t, []status.ModemBand{
		status.ModemBandEutran1,
		status.ModemBandEutran3,
		status.ModemBandEutran20,
	}, st.CurrentBands)
	assert.True(t, st.CurrentModes.Allowed.Equal(codes.NewSet(status.ModemMode2G, status.ModemMode3G, status.ModemMode4G)))
	assert.Equal(t, status.ModemMode4G, st.CurrentModes.Preferred)
	assert.True(t, st.CurrentCapabilities.Equal(codes.NewSet(status.ModemCapabilityGSMUMTS, status.ModemCapabilityLTE)))
	assert.True(t, st.SupportedCapabilities.Equal(codes.NewSet(status.ModemCapabilityGSMUMTS, status.ModemCapabilityLTE)))
	assert.Equal(t, uint32(67), st.SignalQuality)
	assert.Equal(t, []status.ModemPort{
		{Name: "wwan0", Type: status.ModemPortTypeNet},
		{Name: "cdc-wdm0", Type: status.ModemPortTypeQMI},
		{Name: "ttyUSB2", Type: status.ModemPortTypeAT},
	}, st.Ports)
	assert.Equal(t, status.RegistrationStatusRegisteredRoaming, st.RegistrationStatus)
	assert.Equal(t, "Vodafone", st.OperatorName)

	var unknown []log.Event
	for _, e := range rec.events {
		if e.Category == log.CategoryUnknown {
			unknown = append(unknown, e)
		}
	}
	require.Len(t, unknown, 1)
	assert.Equal(t, "mm.access-technology", unknown[0].Table)
	assert.Equal(t, mm.ModemInterface+".AccessTechnologies", unknown[0].Property)
	assert.Equal(t, uint32(0x80000000), unknown[0].Residual)
}

func TestDecodeModemWithoutOptionalInterfaces(t *testing.T) {
	modem := props.Map{
		mm.ModemInterface: {
			"State":              int32(-1),
			"AccessTechnologies": uint32(0),
		},
	}

	st, err := props.NewDecoder().DecodeModem(modem)
	require.NoError(t, err)

	assert.Equal(t, status.ModemConnectionStatusFailed, st.ConnectionStatus)
	assert.Equal(t, status.ModemPowerStateUnknown, st.PowerState)
	assert.Equal(t, status.RegistrationStatusUnknown, st.RegistrationStatus)
	assert.True(t, st.AccessTechnologies.Equal(codes.NewSet(status.AccessTechnologyUnknown)))
	assert.Empty(t, st.CurrentBands)
	assert.Nil(t, st.Ports)
}

func TestDecoderLogsTranslations(t *testing.T) {
	logger := &stubLogger{}
	logger.On("Log", mock.MatchedBy(func(e log.Event) bool {
		return e.Table == "nm.device-state" &&
			e.Category == log.CategoryDecode &&
			e.Property == nm.DeviceInterface+".State" &&
			e.Wire == 100 &&
			e.SessionID == "session-1" &&
			!e.Timestamp.IsZero()
	})).Return().Once()
	logger.On("Log", mock.MatchedBy(func(e log.Event) bool {
		return e.Table == "nm.device-type" && e.Wire == 1
	})).Return().Once()

	d := props.NewDecoder(props.WithLogger(logger), props.WithSessionID("session-1"))
	_, err := d.DecodeDevice(load(t, "eth0.yaml"), nil)
	require.NoError(t, err)

	logger.AssertExpectations(t)
	assert.Equal(t, "session-1", d.SessionID())
}

func TestDecoderReportsObjectPath(t *testing.T) {
	src := &stubSource{}
	src.On("ObjectPath").Return("/org/freedesktop/NetworkManager/AccessPoint/7")
	src.On("Get", nm.AccessPointInterface, "Ssid").Return([]byte("cafe"), true)
	src.On("Get", nm.AccessPointInterface, "Mode").Return(uint32(2), true)
	src.On("Get", nm.AccessPointInterface, "WpaFlags").Return(uint32(0x188), true)
	src.On("Get", nm.AccessPointInterface, "RsnFlags").Return(uint32(0), true)
	src.On("Get", mock.Anything, mock.Anything).Return(nil, false)

	rec := &recorder{}
	ap, err := props.NewDecoder(props.WithLogger(rec)).DecodeAccessPoint(src)
	require.NoError(t, err)
	assert.Equal(t, "cafe", ap.SSID)
	assert.Empty(t, ap.HardwareAddress)

	require.NotEmpty(t, rec.events)
	for _, e := range rec.events {
		assert.Equal(t, "/org/freedesktop/NetworkManager/AccessPoint/7", e.Object)
	}
	src.AssertExpectations(t)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p fixture.Properties)
		want   error
		prop   string
	}{
		{
			name:   "missing state",
			mutate: func(p fixture.Properties) { delete(p[nm.DeviceInterface], "State") },
			want:   props.ErrMissingProperty,
			prop:   "Device.State",
		},
		{
			name:   "state as string",
			mutate: func(p fixture.Properties) { p[nm.DeviceInterface]["State"] = "ACTIVATED" },
			want:   props.ErrPropertyType,
			prop:   "Device.State",
		},
		{
			name:   "mtu out of range",
			mutate: func(p fixture.Properties) { p[nm.DeviceInterface]["Mtu"] = int64(1) << 40 },
			want:   props.ErrPropertyType,
			prop:   "Device.Mtu",
		},
		{
			name:   "bad mac",
			mutate: func(p fixture.Properties) { p[nm.DeviceInterface]["HwAddress"] = "not-a-mac" },
			want:   props.ErrPropertyValue,
			prop:   "Device.HwAddress",
		},
		{
			name:   "autoconnect as int",
			mutate: func(p fixture.Properties) { p[nm.DeviceInterface]["Autoconnect"] = 1 },
			want:   props.ErrPropertyType,
			prop:   "Device.Autoconnect",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := load(t, "eth0.yaml")
			tt.mutate(device)

			rec := &recorder{}
			_, err := props.NewDecoder(props.WithLogger(rec)).DecodeDevice(device, nil)
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.prop)

			last := rec.events[len(rec.events)-1]
			assert.Equal(t, log.CategoryError, last.Category)
			assert.Equal(t, err.Error(), last.Message)
		})
	}
}

func TestDecodeIPv4Errors(t *testing.T) {
	tests := []struct {
		name string
		ip4  props.Map
		want error
	}{
		{
			name: "prefix too long",
			ip4: props.Map{nm.IP4ConfigInterface: {
				"AddressData": []any{map[string]any{"address": "10.0.0.1", "prefix": uint32(33)}},
			}},
			want: props.ErrPropertyValue,
		},
		{
			name: "address not a string",
			ip4: props.Map{nm.IP4ConfigInterface: {
				"AddressData": []any{map[string]any{"address": 10, "prefix": uint32(8)}},
			}},
			want: props.ErrPropertyType,
		},
		{
			name: "bad gateway",
			ip4:  props.Map{nm.IP4ConfigInterface: {"Gateway": "192.168.1"}},
			want: props.ErrPropertyValue,
		},
		{
			name: "address data not a list",
			ip4:  props.Map{nm.IP4ConfigInterface: {"AddressData": "10.0.0.1/8"}},
			want: props.ErrPropertyType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := props.NewDecoder().DecodeDevice(load(t, "eth0.yaml"), tt.ip4)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestIntegerRepresentations(t *testing.T) {
	values := []any{
		uint8(100), uint16(100), uint32(100), uint64(100),
		int8(100), int16(100), int32(100), int64(100), 100,
	}

	for _, v := range values {
		device := props.Map{nm.DeviceInterface: {
			"Interface":  "eth1",
			"DeviceType": uint32(1),
			"State":      v,
		}}
		st, err := props.NewDecoder().DecodeDevice(device, nil)
		require.NoError(t, err, "%T", v)
		assert.Equal(t, status.InterfaceStateActivated, st.State, "%T", v)
	}
}

func TestCBORStyleMaps(t *testing.T) {
	ip4 := props.Map{nm.IP4ConfigInterface: {
		"AddressData": []any{map[any]any{"address": "172.16.0.9", "prefix": uint64(12)}},
	}}

	st, err := props.NewDecoder().DecodeDevice(load(t, "eth0.yaml"), ip4)
	require.NoError(t, err)
	require.Len(t, st.IPv4.Addresses, 1)
	assert.Equal(t, netip.MustParseAddr("255.240.0.0"), st.IPv4.Addresses[0].Netmask)
}

func TestDefaultSessionIDIsUnique(t *testing.T) {
	a := props.NewDecoder().SessionID()
	b := props.NewDecoder().SessionID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

