package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmwire/nmwire-go/pkg/codes"
	"github.com/nmwire/nmwire-go/pkg/mm"
	"github.com/nmwire/nmwire-go/pkg/nm"
	"github.com/nmwire/nmwire-go/pkg/props"
	"github.com/nmwire/nmwire-go/pkg/status"
	"github.com/nmwire/nmwire-go/pkg/wire"
)

var _ props.ObjectSource = (*wire.Snapshot)(nil)

func reload(t *testing.T, s *wire.Snapshot) *wire.Snapshot {
	t.Helper()
	data, err := wire.EncodeSnapshot(s)
	require.NoError(t, err)
	out, err := wire.DecodeSnapshot(data)
	require.NoError(t, err)
	return out
}

func TestDecodedSnapshotFeedsDeviceDecoder(t *testing.T) {
	dev := wire.NewSnapshot("/org/freedesktop/NetworkManager/Devices/3")
	dev.Set(nm.DeviceInterface, "Interface", "wlan0")
	dev.Set(nm.DeviceInterface, "DeviceType", uint32(2))
	dev.Set(nm.DeviceInterface, "State", uint32(100))
	dev.Set(nm.DeviceInterface, "Mtu", uint32(1500))
	dev.Set(nm.WirelessInterface, "Mode", uint32(3))
	dev.Set(nm.WirelessInterface, "WirelessCapabilities", uint32(0x30))

	ip4 := wire.NewSnapshot("/org/freedesktop/NetworkManager/IP4Config/5")
	ip4.Set(nm.IP4ConfigInterface, "AddressData", []map[string]any{
		{"address": "10.42.0.1", "prefix": uint32(24)},
	})

	ap := wire.NewSnapshot("/org/freedesktop/NetworkManager/AccessPoint/9")
	ap.Set(nm.AccessPointInterface, "Ssid", []byte("hotspot"))
	ap.Set(nm.AccessPointInterface, "Mode", uint32(3))
	ap.Set(nm.AccessPointInterface, "Strength", uint8(100))
	ap.Set(nm.AccessPointInterface, "WpaFlags", uint32(0))
	ap.Set(nm.AccessPointInterface, "RsnFlags", uint32(0x188))

	st, err := props.NewDecoder().DecodeWifi(props.WifiSources{
		Device:       reload(t, dev),
		IP4Config:    reload(t, ip4),
		AccessPoints: []props.PropertySource{reload(t, ap)},
	})
	require.NoError(t, err)

	assert.Equal(t, status.InterfaceStateActivated, st.State)
	assert.Equal(t, status.WifiModeMaster, st.Mode)
	assert.True(t, st.Capabilities.Equal(codes.NewSet(status.WifiCapabilityWPA, status.WifiCapabilityRSN)))
	require.NotNil(t, st.IPv4)
	assert.Equal(t, "255.255.255.0", st.IPv4.Addresses[0].Netmask.String())
	require.NotNil(t, st.ActiveAccessPoint)
	assert.Equal(t, "hotspot", st.ActiveAccessPoint.SSID)
}

func TestDecodedSnapshotFeedsModemDecoder(t *testing.T) {
	modem := wire.NewSnapshot("/org/freedesktop/ModemManager1/Modem/0")
	modem.Set(mm.ModemInterface, "State", int32(-1))
	modem.Set(mm.ModemInterface, "AccessTechnologies", uint32(0x4000))
	modem.Set(mm.ModemInterface, "CurrentBands", []uint32{31, 256})
	modem.Set(mm.ModemInterface, "Ports", []any{[]any{"wwan0", uint32(2)}})

	st, err := props.NewDecoder().DecodeModem(reload(t, modem))
	require.NoError(t, err)

	assert.Equal(t, "/org/freedesktop/ModemManager1/Modem/0", st.Object)
	assert.Equal(t, status.ModemConnectionStatusFailed, st.ConnectionStatus)
	assert.Equal(t, []status.ModemBand{status.ModemBandEutran1, status.ModemBandAny}, st.CurrentBands)
	assert.Equal(t, []status.ModemPort{{Name: "wwan0", Type: status.ModemPortTypeNet}}, st.Ports)
}
