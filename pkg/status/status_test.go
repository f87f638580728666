package status

import (
	"encoding/json"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nmwire/nmwire-go/pkg/codes"
)

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		value interface{ String() string }
		want  string
	}{
		{InterfaceStateNeedAuth, "NEED_AUTH"},
		{InterfaceState(200), "UNKNOWN"},
		{InterfaceTypeWireGuard, "WIREGUARD"},
		{WifiModeMaster, "MASTER"},
		{WifiSecurityKeyMgmt8021X, "KEY_MGMT_802_1X"},
		{AccessTechnology1xRTT, "ONEXRTT"},
		{AccessTechnology5GNR, "FIVEGNR"},
		{ModemMode4G, "4G"},
		{ModemCapability5GNR, "5GNR"},
		{ModemBandEutran71, "EUTRAN_71"},
		{ModemBandCdmaBc19, "CDMA_BC19"},
		{ModemBandAny, "ANY"},
		{ModemBand(4000), "UNKNOWN"},
		{SimTypeESIM, "ESIM"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestUnmarshalText(t *testing.T) {
	var s InterfaceState
	require.NoError(t, s.UnmarshalText([]byte("IP_CHECK")))
	assert.Equal(t, InterfaceStateIPCheck, s)

	var b ModemBand
	require.NoError(t, b.UnmarshalText([]byte("UTRAN_32")))
	assert.Equal(t, ModemBandUtran32, b)

	err := s.UnmarshalText([]byte("ip_check"))
	assert.ErrorIs(t, err, ErrUnknownName)
	assert.Equal(t, InterfaceStateIPCheck, s, "failed parse leaves the value untouched")
}

func TestEnumsInYAML(t *testing.T) {
	var doc struct {
		State AccessTechnology   `yaml:"state"`
		Modes []ModemMode        `yaml:"modes"`
		Reg   RegistrationStatus `yaml:"reg"`
	}
	err := yaml.Unmarshal([]byte("state: LTE\nmodes: [2G, 4G]\nreg: REGISTERED_ROAMING\n"), &doc)
	require.NoError(t, err)
	assert.Equal(t, AccessTechnologyLTE, doc.State)
	assert.Equal(t, []ModemMode{ModemMode2G, ModemMode4G}, doc.Modes)
	assert.Equal(t, RegistrationStatusRegisteredRoaming, doc.Reg)

	err = yaml.Unmarshal([]byte("state: lte\n"), &doc)
	assert.Error(t, err)
}

func TestWifiStatusJSON(t *testing.T) {
	ws := WifiStatus{
		DeviceStatus: DeviceStatus{
			Interface: "wlan0",
			Type:      InterfaceTypeWifi,
			State:     InterfaceStateActivated,
			Up:        true,
			MTU:       1500,
			IPv4: &IPv4Status{
				Addresses: []IPv4Address{{
					Address: netip.MustParseAddr("192.168.1.20"),
					Prefix:  24,
					Netmask: netip.MustParseAddr("255.255.255.0"),
				}},
				Gateway: netip.MustParseAddr("192.168.1.1"),
			},
		},
		Mode:         WifiModeInfra,
		Capabilities: codes.NewSet(WifiCapabilityWPA, WifiCapabilityRSN),
	}

	data, err := json.Marshal(ws)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "wlan0", got["interface"])
	assert.Equal(t, "WIFI", got["type"])
	assert.Equal(t, "ACTIVATED", got["state"])
	assert.Equal(t, "INFRA", got["mode"])
	assert.Equal(t, []any{"RSN", "WPA"}, got["capabilities"])

	ipv4 := got["ipv4"].(map[string]any)
	assert.Equal(t, "192.168.1.1", ipv4["gateway"])
	assert.NotContains(t, got, "activeAccessPoint")
}
