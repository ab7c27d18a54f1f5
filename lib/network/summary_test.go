package network

import (
	"net"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

var eth0 = net.Interface{
	Index:        2,
	MTU:          1500,
	Name:         "eth0",
	HardwareAddr: net.HardwareAddr{0x02, 0x42, 0xac, 0x11, 0x00, 0x02},
	Flags:        net.FlagUp | net.FlagBroadcast | net.FlagRunning,
}

func ipNet(cidr string) net.IPNet {
	ip, n, err := net.ParseCIDR(cidr)
	if err != nil {
		panic(err)
	}
	n.IP = ip
	return *n
}

func TestSummarize(t *testing.T) {
	nets := []Net{
		{IPNet: ipNet("fe80::42:acff:fe11:2/64"), Interface: eth0},
		{IPNet: ipNet("192.168.1.10/24"), Interface: eth0},
		{IPNet: ipNet("10.0.5.3/16"), Interface: eth0},
	}
	s := Summarize(eth0, nets, net.IP{192, 168, 1, 1}, OperUp)
	assert.Equal(t, 2, s.Index)
	assert.Equal(t, "eth0", s.Name)
	assert.Equal(t, 1500, s.MTU)
	assert.Equal(t, eth0.HardwareAddr, s.HardwareAddr)
	assert.Equal(t, net.IP{192, 168, 1, 10}, s.Address)
	assert.Equal(t, net.CIDRMask(24, 32), s.Mask)
	assert.Equal(t, net.IP{192, 168, 1, 255}, s.Broadcast)
	assert.Equal(t, net.IP{192, 168, 1, 1}, s.Gateway)
	assert.Equal(t, StatusConnected, s.Status)
	assert.True(t, s.IsUsable())
	assert.False(t, s.IsLoopback())

	prefix, ok := s.Prefix()
	assert.True(t, ok)
	assert.Equal(t, netip.MustParsePrefix("192.168.1.10/24"), prefix)
}

func TestSummarize_Status(t *testing.T) {
	assert.Equal(t, StatusDisconnected, Summarize(eth0, nil, nil, OperDown).Status)
	assert.Equal(t, StatusUnknown, Summarize(eth0, nil, nil, OperDormant).Status)
}

func TestSummarize_NoIPv4(t *testing.T) {
	nets := []Net{
		{IPNet: ipNet("fe80::42:acff:fe11:2/64"), Interface: eth0},
	}
	s := Summarize(eth0, nets, nil, OperUp)
	assert.Nil(t, s.Address)
	assert.Nil(t, s.Mask)
	assert.Nil(t, s.Broadcast)
	assert.Nil(t, s.Gateway)
	assert.False(t, s.IsUsable())
	assert.False(t, s.IsLoopback())
	_, ok := s.Prefix()
	assert.False(t, ok)
}

func TestSummarize_Loopback(t *testing.T) {
	lo := net.Interface{Index: 1, MTU: 65536, Name: "lo", Flags: net.FlagUp | net.FlagLoopback}
	s := Summarize(lo, []Net{{IPNet: ipNet("127.0.0.1/8"), Interface: lo}}, nil, OperUnknown)
	assert.True(t, s.IsUsable())
	assert.True(t, s.IsLoopback())
	assert.Equal(t, net.IP{127, 255, 255, 255}, s.Broadcast)
	assert.Equal(t, StatusUnknown, s.Status)
}

func TestUsable(t *testing.T) {
	summaries := []Summary{
		{Name: "lo", Address: net.IP{127, 0, 0, 1}},
		{Name: "wg0"},
		{Name: "eth0", Address: net.IP{192, 168, 1, 10}},
	}
	usable := Usable(summaries)
	assert.Len(t, usable, 2)
	assert.Equal(t, "lo", usable[0].Name)
	assert.Equal(t, "eth0", usable[1].Name)
}

func TestWithStatus(t *testing.T) {
	summaries := []Summary{
		{Name: "lo", Status: StatusUnknown},
		{Name: "eth0", Status: StatusConnected},
		{Name: "eth1", Status: StatusDisconnected},
		{Name: "eth2", Status: StatusConnected},
	}
	connected := WithStatus(summaries, StatusConnected)
	assert.Len(t, connected, 2)
	assert.Equal(t, "eth0", connected[0].Name)
	assert.Equal(t, "eth2", connected[1].Name)
	assert.Empty(t, WithStatus(summaries[:1], StatusDisconnected))
}
