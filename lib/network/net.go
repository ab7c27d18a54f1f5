package network

import (
	"net"
	"net/netip"

	"go4.org/netipx"
)

// Net is a single address assignment on a network interface.
type Net struct {
	net.IPNet
	Interface net.Interface
}

func (n *Net) IsUp() bool {
	return n.Interface.Flags&net.FlagUp != 0
}

func (n *Net) IsLoopback() bool {
	return n.Interface.Flags&net.FlagLoopback != 0
}

func (n *Net) IsBroadcast() bool {
	return n.Interface.Flags&net.FlagBroadcast != 0
}

// IsIPv4 reports whether the assigned address is an IPv4 address.
func (n *Net) IsIPv4() bool {
	return n.IP.To4() != nil
}

// BroadcastIp returns the broadcast address of an IPv4 assignment.
// The mask may be given in its 4 or 16 byte form.
func (n *Net) BroadcastIp() (ip net.IP, err error) {
	ip4 := n.IP.To4()
	if ip4 == nil {
		err = ErrNotIPv4
		return
	}
	return BroadcastAddress(ip4, ipv4Mask(n.Mask))
}

// Prefix converts the assignment to a netip.Prefix.
func (n *Net) Prefix() (netip.Prefix, bool) {
	ipNet := n.IPNet
	if ip4 := ipNet.IP.To4(); ip4 != nil {
		ipNet.IP = ip4
		ipNet.Mask = ipv4Mask(ipNet.Mask)
	}
	prefix, ok := netipx.FromStdIPNet(&ipNet)
	return prefix, ok && prefix.IsValid()
}

// ipv4Mask strips the leading 12 bytes off a 16 byte IPv4 mask.
func ipv4Mask(mask net.IPMask) net.IPMask {
	if len(mask) == net.IPv6len {
		return mask[net.IPv6len-net.IPv4len:]
	}
	return mask
}
