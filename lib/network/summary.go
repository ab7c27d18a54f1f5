package network

import (
	"net"
	"net/netip"
)

// Summary describes a network interface and its primary IPv4 assignment
// in a form that does not depend on the host platform.
type Summary struct {
	Index        int
	Name         string
	HardwareAddr net.HardwareAddr
	MTU          int
	Address      net.IP
	Mask         net.IPMask
	Gateway      net.IP
	Broadcast    net.IP
	Status       Status
}

// Summarize builds the Summary of an interface from its address assignments,
// its default gateway (which may be nil) and its operational state.
// All assignments are expected to belong to the same interface.
// The first IPv4 assignment becomes the address of the summary.
func Summarize(in net.Interface, nets []Net, gateway net.IP, state OperState) Summary {
	s := Summary{
		Index:        in.Index,
		Name:         in.Name,
		HardwareAddr: in.HardwareAddr,
		MTU:          in.MTU,
		Gateway:      gateway,
		Status:       state.Status(),
	}
	for i := range nets {
		n := &nets[i]
		if !n.IsIPv4() {
			continue
		}
		s.Address = n.IP.To4()
		s.Mask = ipv4Mask(n.Mask)
		if broadcast, err := n.BroadcastIp(); err == nil {
			s.Broadcast = broadcast
		}
		break
	}
	return s
}

// IsUsable returns true if an address is assigned to the interface.
func (s *Summary) IsUsable() bool {
	return s.Address != nil
}

func (s *Summary) IsLoopback() bool {
	return s.Address.IsLoopback()
}

// Prefix returns the address and mask of the interface as a prefix.
func (s *Summary) Prefix() (netip.Prefix, bool) {
	if !s.IsUsable() {
		return netip.Prefix{}, false
	}
	n := Net{IPNet: net.IPNet{IP: s.Address, Mask: s.Mask}}
	return n.Prefix()
}

// Usable returns the summaries of all interfaces that have an address.
func Usable(summaries []Summary) []Summary {
	res := make([]Summary, 0, len(summaries))
	for _, s := range summaries {
		if s.IsUsable() {
			res = append(res, s)
		}
	}
	return res
}

// WithStatus returns the summaries of all interfaces with the given status.
func WithStatus(summaries []Summary, status Status) []Summary {
	res := make([]Summary, 0, len(summaries))
	for _, s := range summaries {
		if s.Status == status {
			res = append(res, s)
		}
	}
	return res
}
