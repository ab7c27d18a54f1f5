//go:build linux

package network

import (
	"context"
	"log"
	"net"

	"github.com/pkg/errors"
	"github.com/vishvananda/netlink"
	"golang.org/x/sync/errgroup"
)

// linkLister is the part of the netlink API which is needed to summarize links.
type linkLister interface {
	LinkList() ([]netlink.Link, error)
	AddrList(link netlink.Link, family int) ([]netlink.Addr, error)
	RouteList(link netlink.Link, family int) ([]netlink.Route, error)
}

type defaultLinkLister struct{}

func (defaultLinkLister) LinkList() ([]netlink.Link, error) {
	return netlink.LinkList()
}

func (defaultLinkLister) AddrList(link netlink.Link, family int) ([]netlink.Addr, error) {
	return netlink.AddrList(link, family)
}

func (defaultLinkLister) RouteList(link netlink.Link, family int) ([]netlink.Route, error) {
	return netlink.RouteList(link, family)
}

// linkSource is a Source that queries the kernel over netlink.
// Unlike stdSource it knows the actual operational state and gateway of a link.
type linkSource struct {
	nl  linkLister
	log *log.Logger
}

// NewSource returns the Source that is best suited for this platform.
func NewSource() Source {
	return newLinkSource(defaultLinkLister{})
}

func newLinkSource(nl linkLister) *linkSource {
	return &linkSource{
		nl:  nl,
		log: log.New(log.Writer(), "network.link: ", log.Flags()),
	}
}

func (s *linkSource) Interfaces(ctx context.Context) (summaries []Summary, err error) {
	if err = ctx.Err(); err != nil {
		return
	}
	links, err := s.nl.LinkList()
	if err != nil {
		err = errors.Wrap(err, "failed to list links")
		return
	}
	summaries = make([]Summary, len(links))
	g, ctx := errgroup.WithContext(ctx)
	for i := range links {
		i := i
		g.Go(func() (err error) {
			if err = ctx.Err(); err != nil {
				return
			}
			summaries[i], err = s.summarize(links[i])
			return
		})
	}
	if err = g.Wait(); err != nil {
		summaries = nil
		return
	}
	sortByIndex(summaries)
	return
}

func (s *linkSource) summarize(link netlink.Link) (Summary, error) {
	attrs := link.Attrs()
	in := net.Interface{
		Index:        attrs.Index,
		MTU:          attrs.MTU,
		Name:         attrs.Name,
		HardwareAddr: attrs.HardwareAddr,
		Flags:        attrs.Flags,
	}
	addrs, err := s.nl.AddrList(link, netlink.FAMILY_V4)
	if err != nil {
		return Summary{}, errors.Wrapf(err, "failed to list addresses of %v", attrs.Name)
	}
	nets := make([]Net, 0, len(addrs))
	for _, addr := range addrs {
		if addr.IPNet == nil {
			continue
		}
		nets = append(nets, Net{
			IPNet:     *addr.IPNet,
			Interface: in,
		})
	}
	gateway, err := s.gateway(link)
	if err != nil {
		// the summary is still useful without a gateway
		s.log.Println("failed to determine gateway:", err)
	}
	return Summarize(in, nets, gateway, OperState(attrs.OperState)), nil
}

// gateway returns the gateway of the default IPv4 route over the link.
// It returns nil if there is no such route.
func (s *linkSource) gateway(link netlink.Link) (net.IP, error) {
	routes, err := s.nl.RouteList(link, netlink.FAMILY_V4)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list routes of %v", link.Attrs().Name)
	}
	for _, route := range routes {
		if route.Gw != nil && isDefaultRoute(route.Dst) {
			return route.Gw, nil
		}
	}
	return nil, nil
}

func isDefaultRoute(dst *net.IPNet) bool {
	if dst == nil {
		return true
	}
	ones, _ := dst.Mask.Size()
	return ones == 0 && dst.IP.IsUnspecified()
}
