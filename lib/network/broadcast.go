package network

import (
	"net"

	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotIPv4         = errors.New("not an IPv4 address")
)

// BroadcastAddress computes the broadcast address of the subnet
// that the address belongs to, by setting every host bit of the address.
// Address and mask are combined byte by byte and must have the same length,
// otherwise an error wrapping ErrInvalidArgument is returned.
// The result is a newly allocated IP of the same length.
func BroadcastAddress(address net.IP, subnetMask net.IPMask) (net.IP, error) {
	if len(address) != len(subnetMask) {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"address is %v bytes long but subnet mask is %v bytes long", len(address), len(subnetMask))
	}
	broadcast := make(net.IP, len(address))
	for i := range address {
		broadcast[i] = address[i] | ^subnetMask[i]
	}
	return broadcast, nil
}
