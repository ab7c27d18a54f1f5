package network

import "context"

// Source enumerates the network interfaces of this device.
// Each call takes a fresh snapshot, there is no tracking of later changes.
type Source interface {
	Interfaces(ctx context.Context) ([]Summary, error)
}

// NewStdSource returns a Source that only uses the net package.
// It is available on every platform but cannot determine gateways,
// and derives the operational state from the interface flags.
func NewStdSource() Source {
	return newStdSource()
}
