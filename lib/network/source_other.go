//go:build !linux

package network

// NewSource returns the Source that is best suited for this platform.
func NewSource() Source {
	return NewStdSource()
}
