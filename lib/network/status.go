package network

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/stoewer/go-strcase"
)

// OperState is the operational state of an interface as reported by the host.
// The values are those of RFC 2863, which the Linux kernel uses for IF_OPER_*.
type OperState uint8

const (
	OperUnknown OperState = iota
	OperNotPresent
	OperDown
	OperLowerLayerDown
	OperTesting
	OperDormant
	OperUp
)

var operStateNames = []string{
	OperUnknown:        "Unknown",
	OperNotPresent:     "NotPresent",
	OperDown:           "Down",
	OperLowerLayerDown: "LowerLayerDown",
	OperTesting:        "Testing",
	OperDormant:        "Dormant",
	OperUp:             "Up",
}

// Status is the connection status of an interface.
type Status uint8

const (
	StatusUnknown Status = iota
	StatusConnected
	StatusDisconnected
)

var statusNames = []string{
	StatusUnknown:      "Unknown",
	StatusConnected:    "Connected",
	StatusDisconnected: "Disconnected",
}

// Status maps the operational state to a connection status.
// Every state other than up and down is unknown, including values
// that are not defined in this package.
func (s OperState) Status() Status {
	switch s {
	case OperUp:
		return StatusConnected
	case OperDown:
		return StatusDisconnected
	default:
		return StatusUnknown
	}
}

func (s OperState) String() string {
	if int(s) < len(operStateNames) {
		return operStateNames[s]
	}
	return fmt.Sprintf("OperState(%d)", uint8(s))
}

func (s OperState) MarshalText() ([]byte, error) {
	return []byte(strcase.SnakeCase(s.String())), nil
}

// ParseOperState parses the name of an operational state.
// Names are matched independent of their casing style,
// e.g. "lower-layer-down" and "LowerLayerDown" are the same state.
func ParseOperState(name string) (OperState, error) {
	i, err := parseName(name, operStateNames)
	if err != nil {
		return OperUnknown, errors.Wrap(err, "operational state")
	}
	return OperState(i), nil
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(strcase.SnakeCase(s.String())), nil
}

// ParseStatus parses the name of a connection status.
// See ParseOperState for the accepted forms.
func ParseStatus(name string) (Status, error) {
	i, err := parseName(name, statusNames)
	if err != nil {
		return StatusUnknown, errors.Wrap(err, "status")
	}
	return Status(i), nil
}

func parseName(name string, names []string) (int, error) {
	key := strcase.SnakeCase(name)
	for i, n := range names {
		if strcase.SnakeCase(n) == key {
			return i, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown name %q", name)
}
