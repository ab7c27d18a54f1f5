package network

import (
	"context"
	"log"
	"net"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// stdSource is a Source that is built on top of net.Interfaces.
type stdSource struct {
	interfaces func() ([]net.Interface, error)
	addrs      func(in *net.Interface) ([]net.Addr, error)
	log        *log.Logger
}

func newStdSource() *stdSource {
	return &stdSource{
		interfaces: net.Interfaces,
		addrs:      (*net.Interface).Addrs,
		log:        log.New(log.Writer(), "network.std: ", log.Flags()),
	}
}

func (s *stdSource) Interfaces(ctx context.Context) (summaries []Summary, err error) {
	if err = ctx.Err(); err != nil {
		return
	}
	ins, err := s.interfaces()
	if err != nil {
		err = errors.Wrap(err, "failed to list interfaces")
		return
	}
	summaries = make([]Summary, len(ins))
	g, ctx := errgroup.WithContext(ctx)
	for i := range ins {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			in := ins[i]
			inAddrs, err := s.addrs(&in)
			if err != nil {
				return errors.Wrapf(err, "failed to list addresses of %v", in.Name)
			}
			nets := make([]Net, 0, len(inAddrs))
			for _, inAddr := range inAddrs {
				addr, ok := inAddr.(*net.IPNet)
				if !ok {
					s.log.Printf("ignoring address %v of %v\n", inAddr, in.Name)
					continue
				}
				nets = append(nets, Net{
					IPNet:     *addr,
					Interface: in,
				})
			}
			summaries[i] = Summarize(in, nets, nil, operStateFromFlags(in.Flags))
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		summaries = nil
		return
	}
	sortByIndex(summaries)
	return
}

// operStateFromFlags approximates the operational state with the flags
// that every platform supports.
func operStateFromFlags(flags net.Flags) OperState {
	switch {
	case flags&net.FlagUp == 0:
		return OperDown
	case flags&net.FlagRunning == 0:
		return OperLowerLayerDown
	default:
		return OperUp
	}
}

func sortByIndex(summaries []Summary) {
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Index < summaries[j].Index
	})
}
