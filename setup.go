package shellnet

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/sharnoff/shellnet/costfuncs"
	"github.com/sharnoff/shellnet/initializers"
)

// New builds a Network from the given Topology. Every Shell gets one extra bias Node, with output
// fixed at 1.0, that feeds each functional Node of the next Shell.
//
// If initializer is nil, weights are drawn uniformly from [0, 1) with initializers.Uniform().
// All weight deltas start at zero.
//
// New returns a ConstructionError if the Topology has fewer than two Shells, if any Shell has
// fewer than one Node, or if hp is invalid.
func New(topology Topology, hp Hyperparameters, initializer Initializer) (*Network, error) {
	if len(topology) < 2 {
		return nil, ConstructionError{fmt.Sprintf("Topology must have >= 2 layers (%d)", len(topology))}
	}

	for l, size := range topology {
		if size < 1 {
			return nil, ConstructionError{fmt.Sprintf("Layer %d must have >= 1 nodes (%d)", l, size)}
		}
	}

	if err := hp.Validate(); err != nil {
		return nil, ConstructionError{err.Error()}
	}

	if initializer == nil {
		initializer = initializers.Uniform()
	}

	net := &Network{
		topology: make(Topology, len(topology)),
		shells:   make([]Shell, len(topology)),
		hp:       hp,
		cost:     costfuncs.RMS(),
	}
	copy(net.topology, topology)

	for l := range net.shells {
		var numOutputs int
		if l != len(topology)-1 {
			numOutputs = topology[l+1]
		}

		s := &net.shells[l]

		// +1 for the bias Node
		s.nodes = make([]Node, topology[l]+1)
		for n := range s.nodes {
			s.nodes[n].index = n
		}

		// set the bias output
		bias := &s.nodes[len(s.nodes)-1]
		bias.bias = true
		bias.output = 1

		if numOutputs == 0 {
			continue
		}

		s.weights = mat.NewDense(len(s.nodes), numOutputs, nil)
		s.deltas = mat.NewDense(len(s.nodes), numOutputs, nil)

		initializer.Set(s.weights.RawMatrix().Data)
	}

	if err := net.checkAlignment(); err != nil {
		return nil, ConstructionError{err.Error()}
	}

	return net, nil
}

// checkAlignment verifies that each Node's index is its position, that only the last Node of each
// Shell is a bias Node, and that every Shell's weights have one row per Node and one column per
// functional Node of the next Shell.
func (net *Network) checkAlignment() error {
	if len(net.shells) != len(net.topology) {
		return errors.Errorf("Network has %d shells, topology has %d", len(net.shells), len(net.topology))
	}

	for l := range net.shells {
		s := &net.shells[l]

		if len(s.nodes) != net.topology[l]+1 {
			return errors.Errorf("Shell %d has %d nodes, expected %d", l, len(s.nodes), net.topology[l]+1)
		}

		for n := range s.nodes {
			if s.nodes[n].index != n {
				return errors.Errorf("Node %d of shell %d has index %d", n, l, s.nodes[n].index)
			} else if s.nodes[n].bias != (n == len(s.nodes)-1) {
				return errors.Errorf("Node %d of shell %d is misplaced as a bias node", n, l)
			}
		}

		if l == len(net.shells)-1 {
			if s.weights != nil || s.deltas != nil {
				return errors.Errorf("Output shell has outbound connections")
			}

			continue
		}

		for _, m := range []*mat.Dense{s.weights, s.deltas} {
			if m == nil {
				return errors.Errorf("Shell %d has no outbound connections", l)
			}

			r, c := m.Dims()
			if r != len(s.nodes) || c != net.topology[l+1] {
				return errors.Errorf("Shell %d connections are %dx%d, expected %dx%d",
					l, r, c, len(s.nodes), net.topology[l+1])
			}
		}
	}

	return nil
}
