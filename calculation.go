package shellnet

// Forward sets the outputs of the input Shell to the given values and propagates them through
// the Network. The outputs can then be read with Results.
//
// If len(input) is not the size of the input Shell, Forward returns type SizeMismatchError and the
// Network is unchanged.
func (net *Network) Forward(input []float64) error {
	if len(input) != net.topology[0] {
		return SizeMismatchError{net.topology[0], len(input), "inputs"}
	}

	in := net.shells[0].functional()
	for i := range in {
		in[i].output = input[i]
	}

	for l := 1; l < len(net.shells); l++ {
		prev := &net.shells[l-1]

		fs := net.shells[l].functional()
		for n := range fs {
			fs[n].forward(prev)
		}
	}

	return nil
}

// Backward measures the error of the outputs from the most recent call to Forward against the
// given targets, and adjusts every weight in the Network to reduce it.
//
// If len(target) is not the size of the output Shell, Backward returns type SizeMismatchError and
// the Network is unchanged.
func (net *Network) Backward(target []float64) error {
	if len(target) != net.topology[len(net.topology)-1] {
		return SizeMismatchError{net.topology[len(net.topology)-1], len(target), "targets"}
	}

	outs := net.shells[len(net.shells)-1].functional()

	net.lastError = net.cost.Cost(net.Results(), target)

	s := net.hp.Smoothing
	net.recentAvgError = (net.recentAvgError*s + net.lastError) / (s + 1)

	for n := range outs {
		outs[n].outputGradient(target[n])
	}

	// Hidden Shells, from the output side inward. The bias Node of each hidden Shell gets a
	// gradient as well, although nothing reads it.
	for l := len(net.shells) - 2; l > 0; l-- {
		hidden := &net.shells[l]
		nextGrads := net.shells[l+1].gradients()

		for n := range hidden.nodes {
			hidden.nodes[n].hiddenGradient(hidden, nextGrads)
		}
	}

	// All gradients are set before any weight changes. Bias Nodes are never the target of an
	// update.
	for l := len(net.shells) - 1; l > 0; l-- {
		prev := &net.shells[l-1]

		fs := net.shells[l].functional()
		for n := range fs {
			fs[n].updateInputWeights(prev, net.hp)
		}
	}

	return nil
}

// Results returns a copy of the outputs of every functional Node in the output Shell, in order.
func (net *Network) Results() []float64 {
	outs := net.shells[len(net.shells)-1].functional()

	rs := make([]float64, len(outs))
	for n := range outs {
		rs[n] = outs[n].output
	}

	return rs
}
