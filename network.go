package shellnet

// Topology returns a copy of the Topology that the Network was built with.
func (net *Network) Topology() Topology {
	t := make(Topology, len(net.topology))
	copy(t, net.topology)
	return t
}

// InputSize returns the number of values expected by Forward.
func (net *Network) InputSize() int {
	return net.topology[0]
}

// OutputSize returns the number of values given by Results and expected by Backward.
func (net *Network) OutputSize() int {
	return net.topology[len(net.topology)-1]
}

// NumShells returns the number of Shells in the Network, equal to the length of its Topology.
func (net *Network) NumShells() int {
	return len(net.shells)
}

// ShellSize returns the number of Nodes in Shell l, including its bias Node. ShellSize will allow
// panicking with index-out-of-bounds.
func (net *Network) ShellSize(l int) int {
	return len(net.shells[l].nodes)
}

// LastError returns the root-mean-square error of the outputs measured by the most recent call to
// Backward. It is zero if Backward has not been called.
func (net *Network) LastError() float64 {
	return net.lastError
}

// RecentAverageError returns the exponentially smoothed LastError over recent calls to Backward.
// This is the usual signal for whether training has converged.
func (net *Network) RecentAverageError() float64 {
	return net.recentAvgError
}

// Hyperparameters returns the current Hyperparameters of the Network.
func (net *Network) Hyperparameters() Hyperparameters {
	return net.hp
}

// SetLearningRate changes the learning rate used by subsequent calls to Backward. It returns an
// error, leaving the Network unchanged, if rate is negative, NaN, or infinite.
func (net *Network) SetLearningRate(rate float64) error {
	if err := checkFinite("Learning rate", rate); err != nil {
		return err
	}

	net.hp.LearningRate = rate
	return nil
}

// SetMomentum changes the momentum used by subsequent calls to Backward. It returns an error,
// leaving the Network unchanged, if momentum is negative, NaN, or infinite.
func (net *Network) SetMomentum(momentum float64) error {
	if err := checkFinite("Momentum", momentum); err != nil {
		return err
	}

	net.hp.Momentum = momentum
	return nil
}

// Output returns the output of Node n in Shell l. The output of the last Node of any Shell, its
// bias Node, is always 1.0.
//
// Output will allow panicking with index-out-of-bounds.
func (net *Network) Output(l, n int) float64 {
	return net.shells[l].nodes[n].output
}

// Gradient returns the gradient of Node n in Shell l from the most recent call to Backward.
//
// Gradient will allow panicking with index-out-of-bounds.
func (net *Network) Gradient(l, n int) float64 {
	return net.shells[l].nodes[n].gradient
}

// IsBias returns whether or not Node n in Shell l is the bias Node of the Shell.
//
// IsBias will allow panicking with index-out-of-bounds.
func (net *Network) IsBias(l, n int) bool {
	return net.shells[l].nodes[n].bias
}

// Connection returns the Connection from Node u in Shell l to Node n in Shell l+1. n must be a
// functional Node.
//
// Connection will panic if the indexes are out of range, including if l is the output Shell.
func (net *Network) Connection(l, u, n int) Connection {
	s := &net.shells[l]
	if s.weights == nil {
		panic(NilArgError{"Outbound connection of output shell"})
	}

	return Connection{
		Weight:      s.weights.At(u, n),
		DeltaWeight: s.deltas.At(u, n),
	}
}

// SetWeight sets the weight from Node u in Shell l to Node n in Shell l+1, leaving its
// DeltaWeight unchanged.
//
// SetWeight has the same panicking conditions as Connection.
func (net *Network) SetWeight(l, u, n int, w float64) {
	s := &net.shells[l]
	if s.weights == nil {
		panic(NilArgError{"Outbound connection of output shell"})
	}

	s.weights.Set(u, n, w)
}
