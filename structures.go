package shellnet

import (
	"gonum.org/v1/gonum/mat"
)

// Topology is the number of functional (non-bias) Nodes in each Shell of a Network, from the
// input Shell to the output Shell. It must have at least two entries, all of which are positive.
type Topology []int

// Network is a fully-connected feedforward network of Shells, trained one sample at a time with
// backpropagation and momentum.
//
// A Network is not safe for concurrent use. Forward and Backward mutate it in place, and must be
// synchronized externally if called from multiple goroutines.
type Network struct {
	// a copy of the Topology given to New. It is never modified.
	topology Topology

	// shells[0] is the input Shell; shells[len-1] is the output Shell.
	shells []Shell

	hp Hyperparameters

	// used to measure lastError
	cost CostFunction

	// the root-mean-square error of the most recent call to Backward
	lastError float64

	// an exponential moving average of lastError, weighted by hp.Smoothing
	recentAvgError float64
}

// Shell is a single layer of the Network: an ordered set of Nodes, the last of which is always the
// bias Node.
//
// The outbound Connections of Node u are row u of weights and deltas, indexed by the position of
// the downstream Node in the next Shell. The output Shell has no outbound Connections, so its
// matrices are nil.
type Shell struct {
	nodes []Node

	// (len(nodes)) x (number of functional Nodes in the next Shell)
	weights *mat.Dense

	// the most recent change to each weight, used for momentum. Same shape as weights.
	deltas *mat.Dense
}

// Node is a single neuron within a Shell.
type Node struct {
	// the position of the Node in its Shell; also the column of every upstream Node's outbound
	// Connections that lead to this Node
	index int

	// bias Nodes have their output pinned to 1.0
	bias bool

	output   float64
	gradient float64
}

// Connection is a read-only copy of the directed, weighted edge between a Node and a functional
// Node in the next Shell.
type Connection struct {
	Weight float64

	// DeltaWeight is the change applied to Weight by the most recent update. It is scaled by the
	// momentum for the next update.
	DeltaWeight float64
}

// CostFunction measures the error of a single sample, given the Network's outputs and the target
// values. Both slices will always have the same length.
type CostFunction interface {
	Cost(outs, targets []float64) float64
}

// Initializer sets the initial values of a set of weights. The slice given to Set is one Shell's
// weights, row by row: all of the outbound weights of the first Node, then the second, and so on.
type Initializer interface {
	Set(ws []float64)
}

// HyperParameter is a value that may change with the training iteration, like a learning rate
// schedule. Implementations are provided in the subpackage "hyperparams".
type HyperParameter interface {
	Value(iter int) float64
}
