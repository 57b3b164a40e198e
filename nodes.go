package shellnet

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

func activation(sum float64) float64 {
	return math.Tanh(sum)
}

// activationDeriv is the derivative of tanh, expressed in terms of its output: for o = tanh(x),
// d/dx tanh(x) = 1 - o^2
func activationDeriv(output float64) float64 {
	return 1 - output*output
}

// forward sets the output of the Node from the outputs of every Node in the previous Shell,
// including its bias Node.
func (n *Node) forward(prev *Shell) {
	var sum float64
	for u := range prev.nodes {
		sum += prev.nodes[u].output * prev.weights.At(u, n.index)
	}

	n.output = activation(sum)
}

func (n *Node) outputGradient(target float64) {
	delta := target - n.output
	n.gradient = delta * activationDeriv(n.output)
}

// hiddenGradient sets the gradient of a Node in Shell s from the gradients of the functional
// Nodes in the next Shell, given as nextGrads.
func (n *Node) hiddenGradient(s *Shell, nextGrads []float64) {
	dow := floats.Dot(s.weights.RawRowView(n.index), nextGrads)
	n.gradient = dow * activationDeriv(n.output)
}

// updateInputWeights adjusts the Connections from every Node in prev (including its bias Node)
// into this Node.
func (n *Node) updateInputWeights(prev *Shell, hp Hyperparameters) {
	for u := range prev.nodes {
		old := prev.deltas.At(u, n.index)
		delta := hp.LearningRate*prev.nodes[u].output*n.gradient + hp.Momentum*old

		prev.deltas.Set(u, n.index, delta)
		prev.weights.Set(u, n.index, prev.weights.At(u, n.index)+delta)
	}
}

// functional returns the Nodes of the Shell without its bias Node
func (s *Shell) functional() []Node {
	return s.nodes[:len(s.nodes)-1]
}

// gradients returns the gradients of the functional Nodes in the Shell
func (s *Shell) gradients() []float64 {
	fs := s.functional()

	gs := make([]float64, len(fs))
	for i := range fs {
		gs[i] = fs[i].gradient
	}

	return gs
}
