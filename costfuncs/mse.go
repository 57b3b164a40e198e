package costfuncs

import (
	"gonum.org/v1/gonum/floats"
)

type mse int8

// MSE returns the mean squared error cost function, which implements shellnet.CostFunction. The
// cost is halved, so that its derivative w.r.t. each output is (output - target).
func MSE() mse {
	return mse(0)
}

// L2 is a proxy for MSE
func L2() mse {
	return MSE()
}

func (m mse) TypeString() string {
	return "mse"
}

func (m mse) Cost(outs, targets []float64) float64 {
	if len(outs) == 0 {
		return 0
	}

	return 0.5 * sumSquaredDiff(outs, targets) / float64(len(outs))
}

// sumSquaredDiff returns the sum of (outs[i] - targets[i])^2
func sumSquaredDiff(outs, targets []float64) float64 {
	diff := make([]float64, len(outs))
	floats.SubTo(diff, targets, outs)
	return floats.Dot(diff, diff)
}
