package costfuncs

import (
	"math"
)

type rms int8

// RMS returns the root-mean-square error cost function, which implements shellnet.CostFunction.
// It is the error reported by shellnet.Network.LastError.
func RMS() rms {
	return rms(0)
}

func (r rms) TypeString() string {
	return "rms"
}

// Cost returns sqrt(sum((targets[i] - outs[i])^2) / len(outs)). It is never negative.
func (r rms) Cost(outs, targets []float64) float64 {
	if len(outs) == 0 {
		return 0
	}

	return math.Sqrt(sumSquaredDiff(outs, targets) / float64(len(outs)))
}
