package shellnet

import (
	"math"
)

// CorrectRound returns whether every output rounds to the same integer as its target. It suits
// targets of 0 and 1, like the boolean functions.
//
// assumes len(outs) == len(targets)
func CorrectRound(outs, targets []float64) bool {
	for i := range outs {
		if math.Round(outs[i]) != math.Round(targets[i]) {
			return false
		}
	}

	return true
}

// TrainUntil returns a function that satisfies TrainArgs.RunCondition, stopping after
// maxIterations.
func TrainUntil(maxIterations int) func(int, float64) bool {
	return func(iteration int, recentErr float64) bool {
		return iteration < maxIterations
	}
}

// UntilError returns a function that satisfies TrainArgs.RunCondition, stopping once the recent
// average error is below threshold (after at least minIterations, so that the average has had
// time to rise from zero) or after maxIterations, whichever is first.
func UntilError(threshold float64, minIterations, maxIterations int) func(int, float64) bool {
	return func(iteration int, recentErr float64) bool {
		if iteration >= maxIterations {
			return false
		}

		return iteration < minIterations || recentErr >= threshold
	}
}

// Every returns a function that satisfies TrainArgs.SendStatus
// 'frequency' is in units of iterations
//
// this function is self-explanatory from viewing the source
func Every(frequency int) func(int) bool {
	return func(iteration int) bool {
		return iteration%frequency == 0
	}
}
