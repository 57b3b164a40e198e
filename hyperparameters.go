package shellnet

import (
	"math"

	"github.com/pkg/errors"
)

// Reference values for Hyperparameters, given by DefaultHyperparameters.
const (
	DefaultLearningRate float64 = 0.15
	DefaultMomentum     float64 = 0.5
	DefaultSmoothing    float64 = 100
)

// Hyperparameters are the tunable constants shared by every Node of a single Network.
type Hyperparameters struct {
	// LearningRate (eta) scales each weight update
	LearningRate float64

	// Momentum (alpha) is the fraction of the previous weight update that is carried into the
	// next one
	Momentum float64

	// Smoothing is roughly the number of recent samples that the recent average error spans
	Smoothing float64
}

// DefaultHyperparameters returns a learning rate of 0.15, momentum of 0.5, and an error smoothing
// factor of 100.
func DefaultHyperparameters() Hyperparameters {
	return Hyperparameters{
		LearningRate: DefaultLearningRate,
		Momentum:     DefaultMomentum,
		Smoothing:    DefaultSmoothing,
	}
}

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Errorf("%s is invalid (%v)", name, v)
	} else if v < 0 {
		return errors.Errorf("%s must be >= 0 (%v)", name, v)
	}

	return nil
}

// Validate returns an error if any of the values are negative, NaN, or infinite.
func (hp Hyperparameters) Validate() error {
	if err := checkFinite("Learning rate", hp.LearningRate); err != nil {
		return err
	} else if err := checkFinite("Momentum", hp.Momentum); err != nil {
		return err
	}

	return checkFinite("Smoothing factor", hp.Smoothing)
}
