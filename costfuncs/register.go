package costfuncs

import (
	"strings"

	"github.com/pkg/errors"
)

// CostFunction is the set of methods shared by every type in this package. It is a superset of
// shellnet.CostFunction.
type CostFunction interface {
	TypeString() string
	Cost(outs, targets []float64) float64
}

// Named returns the cost function whose TypeString is name, ignoring case. "l2" is accepted for
// "mse".
func Named(name string) (CostFunction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rms":
		return RMS(), nil
	case "mse", "l2":
		return MSE(), nil
	}

	return nil, errors.Errorf("Unknown cost function %q", name)
}
