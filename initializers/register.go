package initializers

import (
	"math"

	"github.com/pkg/errors"
)

// default values, because 'default' is a keyword
var defaultValue = map[string]float64{
	"uniform-lower": 0,
	"uniform-upper": 1,
}

// SetDefault changes the default value with the given name, for Initializers created afterwards.
// The available names are "uniform-lower" and "uniform-upper".
func SetDefault(name string, value float64) error {
	if _, ok := defaultValue[name]; !ok {
		return errors.Errorf("Value with name %q does not exist", name)
	} else if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.Errorf("Value is invalid (%v)", value)
	}

	defaultValue[name] = value
	return nil
}

// SetDefault_Lazy simply calls SetDefault, but panics instead of returning an error
func SetDefault_Lazy(name string, value float64) {
	if err := SetDefault(name, value); err != nil {
		panic(err)
	}
}
