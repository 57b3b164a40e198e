package hyperparams

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// HyperParameter is the set of methods shared by every type in this package. It is a superset of
// shellnet.HyperParameter.
type HyperParameter interface {
	TypeString() string
	Value(iter int) float64
}

// Parse reads a HyperParameter from a string, as given on a command line.
//
// A single number, like "0.15", gives a Constant. A comma-separated list of value@iteration pairs,
// like "0.3,0.15@1000,0.05@5000", gives a Step: the first value applies from iteration 0 (with or
// without "@0"), and each following value from its iteration onwards.
func Parse(s string) (HyperParameter, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.Errorf("Can't parse hyperparameter, string is empty")
	}

	parts := strings.Split(s, ",")
	if len(parts) == 1 && !strings.Contains(s, "@") {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't parse constant hyperparameter %q", s)
		}

		return Constant(v), nil
	}

	var st *schedule
	lastIter := -1
	for i, p := range parts {
		valStr, iterStr := strings.TrimSpace(p), "0"
		if at := strings.IndexByte(valStr, '@'); at >= 0 {
			valStr, iterStr = strings.TrimSpace(valStr[:at]), strings.TrimSpace(valStr[at+1:])
		} else if i != 0 {
			return nil, errors.Errorf("Can't parse step %d of %q, missing '@iteration'", i, s)
		}

		v, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't parse value of step %d of %q", i, s)
		}

		iter, err := strconv.Atoi(iterStr)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't parse iteration of step %d of %q", i, s)
		}

		if i == 0 {
			if iter != 0 {
				return nil, errors.Errorf("Can't parse %q, first step must start at iteration 0 (%d)", s, iter)
			}

			st = Step(v)
		} else {
			if iter <= lastIter {
				return nil, errors.Errorf("Can't parse %q, step %d is not after the previous step (%d <= %d)", s, i, iter, lastIter)
			}

			st.Add(iter, v)
		}

		lastIter = iter
	}

	return st, nil
}
