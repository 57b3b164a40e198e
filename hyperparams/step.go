package hyperparams

import (
	"sort"
)

// a change in value, taking effect from 'from' onwards
type change struct {
	from  int
	value float64
}

type schedule struct {
	changes []change
}

// Step returns a HyperParameter that starts at base and takes on each value given by Add once its
// iteration is reached. This is typically used to decay the learning rate partway through
// training.
func Step(base float64) *schedule {
	return &schedule{changes: []change{{0, base}}}
}

// Add schedules a change to value at iteration iter. Add panics if iter is not after every change
// already added; Parse checks this first for values that come from users.
func (s *schedule) Add(iter int, value float64) *schedule {
	if last := s.changes[len(s.changes)-1].from; iter <= last {
		panic("hyperparams: Step.Add called out of order")
	}

	s.changes = append(s.changes, change{iter, value})
	return s
}

func (s *schedule) TypeString() string {
	return "step"
}

// Value returns the value of the last change at or before iter.
func (s *schedule) Value(iter int) float64 {
	// first change that hasn't happened yet
	i := sort.Search(len(s.changes), func(i int) bool {
		return s.changes[i].from > iter
	})

	if i == 0 {
		return s.changes[0].value
	}

	return s.changes[i-1].value
}
