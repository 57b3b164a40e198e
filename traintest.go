package shellnet

import (
	"github.com/pkg/errors"
)

// Datum is a simple wrapper used to send training samples to the Network
type Datum struct {
	// Inputs is the input of the network. It must have the same size as that of the
	// network's inputs.
	Inputs []float64

	// Outputs is the expected output of the network, given the input.
	Outputs []float64
}

// Fits indicates whether or not a given Datum's dimensions match those of the
// Network, allowing it to be used for training or testing.
func (d Datum) Fits(net *Network) bool {
	return len(d.Inputs) == net.InputSize() && len(d.Outputs) == net.OutputSize()
}

// DataSupplier is the primary method of providing datasets to the Network, either
// for training or testing.
type DataSupplier interface {
	// Get returns the next piece of data, given the current iteration. Once there is no more
	// data, Get should return ErrDataExhausted.
	Get(int) (Datum, error)
}

// DataSlice is a DataSupplier that cycles through its samples in order, forever. An empty
// DataSlice immediately returns ErrDataExhausted.
type DataSlice []Datum

// Get is the implementation of DataSupplier
func (ds DataSlice) Get(iter int) (Datum, error) {
	if len(ds) == 0 {
		return Datum{}, ErrDataExhausted
	}

	return ds[iter%len(ds)], nil
}

// A wrapper for sending back the progress of the training
type Result struct {
	// The iteration the result was produced at, starting from 0
	Iteration int

	// The sample the Network was trained on, and the outputs it gave before being corrected
	Inputs, Outputs, Targets []float64

	// The values of LastError and RecentAverageError after the sample
	Error, RecentAverage float64
}

type TrainArgs struct {
	// Data is the source of training samples
	Data DataSupplier

	// RunCondition will be called before each successive iteration to determine if training
	// should continue, given the iteration and the Network's RecentAverageError. Training will
	// stop if 'false' is returned.
	RunCondition func(int, float64) bool

	// LearningRate, if not nil, sets the learning rate of the Network before each iteration.
	// Otherwise, the Network's Hyperparameters are used unchanged.
	LearningRate HyperParameter

	// SendStatus indicates whether or not to send back a Result for the current iteration.
	// SendStatus can be left nil to represent an unconditional false.
	SendStatus func(int) bool

	// Update is how Results are returned. If SendStatus is nil, Update can also be left nil.
	Update func(Result)
}

// Train runs the Network forwards and backwards on one sample at a time from args.Data, until
// args.RunCondition returns false or args.Data returns ErrDataExhausted.
//
// Train returns the number of iterations completed. If a sample does not fit the Network, training
// stops and the SizeMismatchError from Forward or Backward is returned, wrapped.
func (net *Network) Train(args TrainArgs) (int, error) {
	// handle error cases and set defaults
	{
		if args.Data == nil {
			return 0, NilArgError{"TrainArgs.Data"}
		} else if args.RunCondition == nil {
			return 0, NilArgError{"TrainArgs.RunCondition"}
		}

		if args.SendStatus == nil {
			args.SendStatus = func(int) bool { return false }
		}

		if args.Update == nil {
			args.Update = func(Result) {}
		}
	}

	iter := 0
	for ; args.RunCondition(iter, net.recentAvgError); iter++ {
		d, err := args.Data.Get(iter)
		if err != nil {
			if errors.Cause(err) == ErrDataExhausted {
				break
			}

			return iter, errors.Wrapf(err, "Failed to get training sample at iteration %d", iter)
		}

		// checked before Forward, so that a bad sample leaves the Network unchanged
		if len(d.Outputs) != net.OutputSize() {
			return iter, errors.Wrapf(SizeMismatchError{net.OutputSize(), len(d.Outputs), "targets"},
				"Training sample %d doesn't fit", iter)
		}

		if args.LearningRate != nil {
			if err = net.SetLearningRate(args.LearningRate.Value(iter)); err != nil {
				return iter, errors.Wrapf(err, "Can't set learning rate at iteration %d", iter)
			}
		}

		if err = net.Forward(d.Inputs); err != nil {
			return iter, errors.Wrapf(err, "Forward failed at iteration %d", iter)
		}

		outs := net.Results()

		if err = net.Backward(d.Outputs); err != nil {
			return iter, errors.Wrapf(err, "Backward failed at iteration %d", iter)
		}

		if args.SendStatus(iter) {
			args.Update(Result{
				Iteration:     iter,
				Inputs:        d.Inputs,
				Outputs:       outs,
				Targets:       d.Outputs,
				Error:         net.lastError,
				RecentAverage: net.recentAvgError,
			})
		}
	}

	return iter, nil
}

// Test runs the Network forwards on 'amount' samples from data without changing any weights, and
// returns the average cost given by cf and the fraction of samples for which isCorrect returned
// true. If isCorrect is nil, the fraction correct will be zero. If data runs out before 'amount'
// samples, only the samples given are counted.
func (net *Network) Test(data DataSupplier, cf CostFunction, isCorrect func([]float64, []float64) bool, amount int) (float64, float64, error) {
	if data == nil {
		return 0, 0, NilArgError{"DataSupplier"}
	} else if cf == nil {
		return 0, 0, NilArgError{"CostFunction"}
	}

	if isCorrect == nil {
		isCorrect = func(a, b []float64) bool { return false }
	}

	var sumCost float64
	var numCorrect, i int
	for i = 0; i < amount; i++ {
		d, err := data.Get(i)
		if err != nil {
			if errors.Cause(err) == ErrDataExhausted {
				break
			}

			return 0, 0, errors.Wrapf(err, "Failed to get testing sample %d", i)
		}

		if len(d.Outputs) != net.OutputSize() {
			return 0, 0, errors.Wrapf(SizeMismatchError{net.OutputSize(), len(d.Outputs), "targets"}, "Testing sample %d doesn't fit", i)
		}

		if err = net.Forward(d.Inputs); err != nil {
			return 0, 0, errors.Wrapf(err, "Testing sample %d doesn't fit", i)
		}

		outs := net.Results()
		sumCost += cf.Cost(outs, d.Outputs)
		if isCorrect(outs, d.Outputs) {
			numCorrect++
		}
	}

	if i == 0 {
		return 0, 0, nil
	}

	return sumCost / float64(i), float64(numCorrect) / float64(i), nil
}
