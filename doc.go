// Package shellnet provides a small, fully-connected feedforward neural network, trained online
// (one sample at a time) with backpropagation and momentum.
//
// Creating Networks
//
// A Network is built from its Topology, the number of Nodes in each Shell (layer), from inputs to
// outputs:
//
//		net, err := shellnet.New(shellnet.Topology{2, 4, 1}, shellnet.DefaultHyperparameters(), nil)
//		if err != nil {
//			return err
//		}
//
// Each Shell also has a bias Node, whose output is always 1.0 and which feeds every Node in the
// next Shell. Nodes use tanh as their activation function. Weights are drawn uniformly from
// [0, 1) unless another Initializer is given; see the subpackage "initializers", which can also
// seed them.
//
// Hyperparameters hold the learning rate (0.15), momentum (0.5), and the smoothing factor of the
// recent average error (100). They belong to each Network, so Networks with different values can
// be used side by side.
//
// Training and Testing
//
// Training a single sample is done by running the Network forwards, then backwards:
//
//		if err := net.Forward(inputs); err != nil {
//			return err
//		}
//		outs := net.Results()
//		if err := net.Backward(targets); err != nil {
//			return err
//		}
//
// Both return type SizeMismatchError (with cause ErrInvalidInput) if given a vector of the wrong
// length, leaving the Network unchanged. After Backward, LastError gives the root-mean-square
// error of the sample and RecentAverageError its smoothed average.
//
// For repeated training, Train pulls samples from a DataSupplier, with the type TrainArgs used as
// a proxy for the type of optional arguments that are available in other languages:
//
//		iters, err := net.Train(shellnet.TrainArgs{
//			Data:         shellnet.DataSlice(dataset),
//			RunCondition: shellnet.TrainUntil(5000),
//			SendStatus:   shellnet.Every(1000),
//			Update:       func(r shellnet.Result) { fmt.Println(r.Iteration, r.RecentAverage) },
//		})
//
// The subpackage "trainingdata" reads and writes the text format used by the commands in cmd/.
//
// A Network is not safe for concurrent use.
package shellnet
