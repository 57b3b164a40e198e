package shellnet

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/sharnoff/shellnet/initializers"
)

func newSeeded(t *testing.T, top Topology, seed int64) *Network {
	t.Helper()

	net, err := New(top, DefaultHyperparameters(), initializers.Uniform().Seed(seed))
	if err != nil {
		t.Fatalf("New(%v) failed: %v", top, err)
	}

	return net
}

// snapshot returns every output, gradient, weight, and delta in the Network
func snapshot(net *Network) []float64 {
	var vs []float64
	for l := 0; l < net.NumShells(); l++ {
		for n := 0; n < net.ShellSize(l); n++ {
			vs = append(vs, net.Output(l, n), net.Gradient(l, n))
			if l == net.NumShells()-1 {
				continue
			}

			for m := 0; m < net.ShellSize(l+1)-1; m++ {
				c := net.Connection(l, n, m)
				vs = append(vs, c.Weight, c.DeltaWeight)
			}
		}
	}

	return append(vs, net.LastError(), net.RecentAverageError())
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func TestNewShape(t *testing.T) {
	tops := []Topology{
		{1, 1},
		{2, 4, 1},
		{3, 5, 2, 4},
		{1, 1, 1, 1, 1},
		{7, 2},
	}

	for _, top := range tops {
		net := newSeeded(t, top, 1)

		if net.NumShells() != len(top) {
			t.Errorf("%v: NumShells() = %d, want %d", top, net.NumShells(), len(top))
		}

		for l := range top {
			if got := net.ShellSize(l); got != top[l]+1 {
				t.Errorf("%v: ShellSize(%d) = %d, want %d", top, l, got, top[l]+1)
			}

			for n := 0; n < net.ShellSize(l); n++ {
				if want := n == top[l]; net.IsBias(l, n) != want {
					t.Errorf("%v: IsBias(%d, %d) = %v, want %v", top, l, n, !want, want)
				}
			}

			if l == len(top)-1 {
				if net.shells[l].weights != nil || net.shells[l].deltas != nil {
					t.Errorf("%v: output shell has outbound connections", top)
				}
				continue
			}

			r, c := net.shells[l].weights.Dims()
			if r != top[l]+1 || c != top[l+1] {
				t.Errorf("%v: shell %d has %dx%d connections, want %dx%d", top, l, r, c, top[l]+1, top[l+1])
			}

			for u := 0; u < r; u++ {
				for n := 0; n < c; n++ {
					conn := net.Connection(l, u, n)
					if conn.Weight < 0 || conn.Weight >= 1 {
						t.Errorf("%v: weight (%d, %d, %d) = %v, not in [0, 1)", top, l, u, n, conn.Weight)
					}
					if conn.DeltaWeight != 0 {
						t.Errorf("%v: delta (%d, %d, %d) = %v, want 0", top, l, u, n, conn.DeltaWeight)
					}
				}
			}
		}

		if net.InputSize() != top[0] || net.OutputSize() != top[len(top)-1] {
			t.Errorf("%v: sizes = (%d, %d)", top, net.InputSize(), net.OutputSize())
		}
	}
}

func TestNewCopiesTopology(t *testing.T) {
	top := Topology{2, 3, 1}
	net := newSeeded(t, top, 1)

	top[1] = 10
	if got := net.Topology(); got[1] != 3 {
		t.Errorf("Topology() changed with its argument: %v", got)
	}

	net.Topology()[0] = 10
	if net.InputSize() != 2 {
		t.Errorf("Topology() did not return a copy")
	}
}

func TestNewErrors(t *testing.T) {
	cases := []struct {
		name string
		top  Topology
		hp   Hyperparameters
	}{
		{"nil topology", nil, DefaultHyperparameters()},
		{"one layer", Topology{3}, DefaultHyperparameters()},
		{"zero width input", Topology{0, 2}, DefaultHyperparameters()},
		{"zero width hidden", Topology{2, 0, 1}, DefaultHyperparameters()},
		{"negative width", Topology{2, -1}, DefaultHyperparameters()},
		{"negative rate", Topology{2, 1}, Hyperparameters{-0.1, 0.5, 100}},
		{"NaN momentum", Topology{2, 1}, Hyperparameters{0.15, math.NaN(), 100}},
		{"infinite smoothing", Topology{2, 1}, Hyperparameters{0.15, 0.5, math.Inf(1)}},
	}

	for _, c := range cases {
		net, err := New(c.top, c.hp, nil)
		if err == nil {
			t.Errorf("%s: New succeeded", c.name)
			continue
		}

		if net != nil {
			t.Errorf("%s: New returned a Network with its error", c.name)
		}

		if errors.Cause(err) != ErrConstruction {
			t.Errorf("%s: cause of %v is not ErrConstruction", c.name, err)
		}

		if _, ok := err.(ConstructionError); !ok {
			t.Errorf("%s: error is %T, want ConstructionError", c.name, err)
		}
	}
}

func TestSeededWeightsMatch(t *testing.T) {
	top := Topology{3, 4, 2}
	a := newSeeded(t, top, 42)
	b := newSeeded(t, top, 42)
	c := newSeeded(t, top, 43)

	if !equalFloats(snapshot(a), snapshot(b)) {
		t.Errorf("Networks with the same seed have different weights")
	}

	if equalFloats(snapshot(a), snapshot(c)) {
		t.Errorf("Networks with different seeds have the same weights")
	}
}

func TestBiasStaysFixed(t *testing.T) {
	net := newSeeded(t, Topology{2, 3, 3, 1}, 7)

	inputs := [][]float64{{0, 0}, {1, -1}, {50, 50}, {-3, 0.5}}
	for i := 0; i < 100; i++ {
		in := inputs[i%len(inputs)]
		if err := net.Forward(in); err != nil {
			t.Fatalf("Forward(%v) failed: %v", in, err)
		}

		if err := net.Backward([]float64{float64(i % 2)}); err != nil {
			t.Fatalf("Backward failed: %v", err)
		}

		for l := 0; l < net.NumShells(); l++ {
			if out := net.Output(l, net.ShellSize(l)-1); out != 1.0 {
				t.Fatalf("pass %d: bias output of shell %d = %v, want 1", i, l, out)
			}
		}
	}
}

func TestForwardDeterministic(t *testing.T) {
	net := newSeeded(t, Topology{3, 5, 2}, 3)
	in := []float64{0.3, -0.7, 0.9}

	if err := net.Forward(in); err != nil {
		t.Fatal(err)
	}
	first := net.Results()
	before := snapshot(net)

	for i := 0; i < 10; i++ {
		if err := net.Forward(in); err != nil {
			t.Fatal(err)
		}

		if got := net.Results(); !equalFloats(got, first) {
			t.Fatalf("Forward #%d gave %v, first gave %v", i+2, got, first)
		}
	}

	if !equalFloats(before, snapshot(net)) {
		t.Errorf("repeating Forward changed the Network")
	}
}

func TestResults(t *testing.T) {
	net := newSeeded(t, Topology{2, 3, 4}, 5)
	if err := net.Forward([]float64{1, 0}); err != nil {
		t.Fatal(err)
	}

	rs := net.Results()
	if len(rs) != 4 {
		t.Fatalf("len(Results()) = %d, want 4", len(rs))
	}

	for n, r := range rs {
		if r != net.Output(2, n) {
			t.Errorf("Results()[%d] = %v, output is %v", n, r, net.Output(2, n))
		}
		if r <= -1 || r >= 1 {
			t.Errorf("Results()[%d] = %v, outside the range of tanh", n, r)
		}
	}

	rs[0] = 100
	if net.Output(2, 0) == 100 {
		t.Errorf("Results() did not return a copy")
	}
}

func TestErrorNonNegative(t *testing.T) {
	net := newSeeded(t, Topology{2, 2, 3}, 9)

	targets := [][]float64{{1, -1, 0}, {0, 0, 0}, {-1, -1, -1}, {0.5, 0.2, 0.9}}
	for i := 0; i < 200; i++ {
		if err := net.Forward([]float64{float64(i%3) - 1, float64(i%5) / 5}); err != nil {
			t.Fatal(err)
		}
		if err := net.Backward(targets[i%len(targets)]); err != nil {
			t.Fatal(err)
		}

		if net.LastError() < 0 || math.IsNaN(net.LastError()) {
			t.Fatalf("pass %d: LastError() = %v", i, net.LastError())
		}
		if net.RecentAverageError() < 0 {
			t.Fatalf("pass %d: RecentAverageError() = %v", i, net.RecentAverageError())
		}
	}
}

func TestErrorValues(t *testing.T) {
	net := newSeeded(t, Topology{1, 2}, 1)
	if err := net.Forward([]float64{0.5}); err != nil {
		t.Fatal(err)
	}

	outs := net.Results()
	targets := []float64{1, -1}
	if err := net.Backward(targets); err != nil {
		t.Fatal(err)
	}

	d0, d1 := targets[0]-outs[0], targets[1]-outs[1]
	want := math.Sqrt((d0*d0 + d1*d1) / 2)
	if math.Abs(net.LastError()-want) > 1e-12 {
		t.Errorf("LastError() = %v, want %v", net.LastError(), want)
	}

	wantAvg := want / (DefaultSmoothing + 1)
	if math.Abs(net.RecentAverageError()-wantAvg) > 1e-12 {
		t.Errorf("RecentAverageError() = %v, want %v", net.RecentAverageError(), wantAvg)
	}
}

func TestLengthValidation(t *testing.T) {
	net := newSeeded(t, Topology{2, 3, 1}, 11)

	if err := net.Forward([]float64{0.5, -0.5}); err != nil {
		t.Fatal(err)
	}
	if err := net.Backward([]float64{1}); err != nil {
		t.Fatal(err)
	}
	if err := net.Forward([]float64{1, 1}); err != nil {
		t.Fatal(err)
	}

	before := snapshot(net)

	for _, in := range [][]float64{nil, {1}, {1, 2, 3}} {
		err := net.Forward(in)
		if errors.Cause(err) != ErrInvalidInput {
			t.Errorf("Forward(%v) = %v, want ErrInvalidInput", in, err)
		}

		sm, ok := err.(SizeMismatchError)
		if !ok || sm.Expected != 2 || sm.Got != len(in) || sm.Kind != "inputs" {
			t.Errorf("Forward(%v) = %#v", in, err)
		}
	}

	for _, target := range [][]float64{nil, {1, 0}} {
		err := net.Backward(target)
		if errors.Cause(err) != ErrInvalidInput {
			t.Errorf("Backward(%v) = %v, want ErrInvalidInput", target, err)
		}

		sm, ok := err.(SizeMismatchError)
		if !ok || sm.Expected != 1 || sm.Got != len(target) || sm.Kind != "targets" {
			t.Errorf("Backward(%v) = %#v", target, err)
		}
	}

	if !equalFloats(before, snapshot(net)) {
		t.Errorf("failed calls changed the Network")
	}
}

// minimal returns a [1, 1, 1] Network with the weights:
//
//	input -> hidden: w0, input bias -> hidden: b0
//	hidden -> output: w1, hidden bias -> output: b1
func minimal(t *testing.T, hp Hyperparameters, w0, b0, w1, b1 float64) *Network {
	t.Helper()

	net, err := New(Topology{1, 1, 1}, hp, nil)
	if err != nil {
		t.Fatal(err)
	}

	net.SetWeight(0, 0, 0, w0)
	net.SetWeight(0, 1, 0, b0)
	net.SetWeight(1, 0, 0, w1)
	net.SetWeight(1, 1, 0, b1)

	return net
}

func TestSingleSampleGradients(t *testing.T) {
	hp := Hyperparameters{LearningRate: 0.2, Momentum: 0.4, Smoothing: 100}
	w0, b0, w1, b1 := 0.3, 0.6, -0.8, 0.1
	x, target := 0.7, 0.5

	net := minimal(t, hp, w0, b0, w1, b1)
	if err := net.Forward([]float64{x}); err != nil {
		t.Fatal(err)
	}

	h := math.Tanh(x*w0 + b0)
	o := math.Tanh(h*w1 + b1)
	if math.Abs(net.Output(1, 0)-h) > 1e-12 || math.Abs(net.Output(2, 0)-o) > 1e-12 {
		t.Fatalf("outputs = (%v, %v), want (%v, %v)", net.Output(1, 0), net.Output(2, 0), h, o)
	}

	if err := net.Backward([]float64{target}); err != nil {
		t.Fatal(err)
	}

	outGrad := (target - o) * (1 - o*o)
	if math.Abs(net.Gradient(2, 0)-outGrad) > 1e-12 {
		t.Errorf("output gradient = %v, want %v", net.Gradient(2, 0), outGrad)
	}

	hidGrad := w1 * outGrad * (1 - h*h)
	if math.Abs(net.Gradient(1, 0)-hidGrad) > 1e-12 {
		t.Errorf("hidden gradient = %v, want %v", net.Gradient(1, 0), hidGrad)
	}

	// the hidden bias Node still gets a gradient, from its output of 1
	biasGrad := b1 * outGrad * (1 - 1*1)
	if math.Abs(net.Gradient(1, 1)-biasGrad) > 1e-12 {
		t.Errorf("hidden bias gradient = %v, want %v", net.Gradient(1, 1), biasGrad)
	}

	checks := []struct {
		name         string
		l, u         int
		before, want float64
	}{
		{"hidden -> output", 1, 0, w1, hp.LearningRate * h * outGrad},
		{"hidden bias -> output", 1, 1, b1, hp.LearningRate * 1 * outGrad},
		{"input -> hidden", 0, 0, w0, hp.LearningRate * x * hidGrad},
		{"input bias -> hidden", 0, 1, b0, hp.LearningRate * 1 * hidGrad},
	}

	for _, c := range checks {
		conn := net.Connection(c.l, c.u, 0)
		if math.Abs(conn.DeltaWeight-c.want) > 1e-12 {
			t.Errorf("%s: delta = %v, want %v", c.name, conn.DeltaWeight, c.want)
		}
		if math.Abs(conn.Weight-(c.before+c.want)) > 1e-12 {
			t.Errorf("%s: weight = %v, want %v", c.name, conn.Weight, c.before+c.want)
		}
	}

	// a second sample adds momentum from the first
	prev := net.Connection(1, 0, 0)
	if err := net.Forward([]float64{-x}); err != nil {
		t.Fatal(err)
	}
	if err := net.Backward([]float64{target}); err != nil {
		t.Fatal(err)
	}

	want := hp.LearningRate*net.Output(1, 0)*net.Gradient(2, 0) + hp.Momentum*prev.DeltaWeight
	if got := net.Connection(1, 0, 0); math.Abs(got.DeltaWeight-want) > 1e-12 {
		t.Errorf("second delta = %v, want %v", got.DeltaWeight, want)
	} else if math.Abs(got.Weight-(prev.Weight+want)) > 1e-12 {
		t.Errorf("second weight = %v, want %v", got.Weight, prev.Weight+want)
	}
}

// The gradients are the negative derivatives of 0.5*(target - output)^2 w.r.t. each Node's
// summed input, so each weight's update follows the numerical derivative of that cost.
func TestGradientsMatchNumerical(t *testing.T) {
	w0, b0, w1, b1 := 0.3, 0.6, -0.8, 0.1
	x, target := 0.7, 0.5

	net := minimal(t, DefaultHyperparameters(), w0, b0, w1, b1)

	cost := func(l, u int) func(float64) float64 {
		return func(w float64) float64 {
			old := net.Connection(l, u, 0).Weight
			net.SetWeight(l, u, 0, w)
			defer net.SetWeight(l, u, 0, old)

			if err := net.Forward([]float64{x}); err != nil {
				t.Fatal(err)
			}

			d := target - net.Results()[0]
			return 0.5 * d * d
		}
	}

	settings := &fd.Settings{Formula: fd.Central}
	dw1 := fd.Derivative(cost(1, 0), w1, settings)
	dw0 := fd.Derivative(cost(0, 0), w0, settings)

	if err := net.Forward([]float64{x}); err != nil {
		t.Fatal(err)
	}
	if err := net.Backward([]float64{target}); err != nil {
		t.Fatal(err)
	}

	h := net.Output(1, 0)
	if got := -net.Gradient(2, 0) * h; math.Abs(got-dw1) > 1e-6 {
		t.Errorf("d cost/d w1 = %v, numerical %v", got, dw1)
	}

	if got := -net.Gradient(1, 0) * x; math.Abs(got-dw0) > 1e-6 {
		t.Errorf("d cost/d w0 = %v, numerical %v", got, dw0)
	}
}

func TestHyperparametersPerNetwork(t *testing.T) {
	slow := minimal(t, Hyperparameters{LearningRate: 0.01, Momentum: 0, Smoothing: 10}, 0.3, 0.6, -0.8, 0.1)
	fast := minimal(t, Hyperparameters{LearningRate: 0.5, Momentum: 0, Smoothing: 10}, 0.3, 0.6, -0.8, 0.1)

	for _, net := range []*Network{slow, fast} {
		if err := net.Forward([]float64{1}); err != nil {
			t.Fatal(err)
		}
		if err := net.Backward([]float64{1}); err != nil {
			t.Fatal(err)
		}
	}

	ds := slow.Connection(1, 0, 0).DeltaWeight
	df := fast.Connection(1, 0, 0).DeltaWeight
	if math.Abs(df-50*ds) > 1e-12 {
		t.Errorf("deltas with rates 0.5 and 0.01 are %v and %v, want a ratio of 50", df, ds)
	}

	if err := slow.SetLearningRate(-1); err == nil {
		t.Errorf("SetLearningRate(-1) succeeded")
	} else if slow.Hyperparameters().LearningRate != 0.01 {
		t.Errorf("failed SetLearningRate changed the rate")
	}

	if err := slow.SetMomentum(0.9); err != nil {
		t.Fatal(err)
	} else if slow.Hyperparameters().Momentum != 0.9 {
		t.Errorf("SetMomentum(0.9) gave %v", slow.Hyperparameters().Momentum)
	}
}
