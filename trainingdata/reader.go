// Package trainingdata reads and writes the line-oriented text format used to train a
// shellnet.Network. A file starts with its topology, followed by alternating input and target
// lines:
//
//	topology: 2 4 1
//	in: 1 0
//	out: 1
//	in: 1 1
//	out: 0
//
// The number of values on each "in:" and "out:" line should equal the first and last widths of
// the topology.
package trainingdata

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sharnoff/shellnet"
)

// Labels at the start of each kind of line
const (
	TopologyLabel string = "topology:"
	InputLabel    string = "in:"
	TargetLabel   string = "out:"
)

// Reader reads a training file one line at a time. It is not safe for concurrent use.
type Reader struct {
	sc  *bufio.Scanner
	eof bool

	// nil until Topology has been called successfully
	topology shellnet.Topology
	readTop  bool
}

// NewReader returns a Reader over the contents of r.
func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

// Open opens the file at path for reading. The returned io.Closer closes the file.
func Open(path string) (*Reader, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "Can't open training data %q", path)
	}

	return NewReader(f), f, nil
}

// line returns the fields of the next line. At the end of the input, EOF will return true and the
// fields will be empty.
func (r *Reader) line() []string {
	if r.eof {
		return nil
	}

	if !r.sc.Scan() {
		r.eof = true
		return nil
	}

	return strings.Fields(r.sc.Text())
}

// EOF returns whether or not the Reader has reached the end of its input.
func (r *Reader) EOF() bool {
	return r.eof
}

// Err returns the first error encountered while reading, other than io.EOF.
func (r *Reader) Err() error {
	return r.sc.Err()
}

// Topology reads the first line of the input, which must be the topology. Topology must be called
// exactly once, before any of the other reading methods.
//
// Topology returns an error if the line is missing, doesn't start with "topology:", has a width
// that isn't a positive integer, or has fewer than two widths.
func (r *Reader) Topology() (shellnet.Topology, error) {
	if r.readTop {
		return nil, errors.Errorf("Topology has already been read")
	}
	r.readTop = true

	fields := r.line()
	if len(fields) == 0 || fields[0] != TopologyLabel {
		if err := r.Err(); err != nil {
			return nil, errors.Wrapf(err, "Can't read topology")
		}

		return nil, errors.Errorf("Can't read topology, first line does not start with %q", TopologyLabel)
	}

	top := make(shellnet.Topology, len(fields)-1)
	for i, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't read topology, width %d is malformed", i)
		} else if n < 1 {
			return nil, errors.Errorf("Can't read topology, width %d must be >= 1 (%d)", i, n)
		}

		top[i] = n
	}

	if len(top) < 2 {
		return nil, errors.Errorf("Can't read topology, must have >= 2 layers (%d)", len(top))
	}

	r.topology = top
	return top, nil
}

// values reads the next line, returning its values if it starts with the given label. Values are
// read until the first one that isn't a number.
func (r *Reader) values(label string) []float64 {
	fields := r.line()
	if len(fields) == 0 || fields[0] != label {
		return []float64{}
	}

	vs := make([]float64, 0, len(fields)-1)
	for _, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			break
		}

		vs = append(vs, v)
	}

	return vs
}

// NextInputs reads the next line as a set of inputs. If the line doesn't start with "in:", or
// there are no more lines, NextInputs returns an empty slice.
func (r *Reader) NextInputs() []float64 {
	return r.values(InputLabel)
}

// NextTargets reads the next line as a set of targets. If the line doesn't start with "out:", or
// there are no more lines, NextTargets returns an empty slice.
func (r *Reader) NextTargets() []float64 {
	return r.values(TargetLabel)
}

// Get is the implementation of shellnet.DataSupplier. It reads the next pair of input and target
// lines, regardless of the iteration given.
//
// If the inputs don't match the width of the first layer, Get returns shellnet.ErrDataExhausted;
// this is how the end of the data is normally found. If the inputs match but the targets don't,
// the file is malformed and Get returns type shellnet.SizeMismatchError.
func (r *Reader) Get(iter int) (shellnet.Datum, error) {
	if r.topology == nil {
		return shellnet.Datum{}, errors.Errorf("Can't get sample %d, topology has not been read", iter)
	}

	if r.eof {
		return shellnet.Datum{}, shellnet.ErrDataExhausted
	}

	d := shellnet.Datum{Inputs: r.NextInputs()}
	if len(d.Inputs) != r.topology[0] {
		if err := r.Err(); err != nil {
			return shellnet.Datum{}, errors.Wrapf(err, "Can't get sample %d", iter)
		}

		return shellnet.Datum{}, shellnet.ErrDataExhausted
	}

	d.Outputs = r.NextTargets()
	if out := r.topology[len(r.topology)-1]; len(d.Outputs) != out {
		return shellnet.Datum{}, errors.Wrapf(shellnet.SizeMismatchError{Expected: out, Got: len(d.Outputs), Kind: "targets"},
			"Can't get sample %d", iter)
	}

	return d, nil
}
