package trainingdata

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Writer produces files that can be read by Reader. Output is buffered; Flush must be called when
// finished.
type Writer struct {
	w *bufio.Writer
}

// NewWriter returns a Writer to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bufio.NewWriter(w)}
}

func (w *Writer) writeLine(label string, vs []string) error {
	if _, err := w.w.WriteString(label); err != nil {
		return err
	}

	for _, v := range vs {
		if err := w.w.WriteByte(' '); err != nil {
			return err
		}

		if _, err := w.w.WriteString(v); err != nil {
			return err
		}
	}

	return w.w.WriteByte('\n')
}

func formatFloats(vs []float64) []string {
	strs := make([]string, len(vs))
	for i, v := range vs {
		strs[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strs
}

// WriteTopology writes the topology line. It should be called once, first.
func (w *Writer) WriteTopology(topology []int) error {
	if len(topology) < 2 {
		return errors.Errorf("Can't write topology, must have >= 2 layers (%d)", len(topology))
	}

	strs := make([]string, len(topology))
	for i, n := range topology {
		if n < 1 {
			return errors.Errorf("Can't write topology, width %d must be >= 1 (%d)", i, n)
		}

		strs[i] = strconv.Itoa(n)
	}

	return errors.Wrapf(w.writeLine(TopologyLabel, strs), "Can't write topology")
}

// WriteSample writes a pair of input and target lines.
func (w *Writer) WriteSample(inputs, targets []float64) error {
	if err := w.writeLine(InputLabel, formatFloats(inputs)); err != nil {
		return errors.Wrapf(err, "Can't write inputs")
	}

	return errors.Wrapf(w.writeLine(TargetLabel, formatFloats(targets)), "Can't write targets")
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
