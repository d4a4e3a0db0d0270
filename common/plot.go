package common

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotDifferences saves a histogram of the element-wise absolute
// differences between a and b. Handy when a comparison reports thousands
// of differing cells and the first ten indices say little.
func PlotDifferences(a, b []float64, path string) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d vs %d elements", ErrLengthMismatch, len(a), len(b))
	}

	diffs := make(plotter.Values, len(a))
	for i := range a {
		diffs[i] = math.Abs(a[i] - b[i])
	}

	p := plot.New()
	p.Title.Text = "Element-wise absolute differences"
	p.X.Label.Text = "|a - b|"
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(diffs, 50)
	if err != nil {
		return fmt.Errorf("build histogram: %w", err)
	}
	p.Add(h)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot '%s': %w", path, err)
	}
	return nil
}
