package common

import (
	"errors"
	"fmt"
	"io"
	"math"
)

var (
	// ErrEmptyInput signals that one of the compared arrays holds no values.
	ErrEmptyInput = errors.New("array contains no numerical values")
	// ErrLengthMismatch signals that the compared arrays differ in size.
	ErrLengthMismatch = errors.New("arrays have different sizes")
)

// ComparisonResult carries the element-wise diagnostics of one comparison.
type ComparisonResult struct {
	ExactMatch        bool
	ToleranceMatch    bool
	MaxDiff           float64
	MeanDiff          float64
	DifferentElements int
	DifferentIndices  []int
	Tolerance         float64
}

// Identical reports whether the arrays matched within the tolerance.
func (r *ComparisonResult) Identical() bool {
	return r.ToleranceMatch
}

// Compare runs an element-wise comparison of a and b. Precondition
// violations (empty input, unequal lengths) come back as wrapped sentinel
// errors so batch callers can report them and continue.
func Compare(a, b []float64, tolerance float64) (*ComparisonResult, error) {
	if len(a) == 0 {
		return nil, fmt.Errorf("%w: first array", ErrEmptyInput)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: second array", ErrEmptyInput)
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d elements", ErrLengthMismatch, len(a), len(b))
	}

	res := &ComparisonResult{ExactMatch: true, Tolerance: tolerance}
	var sum float64
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d != 0 {
			res.ExactMatch = false
		}
		if d > res.MaxDiff {
			res.MaxDiff = d
		}
		sum += d
		if d > tolerance {
			res.DifferentIndices = append(res.DifferentIndices, i)
		}
	}
	res.MeanDiff = sum / float64(len(a))
	res.DifferentElements = len(res.DifferentIndices)
	res.ToleranceMatch = res.DifferentElements == 0
	return res, nil
}

// PrintReport renders the comparison the way the validation workflow reads
// it: both array summaries, the difference figures, and the first ten
// offending indices.
func (r *ComparisonResult) PrintReport(w io.Writer, a, b []float64, nameA, nameB string) {
	fmt.Fprintf(w, "%s:\n", nameA)
	Summarize(a).Print(w)
	fmt.Fprintf(w, "\n%s:\n", nameB)
	Summarize(b).Print(w)

	fmt.Fprintf(w, "\nComparing arrays with tolerance: %g\n", r.Tolerance)
	if r.ExactMatch {
		fmt.Fprintln(w, "Arrays are exactly identical!")
		return
	}

	fmt.Fprintf(w, "  Maximum difference: %.2e\n", r.MaxDiff)
	fmt.Fprintf(w, "  Mean difference: %.2e\n", r.MeanDiff)
	fmt.Fprintf(w, "  Elements with difference > %g: %d\n", r.Tolerance, r.DifferentElements)

	if r.ToleranceMatch {
		fmt.Fprintln(w, "Arrays are identical within tolerance!")
		return
	}

	fmt.Fprintln(w, "Arrays are NOT identical!")
	fmt.Fprintln(w, "  First 10 different elements:")
	for i, idx := range r.DifferentIndices {
		if i >= 10 {
			fmt.Fprintf(w, "    ... and %d more differences\n", r.DifferentElements-10)
			break
		}
		fmt.Fprintf(w, "    Index %d: %.6f vs %.6f (diff: %.2e)\n",
			idx, a[idx], b[idx], math.Abs(a[idx]-b[idx]))
	}
}
