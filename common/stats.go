package common

import (
	"fmt"
	"io"
	"math"
)

// ArrayStats holds the summary figures the reports print.
type ArrayStats struct {
	Size    int
	Min     float64
	Max     float64
	Mean    float64
	NonZero int
}

// Summarize computes min/max/mean and the non-zero count in one pass.
// NaN and infinite values are ignored, like in the dataset statistics the
// benchmark suite collects.
func Summarize(values []float64) ArrayStats {
	s := ArrayStats{
		Size: len(values),
		Min:  math.Inf(1),
		Max:  math.Inf(-1),
	}

	var sum float64
	valid := 0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		sum += v
		valid++
		if v != 0 {
			s.NonZero++
		}
	}
	if valid == 0 {
		s.Min, s.Max = 0, 0
		return s
	}
	s.Mean = sum / float64(valid)
	return s
}

func (s ArrayStats) Print(w io.Writer) {
	fmt.Fprintf(w, "  Size: %d elements\n", s.Size)
	fmt.Fprintf(w, "  Min: %.6f\n", s.Min)
	fmt.Fprintf(w, "  Max: %.6f\n", s.Max)
	fmt.Fprintf(w, "  Mean: %.6f\n", s.Mean)
	fmt.Fprintf(w, "  Non-zero elements: %d\n", s.NonZero)
}
