package common

import (
	"errors"
	"strings"
	"testing"
)

func TestCompareExactMatch(t *testing.T) {
	res, err := Compare([]float64{1, 2, 3}, []float64{1, 2, 3}, 1e-10)
	if err != nil {
		t.Fatal(err)
	}
	if !res.ExactMatch || !res.ToleranceMatch {
		t.Errorf("identical arrays: %+v", res)
	}
	if res.MaxDiff != 0 || res.DifferentElements != 0 {
		t.Errorf("identical arrays should have zero differences: %+v", res)
	}
}

func TestCompareWithinTolerance(t *testing.T) {
	res, err := Compare([]float64{1.0, 2.0}, []float64{1.0, 2.0000000001}, 1e-6)
	if err != nil {
		t.Fatal(err)
	}
	if res.ExactMatch {
		t.Error("arrays are not bit-identical")
	}
	if !res.ToleranceMatch {
		t.Error("arrays should match within 1e-6")
	}
	if !res.Identical() {
		t.Error("Identical should follow the tolerance flag")
	}
}

func TestCompareDifferences(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{1, 2.5, 3, 5}
	res, err := Compare(a, b, 1e-10)
	if err != nil {
		t.Fatal(err)
	}
	if res.DifferentElements != 2 {
		t.Fatalf("got %d differing elements, want 2", res.DifferentElements)
	}
	if res.DifferentIndices[0] != 1 || res.DifferentIndices[1] != 3 {
		t.Errorf("indices: %v", res.DifferentIndices)
	}
	if res.MaxDiff != 1.0 {
		t.Errorf("max diff: got %v, want 1.0", res.MaxDiff)
	}
	if res.MeanDiff != 1.5/4 {
		t.Errorf("mean diff: got %v, want %v", res.MeanDiff, 1.5/4)
	}
}

func TestCompareLengthMismatch(t *testing.T) {
	_, err := Compare([]float64{1, 2}, []float64{1, 2, 3}, 1e-10)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("got %v, want ErrLengthMismatch", err)
	}
	if !strings.Contains(err.Error(), "2") || !strings.Contains(err.Error(), "3") {
		t.Errorf("error should report both sizes: %v", err)
	}
}

func TestCompareEmptyInput(t *testing.T) {
	_, err := Compare(nil, []float64{1}, 1e-10)
	if !errors.Is(err, ErrEmptyInput) || !strings.Contains(err.Error(), "first") {
		t.Fatalf("empty first array: got %v", err)
	}
	_, err = Compare([]float64{1}, nil, 1e-10)
	if !errors.Is(err, ErrEmptyInput) || !strings.Contains(err.Error(), "second") {
		t.Fatalf("empty second array: got %v", err)
	}
}

func TestPrintReportShowsFirstTen(t *testing.T) {
	a := make([]float64, 20)
	b := make([]float64, 20)
	for i := range b {
		b[i] = 1
	}
	res, err := Compare(a, b, 1e-10)
	if err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	res.PrintReport(&out, a, b, "a", "b")
	report := out.String()
	if !strings.Contains(report, "Index 9:") {
		t.Error("report should list the tenth differing index")
	}
	if strings.Contains(report, "Index 10:") {
		t.Error("report should stop after ten indices")
	}
	if !strings.Contains(report, "and 10 more differences") {
		t.Errorf("report should count the remainder:\n%s", report)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{0, 0.5, 1.5, 0})
	if s.Size != 4 || s.NonZero != 2 {
		t.Errorf("counts: %+v", s)
	}
	if s.Min != 0 || s.Max != 1.5 || s.Mean != 0.5 {
		t.Errorf("stats: %+v", s)
	}
}
