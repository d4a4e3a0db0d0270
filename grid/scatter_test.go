package grid

import (
	"errors"
	"strings"
	"testing"
)

func TestScatterZeroFill(t *testing.T) {
	ids := []int64{2, 5, 9}
	values := []float64{0.1, 0.2, 0.3}

	full, err := Scatter(ids, values, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(full) != 10 {
		t.Fatalf("got %d cells, want 10", len(full))
	}

	assigned := map[int]float64{1: 0.1, 4: 0.2, 8: 0.3}
	for i, v := range full {
		want, ok := assigned[i]
		if !ok {
			want = 0
		}
		if v != want {
			t.Errorf("cell %d: got %v, want %v", i, v, want)
		}
	}
}

func TestScatterIdempotent(t *testing.T) {
	ids := []int64{1, 3, 7}
	values := []float64{0.5, 0.25, 0.125}

	a, err := Scatter(ids, values, 8)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Scatter(ids, values, 8)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d differs between identical runs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestScatterOutOfRange(t *testing.T) {
	if _, err := Scatter([]int64{0}, []float64{1.0}, 10); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("id 0: got %v, want ErrOutOfRange", err)
	}
	if _, err := Scatter([]int64{11}, []float64{1.0}, 10); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("id 11: got %v, want ErrOutOfRange", err)
	}

	_, err := Scatter([]int64{0, 11}, []float64{1.0, 2.0}, 10)
	if err == nil || !strings.Contains(err.Error(), "1 to 10") {
		t.Errorf("error should name the valid range, got %v", err)
	}
}

func TestScatterCardinalityMismatch(t *testing.T) {
	_, err := Scatter([]int64{1, 2}, []float64{1.0}, 10)
	if !errors.Is(err, ErrCardinalityMismatch) {
		t.Fatalf("got %v, want ErrCardinalityMismatch", err)
	}
	if !strings.Contains(err.Error(), "2") || !strings.Contains(err.Error(), "1") {
		t.Errorf("error should report both lengths, got %v", err)
	}
}

func TestScatterDuplicateLastWriteWins(t *testing.T) {
	full, err := Scatter([]int64{4, 4}, []float64{0.1, 0.9}, 5)
	if err != nil {
		t.Fatal(err)
	}
	if full[3] != 0.9 {
		t.Fatalf("duplicate id: got %v, want last write 0.9", full[3])
	}
}

func TestScatterNoActiveCells(t *testing.T) {
	full, err := Scatter(nil, nil, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range full {
		if v != 0 {
			t.Fatalf("cell %d: got %v, want 0", i, v)
		}
	}
}

func TestScatterInvalidTotalCells(t *testing.T) {
	if _, err := Scatter([]int64{1}, []float64{1.0}, 0); err == nil {
		t.Fatal("total cells 0 should fail")
	}
}
