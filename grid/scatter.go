// Package grid builds and validates full-grid property arrays from sparse
// active-cell data, and extracts geometry records from FGRID files.
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrCardinalityMismatch signals unequal id and value counts.
	ErrCardinalityMismatch = errors.New("cardinality mismatch")
	// ErrOutOfRange signals a cell id outside [1, totalCells].
	ErrOutOfRange = errors.New("cell ids out of range")
)

// Scatter maps (id, value) pairs onto a dense array of totalCells values.
// Cell ids are 1-based; unassigned positions stay exactly 0. When ids
// repeat, the last write wins — inherited from the reference workflow and
// kept for byte-compatibility of the generated artifacts.
//
// Validation failures return before any array is built.
func Scatter(ids []int64, values []float64, totalCells int) ([]float64, error) {
	if len(ids) != len(values) {
		return nil, fmt.Errorf("%w: %d active cells but %d porosity values",
			ErrCardinalityMismatch, len(ids), len(values))
	}
	if totalCells < 1 {
		return nil, fmt.Errorf("%w: total cells must be positive, got %d",
			ErrOutOfRange, totalCells)
	}

	if len(ids) > 0 {
		minID, maxID := ids[0], ids[0]
		for _, id := range ids {
			if id < minID {
				minID = id
			}
			if id > maxID {
				maxID = id
			}
		}
		if minID < 1 || maxID > int64(totalCells) {
			return nil, fmt.Errorf("%w: %d to %d (should be 1 to %d)",
				ErrOutOfRange, minID, maxID, totalCells)
		}
	}

	full := make([]float64, totalCells)
	for i, id := range ids {
		full[id-1] = values[i]
	}
	return full, nil
}
