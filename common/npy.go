package common

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/sbinet/npyio"
)

// LoadNPY reads a numpy array of float64 values.
func LoadNPY(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file error '%s': %w", path, err)
	}
	defer f.Close()
	return readNPY(f)
}

func readNPY(r io.Reader) ([]float64, error) {
	var values []float64
	if err := npyio.Read(r, &values); err != nil {
		return nil, fmt.Errorf("read npy array: %w", err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("empty npy array")
	}
	return values, nil
}

// LoadNPYInts reads a numpy array of cell identifiers. Files written as
// int64 are read directly; int32 and float64 arrays are converted, like
// the astype step in the original workflow.
func LoadNPYInts(path string) ([]int64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file error '%s': %w", path, err)
	}

	var ids []int64
	if err := npyio.Read(bytes.NewReader(raw), &ids); err == nil {
		return ids, nil
	}

	var ids32 []int32
	if err := npyio.Read(bytes.NewReader(raw), &ids32); err == nil {
		ids = make([]int64, len(ids32))
		for i, v := range ids32 {
			ids[i] = int64(v)
		}
		return ids, nil
	}

	var f64 []float64
	if err := npyio.Read(bytes.NewReader(raw), &f64); err == nil {
		ids = make([]int64, len(f64))
		for i, v := range f64 {
			ids[i] = int64(v)
		}
		return ids, nil
	}

	return nil, fmt.Errorf("read npy ids '%s': unsupported element type", path)
}

// SaveNPY writes values as a 1-D float64 numpy array.
func SaveNPY(path string, values []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file error '%s': %w", path, err)
	}
	if err := npyio.Write(f, values); err != nil {
		f.Close()
		return fmt.Errorf("write npy array '%s': %w", path, err)
	}
	return f.Close()
}
