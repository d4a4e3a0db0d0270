package common

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sbinet/npyio"

	"github.com/JihuiDing/preCMGsim/cmg"
)

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		path   string
		format Format
		known  bool
	}{
		{"poro.npy", FormatNPY, true},
		{"full_porosity.dat", FormatCMG, true},
		{"full_porosity.dat.gz", FormatCMG, true},
		{"grid.GRDECL", FormatGRDECL, true},
		{"grid.gdecl", FormatGRDECL, true},
		{"values.txt", FormatText, true},
		{"values.csv", FormatText, false},
		{"noext", FormatText, false},
	}
	for _, c := range cases {
		format, known := DetectFormat(c.path)
		if format != c.format || known != c.known {
			t.Errorf("DetectFormat(%q) = (%v, %v), want (%v, %v)",
				c.path, format, known, c.format, c.known)
		}
	}
}

func TestReadTextValues(t *testing.T) {
	input := "1.5\n\nnot-a-number\n-2.25\n"
	values, warnings, err := ReadTextValues(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 2 || values[0] != 1.5 || values[1] != -2.25 {
		t.Fatalf("values: %v", values)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "line 3") {
		t.Fatalf("warnings: %v", warnings)
	}
}

func TestReadTextValuesEmpty(t *testing.T) {
	_, _, err := ReadTextValues(strings.NewReader("nothing numeric\n"))
	if !errors.Is(err, cmg.ErrNoData) {
		t.Fatalf("got %v, want ErrNoData", err)
	}
}

func TestReadGRDECL(t *testing.T) {
	input := "PORO header line ignored\n/\n3*0.250000 1.5/\n0.75\n"
	values, warnings, err := ReadGRDECL(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.25, 0.25, 0.25, 1.5, 0.75}
	if len(values) != len(want) {
		t.Fatalf("got %v, want %v (warnings %v)", values, want, warnings)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("value %d: got %v, want %v", i, values[i], want[i])
		}
	}
}

func TestReadGRDECLNoDataSection(t *testing.T) {
	_, _, err := ReadGRDECL(strings.NewReader("1.0 2.0 3.0\n"))
	if !errors.Is(err, cmg.ErrNoData) {
		t.Fatalf("values before the '/' marker must be ignored, got %v", err)
	}
}

func TestReadArrayFileDispatch(t *testing.T) {
	dir := t.TempDir()

	// .dat goes through the run-length decoder
	dat := filepath.Join(dir, "a.dat")
	if err := os.WriteFile(dat, []byte("**H\n2*0 1.500000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	values, _, err := ReadArrayFile(dat)
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 3 || values[2] != 1.5 {
		t.Fatalf("dat values: %v", values)
	}

	// unknown extension falls back to text with a notice
	raw := filepath.Join(dir, "b.out")
	if err := os.WriteFile(raw, []byte("0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	values, warnings, err := ReadArrayFile(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 1 || values[0] != 0.5 {
		t.Fatalf("fallback values: %v", values)
	}
	if len(warnings) == 0 || !strings.Contains(warnings[0], "unknown file extension") {
		t.Fatalf("fallback should warn: %v", warnings)
	}
}

func TestReadArrayFileMissing(t *testing.T) {
	_, _, err := ReadArrayFile(filepath.Join(t.TempDir(), "nope.dat"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v, want os.ErrNotExist", err)
	}
}

func TestGzipRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.dat.gz")

	w, err := CreateWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("**H\n3*0.500000\n")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	values, _, err := ReadArrayFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 3 || values[0] != 0.5 {
		t.Fatalf("values: %v", values)
	}
}

func TestNPYRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poro.npy")
	want := []float64{0, 0.25, 0.5, 0}

	if err := SaveNPY(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := LoadNPY(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d: got %v, want %v", i, got[i], want[i])
		}
	}

	// the dispatcher reads the same file
	values, _, err := ReadArrayFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != len(want) {
		t.Fatalf("dispatch: got %d values, want %d", len(values), len(want))
	}
}

func TestLoadNPYIntsConversion(t *testing.T) {
	dir := t.TempDir()

	// ids stored as int64
	i64 := filepath.Join(dir, "actid64.npy")
	writeNPY(t, i64, []int64{1, 5, 9})
	ids, err := LoadNPYInts(i64)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 3 || ids[2] != 9 {
		t.Fatalf("int64 ids: %v", ids)
	}

	// ids stored as float64 are converted, like the astype step
	f64 := filepath.Join(dir, "actidf.npy")
	writeNPY(t, f64, []float64{2, 6})
	ids, err = LoadNPYInts(f64)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != 2 || ids[1] != 6 {
		t.Fatalf("converted ids: %v", ids)
	}

	// ids stored as int32
	i32 := filepath.Join(dir, "actid32.npy")
	writeNPY(t, i32, []int32{7})
	ids, err = LoadNPYInts(i32)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 || ids[0] != 7 {
		t.Fatalf("int32 ids: %v", ids)
	}
}

func writeNPY(t *testing.T, path string, data interface{}) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := npyio.Write(f, data); err != nil {
		t.Fatal(err)
	}
}
