package grid

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/JihuiDing/preCMGsim/common"
)

// Coords is one 'COORDS  ' record: cell topology and activity flags.
type Coords struct {
	I, J, K int
	CellID  int64
	Flag1   int
	Flag2   int
	Flag3   int
}

// Corners is one 'CORNERS ' record: x,y,z for the 8 cell corners, in file
// order (x1 y1 z1 ... x8 y8 z8).
type Corners struct {
	Values [24]float64
}

// FGridData holds the records extracted from one FGRID file. Warnings
// collects the records that were dropped and why.
type FGridData struct {
	Coords   []Coords
	Corners  []Corners
	Warnings []string
}

var fgridHeader = regexp.MustCompile(`'(COORDS  |CORNERS )'\s+(\d+)`)

// ExtractFGRID scans an FGRID text stream for COORDS and CORNERS records.
// Each header declares a value count; values are consumed across as many
// lines as needed until the count is reached. Records with malformed
// headers or the wrong number of values are dropped with a warning.
func ExtractFGRID(r io.Reader) (*FGridData, error) {
	var lines []string
	sc := common.NewLineScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read fgrid data: %w", err)
	}

	data := &FGridData{}
	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if !strings.Contains(line, "'COORDS  '") && !strings.Contains(line, "'CORNERS '") {
			i++
			continue
		}

		m := fgridHeader.FindStringSubmatch(line)
		if m == nil {
			data.Warnings = append(data.Warnings,
				fmt.Sprintf("could not parse header line: %s", line))
			i++
			continue
		}
		keyword := strings.TrimSpace(m[1])
		nValues, _ := strconv.Atoi(m[2])

		var values []string
		i++
		for len(values) < nValues && i < len(lines) {
			values = append(values, strings.Fields(strings.TrimSpace(lines[i]))...)
			i++
		}

		switch keyword {
		case "COORDS":
			rec, err := parseCoords(values)
			if err != nil {
				data.Warnings = append(data.Warnings,
					fmt.Sprintf("dropping COORDS record: %v", err))
				continue
			}
			data.Coords = append(data.Coords, rec)
		case "CORNERS":
			rec, err := parseCorners(values)
			if err != nil {
				data.Warnings = append(data.Warnings,
					fmt.Sprintf("dropping CORNERS record: %v", err))
				continue
			}
			data.Corners = append(data.Corners, rec)
		}
	}
	return data, nil
}

func parseCoords(values []string) (Coords, error) {
	if len(values) != 7 {
		return Coords{}, fmt.Errorf("expected 7 values, got %d", len(values))
	}
	ints := make([]int64, 7)
	for i, v := range values {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Coords{}, fmt.Errorf("non-integer value %q", v)
		}
		ints[i] = n
	}
	return Coords{
		I: int(ints[0]), J: int(ints[1]), K: int(ints[2]),
		CellID: ints[3],
		Flag1:  int(ints[4]), Flag2: int(ints[5]), Flag3: int(ints[6]),
	}, nil
}

func parseCorners(values []string) (Corners, error) {
	if len(values) != 24 {
		return Corners{}, fmt.Errorf("expected 24 values, got %d", len(values))
	}
	var rec Corners
	for i, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Corners{}, fmt.Errorf("non-numeric value %q", v)
		}
		rec.Values[i] = f
	}
	return rec, nil
}

// WriteCoordsCSV exports COORDS records with the column layout of the
// original workflow.
func WriteCoordsCSV(w io.Writer, coords []Coords) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"i", "j", "k", "cell_id", "flag1", "flag2", "flag3"}); err != nil {
		return fmt.Errorf("write header error: %w", err)
	}
	for _, c := range coords {
		rec := []string{
			strconv.Itoa(c.I), strconv.Itoa(c.J), strconv.Itoa(c.K),
			strconv.FormatInt(c.CellID, 10),
			strconv.Itoa(c.Flag1), strconv.Itoa(c.Flag2), strconv.Itoa(c.Flag3),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write record error: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCornersCSV exports CORNERS records as x1,y1,z1 ... x8,y8,z8 columns.
func WriteCornersCSV(w io.Writer, corners []Corners) error {
	cw := csv.NewWriter(w)
	header := make([]string, 24)
	for p := 0; p < 8; p++ {
		header[p*3] = fmt.Sprintf("x%d", p+1)
		header[p*3+1] = fmt.Sprintf("y%d", p+1)
		header[p*3+2] = fmt.Sprintf("z%d", p+1)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header error: %w", err)
	}
	for _, c := range corners {
		rec := make([]string, 24)
		for i, v := range c.Values {
			rec[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write record error: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
