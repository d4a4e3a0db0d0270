package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JihuiDing/preCMGsim/cmg"
)

// Format identifies one of the supported array file layouts. The set is
// closed; dispatch happens once, at the file boundary.
type Format int

const (
	FormatText Format = iota // one float per line
	FormatNPY                // numpy binary array
	FormatCMG                // run-length "N*value" text
	FormatGRDECL             // grid-description keyword payload
)

func (f Format) String() string {
	switch f {
	case FormatNPY:
		return "npy"
	case FormatCMG:
		return "cmg"
	case FormatGRDECL:
		return "grdecl"
	default:
		return "text"
	}
}

// DetectFormat resolves a file's format from its extension. A trailing .gz
// is ignored. known is false for unrecognized extensions, which fall back
// to the plain-text reader.
func DetectFormat(path string) (format Format, known bool) {
	base := strings.TrimSuffix(path, ".gz")
	switch strings.ToLower(filepath.Ext(base)) {
	case ".npy":
		return FormatNPY, true
	case ".dat":
		return FormatCMG, true
	case ".grdecl", ".gdecl":
		return FormatGRDECL, true
	case ".txt":
		return FormatText, true
	default:
		return FormatText, false
	}
}

// ReadArrayFile reads the numeric values of path according to its detected
// format. warnings collects per-line skip diagnostics from the text and
// grdecl readers; callers in strict contexts may treat a non-empty list as
// fatal.
func ReadArrayFile(path string) (values []float64, warnings []string, err error) {
	if !FileExists(path) {
		return nil, nil, fmt.Errorf("file not found: %s: %w", path, os.ErrNotExist)
	}

	format, known := DetectFormat(path)
	if !known {
		warnings = append(warnings,
			fmt.Sprintf("unknown file extension %s, trying to read as text file", filepath.Ext(path)))
	}

	r, err := OpenReader(path)
	if err != nil {
		return nil, warnings, err
	}
	defer r.Close()

	switch format {
	case FormatNPY:
		values, err = readNPY(r)
	case FormatCMG:
		values, err = cmg.Decompress(r)
	case FormatGRDECL:
		var w []string
		values, w, err = ReadGRDECL(r)
		warnings = append(warnings, w...)
	default:
		var w []string
		values, w, err = ReadTextValues(r)
		warnings = append(warnings, w...)
	}
	if err != nil {
		return nil, warnings, fmt.Errorf("read %s file '%s': %w", format, path, err)
	}
	return values, warnings, nil
}

// ReadGRDECL extracts the numeric payload that follows the "/" delimiter
// line of a grid-description file. Run tokens are expanded like in the CMG
// format; trailing slashes on tokens are stripped.
func ReadGRDECL(r io.Reader) (values []float64, warnings []string, err error) {
	inDataSection := false

	sc := NewLineScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(strings.ToUpper(line), "/") {
			inDataSection = true
			continue
		}
		if !inDataSection {
			continue
		}
		for _, token := range strings.Fields(line) {
			token = strings.TrimRight(token, "/")
			if token == "" {
				continue
			}
			if count, value, ok := cmg.ParseRunToken(token); ok {
				for j := 0; j < count; j++ {
					values = append(values, value)
				}
				continue
			}
			value, perr := strconv.ParseFloat(token, 64)
			if perr != nil {
				warnings = append(warnings,
					fmt.Sprintf("skipping non-numeric token on line %d: %s", lineNum, token))
				continue
			}
			values = append(values, value)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, warnings, fmt.Errorf("read grdecl data: %w", err)
	}
	if len(values) == 0 {
		return nil, warnings, fmt.Errorf("%w after the '/' marker", cmg.ErrNoData)
	}
	return values, warnings, nil
}

// ReadTextValues reads one float per line. Blank lines are skipped;
// non-numeric lines produce a warning and are skipped.
func ReadTextValues(r io.Reader) (values []float64, warnings []string, err error) {
	sc := NewLineScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		value, perr := strconv.ParseFloat(line, 64)
		if perr != nil {
			warnings = append(warnings,
				fmt.Sprintf("skipping non-numeric value on line %d: %s", lineNum, line))
			continue
		}
		values = append(values, value)
	}
	if err := sc.Err(); err != nil {
		return nil, warnings, fmt.Errorf("read text data: %w", err)
	}
	if len(values) == 0 {
		return nil, warnings, cmg.ErrNoData
	}
	return values, warnings, nil
}
