package cmg

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Count tallies the number of data points in a run-length document without
// materializing them. Run tokens contribute their declared count, bare
// numbers one, anything else nothing.
func Count(r io.Reader) (int, error) {
	total := 0

	sc := newScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "**") {
			continue
		}
		for _, token := range strings.Fields(line) {
			if count, _, ok := ParseRunToken(token); ok {
				total += count
				continue
			}
			if _, err := strconv.ParseFloat(token, 64); err == nil {
				total++
			}
		}
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("read cmg data: %w", err)
	}
	return total, nil
}

// AnalyzeFormat prints a token-level breakdown of the document: the header,
// a per-token expansion of the first data lines, and pattern totals.
func AnalyzeFormat(r io.Reader, w io.Writer) error {
	var lines []string
	sc := newScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read cmg data: %w", err)
	}

	fmt.Fprintf(w, "Total lines in file: %d\n", len(lines))
	if len(lines) > 0 {
		fmt.Fprintf(w, "\nHeader: %s\n", lines[0])
	}

	var dataLines []string
	for _, line := range lines[min(1, len(lines)):] {
		if line != "" && !strings.HasPrefix(line, "**") {
			dataLines = append(dataLines, line)
		}
	}

	fmt.Fprintln(w, "\nFirst 5 data lines analysis:")
	for i, line := range dataLines[:min(5, len(dataLines))] {
		fmt.Fprintf(w, "\nLine %d: %s\n", i+1, line)
		lineTotal := 0
		for _, token := range strings.Fields(line) {
			if count, value, ok := ParseRunToken(token); ok {
				lineTotal += count
				fmt.Fprintf(w, "  %s -> %d times value %g\n", token, count, value)
			} else if _, err := strconv.ParseFloat(token, 64); err == nil {
				lineTotal++
				fmt.Fprintf(w, "  %s -> single value\n", token)
			} else {
				fmt.Fprintf(w, "  %s -> non-numeric (skipped)\n", token)
			}
		}
		fmt.Fprintf(w, "  Total data points in this line: %d\n", lineTotal)
	}

	patterns, singles := 0, 0
	for _, line := range dataLines {
		for _, token := range strings.Fields(line) {
			if _, _, ok := ParseRunToken(token); ok {
				patterns++
			} else if _, err := strconv.ParseFloat(token, 64); err == nil {
				singles++
			}
		}
	}
	fmt.Fprintln(w, "\nFormat Summary:")
	fmt.Fprintf(w, "Compressed patterns (N*value): %d\n", patterns)
	fmt.Fprintf(w, "Single values: %d\n", singles)
	return nil
}
