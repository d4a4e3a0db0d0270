// Package cmg implements the CMG simulator's run-length text format:
// whitespace-separated "N*value" tokens on lines below a "**" comment
// header. Decompress is the exact inverse of Compress for any array
// Compress produced.
package cmg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoData is returned when a document yields no numerical values at all.
// Individual unparseable tokens are skipped, never fatal.
var ErrNoData = errors.New("no numerical values found")

// runTolerance is the relative tolerance used to group consecutive values
// into one run. For a comparison against 0 it degenerates to exact
// equality, which is what keeps Decompress(Compress(x)) exact.
const runTolerance = 1e-10

var runToken = regexp.MustCompile(`^(\d+)\*([+-]?\d*\.?\d*)`)

func closeTo(a, b float64) bool {
	return math.Abs(a-b) <= runTolerance*math.Abs(b)
}

// Compress encodes values into run-length token lines. Zero runs render as
// "0" / "N*0", everything else with six fractional digits. Tokens are
// separated by a single space and never split across lines; a token that
// would push the current line past maxLineWidth starts a new one.
func Compress(values []float64, maxLineWidth int) []string {
	var lines []string
	current := ""

	for i := 0; i < len(values); {
		value := values[i]
		count := 1
		for i+count < len(values) && closeTo(values[i+count], value) {
			count++
		}

		var token string
		switch {
		case closeTo(value, 0.0):
			if count == 1 {
				token = "0"
			} else {
				token = strconv.Itoa(count) + "*0"
			}
		case count == 1:
			token = fmt.Sprintf("%.6f", value)
		default:
			token = fmt.Sprintf("%d*%.6f", count, value)
		}

		if current != "" && len(current)+1+len(token) > maxLineWidth {
			lines = append(lines, current)
			current = token
		} else if current != "" {
			current += " " + token
		} else {
			current = token
		}

		i += count
	}

	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// WriteDocument writes the header line followed by the compressed lines.
// The header should begin with "**" so that Decompress treats it as a
// comment.
func WriteDocument(w io.Writer, header string, lines []string) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("write data line: %w", err)
		}
	}
	return bw.Flush()
}

// ParseRunToken matches the "N*value" form. ok is false for bare numbers
// and for tokens whose count or value does not parse.
func ParseRunToken(token string) (count int, value float64, ok bool) {
	m := runToken.FindStringSubmatch(token)
	if m == nil {
		return 0, 0, false
	}
	count, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	value, err = strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, 0, false
	}
	return count, value, true
}

// Decompress expands a run-length document back into a dense array. Blank
// lines and "**" comment lines are skipped, as are tokens that parse as
// neither a run nor a bare float.
func Decompress(r io.Reader) ([]float64, error) {
	var values []float64

	sc := newScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "**") {
			continue
		}
		for _, token := range strings.Fields(line) {
			if count, value, ok := ParseRunToken(token); ok {
				for j := 0; j < count; j++ {
					values = append(values, value)
				}
				continue
			}
			value, err := strconv.ParseFloat(token, 64)
			if err != nil {
				continue
			}
			values = append(values, value)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read cmg data: %w", err)
	}
	if len(values) == 0 {
		return nil, ErrNoData
	}
	return values, nil
}

// newScanner sizes the buffer for long data lines.
func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 0, 1024*1024)
	sc.Buffer(buf, 10*1024*1024)
	return sc
}
