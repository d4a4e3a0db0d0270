package common

import (
	"fmt"
	"io"
	"os"
)

// DumpFileHead prints the first maxLines lines of path for troubleshooting
// a failed comparison. Lines are quoted so stray whitespace shows up.
func DumpFileHead(w io.Writer, path string, maxLines int) {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(w, "File not found: %s\n", path)
		return
	}

	fmt.Fprintf(w, "\nDebug: content of %s (first %d lines):\n", path, maxLines)
	fmt.Fprintln(w, "--------------------------------------------------")

	r, err := OpenReader(path)
	if err != nil {
		fmt.Fprintf(w, "Error reading file: %v\n", err)
		return
	}
	defer r.Close()

	sc := NewLineScanner(r)
	n := 0
	for sc.Scan() {
		n++
		if n > maxLines {
			fmt.Fprintf(w, "... truncated (%d bytes total)\n", info.Size())
			return
		}
		fmt.Fprintf(w, "%3d: %q\n", n, sc.Text())
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(w, "Error reading file: %v (file may be binary)\n", err)
	}
}
