// preCMGsim prepares and validates grid property arrays for CMG-style
// reservoir simulations.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer, args []string) error {
	if len(args) == 0 {
		usage(w)
		return errors.New("missing command")
	}

	switch args[0] {
	case "generate":
		return cmdGenerate(w, args[1:])
	case "compare":
		return cmdCompare(w, args[1:])
	case "count":
		return cmdCount(w, args[1:])
	case "fgrid":
		return cmdFgrid(w, args[1:])
	case "explore":
		return cmdExplore(w, args[1:])
	case "run":
		return cmdRun(w, args[1:])
	case "help", "-h", "--help":
		usage(w)
		return nil
	default:
		usage(w)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `Usage: precmgsim <command> [options]

Commands:
  generate   build a full-grid porosity array from sparse active-cell data
  compare    compare numeric arrays across file formats
  count      count data points in a run-length .dat file
  fgrid      extract COORDS/CORNERS records from an FGRID file to CSV
  explore    dump the structure of an HDF5 result file
  run        execute a .hcl job file of generate/compare steps

Run 'precmgsim <command> -h' for command options.`)
}
