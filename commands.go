package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/JihuiDing/preCMGsim/cmg"
	"github.com/JihuiDing/preCMGsim/common"
	"github.com/JihuiDing/preCMGsim/grid"
	"github.com/JihuiDing/preCMGsim/job"
)

// Defaults live here, in the CLI, never in the core packages.
const (
	defaultTotalCells = 989001
	defaultTolerance  = 1e-10
	defaultLineWidth  = 80
	defaultHeader     = "**FULL_POROSITY_ALL"
)

func cmdGenerate(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	actid := fs.String("actid", "results/actid.npy", "active cell ID file (.npy)")
	poro := fs.String("poro", "results/poro.npy", "porosity value file (.npy)")
	output := fs.String("output", "results/full_porosity.npy", "output file (.npy)")
	totalCells := fs.Int("total-cells", defaultTotalCells, "total number of grid cells")
	noCompress := fs.Bool("no-compress", false, "skip writing the compressed .dat sibling")
	width := fs.Int("width", defaultLineWidth, "maximum line width of the compressed file")
	header := fs.String("header", defaultHeader, "comment header of the compressed file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Fprintf(w, "Loading active cell IDs from: %s\n", *actid)
	fmt.Fprintf(w, "Loading porosity values from: %s\n", *poro)

	summary, err := grid.GenerateFullPorosity(*actid, *poro, *output, grid.GenerateOptions{
		TotalCells:   *totalCells,
		Compress:     !*noCompress,
		MaxLineWidth: *width,
		Header:       *header,
	})
	if err != nil {
		return err
	}
	summary.Print(w)
	return nil
}

func cmdCompare(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	tolerance := fs.Float64("tolerance", defaultTolerance, "tolerance for floating point comparison")
	debug := fs.Bool("debug", false, "show the first lines of both files")
	plotFile := fs.String("plot", "", "save a histogram of differences to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errors.New("compare: need exactly two file arguments")
	}
	file1, file2 := fs.Arg(0), fs.Arg(1)

	fmt.Fprintln(w, "Comparing files:")
	for _, f := range []string{file1, file2} {
		if info, err := os.Stat(f); err == nil {
			fmt.Fprintf(w, "  %s (%d bytes)\n", f, info.Size())
		} else {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}

	if *debug {
		common.DumpFileHead(w, file1, 10)
		common.DumpFileHead(w, file2, 10)
	}

	a, warnings, err := common.ReadArrayFile(file1)
	if err != nil {
		return err
	}
	b, warningsB, err := common.ReadArrayFile(file2)
	if err != nil {
		return err
	}
	for _, warning := range append(warnings, warningsB...) {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}

	res, err := common.Compare(a, b, *tolerance)
	if err != nil {
		fmt.Fprintln(w, "\n"+strings.Repeat("=", 60))
		fmt.Fprintln(w, "SUMMARY")
		fmt.Fprintln(w, strings.Repeat("=", 60))
		fmt.Fprintln(w, "FILES ARE DIFFERENT")
		fmt.Fprintf(w, "   Error: %v\n", err)
		return nil
	}

	fmt.Fprintln(w)
	res.PrintReport(w, a, b, file1, file2)

	if *plotFile != "" {
		if err := common.PlotDifferences(a, b, *plotFile); err != nil {
			return err
		}
		fmt.Fprintf(w, "\nSaved difference histogram to: %s\n", *plotFile)
	}

	fmt.Fprintln(w, "\n"+strings.Repeat("=", 60))
	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", 60))
	if res.Identical() {
		fmt.Fprintln(w, "FILES ARE IDENTICAL")
		if res.ExactMatch {
			fmt.Fprintln(w, "   (Exact match)")
		} else {
			fmt.Fprintln(w, "   (Match within tolerance)")
		}
	} else {
		fmt.Fprintln(w, "FILES ARE DIFFERENT")
		fmt.Fprintf(w, "   %d elements differ\n", res.DifferentElements)
		fmt.Fprintf(w, "   Max difference: %.2e\n", res.MaxDiff)
	}
	return nil
}

func cmdCount(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("count", flag.ContinueOnError)
	noAnalysis := fs.Bool("no-analysis", false, "skip the detailed format analysis")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("count: need exactly one file argument")
	}
	path := fs.Arg(0)

	if !*noAnalysis {
		r, err := common.OpenReader(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Analyzing CMG format of: %s\n", path)
		fmt.Fprintln(w, strings.Repeat("-", 60))
		err = cmg.AnalyzeFormat(r, w)
		r.Close()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "\n"+strings.Repeat("=", 60))
	}

	r, err := common.OpenReader(path)
	if err != nil {
		return err
	}
	defer r.Close()

	total, err := cmg.Count(r)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "RESULT: Total number of data points = %d\n", total)
	return nil
}

func cmdFgrid(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("fgrid", flag.ContinueOnError)
	coordsOut := fs.String("coords", "coords.csv", "output CSV for COORDS records")
	cornersOut := fs.String("corners", "corners.csv", "output CSV for CORNERS records")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("fgrid: need exactly one file argument")
	}
	path := fs.Arg(0)

	r, err := common.OpenReader(path)
	if err != nil {
		return err
	}
	defer r.Close()

	data, err := grid.ExtractFGRID(r)
	if err != nil {
		return err
	}
	for _, warning := range data.Warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}

	if err := writeCSVFile(*coordsOut, func(out io.Writer) error {
		return grid.WriteCoordsCSV(out, data.Coords)
	}); err != nil {
		return err
	}
	if err := writeCSVFile(*cornersOut, func(out io.Writer) error {
		return grid.WriteCornersCSV(out, data.Corners)
	}); err != nil {
		return err
	}

	fmt.Fprintf(w, "Number of coordinate sets: %d\n", len(data.Coords))
	fmt.Fprintf(w, "Number of corner sets: %d\n", len(data.Corners))
	fmt.Fprintf(w, "Wrote %s and %s\n", *coordsOut, *cornersOut)
	return nil
}

func writeCSVFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file error '%s': %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func cmdRun(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("run: need exactly one job file argument")
	}

	j, err := job.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	return job.Run(j, w)
}
