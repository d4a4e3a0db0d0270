// Package job runs a batch of generate and compare steps described in an
// HCL file, so validation workflows don't have to be scripted by hand.
package job

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/JihuiDing/preCMGsim/common"
	"github.com/JihuiDing/preCMGsim/grid"
)

// Job is the top-level document of a .hcl job file. Top-level settings are
// defaults for the steps; a compare block may override the tolerance.
type Job struct {
	TotalCells   int     `hcl:"total_cells"`
	Tolerance    float64 `hcl:"tolerance,optional"`
	MaxLineWidth int     `hcl:"max_line_width,optional"`

	Generates []GenerateStep `hcl:"generate,block"`
	Compares  []CompareStep  `hcl:"compare,block"`
}

// GenerateStep builds one full-porosity array from sparse inputs.
type GenerateStep struct {
	Name     string `hcl:"name,label"`
	Actid    string `hcl:"actid"`
	Poro     string `hcl:"poro"`
	Output   string `hcl:"output"`
	Compress *bool  `hcl:"compress,optional"` // default true
	Header   string `hcl:"header,optional"`
}

// CompareStep compares two array files of any supported format.
type CompareStep struct {
	Name      string   `hcl:"name,label"`
	A         string   `hcl:"a"`
	B         string   `hcl:"b"`
	Tolerance *float64 `hcl:"tolerance,optional"`
}

// Load parses and validates a job file.
func Load(path string) (*Job, error) {
	var j Job
	if err := hclsimple.DecodeFile(path, nil, &j); err != nil {
		return nil, fmt.Errorf("load job file '%s': %w", path, err)
	}
	if j.TotalCells < 1 {
		return nil, fmt.Errorf("job file '%s': total_cells must be positive, got %d", path, j.TotalCells)
	}
	if j.Tolerance == 0 {
		j.Tolerance = 1e-10
	}
	if j.MaxLineWidth == 0 {
		j.MaxLineWidth = 80
	}
	return &j, nil
}

// Run executes the generate steps, then the compare steps. A generation
// failure aborts the batch; comparison failures are reported and the batch
// continues, with a summarizing error at the end.
func Run(j *Job, w io.Writer) error {
	for _, g := range j.Generates {
		fmt.Fprintf(w, "generate %q\n", g.Name)

		opt := grid.GenerateOptions{
			TotalCells:   j.TotalCells,
			Compress:     g.Compress == nil || *g.Compress,
			MaxLineWidth: j.MaxLineWidth,
			Header:       g.Header,
		}
		if opt.Header == "" {
			opt.Header = "**FULL_POROSITY_ALL"
		}

		summary, err := grid.GenerateFullPorosity(g.Actid, g.Poro, g.Output, opt)
		if err != nil {
			return fmt.Errorf("generate %q: %w", g.Name, err)
		}
		summary.Print(w)
	}

	failed := 0
	for _, c := range j.Compares {
		fmt.Fprintf(w, "compare %q: %s vs %s\n", c.Name, c.A, c.B)

		tolerance := j.Tolerance
		if c.Tolerance != nil {
			tolerance = *c.Tolerance
		}

		res, err := runCompare(c, tolerance, w)
		if err != nil {
			fmt.Fprintf(w, "compare %q failed: %v\n", c.Name, err)
			failed++
			continue
		}
		if !res.Identical() {
			fmt.Fprintf(w, "compare %q: arrays differ (%d elements, max diff %.2e)\n",
				c.Name, res.DifferentElements, res.MaxDiff)
			failed++
		} else {
			fmt.Fprintf(w, "compare %q: OK\n", c.Name)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d comparisons failed", failed, len(j.Compares))
	}
	return nil
}

func runCompare(c CompareStep, tolerance float64, w io.Writer) (*common.ComparisonResult, error) {
	a, warnings, err := common.ReadArrayFile(c.A)
	if err != nil {
		return nil, err
	}
	b, warningsB, err := common.ReadArrayFile(c.B)
	if err != nil {
		return nil, err
	}
	for _, warning := range append(warnings, warningsB...) {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
	return common.Compare(a, b, tolerance)
}
