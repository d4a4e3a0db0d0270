package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/robert-malhotra/go-hdf5/hdf5"
)

// cmdExplore recursively dumps the group/dataset structure of an HDF5
// result file, with shapes, types and a peek at the first values.
func cmdExplore(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("explore", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("explore: need exactly one file argument")
	}
	path := fs.Arg(0)

	f, err := hdf5.Open(path)
	if err != nil {
		return fmt.Errorf("open hdf5 file '%s': %w", path, err)
	}
	defer f.Close()

	fmt.Fprintln(w, "=== HDF5 File Structure ===")
	return hdf5.Walk(f.Root(), func(objPath string, obj interface{}, err error) error {
		indent := strings.Repeat("  ", depthOf(objPath))
		if err != nil {
			fmt.Fprintf(w, "%s%s: error: %v\n", indent, objPath, err)
			return nil
		}
		switch o := obj.(type) {
		case *hdf5.Group:
			fmt.Fprintf(w, "%sGroup: %s\n", indent, o.Path())
			for _, name := range o.Attrs() {
				fmt.Fprintf(w, "%s  Attribute: %s\n", indent, name)
			}
		case *hdf5.Dataset:
			fmt.Fprintf(w, "%sDataset: %s\n", indent, o.Name())
			fmt.Fprintf(w, "%s  Shape: %v\n", indent, o.Shape())
			fmt.Fprintf(w, "%s  Type: %v (%d bytes)\n", indent, o.DtypeClass(), o.DtypeSize())
			printFirstValues(w, indent+"  ", o)
		}
		return nil
	})
}

// printFirstValues shows up to five leading values of a numeric dataset.
// Datasets of other types are structural information only.
func printFirstValues(w io.Writer, indent string, d *hdf5.Dataset) {
	if d.NumElements() == 0 {
		return
	}
	n := int(d.NumElements())
	if n > 5 {
		n = 5
	}

	if values, err := d.ReadFloat64(); err == nil {
		fmt.Fprintf(w, "%sFirst few values: %v\n", indent, values[:n])
		return
	}
	if values, err := d.ReadInt64(); err == nil {
		fmt.Fprintf(w, "%sFirst few values: %v\n", indent, values[:n])
		return
	}
	if values, err := d.ReadString(); err == nil && len(values) > 0 {
		fmt.Fprintf(w, "%sContent: %s\n", indent, values[0])
	}
}

func depthOf(objPath string) int {
	if objPath == "/" {
		return 0
	}
	return strings.Count(objPath, "/")
}
