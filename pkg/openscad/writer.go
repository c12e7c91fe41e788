// Package openscad writes cube scenes as OpenSCAD scripts and renders those
// scripts with the openscad binary.
package openscad

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/philipparndt/gocube/pkg/geometry"
	"github.com/philipparndt/gocube/pkg/scene"
)

func vec(v geometry.Vector3) string {
	f := func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
	return "[" + f(v.X) + ", " + f(v.Y) + ", " + f(v.Z) + "]"
}

// Write emits one centred unit cube per object wrapped in union(). Rotations
// are nested so the Z rotation applies first, then Y, then X, matching
// geometry.EulerRotation.
func Write(w io.Writer, name string, objects []scene.Object) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "// %s\n", strings.ReplaceAll(name, "\n", " "))
	fmt.Fprintf(bw, "union() {\n")
	for i, obj := range objects {
		if obj.Material != "" {
			fmt.Fprintf(bw, "  // cube %d, material %s\n", i, obj.Material)
		} else {
			fmt.Fprintf(bw, "  // cube %d\n", i)
		}
		r := obj.Rotation
		fmt.Fprintf(bw, "  translate(%s)\n", vec(obj.Position))
		fmt.Fprintf(bw, "    rotate([%s, 0, 0]) rotate([0, %s, 0]) rotate([0, 0, %s])\n",
			strconv.FormatFloat(r.X, 'g', -1, 64),
			strconv.FormatFloat(r.Y, 'g', -1, 64),
			strconv.FormatFloat(r.Z, 'g', -1, 64))
		fmt.Fprintf(bw, "      scale(%s)\n", vec(obj.Scale))
		fmt.Fprintf(bw, "        cube(1, center = true);\n")
	}
	fmt.Fprintf(bw, "}\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write OpenSCAD script: %w", err)
	}
	return nil
}
