package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gocube/pkg/analysis"
	"github.com/philipparndt/gocube/pkg/project"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	var largest int

	cmd := &cobra.Command{
		Use:   "info [file]",
		Short: "Display information about a project file",
		Long:  "Show the project header, cube statistics, bounding box and material usage.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := project.Load(args[0])
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), args[0], data, largest)
			return nil
		},
	}

	cmd.Flags().IntVarP(&largest, "largest", "n", 5, "Number of largest cubes to list")
	return cmd
}

func printInfo(w io.Writer, filename string, data *project.Data, largest int) {
	result := analysis.AnalyzeRecords(data.Cubes)

	fmt.Fprintln(w, "Project Information")
	fmt.Fprintln(w, "===================")
	fmt.Fprintf(w, "Name: %s\n", data.Name)
	fmt.Fprintf(w, "Format: %s\n", data.Version)
	fmt.Fprintf(w, "File: %s\n\n", filename)

	fmt.Fprintln(w, "Scene Statistics:")
	fmt.Fprintf(w, "  Cubes: %d\n", result.CubeCount)
	fmt.Fprintf(w, "  Triangles: %d\n", result.TriangleCount)
	fmt.Fprintf(w, "  Surface Area: %.6f square units\n", result.SurfaceArea)
	fmt.Fprintf(w, "  Volume: %.6f cubic units\n\n", result.Volume)

	if result.CubeCount > 0 {
		fmt.Fprintln(w, "Bounding Box:")
		fmt.Fprintf(w, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
		fmt.Fprintf(w, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
		fmt.Fprintf(w, "  Center: %s\n", analysis.FormatVector(result.BoundingBox.Center()))
		fmt.Fprintf(w, "  Size: %s\n\n", analysis.FormatVector(result.Dimensions))

		cubes := analysis.LargestCubes(result, largest)
		if len(cubes) > 0 {
			fmt.Fprintf(w, "Largest Cubes:\n")
			for _, c := range cubes {
				fmt.Fprintf(w, "  #%d at %s volume %.6f\n", c.Index, analysis.FormatVector(c.Position), c.Volume)
			}
			fmt.Fprintln(w)
		}
	}

	if materials := analysis.SortedMaterials(result); len(materials) > 0 {
		fmt.Fprintln(w, "Materials:")
		for _, m := range materials {
			fmt.Fprintf(w, "  %s (%d)\n", m, result.Materials[m])
		}
		fmt.Fprintln(w)
	}

	if len(data.ImportedFiles) > 0 {
		fmt.Fprintln(w, "Imported Files:")
		for _, f := range data.ImportedFiles {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}
}

func projectName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
