package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/philipparndt/gocube/pkg/geometry"
	"github.com/philipparndt/gocube/pkg/project"
	"github.com/philipparndt/gocube/pkg/scene"
	"github.com/spf13/cobra"
)

func newNewCmd() *cobra.Command {
	var (
		name    string
		cubes   int
		spacing float64
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "new [file]",
		Short: "Create a project file",
		Long:  "Create a .gocube project holding a row of unit cubes along X, centred on the origin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := project.FileName(args[0])
			if !force {
				if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}
			if cubes < 0 {
				return fmt.Errorf("cube count must not be negative")
			}
			if name == "" {
				name = projectName(path)
			}

			s := scene.New()
			for _, p := range rowPositions(cubes, spacing) {
				s.AddCube(p)
			}

			if err := project.Save(path, project.FromScene(name, s)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s with %d cubes\n", path, cubes)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name (defaults to the file name)")
	cmd.Flags().IntVarP(&cubes, "cubes", "n", 1, "Number of cubes to place")
	cmd.Flags().Float64Var(&spacing, "spacing", 2, "Distance between cube centres")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}

// rowPositions spreads n points along X, centred on the origin
func rowPositions(n int, spacing float64) []geometry.Vector3 {
	positions := make([]geometry.Vector3, n)
	offset := float64(n-1) * spacing / 2
	for i := range positions {
		positions[i] = geometry.NewVector3(float64(i)*spacing-offset, 0, 0)
	}
	return positions
}
