package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gocube/pkg/openscad"
	"github.com/philipparndt/gocube/pkg/project"
	"github.com/philipparndt/gocube/pkg/scene"
	"github.com/philipparndt/gocube/pkg/stl"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// sceneDocument is the YAML interchange form of a project
type sceneDocument struct {
	Name          string         `yaml:"name"`
	Version       string         `yaml:"version"`
	Cubes         []scene.Record `yaml:"cubes"`
	ImportedFiles []string       `yaml:"imported_files,omitempty"`
}

func newExportCmd() *cobra.Command {
	var (
		output string
		ascii  bool
		union  bool
	)

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export a project as STL, OpenSCAD or YAML",
		Long: `Write every cube as twelve triangles to an STL file (binary unless
--ascii), the scene as an OpenSCAD script, or the project records to a YAML
document. The format follows the output extension. With --union the STL is
produced by OpenSCAD so overlapping cubes are merged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := project.Load(args[0])
			if err != nil {
				return err
			}
			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".stl"
			}

			objects := make([]scene.Object, len(data.Cubes))
			for i, r := range data.Cubes {
				objects[i] = r.Object()
			}

			switch ext := strings.ToLower(filepath.Ext(output)); ext {
			case ".stl":
				if union {
					r := openscad.NewRenderer(filepath.Dir(args[0]))
					if err := r.RenderObjects(data.Name, objects, output); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Exported union of %d cubes to %s\n", len(objects), output)
					return nil
				}
				model := stl.FromObjects(data.Name, objects)
				if err := stl.Save(output, model, ascii); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d triangles to %s\n", model.TriangleCount(), output)

			case ".scad":
				if err := writeSCAD(output, data.Name, objects); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d cubes to %s\n", len(objects), output)

			case ".yaml", ".yml":
				if err := writeYAML(output, data); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d cubes to %s\n", len(data.Cubes), output)

			default:
				return fmt.Errorf("unsupported export format %q (expected .stl, .scad or .yaml)", ext)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (.stl, .scad, .yaml; default <file>.stl)")
	cmd.Flags().BoolVar(&ascii, "ascii", false, "Write ASCII instead of binary STL")
	cmd.Flags().BoolVar(&union, "union", false, "Merge overlapping cubes into one mesh with OpenSCAD")
	return cmd
}

func writeSCAD(path, name string, objects []scene.Object) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := openscad.Write(file, name, objects); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func writeYAML(path string, data *project.Data) error {
	out, err := yaml.Marshal(sceneDocument{
		Name:          data.Name,
		Version:       data.Version,
		Cubes:         data.Cubes,
		ImportedFiles: data.ImportedFiles,
	})
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func readYAML(path string) (*project.Data, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc sceneDocument
	if err := yaml.Unmarshal(in, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	data := project.New(doc.Name)
	data.Cubes = make([]scene.Record, len(doc.Cubes))
	for i, r := range doc.Cubes {
		// clamps degenerate scales
		data.Cubes[i] = r.Object().Record()
	}
	data.ImportedFiles = doc.ImportedFiles
	return data, nil
}

func newImportCmd() *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "import [file.yaml]",
		Short: "Create a project from a YAML document",
		Long:  "Read a YAML document in the form written by export and store it as a .gocube project.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readYAML(args[0])
			if err != nil {
				return err
			}
			if data.Name == "" {
				data.Name = projectName(args[0])
			}
			if output == "" {
				output = project.FileName(args[0])
			}
			if !force {
				if _, err := os.Stat(output); !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("%s already exists (use --force to overwrite)", output)
				}
			}

			if err := project.Save(output, data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d cubes into %s\n", len(data.Cubes), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output project (default <file>.gocube)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing project")
	return cmd
}
