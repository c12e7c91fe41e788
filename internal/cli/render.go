package cli

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gocube/pkg/editor"
	"github.com/philipparndt/gocube/pkg/geometry"
	"github.com/philipparndt/gocube/pkg/project"
	"github.com/philipparndt/gocube/pkg/scene"
	"github.com/philipparndt/gocube/pkg/viewer"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var (
		output string
		fit    bool
		noGrid bool
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a preview image of a project",
		Long: `Rasterize the scene from the editor's start camera into a PNG or WebP
image. With --fit the camera backs off until every cube is in view.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cmd)
			if err != nil {
				return err
			}

			data, err := project.Load(args[0])
			if err != nil {
				return err
			}
			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
			}

			opts := cfg.PreviewOptions()
			if w, _ := cmd.Flags().GetInt("width"); w > 0 {
				opts.Width = w
			}
			if h, _ := cmd.Flags().GetInt("height"); h > 0 {
				opts.Height = h
			}
			if noGrid {
				opts.Grid = false
			}

			s := scene.New()
			s.Load(data.Cubes)

			cam := viewer.NewCameraWithSettings(cfg.EditorOptions().Camera)
			if fit {
				fitCamera(cam, s)
			}

			aspect := float64(opts.Width) / float64(opts.Height)
			img := viewer.RenderPreview(editor.SceneMeshes(s), cam.View(), cam.Projection(aspect), opts)

			if err := writeImage(output, img); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d cubes to %s (%dx%d)\n", s.Len(), output, opts.Width, opts.Height)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output image (.png, .webp or .bmp, default <file>.png)")
	cmd.Flags().Int("width", 0, "Image width (default from config)")
	cmd.Flags().Int("height", 0, "Image height (default from config)")
	cmd.Flags().BoolVar(&fit, "fit", false, "Move the camera so every cube is visible")
	cmd.Flags().BoolVar(&noGrid, "no-grid", false, "Hide the ground grid")
	return cmd
}

// fitCamera places the camera in front of and above the scene bounds,
// looking at their centre
func fitCamera(cam *viewer.Camera, s *scene.Scene) {
	if s.Len() == 0 {
		return
	}
	bbox := geometry.NewBoundingBox()
	for _, obj := range s.Objects() {
		b := obj.PickBounds()
		bbox.Extend(b.Min)
		bbox.Extend(b.Max)
	}

	center := bbox.Center()
	radius := bbox.Diagonal() / 2
	halfFOV := geometry.DegToRad(cam.Settings.FOV / 2)
	distance := radius/math.Sin(halfFOV) + cam.Settings.Near

	offset := geometry.NewVector3(0, 0.35, 1).Normalize().Mul(distance)
	cam.Position = center.Add(offset)
	cam.FaceTowards(center)
}

var createImageFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// writeImage encodes img into path; a partially written file is removed
func writeImage(path string, img image.Image) error {
	file, err := createImageFile(path)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}

	if err := encodeImage(file, img, path); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

func encodeImage(file io.WriteCloser, img image.Image, path string) error {
	w := bufio.NewWriter(file)
	if err := viewer.EncodeImage(w, img, path); err != nil {
		file.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to write image: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}
