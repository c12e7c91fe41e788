package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/philipparndt/gocube/pkg/geometry"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// PreviewMesh is one cube to rasterize
type PreviewMesh struct {
	Model    geometry.Mat4
	Color    color.RGBA
	Outlined bool
}

// PreviewOptions controls the software preview renderer
type PreviewOptions struct {
	Width       int
	Height      int
	Supersample int // render at this multiple and downscale
	Background  color.RGBA
	Grid        bool
	GridSize    int // half extent of the ground grid in units
}

// DefaultPreviewOptions returns a 800x600 preview with a ground grid
func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{
		Width:       800,
		Height:      600,
		Supersample: 2,
		Background:  color.RGBA{R: 30, G: 30, B: 36, A: 255},
		Grid:        true,
		GridSize:    10,
	}
}

var (
	lightDir     = geometry.NewVector3(0.4, 1.0, 0.6).Normalize()
	gridColor    = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	outlineColor = color.RGBA{R: 255, G: 200, B: 40, A: 255}
)

const ambient = 0.35

// RenderPreview rasterizes the meshes from the given camera matrices. The
// view matrix must come from geometry.LookFrom.
func RenderPreview(meshes []PreviewMesh, view, proj geometry.Mat4, opts PreviewOptions) *image.RGBA {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = fallbackWidth, fallbackHeight
	}
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}

	w, h := opts.Width*ss, opts.Height*ss
	vp := Viewport{Width: float64(w), Height: float64(h)}
	viewProj := proj.Mul(view)
	eye := view.CameraPosition()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: opts.Background}, image.Point{}, draw.Src)

	zbuffer := make([]float64, w*h)
	for i := range zbuffer {
		zbuffer[i] = math.Inf(1)
	}

	if opts.Grid {
		n := float64(opts.GridSize)
		for i := -opts.GridSize; i <= opts.GridSize; i++ {
			f := float64(i)
			drawSegment(img, viewProj, vp, geometry.NewVector3(f, 0, -n), geometry.NewVector3(f, 0, n), gridColor)
			drawSegment(img, viewProj, vp, geometry.NewVector3(-n, 0, f), geometry.NewVector3(n, 0, f), gridColor)
		}
	}

	for _, mesh := range meshes {
		for _, tri := range geometry.CubeTriangles(mesh.Model) {
			// Back-face culling
			if tri.Normal.Dot(tri.Center().Sub(eye)) >= 0 {
				continue
			}

			var v [3][3]float64
			visible := true
			for i, p := range []geometry.Vector3{tri.V1, tri.V2, tri.V3} {
				x, y, z, ok := projectPoint(p, viewProj, vp)
				if !ok {
					visible = false
					break
				}
				v[i] = [3]float64{x, y, z}
			}
			if !visible {
				continue
			}

			fillTriangleWithDepth(img, zbuffer, v, shade(mesh.Color, tri.Normal))
		}

		if mesh.Outlined {
			for _, e := range geometry.CubeEdges(mesh.Model) {
				drawSegment(img, viewProj, vp, e[0], e[1], outlineColor)
			}
		}
	}

	if ss == 1 {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// shade applies Lambert lighting with a fixed directional light
func shade(base color.RGBA, normal geometry.Vector3) color.RGBA {
	intensity := ambient + (1-ambient)*math.Max(0, normal.Dot(lightDir))
	return color.RGBA{
		R: uint8(math.Min(255, float64(base.R)*intensity)),
		G: uint8(math.Min(255, float64(base.G)*intensity)),
		B: uint8(math.Min(255, float64(base.B)*intensity)),
		A: base.A,
	}
}

// drawSegment draws a world-space segment, skipping it when either end is
// behind the camera or far outside the image
func drawSegment(img *image.RGBA, viewProj geometry.Mat4, vp Viewport, a, b geometry.Vector3, col color.RGBA) {
	x1, y1, _, ok1 := projectPoint(a, viewProj, vp)
	x2, y2, _, ok2 := projectPoint(b, viewProj, vp)
	if !ok1 || !ok2 {
		return
	}

	limit := 4 * math.Max(vp.Width, vp.Height)
	for _, c := range []float64{x1, y1, x2, y2} {
		if math.Abs(c) > limit {
			return
		}
	}

	drawLine(img, int(x1), int(y1), int(x2), int(y2), col)
}

// EncodeImage writes img in the format implied by the file name extension
// (.png, .webp or .bmp)
func EncodeImage(w io.Writer, img image.Image, fileName string) error {
	switch ext := strings.ToLower(filepath.Ext(fileName)); ext {
	case ".png", "":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("PNG encode: %w", err)
		}
	case ".webp":
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
	case ".bmp":
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("BMP encode: %w", err)
		}
	default:
		return fmt.Errorf("unsupported image format %q", ext)
	}
	return nil
}
