package viewer

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/philipparndt/gocube/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestRenderPreviewDrawsCube(t *testing.T) {
	c := NewCamera()
	c.FaceTowards(geometry.Vector3{})

	opts := DefaultPreviewOptions()
	opts.Width, opts.Height = 160, 120
	opts.Grid = false
	red := color.RGBA{R: 220, G: 40, B: 40, A: 255}

	img := RenderPreview(
		[]PreviewMesh{{Model: geometry.Identity(), Color: red}},
		c.View(), c.Projection(float64(opts.Width)/float64(opts.Height)), opts,
	)

	require.Equal(t, 160, img.Bounds().Dx())
	require.Equal(t, 120, img.Bounds().Dy())

	center := img.RGBAAt(80, 60)
	assert.Greater(t, center.R, center.G, "cube must cover the center pixel")

	// downscaling may round the flat background by one step
	corner := img.RGBAAt(1, 1)
	assert.InDelta(t, opts.Background.R, corner.R, 1)
	assert.InDelta(t, opts.Background.G, corner.G, 1)
	assert.InDelta(t, opts.Background.B, corner.B, 1)
}

func TestRenderPreviewEmptyScene(t *testing.T) {
	c := NewCamera()
	opts := DefaultPreviewOptions()
	opts.Width, opts.Height = 64, 48
	opts.Supersample = 1

	img := RenderPreview(nil, c.View(), c.Projection(64.0/48.0), opts)

	// camera looks over the grid towards the horizon; the top row is sky
	assert.Equal(t, opts.Background, img.RGBAAt(10, 0))
}

func TestEncodeImage(t *testing.T) {
	opts := DefaultPreviewOptions()
	opts.Width, opts.Height = 32, 24
	img := RenderPreview(nil, NewCamera().View(), NewCamera().Projection(32.0/24.0), opts)

	var buf bytes.Buffer
	require.NoError(t, EncodeImage(&buf, img, "preview.png"))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())

	buf.Reset()
	require.NoError(t, EncodeImage(&buf, img, "preview.WEBP"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("RIFF")))

	buf.Reset()
	require.NoError(t, EncodeImage(&buf, img, "preview.bmp"))
	decoded, err = bmp.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())

	assert.Error(t, EncodeImage(&buf, img, "preview.tiff"))
}
