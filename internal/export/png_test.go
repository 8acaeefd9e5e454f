package export

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Tihiforever/random-walks-curved-surfaces/internal/walk"
)

func rightwardWalk(t *testing.T, steps int) *walk.Engine {
	t.Helper()
	e := walk.New(walk.Config{Mode: walk.ModePlane}, walk.NewSequence(0), walk.FixedExtent{W: 100, H: 100})
	e.Run(steps)
	return e
}

func TestRenderDrawsSegments(t *testing.T) {
	e := rightwardWalk(t, 20)
	img, err := Render(e, Options{Width: 200, Height: 200})
	require.NoError(t, err)
	require.Equal(t, 200, img.Bounds().Dx())
	require.Equal(t, 200, img.Bounds().Dy())

	// walk y=50 maps to image row 100; x 50..70 maps to 100..140
	r, g, b, _ := img.At(120, 100).RGBA()
	require.Greater(t, r>>8, uint32(100), "line pixel should be lit")
	require.Greater(t, g>>8, uint32(100))
	require.Greater(t, b>>8, uint32(100))

	r, g, b, _ = img.At(170, 150).RGBA()
	require.Zero(t, r|g|b, "background should stay black")
}

func TestRenderCurvedUsesGradient(t *testing.T) {
	start := walk.Position{X: 50, Y: 10}
	g := walk.DefaultGeometry()
	g.BaseStep = 0.05
	e := walk.New(walk.Config{Mode: walk.ModeCurvedTorus, Geometry: g, Start: &start,
		Angles: &walk.AngularState{Theta: 0.6, Phi: 3}}, walk.NewSequence(0), walk.FixedExtent{W: 100, H: 100})
	e.Run(40)

	img, err := Render(e, Options{Width: 100, Height: 100, LineWidth: 3})
	require.NoError(t, err)

	// theta 0.6 -> y ~ 9.5, so the path runs near row 90 and is mostly blue
	var blue, red uint32
	for x := 0; x < 100; x++ {
		r, _, b, _ := img.At(x, 90).RGBA()
		blue += b >> 8
		red += r >> 8
	}
	require.Greater(t, blue, red)
}

func TestRenderEmptyExtent(t *testing.T) {
	e := walk.New(walk.Config{Mode: walk.ModePlane}, walk.NewSequence(0), walk.FixedExtent{})
	_, err := Render(e, Options{})
	require.Error(t, err)
}

func TestImageSize(t *testing.T) {
	w, h := imageSize(walk.Size{W: 160, H: 88}, Options{})
	require.Equal(t, 800, w)
	require.Equal(t, 440, h)

	w, h = imageSize(walk.Size{W: 1024, H: 768}, Options{})
	require.Equal(t, 1024, w)
	require.Equal(t, 768, h)

	w, h = imageSize(walk.Size{W: 1024, H: 768}, Options{Width: 64, Height: 32})
	require.Equal(t, 64, w)
	require.Equal(t, 32, h)
}

func TestSavePNG(t *testing.T) {
	e := rightwardWalk(t, 5)
	path := filepath.Join(t.TempDir(), "nested", "walk.png")
	require.NoError(t, SavePNG(e, path, Options{}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 800, img.Bounds().Dx())
	require.Equal(t, 800, img.Bounds().Dy())
}

func TestFilename(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	require.Equal(t, "curved-torus_20240309_140507.png", Filename("curved-torus", ts))
}
