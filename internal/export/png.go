// Package export renders a walk to a PNG image: every drawable segment in
// its filter color on a black background, with the step counter in the
// bottom-left corner and the mode name in the top-left corner.
package export

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/Tihiforever/random-walks-curved-surfaces/internal/walk"
)

// minLongSide is the smallest long side of an auto-sized image, so walks
// measured in terminal dots still export at a readable size.
const minLongSide = 800

// Path is the read-only view of a walk the exporter needs.
// *walk.Engine satisfies it.
type Path interface {
	Extent() walk.Size
	Segments(from int, fn func(i int, s walk.Segment) bool)
	Status() (steps, mode string)
}

// Options controls the output image.
type Options struct {
	Width, Height int         // output size in pixels; 0 derives it from the extent
	Background    color.Color // nil means black
	LineWidth     float64     // 0 means 1.5
	FontSize      float64     // 0 means 14
}

// Render draws p into a new image.
func Render(p Path, opts Options) (image.Image, error) {
	sz := p.Extent()
	if sz.W <= 0 || sz.H <= 0 {
		return nil, fmt.Errorf("export: empty extent %vx%v", sz.W, sz.H)
	}
	w, h := imageSize(sz, opts)
	if opts.Background == nil {
		opts.Background = color.Black
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 1.5
	}
	if opts.FontSize <= 0 {
		opts.FontSize = 14
	}

	sx := float64(w) / sz.W
	sy := float64(h) / sz.H

	dc := gg.NewContext(w, h)
	dc.SetColor(opts.Background)
	dc.Clear()
	dc.SetLineWidth(opts.LineWidth)

	// walk Y points up, image Y points down
	p.Segments(1, func(_ int, s walk.Segment) bool {
		dc.SetColor(s.Color)
		dc.DrawLine(s.From.X*sx, float64(h)-s.From.Y*sy, s.To.X*sx, float64(h)-s.To.Y*sy)
		dc.Stroke()
		return true
	})

	face, err := monoFace(opts.FontSize)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)
	dc.SetColor(color.White)

	steps, mode := p.Status()
	dc.DrawString(mode, 20, 20+opts.FontSize)
	dc.DrawString(steps, 10, float64(h)-20)

	return dc.Image(), nil
}

// SavePNG renders p and writes it to path, creating parent directories.
func SavePNG(p Path, path string, opts Options) error {
	img, err := Render(p, opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: cannot create directory: %w", err)
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("export: cannot write %s: %w", path, err)
	}
	return nil
}

// imageSize picks the output size: explicit options win, otherwise the
// extent scaled up by a whole factor until its long side reaches minLongSide.
func imageSize(sz walk.Size, opts Options) (int, int) {
	if opts.Width > 0 && opts.Height > 0 {
		return opts.Width, opts.Height
	}
	scale := math.Max(1, math.Ceil(minLongSide/math.Max(sz.W, sz.H)))
	return int(math.Round(sz.W * scale)), int(math.Round(sz.H * scale))
}

func monoFace(size float64) (font.Face, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("export: failed to parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// DefaultDir returns ~/.randomwalk/exports.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("export: cannot find home directory: %w", err)
	}
	return filepath.Join(home, ".randomwalk", "exports"), nil
}

// Filename builds a timestamped file name for a surface.
func Filename(surface string, t time.Time) string {
	return fmt.Sprintf("%s_%s.png", surface, t.Format("20060102_150405"))
}

// CopyPath puts path on the system clipboard.
func CopyPath(path string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("export: clipboard unsupported on this system")
	}
	if err := clipboard.WriteAll(path); err != nil {
		return fmt.Errorf("export: clipboard: %w", err)
	}
	return nil
}
