// Package desktop runs the walk in a native window through Ebiten. The
// window size is the walk extent, so resizing the window moves the wrap
// bounds the same way a terminal resize does.
package desktop

import (
	"fmt"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Tihiforever/random-walks-curved-surfaces/internal/config"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/core"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/export"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/storage"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/walk"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
	statusTTL     = 4 * time.Second
)

// Options configures a window.
type Options struct {
	Config    config.WalkConfig
	Surface   string    // surface id recorded with runs
	Mode      walk.Mode // starting mode
	Seed      int64     // 0 means time-based
	TPS       int       // updates per second; 0 means 60
	Store     *storage.Store
	ExportDir string // "" means export.DefaultDir()
	Logger    *log.Logger
}

// Window is the ebiten.Game driving one walk.
type Window struct {
	opts   Options
	logger *log.Logger

	eng   *walk.Engine
	seed  int64
	seeds *rand.Rand
	pacer *walk.Pacer

	w, h      int
	layer     *ebiten.Image // persistent path drawing
	drawn     int
	drawnMode walk.Mode
	dirty     bool

	paused    bool
	started   time.Time
	startMode walk.Mode

	status   string
	statusAt time.Time

	justPressed func(ebiten.Key) bool
}

// New creates a window for opts. It does not open anything until Run.
func New(opts Options) *Window {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TPS <= 0 {
		opts.TPS = ebiten.DefaultTPS
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "randomwalk-window"})
	}

	win := &Window{
		opts:        opts,
		logger:      opts.Logger,
		seeds:       rand.New(rand.NewSource(opts.Seed)),
		pacer:       walk.NewPacer(opts.Config.Sim.StepsPerSecond),
		w:           defaultWidth,
		h:           defaultHeight,
		justPressed: inpututil.IsKeyJustPressed,
	}
	if sz, ok := opts.Config.FixedSize(); ok {
		win.w, win.h = int(sz.W), int(sz.H)
	}
	win.newWalk(opts.Mode, opts.Seed)
	return win
}

// newWalk replaces the engine with a fresh one.
func (win *Window) newWalk(mode walk.Mode, seed int64) {
	win.seed = seed
	win.eng = walk.New(win.opts.Config.EngineConfig(mode), walk.NewRNG(seed), walk.ExtentFunc(win.extent))
	win.pacer.Reset()
	win.started = time.Now()
	win.startMode = mode
	win.paused = false
	win.dirty = true
}

// extent is the configured scene size, or the window size.
func (win *Window) extent() walk.Size {
	if sz, ok := win.opts.Config.FixedSize(); ok {
		return sz
	}
	return walk.Size{W: float64(win.w), H: float64(win.h)}
}

// Engine returns the running walk.
func (win *Window) Engine() *walk.Engine { return win.eng }

// Update handles keys and advances the walk by this tick's share of steps.
func (win *Window) Update() error {
	in := keyFrame(win.justPressed)

	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if in.Has(core.ActionRestart) {
		win.saveRun()
		win.newWalk(win.eng.Mode(), win.seeds.Int63())
	}

	// N, F, C in that order: the last one pressed in a tick wins
	for _, k := range []struct {
		action core.Action
		mode   walk.Mode
	}{
		{core.ActionPlane, walk.ModePlane},
		{core.ActionFlatTorus, walk.ModeFlatTorus},
		{core.ActionCurvedTorus, walk.ModeCurvedTorus},
	} {
		if in.Has(k.action) {
			win.setMode(k.mode)
		}
	}

	if in.Has(core.ActionPause) {
		win.paused = !win.paused
	}
	if in.Has(core.ActionExport) {
		win.exportPNG()
	}

	if !win.paused {
		win.eng.Run(win.pacer.Steps(time.Second / time.Duration(win.opts.TPS)))
	}
	if win.status != "" && time.Since(win.statusAt) > statusTTL {
		win.status = ""
	}
	return nil
}

func (win *Window) setMode(m walk.Mode) {
	if win.eng.Mode() == m {
		return
	}
	win.eng.SetMode(m)
	win.dirty = true
	ebiten.SetWindowTitle(title(m))
}

// Draw renders the path layer and the status text.
func (win *Window) Draw(screen *ebiten.Image) {
	win.rasterise()

	screen.Fill(color.Black)
	screen.DrawImage(win.layer, nil)

	steps, mode := win.eng.Status()
	ebitenutil.DebugPrintAt(screen, mode, 20, 8)
	ebitenutil.DebugPrintAt(screen, steps, 10, win.h-28)

	var flags string
	if win.paused {
		flags = "[PAUSED]"
	}
	if win.eng.Full() {
		flags += "[FULL]"
	}
	if flags != "" {
		ebitenutil.DebugPrintAt(screen, flags, win.w-8*len(flags)-10, 8)
	}
	if win.status != "" {
		ebitenutil.DebugPrintAt(screen, win.status, 10, win.h-48)
	}
}

// rasterise draws segments added since the last frame onto the layer, or
// the whole path after a resize, mode change or restart.
func (win *Window) rasterise() {
	if win.layer == nil || win.layer.Bounds().Dx() != win.w || win.layer.Bounds().Dy() != win.h {
		if win.layer != nil {
			win.layer.Deallocate()
		}
		win.layer = ebiten.NewImage(win.w, win.h)
		win.dirty = true
	}
	if win.dirty || win.drawnMode != win.eng.Mode() || win.drawn >= win.eng.Len() {
		win.layer.Clear()
		win.drawn = 0
		win.drawnMode = win.eng.Mode()
		win.dirty = false
	}

	sz := win.eng.Extent()
	if sz.W <= 0 || sz.H <= 0 {
		return
	}
	win.eng.Segments(win.drawn+1, func(_ int, s walk.Segment) bool {
		x0, y0 := toPixel(s.From, sz, win.w, win.h)
		x1, y1 := toPixel(s.To, sz, win.w, win.h)
		drawLine(win.layer, win.w, win.h, x0, y0, x1, y1, s.Color)
		return true
	})
	win.drawn = win.eng.Len() - 1
}

// Layout follows the window size unless the scene size is fixed, in which
// case Ebiten scales the fixed scene into the window.
func (win *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if sz, ok := win.opts.Config.FixedSize(); ok {
		return int(sz.W), int(sz.H)
	}
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != win.w || outsideHeight != win.h) {
		win.w, win.h = outsideWidth, outsideHeight
		win.dirty = true
	}
	return win.w, win.h
}

func (win *Window) exportPNG() {
	dir := win.opts.ExportDir
	if dir == "" {
		d, err := export.DefaultDir()
		if err != nil {
			win.setStatus("export failed: " + err.Error())
			return
		}
		dir = d
	}
	path := filepath.Join(dir, export.Filename(win.opts.Surface, time.Now()))
	if err := export.SavePNG(win.eng, path, export.Options{}); err != nil {
		win.logger.Error("export failed", "error", err)
		win.setStatus("export failed")
		return
	}
	win.logger.Info("exported", "path", path, "steps", win.eng.Steps())
	msg := "saved " + path
	if err := export.CopyPath(path); err == nil {
		msg += " (path copied)"
	}
	win.setStatus(msg)
}

func (win *Window) setStatus(msg string) {
	win.status = msg
	win.statusAt = time.Now()
}

// buildRun summarises the current walk.
func (win *Window) buildRun() storage.Run {
	sz := win.eng.Extent()
	pos := win.eng.Position()
	return storage.Run{
		Surface:   win.opts.Surface,
		StartMode: win.startMode.String(),
		FinalMode: win.eng.Mode().String(),
		Seed:      win.seed,
		Steps:     win.eng.Steps(),
		Capacity:  win.eng.Capacity(),
		Width:     sz.W,
		Height:    sz.H,
		FinalX:    pos.X,
		FinalY:    pos.Y,
		Duration:  time.Since(win.started),
	}
}

// saveRun records the current walk if it moved.
func (win *Window) saveRun() {
	if win.opts.Store == nil || win.eng.Steps() <= 1 {
		return
	}
	if _, err := win.opts.Store.SaveRun(win.buildRun()); err != nil {
		win.logger.Warn("could not save run", "error", err)
	}
}

func title(m walk.Mode) string {
	return fmt.Sprintf("Random Walk - %s", m.Label())
}

// Run opens the window and blocks until it is closed. The walk is recorded
// when the window closes.
func Run(opts Options) error {
	win := New(opts)

	ebiten.SetWindowSize(win.w, win.h)
	ebiten.SetWindowTitle(title(opts.Mode))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(win.opts.TPS)

	err := ebiten.RunGame(win)
	win.saveRun()
	if err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
