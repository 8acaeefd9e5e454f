// Package walker registers the three walk surfaces as simulations.
// Each surface is the same engine started in a different mode; the mode keys
// switch between surfaces during a run.
package walker

import (
	"math/rand"
	"sync"
	"time"

	"github.com/Tihiforever/random-walks-curved-surfaces/internal/config"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/core"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/registry"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/walk"
)

// HUD rows reserved above and below the canvas.
const (
	hudTop    = 1
	hudBottom = 1
)

const (
	helpHint   = "n/f/c mode  p pause  r restart  e export  q quit"
	fullBanner = "[FULL] r to restart"
)

var (
	cfgMu      sync.RWMutex
	walkConfig = config.DefaultWalkConfig()
)

// SetConfig sets the walk configuration used by simulations reset after
// this call.
func SetConfig(cfg config.WalkConfig) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	walkConfig = cfg
}

func currentConfig() config.WalkConfig {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return walkConfig
}

// Sim drives one walk engine from platform ticks and rasterises its path
// onto a braille canvas.
type Sim struct {
	id    string
	title string
	start walk.Mode

	cfg    config.WalkConfig
	rc     core.RuntimeConfig
	eng    *walk.Engine
	src    *walk.RNG
	seeds  *rand.Rand // seeds for restarts
	pacer  *walk.Pacer
	canvas *core.Canvas
	area   core.Rect // screen cells covered by the canvas

	drawn     int       // last path index rasterised
	drawnMode walk.Mode // mode the canvas was drawn in
	dirty     bool      // canvas must be redrawn from scratch

	paused bool
	ticks  uint64
}

// New creates a simulation for the given surface.
func New(id, title string, start walk.Mode) *Sim {
	return &Sim{
		id:     id,
		title:  title,
		start:  start,
		canvas: core.NewCanvas(0, 0),
	}
}

// ID returns the surface identifier.
func (s *Sim) ID() string { return s.id }

// Title returns the display name.
func (s *Sim) Title() string { return s.title }

// Reset starts a new walk from the center of the screen.
func (s *Sim) Reset(rc core.RuntimeConfig) {
	s.cfg = currentConfig()
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}
	s.rc = rc
	s.seeds = rand.New(rand.NewSource(rc.Seed))
	s.pacer = walk.NewPacer(s.cfg.Sim.StepsPerSecond)
	s.layout(rc.ScreenW, rc.ScreenH)
	s.newWalk(s.start, rc.Seed)
	s.paused = false
	s.ticks = 0
}

// newWalk replaces the engine with a fresh one.
func (s *Sim) newWalk(mode walk.Mode, seed int64) {
	s.rc.Seed = seed
	s.src = walk.NewRNG(seed)
	s.eng = walk.New(s.cfg.EngineConfig(mode), s.src, walk.ExtentFunc(s.extent))
	s.pacer.Reset()
	s.dirty = true
}

// layout sizes the canvas for a w x h character screen.
func (s *Sim) layout(w, h int) {
	s.rc.ScreenW, s.rc.ScreenH = w, h
	s.area = core.NewRect(0, hudTop, w, h-hudTop-hudBottom)
	s.canvas.Resize(s.area.W, s.area.H)
	s.dirty = true
}

// extent is the engine's screen-extent provider: the configured scene size,
// or the canvas dot grid.
func (s *Sim) extent() walk.Size {
	if sz, ok := s.cfg.FixedSize(); ok {
		return sz
	}
	return walk.Size{W: float64(s.canvas.DotWidth()), H: float64(s.canvas.DotHeight())}
}

// Resize adapts the canvas to a new screen size. The walk continues; its
// wrap bounds follow the new extent from the next step on.
func (s *Sim) Resize(w, h int) {
	if w == s.rc.ScreenW && h == s.rc.ScreenH {
		return
	}
	s.layout(w, h)
}

// Step applies the frame's input and advances the walk.
func (s *Sim) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		s.newWalk(s.eng.Mode(), s.seeds.Int63())
		s.paused = false
	}

	// applied in key order, so the last of n, f, c pressed in one frame wins
	if in.Has(core.ActionPlane) {
		s.setMode(walk.ModePlane)
	}
	if in.Has(core.ActionFlatTorus) {
		s.setMode(walk.ModeFlatTorus)
	}
	if in.Has(core.ActionCurvedTorus) {
		s.setMode(walk.ModeCurvedTorus)
	}

	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}

	s.ticks++
	if !s.paused {
		s.eng.Run(s.pacer.Steps(s.frameDuration()))
	}

	return core.StepResult{State: s.State()}
}

func (s *Sim) setMode(m walk.Mode) {
	if s.eng.Mode() == m {
		return
	}
	s.eng.SetMode(m)
	// filtering and colors depend on the mode
	s.dirty = true
}

func (s *Sim) frameDuration() time.Duration {
	return time.Second / time.Duration(s.rc.TickRate)
}

// Render draws the path, the status lines and the key hint.
func (s *Sim) Render(dst *core.Screen) {
	if dst.Width() != s.rc.ScreenW || dst.Height() != s.rc.ScreenH {
		s.layout(dst.Width(), dst.Height())
	}
	s.rasterise()
	s.canvas.Blit(dst, s.area.X, s.area.Y)

	steps, mode := s.eng.Status()
	dst.DrawTextColored(0, 0, mode, core.ColorCyan)
	if s.paused {
		const paused = "[PAUSED]"
		dst.DrawTextColored(s.area.Right()-len(paused), 0, paused, core.ColorYellow)
	}
	if s.eng.Full() {
		dst.DrawTextCentered(s.area.Y+s.area.H/2, fullBanner, core.ColorYellow)
	}

	bottom := s.area.Bottom()
	dst.DrawText(0, bottom, steps)
	if x := s.area.Right() - len(helpHint); x > len(steps)+1 {
		dst.DrawTextColored(x, bottom, helpHint, core.ColorGray)
	}
}

// rasterise draws segments added since the last frame, or the whole path
// when the canvas was invalidated.
func (s *Sim) rasterise() {
	if s.dirty || s.drawnMode != s.eng.Mode() || s.drawn >= s.eng.Len() {
		s.canvas.Clear()
		s.drawn = 0
		s.drawnMode = s.eng.Mode()
		s.dirty = false
	}

	sz := s.eng.Extent()
	dw, dh := s.canvas.DotWidth(), s.canvas.DotHeight()
	if dw == 0 || dh == 0 || sz.W <= 0 || sz.H <= 0 {
		s.drawn = s.eng.Len() - 1
		return
	}

	s.eng.Segments(s.drawn+1, func(_ int, seg walk.Segment) bool {
		x0, y0 := toDots(seg.From, sz, dw, dh)
		x1, y1 := toDots(seg.To, sz, dw, dh)
		s.canvas.DrawLine(x0, y0, x1, y1, core.Color(seg.Color.Clamped().Hex()))
		return true
	})
	s.drawn = s.eng.Len() - 1
}

// toDots maps a position to canvas dots. Screen Y points up, dot rows down.
func toDots(p walk.Position, sz walk.Size, dw, dh int) (int, int) {
	x := int(p.X / sz.W * float64(dw))
	y := int((sz.H - p.Y) / sz.H * float64(dh))
	return core.Clamp(x, 0, dw-1), core.Clamp(y, 0, dh-1)
}

// State returns the current status.
func (s *Sim) State() core.SimState {
	return core.SimState{
		Steps:    s.eng.Steps(),
		Capacity: s.eng.Capacity(),
		Mode:     s.eng.Mode().String(),
		Seed:     s.rc.Seed,
		Paused:   s.paused,
		Full:     s.eng.Full(),
	}
}

// Engine exposes the walk to read-only sinks.
func (s *Sim) Engine() *walk.Engine { return s.eng }

// Register the surfaces with the registry
func init() {
	registry.Register("plane", func() registry.Simulation {
		return New("plane", "Plane", walk.ModePlane)
	})
	registry.Register("flat-torus", func() registry.Simulation {
		return New("flat-torus", "Flat Torus", walk.ModeFlatTorus)
	})
	registry.Register("curved-torus", func() registry.Simulation {
		return New("curved-torus", "Curved Torus", walk.ModeCurvedTorus)
	})
}
