package walker

import (
	"math"
	"strings"
	"testing"

	"github.com/Tihiforever/random-walks-curved-surfaces/internal/config"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/core"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/registry"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/walk"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  40,
		ScreenH:  12,
		TickRate: 60,
		Seed:     seed,
	}
}

// withWalkConfig installs cfg for the duration of the test.
func withWalkConfig(t *testing.T, cfg config.WalkConfig) {
	t.Helper()
	SetConfig(cfg)
	t.Cleanup(func() { SetConfig(config.DefaultWalkConfig()) })
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// rowOf returns row y of the screen as plain text.
func rowOf(s *core.Screen, y int) string {
	return strings.Split(s.String(), "\n")[y]
}

func TestSurfacesRegistered(t *testing.T) {
	want := map[string]walk.Mode{
		"plane":        walk.ModePlane,
		"flat-torus":   walk.ModeFlatTorus,
		"curved-torus": walk.ModeCurvedTorus,
	}
	for id, mode := range want {
		sim, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		sim.Reset(testConfig(1))
		if got := sim.Engine().Mode(); got != mode {
			t.Errorf("%s starts in %v, want %v", id, got, mode)
		}
		if sim.State().Steps != 1 {
			t.Errorf("%s: fresh walk has %d steps, want 1", id, sim.State().Steps)
		}
	}
}

func TestSimDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := New("curved-torus", "Curved Torus", walk.ModeCurvedTorus)
		s.Reset(testConfig(12345))
		for i := 0; i < 300; i++ {
			switch i {
			case 100:
				s.Step(frame(core.ActionFlatTorus))
			case 200:
				s.Step(frame(core.ActionPlane))
			default:
				s.Step(frame())
			}
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("Determinism failed:\n%+v\n%+v", a, b)
	}
	if a.Steps != 301 || a.Draws != 300 {
		t.Errorf("steps=%d draws=%d, want 301 and 300", a.Steps, a.Draws)
	}
	if a.Mode != "plane" {
		t.Errorf("mode = %q, want plane", a.Mode)
	}
}

func TestSimStopsAtCapacity(t *testing.T) {
	cfg := config.DefaultWalkConfig()
	cfg.Path.Capacity = 10
	withWalkConfig(t, cfg)

	s := New("plane", "Plane", walk.ModePlane)
	s.Reset(testConfig(7))
	var st core.SimState
	for i := 0; i < 50; i++ {
		st = s.Step(frame()).State
	}
	if st.Steps != 10 || !st.Full {
		t.Errorf("state = %+v, want 10 steps and full", st)
	}
	if d := s.Snapshot().Draws; d != 9 {
		t.Errorf("draws = %d, want 9", d)
	}
}

func TestSimPause(t *testing.T) {
	s := New("plane", "Plane", walk.ModePlane)
	s.Reset(testConfig(3))
	s.Step(frame())

	s.Step(frame(core.ActionPause))
	paused := s.State()
	if !paused.Paused {
		t.Fatal("expected paused state")
	}
	for i := 0; i < 10; i++ {
		s.Step(frame())
	}
	if s.State().Steps != paused.Steps {
		t.Errorf("paused walk moved: %d -> %d", paused.Steps, s.State().Steps)
	}

	s.Step(frame(core.ActionPause))
	if s.State().Steps != paused.Steps+1 {
		t.Errorf("resumed walk has %d steps, want %d", s.State().Steps, paused.Steps+1)
	}
}

func TestSimRestartKeepsMode(t *testing.T) {
	s := New("plane", "Plane", walk.ModePlane)
	s.Reset(testConfig(5))
	for i := 0; i < 20; i++ {
		s.Step(frame())
	}
	s.Step(frame(core.ActionFlatTorus))
	seed := s.State().Seed

	st := s.Step(frame(core.ActionRestart)).State
	if st.Steps != 2 {
		t.Errorf("steps after restart = %d, want 2", st.Steps)
	}
	if st.Mode != "flat-torus" {
		t.Errorf("mode after restart = %q, want flat-torus", st.Mode)
	}
	if st.Seed == seed {
		t.Error("restart reused the previous seed")
	}
}

func TestSimModeSwitchKeepsPath(t *testing.T) {
	s := New("curved-torus", "Curved Torus", walk.ModeCurvedTorus)
	s.Reset(testConfig(9))
	for i := 0; i < 40; i++ {
		s.Step(frame())
	}
	before := s.Snapshot()

	s.Step(frame(core.ActionPlane))
	after := s.Snapshot()
	if after.Steps != before.Steps+1 {
		t.Errorf("steps %d -> %d, want one more", before.Steps, after.Steps)
	}
	if after.Theta != before.Theta || after.Phi != before.Phi {
		t.Error("plane step changed the torus angles")
	}
	if after.Mode != "plane" {
		t.Errorf("mode = %q", after.Mode)
	}
}

func TestSimStepsPerSecond(t *testing.T) {
	cfg := config.DefaultWalkConfig()
	cfg.Sim.StepsPerSecond = 100
	withWalkConfig(t, cfg)

	s := New("plane", "Plane", walk.ModePlane)
	rc := testConfig(1)
	rc.TickRate = 50
	s.Reset(rc)
	for i := 0; i < 10; i++ {
		s.Step(frame())
	}
	if got := s.State().Steps; got != 21 {
		t.Errorf("steps = %d, want 21", got)
	}
}

func TestSimRender(t *testing.T) {
	s := New("curved-torus", "Curved Torus", walk.ModeCurvedTorus)
	s.Reset(testConfig(11))
	s.Step(frame(core.ActionPlane))
	for i := 0; i < 200; i++ {
		s.Step(frame())
	}

	scr := core.NewScreen(40, 12)
	s.Render(scr)

	if top := rowOf(scr, 0); !strings.HasPrefix(top, "Mode: Normal Walk (N)") {
		t.Errorf("top row = %q", top)
	}
	if bottom := rowOf(scr, 11); !strings.HasPrefix(bottom, "Steps: 202") {
		t.Errorf("bottom row = %q", bottom)
	}

	var braille int
	for y := 1; y < 11; y++ {
		for _, r := range rowOf(scr, y) {
			if r > 0x2800 && r <= 0x28FF {
				braille++
			}
		}
	}
	if braille == 0 {
		t.Error("path was not drawn")
	}
}

func TestSimRenderIndicators(t *testing.T) {
	cfg := config.DefaultWalkConfig()
	cfg.Path.Capacity = 2
	withWalkConfig(t, cfg)

	s := New("plane", "Plane", walk.ModePlane)
	s.Reset(testConfig(1))
	s.Step(frame())
	s.Step(frame(core.ActionPause))

	scr := core.NewScreen(40, 12)
	s.Render(scr)
	if top := rowOf(scr, 0); !strings.HasSuffix(top, "[PAUSED]") {
		t.Errorf("top row = %q", top)
	}
	// the canvas spans rows 1..10, the banner sits on its middle row
	if mid := rowOf(scr, 6); !strings.Contains(mid, fullBanner) {
		t.Errorf("row 6 = %q, want the capacity banner", mid)
	}
	if strings.Contains(rowOf(scr, 5), "FULL") || strings.Contains(rowOf(scr, 0), "FULL") {
		t.Error("capacity banner drawn more than once")
	}
}

func TestSimRenderGradientColors(t *testing.T) {
	s := New("curved-torus", "Curved Torus", walk.ModeCurvedTorus)
	s.Reset(testConfig(4))
	for i := 0; i < 100; i++ {
		s.Step(frame())
	}

	scr := core.NewScreen(40, 12)
	s.Render(scr)

	var painted int
	for y := 1; y < 11; y++ {
		for x := 0; x < 40; x++ {
			cell := scr.GetCell(x, y)
			if cell.Rune <= 0x2800 || cell.Rune > 0x28FF {
				continue
			}
			painted++
			// blue to red blend: no green, hex form for lipgloss
			if c := string(cell.Color); len(c) != 7 || c[0] != '#' || c[3:5] != "00" {
				t.Errorf("cell (%d, %d) color = %q, want a #rr00bb gradient hex", x, y, c)
			}
		}
	}
	if painted == 0 {
		t.Fatal("path was not drawn")
	}
}

func TestSimLastModeKeyWins(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
		want    string
	}{
		{"n then c", []core.Action{core.ActionPlane, core.ActionCurvedTorus}, "curved-torus"},
		{"n then f", []core.Action{core.ActionPlane, core.ActionFlatTorus}, "flat-torus"},
		{"all three", []core.Action{core.ActionCurvedTorus, core.ActionFlatTorus, core.ActionPlane}, "curved-torus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("flat-torus", "Flat Torus", walk.ModeFlatTorus)
			s.Reset(testConfig(6))
			if got := s.Step(frame(tt.actions...)).State.Mode; got != tt.want {
				t.Errorf("mode = %q, want %q", got, tt.want)
			}
		})
	}
}

// drawnSegments lists the path indices the engine currently draws.
func drawnSegments(s *Sim) map[int]bool {
	kept := make(map[int]bool)
	s.Engine().Segments(1, func(i int, _ walk.Segment) bool {
		kept[i] = true
		return true
	})
	return kept
}

func TestSimModeSwitchRefiltersPath(t *testing.T) {
	// On a 100x100 scene with 40-unit steps, every flat-torus move is either
	// a 40-unit step or a 60-unit wrap. The planar rule (limit 80) keeps
	// both; the curved rule (limit 50) drops the wraps.
	cfg := config.DefaultWalkConfig()
	cfg.Scene.Width, cfg.Scene.Height = 100, 100
	cfg.Geometry.StepSize = 40
	withWalkConfig(t, cfg)

	s := New("flat-torus", "Flat Torus", walk.ModeFlatTorus)
	s.Reset(testConfig(21))
	for i := 0; i < 200; i++ {
		s.Step(frame())
	}
	scr := core.NewScreen(40, 12)
	s.Render(scr)

	eng := s.Engine()
	var wraps []int
	for i := 1; i < eng.Len(); i++ {
		a, b := eng.At(i-1), eng.At(i)
		if math.Abs(b.X-a.X) > 50 || math.Abs(b.Y-a.Y) > 50 {
			wraps = append(wraps, i)
		}
	}
	if len(wraps) == 0 {
		t.Fatal("walk never wrapped; pick another seed")
	}
	if got := len(drawnSegments(s)); got != eng.Len()-1 {
		t.Fatalf("flat torus draws %d segments, want all %d", got, eng.Len()-1)
	}

	// pause first so the switch adds no step
	s.Step(frame(core.ActionPause))
	s.Step(frame(core.ActionCurvedTorus))
	s.Render(scr)

	kept := drawnSegments(s)
	if len(kept) != eng.Len()-1-len(wraps) {
		t.Errorf("curved torus draws %d segments, want %d", len(kept), eng.Len()-1-len(wraps))
	}
	for _, i := range wraps {
		if kept[i] {
			t.Errorf("wrap segment %d still drawn on the curved torus", i)
		}
	}
	if s.drawnMode != walk.ModeCurvedTorus || s.drawn != eng.Len()-1 {
		t.Errorf("canvas not redrawn: mode %v, drawn %d", s.drawnMode, s.drawn)
	}

	s.Step(frame(core.ActionPlane))
	s.Render(scr)
	if got := len(drawnSegments(s)); got != eng.Len()-1 {
		t.Errorf("plane draws %d segments after switching back, want %d", got, eng.Len()-1)
	}
	if s.drawnMode != walk.ModePlane {
		t.Errorf("canvas mode = %v after switching to plane", s.drawnMode)
	}
}

func TestSimResizeKeepsWalk(t *testing.T) {
	s := New("flat-torus", "Flat Torus", walk.ModeFlatTorus)
	s.Reset(testConfig(2))
	for i := 0; i < 30; i++ {
		s.Step(frame())
	}
	steps := s.State().Steps

	s.Resize(20, 8)
	if s.State().Steps != steps {
		t.Errorf("resize changed steps: %d -> %d", steps, s.State().Steps)
	}
	if got := s.Engine().Extent(); got != (walk.Size{W: 40, H: 24}) {
		t.Errorf("extent after resize = %+v, want 40x24 dots", got)
	}

	s.Step(frame())
	p := s.Engine().Position()
	if p.X < 0 || p.X > 40 || p.Y < 0 || p.Y > 24 {
		t.Errorf("position %+v outside the resized extent", p)
	}
}

func TestSimFixedScene(t *testing.T) {
	cfg := config.DefaultWalkConfig()
	cfg.Scene.Width, cfg.Scene.Height = 800, 600
	withWalkConfig(t, cfg)

	s := New("plane", "Plane", walk.ModePlane)
	s.Reset(testConfig(1))
	if p := s.Engine().At(0); p != (walk.Position{X: 400, Y: 300}) {
		t.Errorf("seed = %+v, want scene center", p)
	}
}
