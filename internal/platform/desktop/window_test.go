package desktop

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Tihiforever/random-walks-curved-surfaces/internal/config"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/storage"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/walk"
)

// pressed returns a key source reporting keys as pressed once.
func pressed(keys ...ebiten.Key) func(ebiten.Key) bool {
	down := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		down[k] = true
	}
	return func(k ebiten.Key) bool { return down[k] }
}

func noKeys(ebiten.Key) bool { return false }

func newTestWindow(t *testing.T, store *storage.Store) *Window {
	t.Helper()
	win := New(Options{
		Config:    config.DefaultWalkConfig(),
		Surface:   "plane",
		Mode:      walk.ModePlane,
		Seed:      99,
		Store:     store,
		ExportDir: t.TempDir(),
		Logger:    log.New(io.Discard),
	})
	win.justPressed = noKeys
	return win
}

func TestKeyFrame(t *testing.T) {
	in := keyFrame(pressed(ebiten.KeyC, ebiten.KeySpace))
	if len(in.Actions) != 2 {
		t.Fatalf("got %d actions, want 2", len(in.Actions))
	}
}

func TestWindowUpdateSteps(t *testing.T) {
	win := newTestWindow(t, nil)
	for i := 0; i < 25; i++ {
		if err := win.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if got := win.Engine().Steps(); got != 26 {
		t.Errorf("Steps = %d, want 26", got)
	}
	if start := win.Engine().At(0); start.X != defaultWidth/2 || start.Y != defaultHeight/2 {
		t.Errorf("walk started at %v, want window center", start)
	}
}

func TestWindowModeKeysInOneTick(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want walk.Mode
	}{
		{"n and c", []ebiten.Key{ebiten.KeyN, ebiten.KeyC}, walk.ModeCurvedTorus},
		{"n and f", []ebiten.Key{ebiten.KeyN, ebiten.KeyF}, walk.ModeFlatTorus},
		{"f and c", []ebiten.Key{ebiten.KeyF, ebiten.KeyC}, walk.ModeCurvedTorus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			win := newTestWindow(t, nil)
			win.justPressed = pressed(tt.keys...)
			win.Update() //nolint:errcheck
			if got := win.Engine().Mode(); got != tt.want {
				t.Errorf("mode = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWindowKeys(t *testing.T) {
	win := newTestWindow(t, nil)

	win.justPressed = pressed(ebiten.KeyF)
	win.Update() //nolint:errcheck
	if win.Engine().Mode() != walk.ModeFlatTorus {
		t.Errorf("mode = %v, want flat torus", win.Engine().Mode())
	}

	win.justPressed = pressed(ebiten.KeyP)
	win.Update() //nolint:errcheck
	steps := win.Engine().Steps()
	win.justPressed = noKeys
	win.Update() //nolint:errcheck
	if win.Engine().Steps() != steps {
		t.Error("paused window kept stepping")
	}

	win.justPressed = pressed(ebiten.KeyEscape)
	if err := win.Update(); err != ebiten.Termination {
		t.Errorf("Escape returned %v, want Termination", err)
	}
}

func TestWindowRestartSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	win := newTestWindow(t, store)
	for i := 0; i < 10; i++ {
		win.Update() //nolint:errcheck
	}
	win.justPressed = pressed(ebiten.KeyR)
	win.Update() //nolint:errcheck

	runs, err := store.RecentRuns("plane", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Steps != 11 || runs[0].Seed != 99 {
		t.Fatalf("unexpected runs: %+v", runs)
	}
	if got := win.Engine().Steps(); got != 2 {
		t.Errorf("Steps after restart = %d, want 2", got)
	}
}

func TestWindowLayoutMovesExtent(t *testing.T) {
	win := newTestWindow(t, nil)
	w, h := win.Layout(1024, 512)
	if w != 1024 || h != 512 {
		t.Errorf("Layout = %dx%d", w, h)
	}
	if sz := win.Engine().Extent(); sz.W != 1024 || sz.H != 512 {
		t.Errorf("Extent = %vx%v, want 1024x512", sz.W, sz.H)
	}

	cfg := config.DefaultWalkConfig()
	cfg.Scene.Width, cfg.Scene.Height = 300, 200
	fixed := New(Options{Config: cfg, Mode: walk.ModeCurvedTorus, Logger: log.New(io.Discard)})
	if w, h := fixed.Layout(1024, 512); w != 300 || h != 200 {
		t.Errorf("fixed Layout = %dx%d, want 300x200", w, h)
	}
}
