package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRun(surface string, steps int) Run {
	return Run{
		Surface:   surface,
		StartMode: surface,
		FinalMode: "plane",
		Seed:      42,
		Steps:     steps,
		Capacity:  1_000_000,
		Width:     160,
		Height:    88,
		FinalX:    12.5,
		FinalY:    80,
		Duration:  1500 * time.Millisecond,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, steps := range []int{100, 50, 200} {
		if _, err := store.SaveRun(sampleRun("curved-torus", steps)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(sampleRun("plane", 500)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.RecentRuns("curved-torus", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Newest first
	if runs[0].Steps != 200 || runs[1].Steps != 50 || runs[2].Steps != 100 {
		t.Errorf("Unexpected order: %d, %d, %d", runs[0].Steps, runs[1].Steps, runs[2].Steps)
	}

	got := runs[0]
	want := sampleRun("curved-torus", 200)
	if got.FinalMode != want.FinalMode || got.Seed != want.Seed || got.Capacity != want.Capacity {
		t.Errorf("Run fields mismatch: %+v", got)
	}
	if got.Width != want.Width || got.Height != want.Height || got.FinalX != want.FinalX || got.FinalY != want.FinalY {
		t.Errorf("Run geometry mismatch: %+v", got)
	}
	if got.Duration != want.Duration {
		t.Errorf("Duration = %v, want %v", got.Duration, want.Duration)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns(all) failed: %v", err)
	}
	if len(all) != 4 || all[0].Surface != "plane" {
		t.Errorf("Expected 4 runs starting with plane, got %d", len(all))
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveRun(sampleRun("flat-torus", i+1)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns("flat-torus", 5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(runs))
	}

	// Zero limit falls back to 10
	runs, err = store.RecentRuns("flat-torus", 0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 10 {
		t.Errorf("Expected 10 runs, got %d", len(runs))
	}
}

func TestStoreLongestRun(t *testing.T) {
	store := openTestStore(t)

	steps, err := store.LongestRun("plane")
	if err != nil {
		t.Fatalf("LongestRun() failed: %v", err)
	}
	if steps != 0 {
		t.Errorf("Expected 0 for empty store, got %d", steps)
	}

	for _, s := range []int{300, 9000, 12} {
		store.SaveRun(sampleRun("plane", s)) //nolint:errcheck
	}

	steps, err = store.LongestRun("plane")
	if err != nil {
		t.Fatalf("LongestRun() failed: %v", err)
	}
	if steps != 9000 {
		t.Errorf("Expected 9000, got %d", steps)
	}
}

func TestStoreClearRunsAndCount(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(sampleRun("plane", 10))        //nolint:errcheck
	store.SaveRun(sampleRun("plane", 20))        //nolint:errcheck
	store.SaveRun(sampleRun("curved-torus", 30)) //nolint:errcheck

	n, err := store.RunCount("")
	if err != nil || n != 3 {
		t.Fatalf("RunCount(all) = %d, %v; want 3", n, err)
	}

	if err := store.ClearRuns("plane"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	n, err = store.RunCount("plane")
	if err != nil || n != 0 {
		t.Errorf("RunCount(plane) = %d, %v; want 0", n, err)
	}
	n, err = store.RunCount("curved-torus")
	if err != nil || n != 1 {
		t.Errorf("RunCount(curved-torus) = %d, %v; want 1", n, err)
	}
}

func TestStoreRejectsAnonymousRun(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{Steps: 5}); err == nil {
		t.Error("Expected error for run without surface")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
