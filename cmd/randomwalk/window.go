package main

import (
	"github.com/spf13/cobra"

	"github.com/Tihiforever/random-walks-curved-surfaces/internal/config"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/platform/desktop"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/walk"
)

var (
	flagWindowSurface string
	flagExportDir     string
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Walk in a desktop window",
	Long: `Open a window and walk in it, one pixel per screen unit.

The window size is the walk area: resizing the window moves the edges of the
plane and the wrap lines of both tori. Set scene.width and scene.height in
the config to pin the area instead.

Controls:
  N / F / C   - Switch to plane / flat torus / curved torus
  P / Space   - Pause
  R           - Restart with a new seed
  E           - Export the path to PNG
  Esc / Q     - Close

Examples:
  randomwalk window
  randomwalk window --surface plane --rate 2000
  randomwalk window --preset thin --seed 42`,
	Run: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagWindowSurface, "surface", "", "Starting surface (default: scene.initial_mode)")
	windowCmd.Flags().StringVar(&flagExportDir, "export-dir", "", "Directory for PNG exports (default: ~/.randomwalk/exports)")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := loadWalkConfig(config.GeometryPreset(flagPreset))
	if err != nil {
		fail("%v", err)
	}

	mode := cfg.InitialMode()
	if flagWindowSurface != "" {
		if mode, err = walk.ParseMode(flagWindowSurface); err != nil {
			fail("%v", err)
		}
	}

	store := openStore()
	runErr := desktop.Run(desktop.Options{
		Config:    cfg,
		Surface:   mode.String(),
		Mode:      mode,
		Seed:      flagSeed,
		TPS:       flagFPS,
		Store:     store,
		ExportDir: flagExportDir,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("%v", runErr)
	}
}
