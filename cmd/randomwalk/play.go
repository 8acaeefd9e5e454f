package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tihiforever/random-walks-curved-surfaces/internal/config"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/core"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/platform/tui"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <surface>",
	Short: "Walk on a surface in the terminal",
	Long: `Start a walk on the specified surface.

The path is drawn with braille dots, two columns and four rows per cell.

Controls:
  N / F / C  - Switch to plane / flat torus / curved torus
  P / Space  - Pause
  R          - Restart with a new seed
  E          - Export the path to PNG
  ?          - Show all keys
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Torus shapes (--preset):
  standard   - R 3, r 1
  thin       - R 5, r 0.5
  spindle    - R 1, r 2
  fixed      - keep the radii from the config file

Examples:
  randomwalk play plane
  randomwalk play curved-torus --preset spindle
  randomwalk play flat-torus --rate 500
  randomwalk play curved-torus --config ./my-walk.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	surfaceID := args[0]

	if !registry.Exists(surfaceID) {
		fmt.Fprintf(os.Stderr, "Error: unknown surface %q\n", surfaceID)
		fmt.Fprintln(os.Stderr, "Run 'randomwalk list' to see available surfaces.")
		os.Exit(1)
	}

	cfg := terminalConfig()

	preset, ok := choosePreset(surfaceID, cfg)
	if !ok {
		return
	}
	if _, err := loadWalkConfig(preset); err != nil {
		fail("%v", err)
	}

	sim, err := registry.Create(surfaceID)
	if err != nil {
		fail("creating walk: %v", err)
	}

	store := openStore()
	_, runErr := tui.Run(sim, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running walk: %v", runErr)
	}
}

// choosePreset returns --preset, or asks for a shape when a curved walk
// starts without one. ok is false if the user backed out.
func choosePreset(surfaceID string, cfg core.RuntimeConfig) (preset config.GeometryPreset, ok bool) {
	if flagPreset != "" || surfaceID != "curved-torus" {
		return config.GeometryPreset(flagPreset), true
	}
	preset, err := tui.RunPresetSelector(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return "", false
	}
	return preset, preset != ""
}
