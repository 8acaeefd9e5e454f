package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tihiforever/random-walks-curved-surfaces/internal/platform/tui"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a surface picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a surface.
Esc or b during a walk returns to the menu; the walk is recorded.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select surface
  Tab          - Run history
  Q            - Quit

Examples:
  randomwalk menu
  randomwalk menu --fps 30
  randomwalk menu --db ./runs.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsRuns {
			goBack, runsErr := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if runsErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", runsErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from run history
		}

		preset, ok := choosePreset(menuResult.SurfaceID, cfg)
		if !ok {
			continue
		}
		if _, err := loadWalkConfig(preset); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		sim, err := registry.Create(menuResult.SurfaceID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating walk: %v\n", err)
			continue
		}

		// Fresh seed for each walk unless --seed pins it
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(sim, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running walk: %v\n", err)
		}
		if !back {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
