// randomwalk draws a random walk on a bounded plane, a flat torus and a
// curved torus, in the terminal or in a window.
//
// Usage:
//
//	randomwalk list               - List available surfaces
//	randomwalk play <surface>     - Walk on a surface in the terminal
//	randomwalk menu               - Pick surfaces interactively
//	randomwalk window             - Walk in a desktop window
//	randomwalk export             - Render a walk to PNG without a display
//	randomwalk runs [surface]     - Show recorded walks
//	randomwalk serve              - Start SSH server for remote viewing
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for a reproducible walk
//	--db <path>       - Set database path (default: ~/.randomwalk/runs.db)
//	--config <path>   - Walk config YAML
//	--preset <name>   - Torus shape: standard, thin, spindle, fixed
//	--rate <n>        - Steps per second (0 = one step per frame)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import surfaces to register them
	_ "github.com/Tihiforever/random-walks-curved-surfaces/internal/sims/walker"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagPreset string
	flagRate   float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "randomwalk",
	Short: "Random walks on a plane, a flat torus and a curved torus",
	Long: `randomwalk animates a lattice random walk and draws its path.

The walker takes one random step in one of four directions per tick.
Three surfaces change what a step means:
  plane         - bounded square, positions are clamped to the edges
  flat-torus    - opposite edges are glued, positions wrap around
  curved-torus  - steps are angles on a torus, longer near the inner ring

Press n, f or c during a walk to switch surface without losing the path.

Available commands:
  list     - Show all surfaces
  play     - Walk on a surface in the terminal
  menu     - Interactive surface picker
  window   - Walk in a desktop window
  export   - Render a walk straight to PNG
  runs     - View recorded walks
  serve    - Start SSH server

Examples:
  randomwalk list
  randomwalk play curved-torus --preset thin
  randomwalk window --surface flat-torus
  randomwalk export --steps 200000 --out walk.png
  randomwalk serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.randomwalk/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom walk config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Torus shape: standard, thin, spindle, fixed")
	rootCmd.PersistentFlags().Float64Var(&flagRate, "rate", -1, "Steps per second (0 = one per frame, default from config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}
