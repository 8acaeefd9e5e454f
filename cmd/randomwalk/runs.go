package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Tihiforever/random-walks-curved-surfaces/internal/platform/tui"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/registry"
	"github.com/Tihiforever/random-walks-curved-surfaces/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsTUI   bool
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [surface]",
	Short: "Show recorded walks",
	Long: `List the most recent walks, newest first.

Walks are recorded when they are restarted, when you go back to the menu
and when you quit. Without a surface, walks on every surface are listed.

Examples:
  randomwalk runs
  randomwalk runs curved-torus --limit 20
  randomwalk runs --tui
  randomwalk runs plane --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of walks to show")
	runsCmd.Flags().BoolVar(&flagRunsTUI, "tui", false, "Browse walks in an interactive table")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the recorded walks of the surface")
}

func runRuns(_ *cobra.Command, args []string) {
	var surfaceID string
	if len(args) == 1 {
		surfaceID = args[0]
		if !registry.Exists(surfaceID) {
			fmt.Fprintf(os.Stderr, "Error: unknown surface %q\n", surfaceID)
			fmt.Fprintln(os.Stderr, "Run 'randomwalk list' to see available surfaces.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run database: %v", err)
	}
	defer store.Close()

	if flagRunsTUI {
		cfg := terminalConfig()
		if _, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if flagRunsClear {
		if surfaceID == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a surface")
			return
		}
		if err := store.ClearRuns(surfaceID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared walks on %s\n", surfaceID)
		return
	}

	runs, err := store.RecentRuns(surfaceID, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving walks: %v\n", err)
		return
	}

	if len(runs) == 0 {
		fmt.Println("No walks recorded yet.")
		return
	}

	fmt.Printf("  %-13s  %-12s  %-12s  %11s  %8s  %s\n", "Surface", "Start", "End", "Steps", "Time", "When")
	fmt.Printf("  %-13s  %-12s  %-12s  %11s  %8s  %s\n", "-------", "-----", "---", "-----", "----", "----")

	now := time.Now()
	for _, r := range runs {
		fmt.Printf("  %-13s  %-12s  %-12s  %11s  %8s  %s\n",
			r.Surface, r.StartMode, r.FinalMode,
			humanize.Comma(int64(r.Steps)),
			r.Duration.Round(time.Second),
			humanize.RelTime(r.CreatedAt, now, "ago", "from now"))
	}

	if surfaceID != "" {
		if longest, err := store.LongestRun(surfaceID); err == nil {
			fmt.Println()
			fmt.Printf("Longest: %s steps\n", humanize.Comma(int64(longest)))
		}
	}
}
