package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tihiforever/random-walks-curved-surfaces/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available surfaces",
	Long:  `Shows a list of all surfaces a walk can start on.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	surfaces := registry.List()

	if len(surfaces) == 0 {
		fmt.Println("No surfaces available.")
		return
	}

	fmt.Println("Available surfaces:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, s := range surfaces {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, s := range surfaces {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'randomwalk play <id>' to start a walk.")
}
