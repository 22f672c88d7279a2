package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/boxsim/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenes",
	Long:  `Shows a list of all scenes registered in boxsim with their initial body count.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	scenes := registry.Survey(runtimeConfig())

	if len(scenes) == 0 {
		fmt.Println("No scenes available.")
		return
	}

	fmt.Println("Available scenes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range scenes {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %6s  %s\n", maxIDLen, "ID", "Bodies", "Title")
	fmt.Printf("  %-*s  %6s  %s\n", maxIDLen, "--", "------", "-----")

	for _, s := range scenes {
		fmt.Printf("  %-*s  %6d  %s\n", maxIDLen, s.ID, s.Bodies, titleStyle.Render(s.Title))
	}

	fmt.Println()
	fmt.Println("Run 'boxsim run <id>' to run a scene.")
}
