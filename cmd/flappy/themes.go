package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/assets"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List all available themes",
	Long:  `Shows the visual themes built into flappy. Press T in game to cycle them.`,
	Args:  cobra.NoArgs,
	Run:   runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	themes := assets.List()

	if len(themes) == 0 {
		fmt.Println("No themes available.")
		return
	}

	fmt.Println("Available themes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, t := range themes {
		if len(t.ID) > maxIDLen {
			maxIDLen = len(t.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, t := range themes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, t.ID, t.Title)
	}

	fmt.Println()
	fmt.Println("Run 'flappy play --theme <id>' to start with a theme.")
}
