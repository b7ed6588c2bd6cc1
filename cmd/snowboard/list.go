package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snowboard/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows a list of all registered riding modes.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID))
		maxTitleLen = max(maxTitleLen, len(m.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Description")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----------")

	for _, m := range modes {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, m.ID, maxTitleLen, m.Title, m.Description)
	}

	fmt.Println()
	fmt.Println("Run 'snowboard play <id>' to ride.")
}
