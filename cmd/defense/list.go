package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available maps",
	Long:  `Shows the built-in maps and any maps found in ~/.defense/maps or --maps.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	if len(catalog) == 0 {
		fmt.Println("No maps available.")
		return nil
	}

	fmt.Println("Available maps:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, m := range catalog {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-6s  %s\n", maxIDLen, "ID", "Size", "Towers", "Name")
	fmt.Printf("  %-*s  %-7s  %-6s  %s\n", maxIDLen, "--", "----", "------", "----")

	for _, m := range catalog {
		size := fmt.Sprintf("%dx%d", m.Size.W, m.Size.H)
		name := m.Name
		if m.FilePath != "" {
			name += " (" + m.FilePath + ")"
		}
		fmt.Printf("  %-*s  %-7s  %-6d  %s\n", maxIDLen, m.ID, size, len(m.Towers), name)
	}

	fmt.Println()
	fmt.Println("Run 'defense play <id>' to defend a map.")
	return nil
}
