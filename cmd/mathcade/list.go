package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)

	idW, titleW := 2, 5 // "ID", "Title"
	for _, g := range games {
		idW = max(idW, len(g.ID))
		titleW = max(titleW, len(g.Title))
	}

	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", idW, "ID", titleW, "Title", "Description")
	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", idW, "--", titleW, "-----", "-----------")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %-*s  %s\n", idW, g.ID, titleW, g.Title, g.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'mathcade play <id>' to play a game.")
}
