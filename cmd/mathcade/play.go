package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-arcade/internal/platform/tui"
	"github.com/vovakirdan/math-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Shared controls:
  Arrows     - Move the cursor
  Space      - Select a cell
  Enter      - Submit or check
  0-9        - Type an answer
  H          - Hint
  P          - Pause
  R          - Restart (after a round ends)
  B/Esc      - Leave the game
  Q/Ctrl+C   - Quit
  Ctrl+S     - Save a text screenshot

Each game lists its own keys at the bottom of the screen.

Examples:
  mathcade play sumgrid
  mathcade play sumgrid --preset easy
  mathcade play numberbonds --config ./class.yaml
  mathcade play dotcards --fps 60`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'mathcade list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	if _, err := tui.Run(game, store, runtimeConfig(), ""); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
