package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-arcade/internal/config"
	"github.com/vovakirdan/math-arcade/internal/platform/tui"
	"github.com/vovakirdan/math-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a game.
Leaving a game with B or Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores
  O            - Settings
  Q            - Quit

Examples:
  mathcade menu
  mathcade menu --fps 60
  mathcade menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	defer closeStore(store)

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue

		case result.WantsSettings:
			path := flagConfig
			if path == "" {
				path = config.UserConfigPath()
			}
			goBack, err := tui.RunSettings(config.Active(), path, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", result.GameID, "error", err)
			continue
		}

		// Fresh boards every time unless a seed was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		quit, err := tui.Run(game, store, cfg, "")
		if err != nil {
			logger.Error("game stopped", "game", result.GameID, "error", err)
		}
		if quit {
			return nil
		}
	}
}
