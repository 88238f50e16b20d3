// mathcade is a terminal arcade of small math games.
//
// Usage:
//
//	mathcade list              - List available games
//	mathcade play <game>       - Play a game
//	mathcade menu              - Start menu to pick games interactively
//	mathcade scores <game>     - Show high scores for a game
//	mathcade grid              - Generate sum grids without the UI
//	mathcade serve             - Start SSH server for remote play
//	mathcade config show|init  - Inspect or create the settings file
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set database path (default: ~/.mathcade/scores.db)
//	--config <path>      - Use a specific settings file
//	--preset <name>      - Force a difficulty preset: easy, normal, hard
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/math-arcade/internal/config"
	"github.com/vovakirdan/math-arcade/internal/core"
	"github.com/vovakirdan/math-arcade/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/math-arcade/internal/games/coverup"
	_ "github.com/vovakirdan/math-arcade/internal/games/dotcards"
	_ "github.com/vovakirdan/math-arcade/internal/games/numberbonds"
	_ "github.com/vovakirdan/math-arcade/internal/games/sumgrid"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mathcade",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mathcade",
	Short: "Math Arcade - small math games in your terminal",
	Long: `Math Arcade is a set of terminal games for practising number sense.

Games:
  sumgrid      - Pick 2 to 4 numbers that add up to the target
  numberbonds  - Find the missing part of a number bond
  dotcards     - Flash cards of dot patterns from 1 to 10
  coverup      - Take dots away from a ten frame

Examples:
  mathcade list
  mathcade play sumgrid
  mathcade play sumgrid --preset hard
  mathcade menu
  mathcade serve --ssh :2222 --metrics :9090
  mathcade scores sumgrid --target 12`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.mathcade/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to settings YAML")
	pf.StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies the global flags before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)
	log.SetDefault(logger)

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive (got %d)", flagFPS)
	}

	config.UseFile(flagConfig)
	if flagPreset != "" {
		p, err := config.ParsePreset(flagPreset)
		if err != nil {
			return err
		}
		config.UsePreset(p)
	}

	// Surface a broken settings file once instead of silently using defaults
	if _, source, err := config.LoadSource(flagConfig); err != nil {
		logger.Warn("settings not loaded, using defaults", "error", err)
	} else {
		logger.Debug("settings loaded", "source", source)
	}
	return nil
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close scores database", "error", err)
	}
}
