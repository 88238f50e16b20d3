package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/math-arcade/internal/config"
	"github.com/vovakirdan/math-arcade/internal/registry"
	"github.com/vovakirdan/math-arcade/internal/storage"
)

var (
	flagScoreTarget  int
	flagScoreSize    int
	flagScoreMinutes int
	flagScoreKey     string
	flagScoreLimit   int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the best rounds of a game, grouped by the settings they were
played under. Without a game, shows a summary of every game played.

Sum Grid scores are only comparable on the same target, board size and
timer; pick them with --target, --size and --minutes. Missing values come
from the active settings. Other games take a raw --key.

Examples:
  mathcade scores
  mathcade scores sumgrid
  mathcade scores sumgrid --target 12 --size 5
  mathcade scores numberbonds --key min5_max20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	f := scoresCmd.Flags()
	f.IntVar(&flagScoreTarget, "target", 0, "Sum Grid target")
	f.IntVar(&flagScoreSize, "size", 0, "Sum Grid board size")
	f.IntVar(&flagScoreMinutes, "minutes", 0, "Sum Grid timer in minutes")
	f.StringVar(&flagScoreKey, "key", "", "Raw settings key")
	f.IntVar(&flagScoreLimit, "limit", 10, "Number of rounds to show per settings")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer closeStore(store)

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		return printOverview(out, store)
	}

	gameID := args[0]
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w, run 'mathcade list' to see available games", err)
	}

	keys, err := scoreKeys(cmd, store, gameID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n", game.Title())
	if len(keys) == 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintf(out, "Play 'mathcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	for _, key := range keys {
		if err := printScores(out, store, gameID, key); err != nil {
			return err
		}
	}
	return nil
}

// scoreKeys picks the settings keys to show: the one named by flags, or
// every key the game has scores under.
func scoreKeys(cmd *cobra.Command, store *storage.Store, gameID string) ([]string, error) {
	if flagScoreKey != "" {
		return []string{flagScoreKey}, nil
	}

	f := cmd.Flags()
	if gameID == "sumgrid" && (f.Changed("target") || f.Changed("size") || f.Changed("minutes")) {
		sg := config.Active().SumGrid
		if f.Changed("target") {
			sg.Target = flagScoreTarget
		}
		if f.Changed("size") {
			sg.GridSize = flagScoreSize
		}
		if f.Changed("minutes") {
			sg.TimerMinutes = flagScoreMinutes
		}
		if err := sg.Validate(); err != nil {
			return nil, err
		}
		return []string{sg.SettingsKey()}, nil
	}

	return store.SettingsKeys(gameID)
}

func printScores(out io.Writer, store *storage.Store, gameID, key string) error {
	top, err := store.TopScoresFor(gameID, key, flagScoreLimit)
	if err != nil {
		return err
	}
	all, err := store.AllScores(gameID, key)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	if key != "" {
		fmt.Fprintf(out, "Settings %s\n", key)
	}
	if len(top) == 0 {
		fmt.Fprintln(out, "  No scores recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-12s  %s\n", "Rank", "Score", "Tries", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-12s  %s\n", "----", "-----", "-----", "------", "----")
	for i, e := range top {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-6d  %-6d  %-12s  %s\n",
			i+1, e.Score, e.Attempts, player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	scores := make([]float64, len(all))
	accuracy := make([]float64, 0, len(all))
	for i, e := range all {
		scores[i] = float64(e.Score)
		if e.Attempts > 0 {
			accuracy = append(accuracy, float64(e.Score)/float64(e.Attempts))
		}
	}
	mean, std := stat.MeanStdDev(scores, nil)
	if len(scores) < 2 {
		std = 0
	}
	fmt.Fprintf(out, "  Rounds: %d  Best: %d  Mean: %.1f  SD: %.1f", len(all), top[0].Score, mean, std)
	if len(accuracy) > 0 {
		fmt.Fprintf(out, "  Accuracy: %.0f%%", 100*stat.Mean(accuracy, nil))
	}
	fmt.Fprintln(out)
	return nil
}

func printOverview(out io.Writer, store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		return errors.New("no scores recorded yet")
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(out, "  %-12s  %-6s  %-5s  %-6s  %s\n", "Game", "Rounds", "Best", "Mean", "Last played")
	fmt.Fprintf(out, "  %-12s  %-6s  %-5s  %-6s  %s\n", "----", "------", "----", "----", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Fprintf(out, "  %-12s  %-6d  %-5d  %-6.1f  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
