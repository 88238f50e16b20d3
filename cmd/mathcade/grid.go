package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/math-arcade/internal/config"
	"github.com/vovakirdan/math-arcade/internal/games/sumgrid"
	sumcore "github.com/vovakirdan/math-arcade/internal/games/sumgrid/core"
)

var (
	flagGridTarget  int
	flagGridSize    int
	flagGridMatches int
	flagGridReuse   bool
	flagGridYAML    bool
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Generate Sum Grid boards without the UI",
	Long: `Build a Sum Grid board and print it with the path the generator
guarantees. With --matches, plays that many perfect answers in a row and
checks that every refreshed board still has a path to the target.

Examples:
  mathcade grid
  mathcade grid --target 15 --size 8 --seed 42
  mathcade grid --matches 1000 --reuse
  mathcade grid --yaml`,
	RunE: runGrid,
}

func init() {
	f := gridCmd.Flags()
	f.IntVar(&flagGridTarget, "target", 0, "Target sum (default from settings)")
	f.IntVar(&flagGridSize, "size", 0, "Board size (default from settings)")
	f.IntVar(&flagGridMatches, "matches", 0, "Number of answers to simulate")
	f.BoolVar(&flagGridReuse, "reuse", false, "Keep existing paths when refreshing cells")
	f.BoolVar(&flagGridYAML, "yaml", false, "Print the board as a YAML snapshot")
}

// gridStats counts generator events during a simulation.
type gridStats struct {
	regenerated int
	reused      int
	replaced    []float64
}

func (s *gridStats) observe(ev sumcore.Event) {
	if ev.Op != sumcore.OpRegenerate {
		return
	}
	s.regenerated++
	if ev.Reused {
		s.reused++
	}
	s.replaced = append(s.replaced, float64(ev.Replaced))
}

func runGrid(cmd *cobra.Command, _ []string) error {
	sg := config.Active().SumGrid
	settings := sumgrid.Settings{
		Target:       sg.Target,
		GridSize:     sg.GridSize,
		TimerMinutes: sg.TimerMinutes,
	}
	if cmd.Flags().Changed("target") {
		settings.Target = flagGridTarget
	}
	if cmd.Flags().Changed("size") {
		settings.GridSize = flagGridSize
	}

	policy := sumcore.ReuseNever
	if flagGridReuse || sg.ReuseExistingPath {
		policy = sumcore.ReuseExisting
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	stats := &gridStats{}
	session, err := sumgrid.NewSession(settings, seed,
		sumgrid.WithFeedbackTicks(0, 0),
		sumgrid.WithGeneratorOptions(
			sumcore.WithReusePolicy(policy),
			sumcore.WithObserver(stats.observe),
		),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagGridYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(session.Snapshot()); err != nil {
			return fmt.Errorf("encoding snapshot: %w", err)
		}
		if err := enc.Close(); err != nil {
			return err
		}
	} else {
		printGrid(out, session, seed)
	}

	if flagGridMatches <= 0 {
		return nil
	}
	return simulate(out, session, stats, flagGridMatches)
}

func printGrid(out io.Writer, s *sumgrid.Session, seed int64) {
	g := s.Grid()
	fmt.Fprintf(out, "Target %d on %dx%d (seed %d)\n\n", s.Settings().Target, g.Size, g.Size, seed)
	fmt.Fprintln(out, g.String())
	fmt.Fprintln(out)

	fmt.Fprint(out, "Path:")
	for i, idx := range s.Path() {
		x, y := g.Coord(idx)
		sep := " +"
		if i == 0 {
			sep = ""
		}
		fmt.Fprintf(out, "%s %d@(%d,%d)", sep, g.At(idx), x, y)
	}
	fmt.Fprintf(out, " = %d\n", s.Path().Sum(g))
}

// simulate answers with a found path every time and checks the board
// stays solvable after each refresh.
func simulate(out io.Writer, s *sumgrid.Session, stats *gridStats, matches int) error {
	if err := s.Start(); err != nil {
		return err
	}

	lengths := make([]float64, 0, matches)
	start := time.Now()
	for i := range matches {
		path, ok := s.Hint()
		if !ok {
			return fmt.Errorf("match %d: board has no path to %d", i+1, s.Settings().Target)
		}
		for _, idx := range path {
			s.Toggle(idx)
		}
		if outcome := s.Submit(); outcome != sumgrid.OutcomeCorrect {
			return fmt.Errorf("match %d: path %v was %s", i+1, path, outcome)
		}
		lengths = append(lengths, float64(len(path)))
	}
	elapsed := time.Since(start)

	if !sumcore.HasValidPath(s.Grid(), s.Settings().Target, nil) {
		return fmt.Errorf("final board has no path to %d", s.Settings().Target)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Simulated %d matches in %s\n", matches, elapsed.Round(time.Millisecond))
	fmt.Fprintf(out, "  Score:            %d/%d\n", s.Score(), s.Attempts())
	fmt.Fprintf(out, "  Mean path length: %.2f\n", stat.Mean(lengths, nil))
	if len(stats.replaced) > 0 {
		fmt.Fprintf(out, "  Refreshes:        %d (%d kept an existing path)\n", stats.regenerated, stats.reused)
		fmt.Fprintf(out, "  Mean replaced:    %.2f cells\n", stat.Mean(stats.replaced, nil))
	}
	return nil
}
