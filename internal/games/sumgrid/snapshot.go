package sumgrid

// Snapshot is a read-only copy of a session for tools and debugging.
type Snapshot struct {
	Settings    Settings `yaml:"settings"`
	Generation  uint64   `yaml:"generation"`
	Cells       [][]int  `yaml:"cells,flow"`
	Path        []int    `yaml:"path,flow"`
	Selection   []int    `yaml:"selection,flow,omitempty"`
	Pending     int      `yaml:"pending"`
	Score       int      `yaml:"score"`
	Attempts    int      `yaml:"attempts"`
	SecondsLeft int      `yaml:"seconds_left"`
	Running     bool     `yaml:"running"`
	Over        bool     `yaml:"over"`
}

// Snapshot copies the session state. Cells are returned row by row.
func (s *Session) Snapshot() Snapshot {
	rows := make([][]int, s.grid.Size)
	for y := range rows {
		start := y * s.grid.Size
		rows[y] = append([]int(nil), s.grid.Cells[start:start+s.grid.Size]...)
	}

	pending := 0
	for _, fb := range s.pending {
		if fb.generation == s.generation {
			pending++
		}
	}

	return Snapshot{
		Settings:    s.settings,
		Generation:  s.generation,
		Cells:       rows,
		Path:        append([]int(nil), s.path...),
		Selection:   s.Selection(),
		Pending:     pending,
		Score:       s.score,
		Attempts:    s.attempts,
		SecondsLeft: s.SecondsLeft(),
		Running:     s.running,
		Over:        s.over,
	}
}
