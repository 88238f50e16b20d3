package config

import (
	"fmt"
	"strings"
)

// Preset is a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// Presets lists the presets in increasing difficulty.
func Presets() []Preset {
	return []Preset{PresetEasy, PresetNormal, PresetHard}
}

// ParsePreset converts a preset name, case-insensitively.
func ParsePreset(name string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown preset %q (want easy, normal or hard)", ErrInvalidSettings, name)
}

// ApplyPreset overwrites the settings a preset controls: the sum grid
// target, board size and timer, and the number bonds target range.
func ApplyPreset(cfg *Config, p Preset) {
	cfg.Preset = string(p)

	switch p {
	case PresetEasy:
		cfg.SumGrid.Target = 5
		cfg.SumGrid.GridSize = 4
		cfg.SumGrid.TimerMinutes = 3
		cfg.NumberBonds.MinTarget = 2
		cfg.NumberBonds.MaxTarget = 10
	case PresetNormal:
		cfg.SumGrid.Target = 9
		cfg.SumGrid.GridSize = 6
		cfg.SumGrid.TimerMinutes = 2
		cfg.NumberBonds.MinTarget = 5
		cfg.NumberBonds.MaxTarget = 20
	case PresetHard:
		cfg.SumGrid.Target = 15
		cfg.SumGrid.GridSize = 8
		cfg.SumGrid.TimerMinutes = 2
		cfg.NumberBonds.MinTarget = 10
		cfg.NumberBonds.MaxTarget = 50
	}
}
