// Package config provides YAML settings loading, validation and difficulty
// presets for the math arcade games.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidSettings is wrapped by every validation failure.
var ErrInvalidSettings = errors.New("config: invalid settings")

// Bounds for user-adjustable settings.
const (
	MinSumTarget    = 2
	MaxSumTarget    = 50
	MinGridSize     = 2
	MaxGridSize     = 10
	MinTimerMinutes = 1
	MaxTimerMinutes = 10

	MinBondTarget = 1
	MaxBondTarget = 99

	MinShowSeconds = 1
	MaxShowSeconds = 10

	MinFrameSize = 2
	MaxFrameSize = 20
)

// Config is the full settings file.
type Config struct {
	Preset      string            `yaml:"preset,omitempty"` // easy, normal, hard or empty
	SumGrid     SumGridConfig     `yaml:"sumgrid"`
	NumberBonds NumberBondsConfig `yaml:"numberbonds"`
	DotCards    DotCardsConfig    `yaml:"dotcards"`
	CoverUp     CoverUpConfig     `yaml:"coverup"`
}

// SumGridConfig configures the sum grid game.
type SumGridConfig struct {
	Target       int `yaml:"target"`
	GridSize     int `yaml:"grid_size"`
	TimerMinutes int `yaml:"timer_minutes"`

	// ReuseExistingPath lets the generator keep a path that already exists
	// among untouched cells instead of building a new one.
	ReuseExistingPath bool `yaml:"reuse_existing_path"`

	CorrectFeedbackSeconds   float64 `yaml:"correct_feedback_seconds"`
	IncorrectFeedbackSeconds float64 `yaml:"incorrect_feedback_seconds"`
}

// NumberBondsConfig configures the number bonds game.
type NumberBondsConfig struct {
	MinTarget        int     `yaml:"min_target"`
	MaxTarget        int     `yaml:"max_target"`
	Rounds           int     `yaml:"rounds"` // Answers per recorded round
	NextDelaySeconds float64 `yaml:"next_delay_seconds"`
}

// DotCardsConfig configures the dot flashcards.
type DotCardsConfig struct {
	ShowSeconds        int     `yaml:"show_seconds"`
	ProbabilitySeconds float64 `yaml:"probability_seconds"`
}

// CoverUpConfig configures the ten-frame cover-up game.
type CoverUpConfig struct {
	FrameSize int `yaml:"frame_size"`
}

// SettingsKey identifies the sum grid settings a score was earned under.
func (c SumGridConfig) SettingsKey() string {
	return fmt.Sprintf("t%d_g%d_m%d", c.Target, c.GridSize, c.TimerMinutes)
}

// Validate checks every section and reports the first problem found.
func (c Config) Validate() error {
	if c.Preset != "" {
		if _, err := ParsePreset(c.Preset); err != nil {
			return err
		}
	}
	if err := c.SumGrid.Validate(); err != nil {
		return err
	}
	if err := c.NumberBonds.Validate(); err != nil {
		return err
	}
	if err := c.DotCards.Validate(); err != nil {
		return err
	}
	return c.CoverUp.Validate()
}

// Validate checks the sum grid settings.
func (c SumGridConfig) Validate() error {
	if err := inRange("sumgrid.target", c.Target, MinSumTarget, MaxSumTarget); err != nil {
		return err
	}
	if err := inRange("sumgrid.grid_size", c.GridSize, MinGridSize, MaxGridSize); err != nil {
		return err
	}
	if err := inRange("sumgrid.timer_minutes", c.TimerMinutes, MinTimerMinutes, MaxTimerMinutes); err != nil {
		return err
	}
	if c.CorrectFeedbackSeconds < 0 || c.IncorrectFeedbackSeconds < 0 {
		return fmt.Errorf("%w: sumgrid feedback seconds must not be negative", ErrInvalidSettings)
	}
	return nil
}

// Validate checks the number bonds settings.
func (c NumberBondsConfig) Validate() error {
	if err := inRange("numberbonds.min_target", c.MinTarget, MinBondTarget, MaxBondTarget); err != nil {
		return err
	}
	if err := inRange("numberbonds.max_target", c.MaxTarget, MinBondTarget, MaxBondTarget); err != nil {
		return err
	}
	if c.MinTarget >= c.MaxTarget {
		return fmt.Errorf("%w: numberbonds.min_target %d must be below max_target %d",
			ErrInvalidSettings, c.MinTarget, c.MaxTarget)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("%w: numberbonds.rounds must be at least 1 (got %d)", ErrInvalidSettings, c.Rounds)
	}
	if c.NextDelaySeconds < 0 {
		return fmt.Errorf("%w: numberbonds.next_delay_seconds must not be negative", ErrInvalidSettings)
	}
	return nil
}

// Validate checks the dot card settings.
func (c DotCardsConfig) Validate() error {
	if c.ProbabilitySeconds < 0 {
		return fmt.Errorf("%w: dotcards.probability_seconds must not be negative", ErrInvalidSettings)
	}
	return inRange("dotcards.show_seconds", c.ShowSeconds, MinShowSeconds, MaxShowSeconds)
}

// Validate checks the cover-up settings.
func (c CoverUpConfig) Validate() error {
	return inRange("coverup.frame_size", c.FrameSize, MinFrameSize, MaxFrameSize)
}

func inRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s must be in [%d, %d] (got %d)", ErrInvalidSettings, field, lo, hi, v)
	}
	return nil
}
