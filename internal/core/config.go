package core

// RuntimeConfig is passed to games on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed, 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// Seconds converts a duration in seconds to ticks at the configured rate.
func (c RuntimeConfig) Seconds(s float64) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultConfig().TickRate
	}
	return int(s * float64(rate))
}

// GameState is the status a game reports to the platform after each step.
type GameState struct {
	Score    int  // Current score
	Attempts int  // Answers given, for games that count tries
	GameOver bool // The round has ended and the score can be recorded
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
