package config

import (
	_ "embed"
)

//go:embed defaults/mathcade.yaml
var defaultYAML []byte

// Default returns the built-in settings.
func Default() Config {
	return Config{
		SumGrid: SumGridConfig{
			Target:                   9,
			GridSize:                 6,
			TimerMinutes:             2,
			CorrectFeedbackSeconds:   1.0,
			IncorrectFeedbackSeconds: 0.5,
		},
		NumberBonds: NumberBondsConfig{
			MinTarget:        5,
			MaxTarget:        20,
			Rounds:           20,
			NextDelaySeconds: 1.5,
		},
		DotCards: DotCardsConfig{
			ShowSeconds:        2,
			ProbabilitySeconds: 5,
		},
		CoverUp: CoverUpConfig{
			FrameSize: 10,
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}
