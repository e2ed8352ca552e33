package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration. It matches the
// embedded defaults/tetris.yaml and is used if that file cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Court: CourtConfig{
			Width:  10,
			Height: 20,
		},
		Speed: SpeedConfig{
			Start:     0.4,
			Decrement: 0.005,
			Min:       0.4,
		},
		Scoring: ScoringConfig{
			LockBonus:     10,
			LineBase:      100,
			HardDropBonus: 1,
		},
		Marathon: MarathonConfig{
			Speed: SpeedConfig{
				Start:     0.8,
				Decrement: 0.01,
				Min:       0.1,
			},
			Progression: ProgressionConfig{
				LevelEvery:     10,
				MaxLevel:       4,
				BonusAt:        50,
				PauseOnLevelUp: true,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}
