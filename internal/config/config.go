// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris variants.
package config

import (
	"errors"
	"fmt"
)

// TetrisConfig contains all tunables of the engine and its variants.
// The top-level Speed and Progression describe the classic game; Marathon
// overrides them for the marathon variant.
type TetrisConfig struct {
	Court       CourtConfig       `yaml:"court"`
	Speed       SpeedConfig       `yaml:"speed"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Progression ProgressionConfig `yaml:"progression"`
	Marathon    MarathonConfig    `yaml:"marathon"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// CourtConfig is the size of the playing field in cells.
type CourtConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig is the drop interval curve in seconds.
type SpeedConfig struct {
	Start     float64 `yaml:"start"`
	Decrement float64 `yaml:"decrement"` // subtracted per completed row
	Min       float64 `yaml:"min"`
}

// ScoringConfig holds point awards.
type ScoringConfig struct {
	LockBonus     int `yaml:"lock_bonus"`
	LineBase      int `yaml:"line_base"`
	HardDropBonus int `yaml:"hard_drop_bonus"`
}

// ProgressionConfig is the level policy.
type ProgressionConfig struct {
	LevelEvery     int  `yaml:"level_every"` // rows per level, 0 disables levels
	MaxLevel       int  `yaml:"max_level"`
	BonusAt        int  `yaml:"bonus_at"` // rows that start the bonus stage, 0 disables
	PauseOnLevelUp bool `yaml:"pause_on_level_up"`
	MirrorOnClear  bool `yaml:"mirror_on_clear"`
}

// MarathonConfig overrides the speed curve and progression for the
// marathon variant.
type MarathonConfig struct {
	Speed       SpeedConfig       `yaml:"speed"`
	Progression ProgressionConfig `yaml:"progression"`
}

// DifficultyConfig scales the drop speed of every variant.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled"`
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // speed gain at level 1.0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset freezes the drop speed.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. An empty name yields "" with no error,
// meaning the file's difficulty section is used as is.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// Validate reports every field that would make the engine unplayable.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Court.Width < 4 || c.Court.Height < 4 {
		errs = append(errs, fmt.Errorf("court must be at least 4x4, got %dx%d", c.Court.Width, c.Court.Height))
	}
	errs = append(errs, c.Speed.validate("speed"))
	errs = append(errs, c.Marathon.Speed.validate("marathon.speed"))
	if c.Scoring.LockBonus < 0 || c.Scoring.LineBase < 0 || c.Scoring.HardDropBonus < 0 {
		errs = append(errs, errors.New("scoring values must not be negative"))
	}
	errs = append(errs, c.Progression.validate("progression"))
	errs = append(errs, c.Marathon.Progression.validate("marathon.progression"))
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		errs = append(errs, fmt.Errorf("difficulty.initial_level must be in [0, 1], got %g", c.Difficulty.InitialLevel))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid tetris config: %w", err)
	}
	return nil
}

func (s SpeedConfig) validate(name string) error {
	if s.Start <= 0 || s.Min <= 0 {
		return fmt.Errorf("%s.start and %s.min must be positive", name, name)
	}
	if s.Decrement < 0 {
		return fmt.Errorf("%s.decrement must not be negative", name)
	}
	return nil
}

func (p ProgressionConfig) validate(name string) error {
	if p.LevelEvery < 0 || p.MaxLevel < 0 || p.BonusAt < 0 {
		return fmt.Errorf("%s values must not be negative", name)
	}
	return nil
}
