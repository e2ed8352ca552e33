package config

import "math"

// DifficultyManager scales drop speeds by the configured difficulty level.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether difficulty scaling is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the difficulty level, 0 when scaling is disabled.
func (d *DifficultyManager) Level() float64 {
	if !d.cfg.Enabled {
		return 0
	}
	return d.initialLevel
}

// SpeedFactor is the ratio applied to every interval of a speed curve.
// Level 1.0 divides intervals by 1 + SpeedMultiplier.
func (d *DifficultyManager) SpeedFactor() float64 {
	gain := 1.0 + d.Level()*math.Max(0, d.cfg.Scaling.SpeedMultiplier)
	return 1.0 / gain
}

// Scale returns the speed curve shortened by SpeedFactor.
func (d *DifficultyManager) Scale(s SpeedConfig) SpeedConfig {
	f := d.SpeedFactor()
	return SpeedConfig{
		Start:     s.Start * f,
		Decrement: s.Decrement * f,
		Min:       s.Min * f,
	}
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
