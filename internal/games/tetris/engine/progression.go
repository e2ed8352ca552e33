package engine

import "math"

// Speed is the drop-interval curve in seconds:
// step = max(Min, Start - Decrement*rows).
type Speed struct {
	Start     float64
	Decrement float64
	Min       float64
}

// StepFor returns the drop interval after rows completed rows.
func (s Speed) StepFor(rows int) float64 {
	return math.Max(s.Min, s.Start-s.Decrement*float64(rows))
}

// Scoring holds the point awards.
type Scoring struct {
	LockBonus     int // awarded every time a piece locks
	LineBase      int // n simultaneous rows award LineBase * 2^(n-1)
	HardDropBonus int // awarded per cell travelled by a hard drop
}

// LineScore returns the award for clearing n rows at once.
func (s Scoring) LineScore(n int) int {
	if n <= 0 {
		return 0
	}
	return s.LineBase << (n - 1)
}

// Progression is the level policy layered on top of the row count. The zero
// value disables levels, milestone pauses, the bonus stage and mirroring.
type Progression struct {
	LevelEvery     int  // rows per level; 0 disables levels
	MaxLevel       int  // highest level reachable; 0 means unbounded
	BonusAt        int  // row count that starts the bonus stage; 0 disables
	PauseOnLevelUp bool // pause the game when a new level is reached
	MirrorOnClear  bool // each collapsed row swaps left and right controls
}

// Level returns the level reached after rows completed rows.
func (p Progression) Level(rows int) int {
	if p.LevelEvery <= 0 {
		return 0
	}
	level := rows / p.LevelEvery
	if p.MaxLevel > 0 && level > p.MaxLevel {
		level = p.MaxLevel
	}
	return level
}

// Bonus reports whether rows has reached the bonus stage.
func (p Progression) Bonus(rows int) bool {
	return p.BonusAt > 0 && rows >= p.BonusAt
}

// Rules bundles everything that parameterizes an engine.
type Rules struct {
	Width       int
	Height      int
	Speed       Speed
	Scoring     Scoring
	Progression Progression
}

// DefaultRules are the classic 10x20 rules.
func DefaultRules() Rules {
	return Rules{
		Width:  10,
		Height: 20,
		Speed: Speed{
			Start:     0.4,
			Decrement: 0.005,
			Min:       0.4,
		},
		Scoring: Scoring{
			LockBonus:     10,
			LineBase:      100,
			HardDropBonus: 1,
		},
	}
}
