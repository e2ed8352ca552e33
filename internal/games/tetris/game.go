// Package tetris adapts the falling-block engine to the platform's Game
// contract: it loads the YAML config, maps platform actions to engine
// commands and draws the court into a core.Screen.
package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Variant selects the rule set.
type Variant string

const (
	VariantClassic  Variant = "tetris"          // no levels, constant speed by default
	VariantMarathon Variant = "tetris_marathon" // levels, milestone pauses, bonus stage
)

// maxFrame caps the time a single step may simulate, so a stalled terminal
// does not drop the piece through half the court at once.
const maxFrame = time.Second

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

func init() {
	registry.Register(string(VariantClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantMarathon), func() registry.Game {
		return NewMarathon()
	})
}

// Game is one tetris session.
type Game struct {
	variant Variant
	rules   engine.Rules
	eng     *engine.Engine
	runtime core.RuntimeConfig

	highScore int
	preset    config.DifficultyPreset
	events    []core.Event
	layout    layout
	tooSmall  bool
}

// New creates a classic game.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewMarathon creates a marathon game.
func NewMarathon() *Game {
	return &Game{variant: VariantMarathon}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantMarathon {
		return "Tetris (Marathon)"
	}
	return "Tetris"
}

// Reset loads configuration and starts a fresh engine in the idle state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	config.ApplyTetrisPreset(&cfg, preset)

	g.ResetWithRules(runtime, RulesFor(g.variant, cfg))
}

// ResetWithRules starts a fresh engine with explicit rules, bypassing the
// config files.
func (g *Game) ResetWithRules(runtime core.RuntimeConfig, rules engine.Rules) {
	g.runtime = runtime
	g.rules = rules
	g.eng = engine.New(rules, runtime.Seed)
	g.eng.Subscribe(g.record)
	g.events = g.events[:0]
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize recomputes the layout for a new terminal size without touching the
// engine. A game that no longer fits stops advancing until it does.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.layout = newLayout(g.rules.Width, g.rules.Height, w, h)
	g.tooSmall = !g.layout.fits
}

// SetDifficulty overrides the package-wide preset for this game only. It
// takes effect on the next Reset.
func (g *Game) SetDifficulty(name string) error {
	p, err := config.ParsePreset(name)
	if err != nil {
		return err
	}
	g.preset = p
	return nil
}

// RulesFor builds engine rules for a variant from the loaded config.
func RulesFor(v Variant, cfg config.TetrisConfig) engine.Rules {
	speed, prog := cfg.Speed, cfg.Progression
	if v == VariantMarathon {
		speed, prog = cfg.Marathon.Speed, cfg.Marathon.Progression
	}
	speed = config.NewDifficultyManager(cfg.Difficulty).Scale(speed)

	return engine.Rules{
		Width:  cfg.Court.Width,
		Height: cfg.Court.Height,
		Speed: engine.Speed{
			Start:     speed.Start,
			Decrement: speed.Decrement,
			Min:       speed.Min,
		},
		Scoring: engine.Scoring{
			LockBonus:     cfg.Scoring.LockBonus,
			LineBase:      cfg.Scoring.LineBase,
			HardDropBonus: cfg.Scoring.HardDropBonus,
		},
		Progression: engine.Progression{
			LevelEvery:     prog.LevelEvery,
			MaxLevel:       prog.MaxLevel,
			BonusAt:        prog.BonusAt,
			PauseOnLevelUp: prog.PauseOnLevelUp,
			MirrorOnClear:  prog.MirrorOnClear,
		},
	}
}

// SetHighScore sets the best stored score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// Engine exposes the underlying engine for tests and tooling.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// Step queues the frame's actions and advances the engine by elapsed time.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	g.events = g.events[:0]

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		if cmd := g.command(a); cmd != engine.CmdNone {
			g.eng.EnqueueInput(cmd)
		}
	}

	elapsed = min(max(elapsed, 0), maxFrame)
	g.eng.Tick(elapsed.Seconds())

	var events []core.Event
	if len(g.events) > 0 {
		events = append(events, g.events...)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// command maps a platform action to an engine command. Space and Enter
// start or restart the game when it is not running.
func (g *Game) command(a core.Action) engine.Command {
	playing := g.eng.IsPlaying()
	switch a {
	case core.ActionLeft:
		return engine.CmdLeft
	case core.ActionRight:
		return engine.CmdRight
	case core.ActionRotate:
		return engine.CmdRotate
	case core.ActionSoftDrop:
		return engine.CmdSoftDrop
	case core.ActionHardDrop:
		if playing {
			return engine.CmdHardDrop
		}
		return g.startCommand()
	case core.ActionPause:
		return engine.CmdTogglePause
	case core.ActionConfirm, core.ActionRestart:
		return g.startCommand()
	}
	return engine.CmdNone
}

// startCommand toggles an idle or finished game into play. Paused games
// only resume on the pause key.
func (g *Game) startCommand() engine.Command {
	switch g.eng.State() {
	case engine.StateIdle, engine.StateGameOver:
		return engine.CmdTogglePause
	}
	return engine.CmdNone
}

func (g *Game) record(ev engine.Event) {
	g.events = append(g.events, core.Event{
		Name:  ev.Type.String(),
		Score: ev.Score,
		Rows:  ev.Rows,
		Lines: ev.Lines,
		Level: ev.Level,
	})
}

// State returns the platform view of the game. Score is the visual score,
// which equals the exact score once the game is paused or over.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.eng.VisualScore(),
		Rows:     g.eng.Rows(),
		Level:    g.eng.Level(),
		GameOver: g.eng.IsGameOver(),
		Paused:   g.eng.IsPaused() || g.tooSmall,
		Started:  g.eng.State() != engine.StateIdle,
	}
}
