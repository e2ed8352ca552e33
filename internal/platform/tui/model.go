package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Model is the Bubble Tea model that runs one game. It is used on its own
// by `tetris play` and embedded in SessionModel for the menu flow.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	renderer   *Renderer
	logger     *log.Logger
	clock      frameClock
	inputFrame core.InputFrame
	gameState  core.GameState
	runID      string
	standalone bool // back leaves the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
	status     string
}

// NewModel creates a model for the given game. A nil store disables score
// persistence and a nil logger discards game events.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		renderer:   defaultRenderer,
		logger:     logger.With("game", game.ID()),
		inputFrame: core.NewInputFrame(),
	}
	m.game.Reset(cfg)
	m.gameState = m.game.State()
	m.loadHighScore()
	m.layout()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// playing reports whether a piece is currently falling.
func (m Model) playing() bool {
	return m.gameState.Started && !m.gameState.Paused && !m.gameState.GameOver
}

// handleKey processes keyboard input. Actions are queued in the frame and
// applied on the next tick, in the order they were pressed.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys.Keys
	switch {
	case key.Matches(msg, k.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case !m.playing() && (key.Matches(msg, k.Back) || msg.String() == "esc"):
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame, m.clock.Elapsed(now))
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, ev := range result.Events {
		m.logger.Debug(ev.Name,
			"score", ev.Score,
			"rows", ev.Rows,
			"lines", ev.Lines,
			"level", ev.Level,
		)
	}

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.saveScore()
		m.scoreSaved = true
	case !m.gameState.GameOver && wasOver:
		// A new run started from the game over screen.
		m.scoreSaved = false
		m.runID = ""
		m.status = ""
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore stores the finished run and refreshes the HUD's high score.
// Runs without points are not recorded.
func (m *Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	entry, err := m.store.SaveScore(storage.ScoreEntry{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Rows:   m.gameState.Rows,
		Level:  m.gameState.Level,
	})
	if err != nil {
		m.logger.Error("could not save score", "score", m.gameState.Score, "error", err)
		m.status = "score not saved"
		return
	}

	m.runID = entry.RunID
	m.logger.Info("score saved", "run", entry.RunID, "score", entry.Score, "rows", entry.Rows)
	m.loadHighScore()
}

func (m *Model) loadHighScore() {
	aware, ok := m.game.(registry.HighScoreAware)
	if !ok || m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return
	}
	aware.SetHighScore(best)
}

// layout sizes the game screen to the space left above the help bar.
func (m *Model) layout() {
	m.help.Width = m.config.ScreenW
	h := max(m.config.ScreenH-lipgloss.Height(m.helpView()), 0)
	m.screen.Resize(m.config.ScreenW, h)
	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(m.config.ScreenW, h)
	}
}

func (m Model) helpView() string {
	v := m.help.View(m.keys.Keys)
	if m.status != "" {
		v = m.status + "  " + v
	}
	return v
}

// saveScreenshot writes the current screen as plain text to
// ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.status = "saved " + filepath.Base(path)
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game above the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var sb strings.Builder
	sb.WriteString(m.renderer.Render(m.screen))
	sb.WriteByte('\n')
	sb.WriteString(m.helpView())
	return sb.String()
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game full-screen until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
