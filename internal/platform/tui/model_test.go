package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// isolate keeps config lookups and screenshots inside temp dirs.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	tetris.SetConfigPath("")
	tetris.SetDifficultyPreset("")
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

// driver feeds keys and ticks to a model with a fake clock.
type driver struct {
	t   *testing.T
	m   Model
	now time.Time
	cmd tea.Cmd
}

func newDriver(t *testing.T, m Model) *driver {
	return &driver{t: t, m: m, now: time.Unix(1_700_000_000, 0)}
}

func (d *driver) send(msg tea.Msg) {
	d.t.Helper()
	next, cmd := d.m.Update(msg)
	m, ok := next.(Model)
	if !ok {
		d.t.Fatalf("Update returned %T", next)
	}
	d.m, d.cmd = m, cmd
}

func (d *driver) tick(dt time.Duration) {
	d.now = d.now.Add(dt)
	d.send(TickMsg(d.now))
}

func TestModelStartsOnSpace(t *testing.T) {
	isolate(t)
	d := newDriver(t, NewModel(tetris.New(), nil, testConfig(), nil))

	d.tick(0)
	if d.m.State().Started {
		t.Fatal("game should wait for the player")
	}

	d.send(tea.KeyMsg{Type: tea.KeySpace})
	d.tick(16 * time.Millisecond)
	if !d.m.State().Started {
		t.Error("space should start the game")
	}
	if d.cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	isolate(t)
	store := openStore(t)
	d := newDriver(t, NewModel(tetris.New(), store, testConfig(), nil))

	d.tick(0)
	for i := 0; i < 2000 && !d.m.State().GameOver; i++ {
		d.send(tea.KeyMsg{Type: tea.KeySpace})
		d.tick(500 * time.Millisecond)
	}
	st := d.m.State()
	if !st.GameOver {
		t.Fatal("hard drops should end the game")
	}

	// More ticks on the game over screen must not save again.
	d.tick(time.Second)
	d.tick(time.Second)

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(scores))
	}
	if scores[0].Score != st.Score || scores[0].Rows != st.Rows {
		t.Errorf("saved %+v, state %+v", scores[0], st)
	}
	if d.m.runID != scores[0].RunID {
		t.Errorf("runID = %q, expected %q", d.m.runID, scores[0].RunID)
	}

	d.m.game.Render(d.m.screen)
	if !strings.Contains(d.m.screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}

	// Restart clears the saved flag for the next run.
	d.send(runeKey('r'))
	d.tick(16 * time.Millisecond)
	if d.m.State().GameOver || d.m.scoreSaved {
		t.Errorf("restart failed: state %+v saved %v", d.m.State(), d.m.scoreSaved)
	}
}

func TestModelSkipsEmptyRuns(t *testing.T) {
	isolate(t)
	store := openStore(t)
	m := NewModel(tetris.New(), store, testConfig(), nil)

	m.gameState = core.GameState{Started: true, GameOver: true}
	m.saveScore()

	if best, _ := store.HighScore("tetris"); best != 0 {
		t.Errorf("zero score was saved, high score %d", best)
	}
}

func TestModelLayoutLeavesRoomForHelp(t *testing.T) {
	isolate(t)
	d := newDriver(t, NewModel(tetris.New(), nil, testConfig(), nil))

	if d.m.screen.Height() != 23 {
		t.Errorf("screen height = %d, expected 23", d.m.screen.Height())
	}

	d.send(tea.WindowSizeMsg{Width: 100, Height: 30})
	if d.m.screen.Width() != 100 || d.m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d after resize", d.m.screen.Width(), d.m.screen.Height())
	}

	d.send(runeKey('?'))
	if d.m.screen.Height() >= 29 {
		t.Errorf("full help should take more rows, screen height %d", d.m.screen.Height())
	}

	view := d.m.View()
	if !strings.Contains(view, "rotate") {
		t.Error("help bar missing from view")
	}
}

func TestModelBackOnlyWhenNotPlaying(t *testing.T) {
	isolate(t)
	d := newDriver(t, NewModel(tetris.New(), nil, testConfig(), nil))

	d.send(tea.KeyMsg{Type: tea.KeySpace})
	d.tick(16 * time.Millisecond)

	d.send(runeKey('b'))
	if d.m.BackToMenu() {
		t.Fatal("b should be ignored while a piece is falling")
	}

	d.send(runeKey('p'))
	d.tick(16 * time.Millisecond)
	if !d.m.State().Paused {
		t.Fatal("expected paused")
	}

	d.send(runeKey('b'))
	if !d.m.BackToMenu() || d.m.IsQuitting() {
		t.Errorf("back = %v, quitting = %v", d.m.BackToMenu(), d.m.IsQuitting())
	}
}

func TestStandaloneBackQuits(t *testing.T) {
	isolate(t)
	m := NewModel(tetris.New(), nil, testConfig(), nil)
	m.standalone = true
	d := newDriver(t, m)

	d.send(tea.KeyMsg{Type: tea.KeyEscape})
	if !d.m.IsQuitting() || d.cmd == nil {
		t.Error("esc on the start screen should leave the program")
	}
	if d.m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelQuit(t *testing.T) {
	isolate(t)
	d := newDriver(t, NewModel(tetris.New(), nil, testConfig(), nil))

	d.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !d.m.IsQuitting() {
		t.Error("ctrl+c should quit")
	}
}

func TestModelHighScoreFromStore(t *testing.T) {
	isolate(t)
	store := openStore(t)
	if _, err := store.SaveScore(storage.ScoreEntry{GameID: "tetris", Score: 98765}); err != nil {
		t.Fatal(err)
	}

	m := NewModel(tetris.New(), store, testConfig(), nil)
	m.game.Render(m.screen)
	if !strings.Contains(m.screen.String(), "98765") {
		t.Errorf("stored high score not shown:\n%s", m.screen.String())
	}
}

func TestScreenshot(t *testing.T) {
	isolate(t)
	d := newDriver(t, NewModel(tetris.New(), nil, testConfig(), nil))

	d.send(tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.HasPrefix(d.m.status, "saved tetris_") {
		t.Errorf("status = %q", d.m.status)
	}
}
