package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func TestRendererPlainScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "hello")

	if got := RenderScreen(s); got != s.String() {
		t.Errorf("uncolored screen should render as plain text, got %q", got)
	}
}

func TestRendererColorRuns(t *testing.T) {
	r := lipgloss.NewRenderer(&strings.Builder{})
	r.SetColorProfile(termenv.ANSI256)
	s := core.NewScreen(4, 1)
	s.SetColored(0, 0, 'a', core.ColorRed)
	s.SetColored(1, 0, 'b', core.ColorRed)
	s.SetColored(2, 0, 'c', core.ColorOrange)

	out := NewRenderer(r).Render(s)
	if !strings.Contains(out, "ab") {
		t.Errorf("same-colored cells should form one run: %q", out)
	}
	if !strings.Contains(out, "208") {
		t.Errorf("orange should use color 208: %q", out)
	}
	if strings.Count(out, "\x1b[0m") != 2 {
		t.Errorf("expected two styled runs: %q", out)
	}
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	ids := make([]string, len(m.items))
	for i, it := range m.items {
		ids[i] = it.GameID
	}
	if strings.Join(ids, ",") != "tetris,tetris_marathon" {
		t.Errorf("menu items = %v", ids)
	}

	if !strings.Contains(m.View(), "Difficulty: < config >") {
		t.Error("default difficulty should follow the config file")
	}
}

func TestMenuSelection(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	update := func(msg tea.Msg) tea.Cmd {
		next, cmd := m.Update(msg)
		m = next.(MenuModel)
		return cmd
	}

	update(tea.KeyMsg{Type: tea.KeyDown})
	update(tea.KeyMsg{Type: tea.KeyRight})
	update(tea.KeyMsg{Type: tea.KeyRight})
	update(tea.KeyMsg{Type: tea.KeyRight})
	update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != config.DifficultyNormal {
		t.Errorf("Difficulty() = %q, expected normal", m.Difficulty())
	}

	if cmd := update(tea.KeyMsg{Type: tea.KeyEnter}); cmd == nil {
		t.Error("standalone menu should quit after a selection")
	}

	res := m.result()
	if res.GameID != "tetris_marathon" || res.Difficulty != config.DifficultyNormal || res.Quit {
		t.Errorf("result = %+v", res)
	}
}

func TestMenuWrapsDifficulty(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(MenuModel)
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("Difficulty() = %q, expected fixed", m.Difficulty())
	}
}

func TestMenuShowsHighScores(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore(storage.ScoreEntry{GameID: "tetris_marathon", Score: 5150}); err != nil {
		t.Fatal(err)
	}

	m := NewMenuModel(store, testConfig())
	if m.items[1].HighScore != 5150 || m.items[0].HighScore != 0 {
		t.Errorf("items = %+v", m.items)
	}
	if !strings.Contains(m.View(), "5150") {
		t.Error("high score missing from menu")
	}
}

func TestScoreRows(t *testing.T) {
	at := time.Date(2025, time.March, 4, 17, 30, 0, 0, time.UTC)
	rows := scoreRows([]storage.ScoreEntry{
		{Score: 900, Rows: 12, Level: 1, CreatedAt: at},
		{Score: 300, Rows: 2, CreatedAt: at},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	want := []string{"#1", "900", "12", "1", "Mar 04 17:30"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("rows[0][%d] = %q, expected %q", i, rows[0][i], cell)
		}
	}
	if rows[1][0] != "#2" {
		t.Errorf("second rank = %q", rows[1][0])
	}
}

func TestScoreboardSwitchesVariant(t *testing.T) {
	store := openStore(t)
	for _, e := range []storage.ScoreEntry{
		{GameID: "tetris", Score: 100, Rows: 1},
		{GameID: "tetris", Score: 300, Rows: 3},
		{GameID: "tetris_marathon", Score: 700, Rows: 7, Level: 0},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, 100, 30, "tetris")
	if len(m.scores) != 2 || m.scores[0].Score != 300 {
		t.Fatalf("classic scores = %+v", m.scores)
	}
	if !strings.Contains(m.View(), "2 games  best 300  avg 200  4 rows") {
		t.Errorf("stats line missing:\n%s", m.View())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.scores) != 1 || m.scores[0].GameID != "tetris_marathon" {
		t.Errorf("marathon scores = %+v", m.scores)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || cmd == nil {
		t.Error("esc should leave the standalone scoreboard")
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24, "")
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("empty message missing")
	}
}

func TestSessionFlow(t *testing.T) {
	isolate(t)
	store := openStore(t)
	s := NewSessionModel(store, testConfig(), "alice", nil)
	if s.ID() == "" || s.ID() == NewSessionModel(store, testConfig(), "alice", nil).ID() {
		t.Errorf("session IDs should be unique, got %q", s.ID())
	}

	update := func(msg tea.Msg) tea.Cmd {
		next, cmd := s.Update(msg)
		s = next.(SessionModel)
		return cmd
	}

	// Menu to scoreboard and back.
	update(tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScoreboard {
		t.Fatalf("screen = %v, expected scoreboard", s.screen)
	}
	if cmd := update(tea.KeyMsg{Type: tea.KeyEscape}); cmd != nil {
		t.Error("leaving the scoreboard must not quit the session")
	}
	if s.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu", s.screen)
	}

	// Pick marathon on hard.
	update(tea.KeyMsg{Type: tea.KeyDown})
	update(tea.KeyMsg{Type: tea.KeyLeft})
	update(tea.KeyMsg{Type: tea.KeyLeft})
	if cmd := update(tea.KeyMsg{Type: tea.KeyEnter}); cmd == nil {
		t.Fatal("starting a game should start the tick loop")
	}
	if s.screen != screenGame || s.lastGame != "tetris_marathon" {
		t.Fatalf("screen = %v, game = %q", s.screen, s.lastGame)
	}
	if !strings.Contains(s.View(), "Tetris (Marathon)") {
		t.Error("game view missing title")
	}

	// Back from the start screen returns to the menu.
	update(runeKey('b'))
	if s.screen != screenMenu || s.quitting {
		t.Errorf("screen = %v, quitting = %v", s.screen, s.quitting)
	}

	// Stray ticks from the finished game are ignored by the menu.
	update(TickMsg(time.Now()))
	if s.screen != screenMenu {
		t.Error("tick should not leave the menu")
	}

	update(runeKey('q'))
	if !s.quitting {
		t.Error("q should end the session")
	}
}
