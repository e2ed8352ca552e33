// Package tui runs games in the terminal with Bubble Tea. It owns the
// frame clock, key mapping, the menu and scoreboard screens, score
// persistence, and the SSH server that serves the same screens remotely.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. It carries the wall
// time the tick fired at, which the model turns into elapsed time.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after a frame
// interval at the given rate. Non-positive rates fall back to 60 fps.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock converts tick timestamps into per-step elapsed time.
type frameClock struct {
	last time.Time
}

// Reset restarts the clock at t, so the next step does not see the time
// spent in menus or paused in a terminal suspend.
func (c *frameClock) Reset(t time.Time) {
	c.last = t
}

// Elapsed returns the time since the previous tick and advances the clock.
// Ticks that arrive out of order yield zero.
func (c *frameClock) Elapsed(t time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	d := t.Sub(c.last)
	if d < 0 {
		return 0
	}
	c.last = t
	return d
}
