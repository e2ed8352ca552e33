package engine

import "math"

// Command is a player input queued for the update loop.
type Command int

const (
	CmdNone Command = iota
	CmdLeft
	CmdRight
	CmdRotate
	CmdSoftDrop
	CmdHardDrop
	CmdTogglePause
)

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdRotate:
		return "rotate"
	case CmdSoftDrop:
		return "soft_drop"
	case CmdHardDrop:
		return "hard_drop"
	case CmdTogglePause:
		return "toggle_pause"
	default:
		return "unknown"
	}
}

// EnqueueInput appends a command to the FIFO queue drained by Tick.
// While the game is not running only CmdTogglePause is accepted.
// Returns whether the command was queued.
func (e *Engine) EnqueueInput(c Command) bool {
	if c == CmdNone {
		return false
	}
	if e.state != StatePlaying && c != CmdTogglePause {
		return false
	}
	e.queue = append(e.queue, c)
	return true
}

// Pending returns the number of queued commands.
func (e *Engine) Pending() int {
	return len(e.queue)
}

// Tick advances the game by elapsed seconds. At most one queued command runs
// per tick. While playing, the visual score moves one point toward the score
// and the drop timer accumulates; every full step interval forces a soft drop.
// Negative or NaN deltas count as zero.
func (e *Engine) Tick(elapsed float64) {
	if elapsed < 0 || math.IsNaN(elapsed) {
		elapsed = 0
	}

	if e.state != StatePlaying {
		for len(e.queue) > 0 && e.queue[0] != CmdTogglePause {
			e.pop()
		}
		if len(e.queue) > 0 {
			e.pop()
			e.TogglePause()
		}
		return
	}

	if e.vscore < e.score {
		e.setVisualScore(e.vscore + 1)
	}

	if len(e.queue) > 0 {
		e.handle(e.pop())
	}
	if e.state != StatePlaying {
		return
	}

	e.dt += elapsed
	for e.state == StatePlaying && e.dt > e.step {
		e.dt -= e.step
		e.SoftDrop()
	}
}

func (e *Engine) pop() Command {
	c := e.queue[0]
	e.queue = e.queue[1:]
	return c
}

func (e *Engine) handle(c Command) {
	switch c {
	case CmdLeft, CmdRight:
		left := c == CmdLeft
		if e.mirrored {
			left = !left
		}
		if left {
			e.MovePiece(MoveLeft)
		} else {
			e.MovePiece(MoveRight)
		}
	case CmdRotate:
		e.RotatePiece()
	case CmdSoftDrop:
		e.SoftDrop()
	case CmdHardDrop:
		e.HardDrop()
	case CmdTogglePause:
		e.TogglePause()
	}
}
