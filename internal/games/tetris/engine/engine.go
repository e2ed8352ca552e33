package engine

import (
	"fmt"
	"math/rand"
)

// State is the lifecycle of a single game.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Direction is a translation of the current piece.
type Direction int

const (
	MoveLeft Direction = iota
	MoveRight
	MoveDown
)

// minStep keeps the drop loop finite when a configuration asks for a zero or
// negative floor.
const minStep = 0.01

// minCourt is the smallest court edge that fits every piece at spawn.
const minCourt = 4

// Engine owns one game: the court, the current and next pieces, scoring,
// the drop timer and the pending command queue. It is not safe for
// concurrent use; a single goroutine enqueues input and ticks.
type Engine struct {
	rules Rules
	rng   *rand.Rand
	bag   *Bag
	grid  *Grid

	current Piece
	next    Piece

	score  int
	vscore int // displayed score, catches up with score one point per tick
	rows   int
	level  int
	bonus  bool

	mirrored    bool
	pauseOnLock bool // milestone pause requested by the progression policy
	dt          float64
	step        float64
	state       State
	queue       []Command
	invalid     Invalidation
	listeners   []Listener
}

// New creates an idle engine. The same rules and seed always produce the same
// piece sequence.
func New(rules Rules, seed int64) *Engine {
	if rules.Width < minCourt || rules.Height < minCourt {
		panic(fmt.Sprintf("engine: court %dx%d smaller than %dx%d", rules.Width, rules.Height, minCourt, minCourt))
	}
	if rules.Speed.Min < minStep {
		rules.Speed.Min = minStep
	}
	rng := rand.New(rand.NewSource(seed))
	e := &Engine{
		rules: rules,
		rng:   rng,
		bag:   NewBag(rng),
		grid:  NewGrid(rules.Width, rules.Height),
	}
	e.next = e.bag.Spawn(rules.Width)
	e.Reset()
	return e
}

// Reset clears the court, score and rows, promotes the next piece to current
// and returns the engine to the idle state.
func (e *Engine) Reset() {
	e.dt = 0
	e.queue = e.queue[:0]
	e.grid.Clear()
	e.score = 0
	e.vscore = 0
	e.setRows(0)
	e.level = 0
	e.bonus = false
	e.mirrored = false
	e.pauseOnLock = false
	e.current = e.next
	e.next = e.bag.Spawn(e.rules.Width)
	e.state = StateIdle
	e.invalid = InvalidAll
	e.emit(EventReset)
}

// Restart resets and immediately starts a new game.
func (e *Engine) Restart() {
	e.Reset()
	e.Start()
}

// Start moves an idle engine to playing.
func (e *Engine) Start() bool {
	if e.state != StateIdle {
		return false
	}
	e.setState(StatePlaying)
	e.emit(EventStarted)
	return true
}

// Pause suspends a playing game and snaps the visual score to the score.
func (e *Engine) Pause() bool {
	if e.state != StatePlaying {
		return false
	}
	e.setVisualScore(e.score)
	e.queue = e.queue[:0]
	e.setState(StatePaused)
	e.emit(EventPaused)
	return true
}

// Resume continues a paused game.
func (e *Engine) Resume() bool {
	if e.state != StatePaused {
		return false
	}
	e.setState(StatePlaying)
	e.emit(EventResumed)
	return true
}

// TogglePause pauses a running game, resumes a paused one, starts an idle one
// and restarts one that is over.
func (e *Engine) TogglePause() {
	switch e.state {
	case StatePlaying:
		e.Pause()
	case StatePaused:
		e.Resume()
	case StateIdle:
		e.Start()
	case StateGameOver:
		e.Restart()
	}
}

// MovePiece translates the current piece one cell. Moves into a wall, the
// floor or the stack are rejected and leave the piece where it is.
func (e *Engine) MovePiece(dir Direction) bool {
	if e.state != StatePlaying {
		return false
	}
	return e.move(dir)
}

func (e *Engine) move(dir Direction) bool {
	x, y := e.current.X, e.current.Y
	switch dir {
	case MoveLeft:
		x--
	case MoveRight:
		x++
	case MoveDown:
		y++
	}
	if Occupied(e.grid, e.current.Type, x, y, e.current.Dir) {
		return false
	}
	e.current.X, e.current.Y = x, y
	e.invalid |= InvalidGrid
	return true
}

// RotatePiece advances the rotation in place. There is no wall kick: a
// rotation that collides is rejected.
func (e *Engine) RotatePiece() bool {
	if e.state != StatePlaying {
		return false
	}
	dir := NextDir(e.current.Dir)
	if Occupied(e.grid, e.current.Type, e.current.X, e.current.Y, dir) {
		return false
	}
	e.current.Dir = dir
	e.invalid |= InvalidGrid
	return true
}

// HardDrop moves the piece down until it is blocked and awards the hard-drop
// bonus for each cell travelled. The piece locks on the next soft drop.
// Returns the number of rows dropped.
func (e *Engine) HardDrop() int {
	if e.state != StatePlaying {
		return 0
	}
	n := 0
	for e.move(MoveDown) {
		n++
	}
	if n > 0 {
		e.addScore(e.rules.Scoring.HardDropBonus * n)
	}
	return n
}

// SoftDrop moves the piece down one row, or locks it if it cannot move.
func (e *Engine) SoftDrop() {
	if e.state != StatePlaying {
		return
	}
	if e.move(MoveDown) {
		return
	}
	e.lock()
}

// lock writes the current piece into the court, clears completed rows,
// spawns the next piece and checks for game over.
func (e *Engine) lock() {
	e.addScore(e.rules.Scoring.LockBonus)
	for _, c := range e.current.Cells() {
		e.grid.Set(c.X, c.Y, e.current.Type)
	}
	e.invalid |= InvalidGrid
	e.emit(EventLocked)

	e.removeLines()

	e.current = e.next
	e.next = e.bag.Spawn(e.rules.Width)
	e.queue = e.queue[:0]
	e.invalid |= InvalidGrid | InvalidNext

	if Occupied(e.grid, e.current.Type, e.current.X, e.current.Y, e.current.Dir) {
		e.gameOver()
		return
	}

	if e.pauseOnLock {
		e.pauseOnLock = false
		e.Pause()
	}
}

func (e *Engine) removeLines() {
	n := e.grid.ClearCompleteRows()
	if n == 0 {
		return
	}
	if e.rules.Progression.MirrorOnClear && n%2 == 1 {
		e.mirrored = !e.mirrored
	}
	e.addRows(n)
	e.addScore(e.rules.Scoring.LineScore(n))
	e.emitEvent(Event{Type: EventLinesCleared, Score: e.score, Rows: e.rows, Lines: n, Level: e.level})
}

func (e *Engine) gameOver() {
	e.setVisualScore(e.score)
	e.queue = e.queue[:0]
	e.setState(StateGameOver)
	e.emit(EventGameOver)
}

func (e *Engine) addScore(n int) {
	e.score += n
	e.invalid |= InvalidScore
}

func (e *Engine) setVisualScore(n int) {
	e.vscore = n
	e.invalid |= InvalidScore
}

func (e *Engine) addRows(n int) {
	prevLevel := e.level
	e.setRows(e.rows + n)

	p := e.rules.Progression
	e.level = p.Level(e.rows)
	if e.level > prevLevel {
		e.emit(EventLevelUp)
		if p.PauseOnLevelUp {
			e.pauseOnLock = true
		}
	}
	if !e.bonus && p.Bonus(e.rows) {
		e.bonus = true
		e.emit(EventBonus)
	}
}

// setRows updates the row count and recomputes the drop interval.
func (e *Engine) setRows(n int) {
	e.rows = n
	e.step = e.rules.Speed.StepFor(n)
	e.invalid |= InvalidRows
}

func (e *Engine) setState(s State) {
	e.state = s
	e.invalid |= InvalidState
}

// Subscribe registers a listener for engine events.
func (e *Engine) Subscribe(l Listener) {
	e.listeners = append(e.listeners, l)
}

func (e *Engine) emit(t EventType) {
	e.emitEvent(Event{Type: t, Score: e.score, Rows: e.rows, Level: e.level})
}

func (e *Engine) emitEvent(ev Event) {
	for _, l := range e.listeners {
		l(ev)
	}
}

// Invalid returns the flags set since the last Validate.
func (e *Engine) Invalid() Invalidation {
	return e.invalid
}

// Validate clears the given flags once presentation has redrawn them.
func (e *Engine) Validate(f Invalidation) {
	e.invalid &^= f
}

// Grid returns the court. Callers must treat it as read-only.
func (e *Engine) Grid() *Grid { return e.grid }

// Current returns the falling piece.
func (e *Engine) Current() Piece { return e.current }

// Next returns the upcoming piece.
func (e *Engine) Next() Piece { return e.next }

// Score returns the exact score.
func (e *Engine) Score() int { return e.score }

// VisualScore returns the displayed score, which lags behind Score while
// playing and is the value to compare against a stored highscore.
func (e *Engine) VisualScore() int { return e.vscore }

// Rows returns the number of completed rows.
func (e *Engine) Rows() int { return e.rows }

// Level returns the progression level.
func (e *Engine) Level() int { return e.level }

// Bonus reports whether the bonus stage has been reached.
func (e *Engine) Bonus() bool { return e.bonus }

// Mirrored reports whether left and right controls are currently swapped.
func (e *Engine) Mirrored() bool { return e.mirrored }

// Step returns the current drop interval in seconds.
func (e *Engine) Step() float64 { return e.step }

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// IsPlaying reports whether the game is running.
func (e *Engine) IsPlaying() bool { return e.state == StatePlaying }

// IsPaused reports whether the game is paused.
func (e *Engine) IsPaused() bool { return e.state == StatePaused }

// IsGameOver reports whether the game has ended.
func (e *Engine) IsGameOver() bool { return e.state == StateGameOver }

// Rules returns the rules the engine was built with.
func (e *Engine) Rules() Rules { return e.rules }

// GhostY returns the row the current piece would land on.
func (e *Engine) GhostY() int {
	return e.current.Y + DropDistance(e.grid, e.current)
}
