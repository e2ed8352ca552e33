package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform frames per second (default 60)
	Seed     int64 // RNG seed for the piece sequence
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the summary a game reports to the platform after every step.
type GameState struct {
	Score    int  // Score to display and persist
	Rows     int  // Completed rows
	Level    int  // Progression level, 0 when the variant has no levels
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Started  bool // False until the player starts the first game
}

// Event is a notable moment reported by a game during a step, such as a
// line clear or a level up. The platform logs events; games never log.
type Event struct {
	Name  string
	Score int
	Rows  int
	Lines int // rows removed at once, for line clear events
	Level int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event // in the order they happened
}
