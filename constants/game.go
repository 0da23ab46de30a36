package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the simulation tick interval (50 Hz)
	GameUpdateInterval = 20 * time.Millisecond

	// TicksPerSecond is GameUpdateInterval expressed as a rate, used by the windowed frontend
	TicksPerSecond = int(time.Second / GameUpdateInterval)
)

// Match Rules
const (
	// WinScore is the score that ends the match
	WinScore = 10

	// DefaultLeftName is the display name used when the left player leaves the name blank
	DefaultLeftName = "Player 1"

	// DefaultRightName is the display name used when the right player leaves the name blank
	DefaultRightName = "Player 2"
)
