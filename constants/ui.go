package constants

import "time"

// Terminal Layout
const (
	// StatusBarHeight is the number of rows reserved below the court
	StatusBarHeight = 1

	// MatchIDDisplayLength is how many characters of the match id the status bar shows
	MatchIDDisplayLength = 8
)

// Text shown by both frontends
const (
	ServePrompt   = "press space to serve"
	PausedText    = "PAUSED"
	WinSuffix     = " Wins!"
	RestartPrompt = "press r to play again, q to quit"
)

// Input Timing
const (
	// KeyHoldTimeout is how long a terminal key counts as held after its last press or repeat
	// Terminals deliver key presses and auto-repeats but no releases
	KeyHoldTimeout = 250 * time.Millisecond

	// KeyRepeatDelay is how long a fresh press counts as held before its first auto-repeat
	// Covers the OS repeat delay (X11 defaults to 660 ms)
	KeyRepeatDelay = 700 * time.Millisecond

	// EventChannelSize is the buffer between the terminal poller and the main loop
	EventChannelSize = 256
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
