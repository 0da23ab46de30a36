package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundHit   SoundType = iota // Paddle deflection, pitch follows ball speed
	SoundWall                   // Top or bottom wall bounce
	SoundScore                  // Point scored
	SoundWin                    // Match over fanfare
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"hit", "wall", "score", "win"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
