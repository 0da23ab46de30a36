package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the default speaker sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap is the minimum gap between two sounds of the same kind (one tick)
	MinSoundGap = GameUpdateInterval
)

// Paddle Hit Sound
const (
	HitSoundDuration = 60 * time.Millisecond
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 40 * time.Millisecond

	// HitSoundBaseFreq is the pitch of a hit at initial ball speed
	HitSoundBaseFreq = 440.0

	// HitSoundFreqPerSpeed raises the pitch per unit of ball speed above the initial speed
	HitSoundFreqPerSpeed = 40.0
)

// Wall Bounce Sound
const (
	WallSoundDuration = 40 * time.Millisecond
	WallSoundAttack   = 2 * time.Millisecond
	WallSoundRelease  = 30 * time.Millisecond
	WallSoundFreq     = 220.0
)

// Score Sound
const (
	ScoreSoundNote1Duration = 90 * time.Millisecond
	ScoreSoundNote2Duration = 220 * time.Millisecond
	ScoreSoundAttack        = 5 * time.Millisecond
	ScoreSoundNote1Release  = 50 * time.Millisecond
	ScoreSoundNote2Release  = 180 * time.Millisecond
)

// Win Fanfare
const (
	WinSoundNoteDuration = 160 * time.Millisecond
	WinSoundAttack       = 5 * time.Millisecond
	WinSoundRelease      = 100 * time.Millisecond
)
