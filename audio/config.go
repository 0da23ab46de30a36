package audio

import (
	"github.com/lixenwraith/vi-pong/constants"
)

// AudioConfig holds sound settings resolved by the config package
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the default mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundHit:   0.8,
			SoundWall:  0.5,
			SoundScore: 0.9,
			SoundWin:   1.0,
		},
	}
}

// NewAudioConfig builds a config from user settings over the default mix
func NewAudioConfig(enabled bool, masterVolume float64, sampleRate int) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = enabled
	cfg.MasterVolume = min(max(masterVolume, 0), 1)
	if sampleRate > 0 {
		cfg.SampleRate = sampleRate
	}
	return cfg
}

// volume returns the effective gain for a sound type
func (c *AudioConfig) volume(st SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
