package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-pong/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := 1.0
		switch {
		case o.wave == WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case o.phase >= 0.5:
			val = -1.0
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a gain stage; math.Log2(0) is -Inf so zero gain is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// HitFrequency maps ball speed to the hit pitch; faster rallies sound higher
func HitFrequency(speed float64) float64 {
	delta := max(speed-constants.BallInitialSpeed, 0)
	return constants.HitSoundBaseFreq + constants.HitSoundFreqPerSpeed*delta
}

// CreateHitSound generates a short square blip for a paddle deflection
func CreateHitSound(cfg *AudioConfig, speed float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(HitFrequency(speed), constants.HitSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundHit))
}

// CreateWallSound generates a low thud for a wall bounce
func CreateWallSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constants.WallSoundFreq, constants.WallSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.WallSoundDuration, constants.WallSoundAttack, constants.WallSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundWall))
}

// CreateScoreSound generates a falling two-note chime for a point
func CreateScoreSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// E5 then A4
	n1 := NewOscillator(659.25, constants.ScoreSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.ScoreSoundNote1Duration, constants.ScoreSoundAttack, constants.ScoreSoundNote1Release, rate)

	n2 := NewOscillator(440.0, constants.ScoreSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.ScoreSoundNote2Duration, constants.ScoreSoundAttack, constants.ScoreSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.volume(SoundScore))
}

// CreateWinSound generates a rising major arpeggio with an octave overtone
func CreateWinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// C5 E5 G5 C6
	notes := []float64{523.25, 659.25, 783.99, 1046.50}
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		fund := NewEnvelope(NewOscillator(f, constants.WinSoundNoteDuration, WaveSine, rate),
			constants.WinSoundNoteDuration, constants.WinSoundAttack, constants.WinSoundRelease, rate)
		over := NewEnvelope(NewOscillator(2*f, constants.WinSoundNoteDuration, WaveSine, rate),
			constants.WinSoundNoteDuration, constants.WinSoundAttack, constants.WinSoundRelease, rate)
		seq = append(seq, beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3)))
	}

	return newVolume(beep.Seq(seq...), cfg.volume(SoundWin))
}

// GetSoundEffect returns the streamer for a sound type; speed only affects SoundHit
func GetSoundEffect(soundType SoundType, cfg *AudioConfig, speed float64) beep.Streamer {
	switch soundType {
	case SoundHit:
		return CreateHitSound(cfg, speed)
	case SoundWall:
		return CreateWallSound(cfg)
	case SoundScore:
		return CreateScoreSound(cfg)
	case SoundWin:
		return CreateWinSound(cfg)
	default:
		return nil
	}
}
