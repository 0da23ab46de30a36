package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

// TestOscillatorWaves verifies every wave stays in range and ends on time
func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)

	for _, wave := range []WaveType{WaveSine, WaveSquare} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		n, peak := drain(osc)
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: expected %d samples, got %d", wave, rate.N(100*time.Millisecond), n)
		}
		if peak > 1.0 {
			t.Errorf("wave %d: sample out of range: %f", wave, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: expected no error, got %v", wave, osc.Err())
		}
	}
}

// TestEnvelopeShape verifies attack starts silent and release ends near zero
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // constant 1.0
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	buf := make([][2]float64, 1000)
	n, _ := env.Stream(buf)
	if n != 1000 {
		t.Fatalf("Expected 1000 samples, got %d", n)
	}

	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if buf[500][0] != 1 {
		t.Errorf("Expected full sustain, got %f", buf[500][0])
	}
	if buf[999][0] > 0.02 {
		t.Errorf("Expected release near zero, got %f", buf[999][0])
	}
}

// TestHitFrequency verifies pitch rises with ball speed
func TestHitFrequency(t *testing.T) {
	if got := HitFrequency(7); got != 440 {
		t.Errorf("Expected 440 Hz at initial speed, got %v", got)
	}
	if got := HitFrequency(9); got != 520 {
		t.Errorf("Expected 520 Hz at speed 9, got %v", got)
	}
	if got := HitFrequency(3); got != 440 {
		t.Errorf("Expected floor at base pitch, got %v", got)
	}
}

// TestSoundEffects verifies every effect is finite and bounded
func TestSoundEffects(t *testing.T) {
	cfg := DefaultAudioConfig()

	for st := SoundType(0); st < soundTypeCount; st++ {
		s := GetSoundEffect(st, cfg, 8)
		if s == nil {
			t.Fatalf("Expected streamer for %v", st)
		}
		n, peak := drain(s)
		if n == 0 {
			t.Errorf("%v: expected samples", st)
		}
		if peak > 1.0 {
			t.Errorf("%v: peak %f exceeds unity", st, peak)
		}
	}

	if GetSoundEffect(soundTypeCount, cfg, 0) != nil {
		t.Error("Expected nil for unknown sound type")
	}
}

// TestSilentVolume verifies zero master volume produces silence
func TestSilentVolume(t *testing.T) {
	cfg := NewAudioConfig(true, 0, 0)
	_, peak := drain(CreateWallSound(cfg))
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %f", peak)
	}
}
