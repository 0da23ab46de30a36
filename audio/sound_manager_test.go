package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/vi-pong/events"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayHit(7)
	sm.PlayWall()
	sm.PlayScore()
	sm.PlayWin()
	sm.HandleEvent(events.GameEvent{Type: events.EventPaddleHit, Payload: &events.PaddleHitPayload{Speed: 9}})
	sm.Cleanup()

	for st := SoundType(0); st < soundTypeCount; st++ {
		if sm.Played(st) != 0 {
			t.Errorf("Expected nothing queued for %v without initialization", st)
		}
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization may fail in CI/test environments without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.Cleanup()
	if sm.Initialized() {
		t.Error("Expected cleanup to detach the manager")
	}
}

// TestSoundManagerDisabled verifies a disabled config never opens the speaker
func TestSoundManagerDisabled(t *testing.T) {
	sm := NewSoundManager(NewAudioConfig(false, 0.5, 0))

	if err := sm.Initialize(); !errors.Is(err, ErrAudioDisabled) {
		t.Errorf("Expected ErrAudioDisabled, got %v", err)
	}
	if sm.Initialized() {
		t.Error("Expected manager to stay uninitialized")
	}
}

// TestSoundManagerRateLimit verifies repeats inside one tick are dropped
func TestSoundManagerRateLimit(t *testing.T) {
	sm := NewSoundManager(nil)
	// Mark initialized without touching the device; the mixer is never drained here
	sm.initialized = true

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	now := base
	sm.now = func() time.Time { return now }

	sm.PlayWall()
	now = base.Add(5 * time.Millisecond)
	sm.PlayWall()
	if got := sm.Played(SoundWall); got != 1 {
		t.Errorf("Expected 1 wall sound within gap, got %d", got)
	}

	now = base.Add(50 * time.Millisecond)
	sm.PlayWall()
	sm.PlayScore()
	if got := sm.Played(SoundWall); got != 2 {
		t.Errorf("Expected 2 wall sounds after gap, got %d", got)
	}
	if got := sm.Played(SoundScore); got != 1 {
		t.Errorf("Expected score sound unaffected by wall gap, got %d", got)
	}
}

// TestSoundManagerRoutesEvents verifies event types map to sounds
func TestSoundManagerRoutesEvents(t *testing.T) {
	sm := NewSoundManager(nil)
	sm.initialized = true

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	step := 0
	sm.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Second)
	}

	sm.HandleEvent(events.GameEvent{Type: events.EventPaddleHit, Payload: &events.PaddleHitPayload{Speed: 7.2}})
	sm.HandleEvent(events.GameEvent{Type: events.EventWallBounce})
	sm.HandleEvent(events.GameEvent{Type: events.EventScore, Payload: &events.ScorePayload{}})
	sm.HandleEvent(events.GameEvent{Type: events.EventMatchOver, Payload: &events.MatchOverPayload{}})
	sm.HandleEvent(events.GameEvent{Type: events.EventPause})

	for st := SoundType(0); st < soundTypeCount; st++ {
		if got := sm.Played(st); got != 1 {
			t.Errorf("Expected one %v sound, got %d", st, got)
		}
	}

	if len(sm.EventTypes()) != 4 {
		t.Errorf("Expected 4 handled event types, got %d", len(sm.EventTypes()))
	}
}
