package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/events"
)

// SoundManager plays game sound effects through a single beep mixer
// Every Play method is a safe no-op before Initialize, after Cleanup, or when disabled
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool

	now        func() time.Time
	lastPlayed [soundTypeCount]time.Time
	played     [soundTypeCount]int
}

// NewSoundManager creates a sound manager; nil cfg selects the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize opens the speaker and attaches the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all sounds; the speaker stays open since beep cannot reopen it
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// Initialized reports whether sounds reach the speaker
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Played returns how many sounds of a type were queued since creation
func (sm *SoundManager) Played(st SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[st]
}

// play queues a sound, dropping repeats of the same type within MinSoundGap
func (sm *SoundManager) play(st SoundType, speed float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	now := sm.now()
	if now.Sub(sm.lastPlayed[st]) < constants.MinSoundGap {
		return
	}
	sm.lastPlayed[st] = now
	sm.played[st]++

	streamer := GetSoundEffect(st, sm.cfg, speed)
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayHit plays the paddle blip tuned to the ball speed
func (sm *SoundManager) PlayHit(speed float64) { sm.play(SoundHit, speed) }

// PlayWall plays the wall thud
func (sm *SoundManager) PlayWall() { sm.play(SoundWall, 0) }

// PlayScore plays the point chime
func (sm *SoundManager) PlayScore() { sm.play(SoundScore, 0) }

// PlayWin plays the match fanfare
func (sm *SoundManager) PlayWin() { sm.play(SoundWin, 0) }

// HandleEvent implements events.Handler
func (sm *SoundManager) HandleEvent(ev events.GameEvent) {
	switch ev.Type {
	case events.EventPaddleHit:
		if p, ok := ev.Payload.(*events.PaddleHitPayload); ok {
			sm.PlayHit(p.Speed)
		}
	case events.EventWallBounce:
		sm.PlayWall()
	case events.EventScore:
		sm.PlayScore()
	case events.EventMatchOver:
		sm.PlayWin()
	}
}

// EventTypes implements events.Handler
func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventPaddleHit,
		events.EventWallBounce,
		events.EventScore,
		events.EventMatchOver,
	}
}
