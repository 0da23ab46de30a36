package engine

import (
	"sync"
	"time"
)

// PausableClock is the game time base: source time minus every paused interval
// The scheduler reads it to place tick deadlines, so a pause never produces a burst of catch-up ticks
type PausableClock struct {
	mu     sync.RWMutex
	source TimeProvider

	paused   bool
	frozenAt time.Time     // source time the current pause began
	lost     time.Duration // total paused time of completed pauses
}

// NewPausableClock creates a clock backed by the system monotonic clock
func NewPausableClock() *PausableClock {
	return NewPausableClockWithSource(NewMonotonicTimeProvider())
}

// NewPausableClockWithSource creates a clock backed by the given provider
func NewPausableClockWithSource(source TimeProvider) *PausableClock {
	return &PausableClock{source: source}
}

// Now returns game time, frozen while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	at := pc.source.Now()
	if pc.paused {
		at = pc.frozenAt
	}
	return at.Add(-pc.lost)
}

// Pause freezes game time; returns false if already paused
func (pc *PausableClock) Pause() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return false
	}
	pc.paused = true
	pc.frozenAt = pc.source.Now()
	return true
}

// Resume lets game time run again; returns false if not paused
func (pc *PausableClock) Resume() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return false
	}
	pc.paused = false
	pc.lost += pc.source.Now().Sub(pc.frozenAt)
	return true
}

func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration includes a pause still in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.lost + pc.source.Now().Sub(pc.frozenAt)
	}
	return pc.lost
}
