package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestManualTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewManualTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time %v, got %v", startTime, now)
	}

	mock.Advance(5 * time.Second)
	if now := mock.Now(); !now.Equal(startTime.Add(5 * time.Second)) {
		t.Errorf("Expected advanced time %v, got %v", startTime.Add(5*time.Second), now)
	}
}

// TestPausableClockFreezes verifies game time stands still across a pause
func TestPausableClockFreezes(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewManualTimeProvider(start)
	clock := NewPausableClockWithSource(mock)

	mock.Advance(100 * time.Millisecond)
	before := clock.Now()

	clock.Pause()
	mock.Advance(time.Second)
	if got := clock.Now(); !got.Equal(before) {
		t.Errorf("Expected frozen time %v, got %v", before, got)
	}
	if got := clock.TotalPauseDuration(); got != time.Second {
		t.Errorf("Expected 1s paused, got %v", got)
	}

	clock.Resume()
	mock.Advance(20 * time.Millisecond)
	if got := clock.Now().Sub(before); got != 20*time.Millisecond {
		t.Errorf("Expected 20ms game time after resume, got %v", got)
	}
}

// TestPausableClockIdempotent verifies repeated pause and resume calls are harmless
func TestPausableClockIdempotent(t *testing.T) {
	mock := NewManualTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClockWithSource(mock)

	clock.Pause()
	mock.Advance(time.Second)
	clock.Pause()
	clock.Resume()
	clock.Resume()

	if got := clock.TotalPauseDuration(); got != time.Second {
		t.Errorf("Expected 1s paused, got %v", got)
	}
	if clock.IsPaused() {
		t.Error("Expected clock running")
	}
}
