package constants

import "testing"

func TestTickRate(t *testing.T) {
	if TicksPerSecond != 50 {
		t.Errorf("Expected 50 ticks per second, got %d", TicksPerSecond)
	}
	if FrameUpdateInterval >= GameUpdateInterval {
		t.Errorf("Expected frames (%v) to be faster than ticks (%v)", FrameUpdateInterval, GameUpdateInterval)
	}
}

func TestEventBufferMask(t *testing.T) {
	if EventQueueSize&(EventQueueSize-1) != 0 {
		t.Fatalf("Expected power-of-two queue size, got %d", EventQueueSize)
	}
	if EventBufferMask != EventQueueSize-1 {
		t.Errorf("Expected mask %d, got %d", EventQueueSize-1, EventBufferMask)
	}
}

func TestPaddleFitsCourt(t *testing.T) {
	if PaddleHeight >= CourtHeight {
		t.Errorf("Expected paddle height %v below court height %v", PaddleHeight, CourtHeight)
	}
	if 2*BallRadius >= CourtWidth/2 {
		t.Errorf("Expected ball diameter %v to fit half court", 2*BallRadius)
	}
}
