package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventMatchStart signals a fresh match entering play
	// Trigger: first serve of a match | Payload: *MatchStartPayload
	EventMatchStart EventType = iota

	// EventWallBounce signals the ball reflecting off the top or bottom wall
	// Trigger: simulation step | Consumer: SoundManager | Payload: nil
	EventWallBounce

	// EventPaddleHit signals a paddle deflecting the ball
	// Trigger: simulation step | Consumer: SoundManager | Payload: *PaddleHitPayload
	EventPaddleHit

	// EventScore signals a point; the ball has already been re-served
	// Trigger: simulation step | Consumer: SoundManager, logger | Payload: *ScorePayload
	EventScore

	// EventMatchOver signals the terminal transition, no tick follows
	// Trigger: simulation step | Consumer: SoundManager, scheduler | Payload: *MatchOverPayload
	EventMatchOver

	// EventPause signals the tick loop was paused
	// Trigger: pause action | Payload: nil
	EventPause

	// EventResume signals the tick loop was resumed
	// Trigger: pause action | Payload: nil
	EventResume

	// EventRestart signals all match state was discarded and rebuilt
	// Trigger: restart action | Payload: *MatchStartPayload
	EventRestart
)

var eventNames = map[EventType]string{
	EventMatchStart: "match_start",
	EventWallBounce: "wall_bounce",
	EventPaddleHit:  "paddle_hit",
	EventScore:      "score",
	EventMatchOver:  "match_over",
	EventPause:      "pause",
	EventResume:     "resume",
	EventRestart:    "restart",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Tick      uint64 // Simulation tick that produced the event
	Timestamp time.Time
}
