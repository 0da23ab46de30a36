package events

import (
	"github.com/lixenwraith/vi-pong/pong"
)

// MatchStartPayload identifies the match that entered play
type MatchStartPayload struct {
	MatchID   string
	LeftName  string
	RightName string
}

// PaddleHitPayload carries the deflecting side and the ball speed after the hit
type PaddleHitPayload struct {
	Side  pong.Side
	Speed float64
	Angle float64
}

// ScorePayload carries the scorer and the score after the point
type ScorePayload struct {
	Scorer pong.Side
	Left   int
	Right  int
}

// MatchOverPayload carries the final result
type MatchOverPayload struct {
	MatchID string
	Winner  pong.Side
	Name    string
	Left    int
	Right   int
}
