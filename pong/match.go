package pong

import (
	"github.com/lixenwraith/vi-pong/constants"
)

// Phase is the match state machine position
type Phase int

const (
	// PhaseServing is the state before the first tick; the ball has not moved yet
	PhaseServing Phase = iota
	// PhaseRallying covers continuous play including bounces, hits and instantaneous scoring
	PhaseRallying
	// PhaseOver is terminal; no further step mutates the match
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseServing:
		return "serving"
	case PhaseRallying:
		return "rallying"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Config holds the tuning values of a match
type Config struct {
	Width, Height float64

	BallRadius     float64
	BallVX, BallVY float64
	BallSpeed      float64
	SpeedIncrement float64
	MaxBounceAngle float64

	PaddleWidth  float64
	PaddleHeight float64

	WinScore int

	LeftName  string
	RightName string
}

// DefaultConfig returns the classic 800x400 rules
func DefaultConfig() Config {
	return Config{
		Width:          constants.CourtWidth,
		Height:         constants.CourtHeight,
		BallRadius:     constants.BallRadius,
		BallVX:         constants.BallInitialVX,
		BallVY:         constants.BallInitialVY,
		BallSpeed:      constants.BallInitialSpeed,
		SpeedIncrement: constants.BallSpeedIncrement,
		MaxBounceAngle: constants.MaxBounceAngle,
		PaddleWidth:    constants.PaddleWidth,
		PaddleHeight:   constants.PaddleHeight,
		WinScore:       constants.WinScore,
		LeftName:       constants.DefaultLeftName,
		RightName:      constants.DefaultRightName,
	}
}

// Match owns the entity set of one game from serve to win
// Not safe for concurrent use; a single scheduler goroutine steps it
type Match struct {
	cfg Config

	Court Court
	Ball  Ball
	Left  Paddle
	Right Paddle
	Net   Net

	phase  Phase
	winner Side
	tick   uint64
}

// NewMatch creates all entities at their bounds-derived starting positions
func NewMatch(cfg Config) *Match {
	m := &Match{
		cfg:   cfg,
		Court: Court{Width: cfg.Width, Height: cfg.Height},
		phase: PhaseServing,
	}

	m.Ball = Ball{
		X:      cfg.Width / 2,
		Y:      cfg.Height / 2,
		VX:     cfg.BallVX,
		VY:     cfg.BallVY,
		Radius: cfg.BallRadius,
		Speed:  cfg.BallSpeed,
		Color:  White,
	}

	paddleY := (cfg.Height - cfg.PaddleHeight) / 2
	m.Left = Paddle{
		Side:   Left,
		Name:   cfg.LeftName,
		X:      0,
		Y:      paddleY,
		Width:  cfg.PaddleWidth,
		Height: cfg.PaddleHeight,
		Color:  White,
	}
	m.Right = Paddle{
		Side:   Right,
		Name:   cfg.RightName,
		X:      cfg.Width - cfg.PaddleWidth,
		Y:      paddleY,
		Width:  cfg.PaddleWidth,
		Height: cfg.PaddleHeight,
		Color:  White,
	}

	m.Net = Net{
		X:          (cfg.Width - constants.NetWidth) / 2,
		Width:      constants.NetWidth,
		DashHeight: constants.NetDashHeight,
		DashPeriod: constants.NetDashPeriod,
		Color:      White,
	}

	return m
}

// Config returns the rules the match was created with
func (m *Match) Config() Config { return m.cfg }

// Phase returns the current state machine position
func (m *Match) Phase() Phase { return m.phase }

// Over reports whether the match has ended
func (m *Match) Over() bool { return m.phase == PhaseOver }

// Winner returns the winning side; valid only when Over is true
func (m *Match) Winner() Side { return m.winner }

// Ticks returns the number of steps that advanced the simulation
func (m *Match) Ticks() uint64 { return m.tick }

// Paddle returns the paddle defending the given side
func (m *Match) Paddle(side Side) *Paddle {
	if side == Left {
		return &m.Left
	}
	return &m.Right
}

// SetPaddleVelocity sets a paddle's vertical velocity; the only write input may perform
func (m *Match) SetPaddleVelocity(side Side, dy float64) {
	m.Paddle(side).DY = dy
}

// Serve moves a fresh match into play; calling it later has no effect
func (m *Match) Serve() bool {
	if m.phase != PhaseServing {
		return false
	}
	m.phase = PhaseRallying
	return true
}

// Step advances the simulation by one fixed tick
// A match still serving is served implicitly; a finished match is left untouched
func (m *Match) Step() Outcome {
	if m.phase == PhaseOver {
		return Outcome{Over: true, Winner: m.winner}
	}
	m.phase = PhaseRallying
	m.tick++

	var out Outcome
	b := &m.Ball

	// Integration
	b.X += b.VX
	b.Y += b.VY
	m.Left.Y += m.Left.DY
	m.Right.Y += m.Right.DY

	// Wall bounce, no position correction
	if b.Top() < 0 || b.Bottom() > m.Court.Height {
		b.VY = -b.VY
		out.WallBounce = true
	}

	// Only the paddle on the ball's half is considered
	leftHalf := b.X < m.Court.CenterX()
	p := &m.Right
	direction := -1.0
	if leftHalf {
		p = &m.Left
		direction = 1.0
	}

	if Collides(b, p) {
		out.Hit = true
		out.HitSide = p.Side
		out.HitAngle = deflect(b, p, direction, m.cfg.MaxBounceAngle, m.cfg.SpeedIncrement)
	}

	// Scoring, mutually exclusive by geometry
	if b.Left() < 0 {
		m.Right.Score++
		m.ResetBall()
		out.Scored = true
		out.Scorer = Right
	} else if b.Right() > m.Court.Width {
		m.Left.Score++
		m.ResetBall()
		out.Scored = true
		out.Scorer = Left
	}

	if out.Scored {
		m.checkWin()
	}
	out.Over = m.phase == PhaseOver
	out.Winner = m.winner

	return out
}

// ResetBall re-serves from the court center
// The sign flip of VX alone picks the serve direction; VY is kept from before the reset
func (m *Match) ResetBall() {
	b := &m.Ball
	b.X = m.Court.CenterX()
	b.Y = m.Court.CenterY()
	b.VX = -b.VX
	b.Speed = m.cfg.BallSpeed
}

func (m *Match) checkWin() {
	switch {
	case m.Left.Score >= m.cfg.WinScore:
		m.phase = PhaseOver
		m.winner = Left
	case m.Right.Score >= m.cfg.WinScore:
		m.phase = PhaseOver
		m.winner = Right
	}
}

// Resize rescales entity positions to new court bounds
// Velocities, speed, sizes and scores are preserved; paddles stay flush with their edges
func (m *Match) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	sx := width / m.Court.Width
	sy := height / m.Court.Height

	m.Ball.X *= sx
	m.Ball.Y *= sy

	m.Left.X = 0
	m.Left.Y *= sy
	m.Right.X = width - m.Right.Width
	m.Right.Y *= sy

	m.Net.X = (width - m.Net.Width) / 2

	m.Court.Width = width
	m.Court.Height = height
}

// WinnerName returns the display name of the winner, empty while the match is running
func (m *Match) WinnerName() string {
	if m.phase != PhaseOver {
		return ""
	}
	return m.Paddle(m.winner).Name
}
