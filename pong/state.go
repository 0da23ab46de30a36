package pong

// Outcome reports what happened during one step
type Outcome struct {
	WallBounce bool

	Hit      bool
	HitSide  Side
	HitAngle float64 // radians, positive deflects downward

	Scored bool
	Scorer Side

	Over   bool
	Winner Side
}

// State is an immutable copy of the entity set for renderers
type State struct {
	Court Court
	Ball  Ball
	Left  Paddle
	Right Paddle
	Net   Net

	Phase      Phase
	Winner     Side
	WinnerName string
	Tick       uint64
}

// Paddle returns the copied paddle for a side
func (s *State) Paddle(side Side) Paddle {
	if side == Left {
		return s.Left
	}
	return s.Right
}

// Snapshot copies the current entity set
func (m *Match) Snapshot() State {
	return State{
		Court:      m.Court,
		Ball:       m.Ball,
		Left:       m.Left,
		Right:      m.Right,
		Net:        m.Net,
		Phase:      m.phase,
		Winner:     m.winner,
		WinnerName: m.WinnerName(),
		Tick:       m.tick,
	}
}
