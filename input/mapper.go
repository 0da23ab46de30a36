package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/pong"
)

// PaddleController receives paddle velocity changes
// The engine enqueues them for the next tick
type PaddleController interface {
	SetPaddleVelocity(side pong.Side, dy float64)
}

// direction held on one paddle
type heldKey struct {
	down     bool
	repeated bool // an auto-repeat arrived since the press
	lastSeen time.Time
}

type paddleInput struct {
	up, down heldKey
	// preferUp breaks ties when both directions are held: the later press wins
	preferUp bool
	dy       float64
}

// Mapper translates key and touch input into paddle velocities
// It never reads simulation state; safe for concurrent use
//
// Releasing one direction while the opposite is still held resumes the held
// direction instead of stopping the paddle, unlike a plain key-up zeroing dy
type Mapper struct {
	mu          sync.Mutex
	ctrl        PaddleController
	speed       float64
	holdTimeout time.Duration // between auto-repeats
	firstHold   time.Duration // from a press to its first auto-repeat
	paddles     [2]paddleInput
}

// NewMapper creates a mapper driving ctrl with the default paddle speed
// holdTimeout <= 0 disables synthesized releases
func NewMapper(ctrl PaddleController, holdTimeout time.Duration) *Mapper {
	return &Mapper{
		ctrl:        ctrl,
		speed:       constants.PaddleSpeed,
		holdTimeout: holdTimeout,
		firstHold:   max(holdTimeout, constants.KeyRepeatDelay),
	}
}

// SetController swaps the target, used when a restart builds a new game
func (m *Mapper) SetController(ctrl PaddleController) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ctrl = ctrl
	m.paddles = [2]paddleInput{}
}

func paddleTarget(a Action) (side pong.Side, up bool) {
	switch a {
	case ActionLeftUp:
		return pong.Left, true
	case ActionLeftDown:
		return pong.Left, false
	case ActionRightUp:
		return pong.Right, true
	default:
		return pong.Right, false
	}
}

// Press records a key-down or auto-repeat for a paddle action
// Returns false for non-paddle actions, which the caller handles
func (m *Mapper) Press(a Action, now time.Time) bool {
	if !a.IsPaddle() {
		return false
	}
	side, up := paddleTarget(a)

	m.mu.Lock()
	defer m.mu.Unlock()

	p := &m.paddles[side]
	key := &p.down
	if up {
		key = &p.up
	}
	if !key.down {
		p.preferUp = up
	}
	key.repeated = key.down
	key.down = true
	key.lastSeen = now
	m.update(side)
	return true
}

// Release records a key-up for a paddle action
func (m *Mapper) Release(a Action) bool {
	if !a.IsPaddle() {
		return false
	}
	side, up := paddleTarget(a)

	m.mu.Lock()
	defer m.mu.Unlock()

	p := &m.paddles[side]
	if up {
		p.up.down = false
	} else {
		p.down.down = false
	}
	m.update(side)
	return true
}

// Expire synthesizes releases for keys that have gone quiet
// A fresh press waits out the OS repeat delay; once repeating, the hold timeout applies
// Terminals report presses only, so the terminal frontend calls this every frame
func (m *Mapper) Expire(now time.Time) {
	if m.holdTimeout <= 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.paddles {
		p := &m.paddles[i]
		changed := false
		for _, k := range []*heldKey{&p.up, &p.down} {
			window := m.firstHold
			if k.repeated {
				window = m.holdTimeout
			}
			if k.down && now.Sub(k.lastSeen) > window {
				k.down = false
				k.repeated = false
				changed = true
			}
		}
		if changed {
			m.update(pong.Side(i))
		}
	}
}

// Touch handles touch-start and touch-move at (x, y) on a w×h surface
func (m *Mapper) Touch(x, y, w, h float64) {
	side, dy := TouchVelocity(x, y, w, h, m.speed)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.set(side, dy)
}

// TouchEnd stops both paddles and forgets held keys
func (m *Mapper) TouchEnd() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.paddles {
		m.paddles[i].up.down = false
		m.paddles[i].down.down = false
		m.set(pong.Side(i), 0)
	}
}

// Velocity returns the last velocity sent for a side
func (m *Mapper) Velocity(side pong.Side) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paddles[side].dy
}

// update derives the velocity from the held keys; caller holds mu
func (m *Mapper) update(side pong.Side) {
	p := &m.paddles[side]
	var dy float64
	switch {
	case p.up.down && p.down.down:
		dy = m.speed
		if p.preferUp {
			dy = -m.speed
		}
	case p.up.down:
		dy = -m.speed
	case p.down.down:
		dy = m.speed
	}
	m.set(side, dy)
}

// set forwards a velocity change to the controller; caller holds mu
func (m *Mapper) set(side pong.Side, dy float64) {
	p := &m.paddles[side]
	if p.dy == dy {
		return
	}
	p.dy = dy
	if m.ctrl != nil {
		m.ctrl.SetPaddleVelocity(side, dy)
	}
}

// TouchVelocity maps a touch point to a paddle and velocity
// Left half of the surface selects the left paddle; top half moves up
func TouchVelocity(x, y, w, h, speed float64) (pong.Side, float64) {
	side := pong.Right
	if x < w/2 {
		side = pong.Left
	}
	if y < h/2 {
		return side, -speed
	}
	return side, speed
}
