package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-pong/events"
	"github.com/lixenwraith/vi-pong/pong"
	"github.com/lixenwraith/vi-pong/status"
)

// Snapshot is the immutable view published after every tick
type Snapshot struct {
	pong.State
	MatchID string
	Paused  bool
}

type commandKind int

const (
	cmdVelocity commandKind = iota
	cmdResize
	cmdServe
)

type command struct {
	kind          commandKind
	side          pong.Side
	dy            float64
	width, height float64
}

// Game owns one match and is the only writer of its entity state
// Input goroutines enqueue commands; Tick applies them on the scheduler goroutine
type Game struct {
	cfg pong.Config

	// mu serializes Tick against Restart
	mu      sync.Mutex
	match   *pong.Match
	matchID string
	done    chan struct{}

	cmdMu   sync.Mutex
	pending []command

	paused atomic.Bool
	clock  *PausableClock

	queue  *events.EventQueue
	router *events.Router

	snapshot atomic.Pointer[Snapshot]

	statusReg   *status.Registry
	statTicks   *atomic.Int64
	statHits    *atomic.Int64
	statBounces *atomic.Int64
	statPoints  *atomic.Int64
	statSpeed   *status.Float
	statPaused  *atomic.Bool
}

// NewGame creates a game around a fresh match built from cfg
func NewGame(cfg pong.Config, clock *PausableClock, reg *status.Registry) *Game {
	if clock == nil {
		clock = NewPausableClock()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	queue := events.NewEventQueue()
	g := &Game{
		cfg:         cfg,
		clock:       clock,
		queue:       queue,
		router:      events.NewRouter(queue),
		statusReg:   reg,
		statTicks:   reg.Ints.Get(status.KeyTicks),
		statHits:    reg.Ints.Get(status.KeyHits),
		statBounces: reg.Ints.Get(status.KeyBounces),
		statPoints:  reg.Ints.Get(status.KeyPoints),
		statSpeed:   reg.Floats.Get(status.KeyBallSpeed),
		statPaused:  reg.Bools.Get(status.KeyPaused),
	}
	g.reset()
	return g
}

// reset builds a fresh match; caller holds mu or owns g exclusively
func (g *Game) reset() {
	g.match = pong.NewMatch(g.cfg)
	g.matchID = uuid.NewString()
	g.done = make(chan struct{})

	g.statTicks.Store(0)
	g.statHits.Store(0)
	g.statBounces.Store(0)
	g.statPoints.Store(0)
	g.statSpeed.Store(g.match.Ball.Speed)
	g.statusReg.Strings.Get(status.KeyMatchID).Store(g.matchID)

	g.publish()
}

// RegisterEventHandler adds an event handler to the router, must be called before ticking starts
func (g *Game) RegisterEventHandler(handler events.Handler) {
	g.router.Register(handler)
}

// Clock returns the pausable game clock driving the scheduler
func (g *Game) Clock() *PausableClock {
	return g.clock
}

// Status returns the metrics registry
func (g *Game) Status() *status.Registry {
	return g.statusReg
}

// MatchID returns the identifier of the current match
func (g *Game) MatchID() string {
	return g.Snapshot().MatchID
}

// Snapshot returns the state published by the last tick
func (g *Game) Snapshot() Snapshot {
	return *g.snapshot.Load()
}

// Done returns a channel closed when the current match ends
// A restart replaces the channel
func (g *Game) Done() <-chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.done
}

func (g *Game) enqueue(c command) {
	g.cmdMu.Lock()
	g.pending = append(g.pending, c)
	g.cmdMu.Unlock()
}

// SetPaddleVelocity implements input.PaddleController
func (g *Game) SetPaddleVelocity(side pong.Side, dy float64) {
	g.enqueue(command{kind: cmdVelocity, side: side, dy: dy})
}

// Resize requests new court bounds, applied at the start of the next tick
func (g *Game) Resize(width, height float64) {
	g.enqueue(command{kind: cmdResize, width: width, height: height})
}

// Serve requests the first serve of a match; later requests are ignored
func (g *Game) Serve() {
	g.enqueue(command{kind: cmdServe})
}

// Serving reports whether the match is waiting for its first serve
func (g *Game) Serving() bool {
	return g.Snapshot().Phase == pong.PhaseServing
}

// Paused reports whether ticks are currently suspended
func (g *Game) Paused() bool {
	return g.paused.Load()
}

// SetPaused suspends or resumes the simulation
// Game time freezes with it; a finished match cannot be paused
func (g *Game) SetPaused(paused bool) {
	if paused && g.Snapshot().Phase == pong.PhaseOver {
		return
	}
	if !g.paused.CompareAndSwap(!paused, paused) {
		return
	}

	evType := events.EventResume
	if paused {
		g.clock.Pause()
		evType = events.EventPause
	} else {
		g.clock.Resume()
		log.Printf("match %s resumed, %v paused in total", g.MatchID(), g.clock.TotalPauseDuration().Round(time.Millisecond))
	}
	g.statPaused.Store(paused)
	g.push(evType, nil)
	g.publishPaused()
}

// TogglePause flips the pause state
func (g *Game) TogglePause() {
	g.SetPaused(!g.paused.Load())
}

// Restart discards all match state and builds a fresh match with a new id
// Pending commands from the previous match are dropped
func (g *Game) Restart() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.cmdMu.Lock()
	g.pending = g.pending[:0]
	g.cmdMu.Unlock()

	// Stale events from the previous match
	_ = g.queue.Consume()

	if g.paused.CompareAndSwap(true, false) {
		g.clock.Resume()
		g.statPaused.Store(false)
	}

	g.reset()
	log.Printf("match %s restarted: %s vs %s", g.matchID, g.cfg.LeftName, g.cfg.RightName)

	g.push(events.EventRestart, &events.MatchStartPayload{
		MatchID:   g.matchID,
		LeftName:  g.cfg.LeftName,
		RightName: g.cfg.RightName,
	})
	g.router.DispatchAll()
}

// Tick applies pending commands, advances the match one step and publishes a snapshot
// Returns true once the match is over
func (g *Game) Tick() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.applyCommands()

	m := g.match
	if !g.paused.Load() && m.Phase() == pong.PhaseRallying {
		out := m.Step()
		g.statTicks.Store(int64(m.Ticks()))
		g.translate(out)
	}

	g.router.DispatchAll()
	g.publish()

	return m.Over()
}

func (g *Game) applyCommands() {
	g.cmdMu.Lock()
	cmds := g.pending
	g.pending = nil
	g.cmdMu.Unlock()

	for _, c := range cmds {
		switch c.kind {
		case cmdVelocity:
			g.match.SetPaddleVelocity(c.side, c.dy)
		case cmdResize:
			g.match.Resize(c.width, c.height)
		case cmdServe:
			if g.match.Serve() {
				log.Printf("match %s started: %s vs %s", g.matchID, g.cfg.LeftName, g.cfg.RightName)
				g.push(events.EventMatchStart, &events.MatchStartPayload{
					MatchID:   g.matchID,
					LeftName:  g.cfg.LeftName,
					RightName: g.cfg.RightName,
				})
			}
		}
	}
}

// translate converts a step outcome into routed events
func (g *Game) translate(out pong.Outcome) {
	m := g.match

	if out.WallBounce {
		g.statBounces.Add(1)
		g.push(events.EventWallBounce, nil)
	}

	if out.Hit {
		g.statHits.Add(1)
		g.statSpeed.Store(m.Ball.Speed)
		g.push(events.EventPaddleHit, &events.PaddleHitPayload{
			Side:  out.HitSide,
			Speed: m.Ball.Speed,
			Angle: out.HitAngle,
		})
	}

	if out.Scored {
		g.statPoints.Add(1)
		log.Printf("%s scored: %d-%d", m.Paddle(out.Scorer).Name, m.Left.Score, m.Right.Score)
		g.push(events.EventScore, &events.ScorePayload{
			Scorer: out.Scorer,
			Left:   m.Left.Score,
			Right:  m.Right.Score,
		})
	}

	if out.Over {
		name := m.WinnerName()
		log.Printf("match %s over: %s wins %d-%d", g.matchID, name, m.Left.Score, m.Right.Score)
		g.push(events.EventMatchOver, &events.MatchOverPayload{
			MatchID: g.matchID,
			Winner:  out.Winner,
			Name:    name,
			Left:    m.Left.Score,
			Right:   m.Right.Score,
		})
		close(g.done)
	}
}

func (g *Game) push(t events.EventType, payload any) {
	g.queue.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Tick:      uint64(g.statTicks.Load()),
		Timestamp: g.clock.Now(),
	})
}

// publish stores a fresh snapshot; caller holds mu
func (g *Game) publish() {
	g.snapshot.Store(&Snapshot{
		State:   g.match.Snapshot(),
		MatchID: g.matchID,
		Paused:  g.paused.Load(),
	})
}

// publishPaused refreshes only the paused flag of the last snapshot
func (g *Game) publishPaused() {
	for {
		old := g.snapshot.Load()
		next := *old
		next.Paused = g.paused.Load()
		if g.snapshot.CompareAndSwap(old, &next) {
			return
		}
	}
}
