package engine

import (
	"testing"

	"github.com/lixenwraith/vi-pong/events"
	"github.com/lixenwraith/vi-pong/pong"
	"github.com/lixenwraith/vi-pong/status"
)

// recorder collects routed events for assertions
type recorder struct {
	types []events.EventType
	got   []events.GameEvent
}

func (r *recorder) HandleEvent(ev events.GameEvent) { r.got = append(r.got, ev) }
func (r *recorder) EventTypes() []events.EventType  { return r.types }

func (r *recorder) count(t events.EventType) int {
	n := 0
	for _, ev := range r.got {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func allEventTypes() []events.EventType {
	return []events.EventType{
		events.EventMatchStart, events.EventWallBounce, events.EventPaddleHit, events.EventScore,
		events.EventMatchOver, events.EventPause, events.EventResume, events.EventRestart,
	}
}

func newTestGame(t *testing.T) (*Game, *recorder) {
	t.Helper()
	g := NewGame(pong.DefaultConfig(), nil, status.NewRegistry())
	rec := &recorder{types: allEventTypes()}
	g.RegisterEventHandler(rec)
	return g, rec
}

// TestGameWaitsForServe verifies ticks before the first serve leave the ball in place
func TestGameWaitsForServe(t *testing.T) {
	g, rec := newTestGame(t)

	for i := 0; i < 5; i++ {
		if g.Tick() {
			t.Fatal("Expected match to continue")
		}
	}

	snap := g.Snapshot()
	if snap.Ball.X != 400 || snap.Ball.Y != 200 {
		t.Errorf("Expected ball at center before serve, got (%v, %v)", snap.Ball.X, snap.Ball.Y)
	}
	if !g.Serving() {
		t.Error("Expected serving phase")
	}

	g.Serve()
	g.Tick()

	snap = g.Snapshot()
	if snap.Ball.X != 405 || snap.Ball.Y != 205 {
		t.Errorf("Expected ball at (405, 205) after first tick, got (%v, %v)", snap.Ball.X, snap.Ball.Y)
	}
	if rec.count(events.EventMatchStart) != 1 {
		t.Errorf("Expected one match start event, got %d", rec.count(events.EventMatchStart))
	}
	if snap.Phase != pong.PhaseRallying {
		t.Errorf("Expected rallying, got %v", snap.Phase)
	}
}

// TestGameCommandsAppliedNextTick verifies input never writes entity state directly
func TestGameCommandsAppliedNextTick(t *testing.T) {
	g, _ := newTestGame(t)
	g.Serve()
	g.Tick()

	g.SetPaddleVelocity(pong.Left, -8)
	if got := g.Snapshot().Left.Y; got != 150 {
		t.Fatalf("Expected paddle untouched before tick, got %v", got)
	}

	g.Tick()
	if got := g.Snapshot().Left.Y; got != 142 {
		t.Errorf("Expected paddle at 142, got %v", got)
	}
	if got := g.Snapshot().Left.DY; got != -8 {
		t.Errorf("Expected dy -8, got %v", got)
	}
}

// TestGameResize verifies resize commands reach the match
func TestGameResize(t *testing.T) {
	g, _ := newTestGame(t)
	g.Resize(1600, 800)
	g.Tick()

	snap := g.Snapshot()
	if snap.Court.Width != 1600 || snap.Court.Height != 800 {
		t.Errorf("Expected 1600x800 court, got %vx%v", snap.Court.Width, snap.Court.Height)
	}
	if snap.Right.X != 1590 {
		t.Errorf("Expected right paddle at 1590, got %v", snap.Right.X)
	}
}

// TestGamePauseSuspendsStep verifies paused ticks do not advance the ball
func TestGamePauseSuspendsStep(t *testing.T) {
	g, rec := newTestGame(t)
	g.Serve()
	g.Tick()

	g.SetPaused(true)
	before := g.Snapshot()
	if !before.Paused {
		t.Error("Expected paused snapshot")
	}

	g.Tick()
	g.Tick()
	if after := g.Snapshot(); after.Ball.X != before.Ball.X || after.Tick != before.Tick {
		t.Errorf("Expected no movement while paused, ball %v -> %v", before.Ball.X, after.Ball.X)
	}

	g.TogglePause()
	g.Tick()
	if g.Snapshot().Tick != before.Tick+1 {
		t.Errorf("Expected tick %d after resume, got %d", before.Tick+1, g.Snapshot().Tick)
	}
	if rec.count(events.EventPause) != 1 || rec.count(events.EventResume) != 1 {
		t.Errorf("Expected one pause and one resume, got %d and %d",
			rec.count(events.EventPause), rec.count(events.EventResume))
	}
}

// TestGamePlaysToCompletion verifies events, metrics and termination over a full match
func TestGamePlaysToCompletion(t *testing.T) {
	g, rec := newTestGame(t)
	g.Serve()

	// Paddles out of the court so every point is scored
	g.SetPaddleVelocity(pong.Left, -1000)
	g.SetPaddleVelocity(pong.Right, -1000)
	g.Tick()
	g.SetPaddleVelocity(pong.Left, 0)
	g.SetPaddleVelocity(pong.Right, 0)

	done := g.Done()
	over := false
	for i := 0; i < 100000 && !over; i++ {
		over = g.Tick()
	}
	if !over {
		t.Fatal("Expected match to end")
	}

	select {
	case <-done:
	default:
		t.Error("Expected Done channel closed")
	}

	snap := g.Snapshot()
	if snap.Left.Score != 10 && snap.Right.Score != 10 {
		t.Errorf("Expected a score of 10, got %d-%d", snap.Left.Score, snap.Right.Score)
	}
	if snap.WinnerName == "" {
		t.Error("Expected winner name")
	}

	points := rec.count(events.EventScore)
	if points != snap.Left.Score+snap.Right.Score {
		t.Errorf("Expected %d score events, got %d", snap.Left.Score+snap.Right.Score, points)
	}
	if got := g.Status().Ints.Get(status.KeyPoints).Load(); got != int64(points) {
		t.Errorf("Expected %d points metric, got %d", points, got)
	}
	if rec.count(events.EventMatchOver) != 1 {
		t.Errorf("Expected one match over event, got %d", rec.count(events.EventMatchOver))
	}

	last := rec.got[len(rec.got)-1]
	payload, ok := last.Payload.(*events.MatchOverPayload)
	if last.Type != events.EventMatchOver || !ok {
		t.Fatalf("Expected match over as final event, got %v", last.Type)
	}
	if payload.Name != snap.WinnerName || payload.MatchID != snap.MatchID {
		t.Errorf("Payload mismatch: %+v", payload)
	}

	// Further ticks are no-ops
	frozen := g.Snapshot()
	if !g.Tick() {
		t.Error("Expected finished match to stay over")
	}
	if g.Snapshot().Ball != frozen.Ball {
		t.Error("Expected frozen ball after match over")
	}

	g.SetPaused(true)
	if g.Paused() {
		t.Error("Expected finished match to refuse pause")
	}
}

// TestGameRestart verifies restart discards state and assigns a new match id
func TestGameRestart(t *testing.T) {
	g, rec := newTestGame(t)
	oldID := g.MatchID()

	g.Serve()
	for i := 0; i < 50; i++ {
		g.Tick()
	}
	g.SetPaused(true)
	g.SetPaddleVelocity(pong.Right, 8)

	g.Restart()

	snap := g.Snapshot()
	if snap.MatchID == oldID || snap.MatchID == "" {
		t.Errorf("Expected new match id, got %q (old %q)", snap.MatchID, oldID)
	}
	if snap.Phase != pong.PhaseServing || snap.Tick != 0 {
		t.Errorf("Expected fresh serving match, got %v at tick %d", snap.Phase, snap.Tick)
	}
	if snap.Paused || g.Clock().IsPaused() {
		t.Error("Expected restart to unpause")
	}
	if rec.count(events.EventRestart) != 1 {
		t.Errorf("Expected one restart event, got %d", rec.count(events.EventRestart))
	}

	// Dropped velocity command from the previous match
	g.Tick()
	if got := g.Snapshot().Right.DY; got != 0 {
		t.Errorf("Expected pending commands dropped, got dy %v", got)
	}
}
