package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/events"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/pong"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/status"
)

// session ties one terminal screen to a game, its scheduler and input
type session struct {
	screen    tcell.Screen
	game      *engine.Game
	scheduler *engine.ClockScheduler
	mapper    *input.Mapper
	keymap    *input.KeyMap
	renderer  *render.TerminalRenderer
	statusReg *status.Registry

	tickInterval time.Duration
	touching     bool

	// loopDone is the running scheduler's Finished channel, nil once observed
	loopDone <-chan struct{}
}

// newSession builds the game and input stack; handlers are registered before the scheduler starts
func newSession(screen tcell.Screen, cfg *config.Config, keymap *input.KeyMap, handlers ...events.Handler) *session {
	reg := status.NewRegistry()
	game := engine.NewGame(cfg.Rules(), nil, reg)
	for _, h := range handlers {
		game.RegisterEventHandler(h)
	}

	return &session{
		screen:       screen,
		game:         game,
		mapper:       input.NewMapper(game, cfg.HoldTimeout()),
		keymap:       keymap,
		renderer:     render.NewTerminalRenderer(screen, cfg.Debug),
		statusReg:    reg,
		tickInterval: constants.GameUpdateInterval,
	}
}

// start launches the tick loop for the current match
func (s *session) start() {
	s.scheduler = engine.NewClockScheduler(s.game, s.tickInterval)
	s.loopDone = s.scheduler.Finished()
	s.scheduler.Start()
}

// updates is signalled after each tick of the current scheduler
func (s *session) updates() <-chan struct{} {
	if s.scheduler == nil {
		return nil
	}
	return s.scheduler.Updates()
}

// loopFinished draws the final state once the tick loop has stopped itself
func (s *session) loopFinished() {
	s.loopDone = nil
	log.Printf("match %s tick loop finished after %d ticks", s.game.MatchID(), s.scheduler.Ticks())
	s.render()
}

// stop halts the tick loop
func (s *session) stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// restart discards the match and starts a fresh tick loop
func (s *session) restart() {
	s.stop()
	s.game.Restart()
	s.mapper.SetController(s.game)
	s.touching = false
	s.start()
}

// handleEvent processes one terminal event; returns false to quit
func (s *session) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.handleKey(ev, now)
	case *tcell.EventMouse:
		s.handleMouse(ev)
	case *tcell.EventResize:
		s.screen.Sync()
		w, h := ev.Size()
		s.renderer.Resize(w, h)
	}
	return true
}

func (s *session) handleKey(ev *tcell.EventKey, now time.Time) bool {
	action := s.keymap.Lookup(input.TcellKeyName(ev))
	if s.mapper.Press(action, now) {
		return true
	}

	switch action {
	case input.ActionServe:
		s.game.Serve()
	case input.ActionPause:
		s.game.TogglePause()
	case input.ActionRestart:
		s.restart()
	case input.ActionFullscreen:
		log.Printf("fullscreen not applicable to the terminal, ignoring")
	case input.ActionQuit:
		return false
	}
	return true
}

// handleMouse treats the primary button as a touch on the court
func (s *session) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		if s.touching {
			s.mapper.TouchEnd()
			s.touching = false
		}
		return
	}

	court := s.game.Snapshot().Court
	col, row := ev.Position()
	x, y, ok := s.renderer.ScreenToCourt(col, row, court)
	if !ok {
		return
	}

	if !s.touching && s.game.Serving() {
		s.game.Serve()
	}
	s.mapper.Touch(x, y, court.Width, court.Height)
	s.touching = true
}

// frame expires stale key holds; it redraws only while no ticks arrive to do so
func (s *session) frame(now time.Time) {
	s.mapper.Expire(now)
	snap := s.game.Snapshot()
	if snap.Phase == pong.PhaseRallying && !snap.Paused {
		return
	}
	s.renderer.RenderFrame(snap, s.statusReg.Summary())
}

func (s *session) render() {
	s.renderer.RenderFrame(s.game.Snapshot(), s.statusReg.Summary())
}
