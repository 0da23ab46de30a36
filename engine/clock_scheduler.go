package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-pong/core"
)

// ClockScheduler drives Game.Tick on a fixed interval
// Handles pause-aware scheduling without busy-wait and stops itself after the tick that ends the match
type ClockScheduler struct {
	game          *Game
	pausableClock *PausableClock

	// Tick configuration
	tickInterval     time.Duration
	nextTickDeadline time.Time // Next tick deadline for drift correction
	mu               sync.Mutex

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  atomic.Bool
	finished chan struct{}

	// Signalled after each tick, coalesced when the consumer lags
	updateDone chan struct{}
}

// NewClockScheduler creates a scheduler ticking game every tickInterval of game time
func NewClockScheduler(game *Game, tickInterval time.Duration) *ClockScheduler {
	return &ClockScheduler{
		game:          game,
		pausableClock: game.Clock(),
		tickInterval:  tickInterval,
		stopChan:      make(chan struct{}),
		finished:      make(chan struct{}),
		updateDone:    make(chan struct{}, 1),
	}
}

// Start begins the scheduler loop; a scheduler runs at most once
func (cs *ClockScheduler) Start() {
	if cs.started.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for the in-flight tick to finish
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
	})
	cs.wg.Wait()
}

// Ticks returns the number of ticks executed by this scheduler
func (cs *ClockScheduler) Ticks() uint64 {
	return cs.tickCount.Load()
}

// Updates returns the channel signalled after each tick
func (cs *ClockScheduler) Updates() <-chan struct{} {
	return cs.updateDone
}

// Finished returns a channel closed when the loop exits for any reason
func (cs *ClockScheduler) Finished() <-chan struct{} {
	return cs.finished
}

// schedulerLoop runs the main scheduling loop with pause awareness
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()
	defer close(cs.finished)

	cs.mu.Lock()
	cs.nextTickDeadline = cs.pausableClock.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		var sleepDuration time.Duration

		if cs.pausableClock.IsPaused() {
			// Increase sleep interval while paused to save CPU
			sleepDuration = cs.tickInterval * 2
		} else {
			gameNow := cs.pausableClock.Now()

			cs.mu.Lock()
			deadline := cs.nextTickDeadline
			cs.mu.Unlock()

			if !gameNow.Before(deadline) {
				over := cs.game.Tick()
				cs.tickCount.Add(1)

				select {
				case cs.updateDone <- struct{}{}:
				default:
				}

				if over {
					return
				}

				cs.mu.Lock()
				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
				// Resync instead of bursting when far behind
				if gameNow.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
					cs.nextTickDeadline = gameNow.Add(cs.tickInterval)
				}
				deadline = cs.nextTickDeadline
				cs.mu.Unlock()

				sleepDuration = deadline.Sub(cs.pausableClock.Now())
			} else {
				sleepDuration = deadline.Sub(gameNow)
			}
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-cs.stopChan:
				return
			}
		}
	}
}
