package events

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-pong/constants"
)

// slot holds one event and whether its write has completed
type slot struct {
	event GameEvent
	ready atomic.Bool
}

// EventQueue is a lock-free multi-producer ring of game events drained by the tick goroutine
// A full ring overwrites its oldest entries; pause, resume and input may push from other goroutines
type EventQueue struct {
	slots [constants.EventQueueSize]slot
	head  atomic.Uint64 // next index to read
	tail  atomic.Uint64 // next index to claim
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push claims the next index with CAS, then publishes the event in its slot
func (q *EventQueue) Push(ev GameEvent) {
	var claimed uint64
	for {
		claimed = q.tail.Load()
		if q.tail.CompareAndSwap(claimed, claimed+1) {
			break
		}
	}

	s := &q.slots[claimed&constants.EventBufferMask]
	s.event = ev
	s.ready.Store(true)

	// Drop the oldest unread event when the writer laps the reader
	end := claimed + 1
	if head := q.head.Load(); end-head > constants.EventQueueSize {
		q.head.CompareAndSwap(head, end-constants.EventQueueSize)
	}
}

// Consume removes and returns every published event in FIFO order, nil when empty
// Reading stops at the first slot whose writer has not finished
func (q *EventQueue) Consume() []GameEvent {
	for {
		seen, tail := q.head.Load(), q.tail.Load()
		if seen == tail {
			return nil
		}
		head := seen
		if tail-head > constants.EventQueueSize {
			head = tail - constants.EventQueueSize
		}

		out := make([]GameEvent, 0, tail-head)
		for i := head; i < tail; i++ {
			s := &q.slots[i&constants.EventBufferMask]
			if !s.ready.Load() {
				break
			}
			out = append(out, s.event)
			s.ready.Store(false)
		}

		if !q.head.CompareAndSwap(seen, head+uint64(len(out))) {
			continue
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}
}

// Len returns the number of unread events
func (q *EventQueue) Len() int {
	return int(min(q.tail.Load()-q.head.Load(), constants.EventQueueSize))
}
