package ecs

import "github.com/milk9111/thirdperson/ecs/component"

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventLocomotionChanged = "locomotion_changed"

// LocomotionEvent is queued after a locomotion transition.
type LocomotionEvent struct {
	Entity Entity
	From   component.LocomotionState
	To     component.LocomotionState
	Tick   uint64
}

// EventQueue is a simple FIFO queue. The world clears it at the end of every
// tick, so consumers drain it from inside a system or right after Update's
// systems have run.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
