package system

import "github.com/milk9111/thirdperson/ecs"

// TransitionLog drains locomotion change events each tick and keeps the most
// recent ones for display.
type TransitionLog struct {
	limit   int
	recent  []ecs.LocomotionEvent
	total   int
	onEvent func(ecs.LocomotionEvent)
}

// NewTransitionLog keeps up to limit events. onEvent, if set, sees every
// drained event in order.
func NewTransitionLog(limit int, onEvent func(ecs.LocomotionEvent)) *TransitionLog {
	if limit <= 0 {
		limit = 8
	}
	return &TransitionLog{limit: limit, onEvent: onEvent}
}

func (t *TransitionLog) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		if evt.Type != ecs.EventLocomotionChanged {
			continue
		}
		change, ok := evt.Data.(ecs.LocomotionEvent)
		if !ok {
			continue
		}
		t.total++
		t.recent = append(t.recent, change)
		if over := len(t.recent) - t.limit; over > 0 {
			t.recent = append(t.recent[:0], t.recent[over:]...)
		}
		if t.onEvent != nil {
			t.onEvent(change)
		}
	}
}

// Recent returns the retained events, oldest first.
func (t *TransitionLog) Recent() []ecs.LocomotionEvent {
	out := make([]ecs.LocomotionEvent, len(t.recent))
	copy(out, t.recent)
	return out
}

// Total counts every transition seen since creation.
func (t *TransitionLog) Total() int {
	return t.total
}
