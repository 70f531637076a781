package system

import (
	"testing"

	"github.com/milk9111/thirdperson/ecs"
	"github.com/milk9111/thirdperson/ecs/component"
)

type eventSystem struct {
	events []ecs.Event
}

func (s *eventSystem) Update(w *ecs.World) {
	for _, evt := range s.events {
		w.Events().Push(evt)
	}
}

func TestTransitionLogKeepsRecent(t *testing.T) {
	w := ecs.NewWorld()
	push := &eventSystem{}
	w.AddSystem(push)

	var seen []ecs.LocomotionEvent
	log := NewTransitionLog(2, func(evt ecs.LocomotionEvent) { seen = append(seen, evt) })
	w.AddSystem(log)

	push.events = []ecs.Event{
		{Type: ecs.EventLocomotionChanged, Data: ecs.LocomotionEvent{From: component.LocomotionIdle, To: component.LocomotionForward, Tick: 1}},
		{Type: "other", Data: 42},
		{Type: ecs.EventLocomotionChanged, Data: ecs.LocomotionEvent{From: component.LocomotionForward, To: component.LocomotionRun, Tick: 1}},
		{Type: ecs.EventLocomotionChanged, Data: ecs.LocomotionEvent{From: component.LocomotionRun, To: component.LocomotionJump, Tick: 1}},
	}
	w.Update(0.1)

	if log.Total() != 3 || len(seen) != 3 {
		t.Fatalf("total = %d seen = %d, want 3", log.Total(), len(seen))
	}
	recent := log.Recent()
	if len(recent) != 2 || recent[0].To != component.LocomotionRun || recent[1].To != component.LocomotionJump {
		t.Fatalf("recent = %+v", recent)
	}

	push.events = nil
	w.Update(0.1)
	if log.Total() != 3 {
		t.Fatalf("total after quiet tick = %d", log.Total())
	}
}
