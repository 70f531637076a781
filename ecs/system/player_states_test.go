package system

import (
	"testing"

	"github.com/milk9111/thirdperson/ecs/component"
)

func TestClassifyGrounded(t *testing.T) {
	cases := []struct {
		name      string
		start     component.LocomotionState
		in        component.Input
		wantState component.LocomotionState
		wantScale float64
		wantJump  bool
	}{
		{"dead_zone_idle", component.LocomotionForward, component.Input{Horizontal: 0.01, Vertical: -0.01}, component.LocomotionIdle, 6, false},
		{"forward", component.LocomotionIdle, component.Input{Vertical: 0.5}, component.LocomotionForward, 6, false},
		{"back", component.LocomotionIdle, component.Input{Vertical: -0.5}, component.LocomotionBack, 6, false},
		{"right", component.LocomotionIdle, component.Input{Horizontal: 0.5}, component.LocomotionRight, 6, false},
		{"left", component.LocomotionIdle, component.Input{Horizontal: -0.5}, component.LocomotionLeft, 6, false},
		{"diagonal_prefers_vertical", component.LocomotionIdle, component.Input{Horizontal: 0.02, Vertical: 0.02}, component.LocomotionForward, 6, false},
		{"back_beats_right", component.LocomotionIdle, component.Input{Horizontal: 0.9, Vertical: -0.02}, component.LocomotionBack, 6, false},
		{"run", component.LocomotionIdle, component.Input{Vertical: 0.5, Run: true}, component.LocomotionRun, 10, false},
		{"run_below_threshold_walks", component.LocomotionIdle, component.Input{Vertical: 0.1, Run: true}, component.LocomotionForward, 6, false},
		{"run_guard_keeps_run", component.LocomotionRun, component.Input{Vertical: 0.05, Run: true}, component.LocomotionRun, 6, false},
		{"run_released_relabels", component.LocomotionRun, component.Input{Vertical: 0.5}, component.LocomotionForward, 6, false},
		{"run_needs_forward", component.LocomotionIdle, component.Input{Vertical: -0.5, Run: true}, component.LocomotionBack, 6, false},
		{"jump_from_idle", component.LocomotionIdle, component.Input{Jump: true}, component.LocomotionJump, 6, true},
		{"jump_beats_run", component.LocomotionIdle, component.Input{Vertical: 0.5, Run: true, Jump: true}, component.LocomotionJump, 10, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			loco := &component.Locomotion{State: c.start}
			got, changed := Classify(loco, testTuning, c.in, true)
			if got.State != c.wantState || loco.State != c.wantState {
				t.Fatalf("state = %v (loco %v), want %v", got.State, loco.State, c.wantState)
			}
			if changed != (c.start != c.wantState) {
				t.Fatalf("changed = %v, start %v want %v", changed, c.start, c.wantState)
			}
			approxEqual(t, got.SpeedScale, c.wantScale, "speed scale")
			if got.Jump != c.wantJump {
				t.Fatalf("jump = %v, want %v", got.Jump, c.wantJump)
			}
		})
	}
}

func TestClassifyAirborneKeepsState(t *testing.T) {
	loco := &component.Locomotion{State: component.LocomotionJump}
	notified := 0
	loco.Subscribe(func(component.LocomotionState) { notified++ })

	got, changed := Classify(loco, testTuning, component.Input{Vertical: 1, Run: true, Jump: true}, false)
	if changed || notified != 0 {
		t.Fatalf("airborne tick must not transition (changed=%v notified=%d)", changed, notified)
	}
	if got.State != component.LocomotionJump || got.Jump {
		t.Fatalf("got %+v, want frozen jump without impulse", got)
	}
	approxEqual(t, got.SpeedScale, testTuning.WalkSpeed, "speed scale")
}

func TestClassifyIdempotent(t *testing.T) {
	loco := &component.Locomotion{}
	var seen []component.LocomotionState
	loco.Subscribe(func(s component.LocomotionState) { seen = append(seen, s) })

	in := component.Input{Vertical: 0.5}
	if _, changed := Classify(loco, testTuning, in, true); !changed {
		t.Fatalf("first call should change state")
	}
	if _, changed := Classify(loco, testTuning, in, true); changed {
		t.Fatalf("second call should be silent")
	}
	if len(seen) != 1 || seen[0] != component.LocomotionForward {
		t.Fatalf("notifications = %v, want [forward]", seen)
	}
}

func TestClassifySingleNotificationPerTick(t *testing.T) {
	// forward, then run, then jump all match; only jump may be observed
	loco := &component.Locomotion{}
	var seen []component.LocomotionState
	loco.Subscribe(func(s component.LocomotionState) { seen = append(seen, s) })

	Classify(loco, testTuning, component.Input{Vertical: 1, Run: true, Jump: true}, true)
	if len(seen) != 1 || seen[0] != component.LocomotionJump {
		t.Fatalf("notifications = %v, want [jump]", seen)
	}
}

func TestClassifyNotifiesInRegistrationOrder(t *testing.T) {
	loco := &component.Locomotion{}
	var order []string
	loco.Subscribe(func(component.LocomotionState) { order = append(order, "first") })
	second := loco.Subscribe(func(component.LocomotionState) { order = append(order, "second") })
	loco.Subscribe(func(component.LocomotionState) { order = append(order, "third") })

	Classify(loco, testTuning, component.Input{Horizontal: 1}, true)
	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
		t.Fatalf("order = %v", order)
	}

	if !loco.Unsubscribe(second) {
		t.Fatalf("expected unsubscribe to succeed")
	}
	order = nil
	Classify(loco, testTuning, component.Input{}, true)
	if len(order) != 2 || order[0] != "first" || order[1] != "third" {
		t.Fatalf("order after unsubscribe = %v", order)
	}
}
