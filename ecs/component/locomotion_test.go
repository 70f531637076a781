package component

import "testing"

func TestLocomotionTransition(t *testing.T) {
	var loco Locomotion
	if loco.State != LocomotionIdle {
		t.Fatalf("zero value state = %v, want idle", loco.State)
	}

	var seen []LocomotionState
	loco.Subscribe(func(s LocomotionState) { seen = append(seen, s) })

	if loco.Transition(LocomotionIdle) {
		t.Fatalf("same-state transition must be silent")
	}
	if !loco.Transition(LocomotionJump) {
		t.Fatalf("expected a change")
	}
	if len(seen) != 1 || seen[0] != LocomotionJump {
		t.Fatalf("seen = %v", seen)
	}
}

func TestLocomotionReentrantSubscribe(t *testing.T) {
	var loco Locomotion
	calls := 0
	var self Subscription
	self = loco.Subscribe(func(LocomotionState) {
		calls++
		loco.Unsubscribe(self)
		loco.Subscribe(func(LocomotionState) { calls += 10 })
	})

	loco.Transition(LocomotionRun)
	if calls != 1 {
		t.Fatalf("calls = %d, listeners added during notify must wait for the next change", calls)
	}
	loco.Transition(LocomotionBack)
	if calls != 11 {
		t.Fatalf("calls = %d, want 11", calls)
	}
	if loco.Listeners() != 1 {
		t.Fatalf("listeners = %d, want 1", loco.Listeners())
	}
}

func TestLocomotionUnsubscribeUnknown(t *testing.T) {
	var loco Locomotion
	if loco.Unsubscribe(0) || loco.Unsubscribe(42) {
		t.Fatalf("unknown subscription should report false")
	}
	if id := loco.Subscribe(nil); id != 0 {
		t.Fatalf("nil listener should not register")
	}
}

func TestLocomotionStateString(t *testing.T) {
	cases := map[LocomotionState]string{
		LocomotionIdle:       "idle",
		LocomotionRight:      "right",
		LocomotionJump:       "jump",
		LocomotionState(-1):  "unknown",
		LocomotionState(100): "unknown",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Fatalf("String(%d) = %q, want %q", int(state), got, want)
		}
	}
}

func TestPlayerValidate(t *testing.T) {
	ok := Player{WalkSpeed: 6, RunSpeed: 10, JumpSpeed: 5, Gravity: 20}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := ok
	bad.Gravity = 0
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected zero gravity to be rejected")
	}
}

func TestCharacterRigValidate(t *testing.T) {
	if err := (CharacterRig{}).Validate(); err != ErrMissingCollider {
		t.Fatalf("err = %v, want ErrMissingCollider", err)
	}
}
