package system

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/thirdperson/common"
	"github.com/milk9111/thirdperson/ecs"
	"github.com/milk9111/thirdperson/ecs/component"
)

func TestPlayerControllerRunScenario(t *testing.T) {
	p := newTestPlayer(t, testTuning, true)
	p.setInput(component.Input{Vertical: 0.5, Run: true})

	p.world.Update(0.1)

	if got := p.locomotion().State; got != component.LocomotionRun {
		t.Fatalf("state = %v, want run", got)
	}
	m := p.motion()
	approxEqual(t, m.SpeedScale, 10, "speed scale")

	move := p.body.lastMove(t)
	horizontal := math.Hypot(move.X(), move.Z())
	approxEqual(t, horizontal, 0.5, "horizontal displacement")
	// gravity applies on the grounded tick too: (0 - 20*0.1) * 10 * 0.1
	approxEqual(t, move.Y(), -2, "vertical displacement")
}

func TestPlayerControllerJumpScenario(t *testing.T) {
	p := newTestPlayer(t, testTuning, true)
	p.setInput(component.Input{Vertical: 0.5, Run: true, Jump: true})

	p.world.Update(0.1)

	if got := p.locomotion().State; got != component.LocomotionJump {
		t.Fatalf("state = %v, want jump", got)
	}
	m := p.motion()
	approxEqual(t, m.SpeedScale, 10, "speed scale")
	// the impulse replaces the vertical component before gravity is applied
	approxEqual(t, m.Velocity.Y(), testTuning.JumpSpeed-testTuning.Gravity*0.1, "vertical velocity")

	move := p.body.lastMove(t)
	approxEqual(t, move.Z(), 0.5, "forward displacement")
	approxEqual(t, move.Y(), 3, "vertical displacement")
}

func TestPlayerControllerAirborneGravity(t *testing.T) {
	p := newTestPlayer(t, testTuning, false)
	const dt = 0.1

	inputs := []component.Input{
		{Vertical: 1, Run: true},
		{Horizontal: -1, Jump: true},
		{},
		{Vertical: -1},
	}
	prev := p.motion().Velocity.Y()
	for i, in := range inputs {
		p.setInput(in)
		p.world.Update(dt)

		m := p.motion()
		approxEqual(t, prev-m.Velocity.Y(), testTuning.Gravity*dt, "gravity step")
		approxEqual(t, m.Velocity.X(), 0, "x velocity")
		approxEqual(t, m.Velocity.Z(), 0, "z velocity")
		approxEqual(t, m.SpeedScale, testTuning.WalkSpeed, "airborne speed scale")
		if m.Grounded {
			t.Fatalf("tick %d: expected to stay airborne", i)
		}
		prev = m.Velocity.Y()
	}
	if got := p.locomotion().State; got != component.LocomotionIdle {
		t.Fatalf("state = %v, airborne ticks must not reclassify", got)
	}
}

func TestPlayerControllerLedgeKeepsMomentum(t *testing.T) {
	p := newTestPlayer(t, testTuning, true)
	p.body.groundAfterMove = boolPtr(false)
	p.setInput(component.Input{Vertical: 1})

	p.world.Update(0.1)
	if got := p.locomotion().State; got != component.LocomotionForward {
		t.Fatalf("state = %v, want forward", got)
	}

	p.setInput(component.Input{Vertical: -1})
	p.world.Update(0.1)

	m := p.motion()
	approxEqual(t, m.Velocity.Z(), 1, "carried forward velocity")
	approxEqual(t, m.Velocity.Y(), -4, "accumulated fall speed")
	move := p.body.lastMove(t)
	approxEqual(t, move.Z(), 1*6*0.1, "airborne forward displacement")
	if got := p.locomotion().State; got != component.LocomotionForward {
		t.Fatalf("state = %v, want forward frozen while airborne", got)
	}
}

func TestPlayerControllerMovesRelativeToYaw(t *testing.T) {
	p := newTestPlayer(t, testTuning, true)
	p.transform().Yaw = math.Pi / 2
	p.setInput(component.Input{Vertical: 1})

	p.world.Update(0.1)

	move := p.body.lastMove(t)
	approxEqual(t, move.X(), 0.6, "x displacement")
	approxEqual(t, move.Z(), 0, "z displacement")
	approxEqual(t, p.transform().Yaw, math.Pi/2, "yaw")
}

func TestPlayerControllerDiagonalTieBreak(t *testing.T) {
	p := newTestPlayer(t, testTuning, true)
	p.setInput(component.Input{Horizontal: 0.02, Vertical: 0.02})

	p.world.Update(0.1)

	if got := p.locomotion().State; got != component.LocomotionForward {
		t.Fatalf("state = %v, want forward", got)
	}
}

func TestPlayerControllerNotifiesOnceBeforeMove(t *testing.T) {
	p := newTestPlayer(t, testTuning, true)
	var notified []component.LocomotionState
	movesAtNotify := -1
	p.locomotion().Subscribe(func(s component.LocomotionState) {
		notified = append(notified, s)
		movesAtNotify = len(p.body.moves)
	})

	p.setInput(component.Input{Horizontal: 1})
	p.world.Update(0.1)
	p.world.Update(0.1)

	if len(notified) != 1 || notified[0] != component.LocomotionRight {
		t.Fatalf("notifications = %v, want [right]", notified)
	}
	if movesAtNotify != 0 {
		t.Fatalf("listener ran after %d moves, want before the first", movesAtNotify)
	}
}

func TestPlayerControllerAimsAfterMoving(t *testing.T) {
	p := newTestPlayer(t, testTuning, true)
	// straight down through a point level with the post-move position
	p.view.ray = common.Ray{Origin: mgl64.Vec3{3, 10, 0.6}, Dir: mgl64.Vec3{0, -1, 0}}
	p.setInput(component.Input{Vertical: 1})

	p.world.Update(0.1)

	approxEqual(t, p.transform().Position.Z(), 0.6, "post-move z")
	approxEqual(t, p.transform().Yaw, math.Pi/2, "yaw")

	aim := p.aim()
	if !aim.Valid {
		t.Fatalf("expected a valid aim point")
	}
	want := mgl64.Vec3{3, 2, 0.6}
	if !aim.Point.ApproxEqualThreshold(want, 1e-9) {
		t.Fatalf("aim point = %v, want %v", aim.Point, want)
	}
	if len(p.crosshair.moved) != 1 || !p.crosshair.moved[0].ApproxEqualThreshold(want, 1e-9) {
		t.Fatalf("crosshair moves = %v", p.crosshair.moved)
	}
	if len(p.crosshair.rays) != 1 || p.crosshair.rays[0] != p.view.ray {
		t.Fatalf("crosshair rays = %v", p.crosshair.rays)
	}
}

func TestPlayerControllerPanicsOnBrokenRig(t *testing.T) {
	cases := []struct {
		name string
		rig  *component.CharacterRig
		want string
	}{
		{"missing_rig", nil, "character rig"},
		{"missing_body", &component.CharacterRig{View: &fakeView{}}, "collider"},
		{"missing_view", &component.CharacterRig{Body: &fakeBody{}}, "camera"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newTestPlayer(t, testTuning, true)
			ecs.Remove(p.world, p.entity, component.CharacterRigComponent)
			if c.rig != nil {
				mustAdd(t, ecs.Add(p.world, p.entity, component.CharacterRigComponent, c.rig))
			}

			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("expected panic")
				}
				msg, _ := r.(string)
				if !strings.Contains(msg, c.want) {
					t.Fatalf("panic = %v, want mention of %q", r, c.want)
				}
			}()
			p.world.Update(0.1)
		})
	}
}
