package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/thirdperson/common"
	"github.com/milk9111/thirdperson/ecs"
	"github.com/milk9111/thirdperson/ecs/component"
)

var testTuning = component.Player{
	WalkSpeed: 6,
	RunSpeed:  10,
	JumpSpeed: 5,
	Gravity:   20,
	AimHeight: 2,
}

type fakeBody struct {
	grounded bool
	// groundAfterMove is returned by Move; nil keeps the current value.
	groundAfterMove *bool
	pos             mgl64.Vec3
	moves           []mgl64.Vec3
}

func (b *fakeBody) IsGrounded() bool { return b.grounded }

func (b *fakeBody) Move(delta mgl64.Vec3) bool {
	b.moves = append(b.moves, delta)
	b.pos = b.pos.Add(delta)
	if b.groundAfterMove != nil {
		b.grounded = *b.groundAfterMove
	}
	if b.grounded && b.pos.Y() < 0 {
		b.pos[1] = 0
	}
	return b.grounded
}

func (b *fakeBody) Position() mgl64.Vec3 { return b.pos }

func (b *fakeBody) lastMove(t *testing.T) mgl64.Vec3 {
	t.Helper()
	if len(b.moves) == 0 {
		t.Fatalf("expected at least one move")
	}
	return b.moves[len(b.moves)-1]
}

type fakeView struct {
	ray   common.Ray
	calls int
}

func (v *fakeView) ScreenPointToRay(x, y float64) common.Ray {
	v.calls++
	return v.ray
}

type fakeCrosshair struct {
	moved []mgl64.Vec3
	rays  []common.Ray
}

func (c *fakeCrosshair) MoveTo(point mgl64.Vec3)      { c.moved = append(c.moved, point) }
func (c *fakeCrosshair) DetectTargets(ray common.Ray) { c.rays = append(c.rays, ray) }

type testPlayer struct {
	world     *ecs.World
	entity    ecs.Entity
	body      *fakeBody
	view      *fakeView
	crosshair *fakeCrosshair
}

func newTestPlayer(t *testing.T, tuning component.Player, grounded bool) *testPlayer {
	t.Helper()
	w := ecs.NewWorld()
	p := &testPlayer{
		world:     w,
		entity:    w.CreateEntity(),
		body:      &fakeBody{grounded: grounded},
		view:      &fakeView{},
		crosshair: &fakeCrosshair{},
	}
	e := p.entity
	mustAdd(t, ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{}))
	mustAdd(t, ecs.Add(w, e, component.PlayerComponent, &tuning))
	mustAdd(t, ecs.Add(w, e, component.TransformComponent, &component.Transform{}))
	mustAdd(t, ecs.Add(w, e, component.InputComponent, &component.Input{}))
	mustAdd(t, ecs.Add(w, e, component.MotionComponent, &component.Motion{Grounded: grounded}))
	mustAdd(t, ecs.Add(w, e, component.LocomotionComponent, &component.Locomotion{}))
	mustAdd(t, ecs.Add(w, e, component.AimComponent, &component.Aim{}))
	mustAdd(t, ecs.Add(w, e, component.CharacterRigComponent, &component.CharacterRig{
		Body:      p.body,
		View:      p.view,
		Crosshair: p.crosshair,
	}))
	w.AddSystem(NewPlayerControllerSystem())
	return p
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func (p *testPlayer) setInput(in component.Input) {
	input, _ := ecs.Get(p.world, p.entity, component.InputComponent)
	*input = in
}

func (p *testPlayer) motion() *component.Motion {
	m, _ := ecs.Get(p.world, p.entity, component.MotionComponent)
	return m
}

func (p *testPlayer) locomotion() *component.Locomotion {
	l, _ := ecs.Get(p.world, p.entity, component.LocomotionComponent)
	return l
}

func (p *testPlayer) transform() *component.Transform {
	tf, _ := ecs.Get(p.world, p.entity, component.TransformComponent)
	return tf
}

func (p *testPlayer) aim() *component.Aim {
	a, _ := ecs.Get(p.world, p.entity, component.AimComponent)
	return a
}

func approxEqual(t *testing.T, got, want float64, field string) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %.9f, want %.9f", field, got, want)
	}
}

func boolPtr(b bool) *bool {
	return &b
}
