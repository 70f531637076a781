package entity

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/thirdperson/ecs"
	"github.com/milk9111/thirdperson/ecs/component"
	"github.com/milk9111/thirdperson/prefabs"
	"go.uber.org/zap"
)

// PlayerOptions carries the collaborators a player needs that are not
// described by its prefab.
type PlayerOptions struct {
	View      component.RayProjector
	Crosshair component.Crosshair
	Log       *zap.Logger
}

func NewPlayer(w *ecs.World, opts PlayerOptions) (ecs.Entity, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}
	return NewPlayerFromSpec(w, playerSpec, opts)
}

func NewPlayerFromSpec(w *ecs.World, playerSpec *prefabs.PlayerSpec, opts PlayerOptions) (ecs.Entity, error) {
	if playerSpec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}
	tuning := component.Player{
		WalkSpeed: playerSpec.WalkSpeed,
		RunSpeed:  playerSpec.RunSpeed,
		JumpSpeed: playerSpec.JumpSpeed,
		Gravity:   playerSpec.Gravity,
		AimHeight: playerSpec.AimHeight,
	}
	if err := tuning.Validate(); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if opts.View == nil {
		return 0, fmt.Errorf("player: %w", component.ErrMissingCamera)
	}

	pw := w.PhysicsWorld()
	if pw == nil {
		return 0, fmt.Errorf("player: no physics world: %w", component.ErrMissingCollider)
	}
	start := vec3(playerSpec.Transform.Position)
	body := pw.NewCharacterBody(start, playerSpec.Collider.Radius)
	if body == nil {
		return 0, fmt.Errorf("player: collider radius %v: %w", playerSpec.Collider.Radius, component.ErrMissingCollider)
	}

	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	rig := component.CharacterRig{Body: body, View: opts.View, Crosshair: opts.Crosshair}

	player := w.CreateEntity()
	fail := func(what string, err error) (ecs.Entity, error) {
		body.Remove()
		w.DestroyEntity(player)
		return 0, fmt.Errorf("player: add %s: %w", what, err)
	}

	if err := ecs.Add(w, player, component.PlayerTagComponent, &component.PlayerTag{}); err != nil {
		return fail("player tag", err)
	}
	if err := ecs.Add(w, player, component.PlayerComponent, &tuning); err != nil {
		return fail("player component", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent, &component.Transform{
		Position: body.Position(),
		Yaw:      mgl64.DegToRad(playerSpec.Transform.Yaw),
	}); err != nil {
		return fail("transform", err)
	}
	if err := ecs.Add(w, player, component.InputComponent, &component.Input{}); err != nil {
		return fail("input", err)
	}
	if err := ecs.Add(w, player, component.MotionComponent, &component.Motion{
		SpeedScale: tuning.WalkSpeed,
		Grounded:   body.IsGrounded(),
	}); err != nil {
		return fail("motion", err)
	}

	loco := &component.Locomotion{}
	subscribeLocomotionLog(w, player, loco, log)
	if err := ecs.Add(w, player, component.LocomotionComponent, loco); err != nil {
		return fail("locomotion", err)
	}
	if err := ecs.Add(w, player, component.AimComponent, &component.Aim{}); err != nil {
		return fail("aim", err)
	}
	if err := ecs.Add(w, player, component.CharacterRigComponent, &rig); err != nil {
		return fail("character rig", err)
	}
	if err := ecs.Add(w, player, component.MarkerComponent, &component.Marker{
		Size:  playerSpec.Collider.Radius,
		Color: playerSpec.Color.Or(color.NRGBA{R: 79, G: 195, B: 247, A: 255}),
	}); err != nil {
		return fail("marker", err)
	}

	log.Debug("player spawned",
		zap.Stringer("entity", player),
		zap.Float64("walk_speed", tuning.WalkSpeed),
		zap.Float64("run_speed", tuning.RunSpeed),
	)
	return player, nil
}

// subscribeLocomotionLog attaches the default listeners: a debug log line and
// a queued LocomotionEvent per transition.
func subscribeLocomotionLog(w *ecs.World, player ecs.Entity, loco *component.Locomotion, log *zap.Logger) {
	logged := loco.State
	loco.Subscribe(func(state component.LocomotionState) {
		log.Debug("locomotion state changed",
			zap.Stringer("entity", player),
			zap.Stringer("from", logged),
			zap.Stringer("to", state),
		)
		logged = state
	})

	queued := loco.State
	loco.Subscribe(func(state component.LocomotionState) {
		w.Events().Push(ecs.Event{
			Type: ecs.EventLocomotionChanged,
			Data: ecs.LocomotionEvent{Entity: player, From: queued, To: state, Tick: w.Ticks()},
		})
		queued = state
	})
}

// ReloadPlayer rebuilds the player from the current prefab, keeping the old
// entity's position and facing. The old entity and its body are removed.
func ReloadPlayer(w *ecs.World, old ecs.Entity, opts PlayerOptions) (ecs.Entity, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return old, fmt.Errorf("player: reload spec: %w", err)
	}
	return ReloadPlayerFromSpec(w, old, playerSpec, opts)
}

func ReloadPlayerFromSpec(w *ecs.World, old ecs.Entity, playerSpec *prefabs.PlayerSpec, opts PlayerOptions) (ecs.Entity, error) {
	if playerSpec == nil {
		return old, fmt.Errorf("player: nil spec")
	}
	next := *playerSpec

	var oldBody *ecs.CharacterBody
	if w.IsAlive(old) {
		if tf, ok := ecs.Get(w, old, component.TransformComponent); ok {
			next.Transform.Position = prefabs.Vec3Spec{X: tf.Position.X(), Y: tf.Position.Y(), Z: tf.Position.Z()}
			next.Transform.Yaw = mgl64.RadToDeg(tf.Yaw)
		}
		if rig, ok := ecs.Get(w, old, component.CharacterRigComponent); ok {
			if body, ok := rig.Body.(*ecs.CharacterBody); ok {
				oldBody = body
			}
			if opts.View == nil {
				opts.View = rig.View
			}
			if opts.Crosshair == nil {
				opts.Crosshair = rig.Crosshair
			}
		}
	}

	player, err := NewPlayerFromSpec(w, &next, opts)
	if err != nil {
		return old, err
	}
	oldBody.Remove()
	w.DestroyEntity(old)
	return player, nil
}
