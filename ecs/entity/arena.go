package entity

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/thirdperson/ecs"
	"github.com/milk9111/thirdperson/ecs/component"
	"github.com/milk9111/thirdperson/prefabs"
)

// NewArena builds the physics world, walls and targets, and attaches the
// physics world to w.
func NewArena(w *ecs.World) (*ecs.PhysicsWorld, error) {
	arenaSpec, err := prefabs.LoadArenaSpec()
	if err != nil {
		return nil, fmt.Errorf("arena: load spec: %w", err)
	}
	return NewArenaFromSpec(w, arenaSpec)
}

func NewArenaFromSpec(w *ecs.World, arenaSpec *prefabs.ArenaSpec) (*ecs.PhysicsWorld, error) {
	if arenaSpec == nil {
		return nil, fmt.Errorf("arena: nil spec")
	}

	b := arenaSpec.Bounds
	pw := ecs.NewPhysicsWorld(ecs.Bounds{MinX: b.MinX, MinZ: b.MinZ, MaxX: b.MaxX, MaxZ: b.MaxZ}, arenaSpec.FloorY)
	w.SetPhysicsWorld(pw)

	wallColor := arenaSpec.WallColor.Or(color.NRGBA{R: 96, G: 125, B: 139, A: 255})
	for i, wall := range arenaSpec.Walls {
		if wall.MaxX <= wall.MinX || wall.MaxZ <= wall.MinZ {
			return nil, fmt.Errorf("arena: wall %d has an empty extent", i)
		}
		pw.AddWall(wall.MinX, wall.MinZ, wall.MaxX, wall.MaxZ)

		e := w.CreateEntity()
		if err := ecs.Add(w, e, component.WallComponent, &component.Wall{
			MinX: wall.MinX, MinZ: wall.MinZ, MaxX: wall.MaxX, MaxZ: wall.MaxZ,
		}); err != nil {
			return nil, fmt.Errorf("arena: add wall %d: %w", i, err)
		}
		if err := ecs.Add(w, e, component.MarkerComponent, &component.Marker{Color: wallColor}); err != nil {
			return nil, fmt.Errorf("arena: add wall %d marker: %w", i, err)
		}
	}

	targetColor := arenaSpec.TargetColor.Or(color.NRGBA{R: 174, G: 213, B: 129, A: 255})
	for i, target := range arenaSpec.Targets {
		if target.Radius <= 0 || target.Height <= 0 {
			return nil, fmt.Errorf("arena: target %d (%s) needs a positive radius and height", i, target.Name)
		}
		base := mgl64.Vec3{target.X, arenaSpec.FloorY, target.Z}

		e := w.CreateEntity()
		if err := ecs.Add(w, e, component.TargetTagComponent, &component.TargetTag{}); err != nil {
			return nil, fmt.Errorf("arena: add target %d tag: %w", i, err)
		}
		if err := ecs.Add(w, e, component.TargetComponent, &component.Target{
			Name:   target.Name,
			Radius: target.Radius,
			Height: target.Height,
		}); err != nil {
			return nil, fmt.Errorf("arena: add target %d: %w", i, err)
		}
		if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{Position: base}); err != nil {
			return nil, fmt.Errorf("arena: add target %d transform: %w", i, err)
		}
		if err := ecs.Add(w, e, component.MarkerComponent, &component.Marker{
			Size:  target.Radius,
			Color: targetColor,
		}); err != nil {
			return nil, fmt.Errorf("arena: add target %d marker: %w", i, err)
		}
		pw.AddTarget(e, base, target.Radius, target.Height)
	}

	return pw, nil
}
