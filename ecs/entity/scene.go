package entity

import (
	"fmt"

	"github.com/milk9111/thirdperson/ecs"
	"github.com/milk9111/thirdperson/ecs/component"
	"github.com/milk9111/thirdperson/ecs/system"
	"go.uber.org/zap"
)

// Scene is the set of entities the game loop works with.
type Scene struct {
	Player    ecs.Entity
	Camera    ecs.Entity
	AimTarget ecs.Entity
	Tracker   *system.CrosshairTracker
	View      *component.Camera
}

// BuildScene populates w from the bundled prefabs.
func BuildScene(w *ecs.World, log *zap.Logger) (*Scene, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if _, err := NewArena(w); err != nil {
		return nil, err
	}

	camera, err := NewCamera(w)
	if err != nil {
		return nil, err
	}
	view, ok := ecs.Get(w, camera, component.CameraComponent)
	if !ok {
		return nil, fmt.Errorf("scene: camera %v has no camera component", camera)
	}

	marker, err := NewAimTarget(w)
	if err != nil {
		return nil, err
	}
	tracker := system.NewCrosshairTracker(w, marker, log.Named("crosshair"))

	scene := &Scene{
		Camera:    camera,
		AimTarget: marker,
		Tracker:   tracker,
		View:      view,
	}
	scene.Player, err = NewPlayer(w, scene.PlayerOptions(log))
	if err != nil {
		return nil, err
	}
	return scene, nil
}

// PlayerOptions wires the scene's camera and crosshair into a player.
func (s *Scene) PlayerOptions(log *zap.Logger) PlayerOptions {
	opts := PlayerOptions{View: s.View, Log: log}
	if s.Tracker != nil {
		opts.Crosshair = s.Tracker
	}
	return opts
}

// ReloadPlayer swaps the scene's player for one built from the current
// player prefab.
func (s *Scene) ReloadPlayer(w *ecs.World, log *zap.Logger) error {
	player, err := ReloadPlayer(w, s.Player, s.PlayerOptions(log))
	if err != nil {
		return err
	}
	s.Player = player
	return nil
}
