// Package session assembles the world, the scene and the system pipeline
// shared by the windowed game and headless replays.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/thirdperson/controls"
	"github.com/milk9111/thirdperson/ecs"
	"github.com/milk9111/thirdperson/ecs/component"
	"github.com/milk9111/thirdperson/ecs/entity"
	"github.com/milk9111/thirdperson/ecs/system"
	"github.com/milk9111/thirdperson/prefabs"
	"go.uber.org/zap"
)

// FixedStep is the simulation tick length in seconds.
const FixedStep = 1.0 / 60.0

// ErrRestartRequired is returned by Reload for prefabs that are only read at
// startup.
var ErrRestartRequired = errors.New("session: change applies on restart")

type Config struct {
	Source component.InputSource
	Log    *zap.Logger
	// Step overrides FixedStep when positive.
	Step float64
	// OnTransition sees every locomotion change after it is drained.
	OnTransition func(ecs.LocomotionEvent)
}

type Session struct {
	World       *ecs.World
	Scene       *entity.Scene
	Transitions *system.TransitionLog

	input *system.InputSystem
	log   *zap.Logger
	step  float64
}

func New(cfg Config) (*Session, error) {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	step := cfg.Step
	if step <= 0 {
		step = FixedStep
	}

	w := ecs.NewWorld()
	scene, err := entity.BuildScene(w, log)
	if err != nil {
		return nil, fmt.Errorf("session: build scene: %w", err)
	}

	s := &Session{
		World:       w,
		Scene:       scene,
		Transitions: system.NewTransitionLog(8, cfg.OnTransition),
		input:       system.NewInputSystem(cfg.Source),
		log:         log,
		step:        step,
	}

	// input feeds the controller, the camera follows the moved player and
	// the transition log drains before the tick's events are cleared
	w.AddSystem(s.input)
	w.AddSystem(system.NewPlayerControllerSystem())
	w.AddSystem(system.NewCameraSystem())
	w.AddSystem(s.Transitions)

	log.Info("session ready",
		zap.Stringer("player", scene.Player),
		zap.Float64("step", step),
	)
	return s, nil
}

// Step advances the simulation by one fixed tick.
func (s *Session) Step() {
	s.World.Update(s.step)
}

// SetSource swaps the input source for subsequent ticks.
func (s *Session) SetSource(source component.InputSource) {
	s.input.SetSource(source)
}

// Reload applies a changed prefab or script, named the way prefabs.Watcher
// reports it. current is the active input source; the returned source
// replaces it when a script it was built from changed.
func (s *Session) Reload(name string, current component.InputSource) (component.InputSource, error) {
	switch {
	case name == prefabs.PlayerFile:
		if err := s.Scene.ReloadPlayer(s.World, s.log); err != nil {
			return current, err
		}
		s.log.Info("player reloaded", zap.Stringer("entity", s.Scene.Player))
	case name == prefabs.CameraFile:
		if err := entity.ReloadCamera(s.World, s.Scene.Camera); err != nil {
			return current, err
		}
		s.log.Info("camera reloaded")
	case strings.HasPrefix(name, "scripts/"):
		script, ok := current.(*controls.ScriptSource)
		if !ok || "scripts/"+strings.TrimPrefix(script.Name(), "scripts/") != name {
			return current, nil
		}
		src, err := prefabs.LoadScript(name)
		if err != nil {
			return current, err
		}
		next, err := controls.NewScriptSource(script.Name(), src)
		if err != nil {
			return current, err
		}
		s.SetSource(next)
		s.log.Info("script reloaded", zap.String("script", name))
		return next, nil
	default:
		return current, fmt.Errorf("%w: %s", ErrRestartRequired, name)
	}
	return current, nil
}
