package controls

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/thirdperson/common"
	"github.com/milk9111/thirdperson/ecs/component"
)

// Variables a script reads and writes. tick and dt are set before every run;
// the rest are read back afterwards.
const (
	scriptTick       = "tick"
	scriptDelta      = "dt"
	scriptHorizontal = "horizontal"
	scriptVertical   = "vertical"
	scriptRun        = "run"
	scriptJump       = "jump"
	scriptPointerX   = "pointer_x"
	scriptPointerY   = "pointer_y"
)

var scriptOutputs = []string{
	scriptHorizontal,
	scriptVertical,
	scriptRun,
	scriptJump,
	scriptPointerX,
	scriptPointerY,
}

// ScriptSource drives the controller from a tengo script, one run per tick.
// It is used for headless replays and for tests that need scripted input.
type ScriptSource struct {
	name     string
	compiled *tengo.Compiled
	tick     int

	sample component.Input
	err    error
}

var _ component.InputSource = (*ScriptSource)(nil)

// NewScriptSource compiles src. name only labels errors.
func NewScriptSource(name string, src []byte) (*ScriptSource, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add(scriptTick, 0); err != nil {
		return nil, fmt.Errorf("controls: script %s: %w", name, err)
	}
	if err := script.Add(scriptDelta, 0.0); err != nil {
		return nil, fmt.Errorf("controls: script %s: %w", name, err)
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("controls: compile script %s: %w", name, err)
	}

	source := &ScriptSource{name: name, compiled: compiled}
	// outputs only exist once the script has run; tick 0 is a dry run
	if err := source.run(0); err != nil {
		return nil, err
	}
	for _, out := range scriptOutputs {
		if !compiled.IsDefined(out) {
			return nil, fmt.Errorf("controls: script %s does not define %q", name, out)
		}
	}
	return source, nil
}

// Advance runs the script for the next tick. A failing run keeps the previous
// sample; the error is available from Err.
func (s *ScriptSource) Advance(dt float64) {
	s.tick++
	s.err = s.run(dt)
}

func (s *ScriptSource) run(dt float64) error {
	if err := s.compiled.Set(scriptTick, s.tick); err != nil {
		return err
	}
	if err := s.compiled.Set(scriptDelta, dt); err != nil {
		return err
	}
	if err := s.compiled.Run(); err != nil {
		return fmt.Errorf("controls: run script %s tick %d: %w", s.name, s.tick, err)
	}

	s.sample = component.Input{
		Horizontal: common.ClampAxis(s.compiled.Get(scriptHorizontal).Float()),
		Vertical:   common.ClampAxis(s.compiled.Get(scriptVertical).Float()),
		Run:        s.compiled.Get(scriptRun).Bool(),
		Jump:       s.compiled.Get(scriptJump).Bool(),
		PointerX:   s.compiled.Get(scriptPointerX).Float(),
		PointerY:   s.compiled.Get(scriptPointerY).Float(),
	}
	return nil
}

// Err returns the error from the last Advance, if any.
func (s *ScriptSource) Err() error {
	return s.err
}

// Name is the label the script was created with.
func (s *ScriptSource) Name() string {
	return s.name
}

// Tick is the number of Advance calls so far.
func (s *ScriptSource) Tick() int {
	return s.tick
}

func (s *ScriptSource) Axis(name string) float64 {
	switch name {
	case component.AxisHorizontal:
		return s.sample.Horizontal
	case component.AxisVertical:
		return s.sample.Vertical
	}
	return 0
}

func (s *ScriptSource) Held(action string) bool {
	switch action {
	case component.ActionRun:
		return s.sample.Run
	case component.ActionJump:
		return s.sample.Jump
	}
	return false
}

func (s *ScriptSource) Pointer() (float64, float64) {
	return s.sample.PointerX, s.sample.PointerY
}
