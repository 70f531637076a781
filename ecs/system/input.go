package system

import (
	"github.com/milk9111/thirdperson/common"
	"github.com/milk9111/thirdperson/ecs"
	"github.com/milk9111/thirdperson/ecs/component"
)

// advancer is implemented by sources that smooth or script their values and
// need to step once per tick before being polled.
type advancer interface {
	Advance(dt float64)
}

type InputSystem struct {
	source component.InputSource
}

func NewInputSystem(source component.InputSource) *InputSystem {
	return &InputSystem{source: source}
}

// SetSource swaps the polled source, e.g. when a script is reloaded.
func (i *InputSystem) SetSource(source component.InputSource) {
	i.source = source
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}

	if a, ok := i.source.(advancer); ok {
		a.Advance(w.DeltaTime())
	}

	sample := component.Input{
		Horizontal: common.ClampAxis(i.source.Axis(component.AxisHorizontal)),
		Vertical:   common.ClampAxis(i.source.Axis(component.AxisVertical)),
		Run:        i.source.Held(component.ActionRun),
		Jump:       i.source.Held(component.ActionJump),
	}
	sample.PointerX, sample.PointerY = i.source.Pointer()

	for _, e := range w.Query(component.PlayerTagComponent.Kind(), component.InputComponent.Kind()) {
		input, ok := ecs.Get(w, e, component.InputComponent)
		if !ok {
			continue
		}
		*input = sample
	}
}
