package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/thirdperson/ecs"
	"github.com/milk9111/thirdperson/ecs/component"
	"github.com/milk9111/thirdperson/prefabs"
)

func NewAimTarget(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadAimTargetSpec()
	if err != nil {
		return 0, fmt.Errorf("aim target: load spec: %w", err)
	}

	size := spec.Size
	if size <= 0 {
		size = 0.35
	}

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.AimTargetTagComponent, &component.AimTargetTag{}); err != nil {
		return 0, fmt.Errorf("aim target: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{}); err != nil {
		return 0, fmt.Errorf("aim target: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.CrosshairStateComponent, &component.CrosshairState{}); err != nil {
		return 0, fmt.Errorf("aim target: add crosshair state: %w", err)
	}
	if err := ecs.Add(w, e, component.MarkerComponent, &component.Marker{
		Size:           size,
		Color:          spec.Color.Or(color.NRGBA{R: 255, G: 82, B: 82, A: 255}),
		HighlightColor: spec.TargetColor.Or(color.NRGBA{R: 255, G: 215, B: 64, A: 255}),
	}); err != nil {
		return 0, fmt.Errorf("aim target: add marker: %w", err)
	}
	return e, nil
}
