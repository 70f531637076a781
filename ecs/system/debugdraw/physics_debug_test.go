package debugdraw

import (
	"image/color"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/thirdperson/ecs"
	"github.com/milk9111/thirdperson/ecs/component"
)

func TestToNRGBA(t *testing.T) {
	cases := []struct {
		name string
		in   cp.FColor
		want color.NRGBA
	}{
		{"opaque_white", cp.FColor{R: 1, G: 1, B: 1, A: 1}, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"clamped", cp.FColor{R: 2, G: -1, B: 0.5, A: 1.5}, color.NRGBA{R: 255, G: 0, B: 127, A: 255}},
		{"transparent", cp.FColor{}, color.NRGBA{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := toNRGBA(c.in); got != c.want {
				t.Fatalf("toNRGBA(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestDebugCamera(t *testing.T) {
	w := ecs.NewWorld()
	if debugCamera(w) != nil {
		t.Fatalf("expected no camera in an empty world")
	}

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.CameraComponent, &component.Camera{Width: 320, Height: 200}); err != nil {
		t.Fatalf("add camera: %v", err)
	}
	cam := debugCamera(w)
	if cam == nil || cam.Width != 320 {
		t.Fatalf("camera = %+v", cam)
	}
}
