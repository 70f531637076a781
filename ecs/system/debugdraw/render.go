package debugdraw

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/thirdperson/common"
	"github.com/milk9111/thirdperson/ecs"
	"github.com/milk9111/thirdperson/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	wallDrawHeight  = 2.0
	floorGridStep   = 2.0
	floorGridExtent = 20.0
)

// RenderSystem draws every entity with a Marker as wireframe shapes through
// the first camera.
type RenderSystem struct {
	camEntity ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}
	cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent)
	if !ok {
		return
	}

	screen.Fill(colornames.Black)
	drawFloorGrid(screen, cam, w.PhysicsWorld().FloorY())

	ecs.ForEach(w, component.WallComponent, func(e ecs.Entity, wall *component.Wall) {
		c := color.Color(colornames.Slategray)
		if marker, ok := ecs.Get(w, e, component.MarkerComponent); ok && marker.Color != nil {
			c = marker.Color
		}
		drawBox(screen, cam, wall, w.PhysicsWorld().FloorY(), c)
	})

	highlighted := ecs.Entity(0)
	if marker, ok := w.First(component.CrosshairStateComponent.Kind()); ok {
		if state, ok := ecs.Get(w, marker, component.CrosshairStateComponent); ok && state.HasTarget {
			highlighted = ecs.Entity(state.Target)
		}
	}

	for _, e := range w.Query(component.TargetComponent.Kind(), component.TransformComponent.Kind()) {
		target, _ := ecs.Get(w, e, component.TargetComponent)
		tf, _ := ecs.Get(w, e, component.TransformComponent)
		c := color.Color(colornames.Yellowgreen)
		if marker, ok := ecs.Get(w, e, component.MarkerComponent); ok && marker.Color != nil {
			c = marker.Color
		}
		if e == highlighted {
			c = colornames.Gold
		}
		drawCylinder(screen, cam, tf.Position, target.Radius, target.Height, c)
	}

	for _, e := range w.Query(component.PlayerTagComponent.Kind(), component.TransformComponent.Kind()) {
		tf, _ := ecs.Get(w, e, component.TransformComponent)
		radius := 0.5
		c := color.Color(colornames.Deepskyblue)
		if marker, ok := ecs.Get(w, e, component.MarkerComponent); ok {
			if marker.Size > 0 {
				radius = marker.Size
			}
			if marker.Color != nil {
				c = marker.Color
			}
		}
		drawCylinder(screen, cam, tf.Position, radius, 1.8, c)
		nose := tf.Position.Add(common.Forward(tf.Yaw).Mul(radius * 2))
		strokeWorldLine(screen, cam, tf.Position, nose, c)

		if aim, ok := ecs.Get(w, e, component.AimComponent); ok && aim.Valid {
			strokeWorldLine(screen, cam, tf.Position.Add(mgl64.Vec3{0, aim.Point.Y() - tf.Position.Y(), 0}), aim.Point, colornames.Lightgrey)
		}
	}

	for _, e := range w.Query(component.AimTargetTagComponent.Kind(), component.TransformComponent.Kind()) {
		tf, _ := ecs.Get(w, e, component.TransformComponent)
		size := 0.35
		c := color.Color(colornames.Red)
		if marker, ok := ecs.Get(w, e, component.MarkerComponent); ok {
			if marker.Size > 0 {
				size = marker.Size
			}
			if marker.Color != nil {
				c = marker.Color
			}
			if highlighted.Valid() && marker.HighlightColor != nil {
				c = marker.HighlightColor
			}
		}
		drawCrosshair(screen, cam, tf.Position, size, c)
	}
}

func drawFloorGrid(screen *ebiten.Image, cam *component.Camera, floorY float64) {
	c := color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	for v := -floorGridExtent; v <= floorGridExtent; v += floorGridStep {
		strokeWorldLine(screen, cam, mgl64.Vec3{v, floorY, -floorGridExtent}, mgl64.Vec3{v, floorY, floorGridExtent}, c)
		strokeWorldLine(screen, cam, mgl64.Vec3{-floorGridExtent, floorY, v}, mgl64.Vec3{floorGridExtent, floorY, v}, c)
	}
}

func drawBox(screen *ebiten.Image, cam *component.Camera, wall *component.Wall, floorY float64, c color.Color) {
	corners := [4][2]float64{
		{wall.MinX, wall.MinZ},
		{wall.MaxX, wall.MinZ},
		{wall.MaxX, wall.MaxZ},
		{wall.MinX, wall.MaxZ},
	}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		strokeWorldLine(screen, cam, mgl64.Vec3{a[0], floorY, a[1]}, mgl64.Vec3{b[0], floorY, b[1]}, c)
		strokeWorldLine(screen, cam, mgl64.Vec3{a[0], floorY + wallDrawHeight, a[1]}, mgl64.Vec3{b[0], floorY + wallDrawHeight, b[1]}, c)
		strokeWorldLine(screen, cam, mgl64.Vec3{a[0], floorY, a[1]}, mgl64.Vec3{a[0], floorY + wallDrawHeight, a[1]}, c)
	}
}

func drawCylinder(screen *ebiten.Image, cam *component.Camera, base mgl64.Vec3, radius, height float64, c color.Color) {
	top := base.Add(mgl64.Vec3{0, height, 0})
	ring := func(center mgl64.Vec3, i int) mgl64.Vec3 {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		return center.Add(mgl64.Vec3{math.Cos(t) * radius, 0, math.Sin(t) * radius})
	}
	for i := 0; i < debugCircleSegments; i++ {
		strokeWorldLine(screen, cam, ring(base, i), ring(base, i+1), c)
		strokeWorldLine(screen, cam, ring(top, i), ring(top, i+1), c)
		if i%(debugCircleSegments/4) == 0 {
			strokeWorldLine(screen, cam, ring(base, i), ring(top, i), c)
		}
	}
}

func drawCrosshair(screen *ebiten.Image, cam *component.Camera, p mgl64.Vec3, size float64, c color.Color) {
	x, y, ok := cam.WorldToScreen(p)
	if !ok {
		return
	}
	edge, _, ok := cam.WorldToScreen(p.Add(mgl64.Vec3{size, 0, 0}))
	px := float32(math.Abs(edge - x))
	if !ok || px < 4 {
		px = 4
	}
	vector.StrokeLine(screen, float32(x)-px, float32(y), float32(x)+px, float32(y), 2, c, true)
	vector.StrokeLine(screen, float32(x), float32(y)-px, float32(x), float32(y)+px, 2, c, true)
	vector.StrokeRect(screen, float32(x)-px/2, float32(y)-px/2, px, px, 1, c, true)
}
