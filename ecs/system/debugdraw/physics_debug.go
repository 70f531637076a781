// Package debugdraw draws the world as projected wireframes. It is kept out of
// system so the simulation builds without the renderer.
package debugdraw

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/thirdperson/ecs"
	"github.com/milk9111/thirdperson/ecs/component"
	"github.com/milk9111/thirdperson/ecs/system"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 0.2
)

// DrawPhysicsDebug draws the Chipmunk shapes on the floor plane as seen by
// the first camera.
func DrawPhysicsDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	pw := w.PhysicsWorld()
	cam := debugCamera(w)
	if pw.Space() == nil || cam == nil {
		return
	}
	cp.DrawSpace(pw.Space(), &physicsDebugDrawer{
		screen: screen,
		cam:    cam,
		floorY: pw.FloorY(),
	})
}

// DrawPlayerStateDebug prints the player's locomotion and aim state, followed
// by the most recent transitions.
func DrawPlayerStateDebug(w *ecs.World, screen *ebiten.Image, transitions *system.TransitionLog) {
	if w == nil || screen == nil {
		return
	}
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}

	var b strings.Builder
	if loco, ok := ecs.Get(w, player, component.LocomotionComponent); ok {
		fmt.Fprintf(&b, "State: %s\n", loco.State)
	}
	if motion, ok := ecs.Get(w, player, component.MotionComponent); ok {
		fmt.Fprintf(&b, "Grounded: %v\nSpeed: %.1f\nVelocity: %.2f %.2f %.2f\n",
			motion.Grounded, motion.SpeedScale,
			motion.Velocity.X(), motion.Velocity.Y(), motion.Velocity.Z())
	}
	if tf, ok := ecs.Get(w, player, component.TransformComponent); ok {
		fmt.Fprintf(&b, "Position: %.2f %.2f %.2f\nYaw: %.0f\n",
			tf.Position.X(), tf.Position.Y(), tf.Position.Z(), mgl64.RadToDeg(tf.Yaw))
	}
	if aim, ok := ecs.Get(w, player, component.AimComponent); ok && aim.Valid {
		fmt.Fprintf(&b, "Aim: %.2f %.2f %.2f\n", aim.Point.X(), aim.Point.Y(), aim.Point.Z())
	}
	if marker, ok := w.First(component.CrosshairStateComponent.Kind()); ok {
		if state, ok := ecs.Get(w, marker, component.CrosshairStateComponent); ok && state.HasTarget {
			name := ecs.Entity(state.Target).String()
			if target, ok := ecs.Get(w, ecs.Entity(state.Target), component.TargetComponent); ok {
				name = target.Name
			}
			fmt.Fprintf(&b, "Target: %s\n", name)
		}
	}
	if transitions != nil {
		fmt.Fprintf(&b, "Transitions: %d\n", transitions.Total())
		for _, evt := range transitions.Recent() {
			fmt.Fprintf(&b, "  %6d %s -> %s\n", evt.Tick, evt.From, evt.To)
		}
	}
	ebitenutil.DebugPrintAt(screen, b.String(), 10, 24)
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	cam    *component.Camera
	floorY float64
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawCircle(a, radius, outline)
		d.drawCircle(b, radius, outline)
	}
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	half := debugDotSize / 2
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape.Sensor() {
		return cp.FColor{R: 1, G: 0.85, B: 0.25, A: 0.6}
	}
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	strokeWorldLine(d.screen, d.cam,
		mgl64.Vec3{a.X, d.floorY, a.Y},
		mgl64.Vec3{b.X, d.floorY, b.Y},
		toNRGBA(c))
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

// strokeWorldLine projects a world-space segment and draws it. Segments with
// an end behind the camera are skipped.
func strokeWorldLine(screen *ebiten.Image, cam *component.Camera, a, b mgl64.Vec3, c color.Color) {
	x1, y1, ok := cam.WorldToScreen(a)
	if !ok {
		return
	}
	x2, y2, ok := cam.WorldToScreen(b)
	if !ok {
		return
	}
	vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, c, true)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func debugCamera(w *ecs.World) *component.Camera {
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return nil
	}
	cam, ok := ecs.Get(w, camEntity, component.CameraComponent)
	if !ok {
		return nil
	}
	return cam
}
