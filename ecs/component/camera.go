package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/thirdperson/common"
)

// Camera is a perspective camera that looks at Target from Position.
// Offset is where the follow system keeps it relative to the target entity.
type Camera struct {
	TargetName string
	Position   mgl64.Vec3
	Target     mgl64.Vec3
	Offset     mgl64.Vec3
	FovY       float64 // degrees
	Near       float64
	Far        float64
	Width      int
	Height     int
	Smoothness float64
}

var _ RayProjector = (*Camera)(nil)

// view mirrors eye-space X so the world reads left-handed: facing +Z, +X is
// on the right of the screen.
func (c *Camera) view() mgl64.Mat4 {
	return mgl64.Scale3D(-1, 1, 1).Mul4(mgl64.LookAtV(c.Position, c.Target, common.Up))
}

func (c *Camera) projection() mgl64.Mat4 {
	aspect := 1.0
	if c.Height > 0 {
		aspect = float64(c.Width) / float64(c.Height)
	}
	return mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// ScreenPointToRay converts a pointer position (origin top-left, y down) into
// a world-space ray starting on the near plane.
func (c *Camera) ScreenPointToRay(x, y float64) common.Ray {
	if c == nil || c.Width <= 0 || c.Height <= 0 {
		return common.Ray{}
	}
	view := c.view()
	proj := c.projection()
	winY := float64(c.Height) - y

	near, err := mgl64.UnProject(mgl64.Vec3{x, winY, 0}, view, proj, 0, 0, c.Width, c.Height)
	if err != nil {
		return common.Ray{}
	}
	far, err := mgl64.UnProject(mgl64.Vec3{x, winY, 1}, view, proj, 0, 0, c.Width, c.Height)
	if err != nil {
		return common.Ray{}
	}
	dir := far.Sub(near)
	if dir.Len() == 0 {
		return common.Ray{}
	}
	return common.Ray{Origin: near, Dir: dir.Normalize()}
}

// WorldToScreen projects p to pointer coordinates. ok is false for points
// behind the camera.
func (c *Camera) WorldToScreen(p mgl64.Vec3) (x, y float64, ok bool) {
	if c == nil || c.Width <= 0 || c.Height <= 0 {
		return 0, 0, false
	}
	clip := c.projection().Mul4(c.view()).Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x = float64(c.Width) * (ndc.X() + 1) / 2
	y = float64(c.Height) - float64(c.Height)*(ndc.Y()+1)/2
	return x, y, true
}

var CameraComponent = NewComponent[Camera]()
