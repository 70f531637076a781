package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const parallelEpsilon = 1e-9

// Up is the world vertical axis. Yaw rotates about it.
var Up = mgl64.Vec3{0, 1, 0}

// Ray is a half-line in world space. Dir is expected to be normalized.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

// Point returns the point at distance t along the ray.
func (r Ray) Point(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Plane is stored in normal/distance form: dot(Normal, p) + Distance == 0.
type Plane struct {
	Normal   mgl64.Vec3
	Distance float64
}

// NewPlane builds a plane with the given normal passing through point.
func NewPlane(normal, point mgl64.Vec3) Plane {
	n := normal.Normalize()
	return Plane{Normal: n, Distance: -n.Dot(point)}
}

// HorizontalPlane is the plane y == height.
func HorizontalPlane(height float64) Plane {
	return NewPlane(Up, mgl64.Vec3{0, height, 0})
}

// Raycast returns the distance along the ray to the plane. ok is false when
// the ray is parallel to the plane, the plane is behind the origin or the ray
// is not finite.
func (p Plane) Raycast(r Ray) (float64, bool) {
	denom := r.Dir.Dot(p.Normal)
	if math.Abs(denom) < parallelEpsilon {
		return 0, false
	}
	t := (-r.Origin.Dot(p.Normal) - p.Distance) / denom
	if !Finite(t) || t <= 0 {
		return t, false
	}
	return t, true
}

// RotateYaw rotates v about the vertical axis by yaw radians. Yaw 0 leaves
// +Z as forward; positive yaw turns +Z toward +X.
func RotateYaw(v mgl64.Vec3, yaw float64) mgl64.Vec3 {
	return mgl64.QuatRotate(yaw, Up).Rotate(v)
}

// Forward is the unit facing vector for a yaw.
func Forward(yaw float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(yaw), 0, math.Cos(yaw)}
}

// YawTowards returns the yaw that faces target from origin, ignoring height.
// ok is false when the two points share the same horizontal position.
func YawTowards(origin, target mgl64.Vec3) (float64, bool) {
	dx := target.X() - origin.X()
	dz := target.Z() - origin.Z()
	if dx*dx+dz*dz < parallelEpsilon*parallelEpsilon {
		return 0, false
	}
	return math.Atan2(dx, dz), true
}
