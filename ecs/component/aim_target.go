package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/thirdperson/common"
)

// Aim is the result of the last aim update. Point and Ray keep their previous
// values on ticks where the pointer ray misses the aim plane.
type Aim struct {
	Point mgl64.Vec3
	Ray   common.Ray
	Valid bool
}

var AimComponent = NewComponent[Aim]()

// CrosshairState records what the crosshair found along the last ray.
type CrosshairState struct {
	HasTarget bool
	Target    uint64
	Hit       mgl64.Vec3
}

var CrosshairStateComponent = NewComponent[CrosshairState]()
