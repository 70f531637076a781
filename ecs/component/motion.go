package component

import "github.com/go-gl/mathgl/mgl64"

// Motion is the integrator state carried between ticks.
type Motion struct {
	// Velocity holds the unscaled movement vector. Its Y component is the
	// gravity accumulator and survives airborne ticks.
	Velocity mgl64.Vec3
	// SpeedScale is the multiplier applied on the last tick.
	SpeedScale float64
	// Displacement is the last delta handed to the character body.
	Displacement mgl64.Vec3
	Grounded     bool
}

var MotionComponent = NewComponent[Motion]()
