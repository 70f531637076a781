package controls

import (
	"math"

	"github.com/milk9111/thirdperson/common"
)

const (
	DefaultSensitivity = 3.0
	DefaultGravity     = 3.0
)

// Axis turns a digital or raw analog signal into a smoothed value in [-1, 1].
// The value moves toward the raw input at Sensitivity units per second and
// falls back to zero at Gravity units per second once released.
type Axis struct {
	Sensitivity float64
	Gravity     float64
	// Snap jumps to zero when the input reverses direction.
	Snap bool

	value float64
}

func NewAxis() *Axis {
	return &Axis{
		Sensitivity: DefaultSensitivity,
		Gravity:     DefaultGravity,
		Snap:        true,
	}
}

// Step advances the axis by dt seconds toward raw and returns the new value.
func (a *Axis) Step(raw, dt float64) float64 {
	target := common.ClampAxis(raw)
	if a.Snap && target != 0 && a.value != 0 && math.Signbit(target) != math.Signbit(a.value) {
		a.value = 0
	}

	rate := a.Sensitivity
	if target == 0 {
		rate = a.Gravity
	}
	a.value = moveTowards(a.value, target, rate*dt)
	return a.value
}

// Set forces the value, e.g. when an analog stick takes over.
func (a *Axis) Set(v float64) {
	a.value = common.ClampAxis(v)
}

func (a *Axis) Value() float64 {
	return a.value
}

func (a *Axis) Reset() {
	a.value = 0
}

func moveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}
