package component

// Target is an upright cylinder the crosshair can acquire.
type Target struct {
	Name   string
	Radius float64
	Height float64
}

var TargetComponent = NewComponent[Target]()
