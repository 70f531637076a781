package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type AimTargetTag struct{}

var AimTargetTagComponent = NewComponent[AimTargetTag]()

// TargetTag marks entities the crosshair can acquire.
type TargetTag struct{}

var TargetTagComponent = NewComponent[TargetTag]()
