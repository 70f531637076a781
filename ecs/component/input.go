package component

// Axis and action names polled from an InputSource.
const (
	AxisHorizontal = "Horizontal"
	AxisVertical   = "Vertical"
	ActionRun      = "Run"
	ActionJump     = "Jump"
)

// Input stores per-frame input state for an entity.
type Input struct {
	Horizontal float64
	Vertical   float64
	Run        bool
	Jump       bool
	PointerX   float64
	PointerY   float64
}

var InputComponent = NewComponent[Input]()
