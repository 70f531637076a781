package component

import "fmt"

// Player holds the controller tunables. They are fixed once the player entity
// is built.
type Player struct {
	WalkSpeed float64
	RunSpeed  float64
	JumpSpeed float64
	Gravity   float64
	// AimHeight is the height of the aim plane above the character's base.
	AimHeight float64
}

// Validate reports ErrInvalidTuning when any speed or gravity is not positive.
func (p Player) Validate() error {
	if p.WalkSpeed <= 0 || p.RunSpeed <= 0 || p.JumpSpeed <= 0 || p.Gravity <= 0 {
		return fmt.Errorf("%w: walk=%v run=%v jump=%v gravity=%v",
			ErrInvalidTuning, p.WalkSpeed, p.RunSpeed, p.JumpSpeed, p.Gravity)
	}
	return nil
}

var PlayerComponent = NewComponent[Player]()
