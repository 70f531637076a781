package component

// Wall is a solid axis-aligned box on the XZ plane.
type Wall struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
}

var WallComponent = NewComponent[Wall]()
