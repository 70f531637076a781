package component

import "image/color"

// Marker is how the debug view draws an entity: a disc of Size world units.
// HighlightColor replaces Color while the entity is flagged, e.g. the
// crosshair resting on a target.
type Marker struct {
	Size           float64
	Color          color.Color
	HighlightColor color.Color
}

var MarkerComponent = NewComponent[Marker]()
