package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // world point at the screen center
	Zoom     float64

	// ZoomTween runs 0..1 while the camera eases from one framing to the
	// next after a height change; nil when idle.
	ZoomTween *gween.Tween
	FromPos   math.Vec2
	ToPos     math.Vec2
	FromZoom  float64
	ToZoom    float64

	Dragging   bool
	DragStart  math.Vec2 // cursor position when the drag began
	DragOrigin math.Vec2 // camera position when the drag began
	Follow     bool      // track the player until the user pans away
}

var Camera = donburi.NewComponentType[CameraData]()
