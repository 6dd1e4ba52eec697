package gallery

// Vec2 is a 2D position or delta in input-device coordinates.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Direction is the horizontal direction a drag was released in. It is used
// as the tie-break hint when resolving the nearest item.
type Direction uint8

const (
	DirectionNone  Direction = iota // no hint; pick the strictly nearest item
	DirectionLeft                   // track moved toward negative translate (forward)
	DirectionRight                  // track moved toward positive translate (backward)
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// State is the interaction state of a Positioner. Exactly one holds at a time.
type State uint8

const (
	StateIdle          State = iota // settled on the activated item
	StateDragging                   // following the pointer
	StateTransitioning              // snapping to the resolved item
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateDragging:
		return "dragging"
	case StateTransitioning:
		return "transitioning"
	default:
		return "idle"
	}
}

// EventType identifies a gallery notification.
type EventType uint8

const (
	EventActivatedChanged EventType = iota // the activated item index changed
	EventDragStarted                       // a drag was recognized
	EventDragging                          // the pointer moved during a drag
	EventDragEnded                         // the drag was released and a snap began
)

// String returns the lowercase name of the event type.
func (e EventType) String() string {
	switch e {
	case EventActivatedChanged:
		return "activated-changed"
	case EventDragStarted:
		return "drag-started"
	case EventDragging:
		return "dragging"
	case EventDragEnded:
		return "drag-ended"
	default:
		return "unknown"
	}
}

// Event carries a gallery notification for an EventStore.
type Event struct {
	Type EventType
	// Index is the activated index (EventActivatedChanged) or the snap target
	// (EventDragEnded).
	Index int
	// Delta is the pointer delta from the gesture origin (EventDragging).
	Delta Vec2
}

// EventStore is the interface for optional external event sinks, such as the
// Donburi adapter in gallery/ecs. When set on a Gallery, every notification is
// forwarded to it after the registered callbacks ran.
type EventStore interface {
	EmitEvent(event Event)
}
