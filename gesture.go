package gallery

import "math"

// GestureState is the tracker's view of the current gesture. Origin and
// LastDelta are only meaningful when their Has flags are set.
type GestureState struct {
	Dragging  bool
	Origin    Vec2
	HasOrigin bool
	LastDelta Vec2
	HasDelta  bool
}

// GestureTracker turns raw pointer events on a Surface into a horizontal drag
// lifecycle: drag start, drag delta, drag end.
//
// Pointer-down listeners live on the surface for as long as the tracker is
// attached. Move and release listeners are installed on the surface's document
// when a pointer goes down and removed when it is released or cancelled, so a
// drag keeps tracking after the pointer leaves the surface bounds.
type GestureTracker struct {
	cfg     TrackerConfig
	state   GestureState
	pressed bool

	surface    *Surface
	surfaceOff []CallbackHandle
	docOff     []CallbackHandle

	dragStart handlerList[func()]
	dragDelta handlerList[func(Vec2)]
	dragEnd   handlerList[func(Vec2, bool)]
	detached  bool
}

// NewGestureTracker creates a tracker with the given configuration. A
// non-positive DragThreshold, as in a zero TrackerConfig, is treated as
// DefaultDragThreshold; Config.Validate rejects it for a Gallery.
func NewGestureTracker(cfg TrackerConfig) *GestureTracker {
	if cfg.DragThreshold <= 0 {
		cfg.DragThreshold = DefaultDragThreshold
	}
	return &GestureTracker{cfg: cfg}
}

// OnDragStart registers a callback fired once per recognized gesture.
func (g *GestureTracker) OnDragStart(fn func()) CallbackHandle {
	return g.dragStart.add(fn)
}

// OnDragDelta registers a callback fired on every pointer move while dragging.
// The vector is relative to the gesture origin, not to the previous move.
func (g *GestureTracker) OnDragDelta(fn func(Vec2)) CallbackHandle {
	return g.dragDelta.add(fn)
}

// OnDragEnd registers a callback fired once when a recognized gesture is
// released or cancelled. ok is false when no move was seen since pointer-down.
func (g *GestureTracker) OnDragEnd(fn func(delta Vec2, ok bool)) CallbackHandle {
	return g.dragEnd.add(fn)
}

// State returns a copy of the current gesture state.
func (g *GestureTracker) State() GestureState {
	return g.state
}

// DocumentListening reports whether document-level listeners are installed,
// which is true exactly while a pointer is down.
func (g *GestureTracker) DocumentListening() bool {
	return len(g.docOff) > 0
}

// Attach registers pointer-down listeners on s. Attaching an already attached
// tracker, or a detached one, does nothing.
func (g *GestureTracker) Attach(s *Surface) {
	if g.surface != nil || g.detached || s == nil {
		return
	}
	g.surface = s
	g.surfaceOff = append(g.surfaceOff,
		s.AddListener(EventMouseDown, g.pointerDown, ListenerOptions{}),
		s.AddListener(EventTouchStart, g.pointerDown, ListenerOptions{}),
	)
}

// Detach removes every listener, drops all drag callbacks and resets the
// gesture state. No drag event fires after Detach returns. Safe to call more
// than once.
func (g *GestureTracker) Detach() {
	if g.detached {
		return
	}
	g.detached = true
	for _, h := range g.surfaceOff {
		h.Remove()
	}
	g.surfaceOff = nil
	g.removeDocumentListeners()
	g.dragStart.clear()
	g.dragDelta.clear()
	g.dragEnd.clear()
	g.surface = nil
	g.pressed = false
	g.state = GestureState{}
}

func (g *GestureTracker) pointerDown(ev *PointerEvent) {
	if g.pressed || g.detached {
		return
	}
	p, ok := ev.Point()
	if !ok {
		return
	}
	g.pressed = true
	g.state = GestureState{Origin: p, HasOrigin: true}

	doc := g.surface.Document()
	touchOpts := normalizeListenerOptions(ListenerOptions{Passive: false, Capture: true}, g.cfg.PassiveListeners)
	g.docOff = append(g.docOff,
		doc.AddListener(EventMouseMove, g.pointerMove, ListenerOptions{}),
		doc.AddListener(EventTouchMove, g.pointerMove, touchOpts),
		doc.AddListener(EventMouseUp, g.pointerUp, ListenerOptions{}),
		doc.AddListener(EventTouchEnd, g.pointerUp, ListenerOptions{}),
		doc.AddListener(EventTouchCancel, g.pointerUp, ListenerOptions{}),
	)

	if g.cfg.ImmediateDrag {
		g.beginDrag()
	}
}

func (g *GestureTracker) pointerMove(ev *PointerEvent) {
	if !g.pressed {
		return
	}
	p, ok := ev.Point()
	if !ok {
		return
	}
	delta := p.Sub(g.state.Origin)
	g.state.LastDelta = delta
	g.state.HasDelta = true

	if !g.state.Dragging && math.Abs(delta.X) > g.cfg.DragThreshold {
		g.beginDrag()
	}
	if !g.state.Dragging {
		return
	}
	if ev.Cancelable {
		ev.PreventDefault()
	}
	g.dragDelta.each(func(fn func(Vec2)) { fn(delta) })
}

func (g *GestureTracker) pointerUp(_ *PointerEvent) {
	if !g.pressed {
		return
	}
	wasDragging := g.state.Dragging
	delta, ok := g.state.LastDelta, g.state.HasDelta

	g.pressed = false
	g.state.Dragging = false
	g.removeDocumentListeners()

	if wasDragging {
		g.dragEnd.each(func(fn func(Vec2, bool)) { fn(delta, ok) })
	}
}

func (g *GestureTracker) beginDrag() {
	g.state.Dragging = true
	g.dragStart.each(func(fn func()) { fn() })
}

func (g *GestureTracker) removeDocumentListeners() {
	for _, h := range g.docOff {
		h.Remove()
	}
	g.docOff = g.docOff[:0]
}
