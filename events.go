package gallery

// PointerEventKind identifies a low-level input event.
type PointerEventKind uint8

const (
	EventMouseDown   PointerEventKind = iota // primary mouse button pressed
	EventMouseMove                           // mouse moved (button state irrelevant)
	EventMouseUp                             // primary mouse button released
	EventTouchStart                          // a touch point began
	EventTouchMove                           // one or more touch points moved
	EventTouchEnd                            // a touch point lifted
	EventTouchCancel                         // the platform aborted a touch sequence
)

// IsTouch reports whether the kind is one of the touch kinds.
func (k PointerEventKind) IsTouch() bool {
	return k >= EventTouchStart
}

// PointerEvent is one raw input event in client coordinates. For touch kinds,
// Touches lists the points still in contact and ChangedTouches the points that
// changed with this event; ClientX and ClientY are unused.
type PointerEvent struct {
	Kind           PointerEventKind
	ClientX        float64
	ClientY        float64
	Touches        []Vec2
	ChangedTouches []Vec2
	Cancelable     bool

	defaultPrevented bool
	inPassive        bool
}

// PreventDefault asks the host to suppress its native handling of the event
// (scrolling, text selection). It has no effect on non-cancelable events or
// when called from a passive listener.
func (e *PointerEvent) PreventDefault() {
	if e.Cancelable && !e.inPassive {
		e.defaultPrevented = true
	}
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *PointerEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Point returns the position of the active pointer: the client position for
// mouse events, Touches[0] falling back to ChangedTouches[0] for touch events.
// It reports false for a touch event that carries no touch point.
func (e *PointerEvent) Point() (Vec2, bool) {
	if !e.Kind.IsTouch() {
		return Vec2{X: e.ClientX, Y: e.ClientY}, true
	}
	if len(e.Touches) > 0 {
		return e.Touches[0], true
	}
	if len(e.ChangedTouches) > 0 {
		return e.ChangedTouches[0], true
	}
	return Vec2{}, false
}

// ListenerOptions configures a listener registration.
type ListenerOptions struct {
	// Passive listeners cannot prevent the default action.
	Passive bool
	// Capture listeners run before non-capture listeners on the same target.
	Capture bool
}

// normalizeListenerOptions degrades opts to a capture-only registration when
// the host cannot honour passive flags.
func normalizeListenerOptions(opts ListenerOptions, passiveSupported bool) ListenerOptions {
	if passiveSupported {
		return opts
	}
	return ListenerOptions{Capture: opts.Capture}
}

type listener struct {
	kind PointerEventKind
	fn   func(*PointerEvent)
	opts ListenerOptions
}

// Target is a registry of pointer listeners, the in-process equivalent of an
// element or document in a browser host.
type Target struct {
	listeners handlerList[listener]
}

// NewTarget creates an empty Target.
func NewTarget() *Target {
	return &Target{}
}

// AddListener registers fn for events of the given kind.
func (t *Target) AddListener(kind PointerEventKind, fn func(*PointerEvent), opts ListenerOptions) CallbackHandle {
	return t.listeners.add(listener{kind: kind, fn: fn, opts: opts})
}

// ListenerCount returns the number of registered listeners.
func (t *Target) ListenerCount() int {
	return t.listeners.count()
}

// Dispatch delivers ev to the listeners registered for its kind: capture
// listeners first, then the rest, each group in registration order.
func (t *Target) Dispatch(ev *PointerEvent) {
	for _, capture := range [2]bool{true, false} {
		t.listeners.each(func(l listener) {
			if l.kind != ev.Kind || l.opts.Capture != capture {
				return
			}
			ev.inPassive = l.opts.Passive
			l.fn(ev)
			ev.inPassive = false
		})
	}
}

// Surface is a bounded input target. Events delivered to it bubble to its
// document Target, so listeners installed on the document keep receiving
// events after the pointer leaves the surface bounds.
type Surface struct {
	Target
	// Bounds is the hit area in client coordinates.
	Bounds Rect

	doc *Target
}

// NewSurface creates a Surface with the given bounds whose events bubble to
// doc. A nil doc gets a private document Target.
func NewSurface(doc *Target, bounds Rect) *Surface {
	if doc == nil {
		doc = NewTarget()
	}
	return &Surface{Bounds: bounds, doc: doc}
}

// Document returns the Target events bubble to.
func (s *Surface) Document() *Target {
	return s.doc
}

// Deliver routes a host event: to the surface when the event's point lies
// within Bounds, then always to the document.
func (s *Surface) Deliver(ev *PointerEvent) {
	if p, ok := ev.Point(); ok && s.Bounds.Contains(p.X, p.Y) {
		s.Dispatch(ev)
	}
	s.doc.Dispatch(ev)
}
