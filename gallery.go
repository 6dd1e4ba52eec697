package gallery

import (
	"fmt"
	"time"
)

// Gallery is a horizontally scrollable row of items. It connects a
// GestureTracker attached to a Surface to a Positioner and exposes the
// operations and notifications a host needs.
//
// A Gallery has no goroutines of its own. The host delivers input through the
// Surface and calls Update once per frame with the elapsed time.
type Gallery struct {
	tracker  *GestureTracker
	pos      *Positioner
	disposed bool
}

// New creates a Gallery, attaches it to surface and performs the initial
// layout, activating the first item without animation.
func New(surface *Surface, provider LayoutProvider, sink RenderSink, cfg Config) (*Gallery, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if surface == nil {
		return nil, fmt.Errorf("%w: nil surface", ErrInvalidConfig)
	}
	if provider == nil {
		return nil, fmt.Errorf("%w: nil layout provider", ErrInvalidConfig)
	}

	g := &Gallery{
		tracker: NewGestureTracker(cfg.Tracker),
		pos:     NewPositioner(provider, sink, cfg),
	}
	if err := g.pos.RecomputeLayout(); err != nil {
		return nil, err
	}

	g.tracker.OnDragStart(g.pos.StartDrag)
	g.tracker.OnDragDelta(g.pos.Drag)
	g.tracker.OnDragEnd(func(Vec2, bool) { g.pos.EndDrag() })
	g.tracker.Attach(surface)
	return g, nil
}

// Tracker returns the gesture tracker feeding this gallery.
func (g *Gallery) Tracker() *GestureTracker { return g.tracker }

// Positioner returns the track positioner.
func (g *Gallery) Positioner() *Positioner { return g.pos }

// ActivatedIndex returns the activated item index.
func (g *Gallery) ActivatedIndex() int { return g.pos.ActivatedIndex() }

// DisplayTranslate returns the current track translate.
func (g *Gallery) DisplayTranslate() float64 { return g.pos.DisplayTranslate() }

// State returns the interaction state.
func (g *Gallery) State() State { return g.pos.State() }

// Layout returns the current layout model.
func (g *Gallery) Layout() Layout { return g.pos.Layout() }

// Highlighted returns the activated index and whether it is rendered as
// activated.
func (g *Gallery) Highlighted() (int, bool) { return g.pos.Highlighted() }

// GoTo activates item index. See Positioner.GoTo.
func (g *Gallery) GoTo(index int) error { return g.pos.GoTo(index) }

// OffsetFor returns the resting translate of item index.
func (g *Gallery) OffsetFor(index int) (float64, error) { return g.pos.OffsetFor(index) }

// RecomputeLayout re-reads item geometry. Call it after the item set changed.
func (g *Gallery) RecomputeLayout() error { return g.pos.RecomputeLayout() }

// NotifyResize schedules a debounced RecomputeLayout.
func (g *Gallery) NotifyResize() { g.pos.NotifyResize() }

// Update advances timers by dt. Call it once per frame.
func (g *Gallery) Update(dt time.Duration) error { return g.pos.Update(dt) }

// SetDebugMode enables or disables debug logging to stderr.
func (g *Gallery) SetDebugMode(enabled bool) { g.pos.SetDebugMode(enabled) }

// SetEventStore forwards every notification to store. Pass nil to stop.
func (g *Gallery) SetEventStore(store EventStore) {
	if g.disposed {
		return
	}
	g.pos.store = store
}

// OnActivatedChanged registers a callback fired when the activated index
// changes.
func (g *Gallery) OnActivatedChanged(fn func(index int)) CallbackHandle {
	return g.pos.activatedChanged.add(fn)
}

// OnDragStarted registers a callback fired when a drag is recognized.
func (g *Gallery) OnDragStarted(fn func()) CallbackHandle {
	return g.pos.dragStarted.add(fn)
}

// OnDragging registers a callback fired on every drag move with the delta
// from the gesture origin.
func (g *Gallery) OnDragging(fn func(delta Vec2)) CallbackHandle {
	return g.pos.dragging.add(fn)
}

// OnDragEnded registers a callback fired when a drag is released.
func (g *Gallery) OnDragEnded(fn func()) CallbackHandle {
	return g.pos.dragEnded.add(fn)
}

// Dispose detaches all input listeners, cancels pending timers and drops
// every callback. No callback fires after Dispose returns. Safe to call more
// than once.
func (g *Gallery) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	g.tracker.Detach()
	g.pos.Dispose()
}
