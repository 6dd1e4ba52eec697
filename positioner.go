package gallery

import (
	"fmt"
	"time"
)

// RenderSink applies the computed track translate. A positive transition asks
// the sink to interpolate from its current value to translate over that
// duration; zero means jump.
type RenderSink interface {
	MoveTrack(translate float64, transition time.Duration)
}

// Positioner maps gallery state to the single track translate. It follows the
// pointer with an elastic clamp while dragging, resolves the nearest item on
// release and gates the snap transition on elapsed Update time.
//
// All methods must be called from one goroutine, typically the host frame
// loop.
type Positioner struct {
	cfg      Config
	provider LayoutProvider
	sink     RenderSink

	layout         Layout
	containerWidth float64
	laidOut        bool

	activated    int
	passive      float64 // translate of the last settled item, without alignment
	display      float64 // translate handed to the sink
	active       float64 // raw translate under the pointer
	draggingDiff float64
	state        State

	snapTarget    int
	snapRemaining time.Duration

	resizePending   bool
	resizeRemaining time.Duration

	activatedChanged handlerList[func(int)]
	dragStarted      handlerList[func()]
	dragging         handlerList[func(Vec2)]
	dragEnded        handlerList[func()]
	store            EventStore

	debug    bool
	disposed bool
}

// NewPositioner creates a Positioner. Call RecomputeLayout before use.
func NewPositioner(provider LayoutProvider, sink RenderSink, cfg Config) *Positioner {
	return &Positioner{cfg: cfg, provider: provider, sink: sink}
}

// State returns the interaction state.
func (p *Positioner) State() State { return p.state }

// ActivatedIndex returns the activated item index.
func (p *Positioner) ActivatedIndex() int { return p.activated }

// DisplayTranslate returns the translate last handed to the render sink.
func (p *Positioner) DisplayTranslate() float64 { return p.display }

// Layout returns the current layout model. The returned Items slice MUST NOT
// be mutated.
func (p *Positioner) Layout() Layout { return p.layout }

// Highlighted returns the activated index and whether it should be rendered
// as activated. Nothing is highlighted while dragging.
func (p *Positioner) Highlighted() (int, bool) {
	return p.activated, p.state != StateDragging
}

// RecomputeLayout reads item geometry from the provider and rebuilds the
// layout. On failure the previous layout stays in effect. On success the
// activated index is clamped into range and the track jumps to it.
func (p *Positioner) RecomputeLayout() error {
	if p.disposed {
		return nil
	}
	layout, err := ComputeLayout(p.provider.ItemWidths(), p.cfg.Gap, p.cfg.BounceRate)
	if err != nil {
		p.debugf("layout rejected: %v", err)
		return err
	}
	if p.state == StateTransitioning {
		p.completeTransition()
	}
	p.layout = layout
	p.containerWidth = p.provider.ContainerWidth()
	p.laidOut = true
	p.debugf("layout: %d items, track width %g, container %g", layout.Len(), layout.TrackWidth, p.containerWidth)

	index := min(p.activated, layout.Len()-1)
	p.passive = -layout.Items[index].StartOffset
	offset, _ := p.OffsetFor(index)
	p.moveTrack(offset, 0)
	p.markActivated(index)
	return nil
}

// NotifyResize schedules a RecomputeLayout once ResizeDebounce of Update time
// has passed without another NotifyResize.
func (p *Positioner) NotifyResize() {
	if p.disposed {
		return
	}
	p.resizePending = true
	p.resizeRemaining = p.cfg.ResizeDebounce
}

// OffsetFor returns the display translate that rests item index at the
// configured alignment.
func (p *Positioner) OffsetFor(index int) (float64, error) {
	if index < 0 || index >= p.layout.Len() {
		return 0, fmt.Errorf("gallery: offset for item %d of %d: %w", index, p.layout.Len(), ErrIndexOutOfRange)
	}
	item := p.layout.Items[index]
	offset := -item.StartOffset
	if p.cfg.Alignment.Center {
		return offset + (p.containerWidth-item.Width)/2, nil
	}
	return offset + p.cfg.Alignment.Offset, nil
}

// GoTo activates item index without going through the drag states. The state
// change is immediate; the sink is asked to animate over TransitionDuration.
// A pending snap is cancelled and will not overwrite the result. A drag in
// progress is abandoned: drag-ended fires and further Drag and EndDrag calls
// for that gesture are ignored.
func (p *Positioner) GoTo(index int) error {
	if p.disposed {
		return nil
	}
	offset, err := p.OffsetFor(index)
	if err != nil {
		return err
	}
	abandoned := p.state == StateDragging
	switch p.state {
	case StateTransitioning:
		p.debugf("goto %d cancels snap to %d", index, p.snapTarget)
	case StateDragging:
		p.debugf("goto %d abandons drag", index)
	}
	p.state = StateIdle
	p.draggingDiff = 0
	p.passive = -p.layout.Items[index].StartOffset
	p.active = p.passive
	p.moveTrack(offset, p.cfg.TransitionDuration)
	p.markActivated(index)

	if abandoned {
		p.dragEnded.each(func(fn func()) { fn() })
		p.emit(Event{Type: EventDragEnded, Index: index})
	}
	return nil
}

// StartDrag enters the dragging state. A snap in flight is committed first so
// the drag composes on top of the position it reached.
func (p *Positioner) StartDrag() {
	if p.disposed || !p.laidOut || p.state == StateDragging {
		return
	}
	if p.state == StateTransitioning {
		p.debugf("drag interrupts snap to %d", p.snapTarget)
		p.completeTransition()
	}
	p.state = StateDragging
	p.active = p.passive
	p.draggingDiff = p.display - p.passive
	p.debugf("drag start: passive %g, diff %g", p.passive, p.draggingDiff)

	p.dragStarted.each(func(fn func()) { fn() })
	p.emit(Event{Type: EventDragStarted, Index: p.activated})
}

// Drag moves the track by delta.X from the resting position, with the bounce
// clamp applied. It is ignored unless dragging.
func (p *Positioner) Drag(delta Vec2) {
	if p.disposed || p.state != StateDragging {
		return
	}
	p.active = p.passive + delta.X
	p.moveTrack(p.layout.Bounce(p.active)+p.draggingDiff, 0)

	p.dragging.each(func(fn func(Vec2)) { fn(delta) })
	p.emit(Event{Type: EventDragging, Index: p.activated, Delta: delta})
}

// EndDrag resolves the nearest item in the release direction and starts the
// snap to it. It is ignored unless dragging.
func (p *Positioner) EndDrag() {
	if p.disposed || p.state != StateDragging {
		return
	}
	dir := DirectionRight
	if p.active < p.passive {
		dir = DirectionLeft
	}
	target := p.layout.Resolve(p.active, dir)
	offset, _ := p.OffsetFor(target)
	p.debugf("drag end: active %g, direction %s, snap to %d", p.active, dir, target)

	p.state = StateTransitioning
	p.snapTarget = target
	p.snapRemaining = p.cfg.TransitionDuration
	p.moveTrack(offset, p.cfg.TransitionDuration)

	p.dragEnded.each(func(fn func()) { fn() })
	p.emit(Event{Type: EventDragEnded, Index: target})

	if p.snapRemaining <= 0 && p.state == StateTransitioning {
		p.completeTransition()
	}
}

// Update advances the snap timer and the resize debounce by dt. It returns the
// error of a debounced layout recompute.
func (p *Positioner) Update(dt time.Duration) error {
	if p.disposed {
		return nil
	}
	if p.state == StateTransitioning {
		p.snapRemaining -= dt
		if p.snapRemaining <= 0 {
			p.completeTransition()
		}
	}
	if p.resizePending {
		p.resizeRemaining -= dt
		if p.resizeRemaining <= 0 {
			p.resizePending = false
			return p.RecomputeLayout()
		}
	}
	return nil
}

// Dispose cancels any pending work and drops every notification callback.
// Safe to call more than once.
func (p *Positioner) Dispose() {
	if p.disposed {
		return
	}
	p.disposed = true
	p.state = StateIdle
	p.resizePending = false
	p.activatedChanged.clear()
	p.dragStarted.clear()
	p.dragging.clear()
	p.dragEnded.clear()
	p.store = nil
}

func (p *Positioner) completeTransition() {
	p.state = StateIdle
	p.passive = -p.layout.Items[p.snapTarget].StartOffset
	p.markActivated(p.snapTarget)
}

func (p *Positioner) markActivated(index int) {
	if index == p.activated {
		return
	}
	p.activated = index
	p.debugf("activated %d", index)
	p.activatedChanged.each(func(fn func(int)) { fn(index) })
	p.emit(Event{Type: EventActivatedChanged, Index: index})
}

func (p *Positioner) moveTrack(translate float64, transition time.Duration) {
	p.display = translate
	if p.sink != nil {
		p.sink.MoveTrack(translate, transition)
	}
}

func (p *Positioner) emit(ev Event) {
	if p.store != nil {
		p.store.EmitEvent(ev)
	}
}
