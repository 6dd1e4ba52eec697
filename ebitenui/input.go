package ebitenui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/gallery"
)

// touchPoint is an active touch in first-contact order.
type touchPoint struct {
	id  ebiten.TouchID
	pos gallery.Vec2
}

// Input polls Ebitengine input and delivers pointer events to a surface.
// Mouse input is reported with the mouse kinds; touches with the touch kinds,
// listing every active touch in the order it started.
type Input struct {
	surface *gallery.Surface

	mouseDown bool
	mouseX    float64
	mouseY    float64

	touches  []touchPoint
	touchIDs []ebiten.TouchID
	frame    []touchPoint

	injectQueue []syntheticPointerEvent
}

// NewInput creates an Input delivering to surface.
func NewInput(surface *gallery.Surface) *Input {
	return &Input{surface: surface}
}

// Update polls input for this tick. A queued synthetic event, if any, replaces
// real mouse input for the tick.
func (in *Input) Update() {
	if in.processInjectedInput() {
		return
	}
	mx, my := ebiten.CursorPosition()
	in.processMousePointer(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	in.frame = in.frame[:0]
	for _, id := range in.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		in.frame = append(in.frame, touchPoint{id: id, pos: gallery.Vec2{X: float64(tx), Y: float64(ty)}})
	}
	in.processTouchFrame(in.frame)
}

// processMousePointer runs the mouse state machine for one sample.
func (in *Input) processMousePointer(x, y float64, pressed bool) {
	moved := x != in.mouseX || y != in.mouseY

	switch {
	case pressed && !in.mouseDown:
		in.deliverMouse(gallery.EventMouseDown, x, y)
	case !pressed && in.mouseDown:
		// Report the final position before the release so the last delta is exact.
		if moved {
			in.deliverMouse(gallery.EventMouseMove, x, y)
		}
		in.deliverMouse(gallery.EventMouseUp, x, y)
	case moved:
		in.deliverMouse(gallery.EventMouseMove, x, y)
	}

	in.mouseDown = pressed
	in.mouseX = x
	in.mouseY = y
}

func (in *Input) deliverMouse(kind gallery.PointerEventKind, x, y float64) {
	in.surface.Deliver(&gallery.PointerEvent{
		Kind:       kind,
		ClientX:    x,
		ClientY:    y,
		Cancelable: kind == gallery.EventMouseMove,
	})
}

// processTouchFrame diffs the touches present this tick against the previous
// tick and delivers end, move and start events in that order.
func (in *Input) processTouchFrame(frame []touchPoint) {
	// Ended touches.
	for i := 0; i < len(in.touches); {
		tp := in.touches[i]
		if containsTouch(frame, tp.id) {
			i++
			continue
		}
		in.touches = append(in.touches[:i], in.touches[i+1:]...)
		in.deliverTouch(gallery.EventTouchEnd, []gallery.Vec2{tp.pos})
	}

	// Moved touches.
	var changed []gallery.Vec2
	for i := range in.touches {
		for _, fp := range frame {
			if fp.id == in.touches[i].id && fp.pos != in.touches[i].pos {
				in.touches[i].pos = fp.pos
				changed = append(changed, fp.pos)
			}
		}
	}
	if len(changed) > 0 {
		in.deliverTouch(gallery.EventTouchMove, changed)
	}

	// New touches.
	for _, fp := range frame {
		if containsTouch(in.touches, fp.id) {
			continue
		}
		in.touches = append(in.touches, fp)
		in.deliverTouch(gallery.EventTouchStart, []gallery.Vec2{fp.pos})
	}
}

func (in *Input) deliverTouch(kind gallery.PointerEventKind, changed []gallery.Vec2) {
	touches := make([]gallery.Vec2, len(in.touches))
	for i, tp := range in.touches {
		touches[i] = tp.pos
	}
	in.surface.Deliver(&gallery.PointerEvent{
		Kind:           kind,
		Touches:        touches,
		ChangedTouches: changed,
		Cancelable:     kind == gallery.EventTouchMove,
	})
}

func containsTouch(s []touchPoint, id ebiten.TouchID) bool {
	for _, tp := range s {
		if tp.id == id {
			return true
		}
	}
	return false
}
