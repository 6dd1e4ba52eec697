package ebitenui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/gallery"
)

func recordSurface(bounds gallery.Rect) (*gallery.Surface, *[]gallery.PointerEvent) {
	s := gallery.NewSurface(nil, bounds)
	var got []gallery.PointerEvent
	for _, k := range []gallery.PointerEventKind{
		gallery.EventMouseDown, gallery.EventMouseMove, gallery.EventMouseUp,
		gallery.EventTouchStart, gallery.EventTouchMove, gallery.EventTouchEnd,
	} {
		s.Document().AddListener(k, func(ev *gallery.PointerEvent) {
			got = append(got, *ev)
		}, gallery.ListenerOptions{})
	}
	return s, &got
}

func kinds(evs []gallery.PointerEvent) []gallery.PointerEventKind {
	out := make([]gallery.PointerEventKind, len(evs))
	for i, ev := range evs {
		out[i] = ev.Kind
	}
	return out
}

func sameKinds(a, b []gallery.PointerEventKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMousePointerTransitions(t *testing.T) {
	s, got := recordSurface(gallery.Rect{Width: 100, Height: 100})
	in := NewInput(s)

	in.processMousePointer(10, 10, false) // hover
	in.processMousePointer(10, 10, false) // no change
	in.processMousePointer(10, 10, true)  // press
	in.processMousePointer(30, 10, true)  // drag
	in.processMousePointer(40, 12, false) // release elsewhere

	want := []gallery.PointerEventKind{
		gallery.EventMouseMove,
		gallery.EventMouseDown,
		gallery.EventMouseMove,
		gallery.EventMouseMove,
		gallery.EventMouseUp,
	}
	if !sameKinds(kinds(*got), want) {
		t.Fatalf("kinds = %v, want %v", kinds(*got), want)
	}
	last := (*got)[len(*got)-1]
	if last.ClientX != 40 || last.ClientY != 12 {
		t.Errorf("release at (%g, %g), want (40, 12)", last.ClientX, last.ClientY)
	}
	if !(*got)[2].Cancelable {
		t.Error("mouse move should be cancelable")
	}
}

func TestTouchFrameDiff(t *testing.T) {
	s, got := recordSurface(gallery.Rect{Width: 100, Height: 100})
	in := NewInput(s)

	a := touchPoint{id: ebiten.TouchID(1), pos: gallery.Vec2{X: 10, Y: 10}}
	b := touchPoint{id: ebiten.TouchID(2), pos: gallery.Vec2{X: 50, Y: 50}}

	in.processTouchFrame([]touchPoint{a})
	in.processTouchFrame([]touchPoint{a}) // unchanged
	a.pos.X = 25
	in.processTouchFrame([]touchPoint{b, a}) // a moves, b starts
	in.processTouchFrame([]touchPoint{b})    // a ends

	want := []gallery.PointerEventKind{
		gallery.EventTouchStart,
		gallery.EventTouchMove,
		gallery.EventTouchStart,
		gallery.EventTouchEnd,
	}
	if !sameKinds(kinds(*got), want) {
		t.Fatalf("kinds = %v, want %v", kinds(*got), want)
	}

	move := (*got)[1]
	if p, _ := move.Point(); p.X != 25 {
		t.Errorf("move point x = %g, want 25", p.X)
	}
	start := (*got)[2]
	if len(start.Touches) != 2 || start.Touches[0].X != 25 {
		t.Errorf("second start touches = %v, want first-contact order", start.Touches)
	}
	end := (*got)[3]
	if len(end.Touches) != 1 || end.ChangedTouches[0].X != 25 {
		t.Errorf("end touches = %v changed = %v", end.Touches, end.ChangedTouches)
	}
}

func TestInjectQueue(t *testing.T) {
	s, got := recordSurface(gallery.Rect{Width: 400, Height: 100})
	in := NewInput(s)

	in.InjectClick(50, 50)
	if in.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", in.Pending())
	}
	if !in.processInjectedInput() {
		t.Fatal("expected an injected event")
	}
	if in.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", in.Pending())
	}
	in.processInjectedInput()
	if in.processInjectedInput() {
		t.Fatal("queue should be empty")
	}

	want := []gallery.PointerEventKind{gallery.EventMouseDown, gallery.EventMouseUp}
	if !sameKinds(kinds(*got), want) {
		t.Errorf("kinds = %v, want %v", kinds(*got), want)
	}
}

func TestInjectDragFrames(t *testing.T) {
	tests := []struct {
		name   string
		frames int
		want   int
	}{
		{"five frames", 5, 5},
		{"clamped to two", 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInput(gallery.NewSurface(nil, gallery.Rect{}))
			in.InjectDrag(0, 0, 100, 0, tt.frames)
			if in.Pending() != tt.want {
				t.Fatalf("Pending = %d, want %d", in.Pending(), tt.want)
			}
			last := in.injectQueue[len(in.injectQueue)-1]
			if last.pressed || last.x != 100 {
				t.Errorf("last event = %+v, want release at 100", last)
			}
		})
	}
}

func TestInjectedDragDrivesGallery(t *testing.T) {
	tests := []struct {
		name string
		toX  float64
		want int
	}{
		{"short drag snaps back", 180, 0},
		{"drag to trailing edge snaps back", 150, 0},
		{"drag past trailing edge advances", 70, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := gallery.NewSurface(nil, gallery.Rect{Width: 600, Height: 200})
			layout := gallery.StaticLayout{Widths: []float64{150, 150, 150}, Container: 600}
			cfg := gallery.DefaultConfig()
			cfg.Gap = 50
			g, err := gallery.New(surface, layout, nil, cfg)
			if err != nil {
				t.Fatal(err)
			}
			in := NewInput(surface)

			in.InjectDrag(300, 100, tt.toX, 100, 6)
			for in.Pending() > 0 {
				in.processInjectedInput()
			}
			if g.State() != gallery.StateTransitioning {
				t.Fatalf("state = %v, want transitioning", g.State())
			}
			if err := g.Update(cfg.TransitionDuration); err != nil {
				t.Fatal(err)
			}
			if g.ActivatedIndex() != tt.want {
				t.Errorf("activated = %d, want %d", g.ActivatedIndex(), tt.want)
			}
		})
	}
}
