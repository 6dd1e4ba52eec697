package gallery

import (
	"reflect"
	"testing"
)

func TestPointerEventPoint(t *testing.T) {
	tests := []struct {
		name   string
		ev     PointerEvent
		want   Vec2
		wantOK bool
	}{
		{"mouse", PointerEvent{Kind: EventMouseMove, ClientX: 3, ClientY: 4}, Vec2{3, 4}, true},
		{"first touch", PointerEvent{Kind: EventTouchMove, Touches: []Vec2{{1, 2}, {9, 9}}}, Vec2{1, 2}, true},
		{"changed touch fallback", PointerEvent{Kind: EventTouchEnd, ChangedTouches: []Vec2{{5, 6}}}, Vec2{5, 6}, true},
		{"no touch point", PointerEvent{Kind: EventTouchStart}, Vec2{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.ev.Point()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Point() = %v, %v; want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTargetDispatch_CaptureFirst(t *testing.T) {
	target := NewTarget()
	var order []string
	target.AddListener(EventMouseMove, func(*PointerEvent) { order = append(order, "bubble") }, ListenerOptions{})
	target.AddListener(EventMouseMove, func(*PointerEvent) { order = append(order, "capture") }, ListenerOptions{Capture: true})
	target.AddListener(EventMouseUp, func(*PointerEvent) { order = append(order, "other kind") }, ListenerOptions{})

	target.Dispatch(&PointerEvent{Kind: EventMouseMove})

	want := []string{"capture", "bubble"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestTargetDispatch_RemoveDuringDispatch(t *testing.T) {
	target := NewTarget()
	var calls []string
	var second CallbackHandle
	var first CallbackHandle
	first = target.AddListener(EventMouseUp, func(*PointerEvent) {
		calls = append(calls, "first")
		first.Remove()
		second.Remove()
	}, ListenerOptions{})
	second = target.AddListener(EventMouseUp, func(*PointerEvent) {
		calls = append(calls, "second")
	}, ListenerOptions{})

	target.Dispatch(&PointerEvent{Kind: EventMouseUp})
	target.Dispatch(&PointerEvent{Kind: EventMouseUp})

	if !reflect.DeepEqual(calls, []string{"first"}) {
		t.Errorf("calls = %v, want [first]", calls)
	}
	if target.ListenerCount() != 0 {
		t.Errorf("ListenerCount() = %d, want 0", target.ListenerCount())
	}
	// Removing twice is harmless.
	first.Remove()
	CallbackHandle{}.Remove()
}

func TestPreventDefault(t *testing.T) {
	tests := []struct {
		name       string
		cancelable bool
		passive    bool
		want       bool
	}{
		{"cancelable active", true, false, true},
		{"cancelable passive", true, true, false},
		{"not cancelable", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := NewTarget()
			target.AddListener(EventTouchMove, func(ev *PointerEvent) { ev.PreventDefault() },
				ListenerOptions{Passive: tt.passive})
			ev := &PointerEvent{Kind: EventTouchMove, Cancelable: tt.cancelable}
			target.Dispatch(ev)
			if ev.DefaultPrevented() != tt.want {
				t.Errorf("DefaultPrevented() = %v, want %v", ev.DefaultPrevented(), tt.want)
			}
		})
	}
}

func TestNormalizeListenerOptions(t *testing.T) {
	opts := ListenerOptions{Passive: true, Capture: true}
	if got := normalizeListenerOptions(opts, true); got != opts {
		t.Errorf("supported: got %+v, want %+v", got, opts)
	}
	if got := normalizeListenerOptions(opts, false); got != (ListenerOptions{Capture: true}) {
		t.Errorf("unsupported: got %+v, want capture only", got)
	}
}

func TestSurfaceDeliver(t *testing.T) {
	doc := NewTarget()
	s := NewSurface(doc, Rect{X: 10, Y: 10, Width: 100, Height: 50})

	var onSurface, onDoc int
	s.AddListener(EventMouseDown, func(*PointerEvent) { onSurface++ }, ListenerOptions{})
	doc.AddListener(EventMouseDown, func(*PointerEvent) { onDoc++ }, ListenerOptions{})

	s.Deliver(&PointerEvent{Kind: EventMouseDown, ClientX: 50, ClientY: 30})
	s.Deliver(&PointerEvent{Kind: EventMouseDown, ClientX: 500, ClientY: 30})

	if onSurface != 1 {
		t.Errorf("surface listener fired %d times, want 1", onSurface)
	}
	if onDoc != 2 {
		t.Errorf("document listener fired %d times, want 2", onDoc)
	}
	if s.Document() != doc {
		t.Error("Document() should return the bubbling target")
	}
	if NewSurface(nil, Rect{}).Document() == nil {
		t.Error("nil doc should get a private document")
	}
}
