// Package gallery is the interaction engine of a horizontally scrollable
// gallery: a row of items the user drags to browse, which snaps to the nearest
// item on release and supports programmatic navigation.
//
// The engine has two parts. A [GestureTracker] listens for pointer and touch
// events on a [Surface] and turns them into drag start, drag delta and drag
// end, recognizing a drag only after the pointer moved more than
// [DefaultDragThreshold] pixels horizontally. A [Positioner] keeps the layout
// model (item start offsets, track width), follows the pointer with an elastic
// clamp at the edges, resolves the nearest item on release and gates the snap
// transition on elapsed time.
//
// # Quick start
//
// [New] wires both parts together. The host measures items, applies the
// translate, and drives time:
//
//	doc := gallery.NewTarget()
//	surface := gallery.NewSurface(doc, gallery.Rect{Width: 640, Height: 200})
//	layout := gallery.StaticLayout{Widths: []float64{150, 150, 150}, Container: 640}
//	g, err := gallery.New(surface, layout, sink, gallery.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	g.OnActivatedChanged(func(i int) { fmt.Println("activated", i) })
//
//	// each frame:
//	surface.Deliver(&gallery.PointerEvent{Kind: gallery.EventMouseDown, ClientX: x, ClientY: y})
//	g.Update(dt)
//
// The sink receives every translate together with a transition duration and
// is responsible for the visual interpolation. Package gallery/ebitenui
// provides an [Ebitengine] host that polls input, renders the track and tweens
// it with [gween].
//
// # Threading
//
// Nothing in this package starts goroutines or is safe for concurrent use.
// Deliver input, call Update and call the host operations from one goroutine.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package gallery
