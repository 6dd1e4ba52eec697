// Package ebitenui hosts a gallery.Gallery on [Ebitengine].
//
// [Input] polls the mouse and touch screen once per tick and delivers raw
// pointer events to a gallery.Surface. [TrackView] measures items for the
// gallery, receives the computed translate and tweens it with [gween], scaling
// the activated item up. [Game] ties them together into an ebiten.Game, and
// [Run] opens a window for it:
//
//	err := ebitenui.Run(ebitenui.RunConfig{
//		Title:  "Gallery",
//		Width:  800,
//		Height: 320,
//		Items:  ebitenui.SampleItems(8, 180),
//		Config: gallery.DefaultConfig(),
//	})
//
// Input can be scripted for automated tests with the Inject methods on [Input]
// or a JSON script loaded with [LoadTestScript].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package ebitenui
