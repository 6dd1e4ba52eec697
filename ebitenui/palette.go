package ebitenui

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette returns n colours evenly spaced around the hue wheel.
func Palette(n int) []color.Color {
	out := make([]color.Color, n)
	for i := range out {
		hue := 360 * float64(i) / float64(max(n, 1))
		out[i] = colorful.Hsv(hue, 0.55, 0.85).Clamped()
	}
	return out
}

// SampleItems returns n labelled items of the given height whose widths cycle
// through a few sizes, coloured with Palette.
func SampleItems(n int, height float64) []Item {
	widths := [...]float64{160, 220, 140, 190}
	colors := Palette(n)
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			Width:  widths[i%len(widths)],
			Height: height,
			Color:  colors[i],
			Label:  fmt.Sprintf("%d", i+1),
		}
	}
	return items
}
