package gallery

import "fmt"

// LayoutProvider reports item geometry measured by the host. The gallery does
// not measure anything itself.
type LayoutProvider interface {
	// ItemWidths returns the width of every item in visual left-to-right order.
	ItemWidths() []float64
	// ContainerWidth returns the width of the visible viewport.
	ContainerWidth() float64
}

// StaticLayout is a LayoutProvider with fixed values.
type StaticLayout struct {
	Widths    []float64
	Container float64
}

// ItemWidths implements LayoutProvider.
func (l StaticLayout) ItemWidths() []float64 { return l.Widths }

// ContainerWidth implements LayoutProvider.
func (l StaticLayout) ContainerWidth() float64 { return l.Container }

// ItemGeometry is the horizontal placement of one item on the unshifted track.
type ItemGeometry struct {
	StartOffset float64
	Width       float64
}

// Layout is the computed track model: per-item start offsets, the total track
// width and the bounce clamp derived from them.
type Layout struct {
	Items      []ItemGeometry
	TrackWidth float64
	Bounce     BounceFunc
}

// ComputeLayout places items of the given widths on a track with gap pixels
// between neighbours and derives the bounce clamp whose scrollable range ends
// at the last item's start offset. It fails with ErrInvalidBounds when there
// is nothing to scroll.
func ComputeLayout(widths []float64, gap, bounceRate float64) (Layout, error) {
	items := make([]ItemGeometry, len(widths))
	var width, lastItemWidth float64
	for i, w := range widths {
		items[i] = ItemGeometry{StartOffset: width, Width: w}
		width += w + gap
		lastItemWidth = w
	}
	trackWidth := width - gap
	if len(widths) == 0 {
		trackWidth = 0
	}

	bounce, err := NewBounce(0, trackWidth-lastItemWidth, bounceRate)
	if err != nil {
		return Layout{}, fmt.Errorf("gallery: layout of %d items: %w", len(widths), err)
	}
	return Layout{Items: items, TrackWidth: trackWidth, Bounce: bounce}, nil
}

// Len returns the number of items.
func (l Layout) Len() int {
	return len(l.Items)
}

// Resolve returns the index of the item nearest to translate. dir is the
// release direction and biases the choice when translate falls between two
// items. The result is always a valid index for a non-empty layout.
func (l Layout) Resolve(translate float64, dir Direction) int {
	target := -translate
	n := len(l.Items)

	firstFurther := 0
	for firstFurther < n && l.Items[firstFurther].StartOffset < target {
		firstFurther++
	}
	if firstFurther == 0 {
		return 0
	}
	if firstFurther == n {
		return n - 1
	}

	left := l.Items[firstFurther-1]
	right := l.Items[firstFurther]

	switch {
	case dir == DirectionLeft && target > left.StartOffset+left.Width:
		return firstFurther
	case dir == DirectionRight && target < right.StartOffset-right.Width:
		return firstFurther - 1
	}

	toLeft := target - (left.StartOffset + left.Width)
	toRight := right.StartOffset - target
	if toLeft < toRight {
		return firstFurther - 1
	}
	return firstFurther
}
