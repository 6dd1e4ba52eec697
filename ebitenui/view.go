package ebitenui

import (
	"bytes"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/gallery"
)

// Item is one gallery entry drawn as a filled card.
type Item struct {
	Width  float64
	Height float64
	Color  color.Color
	Label  string
}

// scaledValue is a float64 driven toward a target by an optional tween.
type scaledValue struct {
	value  float64
	target float64
	tween  *gween.Tween
}

func (s *scaledValue) animateTo(to float64, duration time.Duration, fn ease.TweenFunc) {
	if to == s.target && (s.tween != nil || s.value == to) {
		return
	}
	s.target = to
	if duration <= 0 {
		s.value = to
		s.tween = nil
		return
	}
	s.tween = gween.New(float32(s.value), float32(to), float32(duration.Seconds()), fn)
}

func (s *scaledValue) update(dt float32) {
	if s.tween == nil {
		return
	}
	v, done := s.tween.Update(dt)
	s.value = float64(v)
	if done {
		s.value = s.target
		s.tween = nil
	}
}

// TrackView renders a row of items translated horizontally. It implements
// gallery.LayoutProvider and gallery.RenderSink: the gallery measures it and
// hands it every translate, which it tweens over the requested transition.
type TrackView struct {
	Items []Item
	// Viewport is the screen area the track is drawn and clipped to.
	Viewport gallery.Rect
	// ScaleRate is the scale of the highlighted item.
	ScaleRate float64
	// Ease shapes every tween. Defaults to ease.OutCubic.
	Ease ease.TweenFunc
	// Labels toggles item labels.
	Labels bool

	translate scaledValue
	placed    bool
	scales    []scaledValue
}

// NewTrackView creates a view of items inside viewport.
func NewTrackView(items []Item, viewport gallery.Rect, scaleRate float64) *TrackView {
	v := &TrackView{
		Items:     items,
		Viewport:  viewport,
		ScaleRate: scaleRate,
		Ease:      ease.OutCubic,
		Labels:    true,
	}
	v.syncScales()
	return v
}

// ItemWidths returns the unscaled width of every item.
func (v *TrackView) ItemWidths() []float64 {
	widths := make([]float64, len(v.Items))
	for i, it := range v.Items {
		widths[i] = it.Width
	}
	return widths
}

// ContainerWidth returns the viewport width.
func (v *TrackView) ContainerWidth() float64 {
	return v.Viewport.Width
}

// MoveTrack tweens the translate to translate over transition. The first call
// always jumps so the track does not slide in from zero.
func (v *TrackView) MoveTrack(translate float64, transition time.Duration) {
	if !v.placed {
		transition = 0
		v.placed = true
	}
	v.translate.animateTo(translate, transition, v.easeFunc())
}

// Translate returns the translate currently drawn.
func (v *TrackView) Translate() float64 {
	return v.translate.value
}

// Animating reports whether any tween is in flight.
func (v *TrackView) Animating() bool {
	if v.translate.tween != nil {
		return true
	}
	for i := range v.scales {
		if v.scales[i].tween != nil {
			return true
		}
	}
	return false
}

// Scale returns the current scale of item i.
func (v *TrackView) Scale(i int) float64 {
	v.syncScales()
	if i < 0 || i >= len(v.scales) {
		return 1
	}
	return v.scales[i].value
}

// SetHighlight scales item index up to ScaleRate when on is true and every
// other item back to 1, animating over duration.
func (v *TrackView) SetHighlight(index int, on bool, duration time.Duration) {
	v.syncScales()
	for i := range v.scales {
		to := 1.0
		if on && i == index {
			to = v.ScaleRate
		}
		v.scales[i].animateTo(to, duration, v.easeFunc())
	}
}

// Update advances every tween by dt seconds.
func (v *TrackView) Update(dt float32) {
	v.translate.update(dt)
	for i := range v.scales {
		v.scales[i].update(dt)
	}
}

// Draw renders the items visible in the viewport using the start offsets in
// layout. Items are vertically centred in the viewport.
func (v *TrackView) Draw(screen *ebiten.Image, layout gallery.Layout) {
	v.syncScales()
	vp := v.Viewport
	clip := image.Rect(int(vp.X), int(vp.Y), int(vp.X+vp.Width), int(vp.Y+vp.Height))
	dst, ok := screen.SubImage(clip).(*ebiten.Image)
	if !ok {
		return
	}

	cy := vp.Y + vp.Height/2
	n := min(len(v.Items), layout.Len())
	for i := 0; i < n; i++ {
		it := v.Items[i]
		s := v.scales[i].value
		left := vp.X + v.translate.value + layout.Items[i].StartOffset
		cx := left + it.Width/2
		w, h := it.Width*s, it.Height*s
		if cx+w/2 < vp.X || cx-w/2 > vp.X+vp.Width {
			continue
		}
		vector.DrawFilledRect(dst, float32(cx-w/2), float32(cy-h/2), float32(w), float32(h), it.Color, true)
		if v.Labels && it.Label != "" {
			drawLabel(dst, it.Label, cx, cy, s)
		}
	}
}

func (v *TrackView) easeFunc() ease.TweenFunc {
	if v.Ease == nil {
		return ease.OutCubic
	}
	return v.Ease
}

// syncScales resizes the scale slots when Items changed length.
func (v *TrackView) syncScales() {
	if len(v.scales) == len(v.Items) {
		return
	}
	prev := v.scales
	v.scales = make([]scaledValue, len(v.Items))
	for i := range v.scales {
		if i < len(prev) {
			v.scales[i] = prev[i]
			continue
		}
		v.scales[i] = scaledValue{value: 1, target: 1}
	}
}

const labelSize = 18

var labelSource *text.GoTextFaceSource

// labelFace returns the shared label face, loading Go Regular on first use.
func labelFace(scale float64) *text.GoTextFace {
	if labelSource == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic("ebitenui: load label font: " + err.Error())
		}
		labelSource = src
	}
	return &text.GoTextFace{Source: labelSource, Size: labelSize * scale}
}

func drawLabel(dst *ebiten.Image, label string, cx, cy, scale float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(color.White)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, label, labelFace(scale), op)
}
