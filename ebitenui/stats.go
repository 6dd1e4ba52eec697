package ebitenui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/gallery"
)

const statsInterval = 0.5 // seconds between overlay refreshes

// statsOverlay draws frame rates and gallery state in the top-left corner.
type statsOverlay struct {
	img     *ebiten.Image
	elapsed float64
	text    string
}

func (s *statsOverlay) update(dt float64, g *gallery.Gallery) {
	s.elapsed += dt
	if s.text != "" && s.elapsed < statsInterval {
		return
	}
	s.elapsed = 0
	s.text = statsText(ebiten.ActualFPS(), ebiten.ActualTPS(), g)
}

func statsText(fps, tps float64, g *gallery.Gallery) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nitem %d/%d %s",
		fps, tps, g.ActivatedIndex()+1, g.Layout().Len(), g.State())
}

func (s *statsOverlay) draw(screen *ebiten.Image) {
	if s.img == nil {
		s.img = ebiten.NewImage(140, 48)
	}
	s.img.Fill(color.RGBA{A: 128})
	ebitenutil.DebugPrint(s.img, s.text)
	screen.DrawImage(s.img, nil)
}
