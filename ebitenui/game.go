package ebitenui

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/gallery"
)

// Background is the colour the screen is cleared to.
var Background = color.RGBA{R: 0x1e, G: 0x1f, B: 0x24, A: 0xff}

// Game is an ebiten.Game that hosts one gallery filling the window.
type Game struct {
	Gallery *gallery.Gallery
	View    *TrackView
	Input   *Input

	// ShowStats draws frame rates and gallery state in the top-left corner.
	ShowStats bool
	// ScreenshotDir receives Screenshot captures. Defaults to
	// DefaultScreenshotDir.
	ScreenshotDir string

	cfg    gallery.Config
	runner *TestRunner
	width  int
	height int
	stats  statsOverlay
	shots  []string
}

// NewGame builds a gallery of items inside a width x height window.
func NewGame(items []Item, width, height int, cfg gallery.Config) (*Game, error) {
	bounds := gallery.Rect{Width: float64(width), Height: float64(height)}
	view := NewTrackView(items, bounds, cfg.ScaleRate)
	surface := gallery.NewSurface(nil, bounds)

	g, err := gallery.New(surface, view, view, cfg)
	if err != nil {
		return nil, fmt.Errorf("ebitenui: new game: %w", err)
	}
	return &Game{
		Gallery: g,
		View:    view,
		Input:   NewInput(surface),
		cfg:     cfg,
		width:   width,
		height:  height,
	}, nil
}

// SetTestRunner attaches a scripted input runner. It steps once per Update
// before input is polled.
func (g *Game) SetTestRunner(r *TestRunner) {
	g.runner = r
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.tick(tickDuration(ebiten.TPS(), ebiten.ActualTPS()))
	return nil
}

// tickDuration returns the time one Update represents. With ebiten.SyncWithFPS
// the configured TPS is negative, so the measured rate is used, falling back
// to DefaultTPS before it is known.
func tickDuration(tps int, actual float64) time.Duration {
	switch {
	case tps > 0:
		return time.Second / time.Duration(tps)
	case actual > 0:
		return time.Duration(float64(time.Second) / actual)
	default:
		return time.Second / ebiten.DefaultTPS
	}
}

func (g *Game) tick(dt time.Duration) {
	if g.runner != nil {
		g.runner.step(g)
	}
	g.Input.Update()
	if err := g.Gallery.Update(dt); err != nil {
		// The previous layout stays in effect.
		fmt.Fprintf(os.Stderr, "[gallery] %v\n", err)
	}
	index, on := g.Gallery.Highlighted()
	g.View.SetHighlight(index, on, g.cfg.TransitionDuration)
	g.View.Update(float32(dt.Seconds()))
	if g.ShowStats {
		g.stats.update(dt.Seconds(), g.Gallery)
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(Background)
	g.View.Draw(screen, g.Gallery.Layout())
	if g.ShowStats {
		g.stats.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. A window size change resizes the viewport
// and schedules a debounced layout recompute.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) resize(width, height int) {
	g.width, g.height = width, height
	bounds := gallery.Rect{Width: float64(width), Height: float64(height)}
	g.View.Viewport = bounds
	g.Input.surface.Bounds = bounds
	g.Gallery.NotifyResize()
}

// RunConfig configures Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	Items  []Item
	Config gallery.Config
	// ShowFPS enables the stats overlay.
	ShowFPS bool
	// Debug logs gallery state changes to stderr.
	Debug bool
	// Script, when set, is a JSON test script driving input. The game exits
	// once it completes.
	Script []byte
}

// Run opens a resizable window and runs the gallery until it is closed.
func Run(cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 320
	}
	g, err := NewGame(cfg.Items, cfg.Width, cfg.Height, cfg.Config)
	if err != nil {
		return err
	}
	defer g.Gallery.Dispose()
	g.Gallery.SetDebugMode(cfg.Debug)
	g.ShowStats = cfg.ShowFPS

	if cfg.Script != nil {
		r, err := LoadTestScript(cfg.Script)
		if err != nil {
			return err
		}
		g.SetTestRunner(r)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(&scriptedGame{Game: g})
}

// scriptedGame ends the run loop when an attached script finishes.
type scriptedGame struct {
	*Game
}

func (s *scriptedGame) Update() error {
	if err := s.Game.Update(); err != nil {
		return err
	}
	if s.runner != nil && s.runner.Done() {
		if err := s.runner.Err(); err != nil {
			return err
		}
		return ebiten.Termination
	}
	return nil
}
