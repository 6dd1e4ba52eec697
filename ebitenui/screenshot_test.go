package ebitenui

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-snap", "after-snap"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#", "special___"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pix := []byte{
		64, 32, 0, 128, // half alpha
		10, 20, 30, 255, // opaque, unchanged
		0, 0, 0, 0, // transparent, unchanged
	}
	unpremultiply(pix)
	want := []byte{127, 63, 0, 128, 10, 20, 30, 255, 0, 0, 0, 0}
	for i := range want {
		if pix[i] != want[i] {
			t.Fatalf("pix = %v, want %v", pix, want)
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 3 || cfg.Height != 2 {
		t.Errorf("size = %dx%d, want 3x2", cfg.Width, cfg.Height)
	}
}

func TestScreenshotQueue(t *testing.T) {
	g := newTestGame(t)
	g.Screenshot("a")
	g.Screenshot("b")
	if len(g.shots) != 2 || g.shots[0] != "a" || g.shots[1] != "b" {
		t.Errorf("queue = %v, want [a b]", g.shots)
	}
}

func TestRunnerScreenshotStep(t *testing.T) {
	r, err := LoadTestScript([]byte(`{"steps": [{"action": "screenshot", "label": "start"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	g := newTestGame(t)
	g.SetTestRunner(r)
	g.tick(frame)
	if len(g.shots) != 1 || g.shots[0] != "start" {
		t.Errorf("queue = %v, want [start]", g.shots)
	}
}
