package gallery

import (
	"errors"
	"math"
	"testing"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNewBounce_InvalidBounds(t *testing.T) {
	tests := []struct {
		name       string
		xMin, xMax float64
	}{
		{"equal", 0, 0},
		{"inverted", 10, 5},
		{"negative max", 0, -100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := NewBounce(tt.xMin, tt.xMax, 100)
			if !errors.Is(err, ErrInvalidBounds) {
				t.Fatalf("NewBounce(%v, %v) error = %v, want ErrInvalidBounds", tt.xMin, tt.xMax, err)
			}
			if fn != nil {
				t.Error("expected nil function on error")
			}
		})
	}
}

func TestBounce_IdentityInsideBounds(t *testing.T) {
	bounce, err := NewBounce(0, 500, 100)
	if err != nil {
		t.Fatal(err)
	}
	for _, offset := range []float64{-500, -499.5, -250, -1, -0.001, 0} {
		if got := bounce(offset); got != offset {
			t.Errorf("bounce(%v) = %v, want identity", offset, got)
		}
	}
}

func TestBounce_StartEdgeIsBounded(t *testing.T) {
	const strength = 100
	bounce, err := NewBounce(0, 500, strength)
	if err != nil {
		t.Fatal(err)
	}
	prev := bounce(0)
	for offset := 1.0; offset <= 5000; offset += 7 {
		got := bounce(offset)
		if got < prev {
			t.Fatalf("bounce(%v) = %v decreased from %v", offset, got, prev)
		}
		if math.Abs(got) > strength/2 {
			t.Fatalf("bounce(%v) = %v, want |v| <= %v", offset, got, strength/2.0)
		}
		if got > offset {
			t.Fatalf("bounce(%v) = %v exceeds the raw offset", offset, got)
		}
		prev = got
	}
	if !approxEqual(bounce(300), 45.257, 0.01) {
		t.Errorf("bounce(300) = %v, want ~45.257", bounce(300))
	}
}

func TestBounce_EndEdgeIsBounded(t *testing.T) {
	const strength, xMax = 100, 500
	bounce, err := NewBounce(0, xMax, strength)
	if err != nil {
		t.Fatal(err)
	}
	prev := bounce(-xMax)
	for offset := -xMax - 1.0; offset >= -6000; offset -= 11 {
		got := bounce(offset)
		if got > prev {
			t.Fatalf("bounce(%v) = %v increased from %v", offset, got, prev)
		}
		over := -got - xMax
		if over < 0 || over > strength/2 {
			t.Fatalf("bounce(%v) = %v, overscroll %v outside [0, %v]", offset, got, over, strength/2.0)
		}
		prev = got
	}
	if !approxEqual(bounce(-xMax-0.0001), -xMax, 0.001) {
		t.Errorf("bounce just past the end edge = %v, want ~%v", bounce(-xMax-0.0001), -xMax)
	}
}
