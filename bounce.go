package gallery

import (
	"fmt"
	"math"
)

// BounceFunc maps a raw track translate to the translate that is displayed
// while dragging.
type BounceFunc func(offset float64) float64

// NewBounce returns an elastic clamp for translates in [-xMax, xMin]. Inside
// that range offsets pass through unchanged. Past either edge the displayed
// overscroll follows a sigmoid of the raw overscroll and approaches, without
// reaching, strength/2. xMin must be smaller than xMax.
func NewBounce(xMin, xMax, strength float64) (BounceFunc, error) {
	if xMin >= xMax {
		return nil, fmt.Errorf("%w: xMin %g is not below xMax %g", ErrInvalidBounds, xMin, xMax)
	}
	return func(offset float64) float64 {
		switch {
		case offset >= xMin:
			return -(sigmoidHalf(offset) * strength)
		case offset < -xMax:
			return -xMax + sigmoidHalf(-offset-xMax)*strength
		default:
			return offset
		}
	}, nil
}

// sigmoidHalf is a logistic curve shifted to 0 at the origin; it tends to
// -0.5 as x grows.
func sigmoidHalf(x float64) float64 {
	return 1/(1+math.Exp(x/100)) - 0.5
}
