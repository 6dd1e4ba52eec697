package gallery

import "errors"

var (
	// ErrInvalidBounds reports a bounce profile whose lower bound is not below
	// its upper bound, which happens when the gallery has no scrollable width
	// (zero or one item).
	ErrInvalidBounds = errors.New("gallery: invalid bounce bounds")

	// ErrIndexOutOfRange reports an item index outside [0, itemCount).
	ErrIndexOutOfRange = errors.New("gallery: item index out of range")

	// ErrInvalidConfig reports a configuration value that cannot be used.
	ErrInvalidConfig = errors.New("gallery: invalid config")
)
