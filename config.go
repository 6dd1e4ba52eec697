package gallery

import (
	"fmt"
	"time"

	"github.com/tidwall/gjson"
)

// Default configuration values.
const (
	DefaultGap                = 120.0
	DefaultActivationOffset   = 100.0
	DefaultBounceRate         = 100.0
	DefaultTransitionDuration = 200 * time.Millisecond
	DefaultScaleRate          = 1.2
	DefaultResizeDebounce     = 16 * time.Millisecond
	DefaultDragThreshold      = 5.0 // pixels of horizontal movement
)

// Alignment places the activated item inside the viewport: either centred or
// at a fixed pixel offset from the viewport's leading edge.
type Alignment struct {
	Center bool
	Offset float64
}

// AlignCenter centres the activated item in the viewport.
func AlignCenter() Alignment {
	return Alignment{Center: true}
}

// AlignOffset places the activated item's leading edge px pixels from the
// viewport's leading edge.
func AlignOffset(px float64) Alignment {
	return Alignment{Offset: px}
}

// String returns "center" or the pixel offset.
func (a Alignment) String() string {
	if a.Center {
		return "center"
	}
	return fmt.Sprintf("%gpx", a.Offset)
}

// TrackerConfig configures a GestureTracker.
type TrackerConfig struct {
	// DragThreshold is the horizontal distance from the pointer-down position
	// that must be exceeded before a drag is recognized. It must be positive;
	// set ImmediateDrag to recognize the drag on pointer-down instead.
	DragThreshold float64
	// ImmediateDrag recognizes the drag on pointer-down, ignoring
	// DragThreshold.
	ImmediateDrag bool
	// PassiveListeners reports whether the host honours passive listener
	// registrations. Probe it once at startup.
	PassiveListeners bool
}

// Config configures a Gallery.
type Config struct {
	// Gap is the horizontal space between two items.
	Gap float64
	// Alignment places the activated item in the viewport.
	Alignment Alignment
	// BounceRate is the strength of the elastic resistance past the edges.
	// The overscroll never exceeds half of it.
	BounceRate float64
	// TransitionDuration is how long a snap takes.
	TransitionDuration time.Duration
	// ScaleRate is the scale applied to the activated item by renderers.
	ScaleRate float64
	// ResizeDebounce is the quiet time after NotifyResize before the layout is
	// recomputed.
	ResizeDebounce time.Duration
	// Tracker configures gesture recognition.
	Tracker TrackerConfig
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Gap:                DefaultGap,
		Alignment:          AlignOffset(DefaultActivationOffset),
		BounceRate:         DefaultBounceRate,
		TransitionDuration: DefaultTransitionDuration,
		ScaleRate:          DefaultScaleRate,
		ResizeDebounce:     DefaultResizeDebounce,
		Tracker: TrackerConfig{
			DragThreshold:    DefaultDragThreshold,
			PassiveListeners: true,
		},
	}
}

// Validate reports the first unusable value as an ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Gap < 0:
		return fmt.Errorf("%w: gap %g is negative", ErrInvalidConfig, c.Gap)
	case c.BounceRate < 0:
		return fmt.Errorf("%w: bounce rate %g is negative", ErrInvalidConfig, c.BounceRate)
	case c.TransitionDuration < 0:
		return fmt.Errorf("%w: transition duration %v is negative", ErrInvalidConfig, c.TransitionDuration)
	case c.ResizeDebounce < 0:
		return fmt.Errorf("%w: resize debounce %v is negative", ErrInvalidConfig, c.ResizeDebounce)
	case c.ScaleRate <= 0:
		return fmt.Errorf("%w: scale rate %g must be positive", ErrInvalidConfig, c.ScaleRate)
	case c.Tracker.DragThreshold <= 0:
		return fmt.Errorf("%w: drag threshold %g must be positive (use immediate drag to start on press)", ErrInvalidConfig, c.Tracker.DragThreshold)
	}
	return nil
}

// LoadConfig parses a JSON configuration. Missing keys keep their defaults.
//
//	{
//	  "gap": 80,
//	  "activationAlignment": "center",   // or a pixel offset: 100
//	  "bounceRate": 100,
//	  "transitionDuration": 250,          // milliseconds, or "250ms"
//	  "scaleRate": 1.2,
//	  "resizeDebounce": "16ms",
//	  "dragThreshold": 5,
//	  "immediateDrag": false,
//	  "passiveListeners": true
//	}
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if !gjson.ValidBytes(data) {
		return cfg, fmt.Errorf("%w: malformed JSON", ErrInvalidConfig)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return cfg, fmt.Errorf("%w: top level must be an object", ErrInvalidConfig)
	}

	numbers := []struct {
		key string
		dst *float64
	}{
		{"gap", &cfg.Gap},
		{"bounceRate", &cfg.BounceRate},
		{"scaleRate", &cfg.ScaleRate},
		{"dragThreshold", &cfg.Tracker.DragThreshold},
	}
	for _, f := range numbers {
		if v := root.Get(f.key); v.Exists() {
			if v.Type != gjson.Number {
				return cfg, fmt.Errorf("%w: %s %s is not a number", ErrInvalidConfig, f.key, v.Raw)
			}
			*f.dst = v.Float()
		}
	}

	flags := []struct {
		key string
		dst *bool
	}{
		{"immediateDrag", &cfg.Tracker.ImmediateDrag},
		{"passiveListeners", &cfg.Tracker.PassiveListeners},
	}
	for _, f := range flags {
		if v := root.Get(f.key); v.Exists() {
			if v.Type != gjson.True && v.Type != gjson.False {
				return cfg, fmt.Errorf("%w: %s %s is not a boolean", ErrInvalidConfig, f.key, v.Raw)
			}
			*f.dst = v.Bool()
		}
	}

	if v := root.Get("activationAlignment"); v.Exists() {
		a, err := parseAlignment(v)
		if err != nil {
			return cfg, err
		}
		cfg.Alignment = a
	}
	if v := root.Get("transitionDuration"); v.Exists() {
		d, err := parseDuration("transitionDuration", v)
		if err != nil {
			return cfg, err
		}
		cfg.TransitionDuration = d
	}
	if v := root.Get("resizeDebounce"); v.Exists() {
		d, err := parseDuration("resizeDebounce", v)
		if err != nil {
			return cfg, err
		}
		cfg.ResizeDebounce = d
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func parseAlignment(v gjson.Result) (Alignment, error) {
	switch v.Type {
	case gjson.Number:
		return AlignOffset(v.Float()), nil
	case gjson.String:
		if v.Str == "center" {
			return AlignCenter(), nil
		}
	}
	return Alignment{}, fmt.Errorf("%w: activationAlignment %s is neither \"center\" nor a number", ErrInvalidConfig, v.Raw)
}

func parseDuration(key string, v gjson.Result) (time.Duration, error) {
	switch v.Type {
	case gjson.Number:
		return time.Duration(v.Float() * float64(time.Millisecond)), nil
	case gjson.String:
		d, err := time.ParseDuration(v.Str)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
		}
		return d, nil
	}
	return 0, fmt.Errorf("%w: %s %s is neither a number nor a duration string", ErrInvalidConfig, key, v.Raw)
}
