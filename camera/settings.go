package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/pthm-cable/pinchcam/gesture"
)

var (
	// ErrNilHost is returned when a filter is constructed without a host camera.
	ErrNilHost = errors.New("camera: nil host camera")
	// ErrNilSource is returned when a filter is constructed without a gesture source.
	ErrNilSource = errors.New("camera: nil gesture source")
	// ErrInvalidSettings wraps every settings validation failure.
	ErrInvalidSettings = errors.New("camera: invalid settings")
)

// Settings holds the tuning of a MotionFilter. It is fixed after construction.
type Settings struct {
	// Swipe (drag) behaviour
	SwipeBounds      SwipeBounds
	SwipeSensitivity float32 // world units per screen pixel at full zoom-out
	SwipeBack        float32 // elastic overshoot allowed while dragging
	SwipeDamping     float32 // approach rate per second; negative snaps

	// Pinch (zoom) behaviour
	PinchRange       ScalarRange
	PinchSensitivity float32 // exponent applied to the pinch scale
	PinchBack        float32 // elastic overshoot allowed while pinching
	PinchDamping     float32 // approach rate per second; negative snaps

	Hover gesture.HoverMode
}

// DefaultSettings returns the stock tuning: a 80x60 area at full zoom-out
// narrowing to 40x20 at full zoom-in, and a field of view range of 30..50.
func DefaultSettings() Settings {
	return Settings{
		SwipeBounds: SwipeBounds{
			Min: Rect{XMin: -40, XMax: 40, YMin: -30, YMax: 30},
			Max: Rect{XMin: -20, XMax: 20, YMin: -10, YMax: 10},
		},
		SwipeSensitivity: 0.1,
		SwipeBack:        20,
		SwipeDamping:     10,

		PinchRange:       ScalarRange{Min: 30, Max: 50},
		PinchSensitivity: 1,
		PinchBack:        10,
		PinchDamping:     10,

		Hover: gesture.HoverDisabled,
	}
}

// Validate reports the first problem that would make the filter produce
// NaN or inverted bounds.
func (s Settings) Validate() error {
	for _, v := range s.floats() {
		if !finite(v.value) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidSettings, v.name, v.value)
		}
	}
	if !(s.PinchRange.Max > s.PinchRange.Min) {
		return fmt.Errorf("%w: pinch range max %v must exceed min %v", ErrInvalidSettings, s.PinchRange.Max, s.PinchRange.Min)
	}
	if s.PinchRange.Min <= 0 {
		return fmt.Errorf("%w: pinch range min %v must be positive", ErrInvalidSettings, s.PinchRange.Min)
	}
	if s.PinchRange.Min-s.PinchBack <= 0 {
		return fmt.Errorf("%w: pinch back %v lets the field of view reach zero", ErrInvalidSettings, s.PinchBack)
	}
	areas := []struct {
		name string
		r    Rect
	}{{"min_area", s.SwipeBounds.Min}, {"max_area", s.SwipeBounds.Max}}
	for _, a := range areas {
		if a.r.XMin > a.r.XMax || a.r.YMin > a.r.YMax {
			return fmt.Errorf("%w: swipe %s is inverted: %+v", ErrInvalidSettings, a.name, a.r)
		}
	}
	if s.SwipeBack < 0 {
		return fmt.Errorf("%w: swipe back %v is negative", ErrInvalidSettings, s.SwipeBack)
	}
	if s.PinchBack < 0 {
		return fmt.Errorf("%w: pinch back %v is negative", ErrInvalidSettings, s.PinchBack)
	}
	if s.SwipeSensitivity <= 0 {
		return fmt.Errorf("%w: swipe sensitivity %v must be positive", ErrInvalidSettings, s.SwipeSensitivity)
	}
	if s.PinchSensitivity <= 0 {
		return fmt.Errorf("%w: pinch sensitivity %v must be positive", ErrInvalidSettings, s.PinchSensitivity)
	}
	if s.Hover != gesture.HoverDisabled && s.Hover != gesture.HoverEnabled {
		return fmt.Errorf("%w: unknown hover mode %v", ErrInvalidSettings, s.Hover)
	}
	return nil
}

type namedFloat struct {
	name  string
	value float32
}

// floats lists every float field so Validate can reject NaN and Inf up front.
// The ordered checks that follow are written as comparisons, which NaN passes.
func (s Settings) floats() []namedFloat {
	rect := func(prefix string, r Rect) []namedFloat {
		return []namedFloat{
			{prefix + ".x_min", r.XMin}, {prefix + ".x_max", r.XMax},
			{prefix + ".y_min", r.YMin}, {prefix + ".y_max", r.YMax},
		}
	}
	out := append(rect("swipe min_area", s.SwipeBounds.Min), rect("swipe max_area", s.SwipeBounds.Max)...)
	return append(out,
		namedFloat{"swipe sensitivity", s.SwipeSensitivity},
		namedFloat{"swipe back", s.SwipeBack},
		namedFloat{"swipe damping", s.SwipeDamping},
		namedFloat{"pinch range min", s.PinchRange.Min},
		namedFloat{"pinch range max", s.PinchRange.Max},
		namedFloat{"pinch sensitivity", s.PinchSensitivity},
		namedFloat{"pinch back", s.PinchBack},
		namedFloat{"pinch damping", s.PinchDamping},
	)
}

func finite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}
