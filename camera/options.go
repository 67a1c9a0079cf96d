package camera

import (
	"log/slog"

	"github.com/pthm-cable/pinchcam/gesture"
)

// Option configures a MotionFilter.
type Option func(*MotionFilter)

// WithSettings replaces the whole tuning.
func WithSettings(s Settings) Option {
	return func(f *MotionFilter) {
		f.settings = s
	}
}

// WithSwipeBounds sets the pannable area at minimum and maximum field of view.
func WithSwipeBounds(b SwipeBounds) Option {
	return func(f *MotionFilter) {
		f.settings.SwipeBounds = b
	}
}

// WithSwipe sets drag sensitivity, elastic overshoot and damping rate.
func WithSwipe(sensitivity, back, damping float32) Option {
	return func(f *MotionFilter) {
		f.settings.SwipeSensitivity = sensitivity
		f.settings.SwipeBack = back
		f.settings.SwipeDamping = damping
	}
}

// WithPinchRange sets the field of view bounds.
func WithPinchRange(r ScalarRange) Option {
	return func(f *MotionFilter) {
		f.settings.PinchRange = r
	}
}

// WithPinch sets pinch sensitivity exponent, elastic overshoot and damping rate.
func WithPinch(sensitivity, back, damping float32) Option {
	return func(f *MotionFilter) {
		f.settings.PinchSensitivity = sensitivity
		f.settings.PinchBack = back
		f.settings.PinchDamping = damping
	}
}

// WithHoverMode tells the filter whether the gesture source counts a hover finger.
func WithHoverMode(m gesture.HoverMode) Option {
	return func(f *MotionFilter) {
		f.settings.Hover = m
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(f *MotionFilter) {
		if l != nil {
			f.log = l
		}
	}
}
