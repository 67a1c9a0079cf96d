package camera

import (
	"errors"
	"math"
	"testing"

	"github.com/pthm-cable/pinchcam/gesture"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
}

func TestSettingsValidate(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	cases := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"equal range", func(s *Settings) { s.PinchRange = ScalarRange{Min: 40, Max: 40} }},
		{"inverted range", func(s *Settings) { s.PinchRange = ScalarRange{Min: 50, Max: 30} }},
		{"back reaches zero", func(s *Settings) { s.PinchBack = 30 }},
		{"inverted min area", func(s *Settings) { s.SwipeBounds.Min.XMin = 100 }},
		{"inverted max area", func(s *Settings) { s.SwipeBounds.Max.YMax = -100 }},
		{"negative swipe back", func(s *Settings) { s.SwipeBack = -1 }},
		{"zero swipe sensitivity", func(s *Settings) { s.SwipeSensitivity = 0 }},
		{"zero pinch sensitivity", func(s *Settings) { s.PinchSensitivity = 0 }},
		{"unknown hover", func(s *Settings) { s.Hover = gesture.HoverMode(7) }},
		{"nan swipe damping", func(s *Settings) { s.SwipeDamping = nan }},
		{"inf pinch damping", func(s *Settings) { s.PinchDamping = inf }},
		{"nan pinch sensitivity", func(s *Settings) { s.PinchSensitivity = nan }},
		{"nan swipe sensitivity", func(s *Settings) { s.SwipeSensitivity = nan }},
		{"nan swipe back", func(s *Settings) { s.SwipeBack = nan }},
		{"inf pinch back", func(s *Settings) { s.PinchBack = inf }},
		{"nan range min", func(s *Settings) { s.PinchRange.Min = nan }},
		{"inf range max", func(s *Settings) { s.PinchRange.Max = inf }},
		{"nan min area", func(s *Settings) { s.SwipeBounds.Min.YMin = nan }},
		{"inf max area", func(s *Settings) { s.SwipeBounds.Max.XMax = inf }},
	}
	for _, tc := range cases {
		s := DefaultSettings()
		tc.mutate(&s)
		if err := s.Validate(); !errors.Is(err, ErrInvalidSettings) {
			t.Errorf("%s: expected ErrInvalidSettings, got %v", tc.name, err)
		}
	}
}
