package gesture

import "fmt"

// HoverMode says whether the input backend reports a hover finger. A hover
// finger counts toward FingerCount, so it shifts the count at which a
// gesture becomes a pinch.
type HoverMode int

const (
	HoverDisabled HoverMode = iota
	HoverEnabled
)

// PinchThreshold returns the finger count at which input is treated as a
// pinch. One less than the threshold is a single-finger drag.
func (m HoverMode) PinchThreshold() int {
	if m == HoverEnabled {
		return 3
	}
	return 2
}

func (m HoverMode) String() string {
	switch m {
	case HoverDisabled:
		return "disabled"
	case HoverEnabled:
		return "enabled"
	default:
		return fmt.Sprintf("HoverMode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m HoverMode) MarshalText() ([]byte, error) {
	switch m {
	case HoverDisabled, HoverEnabled:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("unknown hover mode %d", int(m))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *HoverMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "disabled", "":
		*m = HoverDisabled
	case "enabled":
		*m = HoverEnabled
	default:
		return fmt.Errorf("unknown hover mode %q (want \"disabled\" or \"enabled\")", text)
	}
	return nil
}
