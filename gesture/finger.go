// Package gesture tracks touch fingers across frames and reports them to
// subscribers as per-finger updates and whole-hand gestures.
package gesture

import "github.com/go-gl/mathgl/mgl32"

// HoverFingerID identifies the hover finger (a pointer that is tracked but not pressed).
const HoverFingerID = -1

// Finger is one tracked pointer. Positions are in screen pixels.
type Finger struct {
	ID int

	ScreenPosition      mgl32.Vec2
	LastScreenPosition  mgl32.Vec2
	StartScreenPosition mgl32.Vec2

	// Down is true while the finger is pressed; the hover finger is never down.
	Down  bool
	Hover bool

	// Age is the time in seconds since the finger first appeared.
	Age float32
}

// ScreenDelta returns the movement since the previous frame.
func (f Finger) ScreenDelta() mgl32.Vec2 {
	return f.ScreenPosition.Sub(f.LastScreenPosition)
}

// ScreenCenter returns the mean current position of fingers.
func ScreenCenter(fingers []Finger) mgl32.Vec2 {
	var c mgl32.Vec2
	if len(fingers) == 0 {
		return c
	}
	for _, f := range fingers {
		c = c.Add(f.ScreenPosition)
	}
	return c.Mul(1 / float32(len(fingers)))
}

// LastScreenCenter returns the mean previous-frame position of fingers.
func LastScreenCenter(fingers []Finger) mgl32.Vec2 {
	var c mgl32.Vec2
	if len(fingers) == 0 {
		return c
	}
	for _, f := range fingers {
		c = c.Add(f.LastScreenPosition)
	}
	return c.Mul(1 / float32(len(fingers)))
}

// ScreenDistance returns the mean distance of the fingers' current positions to center.
func ScreenDistance(fingers []Finger, center mgl32.Vec2) float32 {
	if len(fingers) == 0 {
		return 0
	}
	var total float32
	for _, f := range fingers {
		total += f.ScreenPosition.Sub(center).Len()
	}
	return total / float32(len(fingers))
}

// LastScreenDistance returns the mean distance of the fingers' previous positions to center.
func LastScreenDistance(fingers []Finger, center mgl32.Vec2) float32 {
	if len(fingers) == 0 {
		return 0
	}
	var total float32
	for _, f := range fingers {
		total += f.LastScreenPosition.Sub(center).Len()
	}
	return total / float32(len(fingers))
}

// PinchScale returns how much the fingers spread apart since the last frame.
// Values above 1 mean the fingers moved apart. It returns 1 when the ratio is
// undefined, e.g. for a single finger.
func PinchScale(fingers []Finger) float32 {
	if len(fingers) == 0 {
		return 1
	}
	distance := ScreenDistance(fingers, ScreenCenter(fingers))
	lastDistance := LastScreenDistance(fingers, LastScreenCenter(fingers))
	if lastDistance <= 0 {
		return 1
	}
	return distance / lastDistance
}

// ScreenDeltaSum returns the sum of all finger deltas.
func ScreenDeltaSum(fingers []Finger) mgl32.Vec2 {
	var sum mgl32.Vec2
	for _, f := range fingers {
		sum = sum.Add(f.ScreenDelta())
	}
	return sum
}

// ScreenDeltaAverage returns the mean finger delta, or zero for no fingers.
func ScreenDeltaAverage(fingers []Finger) mgl32.Vec2 {
	if len(fingers) == 0 {
		return mgl32.Vec2{}
	}
	return ScreenDeltaSum(fingers).Mul(1 / float32(len(fingers)))
}

// PressedCount returns how many fingers are down.
func PressedCount(fingers []Finger) int {
	n := 0
	for _, f := range fingers {
		if f.Down {
			n++
		}
	}
	return n
}
