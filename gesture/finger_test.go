package gesture

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func finger(id int, last, cur mgl32.Vec2) Finger {
	return Finger{ID: id, Down: true, LastScreenPosition: last, ScreenPosition: cur}
}

func TestPinchScale(t *testing.T) {
	cases := []struct {
		name    string
		fingers []Finger
		want    float32
	}{
		{"none", nil, 1},
		{"single finger", []Finger{finger(0, mgl32.Vec2{0, 0}, mgl32.Vec2{5, 5})}, 1},
		{"spread", []Finger{
			finger(0, mgl32.Vec2{-5, 0}, mgl32.Vec2{-10, 0}),
			finger(1, mgl32.Vec2{5, 0}, mgl32.Vec2{10, 0}),
		}, 2},
		{"squeeze", []Finger{
			finger(0, mgl32.Vec2{0, -20}, mgl32.Vec2{0, -5}),
			finger(1, mgl32.Vec2{0, 20}, mgl32.Vec2{0, 5}),
		}, 0.25},
		{"translate only", []Finger{
			finger(0, mgl32.Vec2{0, 0}, mgl32.Vec2{30, 30}),
			finger(1, mgl32.Vec2{10, 0}, mgl32.Vec2{40, 30}),
		}, 1},
		{"new fingers", []Finger{
			finger(0, mgl32.Vec2{3, 3}, mgl32.Vec2{3, 3}),
			finger(1, mgl32.Vec2{3, 3}, mgl32.Vec2{9, 3}),
		}, 1},
	}
	for _, tc := range cases {
		got := PinchScale(tc.fingers)
		if math.Abs(float64(got-tc.want)) > 1e-5 {
			t.Errorf("%s: PinchScale = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestScreenCenterAndDistance(t *testing.T) {
	fingers := []Finger{
		finger(0, mgl32.Vec2{0, 0}, mgl32.Vec2{0, 0}),
		finger(1, mgl32.Vec2{0, 0}, mgl32.Vec2{4, 0}),
		finger(2, mgl32.Vec2{0, 0}, mgl32.Vec2{2, 6}),
	}
	c := ScreenCenter(fingers)
	if c != (mgl32.Vec2{2, 2}) {
		t.Errorf("expected center (2, 2), got %v", c)
	}
	if LastScreenCenter(fingers) != (mgl32.Vec2{}) {
		t.Errorf("expected last center at origin, got %v", LastScreenCenter(fingers))
	}
	if d := LastScreenDistance(fingers, mgl32.Vec2{}); d != 0 {
		t.Errorf("expected last distance 0, got %v", d)
	}
	if d := ScreenDistance(nil, c); d != 0 {
		t.Errorf("expected 0 for no fingers, got %v", d)
	}
}

func TestScreenDeltaAverage(t *testing.T) {
	fingers := []Finger{
		finger(0, mgl32.Vec2{0, 0}, mgl32.Vec2{10, 0}),
		finger(1, mgl32.Vec2{0, 0}, mgl32.Vec2{0, 20}),
	}
	if got := ScreenDeltaSum(fingers); got != (mgl32.Vec2{10, 20}) {
		t.Errorf("expected sum (10, 20), got %v", got)
	}
	if got := ScreenDeltaAverage(fingers); got != (mgl32.Vec2{5, 10}) {
		t.Errorf("expected average (5, 10), got %v", got)
	}
	if got := ScreenDeltaAverage(nil); got != (mgl32.Vec2{}) {
		t.Errorf("expected zero for no fingers, got %v", got)
	}
}

func TestPressedCount(t *testing.T) {
	fingers := []Finger{{ID: 0, Down: true}, {ID: HoverFingerID, Hover: true}, {ID: 1, Down: true}}
	if n := PressedCount(fingers); n != 2 {
		t.Errorf("expected 2 pressed, got %d", n)
	}
}
