package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/pinchcam/config"
	"github.com/pthm-cable/pinchcam/gesture"
)

// Finger IDs used by mouse emulation. Real touch IDs come from raylib.
const (
	mouseFingerID  = 1000
	mirrorFingerID = 1001
)

// touchBackend feeds raylib touch and mouse state into a gesture tracker.
// Positions are converted to y-up screen coordinates.
type touchBackend struct {
	tracker        *gesture.Tracker
	recorder       *gesture.Recorder // nil unless recording
	hover          gesture.HoverMode
	mouseEmulation bool
}

func newTouchBackend(t *gesture.Tracker, cfg config.InputConfig) *touchBackend {
	return &touchBackend{
		tracker:        t,
		hover:          cfg.Hover,
		mouseEmulation: cfg.MouseEmulation,
	}
}

// Poll reports this frame's pointers to the tracker and dispatches gestures.
//
// With mouse emulation on, a held left button is one finger and holding ctrl
// adds a second finger mirrored through the screen center, so dragging away
// from the center zooms out and toward it zooms in.
func (b *touchBackend) Poll(dt, screenH float32) {
	b.tracker.BeginFrame(dt)

	if b.mouseEmulation && rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		b.pollMouse(screenH)
	} else {
		b.pollTouch(screenH)
	}

	if b.hover == gesture.HoverEnabled {
		pos := toScreen(rl.GetMousePosition(), screenH)
		b.tracker.Hover(pos)
		if b.recorder != nil {
			b.recorder.Hover(pos)
		}
	}

	b.tracker.EndFrame()
	if b.recorder != nil {
		b.recorder.EndFrame()
	}
}

// touch reports a pressed pointer to the tracker and the recorder.
func (b *touchBackend) touch(id int, pos mgl32.Vec2) {
	b.tracker.Touch(id, pos)
	if b.recorder != nil {
		b.recorder.Touch(id, pos)
	}
}

func (b *touchBackend) pollTouch(screenH float32) {
	n := rl.GetTouchPointCount()
	for i := int32(0); i < n; i++ {
		id := int(rl.GetTouchPointId(i))
		b.touch(id, toScreen(rl.GetTouchPosition(i), screenH))
	}
}

func (b *touchBackend) pollMouse(screenH float32) {
	pos := toScreen(rl.GetMousePosition(), screenH)
	b.touch(mouseFingerID, pos)

	if rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) {
		center := mgl32.Vec2{float32(rl.GetScreenWidth()) / 2, screenH / 2}
		b.touch(mirrorFingerID, mirror(pos, center))
	}
}

// toScreen converts a raylib window position (origin top-left) to y-up screen space.
func toScreen(p rl.Vector2, screenH float32) mgl32.Vec2 {
	return mgl32.Vec2{p.X, screenH - p.Y}
}

// mirror reflects p through center.
func mirror(p, center mgl32.Vec2) mgl32.Vec2 {
	return center.Mul(2).Sub(p)
}
