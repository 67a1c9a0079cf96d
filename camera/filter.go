// Package camera turns touch drag and pinch input into smoothed camera
// position and field of view, with elastic bounds that snap back on release.
package camera

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/pinchcam/gesture"
)

// Host is the engine camera the filter drives. It is read once at
// construction and written once per Update.
type Host interface {
	Position() mgl32.Vec3
	SetPosition(pos mgl32.Vec3)
	FieldOfView() float32
	SetFieldOfView(fov float32)
}

// MotionFilter accumulates gesture deltas into a focus pose and eases the
// host camera toward it every frame.
//
// Drag input moves the focus by the finger delta scaled by sensitivity and
// zoom. Pinch input divides the focus field of view by the pinch scale.
// While fingers are down the focus may overshoot the bounds by the elastic
// margins; once all fingers lift it is clamped back to the hard bounds and
// the camera eases there.
type MotionFilter struct {
	host     Host
	source   gesture.Source
	settings Settings
	log      *slog.Logger

	focusPos mgl32.Vec3
	focusFOV float32
	velocity mgl32.Vec2

	currentPos mgl32.Vec3
	currentFOV float32

	interacting bool

	fingerHandle  gesture.Handle
	gestureHandle gesture.Handle
	subscribed    bool
}

// NewMotionFilter creates a filter for host, initialised from the host's
// current pose, and subscribes it to source. Call Close to unsubscribe.
func NewMotionFilter(host Host, source gesture.Source, opts ...Option) (*MotionFilter, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	if source == nil {
		return nil, ErrNilSource
	}

	f := &MotionFilter{
		host:     host,
		source:   source,
		settings: DefaultSettings(),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if err := f.settings.Validate(); err != nil {
		return nil, err
	}

	f.focusPos = host.Position()
	f.focusFOV = host.FieldOfView()
	f.currentPos = f.focusPos
	f.currentFOV = f.focusFOV
	if !finite(f.currentFOV) || f.currentFOV <= 0 {
		return nil, fmt.Errorf("%w: host field of view %v", ErrInvalidSettings, f.currentFOV)
	}
	if !finite(f.currentPos.X()) || !finite(f.currentPos.Y()) || !finite(f.currentPos.Z()) {
		return nil, fmt.Errorf("%w: host position %v", ErrInvalidSettings, f.currentPos)
	}

	f.fingerHandle = source.OnFingerUpdate(f.HandleFingerUpdate)
	f.gestureHandle = source.OnGesture(f.HandleGesture)
	f.subscribed = true

	f.log.Info("camera motion filter ready",
		"fov", f.currentFOV,
		"x", f.currentPos.X(),
		"y", f.currentPos.Y(),
		"hover", f.settings.Hover.String(),
		"pinch_threshold", f.settings.Hover.PinchThreshold(),
	)
	return f, nil
}

// Close removes the filter's gesture subscriptions. It is safe to call more than once.
func (f *MotionFilter) Close() {
	if !f.subscribed {
		return
	}
	f.source.Remove(f.fingerHandle)
	f.source.Remove(f.gestureHandle)
	f.subscribed = false
}

// HandleFingerUpdate drags the focus by one finger's delta. It only acts
// when exactly one finger below the pinch threshold is active; otherwise the
// input belongs to a pinch (or to the hover finger alone).
func (f *MotionFilter) HandleFingerUpdate(finger gesture.Finger) {
	count := f.source.FingerCount()
	threshold := f.settings.Hover.PinchThreshold()
	if count >= threshold || count < threshold-1 {
		return
	}
	f.SetMoveVelocity(finger.ScreenDelta())
}

// HandleGesture zooms by the fingers' pinch scale and pans by their average
// delta. It only acts at or above the pinch threshold.
func (f *MotionFilter) HandleGesture(fingers []gesture.Finger) {
	if f.source.FingerCount() < f.settings.Hover.PinchThreshold() {
		return
	}

	scale := gesture.PinchScale(fingers)
	if scale != 1 && scale > 0 {
		scale = float32(math.Pow(float64(scale), float64(f.settings.PinchSensitivity)))
		f.focusFOV /= scale
		f.settings.PinchRange.Limit(&f.focusFOV, f.settings.PinchBack)
	}

	f.SetMoveVelocity(gesture.ScreenDeltaAverage(fingers))
}

// SetMoveVelocity records delta as the current velocity and moves the focus
// against it, so content follows the finger. The focus stays within the
// swipe bounds plus the swipe elastic margin.
func (f *MotionFilter) SetMoveVelocity(delta mgl32.Vec2) {
	f.velocity = delta
	step := f.settings.SwipeSensitivity * f.zoomSensitivity()
	f.focusPos[0] -= step * delta.X()
	f.focusPos[1] -= step * delta.Y()
	f.settings.SwipeBounds.Limit(&f.focusPos, f.ZoomT(), f.settings.SwipeBack)
}

// Update advances the filter by dt seconds and writes the result to the host.
func (f *MotionFilter) Update(dt float32) {
	interacting := gesture.PressedCount(f.source.Fingers()) > 0
	if !interacting {
		f.settings.SwipeBounds.Limit(&f.focusPos, f.ZoomT(), 0)
		f.settings.PinchRange.Limit(&f.focusFOV, 0)
	}
	if interacting != f.interacting {
		if interacting {
			f.log.Debug("camera interaction started", "fingers", f.source.FingerCount(), "zoom_t", f.ZoomT())
		} else {
			f.log.Debug("camera snap back", "focus_x", f.focusPos.X(), "focus_y", f.focusPos.Y(), "focus_fov", f.focusFOV)
		}
		f.interacting = interacting
	}

	posFactor := DampenFactor(f.settings.SwipeDamping, dt)
	f.currentPos[0] = lerp(f.currentPos[0], f.focusPos[0], posFactor)
	f.currentPos[1] = lerp(f.currentPos[1], f.focusPos[1], posFactor)

	fovFactor := DampenFactor(f.settings.PinchDamping, dt)
	f.currentFOV = lerp(f.currentFOV, f.focusFOV, fovFactor)

	f.host.SetPosition(f.currentPos)
	f.host.SetFieldOfView(f.currentFOV)
}

// Recenter moves focus and camera immediately to pos and fov, clamped to the
// hard bounds, and writes the pose to the host.
func (f *MotionFilter) Recenter(pos mgl32.Vec2, fov float32) {
	f.focusFOV = fov
	f.settings.PinchRange.Limit(&f.focusFOV, 0)
	f.focusPos[0] = pos.X()
	f.focusPos[1] = pos.Y()
	f.settings.SwipeBounds.Limit(&f.focusPos, f.ZoomT(), 0)
	f.velocity = mgl32.Vec2{}

	f.currentPos[0] = f.focusPos[0]
	f.currentPos[1] = f.focusPos[1]
	f.currentFOV = f.focusFOV
	f.host.SetPosition(f.currentPos)
	f.host.SetFieldOfView(f.currentFOV)
}

// ZoomT returns the focus field of view normalised to the pinch range:
// 0 at the minimum, 1 at the maximum. It leaves [0,1] during elastic overshoot.
func (f *MotionFilter) ZoomT() float32 {
	return f.settings.PinchRange.Normalize(f.focusFOV)
}

// zoomSensitivity slows panning as the camera zooms in.
func (f *MotionFilter) zoomSensitivity() float32 {
	return clamp01(f.focusFOV / f.settings.PinchRange.Max)
}

// Position returns the smoothed camera position.
func (f *MotionFilter) Position() mgl32.Vec3 { return f.currentPos }

// FieldOfView returns the smoothed field of view.
func (f *MotionFilter) FieldOfView() float32 { return f.currentFOV }

// Focus returns the target position.
func (f *MotionFilter) Focus() mgl32.Vec3 { return f.focusPos }

// FocusFOV returns the target field of view.
func (f *MotionFilter) FocusFOV() float32 { return f.focusFOV }

// Velocity returns the last gesture delta applied.
func (f *MotionFilter) Velocity() mgl32.Vec2 { return f.velocity }

// Interacting reports whether any finger was pressed at the last Update.
// A hover finger alone does not count.
func (f *MotionFilter) Interacting() bool { return f.interacting }

// Settings returns the filter's tuning.
func (f *MotionFilter) Settings() Settings { return f.settings }

// HardBounds returns the swipe rect at the current focus zoom, without elastic margin.
func (f *MotionFilter) HardBounds() Rect {
	return f.settings.SwipeBounds.At(f.ZoomT())
}
