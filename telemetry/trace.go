package telemetry

import "github.com/pthm-cable/pinchcam/camera"

// FrameSample is one row of the per-frame camera trace.
type FrameSample struct {
	Frame       int64   `csv:"frame"`
	Time        float64 `csv:"time"`
	Fingers     int     `csv:"fingers"`
	X           float32 `csv:"x"`
	Y           float32 `csv:"y"`
	FocusX      float32 `csv:"focus_x"`
	FocusY      float32 `csv:"focus_y"`
	FOV         float32 `csv:"fov"`
	FocusFOV    float32 `csv:"focus_fov"`
	ZoomT       float32 `csv:"zoom_t"`
	Interacting bool    `csv:"interacting"`
}

// Sample captures the filter state after its Update for the given frame.
// elapsed is the total simulated time in seconds up to and including the frame.
func Sample(frame int64, elapsed float64, fingers int, f *camera.MotionFilter) FrameSample {
	pos := f.Position()
	focus := f.Focus()
	return FrameSample{
		Frame:       frame,
		Time:        elapsed,
		Fingers:     fingers,
		X:           pos.X(),
		Y:           pos.Y(),
		FocusX:      focus.X(),
		FocusY:      focus.Y(),
		FOV:         f.FieldOfView(),
		FocusFOV:    f.FocusFOV(),
		ZoomT:       f.ZoomT(),
		Interacting: f.Interacting(),
	}
}
