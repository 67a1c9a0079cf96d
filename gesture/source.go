package gesture

// Handle identifies a registered callback so it can be removed later.
type Handle uint32

// Source delivers finger input to subscribers once per frame.
type Source interface {
	// FingerCount returns the number of active fingers, including the hover
	// finger when the backend reports one.
	FingerCount() int

	// Fingers returns a copy of the active fingers. The hover finger, if
	// any, comes last.
	Fingers() []Finger

	// OnFingerUpdate registers fn to be called for every pressed finger each frame.
	OnFingerUpdate(fn func(Finger)) Handle

	// OnGesture registers fn to be called once per frame with all pressed
	// fingers, on frames where at least one finger is pressed.
	OnGesture(fn func([]Finger)) Handle

	// Remove deregisters a callback. Unknown handles are ignored.
	Remove(h Handle)
}
