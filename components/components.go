// Package components defines ECS components for the demo scene.
package components

// LandmarkKind selects how a landmark is drawn.
type LandmarkKind uint8

const (
	KindMarker LandmarkKind = iota // Flat disc on the ground
	KindPillar                     // Upright cylinder
	KindBeacon                     // Sphere, marks the world origin and swipe corners
)

// String returns the display name for a LandmarkKind.
func (k LandmarkKind) String() string {
	switch k {
	case KindMarker:
		return "marker"
	case KindPillar:
		return "pillar"
	case KindBeacon:
		return "beacon"
	}
	return "unknown"
}

// Position represents an entity's position on the ground plane.
type Position struct {
	X, Y float32
}

// Landmark is a static scene object that gives the camera motion something to read against.
type Landmark struct {
	Kind   LandmarkKind
	Radius float32
	Height float32 // Pillars only
	Shade  uint8   // Brightness variation, 0..255
}
