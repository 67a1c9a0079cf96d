package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera looking straight down the -Z axis at the
// ground plane z = 0. It implements Host, so it can stand in for an engine
// camera in headless runs.
//
// Screen coordinates have their origin at the bottom-left corner with y up,
// the same convention as gesture fingers.
type Camera struct {
	// Position in world units. Z is the height above the ground plane.
	X, Y, Z float32

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Viewport dimensions (screen size in pixels)
	ViewportW, ViewportH float32
}

var _ Host = (*Camera)(nil)

// New creates a camera at pos with the given field of view in degrees.
func New(viewportW, viewportH float32, pos mgl32.Vec3, fov float32) *Camera {
	return &Camera{
		X:         pos.X(),
		Y:         pos.Y(),
		Z:         pos.Z(),
		FOV:       fov,
		ViewportW: viewportW,
		ViewportH: viewportH,
	}
}

// Position implements Host.
func (c *Camera) Position() mgl32.Vec3 { return mgl32.Vec3{c.X, c.Y, c.Z} }

// SetPosition implements Host.
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.X, c.Y, c.Z = pos.X(), pos.Y(), pos.Z()
}

// FieldOfView implements Host.
func (c *Camera) FieldOfView() float32 { return c.FOV }

// SetFieldOfView implements Host.
func (c *Camera) SetFieldOfView(fov float32) { c.FOV = fov }

// halfExtents returns half the visible width and height on the ground plane.
func (c *Camera) halfExtents() (halfW, halfH float32) {
	halfH = c.Z * float32(math.Tan(float64(mgl32.DegToRad(c.FOV))/2))
	if c.ViewportH > 0 {
		halfW = halfH * c.ViewportW / c.ViewportH
	}
	return halfW, halfH
}

// WorldToScreen converts a ground-plane point to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	halfW, halfH := c.halfExtents()
	if halfW == 0 || halfH == 0 {
		return c.ViewportW / 2, c.ViewportH / 2
	}
	sx = c.ViewportW/2 + (wx-c.X)/halfW*c.ViewportW/2
	sy = c.ViewportH/2 + (wy-c.Y)/halfH*c.ViewportH/2
	return sx, sy
}

// ScreenToWorld converts screen coordinates to a ground-plane point.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	halfW, halfH := c.halfExtents()
	wx = c.X + (sx-c.ViewportW/2)/(c.ViewportW/2)*halfW
	wy = c.Y + (sy-c.ViewportH/2)/(c.ViewportH/2)*halfH
	return wx, wy
}

// WorldPerPixel returns how many world units one screen pixel covers on the ground plane.
func (c *Camera) WorldPerPixel() float32 {
	if c.ViewportH == 0 {
		return 0
	}
	_, halfH := c.halfExtents()
	return 2 * halfH / c.ViewportH
}

// IsVisible returns true if a circle at (wx, wy) with given radius
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	halfW, halfH := c.halfExtents()
	return absf(wx-c.X) <= halfW+radius && absf(wy-c.Y) <= halfH+radius
}

// VisibleWorldBounds returns the ground-plane area covered by the viewport.
func (c *Camera) VisibleWorldBounds() Rect {
	halfW, halfH := c.halfExtents()
	return Rect{
		XMin: c.X - halfW,
		XMax: c.X + halfW,
		YMin: c.Y - halfH,
		YMax: c.Y + halfH,
	}
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
