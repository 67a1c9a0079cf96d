// Package renderer draws the demo scene: backdrop, ground grid, landmarks and
// the swipe bounds overlay.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/pinchcam/camera"
	"github.com/pthm-cable/pinchcam/components"
	"github.com/pthm-cable/pinchcam/scene"
)

// Ground grid and landmark palette.
var (
	gridColor    = rl.Color{R: 70, G: 90, B: 110, A: 90}
	axisColor    = rl.Color{R: 140, G: 160, B: 180, A: 160}
	markerColor  = rl.Color{R: 90, G: 160, B: 200, A: 255}
	pillarColor  = rl.Color{R: 220, G: 170, B: 90, A: 255}
	beaconColor  = rl.Color{R: 240, G: 80, B: 90, A: 255}
	hardColor    = rl.Color{R: 110, G: 220, B: 120, A: 255}
	elasticColor = rl.Color{R: 240, G: 150, B: 60, A: 200}
	focusColor   = rl.Color{R: 255, G: 255, B: 255, A: 220}
)

const (
	gridStep      = 10 // World units between grid lines
	overlayLift   = 0.05
	pillarSides   = 10
	beaconRings   = 8
	beaconSlices  = 12
	markerSegment = 1.0 // Thickness of marker discs
)

// BoundsOverlay describes the swipe limits at the camera's current zoom.
type BoundsOverlay struct {
	Hard    camera.Rect // Where the camera settles on release
	Elastic camera.Rect // How far a drag may overshoot
	Focus   mgl32.Vec3  // Where the camera is heading
}

// SceneRenderer draws the 3D scene.
type SceneRenderer struct {
	backdrop *Backdrop

	// Landmarks drawn last frame
	visible int
}

// NewSceneRenderer creates a scene renderer. GPU resources are created on first draw.
func NewSceneRenderer() *SceneRenderer {
	return &SceneRenderer{
		backdrop: NewBackdrop(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()), rl.Color{R: 18, G: 26, B: 36, A: 255}),
	}
}

// Resize propagates a window size change.
func (r *SceneRenderer) Resize(w, h float32) {
	r.backdrop.Resize(w, h)
}

// Draw renders the scene through cam. view mirrors cam and is used for culling.
// hard is the swipe rect at the current zoom. overlay may be nil.
func (r *SceneRenderer) Draw(cam rl.Camera3D, view *camera.Camera, sc *scene.Scene, hard camera.Rect, overlay *BoundsOverlay) {
	r.backdrop.Draw(view, hard)

	rl.BeginMode3D(cam)
	drawGroundGrid(view.VisibleWorldBounds(), sc.Bound())

	r.visible = sc.EachVisible(view, drawLandmark)

	if overlay != nil {
		drawRect(overlay.Elastic, overlayLift, elasticColor)
		drawRect(overlay.Hard, overlayLift*2, hardColor)
		focus := rl.NewVector3(overlay.Focus.X(), overlay.Focus.Y(), overlayLift)
		rl.DrawSphere(focus, 0.4, focusColor)
	}
	rl.EndMode3D()
}

// Visible returns how many landmarks passed culling in the last Draw.
func (r *SceneRenderer) Visible() int { return r.visible }

// Unload frees resources.
func (r *SceneRenderer) Unload() {
	r.backdrop.Unload()
}

func drawLandmark(pos components.Position, lm components.Landmark) {
	base := rl.NewVector3(pos.X, pos.Y, 0)
	switch lm.Kind {
	case components.KindMarker:
		top := rl.NewVector3(pos.X, pos.Y, markerSegment*0.1)
		rl.DrawCylinderEx(base, top, lm.Radius, lm.Radius, pillarSides, shade(markerColor, lm.Shade))
	case components.KindPillar:
		top := rl.NewVector3(pos.X, pos.Y, lm.Height)
		rl.DrawCylinderEx(base, top, lm.Radius, lm.Radius*0.7, pillarSides, shade(pillarColor, lm.Shade))
		rl.DrawCylinderWiresEx(base, top, lm.Radius, lm.Radius*0.7, pillarSides, rl.Fade(rl.Black, 0.3))
	case components.KindBeacon:
		center := rl.NewVector3(pos.X, pos.Y, lm.Radius)
		rl.DrawSphereEx(center, lm.Radius, beaconRings, beaconSlices, beaconColor)
	}
}

// drawGroundGrid draws grid lines over the part of area that is on screen.
func drawGroundGrid(onScreen, area camera.Rect) {
	xMin := max(onScreen.XMin, area.XMin)
	xMax := min(onScreen.XMax, area.XMax)
	yMin := max(onScreen.YMin, area.YMin)
	yMax := min(onScreen.YMax, area.YMax)
	if xMin > xMax || yMin > yMax {
		return
	}

	for x := snap(xMin); x <= xMax; x += gridStep {
		c := gridColor
		if x == 0 {
			c = axisColor
		}
		rl.DrawLine3D(rl.NewVector3(x, yMin, 0), rl.NewVector3(x, yMax, 0), c)
	}
	for y := snap(yMin); y <= yMax; y += gridStep {
		c := gridColor
		if y == 0 {
			c = axisColor
		}
		rl.DrawLine3D(rl.NewVector3(xMin, y, 0), rl.NewVector3(xMax, y, 0), c)
	}
}

// snap rounds v up to the next grid line.
func snap(v float32) float32 {
	n := int(v / gridStep)
	s := float32(n * gridStep)
	if s < v {
		s += gridStep
	}
	return s
}

func drawRect(r camera.Rect, z float32, c rl.Color) {
	a := rl.NewVector3(r.XMin, r.YMin, z)
	b := rl.NewVector3(r.XMax, r.YMin, z)
	d := rl.NewVector3(r.XMax, r.YMax, z)
	e := rl.NewVector3(r.XMin, r.YMax, z)
	rl.DrawLine3D(a, b, c)
	rl.DrawLine3D(b, d, c)
	rl.DrawLine3D(d, e, c)
	rl.DrawLine3D(e, a, c)
}

// shade scales c's brightness by s/255.
func shade(c rl.Color, s uint8) rl.Color {
	f := float32(s) / 255
	return rl.Color{
		R: uint8(float32(c.R) * f),
		G: uint8(float32(c.G) * f),
		B: uint8(float32(c.B) * f),
		A: c.A,
	}
}
