package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// raylibHost drives a raylib Camera3D looking straight down at the ground plane.
type raylibHost struct {
	cam rl.Camera3D
}

func newRaylibHost(pos mgl32.Vec3, fov float32) *raylibHost {
	h := &raylibHost{cam: rl.Camera3D{
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       fov,
		Projection: rl.CameraPerspective,
	}}
	h.SetPosition(pos)
	return h
}

func (h *raylibHost) Position() mgl32.Vec3 {
	p := h.cam.Position
	return mgl32.Vec3{p.X, p.Y, p.Z}
}

// SetPosition moves the camera and keeps it aimed straight down.
func (h *raylibHost) SetPosition(pos mgl32.Vec3) {
	h.cam.Position = rl.NewVector3(pos.X(), pos.Y(), pos.Z())
	h.cam.Target = rl.NewVector3(pos.X(), pos.Y(), 0)
}

func (h *raylibHost) FieldOfView() float32 { return h.cam.Fovy }

func (h *raylibHost) SetFieldOfView(fov float32) { h.cam.Fovy = fov }

// Camera3D returns the camera for BeginMode3D.
func (h *raylibHost) Camera3D() rl.Camera3D { return h.cam }
