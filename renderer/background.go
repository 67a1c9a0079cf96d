package renderer

import (
	_ "embed"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/pinchcam/camera"
)

//go:embed shaders/background.fs
var backdropFS string

// overshootGlowDistance is the overshoot, in world units, at which the edge glow saturates.
const overshootGlowDistance = 10

// Backdrop is the full-screen shader behind the scene. Its dot lattice drifts
// with the camera and its edges glow on the side the camera has been dragged
// past the hard bounds.
type Backdrop struct {
	shader rl.Shader
	loaded bool

	locResolution int32
	locCamera     int32 // vec3: x, y, fov
	locTint       int32
	locOvershoot  int32 // vec2: signed x and y overshoot, 0..1

	size mgl32.Vec2
	tint mgl32.Vec3
}

// NewBackdrop creates a backdrop tinted with tint. The shader is compiled on first draw.
func NewBackdrop(width, height float32, tint rl.Color) *Backdrop {
	return &Backdrop{
		size: mgl32.Vec2{width, height},
		tint: mgl32.Vec3{float32(tint.R) / 255, float32(tint.G) / 255, float32(tint.B) / 255},
	}
}

func (b *Backdrop) load() {
	b.shader = rl.LoadShaderFromMemory("", backdropFS)
	b.locResolution = rl.GetShaderLocation(b.shader, "resolution")
	b.locCamera = rl.GetShaderLocation(b.shader, "cameraPose")
	b.locTint = rl.GetShaderLocation(b.shader, "baseColor")
	b.locOvershoot = rl.GetShaderLocation(b.shader, "overshoot")
	b.loaded = true

	rl.SetShaderValue(b.shader, b.locTint, b.tint[:], rl.ShaderUniformVec3)
	rl.SetShaderValue(b.shader, b.locResolution, b.size[:], rl.ShaderUniformVec2)
}

// Resize updates the viewport the backdrop covers.
func (b *Backdrop) Resize(width, height float32) {
	b.size = mgl32.Vec2{width, height}
	if b.loaded {
		rl.SetShaderValue(b.shader, b.locResolution, b.size[:], rl.ShaderUniformVec2)
	}
}

// Draw fills the viewport for the pose in view. hard is the swipe rect the
// camera settles into.
func (b *Backdrop) Draw(view *camera.Camera, hard camera.Rect) {
	if !b.loaded {
		b.load()
	}
	pose := []float32{view.X, view.Y, view.FOV}
	over := edgeOvershoot(view.X, view.Y, hard)

	rl.BeginShaderMode(b.shader)
	rl.SetShaderValue(b.shader, b.locCamera, pose, rl.ShaderUniformVec3)
	rl.SetShaderValue(b.shader, b.locOvershoot, over[:], rl.ShaderUniformVec2)
	rl.DrawRectangle(0, 0, int32(b.size.X()), int32(b.size.Y()), rl.White)
	rl.EndShaderMode()
}

// Unload frees the shader.
func (b *Backdrop) Unload() {
	if !b.loaded {
		return
	}
	rl.UnloadShader(b.shader)
	b.loaded = false
}

// edgeOvershoot returns how far (x, y) lies past each edge of r, signed by
// side and scaled so overshootGlowDistance maps to 1.
func edgeOvershoot(x, y float32, r camera.Rect) mgl32.Vec2 {
	axis := func(v, lo, hi float32) float32 {
		switch {
		case v < lo:
			return -mgl32.Clamp((lo-v)/overshootGlowDistance, 0, 1)
		case v > hi:
			return mgl32.Clamp((v-hi)/overshootGlowDistance, 0, 1)
		}
		return 0
	}
	return mgl32.Vec2{axis(x, r.XMin, r.XMax), axis(y, r.YMin, r.YMax)}
}
