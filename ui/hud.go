package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title        string
	Frame        int64
	FPS          int32
	Fingers      int
	Interacting  bool
	X, Y         float32
	FOV          float32
	FocusFOV     float32
	FOVMin       float32
	FOVMax       float32
	FOVBack      float32 // Elastic margin around [FOVMin, FOVMax]
	ZoomT        float32 // 0 = fully zoomed in, 1 = fully zoomed out
	Velocity     mgl32.Vec2
	WorldPerPx   float32
	Cursor       mgl32.Vec2 // Ground point under the mouse
	FingerIDs    []int
	Hover        string
	Landmarks    int
	Visible      int
	CanRecord    bool // Output directory configured
	ScreenWidth  int32
	ScreenHeight int32
}

// HUDToggles are the switches the HUD lets the user flip.
type HUDToggles struct {
	ShowBounds bool
	Recording  bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
	width    int32
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
		width:    240,
	}
}

// Draw renders the HUD and returns the toggles after any clicks this frame.
func (h *HUD) Draw(data HUDData, toggles HUDToggles) HUDToggles {
	r := h.renderer
	pad := r.Theme.Padding
	x := pad
	y := pad

	r.DrawPanel(x-4, y-4, h.width, 300)

	rl.DrawText(data.Title, x, y, 20, rl.White)
	y += 26

	y = r.DrawSectionHeader(x, y, "Camera")
	y = r.DrawLabelValue(x, y, "Position", fmt.Sprintf("%.1f, %.1f", data.X, data.Y))
	y = r.DrawGauge(x, y, "FOV", Gauge{
		Value:   data.FOV,
		Target:  data.FocusFOV,
		Min:     data.FOVMin,
		Max:     data.FOVMax,
		Elastic: data.FOVBack,
	}, h.width-pad)
	y = r.DrawLabelValue(x, y, "Zoom t", fmt.Sprintf("%.2f", data.ZoomT))
	y = r.DrawLabelValue(x, y, "Scale", fmt.Sprintf("%.3f u/px", data.WorldPerPx))
	y = r.DrawVector(x, y, "Velocity", data.Velocity, 40, 36)

	y = r.DrawSectionHeader(x, y+4, "Input")
	state := "idle"
	if data.Interacting {
		state = "dragging"
	}
	y = r.DrawLabelValue(x, y, "Fingers", fmt.Sprintf("%d (%s) %v", data.Fingers, state, data.FingerIDs))
	y = r.DrawLabelValue(x, y, "Cursor", fmt.Sprintf("%.1f, %.1f", data.Cursor.X(), data.Cursor.Y()))
	y = r.DrawLabelValue(x, y, "Hover", data.Hover)

	toggles.ShowBounds = gui.CheckBox(rl.Rectangle{X: float32(x), Y: float32(y + 4), Width: 14, Height: 14}, "Bounds [B]", toggles.ShowBounds)
	if data.CanRecord {
		toggles.Recording = gui.CheckBox(rl.Rectangle{X: float32(x + 110), Y: float32(y + 4), Width: 14, Height: 14}, "Record trace", toggles.Recording)
	}

	// Frame info along the bottom
	rl.DrawText(
		fmt.Sprintf("Frame: %d | FPS: %d | Landmarks: %d/%d", data.Frame, data.FPS, data.Visible, data.Landmarks),
		pad, data.ScreenHeight-45, 14, rl.LightGray,
	)
	return toggles
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
