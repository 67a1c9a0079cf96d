package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/pinchcam/renderer"
	"github.com/pthm-cable/pinchcam/telemetry"
	"github.com/pthm-cable/pinchcam/ui"
)

const controlsLegend = "Drag: pan | Ctrl+drag: pinch | Home: recenter | B: bounds | F11: fullscreen"

// Draw renders the scene and HUD, closing the frame opened by Update.
func (g *Game) Draw() {
	g.perfCollector.StartPhase(telemetry.PhaseRender)
	g.perfCollector.RecordPresent()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	var overlay *renderer.BoundsOverlay
	if g.showBounds {
		hard := g.filter.HardBounds()
		overlay = &renderer.BoundsOverlay{
			Hard:    hard,
			Elastic: hard.Grow(g.filter.Settings().SwipeBack),
			Focus:   g.filter.Focus(),
		}
	}
	g.renderer.Draw(g.rlHost.Camera3D(), g.view, g.scene, g.filter.HardBounds(), overlay)

	g.drawUI()

	rl.EndDrawing()
	g.perfCollector.EndFrame()
}

// drawUI draws the HUD and applies its toggles.
func (g *Game) drawUI() {
	pos := g.filter.Position()
	settings := g.filter.Settings()
	mouse := toScreen(rl.GetMousePosition(), g.screenH)
	cx, cy := g.view.ScreenToWorld(mouse.X(), mouse.Y())
	data := ui.HUDData{
		Title:        "pinchcam",
		Frame:        g.frame,
		FPS:          rl.GetFPS(),
		Fingers:      g.tracker.FingerCount(),
		Interacting:  g.filter.Interacting(),
		X:            pos.X(),
		Y:            pos.Y(),
		FOV:          g.filter.FieldOfView(),
		FocusFOV:     g.filter.FocusFOV(),
		FOVMin:       settings.PinchRange.Min,
		FOVMax:       settings.PinchRange.Max,
		FOVBack:      settings.PinchBack,
		ZoomT:        g.filter.ZoomT(),
		Velocity:     g.filter.Velocity(),
		WorldPerPx:   g.view.WorldPerPixel(),
		Cursor:       mgl32.Vec2{cx, cy},
		FingerIDs:    g.tracker.IDs(),
		Hover:        settings.Hover.String(),
		Landmarks:    g.scene.Count(),
		Visible:      g.renderer.Visible(),
		CanRecord:    g.outputManager != nil,
		ScreenWidth:  int32(g.screenW),
		ScreenHeight: int32(g.screenH),
	}

	toggles := g.hud.Draw(data, ui.HUDToggles{ShowBounds: g.showBounds, Recording: g.recording})
	g.showBounds = toggles.ShowBounds
	if toggles.Recording != g.recording {
		g.recording = toggles.Recording
		slog.Info("frame trace", "recording", g.recording, "frame", g.frame)
	}

	g.hud.DrawControls(int32(g.screenH), controlsLegend)
}
