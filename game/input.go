package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// Home key to reset camera
	if rl.IsKeyPressed(rl.KeyHome) {
		g.Recenter()
	}

	// Bounds overlay
	if rl.IsKeyPressed(rl.KeyB) {
		g.showBounds = !g.showBounds
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenW && h == g.screenH {
		return
	}
	g.screenW = w
	g.screenH = h
	g.view.Resize(w, h)
	g.renderer.Resize(w, h)
	// Screen y is flipped against the height, so held fingers would jump.
	g.tracker.Reset()
	slog.Debug("window resized", "width", w, "height", h)
}
