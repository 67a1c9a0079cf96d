package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer draws HUD widgets in one theme.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a bordered panel background.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws title and returns the y of the next row.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight
}

// DrawLabelValue draws one "label: value" row and returns the y of the next row.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	r.label(x, y, label)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

func (r *Renderer) label(x, y int32, text string) {
	rl.DrawText(text+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
}

// Gauge is a value on a bounded scale that may overshoot by Elastic on
// either side, heading toward Target.
type Gauge struct {
	Value, Target float32
	Min, Max      float32
	Elastic       float32
}

// DrawGauge draws g as a track spanning the elastic range with the hard
// range highlighted, the value as a filled bar and the target as a tick.
// The fill turns to the overshoot colour outside the hard range.
func (r *Renderer) DrawGauge(x, y int32, label string, g Gauge, width int32) int32 {
	t := r.Theme
	r.label(x, y, label)

	trackX := float32(x + t.LabelWidth)
	trackW := float32(width - t.LabelWidth - 50)
	top := float32(y + 2)
	h := float32(t.BarHeight)

	lo, hi := g.Min-g.Elastic, g.Max+g.Elastic
	toX := func(v float32) float32 {
		if hi <= lo {
			return trackX
		}
		return trackX + trackW*mgl32.Clamp((v-lo)/(hi-lo), 0, 1)
	}

	rl.DrawRectangleRec(rl.Rectangle{X: trackX, Y: top, Width: trackW, Height: h}, t.BarBg)
	rl.DrawRectangleRec(rl.Rectangle{X: toX(g.Min), Y: top, Width: toX(g.Max) - toX(g.Min), Height: h}, t.GaugeHard)

	fill := t.BarFill
	if g.Value < g.Min || g.Value > g.Max {
		fill = t.BarFillOver
	}
	rl.DrawRectangleRec(rl.Rectangle{X: trackX, Y: top + h/4, Width: toX(g.Value) - trackX, Height: h / 2}, fill)

	tx := toX(g.Target)
	rl.DrawLineEx(rl.Vector2{X: tx, Y: top - 2}, rl.Vector2{X: tx, Y: top + h + 2}, 2, t.Marker)

	rl.DrawText(fmt.Sprintf("%.1f", g.Value), int32(trackX+trackW)+5, y, t.FontSize, t.ValueColor)
	return y + t.LineHeight + 2
}

// DrawVector draws v as an arrow from the centre of a square pad whose
// half-size represents limit. Longer vectors are drawn at the pad's edge.
func (r *Renderer) DrawVector(x, y int32, label string, v mgl32.Vec2, limit float32, size int32) int32 {
	t := r.Theme
	r.label(x, y, label)

	padX := x + t.LabelWidth
	rl.DrawRectangle(padX, y, size, size, t.BarBg)
	cx := float32(padX) + float32(size)/2
	cy := float32(y) + float32(size)/2
	rl.DrawLine(padX, int32(cy), padX+size, int32(cy), t.PanelBorder)
	rl.DrawLine(int32(cx), y, int32(cx), y+size, t.PanelBorder)

	if limit > 0 && v.Len() > 0 {
		d := v.Mul(1 / limit)
		if d.Len() > 1 {
			d = d.Normalize()
		}
		half := float32(size) / 2
		// Screen space is y-up; raylib draws y-down.
		tip := rl.Vector2{X: cx + d.X()*half, Y: cy - d.Y()*half}
		rl.DrawLineEx(rl.Vector2{X: cx, Y: cy}, tip, 2, t.Marker)
		rl.DrawCircleV(tip, 2.5, t.Marker)
	}

	rl.DrawText(fmt.Sprintf("%+.1f\n%+.1f", v.X(), v.Y()), padX+size+8, y+2, t.FontSize, t.ValueColor)
	return y + size + 4
}
