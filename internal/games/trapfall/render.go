package trapfall

import (
	"fmt"
	"math"

	"github.com/vovakirdan/trapfall/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlatformChar = '▀'
	FakeChar     = '▔'
	DeadlyChar   = '▲'
	FogChar      = '░'
)

// cullMargin is how far outside the view a platform may be and still be drawn.
const cullMargin = 60.0

// viewport maps world coordinates onto screen cells.
type viewport struct {
	sx, sy  float64 // Cells per world unit
	cameraY float64
	viewH   float64
}

func (g *Game) viewport(dst *core.Screen) viewport {
	viewH := g.cfg.WorldHeight(dst.Width(), dst.Height())
	return viewport{
		sx:      float64(dst.Width()) / g.cfg.World.Width,
		sy:      float64(dst.Height()) / viewH,
		cameraY: g.snap.CameraY,
		viewH:   viewH,
	}
}

// cells converts a world rectangle to a screen rectangle at least one cell in size.
func (v viewport) cells(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.Left * v.sx))
	x1 := int(math.Ceil(r.Right*v.sx)) - 1
	y0 := int(math.Floor((r.Top - v.cameraY) * v.sy))
	y1 := int(math.Ceil((r.Bottom-v.cameraY)*v.sy)) - 1
	return core.NewRect(x0, y0, core.Max(1, x1-x0+1), core.Max(1, y1-y0+1))
}

func (v viewport) row(worldY float64) int {
	return int(math.Floor((worldY - v.cameraY) * v.sy))
}

func (v viewport) culled(r core.RectF) bool {
	return r.Bottom < v.cameraY-cullMargin || r.Top > v.cameraY+v.viewH+cullMargin
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	v := g.viewport(dst)

	for _, p := range g.snap.Platforms {
		if !p.Visible || v.culled(p.Bounds) {
			continue
		}
		drawPlatform(dst, v.cells(p.Bounds), p)
	}

	dst.DrawRect(v.cells(g.snap.Player), PlayerChar, core.ColorCyan)

	if fogRow := core.Max(0, v.row(g.snap.FogY)); fogRow < dst.Height() {
		dst.DrawRect(core.NewRect(0, fogRow, dst.Width(), dst.Height()-fogRow), FogChar, core.ColorDarkRed)
	}

	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P or Enter to resume")
	}
}

func drawPlatform(dst *core.Screen, r core.Rect, p PlatformView) {
	switch {
	case p.Goal:
		dst.DrawRect(r, PlatformChar, core.ColorBrightGreen)
		label := "GOAL"
		if r.W >= len(label) {
			dst.DrawTextColored(r.X+(r.W-len(label))/2, r.Y, label, core.ColorBrightWhite)
		}
	case p.Kind == RenderDeadly:
		dst.DrawRect(r, DeadlyChar, core.ColorRed)
	case p.Kind == RenderFake:
		dst.DrawRect(r, FakeChar, core.ColorGray)
	default:
		dst.DrawRect(r, PlatformChar, core.ColorGreen)
	}
}

// drawHUD writes the status line at the top and key hints at the bottom.
func (g *Game) drawHUD(dst *core.Screen) {
	status := fmt.Sprintf(" Level: %d  Attempts: %d ", g.snap.Level, g.snap.Attempts)
	dst.DrawTextColored(1, 0, status, core.ColorBrightWhite)

	seed := fmt.Sprintf(" Seed: %d ", g.baseSeed)
	if g.mode == ModeDaily {
		seed = fmt.Sprintf(" Daily %d ", g.baseSeed)
	}
	dst.DrawTextColored(dst.Width()-len(seed)-1, 0, seed, core.ColorGray)

	hint := "←/→ move  Space jump  P pause  R restart  Esc menu"
	if dst.Height() > 2 {
		dst.DrawTextColored(1, dst.Height()-1, hint, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
