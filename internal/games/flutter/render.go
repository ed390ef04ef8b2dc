package flutter

import (
	"fmt"

	"github.com/vovakirdan/mystic-flutter/internal/core"
)

// Visual characters for rendering
const (
	EntityChar  = '●'
	DeadChar    = '✕'
	BarrierChar = '█'
	ZoneChar    = '░'
)

// hudX is the column the score starts at.
const hudX = 2

// Renderer draws snapshots onto a cell screen. Each cell covers
// CellW x CellH world pixels and is sampled at its center.
type Renderer struct {
	CellW int
	CellH int
}

// Draw renders the snapshot. Layers back to front: zones, entity, obstacles, HUD.
func (r Renderer) Draw(dst *core.Screen, s Snapshot, paused bool) {
	dst.Clear()
	if r.CellW <= 0 || r.CellH <= 0 {
		return
	}

	r.drawZones(dst, s.Zones)
	r.drawEntity(dst, s.Entity)
	for _, o := range s.Obstacles {
		r.drawObstacle(dst, o)
	}

	dst.DrawTextColored(hudX, 0, " Score: "+s.ScoreText+" ", core.ColorBrightWhite)

	banner := dst.Height() / 3
	switch s.Time.State {
	case TimeActive:
		dst.DrawTextCentered(banner, "SLOW TIME ACTIVE", core.ColorBrightCyan)
	case TimeCooldown:
		if s.Time.CooldownSeconds > 0 {
			dst.DrawTextCentered(banner, fmt.Sprintf("Slow time cooldown: %ds", s.Time.CooldownSeconds), core.ColorCyan)
		}
	}

	if paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if s.ShowGameOver {
		drawCenteredMessage(dst, "GAME OVER", "Tap to restart")
	}
}

// center returns the world coordinates at the middle of a cell.
func (r Renderer) center(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * float64(r.CellW), (float64(cy) + 0.5) * float64(r.CellH)
}

func (r Renderer) drawZones(dst *core.Screen, zones []ZoneView) {
	for _, z := range zones {
		color := core.ColorRed
		if z.Hint == ZoneWeak {
			color = core.ColorBlue
		}
		x0 := int((z.X - z.Radius) / float64(r.CellW))
		x1 := int((z.X + z.Radius) / float64(r.CellW))
		y0 := int((z.Y - z.Radius) / float64(r.CellH))
		y1 := int((z.Y + z.Radius) / float64(r.CellH))
		for cy := y0; cy <= y1; cy++ {
			for cx := x0; cx <= x1; cx++ {
				wx, wy := r.center(cx, cy)
				if core.Dist(wx, wy, z.X, z.Y) < z.Radius {
					dst.SetColored(cx, cy, ZoneChar, color)
				}
			}
		}
	}
}

func (r Renderer) drawEntity(dst *core.Screen, e EntityView) {
	cx := int(e.X / float64(r.CellW))
	cy := int(e.Y / float64(r.CellH))
	if !e.Alive {
		dst.SetColored(cx, cy, DeadChar, core.ColorGray)
		return
	}
	// One row tall, radius/CellW cells either side.
	span := int(e.Radius / float64(r.CellW))
	for dx := -span; dx <= span; dx++ {
		dst.SetColored(cx+dx, cy, EntityChar, core.ColorBrightGreen)
	}
}

func (r Renderer) drawObstacle(dst *core.Screen, o ObstacleView) {
	x0 := int(o.X / float64(r.CellW))
	x1 := int((o.X + float64(o.Width)) / float64(r.CellW))
	for cy := 0; cy < dst.Height(); cy++ {
		for cx := x0; cx < x1; cx++ {
			_, wy := r.center(cx, cy)
			switch {
			case wy < o.GapTop:
				dst.SetColored(cx, cy, BarrierChar, core.ColorGreen)
			case wy > o.GapTop+o.GapHeight:
				dst.SetColored(cx, cy, BarrierChar, core.ColorBrown)
			}
		}
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

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
