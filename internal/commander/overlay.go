package commander

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawInfluenceGrid renders a grid as translucent heat cells tinted with
// baseCol, alpha scaled by cell value relative to the grid max. Cells at zero
// are skipped entirely so the overlay stays readable.
func drawInfluenceGrid(screen *ebiten.Image, g *InfluenceGrid, baseCol color.RGBA) {
	max := g.Max()
	if max <= 0 {
		return
	}
	cs := float32(g.CellSize())
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			v := g.At(col, row)
			if v <= 0 {
				continue
			}
			alpha := v / max
			if alpha > 1 {
				alpha = 1
			}
			c := baseCol
			c.A = uint8(20 + alpha*120)
			vector.FillRect(screen,
				float32(col)*cs, float32(row)*cs, cs, cs, c, false)
		}
	}
}

// drawSectors outlines the sector grid and labels each non-empty sector with
// its enemy count, threat sum, and covering DPS.
func drawSectors(screen *ebiten.Image, sa *SectorAnalyzer) {
	lineCol := color.RGBA{R: 70, G: 70, B: 90, A: 120}
	for _, s := range sa.Sectors() {
		vector.StrokeRect(screen,
			float32(s.X), float32(s.Y), float32(s.Width), float32(s.Height),
			1.0, lineCol, false)
		if s.EnemyCount == 0 && s.TotalDPS == 0 {
			continue
		}
		label := fmt.Sprintf("e:%d t:%.0f d:%.0f", s.EnemyCount, s.ThreatSum, s.TotalDPS)
		ebitenutil.DebugPrintAt(screen, label, int(s.X)+4, int(s.Y)+4)
	}
}

// drawLanes renders the approach lanes as faint direction lines.
func drawLanes(screen *ebiten.Image, lanes []Lane) {
	col := color.RGBA{R: 90, G: 90, B: 60, A: 90}
	for _, l := range lanes {
		vector.StrokeLine(screen,
			float32(l.StartX), float32(l.StartY),
			float32(l.EndX), float32(l.EndY),
			1.0, col, false)
	}
}

// drawPlannedMarker draws a pulsing crosshair at the planned placement.
func drawPlannedMarker(screen *ebiten.Image, x, y float64, tick int) {
	c := color.RGBA{R: 255, G: 240, B: 80, A: 200}
	r := float32(6 + (tick/10)%4)
	fx, fy := float32(x), float32(y)
	vector.StrokeLine(screen, fx-r, fy, fx+r, fy, 1.0, c, false)
	vector.StrokeLine(screen, fx, fy-r, fx, fy+r, 1.0, c, false)
	vector.StrokeCircle(screen, fx, fy, r, 1.0, c, false)
}

// unitColor maps unit types to their display color.
func unitColor(t UnitType) color.RGBA {
	switch t {
	case UnitGatling:
		return color.RGBA{R: 200, G: 200, B: 90, A: 255}
	case UnitCannon:
		return color.RGBA{R: 180, G: 120, B: 70, A: 255}
	case UnitFrost:
		return color.RGBA{R: 120, G: 190, B: 230, A: 255}
	case UnitTesla:
		return color.RGBA{R: 170, G: 130, B: 230, A: 255}
	case UnitMissile:
		return color.RGBA{R: 220, G: 90, B: 90, A: 255}
	default:
		return color.RGBA{R: 160, G: 160, B: 160, A: 255}
	}
}

// drawWorldEntities renders the base, units with range rings, and enemies.
func drawWorldEntities(screen *ebiten.Image, s *Sim) {
	// Base.
	baseCol := color.RGBA{R: 90, G: 180, B: 90, A: 255}
	if s.BaseHealth < 40 {
		baseCol = color.RGBA{R: 220, G: 90, B: 60, A: 255}
	}
	vector.FillRect(screen, float32(s.BaseX)-10, float32(s.BaseY)-10, 20, 20, baseCol, false)

	for _, u := range s.Units {
		c := unitColor(u.Type)
		vector.FillCircle(screen, float32(u.X), float32(u.Y), 6, c, false)
		ring := c
		ring.A = 40
		vector.StrokeCircle(screen, float32(u.X), float32(u.Y), float32(u.EffectiveRange()), 1.0, ring, false)
	}

	for _, e := range s.Enemies {
		c := color.RGBA{R: 220, G: 70, B: 70, A: 255}
		if e.Faction == FactionIron {
			c = color.RGBA{R: 170, G: 170, B: 190, A: 255}
		} else if e.Faction == FactionWild {
			c = color.RGBA{R: 190, G: 150, B: 70, A: 255}
		}
		size := float32(3 + e.ThreatLevel/25)
		vector.FillCircle(screen, float32(e.X), float32(e.Y), size, c, false)
		// Health sliver.
		frac := float32(e.Health / e.MaxHealth)
		vector.FillRect(screen, float32(e.X)-6, float32(e.Y)-size-5, 12*frac, 2, color.RGBA{R: 90, G: 220, B: 90, A: 220}, false)
	}
}
