package commander

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// hudHeight is the top status bar height (px).
const hudHeight = 22

// drawHUD renders the status bar: wave, resources, base health, mood, phase,
// and the live threat/coverage readings from the director.
func drawHUD(screen *ebiten.Image, s *Sim, st Status, paused bool) {
	w := screen.Bounds().Dx()
	vector.FillRect(screen, 0, 0, float32(w), hudHeight, color.RGBA{R: 16, G: 16, B: 24, A: 255}, false)
	vector.StrokeLine(screen, 0, hudHeight, float32(w), hudHeight, 1.0, color.RGBA{R: 60, G: 60, B: 90, A: 255}, false)

	face := basicfont.Face7x13
	line := fmt.Sprintf("wave %d  $%d  base %.0f%%  threat %.0f%%  coverage %.0f%%  mood: %s  phase: %s",
		s.Wave, s.Resources, s.BaseHealth, st.ThreatPct, st.CoveragePct, st.Mood, st.Phase)
	text.Draw(screen, line, face, 8, 15, color.RGBA{R: 210, G: 210, B: 220, A: 255})

	if paused {
		text.Draw(screen, "PAUSED (space)", face, w-240, 15, color.RGBA{R: 240, G: 200, B: 90, A: 255})
	}
}

// drawHelp renders the key legend along the bottom edge.
func drawHelp(screen *ebiten.Image) {
	h := screen.Bounds().Dy()
	face := basicfont.Face7x13
	text.Draw(screen, "[T]hreat  [C]overage  [S]ectors  [L]anes  [space] pause  [N] step  [R] copy report",
		face, 8, h-6, color.RGBA{R: 140, G: 140, B: 160, A: 255})
}
