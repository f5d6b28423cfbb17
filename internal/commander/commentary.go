package commander

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	commentaryPanelWidth = 300
	commentaryMaxEntries = 40
	commentaryLineHeight = 12
)

// CommentaryEntry is one line in the commander's on-screen commentary.
type CommentaryEntry struct {
	Tick    int
	Mood    Mood
	Message string
}

// Commentary is a fixed-capacity ring buffer of commander remarks rendered
// in the viewer. Unlike DecisionLog it is bounded and display-only.
type Commentary struct {
	entries []CommentaryEntry
	head    int
	count   int
}

// NewCommentary creates a commentary buffer with a fixed capacity.
func NewCommentary() *Commentary {
	return &Commentary{entries: make([]CommentaryEntry, commentaryMaxEntries)}
}

// Add appends an entry, evicting the oldest when full.
func (c *Commentary) Add(tick int, mood Mood, msg string) {
	c.entries[c.head] = CommentaryEntry{Tick: tick, Mood: mood, Message: msg}
	c.head = (c.head + 1) % commentaryMaxEntries
	if c.count < commentaryMaxEntries {
		c.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (c *Commentary) Recent() []CommentaryEntry {
	result := make([]CommentaryEntry, c.count)
	for i := 0; i < c.count; i++ {
		idx := (c.head - c.count + i + commentaryMaxEntries) % commentaryMaxEntries
		result[i] = c.entries[idx]
	}
	return result
}

// moodColor maps moods to the commentary indicator color.
func moodColor(m Mood) color.RGBA {
	switch m {
	case MoodConfident:
		return color.RGBA{R: 80, G: 200, B: 100, A: 255}
	case MoodCalm:
		return color.RGBA{R: 110, G: 160, B: 200, A: 255}
	case MoodFocused:
		return color.RGBA{R: 220, G: 200, B: 80, A: 255}
	case MoodStressed:
		return color.RGBA{R: 230, G: 140, B: 60, A: 255}
	case MoodDetermined:
		return color.RGBA{R: 190, G: 90, B: 220, A: 255}
	case MoodDesperate:
		return color.RGBA{R: 230, G: 60, B: 60, A: 255}
	default:
		return color.RGBA{R: 150, G: 150, B: 150, A: 255}
	}
}

// Draw renders the commentary panel on the right edge of the screen.
func (c *Commentary) Draw(screen *ebiten.Image, panelX, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(commentaryPanelWidth), float32(panelH), color.RGBA{R: 12, G: 12, B: 16, A: 245}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 60, G: 60, B: 80, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(commentaryPanelWidth), 16, color.RGBA{R: 24, G: 24, B: 34, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "COMMANDER", panelX+8, 2)
	vector.StrokeLine(screen, float32(panelX), 16, float32(panelX+commentaryPanelWidth), 16, 1.0, color.RGBA{R: 60, G: 60, B: 90, A: 200}, false)

	entries := c.Recent()
	maxVisible := (panelH - 24) / commentaryLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := 20
	for _, e := range entries {
		vector.FillRect(screen, float32(panelX+5), float32(y+3), 3, 6, moodColor(e.Mood), false)
		line := fmt.Sprintf("%5d %s", e.Tick, e.Message)
		ebitenutil.DebugPrintAt(screen, line, panelX+12, y)
		y += commentaryLineHeight
	}
}
