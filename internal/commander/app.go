package commander

import (
	"image/color"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/time/rate"
)

// overlayRefreshInterval is the cadence at which the viewer re-snapshots the
// director's grids for drawing. Deliberately coarser than the decision
// interval — visualization never drives recompute cost.
const overlayRefreshInterval = 750 * time.Millisecond

// App is the interactive viewer: it runs a Sim with auto waves and draws the
// commander's internals on top. Implements ebiten.Game.
type App struct {
	sim        *Sim
	commentary *Commentary

	showThreat   bool
	showCoverage bool
	showSectors  bool
	showLanes    bool
	paused       bool

	// Cached display copies of the grids, refreshed on a throttle so the
	// overlay path never touches the live grids mid-recompute cadence.
	threatView   *InfluenceGrid
	coverageView *InfluenceGrid
	refresh      rate.Sometimes

	lastMood       Mood
	lastEmittedLen int
	status         Status
}

// NewApp builds the default viewer scenario: three lanes, auto waves, the
// adaptive personality.
func NewApp() *App {
	sim := NewSim(
		WithSeed(time.Now().UnixNano()),
		WithPersonality(PersonalityAdaptive),
		WithBase(1100, 360),
		WithLane(50, 160),
		WithLane(50, 360),
		WithLane(50, 560),
		WithResources(350),
		WithAutoWaves(),
	)
	return &App{
		sim:          sim,
		commentary:   NewCommentary(),
		showThreat:   true,
		showLanes:    true,
		threatView:   NewInfluenceGrid(worldWidth, worldHeight, influenceCellSize),
		coverageView: NewInfluenceGrid(worldWidth, worldHeight, influenceCellSize),
		refresh:      rate.Sometimes{Interval: overlayRefreshInterval},
	}
}

// Update advances the simulation one tick and handles input.
func (a *App) Update() error {
	a.handleInput()

	if !a.paused {
		a.sim.RunTicks(1)
	}

	a.status = a.sim.Director.Status()
	a.trackCommentary()

	a.refresh.Do(func() {
		copyGrid(a.threatView, a.sim.Director.ThreatGrid())
		copyGrid(a.coverageView, a.sim.Director.CoverageGrid())
	})
	return nil
}

// trackCommentary feeds mood changes and committed actions into the panel.
func (a *App) trackCommentary() {
	if a.status.Mood != a.lastMood {
		a.lastMood = a.status.Mood
		a.commentary.Add(a.sim.CurrentTick(), a.status.Mood, a.status.MoodMessage)
	}
	for _, act := range a.sim.Emitted[a.lastEmittedLen:] {
		a.commentary.Add(a.sim.CurrentTick(), a.status.Mood, actionComment(act))
	}
	a.lastEmittedLen = len(a.sim.Emitted)
}

func (a *App) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		a.showThreat = !a.showThreat
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.showCoverage = !a.showCoverage
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.showSectors = !a.showSectors
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		a.showLanes = !a.showLanes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.paused = !a.paused
	}
	if a.paused && inpututil.IsKeyJustPressed(ebiten.KeyN) {
		a.sim.RunTicks(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		report := BuildDebugReport(a.sim.Director, a.sim.Log, a.sim.CurrentTick(), 600)
		// Clipboard failures are not worth interrupting the viewer over.
		_ = clipboard.WriteAll(report)
	}
}

// Draw renders the battlefield, overlays, HUD, and commentary panel.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 18, G: 20, B: 18, A: 255})

	if a.showThreat {
		drawInfluenceGrid(screen, a.threatView, color.RGBA{R: 220, G: 60, B: 60})
	}
	if a.showCoverage {
		drawInfluenceGrid(screen, a.coverageView, color.RGBA{R: 60, G: 120, B: 220})
	}
	if a.showLanes {
		drawLanes(screen, a.sim.Flow.Lanes())
	}
	if a.showSectors {
		drawSectors(screen, a.sim.Director.Sectors())
	}

	drawWorldEntities(screen, a.sim)

	if a.status.HasPlanned {
		drawPlannedMarker(screen, a.status.PlannedX, a.status.PlannedY, a.sim.CurrentTick())
	}

	drawHUD(screen, a.sim, a.status, a.paused)
	drawHelp(screen)
	a.commentary.Draw(screen, worldWidth, worldHeight)
}

// Layout reports the fixed logical screen size: world plus commentary panel.
func (a *App) Layout(_, _ int) (int, int) {
	return worldWidth + commentaryPanelWidth, worldHeight
}
