package commander

import (
	"fmt"
	"math"
	"time"
)

// targetWave is the wave count considered a full game, for normalizing wave
// progress and performance scoring.
const targetWave = 20

// threatPctDivisor converts summed faction-weighted threat into a 0-100
// battlefield threat percentage.
const threatPctDivisor = 8.0

// laneSampleStep is the spacing (px) of coverage probes along each lane.
const laneSampleStep = 40.0

// threatSplatRadius is the influence radius (cells) of one enemy on the
// threat grid.
const threatSplatRadius = 3

// Status is the read-only snapshot exposed for display layers. It carries no
// references into the director's mutable state.
type Status struct {
	Mood        Mood
	MoodMessage string
	Phase       Phase
	PhaseFocus  string
	ThreatPct   float64
	CoveragePct float64

	PlannedAction string
	PlannedX      float64
	PlannedY      float64
	HasPlanned    bool

	DecisionsThisWave int
	SuccessfulActions int
}

// Director orchestrates the decision engine: on a fixed cadence it observes
// the world, recomputes the grids, scores placement and upgrade candidates
// under cooldown and reserve constraints, and pushes the single best action
// through the humanizer. All collaborators are injected at construction; the
// director holds no ambient service references.
type Director struct {
	provider    SnapshotProvider
	flow        FlowSampler
	personality Personality
	log         *DecisionLog
	rng         Rand

	threat   *InfluenceGrid
	coverage *InfluenceGrid
	sectors  *SectorAnalyzer
	scorer   *PlacementScorer
	upgrader *UpgradeEvaluator

	mood       *MoodEngine
	difficulty *DifficultyAdjuster
	humanizer  *Humanizer

	lastCycleAt     time.Duration
	lastPlacementAt time.Duration
	lastUpgradeAt   time.Duration
	ranFirstCycle   bool

	lastWave          int
	decisionsThisWave int
	successfulActions int

	threatPct   float64
	coveragePct float64
	moodMessage string
	planned     *Action
}

// NewDirector wires a director to its collaborators. worldW/worldH size the
// grids once; they are never resized.
func NewDirector(provider SnapshotProvider, flow FlowSampler, p Personality, rng Rand, log *DecisionLog) *Director {
	threat := NewInfluenceGrid(worldWidth, worldHeight, influenceCellSize)
	coverage := NewInfluenceGrid(worldWidth, worldHeight, influenceCellSize)
	return &Director{
		provider:    provider,
		flow:        flow,
		personality: p,
		log:         log,
		rng:         rng,
		threat:      threat,
		coverage:    coverage,
		sectors:     NewSectorAnalyzer(worldWidth, worldHeight, sectorCols, sectorRows),
		scorer:      NewPlacementScorer(threat, coverage, flow, p),
		upgrader:    NewUpgradeEvaluator(p),
		mood:        NewMoodEngine(),
		difficulty:  NewDifficultyAdjuster(),
		humanizer:   NewHumanizer(p, rng),
		lastWave:    1,
		// Back-dated so the first cycle is never cooldown-blocked.
		lastPlacementAt: -PlacementCooldown,
		lastUpgradeAt:   -UpgradeCooldown,
	}
}

// ThreatGrid exposes the threat grid read-only, for overlays.
func (d *Director) ThreatGrid() *InfluenceGrid { return d.threat }

// CoverageGrid exposes the coverage grid read-only, for overlays.
func (d *Director) CoverageGrid() *InfluenceGrid { return d.coverage }

// Sectors exposes the sector analyzer read-only, for overlays.
func (d *Director) Sectors() *SectorAnalyzer { return d.sectors }

// Difficulty exposes the difficulty adjuster, primarily for status display.
func (d *Director) Difficulty() *DifficultyAdjuster { return d.difficulty }

// Humanizer exposes the humanizer for configuration (tests, difficulty).
func (d *Director) Humanizer() *Humanizer { return d.humanizer }

// Status returns the current display snapshot.
func (d *Director) Status() Status {
	snap := d.provider.Snapshot()
	st := Status{
		Mood:              d.mood.Mood(),
		MoodMessage:       d.moodMessage,
		Phase:             CurrentPhase(snap.Wave, snap.BossWave, snap.BaseHealthPct),
		ThreatPct:         d.threatPct,
		CoveragePct:       d.coveragePct,
		DecisionsThisWave: d.decisionsThisWave,
		SuccessfulActions: d.successfulActions,
	}
	st.PhaseFocus = st.Phase.Focus()
	if d.planned != nil {
		st.PlannedAction = d.planned.String()
		st.PlannedX = d.planned.X
		st.PlannedY = d.planned.Y
		st.HasPlanned = true
	}
	return st
}

// Update advances the director one host tick. At most one action is emitted
// per call; the gameplay layer owns it from then on and performs the actual
// placement and resource deduction.
func (d *Director) Update(tick int, now time.Duration) (Action, bool) {
	// Release a humanized action whose reaction delay has elapsed.
	if a, ok := d.humanizer.Poll(now); ok {
		d.commit(tick, now, a)
		return a, true
	}

	if d.ranFirstCycle && now-d.lastCycleAt < DecisionInterval {
		return Action{}, false
	}
	d.lastCycleAt = now
	d.ranFirstCycle = true
	d.decide(tick, now)
	return Action{}, false
}

// commit finalizes an emitted action: cooldown stamps, counters, logging.
func (d *Director) commit(tick int, now time.Duration, a Action) {
	switch a.Kind {
	case ActionPlaceUnit:
		d.lastPlacementAt = now
	case ActionUpgradeUnit:
		d.lastUpgradeAt = now
	}
	d.successfulActions++
	d.planned = nil
	d.log.Add(tick, "decision", "commit", a.String(), a.Priority)
}

// decide runs one full analysis-and-proposal cycle.
func (d *Director) decide(tick int, now time.Duration) {
	snap := d.provider.Snapshot()
	if !snap.HasBase || snap.BaseHealthPct <= 0 {
		// Nothing to defend; return to idle. Not an error.
		d.log.AddVerbose(tick, "decision", "idle", "no base", 0)
		return
	}

	d.recompute(snap)
	ctx := d.context(snap)

	prevMood := d.mood.Mood()
	mood := d.mood.CalculateMood(ctx)
	if mood != prevMood {
		d.moodMessage = MoodMessage(d.rng, mood, CurrentPhase(snap.Wave, snap.BossWave, snap.BaseHealthPct))
		d.log.Add(tick, "mood", "change", fmt.Sprintf("%s → %s", prevMood, mood), 0)
	}

	d.trackWave(tick, snap)

	adj := d.difficulty.GetAdjustment()
	d.humanizer.ApplyAdjustment(adj)
	reserve := int(float64(EmergencyReserve) / adj.EconomyMul)

	d.decisionsThisWave++

	placementReady := now-d.lastPlacementAt >= PlacementCooldown
	upgradeReady := now-d.lastUpgradeAt >= UpgradeCooldown

	var placement PlacementPlan
	hasPlacement := false
	if placementReady {
		placement, hasPlacement = d.scorer.BestPlacement(snap, reserve, adj.AccuracyMul)
	}

	var upgrade UpgradePlan
	hasUpgrade := false
	if upgradeReady {
		waveProgress := math.Min(1, float64(snap.Wave)/float64(targetWave))
		upgrade, hasUpgrade = d.upgrader.BestUpgrade(snap, waveProgress)
	}

	var action Action
	switch {
	case hasUpgrade && UpgradeBeatsPlacement(upgrade, placement, hasPlacement):
		action = Action{
			Kind:          ActionUpgradeUnit,
			UnitID:        upgrade.UnitID,
			Path:          upgrade.Path,
			ExpectedValue: upgrade.ValuePerCost,
			Priority:      upgrade.ValuePerCost * float64(upgrade.Cost),
			Cost:          upgrade.Cost,
		}
	case hasPlacement:
		action = Action{
			Kind:          ActionPlaceUnit,
			X:             placement.X,
			Y:             placement.Y,
			UnitType:      placement.Type,
			ExpectedValue: placement.Score,
			Priority:      placement.Score,
			Cost:          placement.Cost,
		}
	default:
		// Sell only as a last resort: critically low on funds, nothing
		// affordable, and real pressure on the field.
		if unit, ok := d.sellCandidate(snap); ok {
			action = Action{Kind: ActionSellUnit, UnitID: unit.ID, Priority: 0.1}
		} else {
			d.log.AddVerbose(tick, "decision", "wait", "no viable action", 0)
			return
		}
	}

	if !d.humanizer.Propose(action, now) {
		d.planned = nil
		d.log.AddVerbose(tick, "decision", "skip", action.String(), 0)
		return
	}
	d.planned = &action
	d.log.AddVerbose(tick, "decision", "propose", action.String(), action.Priority)
}

// recompute rebuilds both influence grids and the sector array from scratch.
// The grids are owned exclusively by this step; nothing else mutates them.
func (d *Director) recompute(snap Snapshot) {
	d.threat.Clear()
	for _, e := range snap.Enemies {
		d.threat.Splat(e.X, e.Y, threatSplatRadius, e.ThreatLevel*e.Faction.ThreatModifier())
	}

	d.coverage.Clear()
	for _, u := range snap.Units {
		radius := int(u.Range / d.coverage.CellSize())
		d.coverage.Splat(u.X, u.Y, radius, u.DPS)
	}

	d.sectors.Recompute(snap)
}

// context derives the mood inputs from the snapshot and fresh grids.
func (d *Director) context(snap Snapshot) MoodContext {
	total := 0.0
	for _, e := range snap.Enemies {
		total += e.ThreatLevel * e.Faction.ThreatModifier()
	}
	d.threatPct = math.Min(100, total/threatPctDivisor)
	d.coveragePct = d.laneCoveragePct(snap)

	return MoodContext{
		HealthPct:   snap.BaseHealthPct,
		ThreatPct:   d.threatPct,
		CoveragePct: d.coveragePct,
		Resources:   snap.Resources,
		BossWave:    snap.BossWave,
	}
}

// laneCoveragePct probes each approach lane at fixed intervals and returns
// the percentage of probe points with non-zero coverage. With no lanes it
// falls back to the fraction of sectors under fire. Zero probes reads as
// zero coverage — no signal, not an error.
func (d *Director) laneCoveragePct(snap Snapshot) float64 {
	probes, covered := 0, 0
	for _, l := range snap.Lanes {
		length := math.Hypot(l.EndX-l.StartX, l.EndY-l.StartY)
		steps := int(length / laneSampleStep)
		if steps < 1 {
			steps = 1
		}
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			x := l.StartX + t*(l.EndX-l.StartX)
			y := l.StartY + t*(l.EndY-l.StartY)
			probes++
			if d.coverage.Sample(x, y) > 0 {
				covered++
			}
		}
	}
	if probes == 0 {
		sectors := d.sectors.Sectors()
		for i := range sectors {
			probes++
			if sectors[i].TotalDPS > 0 {
				covered++
			}
		}
	}
	if probes == 0 {
		return 0
	}
	return float64(covered) / float64(probes) * 100
}

// sellCandidate picks the lowest-DPS unit as a last-ditch fund raiser.
func (d *Director) sellCandidate(snap Snapshot) (UnitInfo, bool) {
	if snap.Resources >= criticalResources || len(snap.Units) == 0 || d.threatPct < 30 {
		return UnitInfo{}, false
	}
	best := snap.Units[0]
	for _, u := range snap.Units[1:] {
		if u.DPS < best.DPS {
			best = u
		}
	}
	return best, true
}

// trackWave records a performance sample whenever the wave number advances.
func (d *Director) trackWave(tick int, snap Snapshot) {
	if snap.Wave == d.lastWave {
		return
	}
	metrics := PerformanceMetrics{
		HealthPct:     snap.BaseHealthPct,
		Wave:          d.lastWave,
		TargetWave:    targetWave,
		Kills:         snap.Kills,
		UnitsDeployed: len(snap.Units),
	}
	score := CalculatePerformance(metrics)
	d.difficulty.RecordPerformance(score)
	d.log.Add(tick, "wave", "performance", fmt.Sprintf("wave %d scored %.0f", d.lastWave, score), score)
	d.lastWave = snap.Wave
	d.decisionsThisWave = 0
}
