package commander

import (
	"math"
	"testing"
)

func newTestScorer(p Personality) (*PlacementScorer, *InfluenceGrid, *InfluenceGrid) {
	threat := NewInfluenceGrid(worldWidth, worldHeight, influenceCellSize)
	coverage := NewInfluenceGrid(worldWidth, worldHeight, influenceCellSize)
	return NewPlacementScorer(threat, coverage, nil, p), threat, coverage
}

func TestScoreAt_ThreatRaisesScore(t *testing.T) {
	scorer, threat, _ := newTestScorer(PersonalityBalanced)
	snap := Snapshot{HasBase: true, BaseX: 640, BaseY: 360}

	quiet := scorer.ScoreAt(640, 360, snap)
	threat.Splat(640, 360, 3, 80)
	hot := scorer.ScoreAt(640, 360, snap)

	if hot <= quiet {
		t.Fatalf("threat did not raise the score: quiet=%v hot=%v", quiet, hot)
	}
}

func TestScoreAt_OverlapPenalizesCoveredGround(t *testing.T) {
	scorer, threat, coverage := newTestScorer(PersonalityBalanced)
	snap := Snapshot{HasBase: true, BaseX: 640, BaseY: 360}
	threat.Splat(640, 360, 4, 60)

	open := scorer.ScoreAt(640, 360, snap)
	coverage.Splat(640, 360, 4, 50)
	covered := scorer.ScoreAt(640, 360, snap)

	if covered >= open {
		t.Fatalf("existing coverage did not penalize the score: open=%v covered=%v", open, covered)
	}
}

func TestScoreAt_OffLanePenaltyIsMultiplicative(t *testing.T) {
	scorer, threat, _ := newTestScorer(PersonalityBalanced)
	lane := Lane{StartX: 0, StartY: 360, EndX: 1280, EndY: 360}
	snap := Snapshot{HasBase: true, BaseX: 640, BaseY: 360, Lanes: []Lane{lane}}

	// Equal threat at an on-lane and an off-lane point.
	threat.Splat(640, 360, 0, 50)
	threat.Splat(640, 680, 0, 50)

	onLane := scorer.ScoreAt(640, 360, snap)
	offLane := scorer.ScoreAt(640, 680, snap)

	if offLane >= onLane {
		t.Fatalf("off-lane candidate not penalized: on=%v off=%v", onLane, offLane)
	}
}

func TestScoreAt_WithinToleranceNotPenalized(t *testing.T) {
	scorer, _, _ := newTestScorer(PersonalityBalanced)
	lane := Lane{StartX: 0, StartY: 360, EndX: 1280, EndY: 360}
	snapLane := Snapshot{HasBase: true, BaseX: 640, BaseY: 360, Lanes: []Lane{lane}}
	snapFree := Snapshot{HasBase: true, BaseX: 640, BaseY: 360}

	// A point inside the tolerance band scores the same as with no lanes at
	// all; the penalty must only bite outside the band.
	inBand := scorer.ScoreAt(640, 360+approachPathTolerance-1, snapLane)
	noLanes := scorer.ScoreAt(640, 360+approachPathTolerance-1, snapFree)
	if math.Abs(inBand-noLanes) > 1e-9 {
		t.Fatalf("in-band candidate penalized: withLane=%v without=%v", inBand, noLanes)
	}
}

func TestScoreAt_DefensiveBiasPrefersCloseGround(t *testing.T) {
	scorer, threat, _ := newTestScorer(PersonalityDefensive)
	snap := Snapshot{HasBase: true, BaseX: 200, BaseY: 360}

	threat.Splat(220, 360, 0, 50)
	threat.Splat(580, 360, 0, 50)

	near := scorer.ScoreAt(220, 360, snap)
	far := scorer.ScoreAt(580, 360, snap)
	if near <= far {
		t.Fatalf("defensive personality did not prefer close ground: near=%v far=%v", near, far)
	}
}

func TestBestPlacement_RespectsMinimumSpacing(t *testing.T) {
	scorer, threat, _ := newTestScorer(PersonalityBalanced)
	snap := Snapshot{
		HasBase: true, BaseX: 640, BaseY: 360,
		Resources: 500,
		Enemies:   []EnemyInfo{{X: 400, Y: 360, ThreatLevel: 60, Behavior: BehaviorRusher, Faction: FactionGrave}},
		Units:     []UnitInfo{{ID: 1, X: 640, Y: 360, Type: UnitGatling}},
	}
	threat.Splat(640, 360, 5, 80)

	plan, ok := scorer.BestPlacement(snap, EmergencyReserve, 1.0)
	if !ok {
		t.Fatal("expected a viable placement away from the existing unit")
	}
	if math.Hypot(plan.X-640, plan.Y-360) < MinTurretDistance {
		t.Fatalf("placement at (%.0f, %.0f) violates minimum spacing to unit at (640, 360)", plan.X, plan.Y)
	}
}

func TestBestPlacement_WaitWhenNothingAffordable(t *testing.T) {
	scorer, threat, _ := newTestScorer(PersonalityBalanced)
	threat.Splat(640, 360, 5, 80)
	snap := Snapshot{
		HasBase: true, BaseX: 640, BaseY: 360,
		Resources: EmergencyReserve + CheapestUnitCost() - 1,
		Enemies:   []EnemyInfo{{X: 400, Y: 360, ThreatLevel: 60, Behavior: BehaviorRusher, Faction: FactionGrave}},
	}

	if _, ok := scorer.BestPlacement(snap, EmergencyReserve, 1.0); ok {
		t.Fatal("expected no placement when every unit breaches the reserve")
	}
}

func TestBestPlacement_WaitWhenNothingScores(t *testing.T) {
	// With zero threat everywhere, a heavily covered field drives every
	// candidate's score below zero: the overlap penalty dwarfs the gap bonus.
	scorer, _, coverage := newTestScorer(PersonalityBalanced)
	for row := 0; row < coverage.Rows(); row++ {
		for col := 0; col < coverage.Cols(); col++ {
			x, y := coverage.CellCenter(col, row)
			coverage.Splat(x, y, 0, 500)
		}
	}

	snap := Snapshot{
		HasBase: true, BaseX: 640, BaseY: 360,
		Resources: 1000,
		Enemies:   []EnemyInfo{{X: 400, Y: 360, ThreatLevel: 60, Behavior: BehaviorRusher, Faction: FactionGrave}},
	}
	if _, ok := scorer.BestPlacement(snap, 0, 1.0); ok {
		t.Fatal("expected wait when every candidate scores at or below zero")
	}
}

func TestBestPlacement_StaysWithinRadius(t *testing.T) {
	scorer, threat, _ := newTestScorer(PersonalityBalanced)
	snap := Snapshot{
		HasBase: true, BaseX: 100, BaseY: 100,
		Resources: 500,
		Enemies:   []EnemyInfo{{X: 1200, Y: 650, ThreatLevel: 90, Behavior: BehaviorJuggernaut, Faction: FactionIron}},
	}
	// Heavy threat far outside the build radius must not pull the placement
	// out there.
	threat.Splat(1200, 650, 5, 100)
	threat.Splat(150, 150, 2, 20)

	plan, ok := scorer.BestPlacement(snap, 0, 1.0)
	if !ok {
		t.Fatal("expected a viable placement inside the radius")
	}
	if math.Hypot(plan.X-100, plan.Y-100) > maxPlacementRadius {
		t.Fatalf("placement at (%.0f, %.0f) outside the build radius", plan.X, plan.Y)
	}
}

func TestBestPlacement_RequiresBase(t *testing.T) {
	scorer, threat, _ := newTestScorer(PersonalityBalanced)
	threat.Splat(640, 360, 5, 80)
	snap := Snapshot{HasBase: false, Resources: 1000}

	if _, ok := scorer.BestPlacement(snap, 0, 1.0); ok {
		t.Fatal("expected no placement without a base")
	}
}

func TestBestPlacement_CarriesRecommendedType(t *testing.T) {
	scorer, threat, _ := newTestScorer(PersonalityBalanced)
	threat.Splat(640, 360, 5, 80)
	snap := Snapshot{
		HasBase: true, BaseX: 640, BaseY: 360,
		Resources: 500,
		Enemies: []EnemyInfo{
			{X: 400, Y: 360, ThreatLevel: 70, Behavior: BehaviorSwarmer, Faction: FactionGrave},
			{X: 420, Y: 380, ThreatLevel: 70, Behavior: BehaviorSwarmer, Faction: FactionGrave},
		},
	}

	plan, ok := scorer.BestPlacement(snap, EmergencyReserve, 1.0)
	if !ok {
		t.Fatal("expected a placement")
	}
	recs := RecommendUnits(snap.Enemies, snap.Resources-EmergencyReserve)
	if len(recs) == 0 || plan.Type != recs[0].Type {
		t.Fatalf("plan type %s does not match top recommendation", plan.Type)
	}
	if plan.Cost != plan.Type.Spec().Cost {
		t.Fatalf("plan cost %d does not match unit cost %d", plan.Cost, plan.Type.Spec().Cost)
	}
}
