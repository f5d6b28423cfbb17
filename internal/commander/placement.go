package commander

import "math"

// PlacementPlan is a scored placement candidate: where to build, what to
// build, and what the scorer thinks it is worth.
type PlacementPlan struct {
	X, Y  float64
	Score float64
	Type  UnitType
	Cost  int
}

// PlacementScorer turns the threat/coverage grids, the flow field, and a
// personality into a single best placement per cycle. It holds no per-cycle
// state: everything transient comes in through the snapshot.
type PlacementScorer struct {
	threat      *InfluenceGrid
	coverage    *InfluenceGrid
	flow        FlowSampler
	personality Personality
}

// NewPlacementScorer wires the scorer to its read-only inputs.
func NewPlacementScorer(threat, coverage *InfluenceGrid, flow FlowSampler, p Personality) *PlacementScorer {
	return &PlacementScorer{threat: threat, coverage: coverage, flow: flow, personality: p}
}

// ScoreAt computes the desirability of placing a unit at (x, y).
//
//	interception = threat * (1 + traffic) * weight
//	gap bonus    = inverse of existing coverage; overlap penalty subtracted
//	distance     = personality bias on normalized distance from base
//	approach     = multiplicative penalty for candidates off every lane
func (ps *PlacementScorer) ScoreAt(x, y float64, snap Snapshot) float64 {
	threat := ps.threat.Sample(x, y)
	traffic := 0.0
	if ps.flow != nil {
		traffic = ps.flow.TrafficAt(x, y)
	}
	interception := threat * (1 + traffic) * threatInterceptWeight

	cov := ps.coverage.Sample(x, y)
	coverageGap := coverageGapWeight / (1 + cov)
	overlapPenalty := cov * coverageOverlapPenalty

	cvd := ps.personality.PlacementBias.CoverageVsDamage
	interception *= 1 - 0.4*cvd
	coverageGap *= 1 + 0.8*cvd

	norm := 0.0
	if snap.HasBase {
		norm = math.Hypot(x-snap.BaseX, y-snap.BaseY) / maxPlacementRadius
		if norm > 1 {
			norm = 1
		}
	}
	distanceBias := ps.personality.PlacementBias.DistanceFromBase * norm
	if ps.personality.PlacementBias.DistanceFromBase < 0 {
		distanceBias *= defensiveDistanceWeight
	}
	distanceFactor := 1 + distanceBias
	if distanceFactor < 0.1 {
		distanceFactor = 0.1
	}

	approach := 1.0
	if len(snap.Lanes) > 0 {
		nearest := math.MaxFloat64
		for _, l := range snap.Lanes {
			if d := l.PerpDistance(x, y); d < nearest {
				nearest = d
			}
		}
		if nearest > approachPathTolerance {
			approach = approachPathPenalty
		}
	}

	return (interception + coverageGap - overlapPenalty) * distanceFactor * approach
}

// BestPlacement scans candidate positions around the base and returns the
// highest-scoring viable one together with a unit-type recommendation.
// Returns false in the legitimate "wait" cases: nothing scores above zero, or
// no unit type is affordable above the emergency reserve.
//
// reserve is the resource floor to respect (the emergency reserve, already
// scaled by the economy adjustment). accuracyMul below 1.0 coarsens the
// search grid — the difficulty adjuster's way of making the commander
// slightly less precise without touching balance.
func (ps *PlacementScorer) BestPlacement(snap Snapshot, reserve int, accuracyMul float64) (PlacementPlan, bool) {
	if !snap.HasBase {
		return PlacementPlan{}, false
	}

	budget := snap.Resources - reserve
	if budget < 0 {
		// A negative budget would read as "rank everything" below.
		budget = 0
	}
	recs := RecommendUnits(snap.Enemies, budget)
	if len(recs) == 0 {
		return PlacementPlan{}, false
	}
	chosen := recs[0]

	stride := 1
	if accuracyMul < 1.0 {
		stride = 2
	}

	best := PlacementPlan{Score: 0}
	found := false
	for row := 0; row < ps.threat.Rows(); row += stride {
		for col := 0; col < ps.threat.Cols(); col += stride {
			x, y := ps.threat.CellCenter(col, row)
			if math.Hypot(x-snap.BaseX, y-snap.BaseY) > maxPlacementRadius {
				continue
			}
			if tooCloseToUnit(x, y, snap.Units) {
				continue
			}
			score := ps.ScoreAt(x, y, snap)
			if score <= 0 {
				continue
			}
			if !found || score > best.Score {
				best = PlacementPlan{X: x, Y: y, Score: score}
				found = true
			}
		}
	}
	if !found {
		return PlacementPlan{}, false
	}

	best.Type = chosen.Type
	best.Cost = chosen.Type.Spec().Cost
	return best, true
}

// tooCloseToUnit reports whether (x, y) violates the minimum spacing to any
// existing unit. Such positions are excluded from candidate generation
// entirely, never scored.
func tooCloseToUnit(x, y float64, units []UnitInfo) bool {
	for _, u := range units {
		if math.Hypot(x-u.X, y-u.Y) < MinTurretDistance {
			return true
		}
	}
	return false
}
