package commander

import "math"

// trafficDecayPerTick bleeds recorded passage heat so traffic readings track
// the recent past, not the whole game.
const trafficDecayPerTick = 0.995

// laneBaselineTraffic seeds each lane with a resting density so interception
// scoring works before the first enemy ever walks it.
const laneBaselineTraffic = 0.5

// LaneField is the harness's concrete FlowSampler: straight approach lanes
// toward the base plus a decaying passage-density grid. The decision engine
// only ever sees it through the FlowSampler interface — it consumes the
// field, it does not generate pathfinding.
type LaneField struct {
	lanes   []Lane
	traffic *InfluenceGrid
}

// NewLaneField builds a field over the standard world size and seeds each
// lane with baseline traffic.
func NewLaneField(lanes []Lane) *LaneField {
	f := &LaneField{
		lanes:   lanes,
		traffic: NewInfluenceGrid(worldWidth, worldHeight, influenceCellSize),
	}
	for _, l := range lanes {
		length := math.Hypot(l.EndX-l.StartX, l.EndY-l.StartY)
		steps := int(length / influenceCellSize)
		if steps < 1 {
			steps = 1
		}
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			x := l.StartX + t*(l.EndX-l.StartX)
			y := l.StartY + t*(l.EndY-l.StartY)
			f.traffic.Splat(x, y, 1, laneBaselineTraffic)
		}
	}
	return f
}

// Lanes returns the approach lanes.
func (f *LaneField) Lanes() []Lane {
	return f.lanes
}

// RecordPassage marks an enemy moving through a world point this tick.
func (f *LaneField) RecordPassage(x, y float64) {
	f.traffic.Splat(x, y, 0, 0.05)
}

// Tick applies per-tick traffic decay.
func (f *LaneField) Tick() {
	f.traffic.Decay(trafficDecayPerTick)
}

// TrafficAt returns passage density at a world point.
func (f *LaneField) TrafficAt(x, y float64) float64 {
	return f.traffic.Sample(x, y)
}

// FlowAt returns the normalized advance direction of the nearest lane, or
// (0,0) far from every lane.
func (f *LaneField) FlowAt(x, y float64) (float64, float64) {
	var nearest *Lane
	best := math.MaxFloat64
	for i := range f.lanes {
		if d := f.lanes[i].PerpDistance(x, y); d < best {
			best = d
			nearest = &f.lanes[i]
		}
	}
	if nearest == nil || best > approachPathTolerance*2 {
		return 0, 0
	}
	dx := nearest.EndX - nearest.StartX
	dy := nearest.EndY - nearest.StartY
	length := math.Hypot(dx, dy)
	if length == 0 {
		return 0, 0
	}
	return dx / length, dy / length
}
