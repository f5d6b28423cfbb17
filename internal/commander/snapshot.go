package commander

import "math"

// EnemyInfo is the read-only view of one live enemy in a world snapshot.
type EnemyInfo struct {
	ID          int
	X, Y        float64
	ThreatLevel float64 // 0-100
	Behavior    BehaviorType
	Faction     Faction
}

// UnitInfo is the read-only view of one deployed defensive unit.
type UnitInfo struct {
	ID     int
	Type   UnitType
	X, Y   float64
	Range  float64
	DPS    float64
	Levels [upgradePathCount]int // current level per upgrade path
}

// Lane is one known enemy approach path, from spawn toward the base.
type Lane struct {
	StartX, StartY float64
	EndX, EndY     float64
}

// PerpDistance returns the perpendicular distance from (px,py) to this lane
// segment, clamped to the segment endpoints.
func (l Lane) PerpDistance(px, py float64) float64 {
	dx := l.EndX - l.StartX
	dy := l.EndY - l.StartY
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-l.StartX, py-l.StartY)
	}
	t := ((px-l.StartX)*dx + (py-l.StartY)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	cx := l.StartX + t*dx
	cy := l.StartY + t*dy
	return math.Hypot(px-cx, py-cy)
}

// Snapshot is the read-only world state the director observes each cycle.
// The engine never mutates anything reachable from a Snapshot; in particular
// the resource balance is owned by the gameplay layer and only read here.
type Snapshot struct {
	Enemies []EnemyInfo
	Units   []UnitInfo
	Lanes   []Lane

	BaseX, BaseY  float64
	BaseHealthPct float64 // 0-100; <= 0 means the base is gone
	HasBase       bool    // false short-circuits the decision cycle

	Resources int
	Wave      int
	BossWave  bool
	Kills     int // cumulative kills this game, for performance scoring
}

// SnapshotProvider supplies the current world state on demand.
type SnapshotProvider interface {
	Snapshot() Snapshot
}

// FlowSampler exposes the externally produced flow field. The engine only
// reads it; generating the field is someone else's job.
type FlowSampler interface {
	// TrafficAt returns enemy passage density at a world point, >= 0.
	TrafficAt(x, y float64) float64
	// FlowAt returns the normalized flow direction at a world point, or
	// (0,0) where no flow is defined.
	FlowAt(x, y float64) (dx, dy float64)
}

// Rand is the injectable randomness source used by the humanizer and the
// viewer commentary. *math/rand.Rand satisfies it; tests supply scripted
// sequences instead.
type Rand interface {
	Float64() float64
	Intn(n int) int
}
