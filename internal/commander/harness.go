package commander

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// tickDuration is the wall-clock length of one simulation tick (60 TPS).
const tickDuration = time.Second / 60

// baseLeakRadius is how close an enemy must get to the base to leak (px).
const baseLeakRadius = 14.0

// SimEnemy is one live attacker in the harness simulation.
type SimEnemy struct {
	ID          int
	X, Y        float64
	Health      float64
	MaxHealth   float64
	Speed       float64 // px per tick
	ThreatLevel float64 // 0-100
	Behavior    BehaviorType
	Faction     Faction
}

// behaviorSpeeds is the per-tick movement speed per behavior (px).
var behaviorSpeeds = map[BehaviorType]float64{
	BehaviorRusher:     2.0,
	BehaviorSwarmer:    1.4,
	BehaviorJuggernaut: 0.6,
	BehaviorFlanker:    1.6,
	BehaviorShielded:   0.9,
}

// SimUnit is one deployed defensive unit in the harness simulation.
type SimUnit struct {
	ID       int
	Type     UnitType
	X, Y     float64
	Levels   [upgradePathCount]int
	invested int // total resources spent, for sell refunds
}

// EffectiveRange returns range after the range upgrade path.
func (u *SimUnit) EffectiveRange() float64 {
	return u.Type.Spec().Range * (1 + 0.15*float64(u.Levels[PathRange]))
}

// EffectiveDPS returns DPS after the damage-affecting upgrade paths.
func (u *SimUnit) EffectiveDPS() float64 {
	dps := u.Type.Spec().DPS()
	dps *= 1 + 0.25*float64(u.Levels[PathDamage])
	dps *= 1 + 0.20*float64(u.Levels[PathFireRate])
	dps *= 1 + 0.15*float64(u.Levels[PathMultiTarget])
	dps *= 1 + 0.10*float64(u.Levels[PathSpecial])
	return dps
}

// Sim is a headless tower-defense simulation harness. It mirrors the role the
// real game loop plays around the engine: it owns the resource pool, applies
// emitted actions, and feeds the director read-only snapshots. Used by tests,
// the headless reporter, and the viewer.
type Sim struct {
	BaseX, BaseY float64
	BaseHealth   float64 // 0-100
	Resources    int
	Wave         int
	BossWave     bool
	Kills        int

	Enemies []*SimEnemy
	Units   []*SimUnit

	Flow     *LaneField
	Director *Director
	Log      *DecisionLog

	// Emitted holds every action the director committed, in order.
	Emitted []Action

	rng         *rand.Rand
	personality Personality
	laneStarts  [][2]float64
	autoWaves   bool
	spawnQueue  []SimEnemy // pending spawns, released on a stagger
	spawnTimer  int
	tick        int
	nextEnemyID int
	nextUnitID  int
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // seed, base, lanes, resources — applied first
	simOptEntity                      // enemies and units — applied after the director exists
)

// SimOption is a builder function applied to a Sim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*Sim)
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- simulation harness
	}}
}

// WithVerbose enables per-cycle verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.Log = NewDecisionLog(v)
	}}
}

// WithPersonality selects the commander personality.
func WithPersonality(p Personality) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.personality = p
	}}
}

// WithBase positions the base.
func WithBase(x, y float64) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.BaseX, s.BaseY = x, y
	}}
}

// WithLane adds an approach lane from (sx, sy) toward the base.
func WithLane(sx, sy float64) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.laneStarts = append(s.laneStarts, [2]float64{sx, sy})
	}}
}

// WithResources sets the starting balance.
func WithResources(n int) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.Resources = n
	}}
}

// WithWave sets the starting wave number.
func WithWave(n int) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.Wave = n
	}}
}

// WithBossWave flags the current wave as a boss wave.
func WithBossWave() SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.BossWave = true
	}}
}

// WithBaseHealth sets base health (0-100).
func WithBaseHealth(pct float64) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.BaseHealth = pct
	}}
}

// WithAutoWaves makes the sim spawn the next wave once the field is clear.
func WithAutoWaves() SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.autoWaves = true
	}}
}

// WithEnemy places a live enemy at (x, y).
func WithEnemy(x, y, threat float64, behavior BehaviorType, faction Faction) SimOption {
	return SimOption{simOptEntity, func(s *Sim) {
		s.addEnemy(x, y, threat, behavior, faction)
	}}
}

// WithUnit deploys a unit at (x, y) without charging for it.
func WithUnit(t UnitType, x, y float64) SimOption {
	return SimOption{simOptEntity, func(s *Sim) {
		s.addUnit(t, x, y)
	}}
}

// WithUnitLevels deploys a unit with preset upgrade levels.
func WithUnitLevels(t UnitType, x, y float64, levels [upgradePathCount]int) SimOption {
	return SimOption{simOptEntity, func(s *Sim) {
		u := s.addUnit(t, x, y)
		u.Levels = levels
	}}
}

// NewSim constructs a Sim in ordered passes: infrastructure first, then the
// lane field and director, then entities.
func NewSim(opts ...SimOption) *Sim {
	s := &Sim{
		BaseX:       1100,
		BaseY:       360,
		BaseHealth:  100,
		Resources:   300,
		Wave:        1,
		Log:         NewDecisionLog(false),
		personality: PersonalityBalanced,
		rng:         rand.New(rand.NewSource(1)), // #nosec G404 -- simulation harness default
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(s)
		}
	}
	if len(s.laneStarts) == 0 {
		s.laneStarts = [][2]float64{{50, 360}}
	}
	lanes := make([]Lane, 0, len(s.laneStarts))
	for _, ls := range s.laneStarts {
		lanes = append(lanes, Lane{StartX: ls[0], StartY: ls[1], EndX: s.BaseX, EndY: s.BaseY})
	}
	s.Flow = NewLaneField(lanes)
	s.Director = NewDirector(s, s.Flow, s.personality, s.rng, s.Log)
	for _, o := range opts {
		if o.kind == simOptEntity {
			o.fn(s)
		}
	}
	return s
}

func (s *Sim) addEnemy(x, y, threat float64, behavior BehaviorType, faction Faction) *SimEnemy {
	hp := 20 + threat*1.5
	e := &SimEnemy{
		ID:          s.nextEnemyID,
		X:           x,
		Y:           y,
		Health:      hp,
		MaxHealth:   hp,
		Speed:       behaviorSpeeds[behavior],
		ThreatLevel: threat,
		Behavior:    behavior,
		Faction:     faction,
	}
	s.nextEnemyID++
	s.Enemies = append(s.Enemies, e)
	return e
}

func (s *Sim) addUnit(t UnitType, x, y float64) *SimUnit {
	u := &SimUnit{
		ID:       s.nextUnitID,
		Type:     t,
		X:        x,
		Y:        y,
		invested: t.Spec().Cost,
	}
	s.nextUnitID++
	s.Units = append(s.Units, u)
	return u
}

// Snapshot implements SnapshotProvider: a read-only view of the current
// world, rebuilt on every call.
func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{
		BaseX:         s.BaseX,
		BaseY:         s.BaseY,
		BaseHealthPct: s.BaseHealth,
		HasBase:       s.BaseHealth > 0,
		Resources:     s.Resources,
		Wave:          s.Wave,
		BossWave:      s.BossWave,
		Kills:         s.Kills,
		Lanes:         s.Flow.Lanes(),
	}
	for _, e := range s.Enemies {
		snap.Enemies = append(snap.Enemies, EnemyInfo{
			ID:          e.ID,
			X:           e.X,
			Y:           e.Y,
			ThreatLevel: e.ThreatLevel,
			Behavior:    e.Behavior,
			Faction:     e.Faction,
		})
	}
	for _, u := range s.Units {
		snap.Units = append(snap.Units, UnitInfo{
			ID:     u.ID,
			Type:   u.Type,
			X:      u.X,
			Y:      u.Y,
			Range:  u.EffectiveRange(),
			DPS:    u.EffectiveDPS(),
			Levels: u.Levels,
		})
	}
	return snap
}

// CurrentTick returns the current simulation tick.
func (s *Sim) CurrentTick() int {
	return s.tick
}

// Now returns the simulated wall-clock time.
func (s *Sim) Now() time.Duration {
	return time.Duration(s.tick) * tickDuration
}

// RunTicks advances the simulation n ticks.
func (s *Sim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		s.tick++
		s.runOneTick()
	}
}

// RunUntil advances up to maxTicks, stopping early when predicate returns
// true. Returns the tick at which it was satisfied, or -1.
func (s *Sim) RunUntil(predicate func(*Sim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		s.tick++
		s.runOneTick()
		if predicate(s) {
			return s.tick
		}
	}
	return -1
}

// runOneTick: move enemies, resolve unit fire, spawn, then let the director
// decide and apply whatever it emits.
func (s *Sim) runOneTick() {
	s.Flow.Tick()
	s.moveEnemies()
	s.resolveFire()
	s.releaseSpawns()

	if a, ok := s.Director.Update(s.tick, s.Now()); ok {
		s.Apply(a)
		s.Emitted = append(s.Emitted, a)
	}

	if s.autoWaves && len(s.Enemies) == 0 && len(s.spawnQueue) == 0 {
		s.startNextWave()
	}
}

// moveEnemies advances each enemy along the flow field toward the base.
// Enemies that reach the base leak: the base takes damage and they despawn.
func (s *Sim) moveEnemies() {
	alive := s.Enemies[:0]
	for _, e := range s.Enemies {
		dx, dy := s.Flow.FlowAt(e.X, e.Y)
		if dx == 0 && dy == 0 {
			// Off every lane — head straight for the base.
			dist := math.Hypot(s.BaseX-e.X, s.BaseY-e.Y)
			if dist > 0 {
				dx = (s.BaseX - e.X) / dist
				dy = (s.BaseY - e.Y) / dist
			}
		}
		e.X += dx * e.Speed
		e.Y += dy * e.Speed
		s.Flow.RecordPassage(e.X, e.Y)

		if math.Hypot(s.BaseX-e.X, s.BaseY-e.Y) <= baseLeakRadius {
			s.BaseHealth -= e.ThreatLevel / 10
			if s.BaseHealth < 0 {
				s.BaseHealth = 0
			}
			s.Log.Add(s.tick, "wave", "leak", fmt.Sprintf("enemy %d leaked, base at %.0f%%", e.ID, s.BaseHealth), s.BaseHealth)
			continue
		}
		alive = append(alive, e)
	}
	s.Enemies = alive
}

// resolveFire applies each unit's DPS to the nearest enemy in range. Kills
// award a bounty back into the shared resource pool.
func (s *Sim) resolveFire() {
	for _, u := range s.Units {
		r := u.EffectiveRange()
		var target *SimEnemy
		best := r
		for _, e := range s.Enemies {
			d := math.Hypot(e.X-u.X, e.Y-u.Y)
			if d <= best {
				best = d
				target = e
			}
		}
		if target == nil {
			continue
		}
		target.Health -= u.EffectiveDPS() / 60.0
	}

	alive := s.Enemies[:0]
	for _, e := range s.Enemies {
		if e.Health > 0 {
			alive = append(alive, e)
			continue
		}
		s.Kills++
		s.Resources += 10 + int(e.ThreatLevel/4)
	}
	s.Enemies = alive
}

// releaseSpawns drips queued enemies onto the field on a stagger.
func (s *Sim) releaseSpawns() {
	if len(s.spawnQueue) == 0 {
		return
	}
	s.spawnTimer--
	if s.spawnTimer > 0 {
		return
	}
	next := s.spawnQueue[0]
	s.spawnQueue = s.spawnQueue[1:]
	s.addEnemy(next.X, next.Y, next.ThreatLevel, next.Behavior, next.Faction)
	s.spawnTimer = 30 + s.rng.Intn(30)
}

// startNextWave queues the next wave's enemies at the lane spawn points.
func (s *Sim) startNextWave() {
	s.Wave++
	s.BossWave = s.Wave%5 == 0
	count := 3 + s.Wave
	behaviors := AllBehaviors()
	for i := 0; i < count; i++ {
		ls := s.laneStarts[s.rng.Intn(len(s.laneStarts))]
		threat := 20 + float64(s.Wave)*4 + s.rng.Float64()*20
		if threat > 100 {
			threat = 100
		}
		s.spawnQueue = append(s.spawnQueue, SimEnemy{
			X:           ls[0],
			Y:           ls[1],
			ThreatLevel: threat,
			Behavior:    behaviors[s.rng.Intn(len(behaviors))],
			Faction:     Faction(s.rng.Intn(3)),
		})
	}
	if s.BossWave {
		ls := s.laneStarts[0]
		s.spawnQueue = append(s.spawnQueue, SimEnemy{
			X:           ls[0],
			Y:           ls[1],
			ThreatLevel: 100,
			Behavior:    BehaviorJuggernaut,
			Faction:     FactionIron,
		})
	}
	s.spawnTimer = 60
	s.Log.Add(s.tick, "wave", "start", fmt.Sprintf("wave %d, %d enemies queued", s.Wave, len(s.spawnQueue)), float64(s.Wave))
}

// Apply performs an emitted action against the simulation state. This is the
// gameplay layer's half of the contract: it owns the resource pool and the
// actual mutation; unaffordable or stale actions are dropped silently.
func (s *Sim) Apply(a Action) {
	switch a.Kind {
	case ActionPlaceUnit:
		cost := a.UnitType.Spec().Cost
		if s.Resources < cost {
			return
		}
		x := clamp(a.X, 0, worldWidth)
		y := clamp(a.Y, 0, worldHeight)
		s.Resources -= cost
		s.addUnit(a.UnitType, x, y)
		s.Log.Add(s.tick, "placement", "applied", a.String(), a.Priority)
	case ActionUpgradeUnit:
		u := s.unitByID(a.UnitID)
		if u == nil {
			return
		}
		cost := UpgradeCost(a.Path, u.Levels[a.Path])
		if cost == 0 || s.Resources < cost {
			return
		}
		s.Resources -= cost
		u.invested += cost
		u.Levels[a.Path]++
		s.Log.Add(s.tick, "upgrade", "applied", a.String(), a.Priority)
	case ActionSellUnit:
		u := s.unitByID(a.UnitID)
		if u == nil {
			return
		}
		s.Resources += u.invested / 2
		s.removeUnit(a.UnitID)
		s.Log.Add(s.tick, "placement", "sold", a.String(), a.Priority)
	}
}

func (s *Sim) unitByID(id int) *SimUnit {
	for _, u := range s.Units {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *Sim) removeUnit(id int) {
	for i, u := range s.Units {
		if u.ID == id {
			s.Units = append(s.Units[:i], s.Units[i+1:]...)
			return
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
