package commander

// --- Unit types ---

// UnitType identifies a deployable defensive unit.
type UnitType int

const (
	UnitGatling UnitType = iota
	UnitCannon
	UnitFrost
	UnitTesla
	UnitMissile
	unitTypeCount // sentinel
)

func (u UnitType) String() string {
	switch u {
	case UnitGatling:
		return "gatling"
	case UnitCannon:
		return "cannon"
	case UnitFrost:
		return "frost"
	case UnitTesla:
		return "tesla"
	case UnitMissile:
		return "missile"
	default:
		return "unknown"
	}
}

// AllUnitTypes lists every deployable type in a stable order.
func AllUnitTypes() []UnitType {
	return []UnitType{UnitGatling, UnitCannon, UnitFrost, UnitTesla, UnitMissile}
}

// UnitSpec holds the static combat profile of a unit type.
type UnitSpec struct {
	Cost     int
	Damage   float64 // damage per shot
	FireRate float64 // shots per second
	Range    float64 // px
}

// DPS returns the nominal damage per second for this spec.
func (s UnitSpec) DPS() float64 {
	return s.Damage * s.FireRate
}

var unitSpecs = map[UnitType]UnitSpec{
	UnitGatling: {Cost: 70, Damage: 5, FireRate: 5.0, Range: 120},
	UnitCannon:  {Cost: 120, Damage: 30, FireRate: 0.8, Range: 150},
	UnitFrost:   {Cost: 90, Damage: 2, FireRate: 1.5, Range: 110},
	UnitTesla:   {Cost: 140, Damage: 12, FireRate: 2.0, Range: 100},
	UnitMissile: {Cost: 200, Damage: 45, FireRate: 0.6, Range: 220},
}

// Spec returns the static combat profile for this unit type.
func (u UnitType) Spec() UnitSpec {
	return unitSpecs[u]
}

// CheapestUnitCost returns the lowest deploy cost across all unit types.
func CheapestUnitCost() int {
	cheapest := 0
	for _, t := range AllUnitTypes() {
		c := t.Spec().Cost
		if cheapest == 0 || c < cheapest {
			cheapest = c
		}
	}
	return cheapest
}

// --- Enemy behaviors ---

// BehaviorType classifies how an enemy approaches the base.
type BehaviorType int

const (
	BehaviorRusher     BehaviorType = iota // fast, straight at the base
	BehaviorSwarmer                        // numerous, individually weak
	BehaviorJuggernaut                     // slow, heavily armored
	BehaviorFlanker                        // drifts off-lane before converging
	BehaviorShielded                       // damage-gated until shield breaks
	behaviorTypeCount                      // sentinel
)

func (b BehaviorType) String() string {
	switch b {
	case BehaviorRusher:
		return "rusher"
	case BehaviorSwarmer:
		return "swarmer"
	case BehaviorJuggernaut:
		return "juggernaut"
	case BehaviorFlanker:
		return "flanker"
	case BehaviorShielded:
		return "shielded"
	default:
		return "unknown"
	}
}

// AllBehaviors lists every behavior type in a stable order.
func AllBehaviors() []BehaviorType {
	return []BehaviorType{BehaviorRusher, BehaviorSwarmer, BehaviorJuggernaut, BehaviorFlanker, BehaviorShielded}
}

// --- Factions ---

// Faction identifies which army an enemy belongs to. Factions modulate how
// threatening an individual enemy reads on the threat grid.
type Faction int

const (
	FactionGrave Faction = iota // undead hordes — standard threat
	FactionIron                 // mechanized — hits harder than it looks
	FactionWild                 // beasts — fast but fragile
)

func (f Faction) String() string {
	switch f {
	case FactionGrave:
		return "grave"
	case FactionIron:
		return "iron"
	case FactionWild:
		return "wild"
	default:
		return "unknown"
	}
}

// factionThreatModifiers scales per-enemy threat when aggregating sectors and
// the threat grid. Immutable configuration, never mutated at runtime.
var factionThreatModifiers = map[Faction]float64{
	FactionGrave: 1.0,
	FactionIron:  1.25,
	FactionWild:  0.85,
}

// ThreatModifier returns the threat scaling for this faction.
func (f Faction) ThreatModifier() float64 {
	if m, ok := factionThreatModifiers[f]; ok {
		return m
	}
	return 1.0
}

// --- Upgrade paths ---

// UpgradePath identifies one of the five upgrade tracks on a deployed unit.
type UpgradePath int

const (
	PathDamage UpgradePath = iota
	PathRange
	PathFireRate
	PathMultiTarget
	PathSpecial
	upgradePathCount // sentinel
)

func (p UpgradePath) String() string {
	switch p {
	case PathDamage:
		return "damage"
	case PathRange:
		return "range"
	case PathFireRate:
		return "fire-rate"
	case PathMultiTarget:
		return "multi-target"
	case PathSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// AllUpgradePaths lists every upgrade path in a stable order.
func AllUpgradePaths() []UpgradePath {
	return []UpgradePath{PathDamage, PathRange, PathFireRate, PathMultiTarget, PathSpecial}
}

// maxUpgradeLevel is the level cap per path. A maxed path is never recommended.
const maxUpgradeLevel = 3

// upgradeBaseCosts is the level-1 cost per path; each further level costs
// base * (level+1).
var upgradeBaseCosts = map[UpgradePath]int{
	PathDamage:      40,
	PathRange:       35,
	PathFireRate:    45,
	PathMultiTarget: 60,
	PathSpecial:     80,
}

// UpgradeCost returns the cost to buy the next level on this path given the
// current level, or 0 if the path is already maxed.
func UpgradeCost(path UpgradePath, currentLevel int) int {
	if currentLevel >= maxUpgradeLevel {
		return 0
	}
	return upgradeBaseCosts[path] * (currentLevel + 1)
}
