package commander

// PlacementBias shapes where a personality likes to build.
type PlacementBias struct {
	// DistanceFromBase rewards distance when positive, proximity when
	// negative (defensive personalities hug the base).
	DistanceFromBase float64
	// CoverageVsDamage trades gap-filling (positive) against raw
	// interception value (negative).
	CoverageVsDamage float64
}

// UpgradeBias shapes which upgrade paths a personality favors.
type UpgradeBias struct {
	// DamageVsUtility: 1.0 = pure damage paths, 0.0 = pure utility paths.
	DamageVsUtility float64
	// EarlyVsLate: positive favors upgrading late-game, negative early.
	EarlyVsLate float64
}

// Personality is an immutable bias configuration selected once per AI
// instance. The five canonical variants below are static data, not state.
type Personality struct {
	Name          string
	PlacementBias PlacementBias
	UpgradeBias   UpgradeBias
	RiskTolerance float64 // 0-1; scales humanizer imperfection downward
}

var (
	// PersonalityBalanced takes no strong side on any trade-off.
	PersonalityBalanced = Personality{
		Name:          "balanced",
		PlacementBias: PlacementBias{DistanceFromBase: 0.0, CoverageVsDamage: 0.0},
		UpgradeBias:   UpgradeBias{DamageVsUtility: 0.5, EarlyVsLate: 0.0},
		RiskTolerance: 0.5,
	}

	// PersonalityAggressive pushes units forward and stacks damage.
	PersonalityAggressive = Personality{
		Name:          "aggressive",
		PlacementBias: PlacementBias{DistanceFromBase: 0.35, CoverageVsDamage: -0.3},
		UpgradeBias:   UpgradeBias{DamageVsUtility: 0.85, EarlyVsLate: -0.2},
		RiskTolerance: 0.8,
	}

	// PersonalityDefensive rings the base and fills coverage gaps.
	PersonalityDefensive = Personality{
		Name:          "defensive",
		PlacementBias: PlacementBias{DistanceFromBase: -0.3, CoverageVsDamage: 0.4},
		UpgradeBias:   UpgradeBias{DamageVsUtility: 0.35, EarlyVsLate: 0.1},
		RiskTolerance: 0.25,
	}

	// PersonalityEconomic spends late and leans on cost efficiency.
	PersonalityEconomic = Personality{
		Name:          "economic",
		PlacementBias: PlacementBias{DistanceFromBase: -0.1, CoverageVsDamage: 0.15},
		UpgradeBias:   UpgradeBias{DamageVsUtility: 0.45, EarlyVsLate: 0.35},
		RiskTolerance: 0.35,
	}

	// PersonalityAdaptive sits near balanced but tolerates more risk, so the
	// difficulty adjuster's swings show through faster.
	PersonalityAdaptive = Personality{
		Name:          "adaptive",
		PlacementBias: PlacementBias{DistanceFromBase: 0.1, CoverageVsDamage: 0.1},
		UpgradeBias:   UpgradeBias{DamageVsUtility: 0.55, EarlyVsLate: 0.15},
		RiskTolerance: 0.65,
	}
)

// PersonalityByName returns the canonical variant with the given name, or
// PersonalityBalanced when the name is unknown.
func PersonalityByName(name string) Personality {
	switch name {
	case "aggressive":
		return PersonalityAggressive
	case "defensive":
		return PersonalityDefensive
	case "economic":
		return PersonalityEconomic
	case "adaptive":
		return PersonalityAdaptive
	default:
		return PersonalityBalanced
	}
}
