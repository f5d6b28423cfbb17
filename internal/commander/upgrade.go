package commander

// UpgradePlan is the best upgrade found for the current cycle.
type UpgradePlan struct {
	UnitID       int
	Path         UpgradePath
	ValuePerCost float64
	Cost         int
}

// UpgradeEvaluator scores deployed units for upgrade value versus the cost of
// a new placement. Personality biases do all the early/late shaping — there is
// no wave special-casing in here.
type UpgradeEvaluator struct {
	personality Personality
}

// NewUpgradeEvaluator creates an evaluator with the given personality biases.
func NewUpgradeEvaluator(p Personality) *UpgradeEvaluator {
	return &UpgradeEvaluator{personality: p}
}

// pathIsDamage reports whether a path counts toward the "damage" side of the
// damage-vs-utility bias.
func pathIsDamage(p UpgradePath) bool {
	return p == PathDamage || p == PathFireRate
}

// pathValue returns the raw (pre-bias) value of buying the next level on a
// path for a unit. A maxed path is worth exactly zero.
func pathValue(u UnitInfo, path UpgradePath) float64 {
	level := u.Levels[path]
	if level >= maxUpgradeLevel {
		return 0
	}
	// Later levels on the same path give diminishing returns.
	diminish := 1.0 / float64(level+1)
	switch path {
	case PathDamage:
		return u.DPS * 0.30 * diminish
	case PathRange:
		return u.DPS * 0.18 * diminish
	case PathFireRate:
		return u.DPS * 0.25 * diminish
	case PathMultiTarget:
		return u.DPS * 0.22 * diminish
	case PathSpecial:
		return u.DPS * 0.35 * diminish
	default:
		return 0
	}
}

// BestUpgrade evaluates every affordable upgrade across all deployed units
// and returns the one with the highest biased value-per-cost. waveProgress is
// the normalized 0-1 progress through the game, which the early-vs-late bias
// scales with. Upgrades check the raw balance, not the emergency reserve —
// the reserve exists to keep an emergency build possible, and consolidating
// an existing unit is exactly what the reserve is for when builds are out of
// reach. Returns false when no upgrade is affordable or every path is maxed.
func (ue *UpgradeEvaluator) BestUpgrade(snap Snapshot, waveProgress float64) (UpgradePlan, bool) {
	budget := snap.Resources

	dvu := ue.personality.UpgradeBias.DamageVsUtility
	// lateFactor swings from (1 - bias) at wave start to (1 + bias) at end.
	lateFactor := 1 + ue.personality.UpgradeBias.EarlyVsLate*(2*waveProgress-1)
	if lateFactor < 0.1 {
		lateFactor = 0.1
	}

	best := UpgradePlan{}
	found := false
	for _, u := range snap.Units {
		for _, path := range AllUpgradePaths() {
			cost := UpgradeCost(path, u.Levels[path])
			if cost == 0 || cost > budget {
				continue
			}
			value := pathValue(u, path)
			if value <= 0 {
				continue
			}
			if pathIsDamage(path) {
				value *= 0.5 + dvu
			} else {
				value *= 1.5 - dvu
			}
			value *= lateFactor

			vpc := value / float64(cost)
			if !found || vpc > best.ValuePerCost {
				best = UpgradePlan{UnitID: u.ID, Path: path, ValuePerCost: vpc, Cost: cost}
				found = true
			}
		}
	}
	return best, found
}

// UpgradeBeatsPlacement decides the upgrade-vs-placement trade. Both sides
// are reduced to value-per-cost: the placement baseline is its score divided
// by its unit cost, the upgrade must clear that baseline scaled by
// UpgradeThreshold. With no placement on the table the upgrade only has to
// clear an absolute floor.
func UpgradeBeatsPlacement(up UpgradePlan, placement PlacementPlan, hasPlacement bool) bool {
	if !hasPlacement {
		return up.ValuePerCost > minUpgradeValue
	}
	if placement.Cost <= 0 {
		return up.ValuePerCost > minUpgradeValue
	}
	baseline := placement.Score / float64(placement.Cost)
	return up.ValuePerCost > baseline*UpgradeThreshold
}
