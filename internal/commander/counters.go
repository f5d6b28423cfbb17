package commander

import "sort"

// effectivenessMatrix maps (behavior, unit type) to a counter multiplier.
// Values run roughly 0.5–1.5: above 1.0 the unit type is a good answer to the
// behavior, below 1.0 a poor one. Immutable configuration data.
var effectivenessMatrix = map[BehaviorType]map[UnitType]float64{
	BehaviorRusher: {
		UnitGatling: 1.1,
		UnitCannon:  0.7,
		UnitFrost:   1.5, // slow them before they reach the base
		UnitTesla:   1.0,
		UnitMissile: 0.8,
	},
	BehaviorSwarmer: {
		UnitGatling: 1.3,
		UnitCannon:  1.1, // splash
		UnitFrost:   0.9,
		UnitTesla:   1.5, // chains across the pack
		UnitMissile: 0.5,
	},
	BehaviorJuggernaut: {
		UnitGatling: 0.6,
		UnitCannon:  1.4,
		UnitFrost:   1.0,
		UnitTesla:   0.8,
		UnitMissile: 1.5,
	},
	BehaviorFlanker: {
		UnitGatling: 1.0,
		UnitCannon:  0.8,
		UnitFrost:   1.1,
		UnitTesla:   0.9,
		UnitMissile: 1.3, // range covers the wide arc
	},
	BehaviorShielded: {
		UnitGatling: 0.5, // small hits waste on the shield
		UnitCannon:  1.3,
		UnitFrost:   0.8,
		UnitTesla:   1.2,
		UnitMissile: 1.4,
	},
}

// Effectiveness returns the counter multiplier for a unit type against a
// behavior, or 1.0 for an unknown pairing.
func Effectiveness(b BehaviorType, u UnitType) float64 {
	if row, ok := effectivenessMatrix[b]; ok {
		if v, ok := row[u]; ok {
			return v
		}
	}
	return 1.0
}

// UnitRecommendation is one ranked entry from the counter selector.
type UnitRecommendation struct {
	Type  UnitType
	Score float64
}

// RecommendUnits ranks unit types against the current threat composition.
// Pure and deterministic: same threats in, same ranking out. budget filters
// out unaffordable types entirely; pass a negative budget to rank everything.
//
// Per type: sum over behaviors of eff * count * (summed threat / 100), plus a
// cost-efficiency bonus of (damage * fireRate / cost) * 10. Ties break toward
// the cheaper type.
func RecommendUnits(threats []EnemyInfo, budget int) []UnitRecommendation {
	counts := make(map[BehaviorType]int, behaviorTypeCount)
	threatSums := make(map[BehaviorType]float64, behaviorTypeCount)
	for _, t := range threats {
		counts[t.Behavior]++
		threatSums[t.Behavior] += t.ThreatLevel
	}

	recs := make([]UnitRecommendation, 0, unitTypeCount)
	for _, ut := range AllUnitTypes() {
		spec := ut.Spec()
		if budget >= 0 && spec.Cost > budget {
			continue
		}
		score := 0.0
		for _, b := range AllBehaviors() {
			n := counts[b]
			if n == 0 {
				continue
			}
			score += Effectiveness(b, ut) * float64(n) * threatSums[b] / 100.0
		}
		score += spec.Damage * spec.FireRate / float64(spec.Cost) * 10.0
		recs = append(recs, UnitRecommendation{Type: ut, Score: score})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].Type.Spec().Cost < recs[j].Type.Spec().Cost
	})
	return recs
}
