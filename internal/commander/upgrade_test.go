package commander

import "testing"

func deployedUnit(id int, dps float64) UnitInfo {
	return UnitInfo{ID: id, Type: UnitGatling, X: 600, Y: 360, Range: 150, DPS: dps}
}

func TestBestUpgrade_MaxedPathsWorthNothing(t *testing.T) {
	ue := NewUpgradeEvaluator(PersonalityBalanced)
	u := deployedUnit(1, 50)
	for i := range u.Levels {
		u.Levels[i] = maxUpgradeLevel
	}
	snap := Snapshot{Units: []UnitInfo{u}, Resources: 10000}

	if _, ok := ue.BestUpgrade(snap, 0.5); ok {
		t.Fatal("expected no upgrade when every path is maxed")
	}
}

func TestBestUpgrade_RespectsBudget(t *testing.T) {
	ue := NewUpgradeEvaluator(PersonalityBalanced)
	snap := Snapshot{Units: []UnitInfo{deployedUnit(1, 50)}, Resources: 34}

	// The cheapest level-0 upgrade is range at 35. One short of it, nothing
	// is affordable.
	if _, ok := ue.BestUpgrade(snap, 0.5); ok {
		t.Fatal("expected no affordable upgrade at 34 resources")
	}

	snap.Resources = 35
	plan, ok := ue.BestUpgrade(snap, 0.5)
	if !ok {
		t.Fatal("expected the range upgrade to be affordable at 35")
	}
	if plan.Path != PathRange || plan.Cost != 35 {
		t.Fatalf("expected the 35-cost range upgrade, got %s for %d", plan.Path, plan.Cost)
	}
}

func TestBestUpgrade_IgnoresEmergencyReserve(t *testing.T) {
	ue := NewUpgradeEvaluator(PersonalityBalanced)
	// Below the emergency reserve but enough for the cheapest upgrade: the
	// reserve floor applies to placements only.
	snap := Snapshot{Units: []UnitInfo{deployedUnit(1, 50)}, Resources: EmergencyReserve - 10}

	if _, ok := ue.BestUpgrade(snap, 0.5); !ok {
		t.Fatal("expected an upgrade despite the balance sitting under the reserve")
	}
}

func TestBestUpgrade_DamageBiasPicksDamagePaths(t *testing.T) {
	aggressive := NewUpgradeEvaluator(PersonalityAggressive)
	snap := Snapshot{Units: []UnitInfo{deployedUnit(1, 50)}, Resources: 10000}

	plan, ok := aggressive.BestUpgrade(snap, 0.5)
	if !ok {
		t.Fatal("expected an upgrade")
	}
	if !pathIsDamage(plan.Path) {
		t.Fatalf("damage-leaning personality chose utility path %s", plan.Path)
	}
}

func TestBestUpgrade_DiminishingReturnsPreferFreshPaths(t *testing.T) {
	ue := NewUpgradeEvaluator(PersonalityBalanced)
	leveled := deployedUnit(1, 50)
	leveled.Levels[PathDamage] = 2
	fresh := deployedUnit(2, 50)
	snap := Snapshot{Units: []UnitInfo{leveled, fresh}, Resources: 10000}

	plan, ok := ue.BestUpgrade(snap, 0.5)
	if !ok {
		t.Fatal("expected an upgrade")
	}
	if plan.UnitID == 1 && plan.Path == PathDamage {
		t.Fatal("level-2 damage path beat the same path at level 0 on a twin unit")
	}
}

func TestBestUpgrade_ScalesValueWithDPS(t *testing.T) {
	ue := NewUpgradeEvaluator(PersonalityBalanced)
	snap := Snapshot{Units: []UnitInfo{deployedUnit(1, 10), deployedUnit(2, 100)}, Resources: 10000}

	plan, ok := ue.BestUpgrade(snap, 0.5)
	if !ok {
		t.Fatal("expected an upgrade")
	}
	if plan.UnitID != 2 {
		t.Fatalf("expected the high-DPS unit to win the upgrade, got unit %d", plan.UnitID)
	}
}

func TestUpgradeBeatsPlacement_Threshold(t *testing.T) {
	placement := PlacementPlan{Score: 70, Cost: 70} // baseline vpc = 1.0

	over := UpgradePlan{ValuePerCost: UpgradeThreshold + 0.01}
	under := UpgradePlan{ValuePerCost: UpgradeThreshold - 0.01}

	if !UpgradeBeatsPlacement(over, placement, true) {
		t.Error("upgrade above the scaled baseline should win")
	}
	if UpgradeBeatsPlacement(under, placement, true) {
		t.Error("upgrade below the scaled baseline should lose")
	}
}

func TestUpgradeBeatsPlacement_NoPlacementUsesFloor(t *testing.T) {
	over := UpgradePlan{ValuePerCost: minUpgradeValue * 2}
	under := UpgradePlan{ValuePerCost: minUpgradeValue / 2}

	if !UpgradeBeatsPlacement(over, PlacementPlan{}, false) {
		t.Error("upgrade above the absolute floor should proceed without a placement")
	}
	if UpgradeBeatsPlacement(under, PlacementPlan{}, false) {
		t.Error("upgrade below the absolute floor should wait")
	}
}
