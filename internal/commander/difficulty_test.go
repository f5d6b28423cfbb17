package commander

import (
	"math"
	"testing"
)

func TestCalculatePerformance_ComponentWeights(t *testing.T) {
	// Full health, full progress, capped efficiency should pin the score at 100.
	perfect := PerformanceMetrics{HealthPct: 100, Wave: 20, TargetWave: 20, Kills: 200, UnitsDeployed: 5}
	if got := CalculatePerformance(perfect); got != 100 {
		t.Fatalf("expected perfect run to score 100, got %v", got)
	}

	// Health only: 50% health is worth 20 points.
	healthOnly := PerformanceMetrics{HealthPct: 50, TargetWave: 20}
	if got := CalculatePerformance(healthOnly); math.Abs(got-20) > 1e-9 {
		t.Fatalf("expected health-only score of 20, got %v", got)
	}

	// Zero units deployed must not divide by zero.
	noUnits := PerformanceMetrics{HealthPct: 100, Wave: 10, TargetWave: 20, Kills: 50}
	if got := CalculatePerformance(noUnits); math.Abs(got-55) > 1e-9 {
		t.Fatalf("expected 40 health + 15 progress = 55, got %v", got)
	}
}

func TestCalculatePerformance_ClampsHealth(t *testing.T) {
	over := PerformanceMetrics{HealthPct: 150, TargetWave: 20}
	under := PerformanceMetrics{HealthPct: -10, TargetWave: 20}
	if got := CalculatePerformance(over); math.Abs(got-40) > 1e-9 {
		t.Errorf("expected overhealed score of 40, got %v", got)
	}
	if got := CalculatePerformance(under); got != 0 {
		t.Errorf("expected negative health to score 0, got %v", got)
	}
}

func TestDifficultyAdjuster_EmptyWindowIsNeutral(t *testing.T) {
	da := NewDifficultyAdjuster()

	if _, ok := da.Average(); ok {
		t.Fatal("expected no average from an empty window")
	}
	if got := da.GetAdjustment(); got != NeutralAdjustment {
		t.Fatalf("expected neutral adjustment from an empty window, got %+v", got)
	}
}

func TestDifficultyAdjuster_FIFOEviction(t *testing.T) {
	da := NewDifficultyAdjuster()

	// Fill the window with 10s, then push one 90. The oldest 10 must fall out,
	// leaving an average of (10*4 + 90) / 5 = 26.
	for i := 0; i < performanceWindow; i++ {
		da.RecordPerformance(10)
	}
	da.RecordPerformance(90)

	avg, ok := da.Average()
	if !ok {
		t.Fatal("expected samples in the window")
	}
	if math.Abs(avg-26) > 1e-9 {
		t.Fatalf("expected average 26 after eviction, got %v", avg)
	}
}

func TestDifficultyAdjuster_PartialWindowAverages(t *testing.T) {
	da := NewDifficultyAdjuster()
	da.RecordPerformance(40)
	da.RecordPerformance(60)

	avg, ok := da.Average()
	if !ok || math.Abs(avg-50) > 1e-9 {
		t.Fatalf("expected average 50 over two samples, got %v (ok=%v)", avg, ok)
	}
}

func TestDifficultyAdjuster_Tiers(t *testing.T) {
	cases := []struct {
		name  string
		score float64
		want  Adjustment
	}{
		{"struggling", 20, Adjustment{ReactionMul: 0.7, AccuracyMul: 1.3, EconomyMul: 1.2}},
		{"weak", 45, Adjustment{ReactionMul: 0.85, AccuracyMul: 1.15, EconomyMul: 1.1}},
		{"steady", 60, NeutralAdjustment},
		{"dominating", 85, Adjustment{ReactionMul: 1.2, AccuracyMul: 0.9, EconomyMul: 0.95}},
	}

	for _, tc := range cases {
		da := NewDifficultyAdjuster()
		da.RecordPerformance(tc.score)
		if got := da.GetAdjustment(); got != tc.want {
			t.Errorf("%s (avg=%v): expected %+v, got %+v", tc.name, tc.score, tc.want, got)
		}
	}
}

func TestDifficultyAdjuster_TierBoundaries(t *testing.T) {
	// Boundary averages fall in the milder tier: 30 and 50 are not "below",
	// 70 is not "above".
	for _, score := range []float64{30, 50, 70} {
		da := NewDifficultyAdjuster()
		da.RecordPerformance(score)
		got := da.GetAdjustment()
		switch score {
		case 30:
			if got != (Adjustment{ReactionMul: 0.85, AccuracyMul: 1.15, EconomyMul: 1.1}) {
				t.Errorf("avg=30: expected weak tier, got %+v", got)
			}
		case 50, 70:
			if got != NeutralAdjustment {
				t.Errorf("avg=%v: expected neutral tier, got %+v", score, got)
			}
		}
	}
}
