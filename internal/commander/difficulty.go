package commander

// PerformanceMetrics feeds one performance sample into the adjuster,
// typically at the end of a wave.
type PerformanceMetrics struct {
	HealthPct     float64 // base health remaining, 0-100
	Wave          int     // wave just finished
	TargetWave    int     // the wave count considered a "full" game
	Kills         int
	UnitsDeployed int
}

// Adjustment is the multiplier set the adjuster hands back to the engine.
// These tune the commander's own reaction speed, precision, and spending
// caution — never raw game balance.
type Adjustment struct {
	ReactionMul float64 // scales humanizer reaction delay
	AccuracyMul float64 // scales placement precision and jitter
	EconomyMul  float64 // scales the effective emergency reserve
}

// NeutralAdjustment is what an empty window yields.
var NeutralAdjustment = Adjustment{ReactionMul: 1.0, AccuracyMul: 1.0, EconomyMul: 1.0}

// DifficultyAdjuster tracks recent performance in a fixed-capacity rolling
// window and maps the average to one of four multiplier tiers. The ring
// buffer is its only persisted state.
type DifficultyAdjuster struct {
	samples [performanceWindow]float64
	head    int
	count   int
}

// NewDifficultyAdjuster starts with an empty window (neutral multipliers).
func NewDifficultyAdjuster() *DifficultyAdjuster {
	return &DifficultyAdjuster{}
}

// CalculatePerformance scores one wave's outcome in [0, 100]: health is worth
// up to 40 points, wave progress up to 30, kill-per-unit efficiency (capped)
// up to 30.
func CalculatePerformance(m PerformanceMetrics) float64 {
	score := 0.0

	h := m.HealthPct
	if h < 0 {
		h = 0
	} else if h > 100 {
		h = 100
	}
	score += h * 0.4

	if m.TargetWave > 0 {
		progress := float64(m.Wave) / float64(m.TargetWave)
		if progress > 1 {
			progress = 1
		}
		score += progress * 30
	}

	if m.UnitsDeployed > 0 {
		efficiency := float64(m.Kills) / float64(m.UnitsDeployed)
		if efficiency > 10 {
			efficiency = 10
		}
		score += efficiency * 3
	}

	if score > 100 {
		score = 100
	}
	return score
}

// RecordPerformance pushes a sample into the window, evicting the oldest once
// the window is full (FIFO).
func (da *DifficultyAdjuster) RecordPerformance(score float64) {
	da.samples[da.head] = score
	da.head = (da.head + 1) % performanceWindow
	if da.count < performanceWindow {
		da.count++
	}
}

// Average returns the rolling average and whether any samples exist.
func (da *DifficultyAdjuster) Average() (float64, bool) {
	if da.count == 0 {
		return 0, false
	}
	sum := 0.0
	for i := 0; i < da.count; i++ {
		sum += da.samples[i]
	}
	return sum / float64(da.count), true
}

// GetAdjustment maps the rolling average to a multiplier tier. Poor recent
// performance speeds the commander up and sharpens it; strong performance
// slows it down a touch.
func (da *DifficultyAdjuster) GetAdjustment() Adjustment {
	avg, ok := da.Average()
	if !ok {
		return NeutralAdjustment
	}
	switch {
	case avg < 30:
		return Adjustment{ReactionMul: 0.7, AccuracyMul: 1.3, EconomyMul: 1.2}
	case avg < 50:
		return Adjustment{ReactionMul: 0.85, AccuracyMul: 1.15, EconomyMul: 1.1}
	case avg > 70:
		return Adjustment{ReactionMul: 1.2, AccuracyMul: 0.9, EconomyMul: 0.95}
	default:
		return NeutralAdjustment
	}
}
