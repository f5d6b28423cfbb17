package commander

import (
	"fmt"
	"strings"
)

// RunReport summarizes one headless simulation run.
type RunReport struct {
	Seed         int64
	Ticks        int
	WavesReached int
	BaseHealth   float64
	Kills        int
	UnitsFielded int

	Places   int
	Upgrades int
	Sells    int
	Skips    int

	MoodChanges int
	FinalMood   Mood
	PerfAvg     float64
	HasPerf     bool
}

// CollectRunReport extracts a run summary from a finished Sim.
func CollectRunReport(s *Sim, seed int64) RunReport {
	r := RunReport{
		Seed:         seed,
		Ticks:        s.CurrentTick(),
		WavesReached: s.Wave,
		BaseHealth:   s.BaseHealth,
		Kills:        s.Kills,
		UnitsFielded: len(s.Units),
		FinalMood:    s.Director.Status().Mood,
	}
	for _, a := range s.Emitted {
		switch a.Kind {
		case ActionPlaceUnit:
			r.Places++
		case ActionUpgradeUnit:
			r.Upgrades++
		case ActionSellUnit:
			r.Sells++
		}
	}
	r.Skips = s.Log.Count("decision", "skip")
	r.MoodChanges = s.Log.Count("mood", "change")
	r.PerfAvg, r.HasPerf = s.Director.Difficulty().Average()
	return r
}

// Format renders the run report as indented text.
func (r RunReport) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "seed=%d ticks=%d\n", r.Seed, r.Ticks)
	fmt.Fprintf(&b, "  waves=%d base=%.0f%% kills=%d units=%d\n", r.WavesReached, r.BaseHealth, r.Kills, r.UnitsFielded)
	fmt.Fprintf(&b, "  actions: place=%d upgrade=%d sell=%d skip=%d\n", r.Places, r.Upgrades, r.Sells, r.Skips)
	fmt.Fprintf(&b, "  mood: final=%s changes=%d\n", r.FinalMood, r.MoodChanges)
	if r.HasPerf {
		fmt.Fprintf(&b, "  performance: rolling_avg=%.1f\n", r.PerfAvg)
	} else {
		b.WriteString("  performance: (no samples)\n")
	}
	return b.String()
}

// AggregateReport averages a set of run reports.
type AggregateReport struct {
	Runs           int
	AvgWaves       float64
	AvgBaseHealth  float64
	AvgKills       float64
	AvgPlaces      float64
	AvgUpgrades    float64
	AvgSells       float64
	AvgSkips       float64
	AvgMoodChanges float64
	Survived       int // runs ending with the base alive
}

// Aggregate reduces run reports to averages.
func Aggregate(runs []RunReport) AggregateReport {
	agg := AggregateReport{Runs: len(runs)}
	if len(runs) == 0 {
		return agg
	}
	for _, r := range runs {
		agg.AvgWaves += float64(r.WavesReached)
		agg.AvgBaseHealth += r.BaseHealth
		agg.AvgKills += float64(r.Kills)
		agg.AvgPlaces += float64(r.Places)
		agg.AvgUpgrades += float64(r.Upgrades)
		agg.AvgSells += float64(r.Sells)
		agg.AvgSkips += float64(r.Skips)
		agg.AvgMoodChanges += float64(r.MoodChanges)
		if r.BaseHealth > 0 {
			agg.Survived++
		}
	}
	n := float64(len(runs))
	agg.AvgWaves /= n
	agg.AvgBaseHealth /= n
	agg.AvgKills /= n
	agg.AvgPlaces /= n
	agg.AvgUpgrades /= n
	agg.AvgSells /= n
	agg.AvgSkips /= n
	agg.AvgMoodChanges /= n
	return agg
}

// Format renders the aggregate as a closing summary block.
func (a AggregateReport) Format() string {
	var b strings.Builder
	b.WriteString("=== Aggregate ===\n")
	fmt.Fprintf(&b, "runs=%d survived=%d\n", a.Runs, a.Survived)
	fmt.Fprintf(&b, "avg: waves=%.1f base=%.0f%% kills=%.1f\n", a.AvgWaves, a.AvgBaseHealth, a.AvgKills)
	fmt.Fprintf(&b, "avg actions: place=%.1f upgrade=%.1f sell=%.1f skip=%.1f\n", a.AvgPlaces, a.AvgUpgrades, a.AvgSells, a.AvgSkips)
	fmt.Fprintf(&b, "avg mood changes=%.1f\n", a.AvgMoodChanges)
	return b.String()
}
