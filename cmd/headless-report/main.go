package main

import (
	"flag"
	"fmt"

	"towerwarden/internal/commander"
)

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var personality string

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 18000, "ticks per run (60 = 1s)")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&personality, "personality", "balanced", "commander personality (balanced, aggressive, defensive, economic, adaptive)")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	fmt.Printf("=== Commander Headless Report ===\n")
	fmt.Printf("personality=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", personality, runs, ticks, seedBase, seedStep)

	reports := make([]commander.RunReport, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		r := runScenario(seed, ticks, personality)
		reports = append(reports, r)
		fmt.Printf("--- Run %d ---\n%s\n", i+1, r.Format())
	}

	fmt.Print(commander.Aggregate(reports).Format())
}

// runScenario plays one full defense on the standard three-lane map until
// the tick budget runs out or the base falls.
func runScenario(seed int64, ticks int, personality string) commander.RunReport {
	sim := commander.NewSim(
		commander.WithSeed(seed),
		commander.WithPersonality(commander.PersonalityByName(personality)),
		commander.WithBase(1100, 360),
		commander.WithLane(50, 160),
		commander.WithLane(50, 360),
		commander.WithLane(50, 560),
		commander.WithResources(350),
		commander.WithAutoWaves(),
	)
	sim.RunUntil(func(s *commander.Sim) bool {
		return s.BaseHealth <= 0
	}, ticks)
	return commander.CollectRunReport(sim, seed)
}
