package commander

import (
	"strings"
	"testing"
)

func TestCollectRunReport_CountsActionKinds(t *testing.T) {
	s := NewSim(
		WithSeed(13),
		WithResources(800),
		WithEnemy(600, 360, 70, BehaviorRusher, FactionGrave),
		WithEnemy(640, 360, 70, BehaviorSwarmer, FactionGrave),
	)
	quietHumanizer(s.Director.Humanizer())
	s.RunTicks(400)

	r := CollectRunReport(s, 13)
	if r.Seed != 13 || r.Ticks != 400 {
		t.Fatalf("run identity wrong: %+v", r)
	}
	if r.UnitsFielded != len(s.Units) {
		t.Fatalf("report says %d units fielded, sim has %d", r.UnitsFielded, len(s.Units))
	}
	if r.Places+r.Upgrades+r.Sells != len(s.Emitted) {
		t.Fatalf("action tallies %d+%d+%d do not cover %d emitted",
			r.Places, r.Upgrades, r.Sells, len(s.Emitted))
	}

	out := r.Format()
	if !strings.Contains(out, "seed=13") || !strings.Contains(out, "actions:") {
		t.Fatalf("unexpected report format:\n%s", out)
	}
}

func TestAggregate_AveragesAndSurvival(t *testing.T) {
	runs := []RunReport{
		{WavesReached: 4, BaseHealth: 100, Places: 2},
		{WavesReached: 8, BaseHealth: 0, Places: 4},
	}
	agg := Aggregate(runs)

	if agg.Runs != 2 || agg.Survived != 1 {
		t.Fatalf("expected 1 of 2 survived, got %+v", agg)
	}
	if agg.AvgWaves != 6 || agg.AvgPlaces != 3 {
		t.Fatalf("bad averages: %+v", agg)
	}

	if empty := Aggregate(nil); empty.Runs != 0 || empty.Survived != 0 {
		t.Fatalf("empty aggregate not zero: %+v", empty)
	}
	if !strings.Contains(agg.Format(), "runs=2 survived=1") {
		t.Fatalf("unexpected aggregate format:\n%s", agg.Format())
	}
}

func TestMoodMessage_DrawsFromMoodPool(t *testing.T) {
	rng := &scriptedRand{}
	for _, m := range []Mood{MoodCalm, MoodConfident, MoodFocused, MoodStressed, MoodDetermined, MoodDesperate} {
		msg := MoodMessage(rng, m, PhasePowerScaling)
		if msg == "" {
			t.Errorf("no commentary line for %s", m)
		}
	}
}

func TestMoodMessage_BossPrepOverridesToDetermined(t *testing.T) {
	rng := &scriptedRand{}
	msg := MoodMessage(rng, MoodCalm, PhaseBossPreparation)
	found := false
	for _, line := range moodLines[MoodDetermined] {
		if msg == line {
			found = true
		}
	}
	if !found {
		t.Fatalf("boss preparation did not pull from the determined pool: %q", msg)
	}

	// Desperation is never softened by the boss override.
	msg = MoodMessage(rng, MoodDesperate, PhaseBossPreparation)
	found = false
	for _, line := range moodLines[MoodDesperate] {
		if msg == line {
			found = true
		}
	}
	if !found {
		t.Fatalf("desperate mood lost its own pool on a boss wave: %q", msg)
	}
}
