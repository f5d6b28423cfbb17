package commander

import (
	"fmt"
	"strings"
)

// BuildDebugReport renders the commander's recent activity as plain text:
// current status snapshot, action tallies, and the last lastTicks of log
// entries. The viewer copies this to the clipboard on a keypress.
func BuildDebugReport(d *Director, log *DecisionLog, nowTick, lastTicks int) string {
	if lastTicks <= 0 {
		lastTicks = 600
	}
	fromTick := nowTick - lastTicks + 1
	if fromTick < 0 {
		fromTick = 0
	}

	st := d.Status()

	var b strings.Builder
	fmt.Fprintf(&b, "--- Tower Warden commander report ---\n")
	fmt.Fprintf(&b, "tick_range=[%d..%d]\n", fromTick, nowTick)
	fmt.Fprintf(&b, "mood=%s (%s)\n", st.Mood, st.MoodMessage)
	fmt.Fprintf(&b, "phase=%s focus=%q\n", st.Phase, st.PhaseFocus)
	fmt.Fprintf(&b, "threat=%.0f%% coverage=%.0f%%\n", st.ThreatPct, st.CoveragePct)
	fmt.Fprintf(&b, "decisions_this_wave=%d successful_actions=%d\n", st.DecisionsThisWave, st.SuccessfulActions)
	if st.HasPlanned {
		fmt.Fprintf(&b, "planned=%s\n", st.PlannedAction)
	} else {
		b.WriteString("planned=none\n")
	}

	commits := log.Filter("decision", "commit")
	places, upgrades, sells := 0, 0, 0
	for _, e := range commits {
		switch {
		case strings.HasPrefix(e.Value, "place"):
			places++
		case strings.HasPrefix(e.Value, "upgrade"):
			upgrades++
		case strings.HasPrefix(e.Value, "sell"):
			sells++
		}
	}
	fmt.Fprintf(&b, "commits: place=%d upgrade=%d sell=%d\n", places, upgrades, sells)

	moodChanges := log.Filter("mood", "change")
	fmt.Fprintf(&b, "mood_changes=%d\n\n", len(moodChanges))

	b.WriteString("== recent log ==\n")
	for _, e := range log.FilterTickRange(fromTick, nowTick) {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
