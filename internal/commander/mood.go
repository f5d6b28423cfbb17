package commander

// Mood is the commander's emotional/tactical state, shown to the player and
// used to flavor commentary. It never changes decision math directly.
type Mood int

const (
	MoodCalm Mood = iota
	MoodConfident
	MoodFocused
	MoodStressed
	MoodDetermined
	MoodDesperate
)

func (m Mood) String() string {
	switch m {
	case MoodCalm:
		return "calm"
	case MoodConfident:
		return "confident"
	case MoodFocused:
		return "focused"
	case MoodStressed:
		return "stressed"
	case MoodDetermined:
		return "determined"
	case MoodDesperate:
		return "desperate"
	default:
		return "unknown"
	}
}

// MoodContext is everything the mood rules look at for one cycle.
type MoodContext struct {
	HealthPct   float64 // base health, 0-100
	ThreatPct   float64 // normalized battlefield threat, 0-100
	CoveragePct float64 // fraction of approaches under fire, 0-100
	Resources   int
	BossWave    bool
}

// proposeMood applies the transition rules in priority order; first match
// wins. Pure — hysteresis lives in the engine, not here.
func proposeMood(ctx MoodContext) Mood {
	switch {
	case ctx.HealthPct < 20:
		return MoodDesperate
	case ctx.BossWave:
		return MoodDetermined
	case (ctx.ThreatPct > 70 && ctx.CoveragePct < 50) || ctx.HealthPct < 40:
		return MoodStressed
	case ctx.ThreatPct > 40:
		return MoodFocused
	case (ctx.Resources > 300 && ctx.CoveragePct > 60) || (ctx.ThreatPct < 10 && ctx.CoveragePct > 80):
		return MoodConfident
	default:
		return MoodCalm
	}
}

// MoodEngine computes the commander's mood with hysteresis: a differing
// proposal must persist for moodStabilityCycles consecutive cycles before it
// replaces the committed mood. Context oscillating near a threshold therefore
// cannot make the displayed mood flicker.
type MoodEngine struct {
	committed Mood
	candidate Mood
	stability uint8
}

// NewMoodEngine starts calm with no pending candidate.
func NewMoodEngine() *MoodEngine {
	return &MoodEngine{committed: MoodCalm, candidate: MoodCalm}
}

// Mood returns the last committed mood.
func (me *MoodEngine) Mood() Mood {
	return me.committed
}

// CalculateMood runs one cycle: propose from context, then either commit
// (same as current, or candidate sustained long enough) or keep accumulating
// stability on the candidate.
func (me *MoodEngine) CalculateMood(ctx MoodContext) Mood {
	proposed := proposeMood(ctx)

	if proposed == me.committed {
		me.candidate = proposed
		me.stability = 0
		return me.committed
	}

	if proposed != me.candidate {
		// A different challenger restarts the count.
		me.candidate = proposed
		me.stability = 1
		return me.committed
	}

	me.stability++
	if me.stability >= moodStabilityCycles {
		me.committed = proposed
		me.stability = 0
	}
	return me.committed
}

// --- Phase ---

// Phase is the coarse game phase. Unlike mood it is a pure function of its
// inputs — it is queried rarely enough that flicker is not a concern, so it
// carries no hysteresis and no state.
type Phase int

const (
	PhaseEarlyExpansion Phase = iota
	PhaseDefensiveSetup
	PhasePowerScaling
	PhaseBossPreparation
	PhaseSurvivalMode
)

func (p Phase) String() string {
	switch p {
	case PhaseEarlyExpansion:
		return "early expansion"
	case PhaseDefensiveSetup:
		return "defensive setup"
	case PhasePowerScaling:
		return "power scaling"
	case PhaseBossPreparation:
		return "boss preparation"
	case PhaseSurvivalMode:
		return "survival"
	default:
		return "unknown"
	}
}

// Focus returns a short description of what the commander concentrates on in
// this phase, for the status display.
func (p Phase) Focus() string {
	switch p {
	case PhaseEarlyExpansion:
		return "claiming ground"
	case PhaseDefensiveSetup:
		return "sealing the approaches"
	case PhasePowerScaling:
		return "stacking damage"
	case PhaseBossPreparation:
		return "massing for the boss"
	case PhaseSurvivalMode:
		return "holding the line"
	default:
		return ""
	}
}

// CurrentPhase computes the phase from wave number, boss flag, and base
// health. Fixed thresholds; priority from most to least urgent.
func CurrentPhase(wave int, bossWave bool, healthPct float64) Phase {
	switch {
	case healthPct < 30:
		return PhaseSurvivalMode
	case bossWave || wave%5 == 4:
		return PhaseBossPreparation
	case wave <= 3:
		return PhaseEarlyExpansion
	case wave <= 8:
		return PhaseDefensiveSetup
	default:
		return PhasePowerScaling
	}
}
