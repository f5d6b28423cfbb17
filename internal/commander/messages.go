package commander

// moodLines are the commentary pools per mood. Static data; the draw picks
// one line at random so repeated mood changes don't always read identically.
var moodLines = map[Mood][]string{
	MoodCalm: {
		"All quiet on the approaches.",
		"Holding pattern. Watching the lanes.",
		"Nothing the line can't handle.",
	},
	MoodConfident: {
		"The defense is humming.",
		"They can keep coming. We're ready.",
		"Coffers full, lanes covered.",
	},
	MoodFocused: {
		"Pressure building. Eyes on the east lane.",
		"Reading their push. Adjusting.",
		"They're probing for a gap.",
	},
	MoodStressed: {
		"Too many gaps. Plugging the worst one.",
		"They're getting through. Tightening up.",
		"This wave has teeth.",
	},
	MoodDetermined: {
		"Boss inbound. Everything on the approach.",
		"Big one coming. Make the shots count.",
		"Brace the line. Here it comes.",
	},
	MoodDesperate: {
		"The base is burning. Hold anything that fires.",
		"Last stand. Sell what we must.",
		"No reserves left. Hold. HOLD.",
	},
}

// MoodMessage returns a commentary line for the committed mood. The phase
// sharpens a couple of edge cases; otherwise the mood pool decides.
func MoodMessage(rng Rand, mood Mood, phase Phase) string {
	if phase == PhaseBossPreparation && mood != MoodDesperate {
		return moodLines[MoodDetermined][rng.Intn(len(moodLines[MoodDetermined]))]
	}
	lines, ok := moodLines[mood]
	if !ok || len(lines) == 0 {
		return ""
	}
	return lines[rng.Intn(len(lines))]
}

// actionComment returns a short commentary line for a committed action.
func actionComment(a Action) string {
	switch a.Kind {
	case ActionPlaceUnit:
		return "New " + a.UnitType.String() + " going up."
	case ActionUpgradeUnit:
		return "Upgrading the " + a.Path.String() + " track."
	case ActionSellUnit:
		return "Selling a unit to stay afloat."
	default:
		return ""
	}
}
