package commander

import "fmt"

// ActionKind discriminates the Action tagged union.
type ActionKind int

const (
	ActionPlaceUnit ActionKind = iota
	ActionUpgradeUnit
	ActionSellUnit
)

func (k ActionKind) String() string {
	switch k {
	case ActionPlaceUnit:
		return "place"
	case ActionUpgradeUnit:
		return "upgrade"
	case ActionSellUnit:
		return "sell"
	default:
		return "unknown"
	}
}

// Action is one committed decision, created fresh each cycle. Ownership
// transfers to the gameplay layer on emission; the engine keeps no reference.
// Only the fields relevant to Kind are meaningful.
type Action struct {
	Kind ActionKind

	// Place.
	X, Y     float64
	UnitType UnitType

	// Upgrade / sell.
	UnitID int
	Path   UpgradePath

	// Shared.
	ExpectedValue float64
	Priority      float64
	Cost          int
}

func (a Action) String() string {
	switch a.Kind {
	case ActionPlaceUnit:
		return fmt.Sprintf("place %s at (%.0f,%.0f) cost=%d prio=%.2f", a.UnitType, a.X, a.Y, a.Cost, a.Priority)
	case ActionUpgradeUnit:
		return fmt.Sprintf("upgrade unit %d %s cost=%d prio=%.2f", a.UnitID, a.Path, a.Cost, a.Priority)
	case ActionSellUnit:
		return fmt.Sprintf("sell unit %d prio=%.2f", a.UnitID, a.Priority)
	default:
		return "unknown action"
	}
}
