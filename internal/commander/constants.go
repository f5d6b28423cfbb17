package commander

import "time"

// World dimensions (px). The influence grids and sector grid are sized from
// these at construction and never resized afterwards.
const (
	worldWidth  = 1280
	worldHeight = 720
)

// influenceCellSize is the resolution of the threat/coverage grids (px).
const influenceCellSize = 32

// Sector grid dimensions. Sectors are deliberately coarse — they exist for
// fast aggregate queries and overlays, not for precise scoring.
const (
	sectorCols = 8
	sectorRows = 6
)

// Decision cadence and cooldowns.
const (
	// DecisionInterval is how often the director runs a full analyse-and-
	// decide cycle. Grid recomputes happen here, never per frame.
	DecisionInterval = 400 * time.Millisecond

	// PlacementCooldown / UpgradeCooldown gate how often each action
	// category may be committed, independently of the decision cadence.
	PlacementCooldown = 2500 * time.Millisecond
	UpgradeCooldown   = 4000 * time.Millisecond
)

// EmergencyReserve is the resource floor the commander refuses to dip below
// for ordinary spending. Sell decisions ignore it (they raise funds).
const EmergencyReserve = 50

// criticalResources is the balance below which the commander considers
// selling a unit if nothing else is affordable.
const criticalResources = 25

// Placement scoring weights.
const (
	threatInterceptWeight   = 1.5
	coverageGapWeight       = 40.0
	coverageOverlapPenalty  = 0.5
	defensiveDistanceWeight = 1.3

	// approachPathTolerance is the perpendicular distance from a lane (px)
	// within which a candidate still counts as covering the approach.
	approachPathTolerance = 96.0
	// approachPathPenalty multiplies the score of candidates that sit off
	// every known approach lane. Multiplicative so a strong interception
	// score is dampened, not driven negative.
	approachPathPenalty = 0.45
)

// MinTurretDistance is the minimum spacing between deployed units (px).
// Candidates closer than this to any existing unit are never scored.
const MinTurretDistance = 48.0

// maxPlacementRadius bounds candidate generation around the base (px).
const maxPlacementRadius = 420.0

// UpgradeThreshold scales the placement baseline an upgrade must beat.
// Below 1.0 it biases toward consolidation once placements get marginal.
const UpgradeThreshold = 0.8

// minUpgradeValue is the absolute value-per-cost floor used when there is no
// placement baseline to compare against.
const minUpgradeValue = 0.04

// Humanizer defaults. Personalities and difficulty adjustment scale these.
const (
	minReactionDelay      = 50 * time.Millisecond
	baseReactionDelay     = 900 * time.Millisecond
	baseReactionVariation = 0.4
	baseSkipChance        = 0.06
	baseSuboptimalChance  = 0.12
	basePositionVariation = 18.0
)

// moodStabilityCycles is how many consecutive cycles must propose the same
// new mood before it is committed (hysteresis).
const moodStabilityCycles = 3

// performanceWindow is the rolling sample capacity of the difficulty adjuster.
const performanceWindow = 5
