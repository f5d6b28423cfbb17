package commander

import "time"

// Humanizer shapes raw decisions so the commander feels less mechanical:
// occasional skipped cycles, a reaction delay before the action lands, and
// small imperfections in priority and position. All randomness comes through
// the injected Rand so tests can script it.
type Humanizer struct {
	SkipChance        float64
	ReactionBase      time.Duration
	ReactionVariation float64
	SuboptimalChance  float64
	PositionVariation float64 // px of uniform jitter per axis

	// reactionScale/accuracyScale are set by the difficulty adjustment each
	// cycle; they default to 1.
	reactionScale float64
	accuracyScale float64

	rng     Rand
	pending *pendingAction
}

// pendingAction holds a proposed action until its reaction delay elapses.
// Discarded when skipped, replaced when a newer proposal arrives, dropped
// once released.
type pendingAction struct {
	action    Action
	releaseAt time.Duration
}

// NewHumanizer builds a humanizer with the package defaults, scaled down by
// risk tolerance: a cautious personality second-guesses itself more.
func NewHumanizer(p Personality, rng Rand) *Humanizer {
	caution := 1.5 - p.RiskTolerance
	return &Humanizer{
		SkipChance:        baseSkipChance * caution,
		ReactionBase:      baseReactionDelay,
		ReactionVariation: baseReactionVariation,
		SuboptimalChance:  baseSuboptimalChance * caution,
		PositionVariation: basePositionVariation,
		reactionScale:     1,
		accuracyScale:     1,
		rng:               rng,
	}
}

// ApplyAdjustment takes the difficulty adjuster's multipliers for this cycle.
func (h *Humanizer) ApplyAdjustment(adj Adjustment) {
	h.reactionScale = adj.ReactionMul
	h.accuracyScale = adj.AccuracyMul
}

// Propose submits a raw action at time now. It may be skipped outright
// (returns false); otherwise it becomes the pending action, replacing any
// earlier one — only the latest proposal is ever honored.
func (h *Humanizer) Propose(a Action, now time.Duration) bool {
	if h.SkipChance > 0 && h.rng.Float64() < h.SkipChance {
		return false
	}

	a = h.imperfect(a)

	delay := h.reactionDelay()
	h.pending = &pendingAction{action: a, releaseAt: now + delay}
	return true
}

// reactionDelay draws max(50ms, base ± base*variation*rand), scaled by the
// current difficulty adjustment.
func (h *Humanizer) reactionDelay() time.Duration {
	base := float64(h.ReactionBase) * h.reactionScale
	spread := base * h.ReactionVariation * (h.rng.Float64()*2 - 1)
	d := time.Duration(base + spread)
	if d < minReactionDelay {
		d = minReactionDelay
	}
	return d
}

// imperfect applies the controlled-imperfection draws: a suboptimal roll
// dents the action's scheduling priority (never its correctness), and
// positional actions get uniform jitter on each axis. Higher accuracy from
// the difficulty adjustment shrinks the jitter.
func (h *Humanizer) imperfect(a Action) Action {
	if h.SuboptimalChance > 0 && h.rng.Float64() < h.SuboptimalChance {
		a.Priority *= 0.9
	}
	if a.Kind == ActionPlaceUnit && h.PositionVariation > 0 {
		jitter := h.PositionVariation
		if h.accuracyScale > 0 {
			jitter /= h.accuracyScale
		}
		a.X += (h.rng.Float64()*2 - 1) * jitter
		a.Y += (h.rng.Float64()*2 - 1) * jitter
	}
	return a
}

// Poll releases the pending action once now has reached its release time.
// Returns false while nothing is ready.
func (h *Humanizer) Poll(now time.Duration) (Action, bool) {
	if h.pending == nil || now < h.pending.releaseAt {
		return Action{}, false
	}
	a := h.pending.action
	h.pending = nil
	return a, true
}

// HasPending reports whether an action is waiting on its reaction delay.
func (h *Humanizer) HasPending() bool {
	return h.pending != nil
}
