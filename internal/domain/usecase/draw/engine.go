package draw

import (
	"github.com/skylar-games/case-opener/internal/domain/entity"
	coreport "github.com/skylar-games/case-opener/internal/domain/port/core"
)

// reel layout constants, mirrored by the frontend animation: the strip is
// 100 items long and always stops on index 49
const (
	reelLeadIn  = 49
	reelLeadOut = 50
	// ReelStopIndex is the position of the winning item on every reel
	ReelStopIndex = reelLeadIn
	// ReelLength is the total number of items on a reel
	ReelLength = reelLeadIn + 1 + reelLeadOut
)

// Engine draws weighted-random reward outcomes from a fixed tier table
type Engine struct {
	tiers  []entity.Tier
	source coreport.RandSource
}

// NewEngine creates a draw engine over the given tier table
func NewEngine(tiers []entity.Tier, source coreport.RandSource) *Engine {
	return &Engine{tiers: tiers, source: source}
}

// Tiers returns the engine's tier table
func (e *Engine) Tiers() []entity.Tier {
	return e.tiers
}

// DrawOne selects a single tier by roulette selection: weights are
// normalized to sum to 1, a uniform number is drawn in [0,1), and the first
// tier whose cumulative normalized weight meets or exceeds the draw wins.
// If floating-point accumulation leaves the draw past the final cumulative
// weight, the first tier is returned rather than failing.
func (e *Engine) DrawOne() entity.Tier {
	var total float64
	for _, tier := range e.tiers {
		total += tier.Weight
	}

	r := e.source.Float64()
	var cumulative float64
	for _, tier := range e.tiers {
		cumulative += tier.Weight / total
		if r <= cumulative {
			return tier
		}
	}
	return e.tiers[0]
}

// DrawN performs n independent draws. Repeats are allowed and expected;
// this is sampling with replacement.
func (e *Engine) DrawN(n int) []entity.Tier {
	outcomes := make([]entity.Tier, 0, n)
	for i := 0; i < n; i++ {
		outcomes = append(outcomes, e.DrawOne())
	}
	return outcomes
}

// SettlePayout sums the fixed payout of each outcome, in tenths. This is
// the amount credited to the ledger when the spin settles.
func SettlePayout(outcomes []entity.Tier) int64 {
	var payout int64
	for _, tier := range outcomes {
		payout += tier.Payout
	}
	return payout
}

// BuildReel produces the animation strip for one outcome: filler items drawn
// uniformly from the tier table with the winning item at ReelStopIndex. The
// strip carries no game state, it exists so the frontend can animate the
// stop.
func (e *Engine) BuildReel(outcome entity.Tier) []entity.Tier {
	reel := make([]entity.Tier, 0, ReelLength)
	for i := 0; i < reelLeadIn; i++ {
		reel = append(reel, e.tiers[e.source.Intn(len(e.tiers))])
	}
	reel = append(reel, outcome)
	for i := 0; i < reelLeadOut; i++ {
		reel = append(reel, e.tiers[e.source.Intn(len(e.tiers))])
	}
	return reel
}
