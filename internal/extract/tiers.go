package extract

import "github.com/jackzampolin/outliner/internal/toc"

// Tier is one rung of the per-range degradation ladder. Tiers are
// attempted in declaration order; each failure or empty result moves
// to the next tier, and PatternFallback is terminal.
type Tier int

const (
	TierImageAssisted Tier = iota
	TierTextOnly
	TierPatternFallback
	tierDone
)

// Next returns the tier to degrade to.
func (t Tier) Next() Tier {
	switch t {
	case TierImageAssisted:
		return TierTextOnly
	case TierTextOnly:
		return TierPatternFallback
	default:
		return tierDone
	}
}

// Strategy maps a tier to its result marker.
func (t Tier) Strategy() toc.Strategy {
	switch t {
	case TierImageAssisted:
		return toc.StrategyImageAssisted
	case TierTextOnly:
		return toc.StrategyTextOnly
	case TierPatternFallback:
		return toc.StrategyPattern
	default:
		return toc.StrategyNone
	}
}

func (t Tier) String() string {
	switch t {
	case TierImageAssisted:
		return "image-assisted"
	case TierTextOnly:
		return "text-only"
	case TierPatternFallback:
		return "pattern-fallback"
	default:
		return "done"
	}
}
