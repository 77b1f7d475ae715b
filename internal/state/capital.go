package state

import "errors"

// ErrInsufficientCapital is returned by WithSpend when the ledger cannot
// cover the cost. Spends are all-or-nothing; there is no partial spend.
var ErrInsufficientCapital = errors.New("insufficient political capital")

// Turn-end adjustment thresholds.
const (
	governanceEarnFloor = 60
	alignmentEarnFloor  = 60
	moraleLossCeiling   = 30
)

// Capital is the political-capital ledger: a single currency clamped to
// [0, Max], with decay pressure against hoarding.
type Capital struct {
	Value          int
	Max            int
	DecayThreshold int
	DecayAmount    int
}

// NewCapital builds the ledger with its tuning constants attached.
func NewCapital(initial, max, decayThreshold, decayAmount int) Capital {
	return Capital{
		Value:          clampInt(initial, 0, max),
		Max:            max,
		DecayThreshold: decayThreshold,
		DecayAmount:    decayAmount,
	}
}

// CanAfford is the pure affordability predicate.
func (c Capital) CanAfford(cost int) bool {
	return c.Value >= cost
}

// WithSpend deducts cost, or fails with ErrInsufficientCapital leaving the
// ledger untouched.
func (c Capital) WithSpend(cost int) (Capital, error) {
	if cost > c.Value {
		return c, ErrInsufficientCapital
	}
	c.Value -= cost
	return c, nil
}

// WithEarn adds n, saturating at Max.
func (c Capital) WithEarn(n int) Capital {
	c.Value = clampInt(c.Value+n, 0, c.Max)
	return c
}

// WithTurnEndAdjustments applies the quarter-end drift: strong governance
// and alignment each earn a point, weak morale costs one, and anything held
// above the decay threshold decays.
func (c Capital) WithTurnEndAdjustments(org Org) Capital {
	if org.Meter(Governance) >= governanceEarnFloor {
		c.Value++
	}
	if org.Meter(Alignment) >= alignmentEarnFloor {
		c.Value++
	}
	if org.Meter(Morale) < moraleLossCeiling {
		c.Value--
	}
	c.Value = clampInt(c.Value, 0, c.Max)
	if c.Value > c.DecayThreshold {
		c.Value -= c.DecayAmount
	}
	c.Value = clampInt(c.Value, 0, c.Max)
	return c
}
