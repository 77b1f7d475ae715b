// Package outcome turns contextual signals into the three-tier
// Good/Expected/Bad probability distribution and draws tiers from it.
package outcome

import "github.com/talgya/boardroom/internal/rng"

// Tier is the resolved quality of a card or choice.
type Tier uint8

const (
	Good Tier = iota
	Expected
	Bad
)

func (t Tier) String() string {
	switch t {
	case Good:
		return "Good"
	case Expected:
		return "Expected"
	case Bad:
		return "Bad"
	}
	return "Unknown"
}

// Weights is a three-tier distribution over 100 points. GetWeights and the
// fixed choice tables always return weights summing to exactly 100.
type Weights struct {
	Good     int
	Expected int
	Bad      int
}

const (
	baseGood     = 20
	baseExpected = 60
	baseBad      = 20

	tierMin     = 5
	tierMax     = 60
	expectedMin = 10
	expectedMax = 90

	honeymoonQuarters = 3
	honeymoonGood     = 15
	honeymoonBad      = 10

	evilPathMinor      = 10 // evil score unlocking the small corporate bonus
	evilPathMajor      = 20
	evilPathMinorBonus = 5
	evilPathMajorBonus = 10
)

// Context carries the signals that shape a project roll.
type Context struct {
	Alignment              int
	PressureLevel          int
	EvilScore              int
	AdditionalRiskModifier int // surcharge risk for the 2nd/3rd card of a quarter
	QuarterNumber          int
	MomentumBonus          int
	AffinitySynergyBonus   int
	CorporateCard          bool
}

// GetWeights computes the tier distribution for a project roll. All
// modifiers are additive before clamping: good and bad are clamped to
// [5,60], expected to [10,90], and the three always sum to 100 with expected
// absorbing the remainder.
func GetWeights(ctx Context) Weights {
	good, bad := baseGood, baseBad

	alignMod := (ctx.Alignment - 50) / 5
	good += alignMod
	bad -= alignMod

	pressureMod := ctx.PressureLevel - 1
	good -= pressureMod
	bad += pressureMod

	evilMod := ctx.EvilScore / 2
	good -= evilMod
	bad += evilMod

	bad += ctx.AdditionalRiskModifier

	// Honeymoon: the first three quarters are forgiving, fading linearly.
	if ctx.QuarterNumber >= 1 && ctx.QuarterNumber <= honeymoonQuarters {
		fade := float64(honeymoonQuarters-ctx.QuarterNumber+1) / honeymoonQuarters
		good += int(honeymoonGood * fade)
		bad -= int(honeymoonBad * fade)
	}

	// The evil path rewards commitment: corporate cards roll better once the
	// CEO is already compromised.
	if ctx.CorporateCard {
		switch {
		case ctx.EvilScore >= evilPathMajor:
			good += evilPathMajorBonus
		case ctx.EvilScore >= evilPathMinor:
			good += evilPathMinorBonus
		}
	}

	good += ctx.MomentumBonus + ctx.AffinitySynergyBonus

	good = clamp(good, tierMin, tierMax)
	bad = clamp(bad, tierMin, tierMax)

	expected := 100 - good - bad
	if expected < expectedMin {
		// Expected under-ran its clamp; shave the excess off bad first, then
		// good, each floored at the tier minimum.
		short := expectedMin - expected
		give := short
		if give > bad-tierMin {
			give = bad - tierMin
		}
		bad -= give
		good -= short - give
		expected = expectedMin
	}
	// With good and bad at most 60 and at least 5, expected never exceeds 90.

	return Weights{Good: good, Expected: expected, Bad: bad}
}

// Roll draws a tier from w with a single cumulative-weight draw.
func Roll(w Weights, r *rng.Source) Tier {
	v := r.IntN(0, 100)
	switch {
	case v < w.Good:
		return Good
	case v < w.Good+w.Expected:
		return Expected
	default:
		return Bad
	}
}

// ChoiceWeights returns the fixed distribution for a crisis-card choice:
// paying political capital buys safety, corporate shortcuts trade tail risk
// for upside, and standard responses mostly land on expected.
func ChoiceWeights(hasCost, corporate bool) Weights {
	switch {
	case corporate:
		return Weights{Good: 70, Expected: 10, Bad: 20}
	case hasCost:
		return Weights{Good: 70, Expected: 20, Bad: 10}
	default:
		return Weights{Good: 20, Expected: 70, Bad: 10}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
