// Package board models the board of directors: the quarterly favorability
// delta and the capped ouster-risk roll.
package board

import "github.com/talgya/boardroom/internal/state"

// Favorability tuning.
const (
	fullReward     = 8
	halfReward     = 4
	missPenalty    = 4
	declinePenalty = 3
)

// Calculate returns the signed quarterly favorability delta.
//
// Rules, in order: full reward when the directive is met and profit grew,
// half reward when the directive is met but profit only held; a miss costs
// the flat penalty plus one point per unit of board pressure; declining
// profit costs an extra three regardless. A weak-project streak eats into
// positive results and caps them: two weak quarters cap gains at +2, three
// cap them at zero.
//
// evilScore is carried for calculator parity with the ouster model; the
// board's distaste for corporate drift is priced there, not here.
func Calculate(lastProfit, currentProfit int, directiveMet bool, pressureLevel, evilScore, weakProjectStreak int) int {
	_ = evilScore

	delta := 0
	if directiveMet {
		if currentProfit > lastProfit {
			delta += fullReward
		} else {
			delta += halfReward
		}
	} else {
		delta -= missPenalty
		delta -= pressureLevel
	}
	if currentProfit < lastProfit {
		delta -= declinePenalty
	}

	if weakProjectStreak > 0 {
		if delta > 0 {
			delta -= streakPenalty(weakProjectStreak)
		}
		switch {
		case weakProjectStreak >= 3:
			if delta > 0 {
				delta = 0
			}
		case weakProjectStreak >= 2:
			if delta > 2 {
				delta = 2
			}
		}
	}
	return delta
}

// streakPenalty escalates with consecutive weak quarters: -1, -3, -5, then
// -7 from the fourth on.
func streakPenalty(streak int) int {
	switch {
	case streak >= 4:
		return 7
	case streak == 3:
		return 5
	case streak == 2:
		return 3
	default:
		return 1
	}
}

// Meter bands for board scrutiny.
const (
	criticalMeter = 10
	weakMeter     = 20
)

// MeterAdjustment caps and penalizes the favorability delta when the org is
// visibly struggling. MaxGain only applies when Capped is set.
type MeterAdjustment struct {
	MaxGain int
	Capped  bool
	Penalty int // subtracted from the delta after capping
	Crisis  bool
	Message string
}

// LowMeterAdjustment inspects the org meters: one critical meter (below 10)
// zeroes any gain and costs 2; two critical meters, or any meter at zero,
// zeroes gains and costs 5 with a crisis message; meters merely weak (10-19)
// cap gains at +2 with no penalty.
func LowMeterAdjustment(org state.Org) MeterAdjustment {
	critical := org.CountBelow(criticalMeter)
	switch {
	case critical >= 2 || org.AnyZero():
		return MeterAdjustment{
			Capped:  true,
			Penalty: 5,
			Crisis:  true,
			Message: "the organization is in crisis; the board is alarmed",
		}
	case critical == 1:
		return MeterAdjustment{
			Capped:  true,
			Penalty: 2,
			Message: "a critical weakness overshadows the quarter",
		}
	case org.CountBelow(weakMeter) > 0:
		return MeterAdjustment{
			MaxGain: 2,
			Capped:  true,
			Message: "lingering weakness tempers the board's praise",
		}
	}
	return MeterAdjustment{}
}

// Activity expectations and shortfall penalties.
const (
	honeymoonQuarterIndex = 1 // quarter indexes 0 and 1 expect a single project
	oneShortPenalty       = 4
	zeroProjectsPenalty   = 5
)

// ActivityAdjustment penalizes quarters that shipped fewer projects than the
// board expects.
type ActivityAdjustment struct {
	Expected  int
	Shortfall int
	MaxGain   int
	Capped    bool
	Penalty   int
}

// LowActivityAdjustment: the board expects one project in the first two
// quarters (honeymoon, never penalized) and two from then on. A shortfall
// zeroes any favorability gain and applies a tenure-scaled penalty; meeting
// the expectation removes both cap and penalty.
func LowActivityAdjustment(projectsPlayed, quarterIndex int) ActivityAdjustment {
	if quarterIndex <= honeymoonQuarterIndex {
		return ActivityAdjustment{Expected: 1}
	}
	const expected = 2
	if projectsPlayed >= expected {
		return ActivityAdjustment{Expected: expected}
	}
	base := oneShortPenalty
	if projectsPlayed == 0 {
		base = zeroProjectsPenalty
	}
	return ActivityAdjustment{
		Expected:  expected,
		Shortfall: expected - projectsPlayed,
		Capped:    true,
		Penalty:   base * (1 + quarterIndex/3),
	}
}
