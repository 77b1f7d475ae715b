package board

import "github.com/talgya/boardroom/internal/rng"

// Ouster thresholds live on a d20 scale: risk percent is threshold x 5,
// capped so removal is never a certainty.
const (
	thresholdMax = 14
	riskCap      = 70

	safeFavorability = 55
)

// Threshold converts the quarter's signals into a d20 ouster threshold.
// Favorability of 55 or better is safe regardless of pressure. The legacy
// profitGrew flag applies both the directive-equivalent and profit bonuses
// simultaneously for backward compatibility; the double bonus is preserved
// as documented.
func Threshold(favorability, pressureLevel, quartersSurvived, evilScore int, directiveMet, profitGrew, legacyProfitGrew bool) int {
	if favorability >= safeFavorability {
		return 0
	}

	t := favorabilityBand(favorability)
	t += pressureLevel / 2
	t -= honeymoonProtection(quartersSurvived)
	t -= ethicsBonus(evilScore)
	if directiveMet || legacyProfitGrew {
		t -= 2
	}
	if profitGrew || legacyProfitGrew {
		t--
	}

	if t < 0 {
		return 0
	}
	if t > thresholdMax {
		return thresholdMax
	}
	return t
}

// favorabilityBand maps board standing to the base threshold.
func favorabilityBand(favorability int) int {
	switch {
	case favorability >= 55:
		return 0
	case favorability >= 40:
		return 1
	case favorability >= 25:
		return 2
	case favorability >= 10:
		return 3
	}
	return 4
}

// honeymoonProtection shields a new CEO, fading with tenure.
func honeymoonProtection(quartersSurvived int) int {
	switch {
	case quartersSurvived <= 3:
		return 4
	case quartersSurvived <= 5:
		return 2
	case quartersSurvived <= 7:
		return 1
	}
	return 0
}

// ethicsBonus rewards a clean record.
func ethicsBonus(evilScore int) int {
	switch {
	case evilScore == 0:
		return 2
	case evilScore < 5:
		return 1
	}
	return 0
}

// Risk converts a threshold to a removal-risk percentage in [0, 70].
func Risk(threshold int) int {
	risk := threshold * 5
	if risk < 0 {
		return 0
	}
	if risk > riskCap {
		return riskCap
	}
	return risk
}

// RollForOuster draws a single d20; the CEO is out when the roll lands at or
// under the threshold. A zero threshold can never oust.
func RollForOuster(threshold int, r *rng.Source) bool {
	return r.IntN(1, 21) <= threshold
}
