package state

// Favorability bounds and starting value.
const (
	FavorabilityMin      = 0
	FavorabilityMax      = 100
	favorabilityBaseline = 50
)

// CEO is the player snapshot: board standing, ethics drift, tenure, money,
// and the two terminal flags.
type CEO struct {
	Favorability        int // [0,100], the board's opinion of the CEO
	EvilScore           int // >= 0, unbounded upward
	PressureLevel       int // rises by one every two quarters survived
	QuartersSurvived    int
	TotalProfit         int
	RetirementBonus     int
	RetirementThreshold int
	IsOusted            bool
	HasRetired          bool
}

// NewCEO returns a freshly appointed CEO with neutral board standing.
func NewCEO(retirementThreshold int) CEO {
	return CEO{
		Favorability:        favorabilityBaseline,
		RetirementThreshold: retirementThreshold,
	}
}

// WithFavorability applies a signed delta, saturating at the bounds.
func (c CEO) WithFavorability(delta int) CEO {
	c.Favorability = clampInt(c.Favorability+delta, FavorabilityMin, FavorabilityMax)
	return c
}

// WithEvil applies a signed delta to the evil score, floored at zero.
func (c CEO) WithEvil(delta int) CEO {
	c.EvilScore += delta
	if c.EvilScore < 0 {
		c.EvilScore = 0
	}
	return c
}

// WithProfit books a quarter's profit into the running total.
func (c CEO) WithProfit(delta int) CEO {
	c.TotalProfit += delta
	return c
}

// WithQuarterSurvived bumps tenure. Board pressure rises every two quarters.
func (c CEO) WithQuarterSurvived() CEO {
	c.QuartersSurvived++
	c.PressureLevel = c.QuartersSurvived / 2
	return c
}

// WithRetirementAccrual grows the retirement bonus; negative amounts are
// ignored.
func (c CEO) WithRetirementAccrual(amount int) CEO {
	if amount > 0 {
		c.RetirementBonus += amount
	}
	return c
}

// CanRetire reports whether the accumulated bonus has crossed the threshold.
func (c CEO) CanRetire() bool {
	return c.RetirementBonus >= c.RetirementThreshold
}

// WithOusted marks the CEO as removed by the board.
func (c CEO) WithOusted() CEO {
	c.IsOusted = true
	return c
}

// WithRetired marks a voluntary exit.
func (c CEO) WithRetired() CEO {
	c.HasRetired = true
	return c
}

// Terminal reports whether the game is over for this CEO.
func (c CEO) Terminal() bool {
	return c.IsOusted || c.HasRetired
}
