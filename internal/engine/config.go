package engine

// Config is the engine's explicit tuning surface, threaded through NewGame
// and carried on the state. There is no global difficulty knob anywhere.
type Config struct {
	// Political capital.
	MaxCapital     int
	InitialCapital int
	DecayThreshold int
	DecayAmount    int

	// Card play.
	HandSize           int
	MaxCardsPerQuarter int

	// Retirement.
	RetirementThreshold int

	// Chance a crisis card lands when card play ends.
	CrisisChance float64

	// Political-capital tariffs for the side actions.
	BoostCost      int
	BoostGain      int // meter points
	SchmoozeCost   int
	SchmoozeGain   int // favorability points
	ReorgCost      int
	RedemptionCost int
	RedemptionGain int // evil points walked back
	ExchangeRate   int // meter points per point of capital

	// Board directives.
	DirectiveBase  int
	DirectiveSwing int
	MarketSeed     int64

	// Follow-up tracking.
	FollowUpQuarters int
	FollowUpChance   float64
}

// DefaultConfig is the baseline tuning the game ships with.
func DefaultConfig() Config {
	return Config{
		MaxCapital:     10,
		InitialCapital: 5,
		DecayThreshold: 8,
		DecayAmount:    1,

		HandSize:           5,
		MaxCardsPerQuarter: 3,

		RetirementThreshold: 500,

		CrisisChance: 0.6,

		BoostCost:      2,
		BoostGain:      10,
		SchmoozeCost:   1,
		SchmoozeGain:   3,
		ReorgCost:      1,
		RedemptionCost: 2,
		RedemptionGain: 3,
		ExchangeRate:   10,

		DirectiveBase:  20,
		DirectiveSwing: 15,
		MarketSeed:     1,

		FollowUpQuarters: 3,
		FollowUpChance:   0.3,
	}
}

// CardSurcharge returns the political-capital cost and the additional risk
// modifier for playing the (cardsPlayed+1)-th card of a quarter. The first
// card is free; the second and third get progressively riskier and dearer.
func (c Config) CardSurcharge(cardsPlayed int) (cost, riskModifier int) {
	switch cardsPlayed {
	case 0:
		return 0, 0
	case 1:
		return 1, 10
	default:
		return 2, 20
	}
}
