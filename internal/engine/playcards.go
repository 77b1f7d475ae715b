package engine

import (
	"fmt"

	"github.com/talgya/boardroom/internal/crisis"
	"github.com/talgya/boardroom/internal/effect"
	"github.com/talgya/boardroom/internal/outcome"
	"github.com/talgya/boardroom/internal/rng"
	"github.com/talgya/boardroom/internal/state"
)

// Bonuses feeding the outcome weighting.
const (
	momentumBonus = 5
	affinityBonus = 5
)

func advancePlayCards(g Game, in Input, r *rng.Source) (Game, state.Log, error) {
	switch v := in.(type) {
	case PlayCard:
		return playCard(g, v, r)
	case EndCardPlay:
		return endCardPlay(g, nil, r)
	case MeterExchange:
		return meterExchange(g, v)
	case MeterBoost:
		return meterBoost(g, v)
	case BoardSchmooze:
		return boardSchmooze(g)
	case Reorg:
		return reorg(g, r)
	case EvilRedemption:
		return evilRedemption(g)
	default:
		return g, nil, ErrUnexpectedInput
	}
}

func playCard(g Game, in PlayCard, r *rng.Source) (Game, state.Log, error) {
	if g.CardsPlayed >= g.Config.MaxCardsPerQuarter {
		return g, nil, ErrCardLimit
	}
	idx := -1
	for i, c := range g.Hand {
		if c.ID == in.CardID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return g, nil, ErrCardNotInHand
	}

	cost, riskMod := g.Config.CardSurcharge(g.CardsPlayed)
	capital, err := g.Capital.WithSpend(cost)
	if err != nil {
		return g, nil, fmt.Errorf("play card %s: %w", in.CardID, err)
	}

	c := g.Hand[idx]
	g.Capital = capital
	g.Hand = removeAt(g.Hand, idx)
	g.Projects = g.Projects.DiscardItem(c)

	var log state.Log
	if cost > 0 {
		log = append(log, state.Infof("spent %d political capital pushing %s through", cost, c.Title))
	}

	// Corporate projects leave their mark before the dice are cast.
	if c.Corporate && c.EvilDelta > 0 {
		g.CEO = g.CEO.WithEvil(c.EvilDelta)
		log = append(log, state.Infof("%s compromises the company's ethics (evil +%d)", c.Title, c.EvilDelta))
	}

	momentum := 0
	if g.HasLastTier && g.LastTier == outcome.Good && g.CardsPlayed > 0 {
		momentum = momentumBonus
	}
	synergy := 0
	for _, a := range g.PlayedAffinities {
		if a == c.Affinity {
			synergy = affinityBonus
			break
		}
	}

	weights := outcome.GetWeights(outcome.Context{
		Alignment:              g.Org.Meter(state.Alignment),
		PressureLevel:          g.CEO.PressureLevel,
		EvilScore:              g.CEO.EvilScore,
		AdditionalRiskModifier: riskMod,
		QuarterNumber:          g.Quarter.Number,
		MomentumBonus:          momentum,
		AffinitySynergyBonus:   synergy,
		CorporateCard:          c.Corporate,
	})
	tier := outcome.Roll(weights, r)
	log = append(log, state.Infof("%s resolves %s (weights %d/%d/%d)",
		c.Title, tier, weights.Good, weights.Expected, weights.Bad))

	out := effect.Outcome{Org: g.Org, Profit: g.QuarterProfit}
	out, entries := effect.ApplyAll(c.Profile[tier], out, g.Directive.ProfitTarget)
	g.Org = out.Org
	g.QuarterProfit = out.Profit
	log = append(log, entries...)

	g.CardsPlayed++
	g.QuarterTiers = cloneAppend(g.QuarterTiers, tier)
	g.PlayedAffinities = cloneAppend(g.PlayedAffinities, c.Affinity)
	g.LastTier = tier
	g.HasLastTier = true

	if c.FollowUp != "" {
		g.FollowUps = cloneAppend(g.FollowUps, FollowUp{
			CardID:         c.ID,
			Title:          c.Title,
			Hook:           c.FollowUp,
			Tier:           tier,
			CreatedQuarter: g.Quarter.Number,
			ExpiresQuarter: g.Quarter.Number + g.Config.FollowUpQuarters,
		})
	}

	if in.EndAfter || g.CardsPlayed >= g.Config.MaxCardsPerQuarter {
		return endCardPlay(g, log, r)
	}
	return g, log, nil
}

// endCardPlay closes the phase: one draw decides whether a crisis card
// lands. With a crisis the game moves to the Crisis phase, otherwise
// straight to Resolution.
func endCardPlay(g Game, log state.Log, r *rng.Source) (Game, state.Log, error) {
	if r.Float64() < g.Config.CrisisChance {
		if ev, next, ok := g.Events.Draw(r); ok {
			g.Events = next
			g.CurrentEvent = &ev
			log = append(log, state.Infof("crisis lands on the CEO's desk: %s", ev.Title))

			if ev.Crisis != nil {
				inst := crisis.Spawn(*ev.Crisis, g.Quarter.Number)
				// One-time base impact, applied in fixed meter order.
				for _, m := range state.Meters() {
					if d := inst.BaseImpact[m]; d != 0 {
						g.Org = g.Org.With(m, d)
						log = append(log, state.MeterChanged(m, d, "%s hits: %s %+d", inst.Name, m, d))
					}
				}
				g.Crises = cloneAppend(g.Crises, inst)
				log = append(log, state.Infof("%s opens (severity %d, deadline Q%d)",
					inst.Name, inst.Severity, inst.DeadlineQuarter))
			}

			g.Quarter = g.Quarter.Next()
			return g, log, nil
		}
	}

	log = append(log, state.Infof("a quiet close to the quarter; no crisis surfaces"))
	g.Quarter = g.Quarter.WithPhase(state.PhaseResolution)
	return g, log, nil
}

func meterExchange(g Game, in MeterExchange) (Game, state.Log, error) {
	rate := g.Config.ExchangeRate
	if in.Amount <= 0 || in.Amount%rate != 0 {
		return g, nil, ErrBadExchange
	}
	if g.Org.Meter(in.Meter) < in.Amount {
		return g, nil, ErrBadExchange
	}
	gain := in.Amount / rate
	g.Org = g.Org.With(in.Meter, -in.Amount)
	g.Capital = g.Capital.WithEarn(gain)
	return g, state.Log{
		state.MeterChanged(in.Meter, -in.Amount, "traded %d %s for capital", in.Amount, in.Meter),
		state.Infof("political capital +%d (now %d)", gain, g.Capital.Value),
	}, nil
}

func meterBoost(g Game, in MeterBoost) (Game, state.Log, error) {
	capital, err := g.Capital.WithSpend(g.Config.BoostCost)
	if err != nil {
		return g, nil, fmt.Errorf("meter boost: %w", err)
	}
	g.Capital = capital
	g.Org = g.Org.With(in.Meter, g.Config.BoostGain)
	return g, state.Log{
		state.MeterChanged(in.Meter, g.Config.BoostGain, "capital spent shoring up %s %+d", in.Meter, g.Config.BoostGain),
	}, nil
}

func boardSchmooze(g Game) (Game, state.Log, error) {
	capital, err := g.Capital.WithSpend(g.Config.SchmoozeCost)
	if err != nil {
		return g, nil, fmt.Errorf("board schmooze: %w", err)
	}
	g.Capital = capital
	g.CEO = g.CEO.WithFavorability(g.Config.SchmoozeGain)
	return g, state.Log{
		state.Infof("an evening of schmoozing; favorability +%d (now %d)",
			g.Config.SchmoozeGain, g.CEO.Favorability),
	}, nil
}

func reorg(g Game, r *rng.Source) (Game, state.Log, error) {
	capital, err := g.Capital.WithSpend(g.Config.ReorgCost)
	if err != nil {
		return g, nil, fmt.Errorf("reorg: %w", err)
	}
	g.Capital = capital

	discarded := len(g.Hand)
	projects := g.Projects
	for _, c := range g.Hand {
		projects = projects.DiscardItem(c)
	}
	g.Hand = nil
	g.Projects = projects

	var drawn int
	g, drawn = refillHand(g, r)
	return g, state.Log{
		state.Infof("re-org: %d projects shelved, %d new ones on the table", discarded, drawn),
	}, nil
}

func evilRedemption(g Game) (Game, state.Log, error) {
	capital, err := g.Capital.WithSpend(g.Config.RedemptionCost)
	if err != nil {
		return g, nil, fmt.Errorf("evil redemption: %w", err)
	}
	g.Capital = capital
	before := g.CEO.EvilScore
	g.CEO = g.CEO.WithEvil(-g.Config.RedemptionGain)
	return g, state.Log{
		state.Infof("a very public act of contrition; evil %d -> %d", before, g.CEO.EvilScore),
	}, nil
}
