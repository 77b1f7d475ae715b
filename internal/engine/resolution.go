package engine

import (
	"github.com/talgya/boardroom/internal/board"
	"github.com/talgya/boardroom/internal/effect"
	"github.com/talgya/boardroom/internal/outcome"
	"github.com/talgya/boardroom/internal/rng"
	"github.com/talgya/boardroom/internal/state"
)

// advanceResolution closes the quarter: crisis drag, profit, favorability,
// capital drift, the ouster roll, and retirement. It either flips a terminal
// flag or rolls into the next quarter's BoardDemand.
func advanceResolution(g Game, in Input, r *rng.Source) (Game, state.Log, error) {
	_, wantsRetirement := in.(Retirement)
	if !wantsRetirement {
		if _, ok := in.(Empty); !ok {
			return g, nil, ErrUnexpectedInput
		}
	}

	var log state.Log

	// Live crises keep grinding the org down.
	for _, c := range g.Crises {
		if !c.Live() {
			continue
		}
		for _, m := range state.Meters() {
			if d := c.OngoingImpact[m]; d != 0 {
				g.Org = g.Org.With(m, d)
				log = append(log, state.MeterChanged(m, d, "%s drags on: %s %+d", c.Name, m, d))
			}
		}
	}
	// So do recurring side-effects of botched responses.
	for _, se := range g.SideEffects {
		for _, m := range state.Meters() {
			if d := se.Impact[m]; d != 0 {
				g.Org = g.Org.With(m, d)
				log = append(log, state.MeterChanged(m, d, "the %s strikes again: %s %+d", se.Name, m, d))
			}
		}
	}

	// Follow-ups from past projects may fire a delayed consequence.
	g, log = processFollowUps(g, log, r)

	// Quarterly profit: card results plus operating drift from delivery
	// health.
	operating := g.Org.Meter(state.Delivery) - 50
	profit := g.QuarterProfit + operating
	g.CEO = g.CEO.WithProfit(profit)
	log = append(log, state.ProfitChanged(profit, "quarterly profit %+d (operating %+d)", profit, operating))

	directiveMet := profit >= g.Directive.ProfitTarget
	g.Directive.Met = directiveMet
	if directiveMet {
		log = append(log, state.Infof("the board's demand was met"))
	} else {
		log = append(log, state.Infof("the board's demand was missed (%+d of %+d)", profit, g.Directive.ProfitTarget))
	}

	// Favorability, with low-meter and low-activity scrutiny.
	delta := board.Calculate(g.LastProfit, profit, directiveMet,
		g.CEO.PressureLevel, g.CEO.EvilScore, g.WeakStreak)

	meterAdj := board.LowMeterAdjustment(g.Org)
	if meterAdj.Capped && delta > meterAdj.MaxGain {
		delta = meterAdj.MaxGain
	}
	delta -= meterAdj.Penalty
	if meterAdj.Message != "" {
		log = append(log, state.Infof("%s", meterAdj.Message))
	}

	quarterIndex := g.Quarter.Number - 1
	actAdj := board.LowActivityAdjustment(g.CardsPlayed, quarterIndex)
	if actAdj.Capped && delta > actAdj.MaxGain {
		delta = actAdj.MaxGain
	}
	delta -= actAdj.Penalty
	if actAdj.Penalty > 0 {
		log = append(log, state.Infof("the board expected %d projects and saw %d", actAdj.Expected, g.CardsPlayed))
	}

	g.CEO = g.CEO.WithFavorability(delta)
	log = append(log, state.Infof("board favorability %+d (now %d)", delta, g.CEO.Favorability))

	// Political capital drifts with org health.
	capitalBefore := g.Capital.Value
	g.Capital = g.Capital.WithTurnEndAdjustments(g.Org)
	if d := g.Capital.Value - capitalBefore; d != 0 {
		log = append(log, state.Infof("political capital %+d (now %d)", d, g.Capital.Value))
	}

	// The ouster roll.
	profitGrew := profit > g.LastProfit
	threshold := board.Threshold(g.CEO.Favorability, g.CEO.PressureLevel,
		g.CEO.QuartersSurvived, g.CEO.EvilScore, directiveMet, profitGrew, false)
	if threshold > 0 {
		log = append(log, state.Infof("ouster risk %d%%", board.Risk(threshold)))
		if board.RollForOuster(threshold, r) {
			g.CEO = g.CEO.WithOusted()
			log = append(log, state.Infof("the board votes; the CEO is out"))
			return g, log, nil
		}
	}

	// Retirement accrual and, if requested and vested, the exit.
	couldRetire := g.CEO.CanRetire()
	if profit > 0 {
		accrual := profit / 5
		g.CEO = g.CEO.WithRetirementAccrual(accrual)
		if accrual > 0 {
			log = append(log, state.Infof("retirement bonus +%d (%d of %d)",
				accrual, g.CEO.RetirementBonus, g.CEO.RetirementThreshold))
		}
	}
	if g.CEO.CanRetire() && !couldRetire {
		log = append(log, state.Infof("the retirement package has vested"))
	}
	if wantsRetirement {
		if g.CEO.CanRetire() {
			g.CEO = g.CEO.WithRetired()
			log = append(log, state.Infof("the CEO retires on a high note"))
			return g, log, nil
		}
		log = append(log, state.Infof("retirement requested, but the package has not vested"))
	}

	// Streak of weak quarters: nothing shipped, or everything shipped badly.
	if g.CardsPlayed == 0 || allBad(g.QuarterTiers) {
		g.WeakStreak++
	} else {
		g.WeakStreak = 0
	}

	g.CEO = g.CEO.WithQuarterSurvived()
	g.LastProfit = profit
	g.Quarter = g.Quarter.Next()
	return g, log, nil
}

// processFollowUps fires or expires pending follow-ups. Each pending entry
// costs exactly one rng draw, keeping the draw order input-determined.
func processFollowUps(g Game, log state.Log, r *rng.Source) (Game, state.Log) {
	if len(g.FollowUps) == 0 {
		return g, log
	}
	var keep []FollowUp
	for _, f := range g.FollowUps {
		if f.CreatedQuarter == g.Quarter.Number {
			// Too fresh to fire; skip the draw so same-quarter plays cannot
			// echo immediately.
			keep = append(keep, f)
			continue
		}
		if f.ExpiresQuarter <= g.Quarter.Number {
			continue
		}
		if r.Float64() >= g.Config.FollowUpChance {
			keep = append(keep, f)
			continue
		}
		effects, note := followUpConsequence(f)
		log = append(log, state.Infof("%s: %s", note, f.Hook))
		out := effect.Outcome{Org: g.Org, Profit: g.QuarterProfit}
		out, entries := effect.ApplyAll(effects, out, g.Directive.ProfitTarget)
		g.Org = out.Org
		g.QuarterProfit = out.Profit
		log = append(log, entries...)
	}
	g.FollowUps = keep
	return g, log
}

// followUpConsequence keys the delayed echo to how the project originally
// resolved.
func followUpConsequence(f FollowUp) ([]effect.Effect, string) {
	switch f.Tier {
	case outcome.Good:
		return []effect.Effect{
			effect.Meter{Meter: state.Morale, Delta: 2},
			effect.Profit{Delta: 5},
		}, f.Title + " keeps paying off"
	case outcome.Bad:
		return []effect.Effect{
			effect.Meter{Meter: state.Governance, Delta: -2},
			effect.Profit{Delta: -5},
		}, f.Title + " comes back to bite"
	default:
		return []effect.Effect{
			effect.Meter{Meter: state.Alignment, Delta: 1},
		}, f.Title + " winds down quietly"
	}
}

func allBad(tiers []outcome.Tier) bool {
	if len(tiers) == 0 {
		return false
	}
	for _, t := range tiers {
		if t != outcome.Bad {
			return false
		}
	}
	return true
}
