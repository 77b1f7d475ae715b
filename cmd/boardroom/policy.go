package main

import (
	"github.com/talgya/boardroom/internal/engine"
	"github.com/talgya/boardroom/internal/state"
)

// decide is the autoplay policy: a steward, not an optimizer. It shores up
// collapsing meters, plays up to two projects a quarter when it can afford
// the surcharge, answers crises with the cheapest honest response, and
// retires the moment the package vests.
func decide(g engine.Game) engine.Input {
	switch g.Quarter.Phase {
	case state.PhaseBoardDemand:
		return engine.Empty{}

	case state.PhasePlayCards:
		// A meter in free fall comes first.
		if m, ok := collapsingMeter(g); ok && g.Capital.CanAfford(g.Config.BoostCost) {
			return engine.MeterBoost{Meter: m}
		}

		// Play up to two projects, skipping corporate ones while the board
		// still thinks well of us.
		if g.CardsPlayed < 2 && len(g.Hand) > 0 {
			cost, _ := g.Config.CardSurcharge(g.CardsPlayed)
			if g.Capital.CanAfford(cost) {
				if id, ok := pickProject(g); ok {
					return engine.PlayCard{CardID: id, EndAfter: g.CardsPlayed == 1}
				}
			}
		}
		return engine.EndCardPlay{}

	case state.PhaseCrisis:
		if g.CurrentEvent != nil {
			return engine.Choice{ChoiceID: pickChoice(g)}
		}
		return engine.Empty{}

	case state.PhaseResolution:
		if g.CEO.CanRetire() {
			return engine.Retirement{}
		}
		return engine.Empty{}
	}
	return engine.Empty{}
}

// collapsingMeter reports the lowest meter under 25, if any.
func collapsingMeter(g engine.Game) (state.Meter, bool) {
	const floor = 25
	lowest := state.Delivery
	lowestVal := floor
	found := false
	for _, m := range state.Meters() {
		if v := g.Org.Meter(m); v < lowestVal {
			lowest, lowestVal, found = m, v, true
		}
	}
	return lowest, found
}

// pickProject prefers clean projects; corporate ones only when favorability
// is already shot and the upside is needed.
func pickProject(g engine.Game) (string, bool) {
	for _, c := range g.Hand {
		if !c.Corporate {
			return c.ID, true
		}
	}
	if g.CEO.Favorability < 30 && len(g.Hand) > 0 {
		return g.Hand[0].ID, true
	}
	return "", false
}

// pickChoice takes the cheapest affordable non-corporate response, falling
// back to the first free one.
func pickChoice(g engine.Game) string {
	ev := *g.CurrentEvent

	bestID := ""
	bestCost := -1
	for _, ch := range ev.Choices {
		if ch.Corporate || !g.Capital.CanAfford(ch.Cost) {
			continue
		}
		if bestCost < 0 || ch.Cost < bestCost {
			bestID, bestCost = ch.ID, ch.Cost
		}
	}
	if bestID != "" {
		return bestID
	}
	// Everything decent is unaffordable; take the first choice we can pay
	// for, corporate or not.
	for _, ch := range ev.Choices {
		if g.Capital.CanAfford(ch.Cost) {
			return ch.ID
		}
	}
	return ev.Choices[0].ID
}
