package engine

import (
	"fmt"

	"github.com/talgya/boardroom/internal/crisis"
	"github.com/talgya/boardroom/internal/effect"
	"github.com/talgya/boardroom/internal/outcome"
	"github.com/talgya/boardroom/internal/rng"
	"github.com/talgya/boardroom/internal/state"
)

// advanceCrisis consumes the choice answering the current crisis card. An
// unknown choice id is a hard error and leaves the state untouched.
func advanceCrisis(g Game, in Input, r *rng.Source) (Game, state.Log, error) {
	chosen, ok := in.(Choice)
	if !ok {
		return g, nil, ErrUnexpectedInput
	}
	if g.CurrentEvent == nil {
		return g, nil, ErrInvalidChoice
	}
	ch, ok := g.CurrentEvent.Choice(chosen.ChoiceID)
	if !ok {
		return g, nil, fmt.Errorf("%w: %q", ErrInvalidChoice, chosen.ChoiceID)
	}

	var log state.Log
	if ch.Cost > 0 {
		capital, err := g.Capital.WithSpend(ch.Cost)
		if err != nil {
			return g, nil, fmt.Errorf("crisis response %q: %w", ch.ID, err)
		}
		g.Capital = capital
		log = append(log, state.Infof("committed %d political capital to the response", ch.Cost))
	}
	if ch.Corporate {
		g.CEO = g.CEO.WithEvil(1)
		log = append(log, state.Infof("an ethically dubious response (evil +1)"))
	}

	weights := outcome.ChoiceWeights(ch.Cost > 0, ch.Corporate)
	tier := outcome.Roll(weights, r)
	log = append(log, state.Infof("the response plays out %s", tier))

	out := effect.Outcome{Org: g.Org, Profit: g.QuarterProfit}
	out, entries := effect.ApplyAll(ch.Profile[tier], out, g.Directive.ProfitTarget)
	g.Org = out.Org
	g.QuarterProfit = out.Profit
	log = append(log, entries...)

	// When the event spawned a tracked crisis, this choice doubles as the
	// response fed to the resolver.
	if g.CurrentEvent.Crisis != nil {
		if idx := liveCrisisIndex(g.Crises, g.CurrentEvent.Crisis.ID); idx >= 0 {
			res := crisis.Resolve(g.Crises[idx], crisis.Response{
				Cost:            ch.Cost,
				MitigationBonus: ch.MitigationBonus,
				Staff:           ch.StaffWeights,
			}, r)

			crises := append([]crisis.Instance(nil), g.Crises...)
			crises[idx] = res.Crisis
			g.Crises = crises

			log = append(log, state.Infof("%s: %s staff, modified roll %d, %s",
				res.Crisis.Name, res.Staff, res.Roll, res.Grade))
			if res.Downgraded {
				log = append(log, state.Infof("an underfunded response can only contain, not resolve"))
			}
			if res.SideEffect != nil && !hasSideEffect(g.SideEffects, res.SideEffect.ID) {
				g.SideEffects = cloneAppend(g.SideEffects, *res.SideEffect)
				log = append(log, state.Infof("an %s now haunts the effort (recurring)", res.SideEffect.Name))
			}
		}
	}

	g.Events = g.Events.DiscardItem(*g.CurrentEvent)
	g.CurrentEvent = nil
	g.Quarter = g.Quarter.Next()
	return g, log, nil
}

// liveCrisisIndex finds the most recent live instance spawned from the given
// template.
func liveCrisisIndex(crises []crisis.Instance, templateID string) int {
	for i := len(crises) - 1; i >= 0; i-- {
		if crises[i].ID == templateID && crises[i].Live() {
			return i
		}
	}
	return -1
}

func hasSideEffect(effects []crisis.SideEffect, id string) bool {
	for _, se := range effects {
		if se.ID == id {
			return true
		}
	}
	return false
}
