// Package engine is the quarter orchestrator: a four-phase state machine
// advanced one input at a time. Advance is a pure function of
// (state, input, random source); replaying the same seed and inputs
// reproduces the same states and logs.
package engine

import (
	"fmt"

	"github.com/talgya/boardroom/internal/crisis"
	"github.com/talgya/boardroom/internal/rng"
	"github.com/talgya/boardroom/internal/state"
)

// Advance runs one step of the quarter state machine:
// BoardDemand -> PlayCards -> Crisis -> Resolution -> next BoardDemand.
// It returns the successor snapshot and an ordered log of what happened.
// On error the returned Game is the unchanged input.
func Advance(g Game, in Input, r *rng.Source) (Game, state.Log, error) {
	if g.CEO.Terminal() {
		return g, nil, ErrTerminalState
	}

	switch g.Quarter.Phase {
	case state.PhaseBoardDemand:
		return advanceBoardDemand(g, r)
	case state.PhasePlayCards:
		return advancePlayCards(g, in, r)
	case state.PhaseCrisis:
		return advanceCrisis(g, in, r)
	case state.PhaseResolution:
		return advanceResolution(g, in, r)
	}
	return g, nil, fmt.Errorf("engine: unknown phase %d", g.Quarter.Phase)
}

// advanceBoardDemand opens the quarter: expired crises are swept out, the
// hand is refilled, and the board sets its demand from the market climate.
// Any input advances this phase.
func advanceBoardDemand(g Game, r *rng.Source) (Game, state.Log, error) {
	var log state.Log

	remaining, expired := crisis.ExpireDue(g.Crises, g.Quarter.Number)
	g.Crises = remaining
	for _, c := range expired {
		log = append(log, state.Infof("%s expired unresolved; the damage is done", c.Name))
	}

	var drawn int
	g, drawn = refillHand(g, r)
	if drawn > 0 {
		log = append(log, state.Infof("drew %d project cards", drawn))
	}

	climate := g.climate.At(g.Quarter.Number)
	target := g.Config.DirectiveBase + int(float64(g.Config.DirectiveSwing)*(2*climate-1))
	g.Directive = Directive{ProfitTarget: target}
	log = append(log, state.Infof("board demand: deliver %+d profit this quarter", target))

	g.CardsPlayed = 0
	g.QuarterProfit = 0
	g.QuarterTiers = nil
	g.PlayedAffinities = nil
	g.CurrentEvent = nil

	g.Quarter = g.Quarter.Next()
	return g, log, nil
}
