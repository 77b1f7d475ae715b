// Package effect defines the closed set of state-changing effects a card or
// choice can carry, and their application against the value state.
package effect

import (
	"fmt"

	"github.com/talgya/boardroom/internal/state"
)

// Effect is the closed effect hierarchy. The two kinds are Meter and Profit;
// Apply switches over them exhaustively and panics on anything else, so a
// new kind cannot slip through unhandled.
type Effect interface {
	isEffect()
}

// Meter shifts one organizational meter by a signed delta.
type Meter struct {
	Meter state.Meter
	Delta int
}

// Profit shifts the quarter's profit by a signed delta. PerTarget scales the
// delta by the board's current revenue target (delta per 100 target points),
// used by revenue projects whose payoff tracks the directive.
type Profit struct {
	Delta     int
	PerTarget bool
}

func (Meter) isEffect()  {}
func (Profit) isEffect() {}

// Outcome is the slice of state effects act on: the org meters and the
// quarter's running profit.
type Outcome struct {
	Org    state.Org
	Profit int
}

// Apply runs one effect against out, returning the new state slice and a
// structured log entry. Inputs are never mutated; meter saturation is
// silent.
func Apply(e Effect, out Outcome, target int) (Outcome, state.LogEntry) {
	switch ef := e.(type) {
	case Meter:
		out.Org = out.Org.With(ef.Meter, ef.Delta)
		return out, state.MeterChanged(ef.Meter, ef.Delta, "%s %+d", ef.Meter, ef.Delta)
	case Profit:
		delta := ef.Delta
		if ef.PerTarget {
			delta = ef.Delta * target / 100
		}
		out.Profit += delta
		return out, state.ProfitChanged(delta, "profit %+d", delta)
	default:
		panic(fmt.Sprintf("effect: unhandled kind %T", e))
	}
}

// ApplyAll applies effects in list order, emitting one log entry each.
func ApplyAll(effects []Effect, out Outcome, target int) (Outcome, state.Log) {
	log := make(state.Log, 0, len(effects))
	for _, e := range effects {
		var entry state.LogEntry
		out, entry = Apply(e, out, target)
		log = append(log, entry)
	}
	return out, log
}
