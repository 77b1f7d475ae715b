package state

// Phase is one of the four quarter phases, advanced in a fixed cyclic order.
type Phase uint8

const (
	PhaseBoardDemand Phase = iota
	PhasePlayCards
	PhaseCrisis
	PhaseResolution
)

func (p Phase) String() string {
	switch p {
	case PhaseBoardDemand:
		return "BoardDemand"
	case PhasePlayCards:
		return "PlayCards"
	case PhaseCrisis:
		return "Crisis"
	case PhaseResolution:
		return "Resolution"
	}
	return "Unknown"
}

// Quarter marks the position in the game: the quarter number (from 1) and
// the current phase.
type Quarter struct {
	Number int
	Phase  Phase
}

// NewQuarter starts the game at quarter 1, BoardDemand.
func NewQuarter() Quarter {
	return Quarter{Number: 1, Phase: PhaseBoardDemand}
}

// Next follows the fixed cycle. Resolution rolls over to BoardDemand of the
// next quarter.
func (q Quarter) Next() Quarter {
	if q.Phase == PhaseResolution {
		return Quarter{Number: q.Number + 1, Phase: PhaseBoardDemand}
	}
	return Quarter{Number: q.Number, Phase: q.Phase + 1}
}

// WithPhase jumps within the same quarter, used when a phase is skipped
// (e.g. no crisis card was drawn).
func (q Quarter) WithPhase(p Phase) Quarter {
	return Quarter{Number: q.Number, Phase: p}
}
