package crisis

import (
	"github.com/talgya/boardroom/internal/rng"
	"github.com/talgya/boardroom/internal/state"
)

// StaffQuality is who actually ends up running the response.
type StaffQuality uint8

const (
	Inept StaffQuality = iota
	Standard
	Good
)

func (q StaffQuality) String() string {
	switch q {
	case Inept:
		return "Inept"
	case Standard:
		return "Standard"
	case Good:
		return "Good"
	}
	return "Unknown"
}

// StaffWeights is the response-specific staffing distribution.
type StaffWeights struct {
	Inept    int
	Standard int
	Good     int
}

// Resolution thresholds on the d20 scale, and the staff roll modifiers.
const (
	successThreshold = 15
	mixedThreshold   = 8

	ineptModifier = -3
	goodModifier  = 3
)

// Grade is how a response landed.
type Grade uint8

const (
	Success Grade = iota
	Mixed
	Fail
)

func (g Grade) String() string {
	switch g {
	case Success:
		return "Success"
	case Mixed:
		return "Mixed"
	case Fail:
		return "Fail"
	}
	return "Unknown"
}

// Response is what the player threw at the crisis.
type Response struct {
	Cost            int // political capital committed
	MitigationBonus int
	Staff           StaffWeights
}

// SideEffect is a named recurring consequence spawned by a botched response,
// tracked by ID so it is only ever applied once per game.
type SideEffect struct {
	ID     string
	Name   string
	Impact map[state.Meter]int
}

// Resolution is the full result of resolving a response against a crisis.
type Resolution struct {
	Grade      Grade
	Staff      StaffQuality
	Roll       int  // modified roll
	Downgraded bool // success gated down by an underfunded response
	Crisis     Instance
	SideEffect *SideEffect
}

// DrawStaff picks the staff quality from the response's weight table with a
// single cumulative draw. A zero table defaults to standard staff.
func DrawStaff(w StaffWeights, r *rng.Source) StaffQuality {
	total := w.Inept + w.Standard + w.Good
	if total <= 0 {
		return Standard
	}
	v := r.IntN(0, total)
	switch {
	case v < w.Inept:
		return Inept
	case v < w.Inept+w.Standard:
		return Standard
	default:
		return Good
	}
}

func staffModifier(q StaffQuality) int {
	switch q {
	case Inept:
		return ineptModifier
	case Good:
		return goodModifier
	}
	return 0
}

// Resolve rolls the response against the crisis: staff quality is drawn from
// the response's weight table, the modified d20 roll picks Success, Mixed,
// or Fail, and a would-be Success is downgraded to Mixed when the response
// spent less than the crisis demands for a full mitigation. Inept staff on
// anything short of a Success saddles the company with a recurring side
// effect.
func Resolve(inst Instance, resp Response, r *rng.Source) Resolution {
	staff := DrawStaff(resp.Staff, r)
	roll := r.IntN(1, 21) + resp.MitigationBonus + staffModifier(staff)

	grade := Fail
	switch {
	case roll >= successThreshold:
		grade = Success
	case roll >= mixedThreshold:
		grade = Mixed
	}

	downgraded := false
	if grade == Success && inst.MinSpend > 0 && resp.Cost < inst.MinSpend {
		grade = Mixed
		downgraded = true
	}

	next := inst
	switch grade {
	case Success:
		next.Status = Mitigated
	case Mixed:
		next.Severity--
		if next.Severity < SeverityMin {
			next.Severity = SeverityMin - 1
			next.Status = Mitigated
		}
	case Fail:
		next.Status = Escalated
		if next.Severity < SeverityMax {
			next.Severity++
		}
	}

	res := Resolution{
		Grade:      grade,
		Staff:      staff,
		Roll:       roll,
		Downgraded: downgraded,
		Crisis:     next,
	}
	if staff == Inept && grade != Success {
		res.SideEffect = &SideEffect{
			ID:   "inept-project-manager",
			Name: "inept project manager",
			Impact: map[state.Meter]int{
				state.Delivery: -2,
				state.Morale:   -1,
			},
		}
	}
	return res
}
