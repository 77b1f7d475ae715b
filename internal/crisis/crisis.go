// Package crisis tracks time-boxed crises: severity, deadlines, ongoing
// meter impact, and the staff-quality resolver for player responses.
package crisis

import "github.com/talgya/boardroom/internal/state"

// Status is the crisis lifecycle state.
type Status uint8

const (
	Active Status = iota
	Mitigated
	Escalated
	Expired
)

func (s Status) String() string {
	switch s {
	case Active:
		return "Active"
	case Mitigated:
		return "Mitigated"
	case Escalated:
		return "Escalated"
	case Expired:
		return "Expired"
	}
	return "Unknown"
}

// Severity bounds.
const (
	SeverityMin = 1
	SeverityMax = 5
)

// Template is the static shape of a crisis carried by an event card.
type Template struct {
	ID               string
	Name             string
	Severity         int // 1-5
	DeadlineQuarters int // quarters until it expires unresolved
	BaseImpact       map[state.Meter]int // applied once when the crisis lands
	OngoingImpact    map[state.Meter]int // applied every quarter while live
	MinSpend         int // political capital required for a full mitigation
}

// Instance is a live crisis spawned from a template.
type Instance struct {
	ID              string
	Name            string
	Severity        int
	CreatedQuarter  int
	DeadlineQuarter int
	BaseImpact      map[state.Meter]int
	OngoingImpact   map[state.Meter]int
	MinSpend        int
	Status          Status
}

// Spawn instantiates a template in the given quarter.
func Spawn(t Template, quarter int) Instance {
	return Instance{
		ID:              t.ID,
		Name:            t.Name,
		Severity:        t.Severity,
		CreatedQuarter:  quarter,
		DeadlineQuarter: quarter + t.DeadlineQuarters,
		BaseImpact:      t.BaseImpact,
		OngoingImpact:   t.OngoingImpact,
		MinSpend:        t.MinSpend,
		Status:          Active,
	}
}

// Live reports whether the crisis still drags on the org each quarter.
func (i Instance) Live() bool {
	return i.Status == Active || i.Status == Escalated
}

// ExpireDue moves crises whose deadline has passed out of the live set and
// returns them for narrative handling. Mitigated crises are dropped from the
// remaining set.
func ExpireDue(instances []Instance, quarter int) (remaining, expired []Instance) {
	for _, c := range instances {
		if !c.Live() {
			continue
		}
		if c.DeadlineQuarter <= quarter {
			c.Status = Expired
			expired = append(expired, c)
			continue
		}
		remaining = append(remaining, c)
	}
	return remaining, expired
}
