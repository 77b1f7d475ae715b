// Package card defines the playable project cards and the event (crisis)
// cards, each carrying a tiered outcome profile.
package card

import (
	"errors"
	"fmt"

	"github.com/talgya/boardroom/internal/crisis"
	"github.com/talgya/boardroom/internal/effect"
	"github.com/talgya/boardroom/internal/outcome"
)

// OutcomeProfile maps each tier to the effect list applied when a roll lands
// on it.
type OutcomeProfile map[outcome.Tier][]effect.Effect

// Affinity groups projects. Playing two projects of the same affinity in one
// quarter earns a synergy bonus on the later roll.
type Affinity string

const (
	AffinityProduct  Affinity = "product"
	AffinityFinance  Affinity = "finance"
	AffinityCulture  Affinity = "culture"
	AffinityPolitics Affinity = "politics"
)

// Project is a playable project card.
type Project struct {
	ID        string
	Title     string
	Affinity  Affinity
	Corporate bool // ethically compromised project
	EvilDelta int  // evil score taken on when played
	Profile   OutcomeProfile
	FollowUp  string // narrative hook; non-empty projects are tracked for delayed consequences
}

// Choice is one way to answer an event card. Cost is political capital;
// MitigationBonus and StaffWeights feed the crisis resolver when the event
// spawned a tracked crisis.
type Choice struct {
	ID              string
	Text            string
	Cost            int
	Corporate       bool
	MitigationBonus int
	StaffWeights    crisis.StaffWeights
	Profile         OutcomeProfile
}

// Event is a crisis card drawn at the end of card play. It carries between
// two and four choices and may spawn a tracked crisis instance.
type Event struct {
	ID      string
	Title   string
	Choices []Choice
	Crisis  *crisis.Template
}

var (
	// ErrChoiceCount rejects event cards outside the 2-4 choice rule.
	ErrChoiceCount = errors.New("event card needs 2 to 4 choices")
	// ErrDuplicateChoice rejects event cards with colliding choice ids.
	ErrDuplicateChoice = errors.New("duplicate choice id")
)

// NewEvent validates the choice-count rule and choice-id uniqueness.
func NewEvent(id, title string, choices []Choice, tmpl *crisis.Template) (Event, error) {
	if len(choices) < 2 || len(choices) > 4 {
		return Event{}, fmt.Errorf("event %s: %w (got %d)", id, ErrChoiceCount, len(choices))
	}
	seen := make(map[string]bool, len(choices))
	for _, c := range choices {
		if seen[c.ID] {
			return Event{}, fmt.Errorf("event %s: %w: %s", id, ErrDuplicateChoice, c.ID)
		}
		seen[c.ID] = true
	}
	return Event{ID: id, Title: title, Choices: choices, Crisis: tmpl}, nil
}

// Choice returns the choice with the given id.
func (e Event) Choice(id string) (Choice, bool) {
	for _, c := range e.Choices {
		if c.ID == id {
			return c, true
		}
	}
	return Choice{}, false
}

// mustEvent is for the static catalog, where a bad card is a programming
// error.
func mustEvent(id, title string, choices []Choice, tmpl *crisis.Template) Event {
	e, err := NewEvent(id, title, choices, tmpl)
	if err != nil {
		panic(err)
	}
	return e
}
