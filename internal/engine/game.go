package engine

import (
	"github.com/talgya/boardroom/internal/card"
	"github.com/talgya/boardroom/internal/crisis"
	"github.com/talgya/boardroom/internal/deck"
	"github.com/talgya/boardroom/internal/market"
	"github.com/talgya/boardroom/internal/outcome"
	"github.com/talgya/boardroom/internal/rng"
	"github.com/talgya/boardroom/internal/state"
)

// Directive is the board's demand for the quarter.
type Directive struct {
	ProfitTarget int
	Met          bool
}

// FollowUp tracks a played project for a bounded number of quarters so it
// can surface a delayed consequence.
type FollowUp struct {
	CardID         string
	Title          string
	Hook           string
	Tier           outcome.Tier
	CreatedQuarter int
	ExpiresQuarter int
}

// Game is one full immutable snapshot of a session. Advance returns a new
// Game; treat returned values as frozen and pass them forward, never mutate
// them in place.
type Game struct {
	Config  Config
	Org     state.Org
	CEO     state.CEO
	Capital state.Capital
	Quarter state.Quarter

	Directive Directive

	Projects deck.Deck[card.Project]
	Hand     []card.Project
	Events   deck.Deck[card.Event]

	// CurrentEvent is set only during the Crisis phase.
	CurrentEvent *card.Event

	Crises      []crisis.Instance
	SideEffects []crisis.SideEffect
	FollowUps   []FollowUp

	// Per-quarter bookkeeping, reset at BoardDemand.
	CardsPlayed      int
	QuarterProfit    int
	QuarterTiers     []outcome.Tier
	PlayedAffinities []card.Affinity

	// Cross-quarter bookkeeping.
	LastProfit  int
	WeakStreak  int
	LastTier    outcome.Tier
	HasLastTier bool

	climate market.Climate
}

// NewGame deals a fresh session: shuffled decks, a full hand, baseline
// state. The rng draws here are part of the session's deterministic history.
func NewGame(cfg Config, projects []card.Project, events []card.Event, r *rng.Source) Game {
	g := Game{
		Config:  cfg,
		Org:     state.NewOrg(),
		CEO:     state.NewCEO(cfg.RetirementThreshold),
		Capital: state.NewCapital(cfg.InitialCapital, cfg.MaxCapital, cfg.DecayThreshold, cfg.DecayAmount),
		Quarter: state.NewQuarter(),
		climate: market.NewClimate(cfg.MarketSeed),
	}
	g.Projects = deck.New(projects).Reshuffle(r)
	g.Events = deck.New(events).Reshuffle(r)
	g, _ = refillHand(g, r)
	return g
}

// refillHand draws projects until the hand is full or the deck runs dry.
func refillHand(g Game, r *rng.Source) (Game, int) {
	drawn := 0
	hand := append([]card.Project(nil), g.Hand...)
	projects := g.Projects
	for len(hand) < g.Config.HandSize {
		c, next, ok := projects.Draw(r)
		if !ok {
			break
		}
		projects = next
		hand = append(hand, c)
		drawn++
	}
	g.Hand = hand
	g.Projects = projects
	return g, drawn
}

// cloneAppend appends without aliasing the shared backing array, preserving
// the immutability of previously returned snapshots.
func cloneAppend[S ~[]E, E any](s S, v E) S {
	out := make(S, len(s), len(s)+1)
	copy(out, s)
	return append(out, v)
}

// removeAt returns a copy of s without the element at index i.
func removeAt[S ~[]E, E any](s S, i int) S {
	out := make(S, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}
