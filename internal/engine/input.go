package engine

import "github.com/talgya/boardroom/internal/state"

// Input is the closed set of player commands fed to Advance. Exactly one
// variant is consumed per call; the phase decides which variants are legal.
type Input interface {
	isInput()
}

// Empty advances phases that need no decision (BoardDemand, Resolution).
type Empty struct{}

// PlayCard plays a project from the hand. EndAfter closes the PlayCards
// phase once the card resolves.
type PlayCard struct {
	CardID   string
	EndAfter bool
}

// EndCardPlay closes the PlayCards phase without playing another card.
type EndCardPlay struct{}

// Choice answers the current crisis card during the Crisis phase.
type Choice struct {
	ChoiceID string
}

// MeterExchange trades meter points for political capital.
type MeterExchange struct {
	Meter  state.Meter
	Amount int // meter points sacrificed; a multiple of the exchange rate
}

// MeterBoost spends political capital to shore up one meter.
type MeterBoost struct {
	Meter state.Meter
}

// BoardSchmooze spends political capital on board favorability.
type BoardSchmooze struct{}

// Reorg spends political capital to discard the hand and redraw.
type Reorg struct{}

// EvilRedemption spends political capital to walk back corporate drift.
type EvilRedemption struct{}

// Retirement requests retirement at Resolution; honored only when the
// accumulated bonus has crossed the threshold, otherwise the quarter simply
// proceeds.
type Retirement struct{}

func (Empty) isInput()          {}
func (PlayCard) isInput()       {}
func (EndCardPlay) isInput()    {}
func (Choice) isInput()         {}
func (MeterExchange) isInput()  {}
func (MeterBoost) isInput()     {}
func (BoardSchmooze) isInput()  {}
func (Reorg) isInput()          {}
func (EvilRedemption) isInput() {}
func (Retirement) isInput()     {}
