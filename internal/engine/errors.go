package engine

import "errors"

// Errors returned by Advance. These are contract violations the caller must
// branch on; the returned state is always the unchanged input.
var (
	// ErrTerminalState rejects advancing a game whose CEO is already ousted
	// or retired. Intentionally fatal: the engine never silently no-ops a
	// finished game.
	ErrTerminalState = errors.New("engine: game is over")

	// ErrUnexpectedInput rejects an input variant the current phase cannot
	// consume.
	ErrUnexpectedInput = errors.New("engine: input not valid in this phase")

	// ErrInvalidChoice rejects a choice id that does not match the current
	// crisis card.
	ErrInvalidChoice = errors.New("engine: choice id does not match the current crisis card")

	// ErrCardNotInHand rejects playing a card the player does not hold.
	ErrCardNotInHand = errors.New("engine: card is not in hand")

	// ErrCardLimit rejects playing past the per-quarter card cap.
	ErrCardLimit = errors.New("engine: per-quarter card limit reached")

	// ErrBadExchange rejects a meter exchange with an amount that is not a
	// positive multiple of the exchange rate, or that the meter cannot cover.
	ErrBadExchange = errors.New("engine: meter exchange amount out of range")
)
