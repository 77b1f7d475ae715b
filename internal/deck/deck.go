// Package deck provides the generic draw-pile/discard-pile container used by
// both the project deck and the event deck. The multiset union of the two
// piles is constant across draws, discards, and reshuffles.
package deck

import "github.com/talgya/boardroom/internal/rng"

// Deck holds an ordered draw pile and a discard pile. Deck values follow the
// rest of the core's value semantics: operations return a new Deck and never
// mutate the receiver's piles.
type Deck[T any] struct {
	draw    []T
	discard []T
}

// New builds a deck whose draw pile is a copy of items, in order. Shuffle
// before play with Reshuffle.
func New[T any](items []T) Deck[T] {
	return Deck[T]{draw: append([]T(nil), items...)}
}

// Len is the total number of cards across both piles.
func (d Deck[T]) Len() int {
	return len(d.draw) + len(d.discard)
}

// DrawLen is the number of cards left in the draw pile.
func (d Deck[T]) DrawLen() int {
	return len(d.draw)
}

// DiscardLen is the number of cards in the discard pile.
func (d Deck[T]) DiscardLen() int {
	return len(d.discard)
}

// Peek returns the top of the draw pile without drawing it. ok is false when
// the draw pile is empty.
func (d Deck[T]) Peek() (item T, ok bool) {
	if len(d.draw) == 0 {
		var zero T
		return zero, false
	}
	return d.draw[0], true
}

// Draw removes the top card of the draw pile. An exhausted draw pile is
// never an error: the discard pile is deterministically reshuffled with r
// first. ok is false only when both piles are empty.
func (d Deck[T]) Draw(r *rng.Source) (item T, next Deck[T], ok bool) {
	if len(d.draw) == 0 {
		if len(d.discard) == 0 {
			var zero T
			return zero, d, false
		}
		d = d.Reshuffle(r)
	}
	item = d.draw[0]
	next = Deck[T]{
		draw:    append([]T(nil), d.draw[1:]...),
		discard: d.discard,
	}
	return item, next, true
}

// DiscardItem places an item on the discard pile.
func (d Deck[T]) DiscardItem(item T) Deck[T] {
	discard := make([]T, len(d.discard), len(d.discard)+1)
	copy(discard, d.discard)
	return Deck[T]{draw: d.draw, discard: append(discard, item)}
}

// Reshuffle folds the discard pile into a freshly shuffled draw pile and
// clears the discard pile.
func (d Deck[T]) Reshuffle(r *rng.Source) Deck[T] {
	draw := make([]T, 0, d.Len())
	draw = append(draw, d.draw...)
	draw = append(draw, d.discard...)
	r.Shuffle(len(draw), func(i, j int) { draw[i], draw[j] = draw[j], draw[i] })
	return Deck[T]{draw: draw}
}
