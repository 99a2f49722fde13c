// Package blackjack implements the scoring, payout and scenario
// generation rules for the payout trainer. All functions are pure or
// trivially-mutating and take plain data, so the package is usable
// without any UI attached.
package blackjack

import (
	"strings"

	"github.com/lox/chipdrill/internal/deck"
)

// CardValue returns the blackjack value of a rank: aces count 11
// until reduced, face cards count 10.
func CardValue(r deck.Rank) int {
	switch {
	case r == deck.Ace:
		return 11
	case r >= deck.Ten:
		return 10
	default:
		return int(r)
	}
}

// Hand is an ordered sequence of cards for one side of a round.
type Hand struct {
	cards []deck.Card
}

// NewHand creates a hand from the given cards.
func NewHand(cards ...deck.Card) *Hand {
	h := &Hand{cards: make([]deck.Card, 0, 4)}
	h.cards = append(h.cards, cards...)
	return h
}

// Add appends a card to the hand.
func (h *Hand) Add(card deck.Card) {
	h.cards = append(h.cards, card)
}

// Cards returns a copy of the hand's cards in deal order.
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Size returns the number of cards in the hand.
func (h *Hand) Size() int {
	return len(h.cards)
}

// Value returns the hand's blackjack total and the number of aces
// still counted as 11. Every ace starts at 11; while the total busts
// and a soft ace remains, one ace drops to 1. The computation walks
// the full card list every call rather than tracking increments, so a
// hand can never accumulate drift.
func (h *Hand) Value() (total, softAces int) {
	for _, c := range h.cards {
		v := CardValue(c.Rank)
		if v == 11 {
			softAces++
		}
		total += v
	}

	for total > 21 && softAces > 0 {
		total -= 10
		softAces--
	}

	return total, softAces
}

// Total returns just the hand's blackjack total.
func (h *Hand) Total() int {
	total, _ := h.Value()
	return total
}

// IsBlackjack returns true for a two-card 21 (a natural).
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Total() == 21
}

// IsBust returns true when the total exceeds 21 after all ace
// reductions.
func (h *Hand) IsBust() bool {
	return h.Total() > 21
}

// String renders the hand as space-separated cards, e.g. "A♠ K♥".
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
