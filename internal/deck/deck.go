package deck

import (
	rand "math/rand/v2"

	"github.com/lox/chipdrill/internal/randutil"
)

// ReshuffleThreshold is the card count below which a fresh shuffled
// deck replaces the remaining stub before the next deal.
const ReshuffleThreshold = 10

// Deck represents a deck of playing cards
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a shuffled standard 52-card deck using the provided
// random source. Pass a seeded source for reproducible deals.
func New(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = randutil.NewFromTime()
	}

	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	d.Reset()
	return d
}

// NewStacked creates a deck holding exactly the given cards in draw
// order, unshuffled. Used to set up known layouts in tests. A later
// Reset restores a full shuffled deck as usual.
func NewStacked(rng *rand.Rand, cards ...Card) *Deck {
	if rng == nil {
		rng = randutil.NewFromTime()
	}

	d := &Deck{
		cards: make([]Card, len(cards)),
		rng:   rng,
	}
	copy(d.cards, cards)
	return d
}

// Shuffle randomizes the order of cards in the deck (Fisher-Yates)
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card from the deck
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// DrawMatch removes and returns the first card satisfying the
// predicate. Returns false if no remaining card matches.
func (d *Deck) DrawMatch(match func(Card) bool) (Card, bool) {
	for i, card := range d.cards {
		if match(card) {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return card, true
		}
	}
	return Card{}, false
}

// Return places a card on the bottom of the deck. Used when a dealt
// card has to go back (e.g. a rejected dealer hole card).
func (d *Deck) Return(card Card) {
	d.cards = append(d.cards, card)
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// NeedsReshuffle returns true when the deck has run low and should be
// reset before dealing another round.
func (d *Deck) NeedsReshuffle() bool {
	return len(d.cards) < ReshuffleThreshold
}

// Reset restores the deck to a full 52-card deck and shuffles it
func (d *Deck) Reset() {
	d.cards = d.cards[:0] // keep capacity

	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}

	d.Shuffle()
}
