package blackjack

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/chipdrill/internal/deck"
	"github.com/lox/chipdrill/internal/money"
	"github.com/lox/chipdrill/internal/randutil"
)

// DefaultBetAmounts mixes round bets with awkward ones whose 3:2
// payouts exercise non-trivial chip arithmetic ($7 pays $10.50).
var DefaultBetAmounts = func() []money.Cents {
	dollars := []int64{
		5, 10, 15, 20, 25, 50, 75, 100, 150, 200, 250, 300, 400, 500, // round
		7, 12, 17, 22, 27, 37, 42, 47, 62, 77, 87, 112, 137, 177, // awkward
	}
	out := make([]money.Cents, len(dollars))
	for i, d := range dollars {
		out[i] = money.Cents(d * 100)
	}
	return out
}()

// GeneratorConfig controls how scenarios are dealt.
type GeneratorConfig struct {
	// ForceNatural pins every dealt player hand to a natural 21, the
	// trainer's default drill mode. When false the player is dealt
	// normally and all four outcomes can occur.
	ForceNatural bool

	// DealerStands is the total at or above which the dealer stops
	// drawing. Conventionally 17; no soft-17 distinction is made.
	DealerStands int

	// BetAmounts is the pool a round's bet is drawn from uniformly.
	BetAmounts []money.Cents

	Logger *log.Logger
}

// DefaultGeneratorConfig returns the standard trainer ruleset.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		ForceNatural: true,
		DealerStands: 17,
		BetAmounts:   DefaultBetAmounts,
	}
}

// Generator deals internally consistent scenarios from a shoe that
// reshuffles when it runs low.
type Generator struct {
	cfg    GeneratorConfig
	deck   *deck.Deck
	rng    *rand.Rand
	logger *log.Logger
}

// NewGenerator creates a generator. Pass a seeded rng for reproducible
// deal sequences; nil falls back to a time-seeded source.
func NewGenerator(cfg GeneratorConfig, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = randutil.NewFromTime()
	}
	return newGeneratorWithDeck(cfg, deck.New(rng), rng)
}

// newGeneratorWithDeck wires a prepared deck in, so tests can drive
// the depleted-shoe paths with a stacked stub.
func newGeneratorWithDeck(cfg GeneratorConfig, d *deck.Deck, rng *rand.Rand) *Generator {
	if cfg.DealerStands == 0 {
		cfg.DealerStands = 17
	}
	if len(cfg.BetAmounts) == 0 {
		cfg.BetAmounts = DefaultBetAmounts
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	return &Generator{
		cfg:    cfg,
		deck:   d,
		rng:    rng,
		logger: cfg.Logger,
	}
}

// Generate deals one complete scenario. It never fails: the only
// degenerate deck states are absorbed by reshuffling and a synthetic
// fallback hand.
func (g *Generator) Generate() *Scenario {
	if g.deck.NeedsReshuffle() {
		g.deck.Reset()
	}

	player := g.dealPlayer()
	dealer := g.dealDealer()
	g.playDealer(dealer)

	bet := g.cfg.BetAmounts[g.rng.IntN(len(g.cfg.BetAmounts))]

	result := ResolveOutcome(player, dealer)
	if g.cfg.ForceNatural && result != OutcomeBlackjack {
		// Should be unreachable: dealPlayer forced a natural and
		// dealDealer redraws dealer naturals away.
		g.logger.Warn("forced-natural deal resolved unexpectedly", "result", result)
		result = OutcomeBlackjack
	}

	s := &Scenario{
		Player:        player,
		Dealer:        dealer,
		Bet:           bet,
		Result:        result,
		CorrectPayout: PayoutFor(bet, result),
	}

	g.logger.Debug("dealt scenario", "scenario", s)
	return s
}

// dealPlayer deals the player hand. In forced-natural mode it pulls an
// ace and a ten-value card directly from the shoe; if the shoe lacks
// either (possible only in a heavily depleted stub), a synthetic A♠ K♥
// stands in rather than failing the round.
func (g *Generator) dealPlayer() *Hand {
	if !g.cfg.ForceNatural {
		return NewHand(g.draw(), g.draw())
	}

	ace, okAce := g.deck.DrawMatch(deck.Card.IsAce)
	ten, okTen := g.deck.DrawMatch(deck.Card.IsTenValue)
	if !okAce || !okTen {
		g.logger.Debug("shoe lacks natural components, using synthetic hand")
		if okAce {
			g.deck.Return(ace)
		}
		if okTen {
			g.deck.Return(ten)
		}
		return NewHand(
			deck.NewCard(deck.Spades, deck.Ace),
			deck.NewCard(deck.Hearts, deck.King),
		)
	}

	return NewHand(ace, ten)
}

// dealDealer deals the dealer's two cards, redrawing the second until
// the hand is not a natural. Only the player ever holds blackjack.
func (g *Generator) dealDealer() *Hand {
	up := g.draw()
	hole := g.draw()

	for attempts := 0; NewHand(up, hole).IsBlackjack(); attempts++ {
		if attempts >= g.deck.Remaining() {
			// Rejected holes cycle to the bottom, so by now every
			// remaining card has been tried and all of them complete
			// the natural. Keep the last hole rather than spin.
			break
		}
		g.deck.Return(hole)
		hole = g.draw()
	}

	return NewHand(up, hole)
}

// playDealer applies the fixed house rule: hit below the stand
// threshold, stand at or above it.
func (g *Generator) playDealer(dealer *Hand) {
	for dealer.Total() < g.cfg.DealerStands && !dealer.IsBust() {
		dealer.Add(g.draw())
	}
}

// draw deals one card, resetting the shoe if it is empty.
func (g *Generator) draw() deck.Card {
	card, ok := g.deck.Draw()
	if !ok {
		g.deck.Reset()
		card, _ = g.deck.Draw()
	}
	return card
}
