// Package trainer wires the scenario generator, payout rules, chip
// tray and session scorer into one explicitly-constructed unit. Each
// collaborator is injected, so every piece remains testable on its
// own and nothing hangs off package-level state.
package trainer

import (
	"github.com/charmbracelet/log"

	"github.com/lox/chipdrill/internal/blackjack"
	"github.com/lox/chipdrill/internal/chips"
	"github.com/lox/chipdrill/internal/money"
	"github.com/lox/chipdrill/internal/session"
)

// Options collects the trainer's collaborators. Zero-value fields get
// sensible defaults.
type Options struct {
	Generator     *blackjack.Generator
	Denominations []chips.Denomination
	Session       *session.Session
	Logger        *log.Logger
}

// Trainer runs rounds: deal, collect chips, validate, advance.
type Trainer struct {
	gen     *blackjack.Generator
	pool    *chips.Pool
	session *session.Session
	logger  *log.Logger

	scenario *blackjack.Scenario
	last     *blackjack.ValidationResult
}

// New constructs a trainer from its collaborators.
func New(opts Options) *Trainer {
	if opts.Generator == nil {
		opts.Generator = blackjack.NewGenerator(blackjack.DefaultGeneratorConfig(), nil)
	}
	if len(opts.Denominations) == 0 {
		opts.Denominations = chips.DefaultDenominations()
	}
	if opts.Session == nil {
		opts.Session = session.New(nil)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	return &Trainer{
		gen:     opts.Generator,
		pool:    chips.NewPool(opts.Denominations),
		session: opts.Session,
		logger:  opts.Logger.WithPrefix("trainer"),
	}
}

// Deal starts the next round: the chip selection resets, a fresh
// scenario is generated and the session moves to playing.
func (t *Trainer) Deal() (*blackjack.Scenario, error) {
	if err := t.session.Begin(); err != nil {
		return nil, err
	}

	t.pool.Clear()
	t.scenario = t.gen.Generate()
	t.last = nil

	t.logger.Debug("dealt round", "scenario", t.scenario)
	return t.scenario, nil
}

// Scenario returns the active scenario, nil between rounds.
func (t *Trainer) Scenario() *blackjack.Scenario {
	return t.scenario
}

// Pool returns the round's chip selection.
func (t *Trainer) Pool() *chips.Pool {
	return t.pool
}

// Session returns the session scorer.
func (t *Trainer) Session() *session.Session {
	return t.session
}

// CorrectPayout returns the active scenario's correct payout, zero
// when no round is active.
func (t *Trainer) CorrectPayout() money.Cents {
	return blackjack.CalculatePayout(t.scenario)
}

// Submit validates an amount against the active scenario, scores it
// and moves the session to feedback.
func (t *Trainer) Submit(amount money.Cents) (blackjack.ValidationResult, error) {
	res := blackjack.ValidatePayout(t.scenario, amount)
	if err := t.session.Submit(res.IsCorrect); err != nil {
		return res, err
	}

	t.last = &res
	t.logger.Debug("submission", "correct", res.IsCorrect, "difference", res.Difference)
	return res, nil
}

// SubmitSelection submits the current chip selection's total.
func (t *Trainer) SubmitSelection() (blackjack.ValidationResult, error) {
	return t.Submit(t.pool.Total())
}

// LastResult returns the most recent validation, nil before the first
// submission of a round.
func (t *Trainer) LastResult() *blackjack.ValidationResult {
	return t.last
}

// Advance ends the feedback phase and readies the next round.
func (t *Trainer) Advance() error {
	if err := t.session.Advance(); err != nil {
		return err
	}
	t.scenario = nil
	return nil
}

// Suggest decomposes a target amount into chips from the tray. Used
// for the post-answer hint and the bet display stack.
func (t *Trainer) Suggest(target money.Cents) (chips.Combination, bool) {
	return chips.Decompose(target, t.pool.Denominations())
}

// BetStack returns the chip stack displaying the active scenario's
// bet, or nil when no round is active or the bet is not representable.
func (t *Trainer) BetStack() (chips.Combination, bool) {
	if t.scenario == nil {
		return nil, false
	}
	return t.Suggest(t.scenario.Bet)
}
