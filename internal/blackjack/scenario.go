package blackjack

import (
	"fmt"

	"github.com/lox/chipdrill/internal/money"
)

// Scenario is one complete dealt round: both final hands, the bet and
// the resolved outcome with its correct payout. Scenarios are built
// once by the Generator and not mutated afterwards.
type Scenario struct {
	Player        *Hand
	Dealer        *Hand
	Bet           money.Cents
	Result        Outcome
	CorrectPayout money.Cents
}

// String summarises the scenario for logs and line-mode output.
func (s *Scenario) String() string {
	return fmt.Sprintf("player [%s] (%d) vs dealer [%s] (%d), bet %s, %s",
		s.Player, s.Player.Total(), s.Dealer, s.Dealer.Total(), s.Bet, s.Result)
}
