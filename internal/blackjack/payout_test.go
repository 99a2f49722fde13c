package blackjack

import (
	"testing"

	"github.com/lox/chipdrill/internal/deck"
	"github.com/lox/chipdrill/internal/money"
)

func TestPayoutFor(t *testing.T) {
	tests := []struct {
		name     string
		bet      money.Cents
		result   Outcome
		expected money.Cents
	}{
		{"blackjack pays 3:2", 1000, OutcomeBlackjack, 1500},
		{"win pays even", 2500, OutcomeWin, 2500},
		{"push pays nothing", 5000, OutcomePush, 0},
		{"lose pays nothing", 10000, OutcomeLose, 0},
		{"awkward blackjack", 700, OutcomeBlackjack, 1050},
		{"odd cents blackjack", 250, OutcomeBlackjack, 375},
		{"unknown outcome pays nothing", 1000, Outcome("split"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PayoutFor(tt.bet, tt.result); got != tt.expected {
				t.Errorf("PayoutFor(%d, %q) = %d, want %d", tt.bet, tt.result, got, tt.expected)
			}
		})
	}
}

func TestCalculatePayoutIdempotent(t *testing.T) {
	s := &Scenario{
		Player: NewHand(deck.MustParseCards("AsKh")...),
		Dealer: NewHand(deck.MustParseCards("9sTh")...),
		Bet:    1000,
		Result: OutcomeBlackjack,
	}

	first := CalculatePayout(s)
	for i := 0; i < 10; i++ {
		if got := CalculatePayout(s); got != first {
			t.Fatalf("call %d returned %d, first call returned %d", i, got, first)
		}
	}
	if first != 1500 {
		t.Errorf("CalculatePayout = %d, want 1500", first)
	}
}

func TestCalculatePayoutNilScenario(t *testing.T) {
	if got := CalculatePayout(nil); got != 0 {
		t.Errorf("CalculatePayout(nil) = %d, want 0", got)
	}
}

func TestResolveOutcome(t *testing.T) {
	tests := []struct {
		name     string
		player   string
		dealer   string
		expected Outcome
	}{
		{"player natural", "AsKh", "9sTh", OutcomeBlackjack},
		{"player bust", "KsQh5d", "9sTh", OutcomeLose},
		{"dealer bust", "9sTh", "KsQh5d", OutcomeWin},
		{"player higher", "KsQh", "9sTh", OutcomeWin},
		{"dealer higher", "9sTh", "KsQh", OutcomeLose},
		{"equal totals push", "9sTh", "9dTc", OutcomePush},
		{"three card 21 beats dealer 20", "7s7h7d", "KsQh", OutcomeWin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := NewHand(deck.MustParseCards(tt.player)...)
			dealer := NewHand(deck.MustParseCards(tt.dealer)...)
			if got := ResolveOutcome(player, dealer); got != tt.expected {
				t.Errorf("ResolveOutcome = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestValidatePayout(t *testing.T) {
	scenario := &Scenario{
		Player:        NewHand(deck.MustParseCards("AsKh")...),
		Dealer:        NewHand(deck.MustParseCards("9sTh")...),
		Bet:           1000,
		Result:        OutcomeBlackjack,
		CorrectPayout: 1500,
	}

	t.Run("correct amount", func(t *testing.T) {
		res := ValidatePayout(scenario, 1500)
		if !res.IsCorrect {
			t.Errorf("expected correct, got %+v", res)
		}
		if res.Difference != 0 {
			t.Errorf("difference = %d, want 0", res.Difference)
		}
	})

	t.Run("short amount", func(t *testing.T) {
		res := ValidatePayout(scenario, 1000)
		if res.IsCorrect {
			t.Error("expected incorrect")
		}
		if res.Difference != -500 {
			t.Errorf("difference = %d, want -500", res.Difference)
		}
		if res.Correct != 1500 {
			t.Errorf("correct = %d, want 1500", res.Correct)
		}
		if res.Explanation == "" {
			t.Error("expected an explanation")
		}
	})

	t.Run("over amount", func(t *testing.T) {
		res := ValidatePayout(scenario, 2000)
		if res.IsCorrect {
			t.Error("expected incorrect")
		}
		if res.Difference != 500 {
			t.Errorf("difference = %d, want 500", res.Difference)
		}
	})

	t.Run("nil scenario", func(t *testing.T) {
		res := ValidatePayout(nil, 1500)
		if res.IsCorrect {
			t.Error("nil scenario should never validate")
		}
		if res.Explanation == "" {
			t.Error("expected an explanation")
		}
	})
}

func TestValidatePayoutDollars(t *testing.T) {
	scenario := &Scenario{
		Player: NewHand(deck.MustParseCards("AsKh")...),
		Dealer: NewHand(deck.MustParseCards("9sTh")...),
		Bet:    700,
		Result: OutcomeBlackjack,
	}

	// 10.50 arrives via float arithmetic that cannot represent it
	// exactly; cent rounding has to absorb that.
	if res := ValidatePayoutDollars(scenario, 10.50); !res.IsCorrect {
		t.Errorf("expected 10.50 to validate for a $7 blackjack, got %+v", res)
	}
	if res := ValidatePayoutDollars(scenario, 10.49); res.IsCorrect {
		t.Error("10.49 should not validate")
	}
}
