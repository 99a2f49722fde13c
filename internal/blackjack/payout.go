package blackjack

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/chipdrill/internal/money"
)

// Outcome is the result of a round from the player's perspective.
type Outcome string

const (
	OutcomeBlackjack Outcome = "blackjack" // natural 21, pays 3:2
	OutcomeWin       Outcome = "win"       // pays even money
	OutcomeLose      Outcome = "lose"      // no payout
	OutcomePush      Outcome = "push"      // bet returned, no payout
)

// PayoutFor returns the correct payout for a bet and outcome.
// Blackjack pays 3:2, a win pays even money, push and lose pay
// nothing. An unknown outcome pays nothing and logs a warning rather
// than failing the round.
func PayoutFor(bet money.Cents, result Outcome) money.Cents {
	switch result {
	case OutcomeBlackjack:
		return bet.MulRatio(3, 2)
	case OutcomeWin:
		return bet
	case OutcomePush, OutcomeLose:
		return 0
	default:
		log.Warn("unknown round outcome, paying nothing", "outcome", result)
		return 0
	}
}

// CalculatePayout returns the correct payout for a scenario. A nil
// scenario pays nothing.
func CalculatePayout(s *Scenario) money.Cents {
	if s == nil {
		log.Warn("payout requested for missing scenario")
		return 0
	}
	return PayoutFor(s.Bet, s.Result)
}

// ResolveOutcome determines the round outcome from the two final
// hands. Only the player side can hold a natural here; the generator
// redraws dealer naturals away.
func ResolveOutcome(player, dealer *Hand) Outcome {
	switch {
	case player.IsBlackjack() && !dealer.IsBlackjack():
		return OutcomeBlackjack
	case player.IsBust():
		return OutcomeLose
	case dealer.IsBust():
		return OutcomeWin
	case player.Total() > dealer.Total():
		return OutcomeWin
	case player.Total() < dealer.Total():
		return OutcomeLose
	default:
		return OutcomePush
	}
}

// ValidationResult reports how a submitted payout compares to the
// correct one.
type ValidationResult struct {
	IsCorrect   bool
	Correct     money.Cents
	Submitted   money.Cents
	Difference  money.Cents // submitted minus correct
	Explanation string
}

// ValidatePayout checks a submitted payout amount against the
// scenario's correct payout. It never fails: a missing scenario
// yields an incorrect result with an explanation.
func ValidatePayout(s *Scenario, submitted money.Cents) ValidationResult {
	if s == nil {
		return ValidationResult{
			IsCorrect:   false,
			Submitted:   submitted,
			Explanation: "no active scenario to validate against",
		}
	}

	correct := CalculatePayout(s)
	diff := submitted - correct

	res := ValidationResult{
		IsCorrect:  diff == 0,
		Correct:    correct,
		Submitted:  submitted,
		Difference: diff,
	}

	switch {
	case res.IsCorrect:
		res.Explanation = fmt.Sprintf("correct: %s on a %s bet (%s)", correct, s.Bet, s.Result)
	case diff > 0:
		res.Explanation = fmt.Sprintf("%s over: correct payout is %s", diff, correct)
	default:
		res.Explanation = fmt.Sprintf("%s short: correct payout is %s", diff.Abs(), correct)
	}

	return res
}

// ValidatePayoutDollars is the float-dollar edge of ValidatePayout for
// callers holding UI input. The amount is rounded to the nearest cent
// before comparison, which gives the conventional 0.01 tolerance.
func ValidatePayoutDollars(s *Scenario, submitted float64) ValidationResult {
	return ValidatePayout(s, money.FromDollars(submitted))
}
