package chips

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lox/chipdrill/internal/money"
)

// ChipCount is one denomination's share of a decomposition.
type ChipCount struct {
	Denomination Denomination
	Count        int
}

// Combination is a chip stack summing to some target amount.
type Combination []ChipCount

// Sum returns the total value of the combination.
func (c Combination) Sum() money.Cents {
	var total money.Cents
	for _, cc := range c {
		total += cc.Denomination.Value * money.Cents(cc.Count)
	}
	return total
}

// String renders the combination as "3 x $25 + 2 x $1".
func (c Combination) String() string {
	if len(c) == 0 {
		return "no chips"
	}
	parts := make([]string, len(c))
	for i, cc := range c {
		parts[i] = fmt.Sprintf("%d x %s", cc.Count, cc.Denomination.Label)
	}
	return strings.Join(parts, " + ")
}

// Decompose greedily expresses target as chips from the given
// denominations, largest first, honouring each denomination's supply.
// It returns ok=false when no exact combination exists with this set.
// A non-positive target is trivially satisfied by an empty stack.
//
// Greedy change-making is exact for the canonical denomination set
// used here; it is not a general optimal-change solver.
func Decompose(target money.Cents, denoms []Denomination) (Combination, bool) {
	if target <= 0 {
		return Combination{}, true
	}

	sorted := make([]Denomination, len(denoms))
	copy(sorted, denoms)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})

	var combo Combination
	remaining := target
	for _, d := range sorted {
		if d.Value <= 0 || remaining < d.Value {
			continue
		}

		count := int(remaining / d.Value)
		if d.Available > 0 && count > d.Available {
			count = d.Available
		}
		if count == 0 {
			continue
		}

		combo = append(combo, ChipCount{Denomination: d, Count: count})
		remaining -= d.Value * money.Cents(count)
	}

	if remaining != 0 {
		return nil, false
	}
	return combo, true
}
