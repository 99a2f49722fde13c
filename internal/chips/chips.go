// Package chips models the casino chip tray: the fixed denomination
// set, per-round selection tracking, and greedy decomposition of an
// amount into chips.
package chips

import (
	"fmt"

	"github.com/lox/chipdrill/internal/money"
)

// Denomination is one chip value in the tray.
type Denomination struct {
	Value     money.Cents
	Label     string
	Available int // per-round supply
}

// DefaultSupply is the conventional per-round chip count for each
// denomination.
const DefaultSupply = 50

// DefaultDenominations returns the trainer's canonical chip set. The
// greedy change-maker is exact for this set; arbitrary sets get no
// such guarantee.
func DefaultDenominations() []Denomination {
	values := []money.Cents{100, 250, 500, 2500, 10000, 50000, 100000}
	out := make([]Denomination, len(values))
	for i, v := range values {
		out[i] = Denomination{Value: v, Label: v.String(), Available: DefaultSupply}
	}
	return out
}

// Pool tracks the chips a player has selected this round. Selection
// counts never exceed a denomination's supply.
type Pool struct {
	denoms   []Denomination
	selected []int
}

// NewPool creates a selection pool over the given denominations.
func NewPool(denoms []Denomination) *Pool {
	return &Pool{
		denoms:   denoms,
		selected: make([]int, len(denoms)),
	}
}

// Denominations returns the pool's denomination set.
func (p *Pool) Denominations() []Denomination {
	return p.denoms
}

// Select adds one chip of denomination i to the selection. Returns an
// error when the supply for that denomination is exhausted.
func (p *Pool) Select(i int) error {
	if i < 0 || i >= len(p.denoms) {
		return fmt.Errorf("no denomination at index %d", i)
	}
	if p.selected[i] >= p.denoms[i].Available {
		return fmt.Errorf("no %s chips left (supply %d)", p.denoms[i].Label, p.denoms[i].Available)
	}
	p.selected[i]++
	return nil
}

// Unselect removes one chip of denomination i from the selection, if
// any is selected.
func (p *Pool) Unselect(i int) {
	if i >= 0 && i < len(p.denoms) && p.selected[i] > 0 {
		p.selected[i]--
	}
}

// Count returns the number of selected chips for denomination i.
func (p *Pool) Count(i int) int {
	if i < 0 || i >= len(p.selected) {
		return 0
	}
	return p.selected[i]
}

// Total returns the value of all selected chips.
func (p *Pool) Total() money.Cents {
	var total money.Cents
	for i, n := range p.selected {
		total += p.denoms[i].Value * money.Cents(n)
	}
	return total
}

// Clear resets the selection, as happens at the start of each round.
func (p *Pool) Clear() {
	for i := range p.selected {
		p.selected[i] = 0
	}
}
