package deck

import (
	"testing"

	"github.com/lox/chipdrill/internal/randutil"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	d := New(randutil.New(1))

	if d.Remaining() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Remaining())
	}

	seen := make(map[Card]bool)
	for {
		card, ok := d.Draw()
		if !ok {
			break
		}
		if seen[card] {
			t.Errorf("duplicate card dealt: %v", card)
		}
		seen[card] = true
	}

	if len(seen) != 52 {
		t.Errorf("expected 52 unique cards, got %d", len(seen))
	}
}

func TestShuffleDeterministicWithSeed(t *testing.T) {
	a := New(randutil.New(42))
	b := New(randutil.New(42))

	for i := 0; i < 52; i++ {
		ca, _ := a.Draw()
		cb, _ := b.Draw()
		if ca != cb {
			t.Fatalf("card %d differs between identically seeded decks: %v vs %v", i, ca, cb)
		}
	}
}

func TestDrawMatch(t *testing.T) {
	d := New(randutil.New(7))

	ace, ok := d.DrawMatch(Card.IsAce)
	if !ok {
		t.Fatal("full deck should contain an ace")
	}
	if !ace.IsAce() {
		t.Errorf("DrawMatch returned %v, want an ace", ace)
	}
	if d.Remaining() != 51 {
		t.Errorf("expected 51 cards after draw, got %d", d.Remaining())
	}

	// Drain the remaining aces, then the predicate must fail.
	for i := 0; i < 3; i++ {
		if _, ok := d.DrawMatch(Card.IsAce); !ok {
			t.Fatalf("expected ace %d to be drawable", i+2)
		}
	}
	if _, ok := d.DrawMatch(Card.IsAce); ok {
		t.Error("expected no aces left")
	}
}

func TestNeedsReshuffle(t *testing.T) {
	d := New(randutil.New(3))

	for d.Remaining() >= ReshuffleThreshold {
		if d.NeedsReshuffle() {
			t.Fatalf("deck with %d cards should not need a reshuffle", d.Remaining())
		}
		d.Draw()
	}

	if !d.NeedsReshuffle() {
		t.Errorf("deck with %d cards should need a reshuffle", d.Remaining())
	}

	d.Reset()
	if d.Remaining() != 52 {
		t.Errorf("reset deck should have 52 cards, got %d", d.Remaining())
	}
	if d.NeedsReshuffle() {
		t.Error("reset deck should not need a reshuffle")
	}
}

func TestNewStackedDrawsInGivenOrder(t *testing.T) {
	want := MustParseCards("AsKh9c")
	d := NewStacked(nil, want...)

	if d.Remaining() != len(want) {
		t.Fatalf("expected %d cards, got %d", len(want), d.Remaining())
	}
	for i, w := range want {
		got, ok := d.Draw()
		if !ok || got != w {
			t.Fatalf("draw %d = %v, want %v", i, got, w)
		}
	}

	d.Reset()
	if d.Remaining() != 52 {
		t.Errorf("reset stacked deck should have 52 cards, got %d", d.Remaining())
	}
}

func TestReturn(t *testing.T) {
	d := New(randutil.New(9))
	card, _ := d.Draw()
	d.Return(card)

	if d.Remaining() != 52 {
		t.Errorf("expected 52 cards after return, got %d", d.Remaining())
	}
}
