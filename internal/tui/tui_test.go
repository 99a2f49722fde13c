package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/chipdrill/internal/blackjack"
	"github.com/lox/chipdrill/internal/randutil"
	"github.com/lox/chipdrill/internal/session"
	"github.com/lox/chipdrill/internal/trainer"
)

func testModel(t *testing.T, seed int64) *Model {
	t.Helper()
	tr := trainer.New(trainer.Options{
		Generator: blackjack.NewGenerator(blackjack.DefaultGeneratorConfig(), randutil.New(seed)),
	})
	m := NewModel(tr, log.Default())
	m.Init()
	return m
}

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitDealsOpeningRound(t *testing.T) {
	m := testModel(t, 1)

	if m.trainer.Scenario() == nil {
		t.Fatal("expected an active scenario after Init")
	}
	if m.trainer.Session().State() != session.StatePlaying {
		t.Fatalf("state = %s, want playing", m.trainer.Session().State())
	}
}

func TestChipKeysUpdateSelection(t *testing.T) {
	m := testModel(t, 2)

	m.Update(key("1"))
	m.Update(key("1"))
	m.Update(key("3"))

	pool := m.trainer.Pool()
	if pool.Count(0) != 2 {
		t.Errorf("denomination 0 count = %d, want 2", pool.Count(0))
	}
	if pool.Count(2) != 1 {
		t.Errorf("denomination 2 count = %d, want 1", pool.Count(2))
	}

	m.Update(key("c"))
	if pool.Total() != 0 {
		t.Errorf("total after clear = %s, want $0", pool.Total())
	}
}

func TestTypedAmountSubmission(t *testing.T) {
	m := testModel(t, 3)

	correct := m.trainer.CorrectPayout()
	m.amountInput.SetValue(strings.TrimPrefix(correct.String(), "$"))
	m.Update(key("enter"))

	if m.trainer.Session().State() != session.StateFeedback {
		t.Fatalf("state = %s, want feedback", m.trainer.Session().State())
	}
	res := m.trainer.LastResult()
	if res == nil || !res.IsCorrect {
		t.Fatalf("expected a correct result, got %+v", res)
	}
}

func TestFeedbackAdvancesToNextRound(t *testing.T) {
	m := testModel(t, 4)

	first := m.trainer.Scenario()
	m.Update(key("enter")) // empty selection, wrong answer
	if m.trainer.Session().State() != session.StateFeedback {
		t.Fatalf("state = %s, want feedback", m.trainer.Session().State())
	}

	m.Update(key("n"))
	if m.trainer.Session().State() != session.StatePlaying {
		t.Fatalf("state = %s, want playing", m.trainer.Session().State())
	}
	if m.trainer.Scenario() == first {
		t.Error("expected a fresh scenario after advancing")
	}
	if m.trainer.Pool().Total() != 0 {
		t.Error("expected a cleared selection after advancing")
	}
}

func TestViewShowsScenario(t *testing.T) {
	m := testModel(t, 5)

	view := m.View()
	for _, want := range []string{"Dealer:", "Player:", "Bet:", "Selected:"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
