// Package tui is the interactive terminal front end for the trainer.
// It renders scenarios and collects chip selections; all game logic
// stays behind the trainer facade.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/chipdrill/internal/deck"
	"github.com/lox/chipdrill/internal/money"
	"github.com/lox/chipdrill/internal/session"
	"github.com/lox/chipdrill/internal/trainer"
)

// Model is the Bubble Tea model for a practice session.
type Model struct {
	trainer *trainer.Trainer
	logger  *log.Logger

	// amountInput lets the user type an exact dollar amount instead
	// of clicking out chips.
	amountInput textinput.Model

	width    int
	height   int
	errMsg   string
	quitting bool
}

// NewModel creates a TUI model around a trainer.
func NewModel(tr *trainer.Trainer, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "or type an amount, e.g. 37.50"
	ti.CharLimit = 12
	ti.Width = 30
	ti.Prompt = "$ "

	return &Model{
		trainer:     tr,
		logger:      logger.WithPrefix("tui"),
		amountInput: ti,
	}
}

// Init deals the first round.
func (m *Model) Init() tea.Cmd {
	if _, err := m.trainer.Deal(); err != nil {
		m.logger.Error("failed to deal opening round", "error", err)
	}
	return textinput.Blink
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.amountInput, cmd = m.amountInput.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""

	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)
	}

	switch m.trainer.Session().State() {
	case session.StatePlaying:
		return m.handlePlayingKey(msg)
	case session.StateFeedback:
		return m.handleFeedbackKey(msg)
	default:
		if msg.String() == "n" || msg.Type == tea.KeyEnter {
			m.deal()
		}
	}
	return m, nil
}

func (m *Model) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Digit keys drop a chip of that denomination onto the stack,
	// unless the user is typing an amount.
	if !m.amountInput.Focused() && len(key) == 1 && key >= "1" && key <= "9" {
		idx := int(key[0] - '1')
		if idx < len(m.trainer.Pool().Denominations()) {
			if err := m.trainer.Pool().Select(idx); err != nil {
				m.errMsg = err.Error()
			}
		}
		return m, nil
	}

	switch key {
	case "c":
		if !m.amountInput.Focused() {
			m.trainer.Pool().Clear()
			return m, nil
		}
	case "t":
		if !m.amountInput.Focused() {
			m.amountInput.Focus()
			return m, textinput.Blink
		}
	case "enter":
		m.submit()
		return m, nil
	}

	if m.amountInput.Focused() {
		var cmd tea.Cmd
		m.amountInput, cmd = m.amountInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleFeedbackKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n", "enter", " ":
		if err := m.trainer.Advance(); err != nil {
			m.logger.Error("failed to advance", "error", err)
			return m, nil
		}
		m.deal()
	}
	return m, nil
}

func (m *Model) deal() {
	if _, err := m.trainer.Deal(); err != nil {
		m.logger.Error("failed to deal", "error", err)
		m.errMsg = err.Error()
		return
	}
	m.amountInput.Reset()
	m.amountInput.Blur()
}

func (m *Model) submit() {
	if typed := strings.TrimSpace(m.amountInput.Value()); typed != "" {
		dollars, err := strconv.ParseFloat(typed, 64)
		if err != nil {
			m.errMsg = fmt.Sprintf("not an amount: %q", typed)
			return
		}
		if _, err := m.trainer.Submit(money.FromDollars(dollars)); err != nil {
			m.errMsg = err.Error()
		}
		return
	}

	if _, err := m.trainer.SubmitSelection(); err != nil {
		m.errMsg = err.Error()
	}
}

// View renders the screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(HeaderStyle.Render(" ♠ ♥ Blackjack Payout Trainer ♦ ♣ "))
	b.WriteString("\n\n")
	b.WriteString(m.scoreLine())
	b.WriteString("\n\n")

	switch m.trainer.Session().State() {
	case session.StatePlaying:
		b.WriteString(m.scenarioView())
		b.WriteString("\n")
		b.WriteString(m.selectionView())
		b.WriteString("\n\n")
		b.WriteString(m.amountInput.View())
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("1-7 add chip · c clear · t type amount · enter submit · esc quit"))
	case session.StateFeedback:
		b.WriteString(m.scenarioView())
		b.WriteString("\n")
		b.WriteString(m.feedbackView())
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("n next hand · esc quit"))
	default:
		b.WriteString(InfoStyle.Render("press n to deal"))
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(ErrorStyle.Render(m.errMsg))
	}

	b.WriteString("\n")
	return b.String()
}

func (m *Model) scoreLine() string {
	score := m.trainer.Session().Score()
	return InfoStyle.Render(fmt.Sprintf("score %d/%d (%d%%) · streak %d · best %d · %s",
		score.Correct, score.Total, score.Accuracy(),
		score.CurrentStreak, score.BestStreak, score.Rating()))
}

func (m *Model) scenarioView() string {
	s := m.trainer.Scenario()
	if s == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(HandStyle.Render("Dealer: "))
	b.WriteString(formatCards(s.Dealer.Cards()))
	b.WriteString(fmt.Sprintf(" (%d)\n", s.Dealer.Total()))

	b.WriteString(HandStyle.Render("Player: "))
	b.WriteString(formatCards(s.Player.Cards()))
	b.WriteString(fmt.Sprintf(" (%d)", s.Player.Total()))
	if s.Player.IsBlackjack() {
		b.WriteString(SuccessStyle.Render(" blackjack!"))
	}
	b.WriteString("\n")

	b.WriteString(BetStyle.Render(fmt.Sprintf("Bet: %s", s.Bet)))
	if stack, ok := m.trainer.BetStack(); ok {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("  (%s)", stack)))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) selectionView() string {
	pool := m.trainer.Pool()
	denoms := pool.Denominations()

	parts := make([]string, len(denoms))
	for i, d := range denoms {
		label := fmt.Sprintf("[%d] %s", i+1, d.Label)
		if n := pool.Count(i); n > 0 {
			label = fmt.Sprintf("%s x%d", label, n)
			parts[i] = BetStyle.Render(label)
		} else {
			parts[i] = InfoStyle.Render(label)
		}
	}

	return strings.Join(parts, "  ") + "\n" +
		BetStyle.Render(fmt.Sprintf("Selected: %s", pool.Total()))
}

func (m *Model) feedbackView() string {
	res := m.trainer.LastResult()
	if res == nil {
		return ""
	}

	var b strings.Builder
	if res.IsCorrect {
		b.WriteString(SuccessStyle.Render("✓ correct!"))
	} else {
		b.WriteString(ErrorStyle.Render("✗ " + res.Explanation))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("correct payout: %s, you paid %s\n", res.Correct, res.Submitted))

	if combo, ok := m.trainer.Suggest(res.Correct); ok {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("try this stack: %s", combo)))
	} else {
		b.WriteString(WarningStyle.Render("no exact chip combination for this amount"))
	}
	return b.String()
}

// formatCards formats cards with suit colors
func formatCards(cards []deck.Card) string {
	formatted := make([]string, len(cards))
	for i, card := range cards {
		if card.IsRed() {
			formatted[i] = RedCardStyle.Render(card.String())
		} else {
			formatted[i] = BlackCardStyle.Render(card.String())
		}
	}
	return "[" + strings.Join(formatted, " ") + "]"
}

// Run starts the TUI and blocks until the user quits, returning the
// final session stats for persistence.
func Run(tr *trainer.Trainer, logger *log.Logger) (session.Stats, error) {
	m := NewModel(tr, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return session.Stats{}, fmt.Errorf("tui error: %w", err)
	}
	return tr.Session().Stats(), nil
}
