// Package session tracks one practice session: the per-round state
// machine and the running accuracy and streak counters.
package session

import (
	"fmt"
	"math"
	"time"

	"github.com/coder/quartz"
)

// State is the per-round lifecycle. Rounds cycle waiting -> playing ->
// feedback -> waiting.
type State int

const (
	StateWaiting State = iota
	StatePlaying
	StateFeedback
)

// String returns the string representation of a state
func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StatePlaying:
		return "playing"
	case StateFeedback:
		return "feedback"
	default:
		return "unknown"
	}
}

// Score holds the session's running counters.
type Score struct {
	Correct       int `json:"correct"`
	Total         int `json:"total"`
	CurrentStreak int `json:"current_streak"`
	BestStreak    int `json:"best_streak"`
}

// Accuracy returns the percentage of correct submissions, rounded to
// the nearest whole percent. Zero before any submission.
func (s Score) Accuracy() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(float64(s.Correct) / float64(s.Total) * 100))
}

// Rating maps accuracy onto the fixed performance ladder.
func (s Score) Rating() string {
	switch acc := s.Accuracy(); {
	case acc >= 95:
		return "Excellent"
	case acc >= 85:
		return "Great"
	case acc >= 75:
		return "Good"
	case acc >= 60:
		return "Fair"
	default:
		return "Needs Practice"
	}
}

// Stats is a point-in-time snapshot of a session.
type Stats struct {
	Score     Score         `json:"score"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

// Session is the per-round state machine plus score tracking. It is
// mutated by a single control flow, one round at a time.
type Session struct {
	clock     quartz.Clock
	state     State
	score     Score
	startedAt time.Time
}

// New creates a session in the waiting state. A nil clock uses real
// time; tests pass a quartz mock.
func New(clock quartz.Clock) *Session {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Session{
		clock:     clock,
		state:     StateWaiting,
		startedAt: clock.Now(),
	}
}

// State returns the current round state.
func (s *Session) State() State {
	return s.state
}

// Score returns a copy of the running counters.
func (s *Session) Score() Score {
	return s.score
}

// Begin starts a round: waiting -> playing. Chip selections may be
// mutated only while playing.
func (s *Session) Begin() error {
	if s.state != StateWaiting {
		return fmt.Errorf("cannot begin a round in %s state", s.state)
	}
	s.state = StatePlaying
	return nil
}

// Submit records a submission result: playing -> feedback. The streak
// grows on a correct answer and resets to zero otherwise.
func (s *Session) Submit(correct bool) error {
	if s.state != StatePlaying {
		return fmt.Errorf("cannot submit in %s state", s.state)
	}

	s.score.Total++
	if correct {
		s.score.Correct++
		s.score.CurrentStreak++
		if s.score.CurrentStreak > s.score.BestStreak {
			s.score.BestStreak = s.score.CurrentStreak
		}
	} else {
		s.score.CurrentStreak = 0
	}

	s.state = StateFeedback
	return nil
}

// Advance leaves the feedback view: feedback -> waiting, ready for the
// next round.
func (s *Session) Advance() error {
	if s.state != StateFeedback {
		return fmt.Errorf("cannot advance in %s state", s.state)
	}
	s.state = StateWaiting
	return nil
}

// Stats snapshots the session using the injected clock.
func (s *Session) Stats() Stats {
	return Stats{
		Score:     s.score,
		StartedAt: s.startedAt,
		Duration:  s.clock.Now().Sub(s.startedAt),
	}
}
