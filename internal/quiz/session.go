package quiz

import (
	"github.com/google/uuid"
)

// Result is the recorded outcome of one question.
type Result struct {
	Title string
	Outcome
}

// Session tallies the outcomes of one run. Nothing is persisted.
type Session struct {
	ID      uuid.UUID
	Results []Result
}

// NewSession starts an empty session with a fresh ID.
func NewSession() *Session {
	return &Session{ID: uuid.New()}
}

// Record appends the outcome of a question.
func (s *Session) Record(title string, o Outcome) {
	s.Results = append(s.Results, Result{Title: title, Outcome: o})
}

// Summary aggregates a session.
type Summary struct {
	Questions int
	Correct   int
	FirstTry  int
	Attempts  int
}

// Summary computes totals over the recorded results.
func (s *Session) Summary() Summary {
	var sum Summary
	for _, r := range s.Results {
		sum.Questions++
		sum.Attempts += r.Attempts
		if r.Verdict == Correct {
			sum.Correct++
			if r.Attempts == 1 {
				sum.FirstTry++
			}
		}
	}
	return sum
}

// FirstTryRate is the fraction of questions answered correctly on the first
// attempt, or 0 for an empty session.
func (s Summary) FirstTryRate() float64 {
	if s.Questions == 0 {
		return 0
	}
	return float64(s.FirstTry) / float64(s.Questions)
}
