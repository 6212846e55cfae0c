// Package assess holds the dashboard's form state as an immutable value and
// the pure reducer that applies user events to it.
package assess

import "github.com/theirongolddev/riskdash/internal/risk"

// State is one snapshot of the assessment form. Transitions never mutate a
// State; Reduce returns a new one.
type State struct {
	Input risk.Input

	score        risk.Score
	breakdown    risk.Breakdown
	scoredInput  risk.Input
	lastID       string
	calculations int
}

// Event is a user action applied by Reduce.
type Event interface {
	apply(State) State
}

// EditField replaces the text of one field. It never recalculates.
type EditField struct {
	Field risk.Field
	Value string
}

// Calculate scores the current input. ID labels the calculation for logs
// and is chosen by the caller.
type Calculate struct {
	ID string
}

// Reset clears the form and the score.
type Reset struct{}

// New returns an empty form state.
func New() State {
	return State{}
}

// Reduce applies one event and returns the resulting state.
func Reduce(s State, e Event) State {
	if e == nil {
		return s
	}
	return e.apply(s)
}

func (e EditField) apply(s State) State {
	s.Input = s.Input.With(e.Field, e.Value)
	return s
}

func (e Calculate) apply(s State) State {
	s.calculations++
	s.lastID = e.ID
	s.scoredInput = s.Input

	a, err := s.Input.Parse()
	if err != nil {
		s.score = risk.Unset()
		s.breakdown = risk.Breakdown{}
		return s
	}
	s.score = risk.Compute(a)
	s.breakdown = risk.Explain(a)
	return s
}

func (Reset) apply(State) State {
	return New()
}

// Score returns the last calculated score.
func (s State) Score() risk.Score {
	return s.score
}

// Calculated reports whether Calculate has run since the last reset.
func (s State) Calculated() bool {
	return s.calculations > 0
}

// Calculations returns how many times Calculate has run since the last reset.
func (s State) Calculations() int {
	return s.calculations
}

// LastID returns the ID of the most recent calculation.
func (s State) LastID() string {
	return s.lastID
}

// Stale reports that the form changed after the displayed score was calculated.
func (s State) Stale() bool {
	return s.Calculated() && s.Input != s.scoredInput
}

// Result derives the level and metrics of the last calculation.
func (s State) Result() risk.Result {
	r := risk.ResultFor(s.score, s.breakdown)
	if s.Calculated() && !s.score.IsSet() {
		_, r.Err = s.scoredInput.Parse()
	}
	return r
}
