package assess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/riskdash/internal/risk"
)

func fill(s State, values ...string) State {
	for i, v := range values {
		s = Reduce(s, EditField{Field: risk.Field(i), Value: v})
	}
	return s
}

func TestNewStateIsNotCalculated(t *testing.T) {
	s := New()
	assert.False(t, s.Calculated())
	assert.False(t, s.Stale())
	assert.Equal(t, risk.NotCalculated, s.Result().Level)
	assert.NoError(t, s.Result().Err)
}

func TestEditField_TouchesOnlyOneField(t *testing.T) {
	s := fill(New(), "700", "50000", "3", "0.3", "100000", "1")

	for _, f := range risk.Fields() {
		next := Reduce(s, EditField{Field: f, Value: "42"})
		for _, other := range risk.Fields() {
			if other == f {
				assert.Equal(t, "42", next.Input.Value(other))
			} else {
				assert.Equal(t, s.Input.Value(other), next.Input.Value(other))
			}
		}
	}
	assert.Equal(t, "700", s.Input.Value(risk.CreditScore), "reduce must not mutate its argument")
}

func TestEditField_DoesNotRecalculate(t *testing.T) {
	s := fill(New(), "700", "50000", "3", "0.3", "100000", "1")
	s = Reduce(s, Calculate{ID: "a"})
	before := s.Score()

	s = Reduce(s, EditField{Field: risk.CreditScore, Value: "300"})
	assert.Equal(t, before, s.Score())
	assert.True(t, s.Stale())
}

func TestCalculate_Idempotent(t *testing.T) {
	s := fill(New(), "720", "85000", "5", "0.35", "250000", "0.9")

	first := Reduce(s, Calculate{ID: "1"})
	second := Reduce(first, Calculate{ID: "2"})

	require.True(t, first.Score().IsSet())
	assert.Equal(t, first.Score(), second.Score())
	assert.Equal(t, 2, second.Calculations())
	assert.Equal(t, "2", second.LastID())
	assert.False(t, second.Stale())
}

func TestCalculate_NonNumericIsNotCalculated(t *testing.T) {
	s := fill(New(), "700", "", "3", "0.3", "100000", "1")
	s = Reduce(s, Calculate{ID: "x"})

	assert.True(t, s.Calculated())
	assert.False(t, s.Score().IsSet())

	r := s.Result()
	assert.Equal(t, risk.NotCalculated, r.Level)
	var pe *risk.ParseError
	require.ErrorAs(t, r.Err, &pe)
	assert.Equal(t, []risk.Field{risk.Income}, pe.Fields)
}

func TestCalculate_ReplacesEarlierScore(t *testing.T) {
	s := fill(New(), "850", "1000000", "40", "0", "1000000", "100")
	s = Reduce(s, Calculate{})
	v, _ := s.Score().Value()
	assert.Equal(t, 850, v)

	s = fill(s, "300", "0", "0", "100", "0", "0")
	s = Reduce(s, Calculate{})
	v, _ = s.Score().Value()
	assert.Equal(t, 300, v)

	r := s.Result()
	assert.Equal(t, risk.HighRisk, r.Level)
	assert.Equal(t, 0, r.ApprovalProbability)
	assert.Equal(t, "10.00%", r.RateText())
}

func TestReset(t *testing.T) {
	s := fill(New(), "700", "50000", "3", "0.3", "100000", "1")
	s = Reduce(s, Calculate{ID: "a"})
	s = Reduce(s, Reset{})

	assert.True(t, s.Input.IsBlank())
	assert.False(t, s.Calculated())
	assert.False(t, s.Score().IsSet())
}

func TestReduceNilEvent(t *testing.T) {
	s := fill(New(), "1")
	assert.Equal(t, s, Reduce(s, nil))
}
