package risk

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldLabels(t *testing.T) {
	tests := []struct {
		field       Field
		label       string
		placeholder string
		snake       string
	}{
		{CreditScore, "Credit Score", "Enter creditscore", "credit_score"},
		{Income, "Income", "Enter income", "income"},
		{EmploymentYears, "Employment Years", "Enter employmentyears", "employment_years"},
		{DebtToIncome, "Debt To Income", "Enter debttoincome", "debt_to_income"},
		{AssetValue, "Asset Value", "Enter assetvalue", "asset_value"},
		{PaymentHistory, "Payment History", "Enter paymenthistory", "payment_history"},
	}
	for _, tt := range tests {
		t.Run(tt.field.Key(), func(t *testing.T) {
			assert.Equal(t, tt.label, tt.field.Label())
			assert.Equal(t, tt.placeholder, tt.field.Placeholder())

			assert.Equal(t, tt.snake, tt.field.SnakeKey())

			got, ok := FieldByKey(tt.field.Key())
			require.True(t, ok)
			assert.Equal(t, tt.field, got)

			got, ok = FieldBySnakeKey(tt.snake)
			require.True(t, ok)
			assert.Equal(t, tt.field, got)
		})
	}
	assert.Len(t, Fields(), int(FieldCount))
}

func TestCalculate_ClampsHigh(t *testing.T) {
	in := NewInput("850", "1000000", "40", "0", "1000000", "100")
	s := Calculate(in)

	v, ok := s.Value()
	require.True(t, ok)
	assert.Equal(t, 850, v)
}

func TestCalculate_ClampsLow(t *testing.T) {
	in := NewInput("300", "0", "0", "100", "0", "0")
	s := Calculate(in)

	v, ok := s.Value()
	require.True(t, ok)
	assert.Equal(t, 300, v)
}

func TestCalculate_LinearModel(t *testing.T) {
	// 500 + 720*0.4 + 85000*0.00015 + 5*10 + 0.35*-5 + 250000*0.0001 + 0.9*20
	// = 500 + 288 + 12.75 + 50 - 1.75 + 25 + 18 = 892 -> clamps to 850
	assert.Equal(t, "850", Calculate(NewInput("720", "85000", "5", "0.35", "250000", "0.9")).String())

	// 500 + 400*0.4 + 20000*0.00015 + 1*10 + 30*-5 + 0 + 2*20
	// = 500 + 160 + 3 + 10 - 150 + 0 + 40 = 563
	assert.Equal(t, "563", Calculate(NewInput("400", "20000", "1", "30", "0", "2")).String())
}

func TestCalculate_Rounds(t *testing.T) {
	// 500 + 1*0.4 = 500.4 -> 500; 500 + 2*0.4 = 500.8 -> 501
	assert.Equal(t, "500", Calculate(NewInput("1", "0", "0", "0", "0", "0")).String())
	assert.Equal(t, "501", Calculate(NewInput("2", "0", "0", "0", "0", "0")).String())
}

func TestCalculate_RangeInvariant(t *testing.T) {
	extremes := []string{"-1e300", "-1000000", "-1", "0", "1", "1000000", "1e300"}
	for _, v := range extremes {
		for _, f := range Fields() {
			in := NewInput("0", "0", "0", "0", "0", "0").With(f, v)
			s := Calculate(in)
			got, ok := s.Value()
			require.True(t, ok, "field %s value %s", f, v)
			assert.GreaterOrEqual(t, got, MinScore)
			assert.LessOrEqual(t, got, MaxScore)
		}
	}
}

func TestCalculate_NonNumericIsUnset(t *testing.T) {
	tests := map[string]Input{
		"all blank":     {},
		"one blank":     NewInput("700", "50000", "", "0.3", "1000", "1"),
		"letters":       NewInput("700", "abc", "3", "0.3", "1000", "1"),
		"nan literal":   NewInput("700", "50000", "3", "NaN", "1000", "1"),
		"whitespace":    NewInput("700", "50000", "3", "0.3", "   ", "1"),
		"trailing junk": NewInput("700", "50000", "3", "0.3", "1000", "1x"),
		"opposing infs": NewInput("1e400", "0", "0", "1e400", "0", "0"),
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			s := Calculate(in)
			assert.False(t, s.IsSet())
			assert.Equal(t, NotCalculated, Classify(s))
		})
	}
}

func TestCalculate_OverflowSaturates(t *testing.T) {
	s := Calculate(NewInput("1e400", "0", "0", "0", "0", "0"))
	v, ok := s.Value()
	require.True(t, ok)
	assert.Equal(t, MaxScore, v)
}

func TestCalculate_Idempotent(t *testing.T) {
	in := NewInput("680", "62000", "4", "0.4", "120000", "0.8")
	assert.Equal(t, Calculate(in), Calculate(in))
}

func TestParse_ReportsEveryBadField(t *testing.T) {
	_, err := NewInput("", "1", "x", "1", "1", "").Parse()
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, []Field{CreditScore, EmploymentYears, PaymentHistory}, pe.Fields)
	assert.Equal(t, "not a number: credit score, employment years, payment history", err.Error())
}

func TestParseValue(t *testing.T) {
	v, ok := ParseValue(" 42.5 ")
	assert.True(t, ok)
	assert.Equal(t, 42.5, v)

	v, ok = ParseValue("-1e999")
	assert.True(t, ok)
	assert.True(t, math.IsInf(v, -1))

	v, ok = ParseValue("")
	assert.False(t, ok)
	assert.True(t, math.IsNaN(v))

	for _, s := range []string{"-3", "+.5", "7.", "1E3", "2.5e-1"} {
		_, ok := ParseValue(s)
		assert.True(t, ok, "%q should parse", s)
	}
}

func TestParseValue_RejectsNonDecimalSpellings(t *testing.T) {
	for _, s := range []string{"inf", "+Inf", "Infinity", "nan", "1_000", "0x10", "0x1p-2", ".", "1e", "--1"} {
		v, ok := ParseValue(s)
		assert.False(t, ok, "%q should not parse", s)
		assert.True(t, math.IsNaN(v), "%q", s)
	}
	s := Calculate(NewInput("inf", "0", "0", "0", "0", "0"))
	assert.False(t, s.IsSet())
	assert.Equal(t, NotCalculated, Classify(s))
}

func TestInputWith_LeavesOtherFields(t *testing.T) {
	orig := NewInput("1", "2", "3", "4", "5", "6")
	for _, f := range Fields() {
		next := orig.With(f, "99")
		for _, other := range Fields() {
			if other == f {
				assert.Equal(t, "99", next.Value(other))
				continue
			}
			assert.Equal(t, orig.Value(other), next.Value(other), "editing %s changed %s", f, other)
		}
	}
	assert.Equal(t, "1", orig.Value(CreditScore), "original must not change")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		score Score
		want  Level
		tone  Affinity
	}{
		{NewScore(800), LowRisk, AffinityGood},
		{NewScore(750), LowRisk, AffinityGood},
		{NewScore(749), ModerateRisk, AffinityCaution},
		{NewScore(700), ModerateRisk, AffinityCaution},
		{NewScore(650), ModerateRisk, AffinityCaution},
		{NewScore(649), HighRisk, AffinityDanger},
		{NewScore(300), HighRisk, AffinityDanger},
		{Unset(), NotCalculated, AffinityNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.score.String(), func(t *testing.T) {
			got := Classify(tt.score)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.tone, got.Affinity())
		})
	}

	assert.Equal(t, "Low Risk", LowRisk.String())
	assert.Equal(t, "Moderate Risk", ModerateRisk.String())
	assert.Equal(t, "High Risk", HighRisk.String())
	assert.Equal(t, "Not Calculated", NotCalculated.String())
}

func TestNewScoreClamps(t *testing.T) {
	v, _ := NewScore(10).Value()
	assert.Equal(t, MinScore, v)
	v, _ = NewScore(10_000).Value()
	assert.Equal(t, MaxScore, v)
}

func TestApprovalProbability(t *testing.T) {
	assert.Equal(t, 0, ApprovalProbability(300))
	assert.Equal(t, 100, ApprovalProbability(850))
	assert.Equal(t, 73, ApprovalProbability(700)) // 400/5.5 = 72.7
	assert.Equal(t, 0, ApprovalProbability(200))
	assert.Equal(t, 100, ApprovalProbability(1000))
}

func TestSuggestedInterestRate(t *testing.T) {
	assert.Equal(t, "10.00%", FormatRate(SuggestedInterestRate(300)))
	assert.Equal(t, "4.50%", FormatRate(SuggestedInterestRate(850)))
	assert.Equal(t, "5.55%", FormatRate(SuggestedInterestRate(745)))

	// Not clamped outside the score range.
	assert.Equal(t, "-0.50%", FormatRate(SuggestedInterestRate(1350)))
	assert.Equal(t, "13.00%", FormatRate(SuggestedInterestRate(0)))
}

func TestExplain_SumsToTotal(t *testing.T) {
	a, err := NewInput("700", "60000", "3", "0.3", "150000", "1").Parse()
	require.NoError(t, err)

	b := Explain(a)
	sum := b.Base
	for _, c := range b.Contributions {
		assert.Equal(t, c.Value*c.Weight, c.Points)
		sum += c.Points
	}
	assert.InDelta(t, b.Total, sum, 1e-9)
	assert.Len(t, b.Contributions, int(FieldCount))
}

func TestEvaluate(t *testing.T) {
	r := Evaluate(NewInput("650", "40000", "2", "0.5", "50000", "1"))
	// 500 + 260 + 6 + 20 - 2.5 + 5 + 20 = 808.5 -> 809
	require.NoError(t, r.Err)
	assert.Equal(t, "809", r.Score.String())
	assert.Equal(t, LowRisk, r.Level)
	assert.Equal(t, 93, r.ApprovalProbability) // 509/5.5 = 92.55
	assert.Equal(t, "4.91%", r.RateText())

	bad := Evaluate(NewInput("650"))
	assert.Error(t, bad.Err)
	assert.False(t, bad.Score.IsSet())
	assert.Equal(t, "—", bad.RateText())
}
