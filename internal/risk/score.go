package risk

import (
	"math"
	"strconv"
)

// Score bounds and the model's starting point.
const (
	MinScore  = 300
	MaxScore  = 850
	BaseScore = 500
)

// Score is a risk score in [MinScore, MaxScore], or unset.
type Score struct {
	value int
	set   bool
}

// Unset returns a score that has not been calculated.
func Unset() Score {
	return Score{}
}

// NewScore returns a set score, clamped to the valid range.
func NewScore(v int) Score {
	return Score{value: min(MaxScore, max(MinScore, v)), set: true}
}

// Value returns the score and whether it is set.
func (s Score) Value() (int, bool) {
	return s.value, s.set
}

// IsSet reports whether the score has been calculated.
func (s Score) IsSet() bool {
	return s.set
}

func (s Score) String() string {
	if !s.set {
		return "—"
	}
	return strconv.Itoa(s.value)
}

// Contribution is one field's share of the unclamped score.
type Contribution struct {
	Field  Field
	Value  float64
	Weight float64
	Points float64
}

// Breakdown explains how a score was assembled.
type Breakdown struct {
	Base          float64
	Contributions []Contribution
	Total         float64 // unclamped, unrounded
}

// Explain applies the linear model and returns every term.
// Terms are summed in field order starting from the base.
func Explain(a Applicant) Breakdown {
	b := Breakdown{
		Base:          BaseScore,
		Contributions: make([]Contribution, 0, FieldCount),
	}
	total := float64(BaseScore)
	for _, f := range Fields() {
		pts := a[f] * weights[f]
		b.Contributions = append(b.Contributions, Contribution{
			Field:  f,
			Value:  a[f],
			Weight: weights[f],
			Points: pts,
		})
		total += pts
	}
	b.Total = total
	return b
}

// Compute scores a parsed applicant. A NaN total (NaN input, or opposing
// infinities) yields an unset score.
func Compute(a Applicant) Score {
	return finalize(Explain(a).Total)
}

// Calculate parses and scores raw input. Any field that is not a number
// yields an unset score rather than a clamped one.
func Calculate(in Input) Score {
	a, err := in.Parse()
	if err != nil {
		return Unset()
	}
	return Compute(a)
}

func finalize(total float64) Score {
	if math.IsNaN(total) {
		return Unset()
	}
	clamped := math.Min(MaxScore, math.Max(MinScore, total))
	return Score{value: int(math.Round(clamped)), set: true}
}
