package risk

import "github.com/shopspring/decimal"

// Result is a complete assessment of one input.
type Result struct {
	Score               Score
	Level               Level
	ApprovalProbability int             // percent, zero when unset
	InterestRate        decimal.Decimal // percent, zero when unset
	Breakdown           Breakdown       // empty when the input did not parse
	Err                 error           // *ParseError when a field is not a number
}

// Evaluate parses, scores and classifies raw input.
func Evaluate(in Input) Result {
	a, err := in.Parse()
	if err != nil {
		return Result{Score: Unset(), Level: NotCalculated, Err: err}
	}
	return ResultFor(Compute(a), Explain(a))
}

// ResultFor derives the level and metrics of an already computed score.
func ResultFor(s Score, b Breakdown) Result {
	r := Result{Score: s, Level: Classify(s), Breakdown: b}
	if v, ok := s.Value(); ok {
		r.ApprovalProbability = ApprovalProbability(v)
		r.InterestRate = SuggestedInterestRate(v)
	}
	return r
}

// RateText returns the formatted interest rate, or "—" when unset.
func (r Result) RateText() string {
	if !r.Score.IsSet() {
		return "—"
	}
	return FormatRate(r.InterestRate)
}
