package risk

import "github.com/shopspring/decimal"

var (
	approvalStep = decimal.RequireFromString("5.5")
	baseRate     = decimal.NewFromInt(10)
	rateStep     = decimal.NewFromInt(100)
)

// ApprovalProbability returns round((score-300)/5.5) clamped to [0, 100].
func ApprovalProbability(score int) int {
	p := decimal.NewFromInt(int64(score - MinScore)).Div(approvalStep).Round(0).IntPart()
	return int(min(100, max(0, p)))
}

// SuggestedInterestRate returns 10 - (score-300)/100 as a percentage.
// The result is unbounded: scores outside the model's range
// can produce negative or very large rates.
func SuggestedInterestRate(score int) decimal.Decimal {
	return baseRate.Sub(decimal.NewFromInt(int64(score - MinScore)).Div(rateStep))
}

// FormatRate renders a percentage with two decimals, e.g. "4.50%".
func FormatRate(rate decimal.Decimal) string {
	return rate.StringFixed(2) + "%"
}
