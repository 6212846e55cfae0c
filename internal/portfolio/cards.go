package portfolio

import (
	"fmt"
	"math"
	"strconv"
)

// Card is one headline metric, already formatted for display.
type Card struct {
	Label string
	Value string
	Tone  string // "approval", "default", "loan", "score"
}

// Cards returns the four summary cards in display order.
func (d Dataset) Cards() []Card {
	s := d.Summary
	return []Card{
		{Label: "Approval Rate", Value: FormatRate(s.ApprovalRate), Tone: "approval"},
		{Label: "Default Rate", Value: FormatRate(s.DefaultRate), Tone: "default"},
		{Label: "Avg Loan Size", Value: FormatLoanSize(s.AvgLoanSize), Tone: "loan"},
		{Label: "Risk Score Avg", Value: strconv.Itoa(s.AvgRiskScore), Tone: "score"},
	}
}

// FormatRate renders a percentage with at most one decimal: 67.8 -> "67.8%", 65 -> "65%".
func FormatRate(pct float64) string {
	return strconv.FormatFloat(math.Round(pct*10)/10, 'f', -1, 64) + "%"
}

// FormatLoanSize renders a dollar amount in compact form: 245000 -> "$245K".
func FormatLoanSize(usd float64) string {
	abs := math.Abs(usd)
	sign := ""
	if usd < 0 {
		sign = "-"
	}
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%s$%sM", sign, trimFloat(abs/1_000_000))
	case abs >= 1_000:
		return fmt.Sprintf("%s$%sK", sign, trimFloat(abs/1_000))
	default:
		return fmt.Sprintf("%s$%.0f", sign, abs)
	}
}

// trimFloat keeps one decimal only when it is not zero.
func trimFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}
