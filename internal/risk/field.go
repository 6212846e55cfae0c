// Package risk implements the applicant risk scoring model: a fixed linear
// formula over six applicant fields, the risk level classifier, and the
// approval probability and interest rate derived from a score.
package risk

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Field identifies one of the six applicant inputs.
type Field int

// Applicant fields in display order.
const (
	CreditScore Field = iota
	Income
	EmploymentYears
	DebtToIncome
	AssetValue
	PaymentHistory
	FieldCount // sentinel
)

var fieldKeys = [FieldCount]string{
	"creditScore",
	"income",
	"employmentYears",
	"debtToIncome",
	"assetValue",
	"paymentHistory",
}

// weights are the per-field multipliers of the linear model.
var weights = [FieldCount]float64{
	CreditScore:     0.4,
	Income:          0.00015,
	EmploymentYears: 10,
	DebtToIncome:    -5,
	AssetValue:      0.0001,
	PaymentHistory:  20,
}

// Fields returns all applicant fields in display order.
func Fields() []Field {
	fields := make([]Field, FieldCount)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

// FieldByKey looks up a field by its camelCase key.
func FieldByKey(key string) (Field, bool) {
	for i, k := range fieldKeys {
		if k == key {
			return Field(i), true
		}
	}
	return 0, false
}

// FieldBySnakeKey looks up a field by its snake_case key, as used in
// TOML files.
func FieldBySnakeKey(key string) (Field, bool) {
	for _, f := range Fields() {
		if f.SnakeKey() == key {
			return f, true
		}
	}
	return 0, false
}

// Valid reports whether f names one of the six fields.
func (f Field) Valid() bool {
	return f >= 0 && f < FieldCount
}

// Key returns the camelCase key, e.g. "debtToIncome".
func (f Field) Key() string {
	if !f.Valid() {
		return ""
	}
	return fieldKeys[f]
}

// SnakeKey returns the key in snake_case, e.g. "debt_to_income".
func (f Field) SnakeKey() string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(splitCamel(f.Key()))), " ", "_")
}

// Label returns the display label, e.g. "Debt To Income".
func (f Field) Label() string {
	// Casers keep state, so each call gets its own.
	return cases.Title(language.English).String(splitCamel(f.Key()))
}

// Placeholder returns the input hint shown in an empty field.
func (f Field) Placeholder() string {
	return "Enter " + strings.ToLower(f.Key())
}

// Weight returns the field's multiplier in the scoring formula.
func (f Field) Weight() float64 {
	if !f.Valid() {
		return 0
	}
	return weights[f]
}

func (f Field) String() string {
	return f.Key()
}

// splitCamel inserts a space before every upper-case letter.
func splitCamel(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
