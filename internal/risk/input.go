package risk

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// decimalPattern is plain decimal notation with an optional exponent.
// strconv alone would also take "inf", "NaN", hex floats and underscores.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Input holds the raw text of the six applicant fields, indexed by Field.
// It is a value type: copies never share state.
type Input [FieldCount]string

// NewInput builds an Input from values in field order. Missing trailing
// values are left blank.
func NewInput(values ...string) Input {
	var in Input
	copy(in[:], values)
	return in
}

// Value returns the raw text of one field.
func (in Input) Value(f Field) string {
	if !f.Valid() {
		return ""
	}
	return in[f]
}

// With returns a copy of in with exactly one field replaced.
func (in Input) With(f Field, value string) Input {
	if f.Valid() {
		in[f] = value
	}
	return in
}

// IsBlank reports whether every field is empty.
func (in Input) IsBlank() bool {
	for _, v := range in {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Applicant holds the parsed numeric value of each field.
type Applicant [FieldCount]float64

// Value returns the numeric value of one field.
func (a Applicant) Value(f Field) float64 {
	if !f.Valid() {
		return 0
	}
	return a[f]
}

// Input formats the applicant back into raw text.
func (a Applicant) Input() Input {
	var in Input
	for i, v := range a {
		in[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return in
}

// ParseError lists the fields whose text is not a number.
type ParseError struct {
	Fields []Field
}

func (e *ParseError) Error() string {
	labels := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		labels[i] = strings.ToLower(f.Label())
	}
	return fmt.Sprintf("not a number: %s", strings.Join(labels, ", "))
}

// Parse converts every field to a float64. Fields that fail to parse are
// set to NaN and reported together in a *ParseError.
func (in Input) Parse() (Applicant, error) {
	var a Applicant
	var bad []Field
	for _, f := range Fields() {
		v, ok := ParseValue(in[f])
		if !ok {
			bad = append(bad, f)
		}
		a[f] = v
	}
	if len(bad) > 0 {
		return a, &ParseError{Fields: bad}
	}
	return a, nil
}

// ParseValue parses one field's text. Surrounding whitespace is ignored.
// Only decimal notation is accepted; magnitudes beyond float64 range become
// ±Inf. Blank or non-numeric text returns NaN and false.
func ParseValue(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !decimalPattern.MatchString(s) {
		return math.NaN(), false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN(), false
	}
	return v, true
}
