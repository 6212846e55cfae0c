package pipeline

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/riskdash/internal/risk"
)

// nameKey is the optional identifier key in an applicant table.
const nameKey = "name"

// LoadApplicants decodes [[applicant]] tables from a TOML file. Field keys
// are the snake_case field names (credit_score, income, ...). Values may be
// numbers or strings; a missing key is a blank field.
func LoadApplicants(path string) ([]Entry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-supplied applicant file
	if err != nil {
		return nil, fmt.Errorf("reading applicants: %w", err)
	}
	return ParseApplicants(data)
}

// ParseApplicants decodes applicant tables from TOML text.
func ParseApplicants(data []byte) ([]Entry, error) {
	var doc struct {
		Applicant []map[string]any `toml:"applicant"`
	}
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, fmt.Errorf("parsing applicants: %w", err)
	}

	entries := make([]Entry, 0, len(doc.Applicant))
	for i, table := range doc.Applicant {
		e := Entry{Name: fmt.Sprintf("#%d", i+1)}
		for key, raw := range table {
			if key == nameKey {
				if s, ok := raw.(string); ok && s != "" {
					e.Name = s
				}
				continue
			}
			f, ok := risk.FieldBySnakeKey(key)
			if !ok {
				return nil, fmt.Errorf("applicant %d: unknown field %q", i+1, key)
			}
			text, err := valueText(raw)
			if err != nil {
				return nil, fmt.Errorf("applicant %d: %s: %w", i+1, key, err)
			}
			e.Input = e.Input.With(f, text)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func valueText(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", raw)
	}
}
