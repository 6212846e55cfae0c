// Package portfolio holds the read-only performance data shown beside the
// risk calculator: a monthly performance series and four summary figures.
// Nothing here is derived from applicant input.
package portfolio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// PerformanceRecord is one month of portfolio performance.
type PerformanceRecord struct {
	Month        string  `toml:"month"`
	DefaultRate  float64 `toml:"default_rate"`  // percent
	ApprovalRate float64 `toml:"approval_rate"` // percent
	AvgRiskScore int     `toml:"avg_risk_score"`
}

// Summary holds the headline figures shown on the metric cards.
type Summary struct {
	ApprovalRate float64 `toml:"approval_rate"` // percent
	DefaultRate  float64 `toml:"default_rate"`  // percent
	AvgLoanSize  float64 `toml:"avg_loan_size"` // USD
	AvgRiskScore int     `toml:"avg_risk_score"`
}

// Dataset is a named set of display data.
type Dataset struct {
	Name    string              `toml:"name"`
	Summary Summary             `toml:"summary"`
	Records []PerformanceRecord `toml:"record"`
}

// SampleName is the name of the built-in dataset.
const SampleName = "sample"

// Sample returns the built-in six-month dataset.
func Sample() Dataset {
	return Dataset{
		Name: SampleName,
		Summary: Summary{
			ApprovalRate: 67.8,
			DefaultRate:  2.1,
			AvgLoanSize:  245_000,
			AvgRiskScore: 715,
		},
		Records: []PerformanceRecord{
			{Month: "Jan", DefaultRate: 2.1, ApprovalRate: 65, AvgRiskScore: 720},
			{Month: "Feb", DefaultRate: 1.8, ApprovalRate: 68, AvgRiskScore: 715},
			{Month: "Mar", DefaultRate: 2.3, ApprovalRate: 62, AvgRiskScore: 705},
			{Month: "Apr", DefaultRate: 1.9, ApprovalRate: 70, AvgRiskScore: 725},
			{Month: "May", DefaultRate: 2.0, ApprovalRate: 67, AvgRiskScore: 718},
			{Month: "Jun", DefaultRate: 1.7, ApprovalRate: 72, AvgRiskScore: 730},
		},
	}
}

// ErrEmptyDataset is returned for datasets without any records.
var ErrEmptyDataset = errors.New("dataset has no performance records")

// Validate checks that the dataset can be displayed.
func (d Dataset) Validate() error {
	if len(d.Records) == 0 {
		return ErrEmptyDataset
	}
	for i, r := range d.Records {
		if strings.TrimSpace(r.Month) == "" {
			return fmt.Errorf("record %d: month label is empty", i+1)
		}
	}
	return nil
}

// LoadFile decodes a dataset from a TOML file. A dataset without a name
// takes the file's base name.
func LoadFile(path string) (Dataset, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-supplied dataset path
	if err != nil {
		return Dataset{}, fmt.Errorf("reading dataset: %w", err)
	}

	var d Dataset
	if err := toml.Unmarshal(data, &d); err != nil {
		return Dataset{}, fmt.Errorf("parsing dataset %s: %w", path, err)
	}
	if d.Name == "" {
		d.Name = baseName(path)
	}
	if err := d.Validate(); err != nil {
		return Dataset{}, fmt.Errorf("dataset %s: %w", path, err)
	}
	return d, nil
}

// WriteFile encodes the dataset as TOML.
func WriteFile(path string, d Dataset) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:gosec // user-supplied dataset path
	if err != nil {
		return fmt.Errorf("creating dataset file: %w", err)
	}
	defer f.Close()

	return Encode(f, d)
}

// Encode writes the dataset as TOML.
func Encode(w io.Writer, d Dataset) error {
	if err := toml.NewEncoder(w).Encode(d); err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}
	return nil
}

func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
