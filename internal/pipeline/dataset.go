// Package pipeline resolves the dashboard's display dataset and scores
// applicants in bulk.
package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/theirongolddev/riskdash/internal/portfolio"
	"github.com/theirongolddev/riskdash/internal/store"
)

// Source names where a dataset came from.
type Source string

const (
	SourceStore  Source = "store"
	SourceFile   Source = "file"
	SourceSample Source = "sample"
)

// DatasetOptions configures dataset resolution. Empty fields skip a step.
type DatasetOptions struct {
	DBPath string // SQLite dataset store
	Name   string // dataset name within the store
	File   string // TOML dataset file
}

// LoadResult holds the resolved dataset and how it was found.
type LoadResult struct {
	Dataset  portfolio.Dataset
	Source   Source
	Location string // store path or file path; empty for the sample
	Warnings []string
}

// LoadDataset resolves the display dataset: store, then file, then the
// built-in sample. A failing step falls through to the next one and is
// recorded as a warning. It never fails outright.
func LoadDataset(opts DatasetOptions) *LoadResult {
	result := &LoadResult{}

	if opts.DBPath != "" {
		d, err := loadFromStore(opts.DBPath, opts.Name)
		if err == nil {
			result.Dataset = d
			result.Source = SourceStore
			result.Location = opts.DBPath
			slog.Info("dataset loaded", "source", SourceStore, "path", opts.DBPath, "name", d.Name)
			return result
		}
		result.warn(fmt.Sprintf("dataset store %s: %v", opts.DBPath, err))
	}

	if opts.File != "" {
		d, err := portfolio.LoadFile(opts.File)
		if err == nil {
			result.Dataset = d
			result.Source = SourceFile
			result.Location = opts.File
			slog.Info("dataset loaded", "source", SourceFile, "path", opts.File, "name", d.Name)
			return result
		}
		result.warn(err.Error())
	}

	result.Dataset = portfolio.Sample()
	result.Source = SourceSample
	slog.Debug("dataset loaded", "source", SourceSample)
	return result
}

func (r *LoadResult) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
	slog.Warn("dataset fallback", "reason", msg)
}

func loadFromStore(dbPath, name string) (portfolio.Dataset, error) {
	if name == "" {
		name = portfolio.SampleName
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return portfolio.Dataset{}, err
	}
	defer func() { _ = s.Close() }()

	return s.LoadDataset(name)
}
