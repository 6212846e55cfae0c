// Package store keeps named portfolio datasets in a SQLite file so the
// dashboard can switch between display fixtures without code changes.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/riskdash/internal/portfolio"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned when a named dataset does not exist.
var ErrNotFound = errors.New("dataset not found")

// Store provides SQLite-backed dataset storage.
type Store struct {
	db *sql.DB
}

// Open opens or creates the dataset database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveDataset stores a dataset, replacing any dataset with the same name.
func (s *Store) SaveDataset(d portfolio.Dataset) error {
	if d.Name == "" {
		return errors.New("dataset name is required")
	}
	if err := d.Validate(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// Delete first so ON DELETE CASCADE clears the old records.
	if _, err := tx.Exec("DELETE FROM datasets WHERE name = ?", d.Name); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT INTO datasets
		(name, approval_rate, default_rate, avg_loan_size, avg_risk_score, saved_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		d.Name, d.Summary.ApprovalRate, d.Summary.DefaultRate, d.Summary.AvgLoanSize,
		d.Summary.AvgRiskScore, now,
	)
	if err != nil {
		return err
	}

	for i, r := range d.Records {
		_, err = tx.Exec(`INSERT INTO performance_records
			(dataset, seq, month, default_rate, approval_rate, avg_risk_score)
			VALUES (?, ?, ?, ?, ?, ?)`,
			d.Name, i, r.Month, r.DefaultRate, r.ApprovalRate, r.AvgRiskScore,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadDataset reads one dataset with its records in saved order.
func (s *Store) LoadDataset(name string) (portfolio.Dataset, error) {
	d := portfolio.Dataset{Name: name}

	err := s.db.QueryRow(`SELECT approval_rate, default_rate, avg_loan_size, avg_risk_score
		FROM datasets WHERE name = ?`, name).
		Scan(&d.Summary.ApprovalRate, &d.Summary.DefaultRate, &d.Summary.AvgLoanSize, &d.Summary.AvgRiskScore)
	if errors.Is(err, sql.ErrNoRows) {
		return portfolio.Dataset{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return portfolio.Dataset{}, err
	}

	rows, err := s.db.Query(`SELECT month, default_rate, approval_rate, avg_risk_score
		FROM performance_records WHERE dataset = ? ORDER BY seq`, name)
	if err != nil {
		return portfolio.Dataset{}, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var r portfolio.PerformanceRecord
		if err := rows.Scan(&r.Month, &r.DefaultRate, &r.ApprovalRate, &r.AvgRiskScore); err != nil {
			return portfolio.Dataset{}, err
		}
		d.Records = append(d.Records, r)
	}
	return d, rows.Err()
}

// DatasetInfo describes a stored dataset.
type DatasetInfo struct {
	Name    string
	Records int
	SavedAt time.Time
}

// ListDatasets returns every stored dataset, sorted by name.
func (s *Store) ListDatasets() ([]DatasetInfo, error) {
	rows, err := s.db.Query(`SELECT d.name, d.saved_at, COUNT(r.seq)
		FROM datasets d LEFT JOIN performance_records r ON r.dataset = d.name
		GROUP BY d.name ORDER BY d.name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result []DatasetInfo
	for rows.Next() {
		var info DatasetInfo
		var savedAt string
		if err := rows.Scan(&info.Name, &savedAt, &info.Records); err != nil {
			return nil, err
		}
		info.SavedAt, _ = time.Parse(time.RFC3339, savedAt)
		result = append(result, info)
	}
	return result, rows.Err()
}

// DeleteDataset removes a dataset and its records.
func (s *Store) DeleteDataset(name string) error {
	res, err := s.db.Exec("DELETE FROM datasets WHERE name = ?", name)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}
