// Package store provides SQLite-backed persistence for projection plans
// and actual weekly records. It owns storage only: plans are saved and
// loaded wholesale, and the engine is always handed complete values.
package store

import (
	"bytes"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/theirongolddev/venuecast/internal/config"
	"github.com/theirongolddev/venuecast/internal/forecast"
	"github.com/theirongolddev/venuecast/internal/model"
)

// Store provides SQLite-backed plan and actuals persistence.
type Store struct {
	db *sql.DB
}

// Open opens or creates the plan database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening plan db: %w", err)
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

// PlanInfo is a stored plan's listing row.
type PlanInfo struct {
	Name         string
	HorizonWeeks int
	ActualWeeks  int
	UpdatedAt    time.Time
}

// SavePlan stores a plan under its name, replacing any previous version
// wholesale. Actual records for weeks beyond the new horizon are pruned so
// later reconciliation never sees an out-of-range week; the number of
// pruned records is returned.
func (s *Store) SavePlan(cfg model.ProjectionConfig) (pruned int, err error) {
	if cfg.Name == "" {
		return 0, &forecast.ConfigError{Field: "name", Reason: "plan name must not be empty"}
	}

	blob, err := config.EncodePlan(cfg)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT OR REPLACE INTO plans (name, horizon_weeks, config_toml, updated_at)
		VALUES (?, ?, ?, ?)`,
		cfg.Name, cfg.HorizonWeeks, string(blob), now,
	)
	if err != nil {
		return 0, err
	}

	res, err := tx.Exec("DELETE FROM actuals WHERE plan_name = ? AND week > ?", cfg.Name, cfg.HorizonWeeks)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()

	return int(n), tx.Commit()
}

// LoadPlan reads a stored plan by name.
func (s *Store) LoadPlan(name string) (model.ProjectionConfig, error) {
	var blob string
	err := s.db.QueryRow("SELECT config_toml FROM plans WHERE name = ?", name).Scan(&blob)
	if err == sql.ErrNoRows {
		return model.ProjectionConfig{}, fmt.Errorf("plan %q not found", name)
	}
	if err != nil {
		return model.ProjectionConfig{}, err
	}
	return config.DecodePlan([]byte(blob))
}

// ListPlans returns all stored plans ordered by name.
func (s *Store) ListPlans() ([]PlanInfo, error) {
	rows, err := s.db.Query(`SELECT p.name, p.horizon_weeks, p.updated_at,
		(SELECT COUNT(*) FROM actuals a WHERE a.plan_name = p.name)
		FROM plans p ORDER BY p.name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var plans []PlanInfo
	for rows.Next() {
		var pi PlanInfo
		var updated string
		if err := rows.Scan(&pi.Name, &pi.HorizonWeeks, &updated, &pi.ActualWeeks); err != nil {
			return nil, err
		}
		pi.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
		plans = append(plans, pi)
	}
	return plans, rows.Err()
}

// DeletePlan removes a plan and, via the foreign key cascade, its actuals.
func (s *Store) DeletePlan(name string) error {
	_, err := s.db.Exec("DELETE FROM plans WHERE name = ?", name)
	return err
}

// actualDetail is the optional breakdown portion of a record, stored as a
// TOML blob alongside the queryable columns.
type actualDetail struct {
	RevenueByStream    map[model.RevenueStream]float64 `toml:"revenue_by_stream,omitempty"`
	ExpensesByCategory map[string]float64              `toml:"expenses_by_category,omitempty"`
	Channels           []model.ChannelActual           `toml:"channels,omitempty"`
}

// UpsertActual stores a realized weekly record for a plan; a later write
// for the same week replaces the earlier one. Weeks outside the plan's
// horizon are rejected with a ValidationError at the write path, so the
// misconfiguration surfaces once here rather than on every read.
func (s *Store) UpsertActual(planName string, rec model.ActualRecord) error {
	var horizon int
	err := s.db.QueryRow("SELECT horizon_weeks FROM plans WHERE name = ?", planName).Scan(&horizon)
	if err == sql.ErrNoRows {
		return fmt.Errorf("plan %q not found", planName)
	}
	if err != nil {
		return err
	}
	if rec.Week < 1 || rec.Week > horizon {
		return &forecast.ValidationError{
			Reason: fmt.Sprintf("week %d is outside plan horizon 1..%d", rec.Week, horizon),
		}
	}

	detail := ""
	if len(rec.RevenueByStream) > 0 || len(rec.ExpensesByCategory) > 0 || len(rec.Channels) > 0 {
		var buf bytes.Buffer
		err := toml.NewEncoder(&buf).Encode(actualDetail{
			RevenueByStream:    rec.RevenueByStream,
			ExpensesByCategory: rec.ExpensesByCategory,
			Channels:           rec.Channels,
		})
		if err != nil {
			return fmt.Errorf("encoding record detail: %w", err)
		}
		detail = buf.String()
	}

	recordDate := ""
	if !rec.Date.IsZero() {
		recordDate = rec.Date.UTC().Format(time.RFC3339)
	}
	now := time.Now().UTC().Format(time.RFC3339)

	_, err = s.db.Exec(`INSERT OR REPLACE INTO actuals
		(plan_name, week, record_date, revenue, expenses, detail_toml, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		planName, rec.Week, recordDate, rec.Revenue, rec.Expenses, detail, now,
	)
	return err
}

// ListActuals reads all records for a plan, ordered by week.
func (s *Store) ListActuals(planName string) ([]model.ActualRecord, error) {
	rows, err := s.db.Query(`SELECT week, record_date, revenue, expenses, detail_toml
		FROM actuals WHERE plan_name = ? ORDER BY week`, planName)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []model.ActualRecord
	for rows.Next() {
		var rec model.ActualRecord
		var dateStr, detail sql.NullString
		if err := rows.Scan(&rec.Week, &dateStr, &rec.Revenue, &rec.Expenses, &detail); err != nil {
			return nil, err
		}
		if dateStr.Valid && dateStr.String != "" {
			rec.Date, _ = time.Parse(time.RFC3339, dateStr.String)
		}
		if detail.Valid && detail.String != "" {
			var d actualDetail
			if err := toml.Unmarshal([]byte(detail.String), &d); err != nil {
				return nil, fmt.Errorf("parsing record detail for week %d: %w", rec.Week, err)
			}
			rec.RevenueByStream = d.RevenueByStream
			rec.ExpensesByCategory = d.ExpensesByCategory
			rec.Channels = d.Channels
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// DeleteActual removes one week's record.
func (s *Store) DeleteActual(planName string, week int) error {
	_, err := s.db.Exec("DELETE FROM actuals WHERE plan_name = ? AND week = ?", planName, week)
	return err
}
