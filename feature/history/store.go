package history

import (
	"context"
	"encoding/json"
	"fmt"

	"photo-manager/core/database"
	"photo-manager/core/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store persists comparison runs.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewStore creates a new run store. Migrate must be called before first use.
func NewStore(db *gorm.DB, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// Migrate creates or updates the run table.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&ComparisonRun{}); err != nil {
		return fmt.Errorf("migrate history schema: %w", err)
	}
	return nil
}

// VerifySchema checks that the run table carries the columns the model
// expects. Migration normally guarantees this; the check catches databases
// written by older versions of the tool.
func (s *Store) VerifySchema() error {
	columns, err := database.GetTableColumns(s.db, ComparisonRun{}.TableName())
	if err != nil {
		return err
	}

	present := make(map[string]bool, len(columns))
	for _, col := range columns {
		present[col.Field] = true
	}
	for _, required := range []string{"run_id", "generated_at", "threshold", "in_sync", "report"} {
		if !present[required] {
			return fmt.Errorf("history table is missing column %q, delete the database file to recreate it", required)
		}
	}
	return nil
}

// Save records one finished comparison run together with the names of the
// scanners that produced it.
func (s *Store) Save(ctx context.Context, report *reconcile.Report, localSource, remoteSource string) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	run := ComparisonRun{
		RunID:         report.RunID,
		GeneratedAt:   report.GeneratedAt,
		LocalSource:   localSource,
		RemoteSource:  remoteSource,
		Threshold:     report.Threshold,
		InSync:        report.InSync,
		LocalTotal:    report.Summary.LocalTotal,
		RemoteTotal:   report.Summary.RemoteTotal,
		MatchedExact:  report.Summary.MatchedExact,
		MismatchCount: report.Summary.MismatchCount,
		MissingRemote: len(report.MissingInRemote),
		MissingLocal:  len(report.MissingInLocal),
		Report:        string(raw),
	}

	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		return fmt.Errorf("save comparison run: %w", err)
	}

	s.logger.Info("Saved comparison run",
		zap.String("run_id", run.RunID),
		zap.Bool("in_sync", run.InSync))
	return nil
}

// Recent returns the latest runs, newest first. The stored report document
// is omitted to keep listings small.
func (s *Store) Recent(ctx context.Context, limit int) ([]ComparisonRun, error) {
	if limit <= 0 {
		limit = 20
	}

	var runs []ComparisonRun
	err := s.db.WithContext(ctx).
		Omit("report").
		Order("generated_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("list comparison runs: %w", err)
	}
	return runs, nil
}

// Get returns a single run by its run ID, including the full report
// document. Callers can check gorm.ErrRecordNotFound to distinguish an
// unknown ID from a query failure.
func (s *Store) Get(ctx context.Context, runID string) (*ComparisonRun, error) {
	var run ComparisonRun
	err := s.db.WithContext(ctx).First(&run, "run_id = ?", runID).Error
	if err != nil {
		return nil, fmt.Errorf("load comparison run %s: %w", runID, err)
	}
	return &run, nil
}
