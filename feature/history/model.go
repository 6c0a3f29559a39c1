package history

import "time"

// ComparisonRun is one persisted comparison outcome. The headline numbers
// are stored as columns so listings stay cheap, while the full report
// document is kept as JSON text for the detail view.
type ComparisonRun struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	RunID         string    `gorm:"uniqueIndex;size:36" json:"run_id"`
	GeneratedAt   time.Time `json:"generated_at"`
	LocalSource   string    `gorm:"size:32" json:"local_source"`
	RemoteSource  string    `gorm:"size:32" json:"remote_source"`
	Threshold     float64   `json:"threshold"`
	InSync        bool      `json:"in_sync"`
	LocalTotal    int       `json:"local_total"`
	RemoteTotal   int       `json:"remote_total"`
	MatchedExact  int       `json:"matched_exact"`
	MismatchCount int       `json:"mismatch_count"`
	MissingRemote int       `json:"missing_remote"`
	MissingLocal  int       `json:"missing_local"`
	Report        string    `gorm:"type:text" json:"-"`
}

// TableName pins the table name so it does not depend on GORM's
// pluralization rules.
func (ComparisonRun) TableName() string {
	return "comparison_runs"
}
