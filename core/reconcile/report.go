package reconcile

import (
	"time"

	"github.com/google/uuid"
)

// Report is the outward document for one comparison run: the classified diff
// plus run metadata. It is what the CLI writes with --output and what the
// HTTP API returns.
type Report struct {
	// RunID uniquely identifies this comparison run.
	RunID string `json:"run_id"`

	// GeneratedAt is when the comparison finished (UTC).
	GeneratedAt time.Time `json:"generated_at"`

	// Threshold is the similarity threshold the run used.
	Threshold float64 `json:"threshold"`

	// InSync is true when no discrepancies were found.
	InSync bool `json:"in_sync"`

	// Result fields are embedded so the document carries missing_in_remote,
	// missing_in_local, count_mismatches and summary at the top level.
	*Result
}

// BuildReport wraps a comparison result into the outward document, stamping
// it with a fresh run ID and the current time.
func BuildReport(result *Result, threshold float64) *Report {
	return &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Threshold:   threshold,
		InSync:      result.InSync(),
		Result:      result,
	}
}
