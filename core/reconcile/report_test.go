package reconcile

import (
	"encoding/json"
	"testing"
	"time"

	"photo-manager/core/library"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildReport stamps run metadata onto a comparison result.
func TestBuildReport(t *testing.T) {
	local := library.Collection{localAlbum("Vacation", 5)}
	remote := library.Collection{remoteAlbum("Vacation", 7)}

	result, err := Compare(local, remote, 0.8)
	require.NoError(t, err)

	report := BuildReport(result, 0.8)

	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), report.GeneratedAt, 5*time.Second)
	assert.Equal(t, 0.8, report.Threshold)
	assert.False(t, report.InSync)
	assert.Same(t, result, report.Result)
}

// TestBuildReport_InSync reflects a clean comparison in the report flag.
func TestBuildReport_InSync(t *testing.T) {
	result, err := Compare(
		library.Collection{localAlbum("A", 1)},
		library.Collection{remoteAlbum("A", 1)},
		0.8,
	)
	require.NoError(t, err)

	report := BuildReport(result, 0.8)
	assert.True(t, report.InSync)
}

// TestReport_JSONShape verifies the document layout consumers depend on:
// run metadata and result fields all at the top level, snake_case keys,
// and empty discrepancy lists as [] rather than null.
func TestReport_JSONShape(t *testing.T) {
	result, err := Compare(
		library.Collection{localAlbum("Vacation 2023", 47)},
		library.Collection{remoteAlbum("vacation 2023", 45)},
		0.8,
	)
	require.NoError(t, err)

	raw, err := json.Marshal(BuildReport(result, 0.8))
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))

	for _, key := range []string{
		"run_id",
		"generated_at",
		"threshold",
		"in_sync",
		"missing_in_remote",
		"missing_in_local",
		"count_mismatches",
		"summary",
	} {
		assert.Contains(t, doc, key)
	}

	assert.Equal(t, "[]", string(doc["missing_in_remote"]))
	assert.Equal(t, "[]", string(doc["missing_in_local"]))

	var mismatches []map[string]interface{}
	require.NoError(t, json.Unmarshal(doc["count_mismatches"], &mismatches))
	require.Len(t, mismatches, 1)
	assert.Contains(t, mismatches[0], "local_name")
	assert.Contains(t, mismatches[0], "remote_name")
	assert.Contains(t, mismatches[0], "local_count")
	assert.Contains(t, mismatches[0], "remote_count")
	assert.Contains(t, mismatches[0], "diff")

	var summary map[string]interface{}
	require.NoError(t, json.Unmarshal(doc["summary"], &summary))
	assert.Contains(t, summary, "local_total")
	assert.Contains(t, summary, "remote_total")
	assert.Contains(t, summary, "matched_exact")
	assert.Contains(t, summary, "mismatch_count")
}
