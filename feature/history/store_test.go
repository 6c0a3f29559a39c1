package history

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"photo-manager/core/database"
	"photo-manager/core/library"
	"photo-manager/core/reconcile"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func newTestStore(t *testing.T) *Store {
	db, err := database.Connect(database.Config{
		Driver:         database.DriverSQLite,
		Name:           ":memory:",
		TimeoutSeconds: 5,
	})
	require.NoError(t, err)

	store := NewStore(db, zap.NewNop())
	require.NoError(t, store.Migrate())
	return store
}

func sampleReport(runID string, generatedAt time.Time, inSync bool) *reconcile.Report {
	result := &reconcile.Result{
		MissingInRemote: []library.Album{},
		MissingInLocal:  []library.Album{},
		CountMismatches: []reconcile.CountMismatch{},
		MatchedExact:    3,
		Summary:         reconcile.Summary{LocalTotal: 3, RemoteTotal: 3, MatchedExact: 3},
	}
	if !inSync {
		result.MissingInRemote = []library.Album{
			{Name: "Hiking", ItemCount: 12, Source: library.SourceLocal},
		}
		result.Summary = reconcile.Summary{LocalTotal: 4, RemoteTotal: 3, MatchedExact: 3}
	}

	return &reconcile.Report{
		RunID:       runID,
		GeneratedAt: generatedAt,
		Threshold:   0.8,
		InSync:      inSync,
		Result:      result,
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	generatedAt := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	report := sampleReport("11111111-1111-1111-1111-111111111111", generatedAt, false)

	require.NoError(t, store.Save(ctx, report, "local", "google"))

	run, err := store.Get(ctx, report.RunID)
	require.NoError(t, err)

	assert.Equal(t, report.RunID, run.RunID)
	assert.Equal(t, "local", run.LocalSource)
	assert.Equal(t, "google", run.RemoteSource)
	assert.Equal(t, 0.8, run.Threshold)
	assert.False(t, run.InSync)
	assert.Equal(t, 4, run.LocalTotal)
	assert.Equal(t, 3, run.RemoteTotal)
	assert.Equal(t, 3, run.MatchedExact)
	assert.Equal(t, 1, run.MissingRemote)
	assert.Equal(t, 0, run.MissingLocal)

	// The stored document round-trips back into a full report.
	var stored reconcile.Report
	require.NoError(t, json.Unmarshal([]byte(run.Report), &stored))
	assert.Equal(t, report.RunID, stored.RunID)
	require.Len(t, stored.MissingInRemote, 1)
	assert.Equal(t, "Hiking", stored.MissingInRemote[0].Name)
}

func TestStore_Get_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "99999999-9999-9999-9999-999999999999")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestStore_Recent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	ids := []string{
		"00000000-0000-0000-0000-000000000001",
		"00000000-0000-0000-0000-000000000002",
		"00000000-0000-0000-0000-000000000003",
	}
	for i, id := range ids {
		report := sampleReport(id, base.Add(time.Duration(i)*time.Hour), true)
		require.NoError(t, store.Save(ctx, report, "local", "google"))
	}

	runs, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.Equal(t, ids[2], runs[0].RunID)
	assert.Equal(t, ids[1], runs[1].RunID)

	// Listings leave the heavy document behind.
	assert.Empty(t, runs[0].Report)
}

func TestStore_Recent_DefaultLimit(t *testing.T) {
	store := newTestStore(t)

	runs, err := store.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStore_DuplicateRunID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	report := sampleReport("22222222-2222-2222-2222-222222222222", time.Now().UTC(), true)
	require.NoError(t, store.Save(ctx, report, "local", "google"))

	err := store.Save(ctx, report, "local", "google")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save comparison run")
}

func TestStore_VerifySchema(t *testing.T) {
	t.Run("Migrated table passes", func(t *testing.T) {
		store := newTestStore(t)
		assert.NoError(t, store.VerifySchema())
	})

	t.Run("Stale table is rejected", func(t *testing.T) {
		db, err := database.Connect(database.Config{
			Driver:         database.DriverSQLite,
			Name:           ":memory:",
			TimeoutSeconds: 5,
		})
		require.NoError(t, err)
		require.NoError(t, db.Exec("CREATE TABLE comparison_runs (id INTEGER PRIMARY KEY, run_id TEXT)").Error)

		store := NewStore(db, zap.NewNop())
		err = store.VerifySchema()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing column")
	})
}

func TestStore_Save_InsertError(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `comparison_runs`").WillReturnError(errors.New("connection lost"))
	mock.ExpectRollback()

	report := sampleReport("33333333-3333-3333-3333-333333333333", time.Now().UTC(), true)
	err := store.Save(context.Background(), report, "local", "google")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save comparison run")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Recent_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db, zap.NewNop())

	mock.ExpectQuery("SELECT (.+) FROM `comparison_runs`").WillReturnError(errors.New("connection lost"))

	_, err := store.Recent(context.Background(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list comparison runs")
	assert.NoError(t, mock.ExpectationsWereMet())
}
