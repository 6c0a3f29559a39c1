package reconcile

import (
	"context"
	"fmt"
	"testing"
	"time"

	"photo-manager/core/library"

	"github.com/stretchr/testify/assert"
)

// fakeScanner is a simple test scanner
type fakeScanner struct {
	name     string
	source   library.Source
	albums   library.Collection
	err      error
	scans    int
	scanFunc func(context.Context) (library.Collection, error)
}

func (f *fakeScanner) Name() string {
	return f.name
}

func (f *fakeScanner) Source() library.Source {
	return f.source
}

func (f *fakeScanner) Scan(ctx context.Context) (library.Collection, error) {
	f.scans++
	if f.scanFunc != nil {
		return f.scanFunc(ctx)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.albums, nil
}

// TestLoadCollections_ErrorHandling tests that LoadCollections correctly surfaces errors from either side.
func TestLoadCollections_ErrorHandling(t *testing.T) {
	tests := []struct {
		name      string
		localErr  error
		remoteErr error
		expectErr string
	}{
		{
			name:      "Local scan error",
			localErr:  fmt.Errorf("directory walk failed"),
			expectErr: "scan local: directory walk failed",
		},
		{
			name:      "Remote scan error",
			remoteErr: fmt.Errorf("listing request failed"),
			expectErr: "scan google: listing request failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local := &fakeScanner{name: "local", source: library.SourceLocal, err: tt.localErr}
			remote := &fakeScanner{name: "google", source: library.SourceRemote, err: tt.remoteErr}

			_, _, err := LoadCollections(context.Background(), local, remote)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectErr)
		})
	}
}

// TestLoadCollections_BothSides tests that both scanners run and their results come back on the right sides.
func TestLoadCollections_BothSides(t *testing.T) {
	local := &fakeScanner{
		name:   "local",
		source: library.SourceLocal,
		albums: library.Collection{localAlbum("Vacation", 5)},
	}
	remote := &fakeScanner{
		name:   "google",
		source: library.SourceRemote,
		albums: library.Collection{remoteAlbum("Family", 10), remoteAlbum("Work", 3)},
	}

	localAlbums, remoteAlbums, err := LoadCollections(context.Background(), local, remote)
	assert.NoError(t, err)
	assert.Len(t, localAlbums, 1)
	assert.Len(t, remoteAlbums, 2)
	assert.Equal(t, 1, local.scans)
	assert.Equal(t, 1, remote.scans)
}

// TestSnapshot_Hit tests that a stored snapshot is reused on second call.
func TestSnapshot_Hit(t *testing.T) {
	local := &fakeScanner{name: "hit-local", source: library.SourceLocal}
	remote := &fakeScanner{name: "hit-remote", source: library.SourceRemote}
	defer InvalidateSnapshot(local, remote)

	// First call - should scan
	snap1, err := GetOrBuildSnapshot(context.Background(), local, remote, 5*time.Minute)
	assert.NoError(t, err)
	assert.NotNil(t, snap1)
	assert.Equal(t, 1, local.scans)

	// Second call - should use stored snapshot
	snap2, err := GetOrBuildSnapshot(context.Background(), local, remote, 5*time.Minute)
	assert.NoError(t, err)
	assert.NotNil(t, snap2)
	assert.Equal(t, 1, local.scans) // Still 1, not scanned again
	assert.Equal(t, 1, remote.scans)
}

// TestSnapshot_Expiration tests that an expired snapshot is rebuilt.
func TestSnapshot_Expiration(t *testing.T) {
	local := &fakeScanner{name: "exp-local", source: library.SourceLocal}
	remote := &fakeScanner{name: "exp-remote", source: library.SourceRemote}
	defer InvalidateSnapshot(local, remote)

	// First call
	_, err := GetOrBuildSnapshot(context.Background(), local, remote, 10*time.Millisecond)
	assert.NoError(t, err)
	assert.Equal(t, 1, local.scans)

	time.Sleep(20 * time.Millisecond)

	// Second call - should rescan
	_, err = GetOrBuildSnapshot(context.Background(), local, remote, 10*time.Millisecond)
	assert.NoError(t, err)
	assert.Equal(t, 2, local.scans) // Scanned again
}

// TestSnapshot_Invalidate tests that invalidation forces the next call to rescan.
func TestSnapshot_Invalidate(t *testing.T) {
	local := &fakeScanner{name: "inv-local", source: library.SourceLocal}
	remote := &fakeScanner{name: "inv-remote", source: library.SourceRemote}
	defer InvalidateSnapshot(local, remote)

	_, err := GetOrBuildSnapshot(context.Background(), local, remote, 5*time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, 1, local.scans)

	InvalidateSnapshot(local, remote)

	_, err = GetOrBuildSnapshot(context.Background(), local, remote, 5*time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, 2, local.scans)
}

// TestSnapshot_ScanErrorNotStored tests that a failed scan leaves nothing in the store.
func TestSnapshot_ScanErrorNotStored(t *testing.T) {
	calls := 0
	local := &fakeScanner{
		name:   "err-local",
		source: library.SourceLocal,
		scanFunc: func(ctx context.Context) (library.Collection, error) {
			calls++
			if calls == 1 {
				return nil, fmt.Errorf("%w: flaky listing", library.ErrTransient)
			}
			return library.Collection{}, nil
		},
	}
	remote := &fakeScanner{name: "err-remote", source: library.SourceRemote}
	defer InvalidateSnapshot(local, remote)

	_, err := GetOrBuildSnapshot(context.Background(), local, remote, 5*time.Minute)
	assert.Error(t, err)

	// Retry succeeds because the failure was never cached.
	snap, err := GetOrBuildSnapshot(context.Background(), local, remote, 5*time.Minute)
	assert.NoError(t, err)
	assert.NotNil(t, snap)
	assert.Equal(t, 2, calls)
}
