package reconcile

import (
	"context"
	"sync"
	"time"

	"photo-manager/core/library"

	"golang.org/x/sync/singleflight"
)

// Snapshot holds the materialized collections from one scan pass so serve
// mode can answer repeated requests without re-walking the sources.
type Snapshot struct {
	// Local is the collection scanned from the filesystem side.
	Local library.Collection

	// Remote is the collection scanned from the service side.
	Remote library.Collection

	// Built is the timestamp when this snapshot was taken.
	Built time.Time

	// TTL is the time-to-live for this snapshot.
	TTL time.Duration
}

// IsExpired returns true if this snapshot has outlived its TTL.
func (s *Snapshot) IsExpired() bool {
	if s.TTL == 0 {
		return true // caching disabled
	}
	return time.Since(s.Built) > s.TTL
}

// snapshotStore holds scan snapshots keyed by scanner pair.
type snapshotStore struct {
	mu        sync.RWMutex
	snapshots map[string]*Snapshot
	sf        singleflight.Group
}

// globalSnapshotStore is the singleton store shared by all comparisons.
var globalSnapshotStore = &snapshotStore{
	snapshots: make(map[string]*Snapshot),
}

// snapshotKey derives the cache key for a scanner pair.
func snapshotKey(local, remote Scanner) string {
	return local.Name() + "|" + remote.Name()
}

// BuildSnapshot scans both sides and returns a fresh snapshot. It does NOT
// store the snapshot; use GetOrBuildSnapshot for that.
func BuildSnapshot(ctx context.Context, local, remote Scanner, ttl time.Duration) (*Snapshot, error) {
	localAlbums, remoteAlbums, err := LoadCollections(ctx, local, remote)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Local:  localAlbums,
		Remote: remoteAlbums,
		Built:  time.Now(),
		TTL:    ttl,
	}, nil
}

// GetOrBuildSnapshot returns the stored snapshot for the scanner pair, or
// scans and stores a new one if none exists or the stored one has expired.
// Singleflight collapses concurrent rebuilds into a single scan pass.
func GetOrBuildSnapshot(ctx context.Context, local, remote Scanner, ttl time.Duration) (*Snapshot, error) {
	key := snapshotKey(local, remote)

	// Fast path: fresh snapshot already stored.
	globalSnapshotStore.mu.RLock()
	snap, exists := globalSnapshotStore.snapshots[key]
	globalSnapshotStore.mu.RUnlock()

	if exists && !snap.IsExpired() {
		return snap, nil
	}

	result, err, _ := globalSnapshotStore.sf.Do(key, func() (interface{}, error) {
		// Double-check after winning the singleflight slot.
		globalSnapshotStore.mu.RLock()
		snap, exists := globalSnapshotStore.snapshots[key]
		globalSnapshotStore.mu.RUnlock()

		if exists && !snap.IsExpired() {
			return snap, nil
		}

		fresh, err := BuildSnapshot(ctx, local, remote, ttl)
		if err != nil {
			return nil, err
		}

		globalSnapshotStore.mu.Lock()
		globalSnapshotStore.snapshots[key] = fresh
		globalSnapshotStore.mu.Unlock()

		return fresh, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*Snapshot), nil
}

// InvalidateSnapshot drops the stored snapshot for the scanner pair, forcing
// the next request to rescan.
func InvalidateSnapshot(local, remote Scanner) {
	key := snapshotKey(local, remote)
	globalSnapshotStore.mu.Lock()
	delete(globalSnapshotStore.snapshots, key)
	globalSnapshotStore.mu.Unlock()
}
