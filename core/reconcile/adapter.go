package reconcile

import (
	"context"
	"fmt"
	"sync"

	"photo-manager/core/library"
)

// Scanner enumerates one side of a comparison into a fully materialized
// collection. Implementations own their retry and credential handling; by
// the time Scan returns, the listing is complete and valid at the record
// level. The engine never sees a partial collection.
type Scanner interface {
	// Name identifies the scanner for logs and cache keys (e.g. "local",
	// "google", "s3").
	Name() string

	// Source returns the side this scanner feeds.
	Source() library.Source

	// Scan enumerates every album. It blocks until the listing completes
	// and must honor ctx cancellation.
	Scan(ctx context.Context) (library.Collection, error)
}

// LoadCollections scans both sides concurrently and returns the materialized
// collections. Either failure aborts the run so a comparison never runs on a
// partially scanned side.
func LoadCollections(ctx context.Context, local, remote Scanner) (library.Collection, library.Collection, error) {
	var (
		localAlbums  library.Collection
		remoteAlbums library.Collection
		localErr     error
		remoteErr    error
		wg           sync.WaitGroup
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		localAlbums, localErr = local.Scan(ctx)
	}()

	go func() {
		defer wg.Done()
		remoteAlbums, remoteErr = remote.Scan(ctx)
	}()

	wg.Wait()

	if localErr != nil {
		return nil, nil, fmt.Errorf("scan %s: %w", local.Name(), localErr)
	}
	if remoteErr != nil {
		return nil, nil, fmt.Errorf("scan %s: %w", remote.Name(), remoteErr)
	}

	return localAlbums, remoteAlbums, nil
}
