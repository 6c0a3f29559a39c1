package local

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"photo-manager/core/library"

	"go.uber.org/zap"
)

// Scanner reads a photo library from the filesystem. Each immediate
// subdirectory of the root is one album; loose files at the root level do
// not belong to any album and are ignored.
type Scanner struct {
	root   string
	logger *zap.Logger
}

// NewScanner creates a scanner rooted at the given directory.
func NewScanner(root string, logger *zap.Logger) *Scanner {
	return &Scanner{root: root, logger: logger}
}

// Name identifies the scanner in logs and cache keys.
func (s *Scanner) Name() string {
	return "local"
}

// Source returns the side this scanner feeds.
func (s *Scanner) Source() library.Source {
	return library.SourceLocal
}

// Scan enumerates the albums under the root. Media items are counted
// recursively, so albums organized into nested subfolders report their full
// size. A missing or unreadable root fails the scan; unreadable entries
// deeper in the tree are skipped so one bad file cannot hide a whole album.
func (s *Scanner) Scan(ctx context.Context) (library.Collection, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", library.ErrAccess, err)
	}

	// os.ReadDir sorts by name, which keeps scan output deterministic.
	albums := library.Collection{}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() {
			continue
		}

		count, err := s.countMedia(ctx, filepath.Join(s.root, entry.Name()))
		if err != nil {
			return nil, err
		}

		albums = append(albums, library.Album{
			Name:      entry.Name(),
			ItemCount: count,
			Source:    library.SourceLocal,
		})
	}

	return albums, nil
}

// countMedia walks an album directory and counts media files at any depth.
func (s *Scanner) countMedia(ctx context.Context, dir string) (int, error) {
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped rather than failing the scan.
			s.logger.Debug("Skipping unreadable entry", zap.String("path", path), zap.Error(err))
			return nil
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if d.IsDir() {
			return nil
		}
		if library.IsMediaFile(d.Name()) {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count media in %s: %w", dir, err)
	}
	return count, nil
}
