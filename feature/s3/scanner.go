package s3

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"photo-manager/core/library"
	"photo-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Scanner reads a photo library from an S3 bucket. Albums are the first key
// segment under the configured prefix, mirroring the one-directory-per-album
// layout of the local library:
//
//	photos/Vacation 2023/IMG_0001.jpg
//	photos/Family/raw/nested.heic
type Scanner struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewScanner creates a scanner for the given bucket and key prefix.
func NewScanner(client storage.Client, bucket, prefix string, logger *zap.Logger) *Scanner {
	return &Scanner{client: client, bucket: bucket, prefix: prefix, logger: logger}
}

// Name identifies the scanner in logs and cache keys.
func (s *Scanner) Name() string {
	return "s3"
}

// Source returns the side this scanner feeds.
func (s *Scanner) Source() library.Source {
	return library.SourceRemote
}

// Scan lists every object under the prefix and groups them into albums.
// Media items are counted at any depth below the album segment; any object
// under an album registers the album, so folder markers surface empty
// albums with a zero count.
func (s *Scanner) Scan(ctx context.Context) (library.Collection, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("%w: check bucket %s: %v", library.ErrTransient, s.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: bucket %s does not exist", library.ErrAccess, s.bucket)
	}

	prefix := s.prefix
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}

	counts := make(map[string]int)
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("%w: list objects: %v", library.ErrTransient, obj.Err)
		}

		key := strings.TrimPrefix(obj.Key, prefix)
		album, rest, found := strings.Cut(key, "/")
		if !found || album == "" {
			// Loose objects directly under the prefix belong to no album.
			continue
		}

		if _, ok := counts[album]; !ok {
			counts[album] = 0
		}
		if rest != "" && library.IsMediaFile(path.Base(rest)) {
			counts[album]++
		}
	}

	// Map order is random; sort so scans are deterministic.
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	albums := make(library.Collection, 0, len(names))
	for _, name := range names {
		albums = append(albums, library.Album{
			Name:      name,
			ItemCount: counts[name],
			Source:    library.SourceRemote,
		})
	}

	return albums, nil
}
