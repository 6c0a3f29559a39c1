package gphotos

import (
	"context"

	"photo-manager/core/library"
)

// Scanner adapts the API client to the comparison engine.
type Scanner struct {
	client *Client
}

// NewScanner wraps a configured API client.
func NewScanner(client *Client) *Scanner {
	return &Scanner{client: client}
}

// Name identifies the scanner in logs and cache keys.
func (s *Scanner) Name() string {
	return "google"
}

// Source returns the side this scanner feeds.
func (s *Scanner) Source() library.Source {
	return library.SourceRemote
}

// Scan lists every album, owned and shared, across all pages.
func (s *Scanner) Scan(ctx context.Context) (library.Collection, error) {
	return s.client.ListAlbums(ctx)
}
