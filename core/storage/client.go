package storage

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client is the slice of the object store the scanner needs. The photo
// mirror is never written to, so the surface is read-only: probe the bucket,
// then stream its keys.
type Client interface {
	// BucketExists reports whether the bucket is reachable and present.
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	// ListObjects streams object metadata for a bucket listing.
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
}

// NewClient connects to the S3-compatible store described by the config.
// The connection itself is lazy; the first bucket probe surfaces endpoint
// or credential problems.
func NewClient(cfg Config) (Client, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client, err := minio.New(trimScheme(cfg.Endpoint), &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: newTransport(timeout),
	})
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}

	return client, nil
}

// trimScheme strips an http(s) scheme off the endpoint. minio wants a bare
// host:port, but endpoints tend to arrive with a scheme when copied from
// console UIs.
func trimScheme(endpoint string) string {
	for _, scheme := range []string{"https://", "http://"} {
		if rest, ok := strings.CutPrefix(endpoint, scheme); ok {
			return rest
		}
	}
	return endpoint
}

// newTransport bounds every phase of a request so a stalled endpoint cannot
// hang a scan: dialing, the TLS handshake, and the wait for the first
// response byte all share the configured timeout.
func newTransport(timeout time.Duration) *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
}
