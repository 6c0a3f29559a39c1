package mocks

import (
	"context"

	"photo-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
)

// Client is a testify mock of storage.Client for scanner tests.
type Client struct {
	mock.Mock
}

var _ storage.Client = (*Client)(nil)

func (m *Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	args := m.Called(ctx, bucketName)
	return args.Bool(0), args.Error(1)
}

// ListObjects returns the channel the expectation was configured with, in
// either direction, or a closed empty channel when none was set up.
func (m *Client) ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	args := m.Called(ctx, bucketName, opts)

	switch ch := args.Get(0).(type) {
	case <-chan minio.ObjectInfo:
		return ch
	case chan minio.ObjectInfo:
		return ch
	default:
		empty := make(chan minio.ObjectInfo)
		close(empty)
		return empty
	}
}
