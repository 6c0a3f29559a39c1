// Package storage connects to the S3-compatible object store holding a
// photo library mirror.
//
// The Client interface carries only the two calls the scanner makes, probing
// the bucket and streaming a listing, so tests can substitute the mock in
// core/storage/mocks. Reconciliation never mutates the library; there are no
// write operations to wrap.
//
// NewClient accepts endpoints with or without a scheme and works against AWS
// S3 as well as self-hosted MinIO:
//
//	client, err := storage.NewClient(cfg.Storage)
//	ok, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
