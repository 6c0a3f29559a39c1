// Package s3 scans a photo library mirrored into an S3 or MinIO bucket.
//
// The expected layout matches the local library: one folder per album under
// the configured prefix, with media files at any depth inside the album
// folder. The scanner lists the whole prefix once and groups keys by their
// first segment, so a scan costs one paginated listing regardless of album
// count.
package s3
