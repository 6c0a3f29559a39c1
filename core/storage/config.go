package storage

// Config describes the S3-compatible store holding the photo mirror. The
// defaults point at a local MinIO with its stock credentials.
type Config struct {
	// Endpoint is the host:port of the storage service. A scheme prefix is
	// tolerated and stripped.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey identifies the credential pair.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret half of the credential pair.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL enables TLS towards the endpoint.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket holding the photo library.
	Bucket string `mapstructure:"bucket" default:"photos"`
	// Prefix is the key prefix under which album folders live.
	Prefix string `mapstructure:"prefix" default:""`
	// Region of the bucket; empty works for MinIO and region-agnostic setups.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds connection setup and response waits.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
