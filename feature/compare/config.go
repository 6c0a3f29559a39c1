package compare

import "time"

// Config holds the configuration for the compare feature.
type Config struct {
	// Threshold is the minimum name similarity, between 0 and 1, for two
	// albums to be treated as the same album.
	Threshold float64 `mapstructure:"threshold" default:"0.8"`
	// CacheTTL bounds how long serve mode reuses a scan snapshot before
	// walking the sources again. Zero disables the cache.
	CacheTTL time.Duration `mapstructure:"cache_ttl" default:"5m"`
}
