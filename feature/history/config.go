package history

// Config holds the configuration for the history feature.
type Config struct {
	// Enabled controls whether comparison runs are persisted and served
	// over HTTP. Disabling it lets the tool run without any database.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Limit is the default number of runs returned by listings.
	Limit int `mapstructure:"limit" default:"20"`
}
