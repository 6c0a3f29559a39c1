package gphotos

// Config holds configuration for the Google Photos scanner.
type Config struct {
	// CredentialsFile is the OAuth client secrets JSON downloaded from the
	// Google Cloud console.
	CredentialsFile string `mapstructure:"credentials_file" default:"~/.photo-manager/client_secret.json"`
	// TokenFile caches the OAuth token between runs.
	TokenFile string `mapstructure:"token_file" default:"~/.photo-manager/credentials"`
	// PageSize is the number of albums requested per listing page (the API
	// caps it at 50).
	PageSize int `mapstructure:"page_size" default:"50"`
	// IncludeShared also lists albums shared with the account.
	IncludeShared bool `mapstructure:"include_shared" default:"true"`
	// MaxRetries bounds retries of transient API failures.
	MaxRetries int `mapstructure:"max_retries" default:"3"`
}
