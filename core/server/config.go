package server

// Config carries the HTTP server settings.
type Config struct {
	// Port the listener binds to.
	Port string `mapstructure:"port" default:"8090"`
	// ApiKey protects the API; an empty key disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// Remote selects the service to compare against.
	Remote string `mapstructure:"remote" default:"google"`
}

// Remote backends the server can scan.
const (
	RemoteGoogle = "google"
	RemoteS3     = "s3"
)

// IsValidRemote reports whether Remote names a known scanner backend.
func (c Config) IsValidRemote() bool {
	return c.Remote == RemoteGoogle || c.Remote == RemoteS3
}
