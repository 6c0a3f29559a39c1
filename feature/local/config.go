package local

// Config holds configuration for the local library scanner.
type Config struct {
	// Root is the directory whose immediate subdirectories are treated as
	// albums. The compare and scan commands can override it per run.
	Root string `mapstructure:"root" default:"~/Pictures"`
}
