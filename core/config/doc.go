// Package config loads the application configuration through viper.
//
// Settings come from three layers, each overriding the previous: defaults
// declared as struct tags on the section types, a .env file when present,
// and real environment variables. The sections are owned by the packages
// they configure (server, storage, log, database, local, google, compare,
// history); this package only assembles them.
//
// Keys map to environment variables by joining path segments with an
// underscore: compare.threshold is COMPARE_THRESHOLD, server.api_key is
// SERVER_API_KEY.
//
//	cfg, err := config.LoadConfig(".")
package config
