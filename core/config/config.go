package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"photo-manager/core/database"
	"photo-manager/core/logger"
	"photo-manager/core/server"
	"photo-manager/core/storage"
	"photo-manager/feature/compare"
	"photo-manager/feature/gphotos"
	"photo-manager/feature/history"
	"photo-manager/feature/local"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config aggregates the per-package configuration sections. Each section
// declares its own defaults through struct tags, so adding a setting never
// touches this package.
type Config struct {
	// Server configures the HTTP listener, API key and remote source.
	Server server.Config `mapstructure:"server"`
	// Storage configures the S3/MinIO client.
	Storage storage.Config `mapstructure:"storage"`
	// Log configures the zap logger.
	Log logger.Config `mapstructure:"log"`
	// Database configures the run history store.
	Database database.Config `mapstructure:"database"`
	// Local configures the filesystem scanner.
	Local local.Config `mapstructure:"local"`
	// Google configures the Google Photos scanner.
	Google gphotos.Config `mapstructure:"google"`
	// Compare configures the matching engine.
	Compare compare.Config `mapstructure:"compare"`
	// History configures run persistence.
	History history.Config `mapstructure:"history"`
}

// LoadConfig assembles the configuration in three layers: defaults from the
// struct tags, then a .env file when one exists, then real environment
// variables. Nested keys map onto underscored names, so server.port is set
// by SERVER_PORT.
func LoadConfig(path string) (*Config, error) {
	// A missing .env file is the normal case outside development.
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()
	registerDefaults(v, reflect.TypeOf(Config{}), "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// registerDefaults walks the config struct and registers every leaf field's
// `default` tag under its dotted key. Empty defaults are registered too:
// AutomaticEnv only consults keys viper already knows about.
func registerDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, field.Type, key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
