// Package config loads cubecoord CLI settings from defaults, an optional
// config file, and CUBECOORD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds CLI settings.
type Config struct {
	LogLevel string      `mapstructure:"log_level"`
	Workers  int         `mapstructure:"workers"`
	Cache    CacheConfig `mapstructure:"cache"`
}

// CacheConfig selects where move tables are cached.
type CacheConfig struct {
	// Backend is "file" or "sqlite".
	Backend string `mapstructure:"backend"`
	Dir     string `mapstructure:"dir"`
	DB      string `mapstructure:"db"`
}

// Backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("workers", 0)
	v.SetDefault("cache.backend", BackendFile)
	v.SetDefault("cache.dir", "./tables")
	v.SetDefault("cache.db", "./tables/tables.db")
}

// Load reads configuration into a Config. If cfgFile is empty, a file named
// cubecoord.{toml,yaml,json} is looked up in the working directory and is
// optional.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix("CUBECOORD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("cubecoord")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks option values.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("unknown cache backend %q (want %s or %s)", c.Cache.Backend, BackendFile, BackendSQLite)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}
