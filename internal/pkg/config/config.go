// Package config loads settings from freshmart.toml and FRESHMART_* variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Store drivers.
const (
	DriverSQLite  = "sqlite"
	DriverSpanner = "spanner"
)

// Config holds all application configuration
type Config struct {
	Store   StoreConfig
	Log     LogConfig
	Receipt ReceiptConfig
}

// StoreConfig selects and locates the catalog backend.
type StoreConfig struct {
	Driver          string // sqlite or spanner
	Path            string // SQLite file
	SpannerDatabase string // projects/<p>/instances/<i>/databases/<d>
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
	Output string
}

// ReceiptConfig controls receipt archiving. An empty Dir disables it.
type ReceiptConfig struct {
	Dir string
}

// Load reads configuration. Priority, highest first:
//  1. FRESHMART_* environment variables (FRESHMART_STORE_PATH, ...)
//  2. the config file: configFile if set, else freshmart.toml in . or ~/.config/freshmart
//  3. built-in defaults
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("freshmart")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/freshmart")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("FRESHMART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Store: StoreConfig{
			Driver:          strings.ToLower(v.GetString("store.driver")),
			Path:            v.GetString("store.path"),
			SpannerDatabase: v.GetString("store.spanner_database"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Receipt: ReceiptConfig{
			Dir: v.GetString("receipt.dir"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.path", "inventory.db")
	v.SetDefault("store.spanner_database", "projects/test-project/instances/dev-instance/databases/freshmart")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("receipt.dir", "")
}

// Validate checks that the selected backend is fully specified.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverSQLite:
		if c.Store.Path == "" {
			return errors.New("store.path is required for the sqlite driver")
		}
	case DriverSpanner:
		if c.Store.SpannerDatabase == "" {
			return errors.New("store.spanner_database is required for the spanner driver")
		}
	default:
		return fmt.Errorf("unknown store.driver %q (want %s or %s)", c.Store.Driver, DriverSQLite, DriverSpanner)
	}
	return nil
}
