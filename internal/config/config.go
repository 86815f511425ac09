// Package config loads optional taskly settings from a config file and
// TASKLY_* environment variables. Everything has a working default, so
// running without any configuration behaves identically.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/steveyegge/taskly/internal/taskly"
)

// Config holds the resolved settings for one invocation.
type Config struct {
	// StateDir overrides the platform state directory when non-empty.
	StateDir string `mapstructure:"state_dir"`

	// Color controls styled list output: auto, always, or never.
	Color string `mapstructure:"color"`

	// LogLevel is the diagnostic log level (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// LogFile enables a rotating diagnostic log file when non-empty.
	LogFile string `mapstructure:"log_file"`

	// DashboardAddr is the dashboard listen address.
	DashboardAddr string `mapstructure:"dashboard_addr"`

	// CacheFile is the query cache filename inside the state directory.
	CacheFile string `mapstructure:"cache_file"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Color:         "auto",
		LogLevel:      "warn",
		DashboardAddr: "localhost:8080",
		CacheFile:     "cache.db",
	}
}

// Load reads config.yaml from the user config directory (if present)
// and applies TASKLY_* environment overrides on top of the defaults.
// A missing config file is not an error; an unreadable one is.
func Load() (Config, error) {
	v := viper.New()

	defs := Defaults()
	v.SetDefault("state_dir", defs.StateDir)
	v.SetDefault("color", defs.Color)
	v.SetDefault("log_level", defs.LogLevel)
	v.SetDefault("log_file", defs.LogFile)
	v.SetDefault("dashboard_addr", defs.DashboardAddr)
	v.SetDefault("cache_file", defs.CacheFile)

	v.SetEnvPrefix("TASKLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Unmarshal only sees keys that are bound, so bind each one.
	for _, key := range []string{
		"state_dir", "color", "log_level", "log_file", "dashboard_addr", "cache_file",
	} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	if dir, err := taskly.ConfigDir(); err == nil {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
