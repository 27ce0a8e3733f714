// Package config loads server configuration from a YAML file using Viper,
// falling back to defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Addr is the listen address of the HTTP API.
	Addr string `mapstructure:"addr"`

	// DBPath is the SQLite database location. Empty means the default
	// per-user path.
	DBPath string `mapstructure:"db_path"`

	// SessionTTLHours is how long a login session stays valid.
	SessionTTLHours int `mapstructure:"session_ttl_hours"`

	// WorkMinutes and BreakMinutes are the default phase lengths handed to
	// new clients.
	WorkMinutes  int `mapstructure:"work_minutes"`
	BreakMinutes int `mapstructure:"break_minutes"`
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

// DefaultPath returns ~/.config/focusly/focusly.yaml.
func DefaultPath() string {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "focusly.yaml")
	}
	return filepath.Join(cfg, "focusly", "focusly.yaml")
}

func defaults() *Config {
	return &Config{
		Addr:            ":8370",
		SessionTTLHours: 24 * 30,
		WorkMinutes:     25,
		BreakMinutes:    5,
	}
}

// Load reads the config file at path. A missing file is not an error: the
// defaults are returned.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("addr", ":8370")
	v.SetDefault("session_ttl_hours", 24*30)
	v.SetDefault("work_minutes", 25)
	v.SetDefault("break_minutes", 5)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaults(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaults(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaults()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
