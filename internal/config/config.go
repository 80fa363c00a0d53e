// Package config loads themesync settings from file, environment and
// defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/navitone/themesync/internal/omarchy"
)

// Config holds the tool's settings.
type Config struct {
	// Destination is the config file whose [theme] section is rewritten.
	Destination string `mapstructure:"destination"`

	// OmarchyDir is the Omarchy config root holding the current theme.
	OmarchyDir string `mapstructure:"omarchy_dir"`

	// LogLevel is a zerolog level name.
	LogLevel string `mapstructure:"log_level"`
}

// Load reads <config dir>/themesync/config.yaml if present and applies
// THEMESYNC_* environment overrides. A missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("destination", DefaultDestination())
	v.SetDefault("omarchy_dir", omarchy.DefaultRoot())
	v.SetDefault("log_level", "info")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir := configDir(); dir != "" {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix("THEMESYNC")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// DefaultDestination returns Navitone's config path, honoring
// XDG_CONFIG_HOME.
func DefaultDestination() string {
	return filepath.Join(configBase(), "navitone-cli", "config.toml")
}

func configDir() string {
	return filepath.Join(configBase(), "themesync")
}

func configBase() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return base
}
