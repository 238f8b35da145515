// Package config holds client configuration: where the backend lives, how
// long requests may take, and cosmetic preferences for the TUI.
//
// Values resolve in order: defaults, then the optional config file in the
// state directory, then LLS_-prefixed environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds user preferences and connection settings.
type Config struct {
	APIBaseURL   string        `mapstructure:"api_base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	Theme        string        `mapstructure:"theme"` // "light" or "dark"
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// StateDir returns the directory where the client keeps its session file,
// config and logs. Prefers a project-local .lls directory if present,
// falling back to ~/.lls.
func StateDir() (string, error) {
	if cwd, err := os.Getwd(); err == nil {
		localDir := filepath.Join(cwd, ".lls")
		if stat, err := os.Stat(localDir); err == nil && stat.IsDir() {
			return localDir, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".lls"), nil
}

// Load reads configuration from the state dir and environment.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("api_base_url", "http://localhost:5001/api")
	v.SetDefault("timeout", 15*time.Second)
	v.SetDefault("theme", "light")
	v.SetDefault("poll_interval", 30*time.Second)

	v.SetEnvPrefix("LLS")
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := StateDir(); err == nil {
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
