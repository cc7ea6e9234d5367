// Package config loads the atelier configuration file.
//
// Values are resolved in order: built-in defaults, the YAML file, then
// ATELIER_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment overrides
const (
	EnvDataDir  = "ATELIER_DATA_DIR"
	EnvLogLevel = "ATELIER_LOG_LEVEL"
	EnvTheme    = "ATELIER_THEME"
)

const (
	defaultDataDir  = "~/.atelier"
	defaultLogLevel = "info"
	dbFileName      = "atelier.db"
)

// Config represents the application configuration
type Config struct {
	DataDir  string      `yaml:"data_dir"`
	LogLevel string      `yaml:"log_level"`
	Auth     AuthConfig  `yaml:"auth"`
	Theme    ColorScheme `yaml:"theme"`
}

// AuthConfig holds the optional operator password
type AuthConfig struct {
	// PasswordHash is a bcrypt hash; empty accepts any non-empty password
	PasswordHash string `yaml:"password_hash"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	var cfg Config

	path, err := Path()
	if err == nil {
		data, readErr := os.ReadFile(path)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case !os.IsNotExist(readErr):
			return nil, fmt.Errorf("failed to read config %s: %w", path, readErr)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

// Path returns the path to the config file
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "atelier", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "atelier", "config.yaml"), nil
}

// DBPath returns the SQLite database location
func (c *Config) DBPath() string {
	return filepath.Join(expandHome(c.DataDir), dbFileName)
}

// LogDir returns the directory log files are written to
func (c *Config) LogDir() string {
	return filepath.Join(expandHome(c.DataDir), "logs")
}

// SlogLevel parses LogLevel, defaulting to info when unrecognized
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		// a different preset replaces the whole scheme
		if v != c.Theme.Preset {
			c.Theme = ColorScheme{Preset: v}
		}
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = defaultDataDir
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	c.Theme.ApplyDefaults()
}

// expandHome replaces a leading ~ with the user's home directory
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
