// ABOUTME: User configuration loaded from a YAML file, with sane defaults.
// ABOUTME: A missing file is not an error; a malformed one is.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"fuzzyfind/internal/log"
	"fuzzyfind/pkg/input"
)

// Config holds the tunables a user can set in the config file. Flags
// override anything loaded here.
type Config struct {
	// Lines is the match window height in rows.
	Lines int `yaml:"lines"`

	// EscTimeoutMs bounds how long a lone ESC byte is held before it is
	// treated as the Escape key, in milliseconds.
	EscTimeoutMs int `yaml:"esc_timeout_ms"`

	// Theme names a built-in theme or points at a theme JSON file.
	Theme string `yaml:"theme"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Lines:        8,
		EscTimeoutMs: int(input.DefaultEscTimeout / time.Millisecond),
		Theme:        "default",
	}
}

// DefaultPath returns the conventional config file location, honoring
// XDG_CONFIG_HOME. Empty when no home directory can be determined.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "fuzzyfind", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "fuzzyfind", "config.yaml")
}

// Load reads the config file at path. A missing file yields the defaults;
// unset fields inherit their default values. Invalid values are rejected
// rather than silently clamped.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("no config file at %s, using defaults", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}

	log.Debug("loaded config from %s", path)
	return cfg, nil
}

// EscTimeout returns the escape disambiguation window as a duration.
func (c Config) EscTimeout() time.Duration {
	return time.Duration(c.EscTimeoutMs) * time.Millisecond
}

func (c Config) validate() error {
	if c.Lines < 1 {
		return fmt.Errorf("lines must be at least 1, got %d", c.Lines)
	}
	if c.EscTimeoutMs < 0 {
		return fmt.Errorf("esc_timeout_ms must not be negative, got %d", c.EscTimeoutMs)
	}
	return nil
}
