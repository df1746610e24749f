// Package config handles configuration loading and defaults.
//
// Values are resolved in order: built-in defaults, then an optional TOML file,
// then environment variables. Later sources win.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultAddr            = ":8080"
	DefaultDBPath          = "./data/nestlist.db"
	DefaultSessionTTLHours = 24
)

// Config holds the full configuration for the server.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `toml:"addr"`

	// DBPath is the SQLite database file path.
	DBPath string `toml:"db_path"`

	// SecretKey signs session tokens. Required; there is no default because
	// a guessable key would let anyone forge sessions.
	SecretKey string `toml:"secret_key"`

	// SessionTTLHours is how long a login session stays valid.
	SessionTTLHours int `toml:"session_ttl_hours"`
}

// Load resolves configuration from defaults, the TOML file at path (skipped
// if path is empty or the file does not exist), and environment variables.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Addr:            DefaultAddr,
		DBPath:          DefaultDBPath,
		SessionTTLHours: DefaultSessionTTLHours,
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	applyEnv(cfg)

	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("secret_key is required (set NESTLIST_SECRET_KEY or secret_key in the config file)")
	}
	if cfg.SessionTTLHours <= 0 {
		return nil, fmt.Errorf("session_ttl_hours must be positive, got %d", cfg.SessionTTLHours)
	}

	return cfg, nil
}

// applyEnv overrides config fields from NESTLIST_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("NESTLIST_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("NESTLIST_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("NESTLIST_SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("NESTLIST_SESSION_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SessionTTLHours = n
		}
	}
}
