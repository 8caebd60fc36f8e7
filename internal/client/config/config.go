package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the ScriptO terminal client.
//
// Fields:
//   - ServerURL: base URL of the backend API, including the version prefix.
//   - RequestTimeout: upper bound for one HTTP exchange; 0 means no bound
//     beyond the caller's context.
//   - DatabasePath: SQLite file holding the session token; ":memory:" keeps
//     nothing across restarts.
//   - OnlineCheckInterval: how often the client probes backend reachability;
//     0 disables the probe.
//   - Verbose: log every request at debug level.
type Config struct {
	ServerURL           string
	RequestTimeout      time.Duration
	DatabasePath        string
	OnlineCheckInterval time.Duration
	Verbose             bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8000/api/v1"
	c.RequestTimeout = 30 * time.Second
	c.DatabasePath = DefaultDatabasePath()
	c.OnlineCheckInterval = 10 * time.Second
	c.Verbose = false
}

// DefaultDatabasePath is scripto.db in the user's config directory, or in the
// working directory when that cannot be determined.
func DefaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "scripto.db"
	}
	return filepath.Join(dir, "scripto", "scripto.db")
}

// Load constructs a Config, applies defaults, then overlays values from a
// config file (if one is named with -c/-config) and command-line flags.
// Later sources take precedence over earlier ones. args excludes the
// program name.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("server url %q: must be an absolute http or https URL", c.ServerURL)
	}
	if c.RequestTimeout < 0 {
		return errors.New("request timeout must not be negative")
	}
	if c.OnlineCheckInterval < 0 {
		return errors.New("online check interval must not be negative")
	}
	if c.DatabasePath == "" {
		return errors.New("database path must not be empty")
	}
	return nil
}
