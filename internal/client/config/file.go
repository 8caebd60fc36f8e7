package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/scripto/internal/flagx"
	"github.com/dmitrijs2005/scripto/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for config file unmarshalling. It
// relies on timex.Duration so intervals can be written either as strings
// like "30s" or as integer nanoseconds. Absent keys leave the current value
// alone.
type FileConfig struct {
	ServerURL           *string         `json:"server_url" yaml:"server_url"`
	RequestTimeout      *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	DatabasePath        *string         `json:"database_path" yaml:"database_path"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`
	Verbose             *bool           `json:"verbose" yaml:"verbose"`
}

// parseFile overlays cfg with the file named by -c or -config. The format
// follows the extension: .yaml and .yml are YAML, anything else is JSON.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.ServerURL != nil {
		cfg.ServerURL = *fc.ServerURL
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.DatabasePath != nil {
		cfg.DatabasePath = *fc.DatabasePath
	}
	if fc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
}
