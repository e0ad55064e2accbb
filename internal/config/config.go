// Package config loads the clipdrop preferences and validates the storage
// configuration. Preferences are re-read fresh on every command invocation;
// nothing here is cached across runs.
package config

import (
	"time"
)

// Config holds one invocation's view of the preferences source.
//
// MaxUploadSizeMB and HistoryLimitTag stay raw strings: parsing happens per
// run in the orchestrator so a bad value fails loudly there instead of being
// papered over at load time. Categories keeps the raw per-category values
// (bool, string or anything older schemas stored).
type Config struct {
	Storage         StorageConfig
	MaxUploadSizeMB string
	HistoryLimitTag string
	Categories      map[string]any
	RequestTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.RequestTimeout = 30 * time.Second
	c.Categories = map[string]any{}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file if present), the JSON preferences
// file and command-line flags. Later sources take precedence over earlier
// ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
