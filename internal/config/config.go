// Package config resolves practicelog settings from defaults, an optional
// YAML file and PRACTICELOG_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	appDir        = ".practicelog"
	dbFile        = "practicelog.db"
	configFile    = "config.yaml"
	defaultTickMs = 250
	minTickMs     = 10
	envDB         = "PRACTICELOG_DB"
	envConfig     = "PRACTICELOG_CONFIG"
	envTickMs     = "PRACTICELOG_TICK_MS"
	envBell       = "PRACTICELOG_BELL"
	envLogCalls   = "PRACTICELOG_LOG_CALLS"
	envQuotes     = "PRACTICELOG_QUOTES"
)

// Config holds runtime settings.
type Config struct {
	DBPath       string
	ConfigPath   string
	TickInterval time.Duration
	Bell         bool
	Quotes       bool
	LogCalls     bool
	Presets      []time.Duration
}

// File mirrors config.yaml. Unset keys keep their defaults.
type File struct {
	DBPath         string `yaml:"db_path"`
	TickMs         *int   `yaml:"tick_ms"`
	Bell           *bool  `yaml:"bell"`
	Quotes         *bool  `yaml:"quotes"`
	LogCalls       *bool  `yaml:"log_calls"`
	PresetsMinutes []int  `yaml:"presets_minutes"`
}

// DefaultConfig returns settings rooted at home.
func DefaultConfig(home string) Config {
	return Config{
		DBPath:       filepath.Join(home, appDir, dbFile),
		ConfigPath:   filepath.Join(home, appDir, configFile),
		TickInterval: defaultTickMs * time.Millisecond,
		Bell:         true,
		Quotes:       true,
		LogCalls:     false,
		Presets:      []time.Duration{2 * time.Minute, 5 * time.Minute, 10 * time.Minute},
	}
}

// LoadConfig builds the effective configuration. A missing file at the
// default location is fine; a missing file named by PRACTICELOG_CONFIG is
// an error. Malformed environment values are ignored.
func LoadConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	cfg := DefaultConfig(home)

	explicit := false
	if v := os.Getenv(envConfig); v != "" {
		cfg.ConfigPath = v
		explicit = true
	}
	if err := cfg.applyFile(cfg.ConfigPath); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			err = nil
		}
		if err != nil {
			return Config{}, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	if f.DBPath != "" {
		c.DBPath = expandHome(f.DBPath)
	}
	if f.TickMs != nil {
		if *f.TickMs < minTickMs {
			return fmt.Errorf("parsing config %s: tick_ms must be at least %d", path, minTickMs)
		}
		c.TickInterval = time.Duration(*f.TickMs) * time.Millisecond
	}
	if f.Bell != nil {
		c.Bell = *f.Bell
	}
	if f.Quotes != nil {
		c.Quotes = *f.Quotes
	}
	if f.LogCalls != nil {
		c.LogCalls = *f.LogCalls
	}
	if len(f.PresetsMinutes) > 0 {
		presets := make([]time.Duration, 0, len(f.PresetsMinutes))
		for _, m := range f.PresetsMinutes {
			if m <= 0 {
				return fmt.Errorf("parsing config %s: presets_minutes must be positive, got %d", path, m)
			}
			presets = append(presets, time.Duration(m)*time.Minute)
		}
		c.Presets = presets
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(envDB); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(envTickMs); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= minTickMs {
			c.TickInterval = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv(envBell); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Bell = b
		}
	}
	if v := os.Getenv(envQuotes); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Quotes = b
		}
	}
	if v := os.Getenv(envLogCalls); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.LogCalls = b
		}
	}
}

func expandHome(p string) string {
	if len(p) < 2 || p[:2] != "~/" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}
