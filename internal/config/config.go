// Package config loads the service configuration, falling back to embedded
// defaults written out on first run.
package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type DatasetConfig struct {
	Seed     int64  `yaml:"seed"`     // 0 = time-based
	Lookback string `yaml:"lookback"` // window the corpus is spread over
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Dataset DatasetConfig `yaml:"dataset"`
	Logging LoggingConfig `yaml:"logging"`
}

// Addr returns the listen address, defaulting to :8000.
func (c *Config) Addr() string {
	if c.Server.Addr == "" {
		return ":8000"
	}
	return c.Server.Addr
}

// LookbackDuration parses the dataset lookback, defaulting to 72h.
func (c *Config) LookbackDuration() time.Duration {
	d, err := time.ParseDuration(c.Dataset.Lookback)
	if err != nil || d <= 0 {
		return 72 * time.Hour
	}
	return d
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "biaslab", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	validLevels := map[string]bool{"": true, "debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", cfg.Logging.Level)
	}

	if cfg.Dataset.Lookback != "" {
		if d, err := time.ParseDuration(cfg.Dataset.Lookback); err != nil || d <= 0 {
			return fmt.Errorf("dataset.lookback %q is not a positive duration", cfg.Dataset.Lookback)
		}
	}

	for _, origin := range cfg.Server.CORSOrigins {
		if origin == "*" {
			continue
		}
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("cors origin %q is not a valid URL", origin)
		}
	}
	return nil
}
