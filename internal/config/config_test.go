package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.Addr() != ":8000" {
		t.Errorf("addr = %q, want :8000", cfg.Addr())
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("level = %q, want info", cfg.Logging.Level)
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		t.Error("expected default CORS origins")
	}
}

func TestLookbackDuration(t *testing.T) {
	cfg := &Config{Dataset: DatasetConfig{Lookback: "24h"}}
	if d := cfg.LookbackDuration(); d.Hours() != 24 {
		t.Errorf("lookback = %v, want 24h", d)
	}

	cfg.Dataset.Lookback = "garbage"
	if d := cfg.LookbackDuration(); d.Hours() != 72 {
		t.Errorf("invalid lookback should fall back to 72h, got %v", d)
	}

	cfg.Dataset.Lookback = ""
	if d := cfg.LookbackDuration(); d.Hours() != 72 {
		t.Errorf("empty lookback should fall back to 72h, got %v", d)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
server:
  addr: ":9090"
dataset:
  seed: 7
  lookback: "48h"
logging:
  level: "debug"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr() != ":9090" {
		t.Errorf("addr = %q", cfg.Addr())
	}
	if cfg.Dataset.Seed != 7 {
		t.Errorf("seed = %d", cfg.Dataset.Seed)
	}
	if cfg.LookbackDuration().Hours() != 48 {
		t.Errorf("lookback = %v", cfg.LookbackDuration())
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "nope", "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr() != ":8000" {
		t.Errorf("addr = %q, want default", cfg.Addr())
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"bad level", Config{Logging: LoggingConfig{Level: "verbose"}}},
		{"bad lookback", Config{Dataset: DatasetConfig{Lookback: "-5h"}}},
		{"bad origin", Config{Server: ServerConfig{CORSOrigins: []string{"not a url"}}}},
	}
	for _, tt := range tests {
		if err := validate(&tt.cfg); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestValidateAllowsWildcardOrigin(t *testing.T) {
	cfg := Config{Server: ServerConfig{CORSOrigins: []string{"*"}}}
	if err := validate(&cfg); err != nil {
		t.Errorf("wildcard origin should validate: %v", err)
	}
}
