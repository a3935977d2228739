package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"API_KEY", "GEMINI_API_KEY", "ROADMAP_MODEL", "ROADMAP_LOG_FILE", "ROADMAP_CONFIG"} {
		t.Setenv(k, "")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != DefaultModel || cfg.Timeout != DefaultTimeout {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Path != "" {
		t.Fatalf("Path = %q, want empty for missing file", cfg.Path)
	}
	if !errors.Is(cfg.Validate(), ErrMissingAPIKey) {
		t.Fatalf("Validate() = %v, want ErrMissingAPIKey", cfg.Validate())
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "config.yaml")
	body := "model: gemini-2.5-pro\ntimeout: 45s\ntheme: neon\nlog_mode: prod\n"
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != "gemini-2.5-pro" || cfg.Timeout != 45*time.Second || cfg.Theme != "neon" || cfg.LogMode != "prod" {
		t.Fatalf("file values not applied: %+v", cfg)
	}

	t.Setenv("ROADMAP_MODEL", "gemini-env")
	t.Setenv("GEMINI_API_KEY", "fallback-key")
	cfg, err = Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != "gemini-env" {
		t.Errorf("Model = %q, env must win", cfg.Model)
	}
	if cfg.APIKey != "fallback-key" || cfg.KeySource != "GEMINI_API_KEY" {
		t.Errorf("key = %q from %q", cfg.APIKey, cfg.KeySource)
	}

	t.Setenv("API_KEY", "primary-key")
	cfg, _ = Load(p)
	if cfg.APIKey != "primary-key" || cfg.KeySource != "API_KEY" {
		t.Errorf("API_KEY must take precedence, got %q from %q", cfg.APIKey, cfg.KeySource)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte("timeout: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(p); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDefaultPathHonorsEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ROADMAP_CONFIG", "/tmp/custom.yaml")
	p, err := DefaultPath()
	if err != nil || p != "/tmp/custom.yaml" {
		t.Fatalf("DefaultPath() = %q, %v", p, err)
	}
}

func TestMaskedKey(t *testing.T) {
	if got := (Config{}).MaskedKey(); got != "(not set)" {
		t.Errorf("empty: %q", got)
	}
	if got := (Config{APIKey: "abcdefgh1234"}).MaskedKey(); got != "********1234" {
		t.Errorf("masked: %q", got)
	}
}
