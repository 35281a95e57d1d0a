package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Fatalf("expected default base url, got %q", cfg.API.BaseURL)
	}
	if cfg.API.HealthTimeout != 5*time.Second {
		t.Fatalf("expected 5s health timeout, got %s", cfg.API.HealthTimeout)
	}
	if !cfg.Verify.Enabled || cfg.Verify.DictatorID != 1 {
		t.Fatalf("unexpected verify defaults: %+v", cfg.Verify)
	}
	if cfg.Seed.Strict {
		t.Fatal("expected strict to be off by default")
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	body := []byte("api:\n  base_url: http://api.local:9000/api/\n  health_timeout: 2s\nseed:\n  strict: true\n")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DICTATORS_SEED_VERIFY_DICTATOR_ID", "7")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.BaseURL != "http://api.local:9000/api" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.API.BaseURL)
	}
	if cfg.API.HealthTimeout != 2*time.Second {
		t.Fatalf("expected 2s, got %s", cfg.API.HealthTimeout)
	}
	if !cfg.Seed.Strict {
		t.Fatal("expected strict from file")
	}
	if cfg.Verify.DictatorID != 7 {
		t.Fatalf("expected dictator id from env, got %d", cfg.Verify.DictatorID)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	base := Config{API: API{BaseURL: DefaultBaseURL, HealthTimeout: time.Second}}
	if err := base.Validate(); err != nil {
		t.Fatalf("expected valid config: %v", err)
	}

	cases := map[string]Config{
		"empty url":      {API: API{}},
		"bad scheme":     {API: API{BaseURL: "ftp://localhost/api"}},
		"no host":        {API: API{BaseURL: "http:///api"}},
		"neg timeout":    {API: API{BaseURL: DefaultBaseURL, RequestTimeout: -time.Second}},
		"neg synthetics": {API: API{BaseURL: DefaultBaseURL}, Seed: Seed{SyntheticCount: -1}},
	}
	for name, cfg := range cases {
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
