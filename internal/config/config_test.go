package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigYAMLRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.API.BaseURL = "https://example.com/app"
	cfg.Browser.PageSize = 50

	if err := WriteConfig(tmpDir, cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	loaded, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}

	if loaded.API.BaseURL != "https://example.com/app" {
		t.Errorf("BaseURL: got %q, want %q", loaded.API.BaseURL, "https://example.com/app")
	}
	if loaded.Browser.PageSize != 50 {
		t.Errorf("PageSize: got %d, want 50", loaded.Browser.PageSize)
	}
}

func TestEnvOverridesConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	if err := WriteConfig(tmpDir, DefaultConfig()); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	t.Setenv("VOTECASTER_API_URL", "https://staging.example.com")
	t.Setenv("VOTECASTER_AUTH_TOKEN", "tok-from-env")

	cfg, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}
	if cfg.API.BaseURL != "https://staging.example.com" {
		t.Errorf("BaseURL: got %q, want the env override", cfg.API.BaseURL)
	}
	if cfg.API.AuthToken != "tok-from-env" {
		t.Errorf("AuthToken: got %q, want the env override", cfg.API.AuthToken)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.API.BaseURL == "" {
		t.Error("default BaseURL should not be empty")
	}
	if cfg.Browser.PageSize != 20 {
		t.Errorf("default PageSize: got %d, want 20", cfg.Browser.PageSize)
	}
}

func TestReadConfigToleratesUnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	oldConfig := `version: 1
api:
  base_url: https://farcaster.vote/app
browser:
  page_size: 20
legacy_field: true
`
	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte(oldConfig), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}
	if cfg.API.BaseURL != "https://farcaster.vote/app" {
		t.Errorf("BaseURL: got %q", cfg.API.BaseURL)
	}
}
