// Package config handles reading and writing ~/.votecaster/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for ~/.votecaster/config.yaml.
type Config struct {
	Version int           `yaml:"version"`
	API     APIConfig     `yaml:"api"`
	Browser BrowserConfig `yaml:"browser"`
}

// APIConfig points the client at the Votecaster backend.
type APIConfig struct {
	BaseURL   string `yaml:"base_url"`
	AuthToken string `yaml:"auth_token,omitempty"`
}

// BrowserConfig controls the poll and community browsing views.
type BrowserConfig struct {
	PageSize int64 `yaml:"page_size"`
}

const (
	configDir  = ".votecaster"
	configFile = "config.yaml"

	// Environment overrides, also read from a .env file when present.
	envBaseURL   = "VOTECASTER_API_URL"
	envAuthToken = "VOTECASTER_AUTH_TOKEN"
)

// Dir returns the votecaster data directory under the user's home,
// creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	dir := filepath.Join(home, configDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}
	return dir, nil
}

// ReadConfig reads config.yaml from the given directory and applies
// environment overrides on top. A .env file in the working directory is
// loaded first so tokens can be kept out of the config file.
func ReadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	applyEnv(&cfg)
	return &cfg, nil
}

// WriteConfig writes cfg to config.yaml in the given directory.
func WriteConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dir, configFile)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with sensible defaults, with
// environment overrides already applied.
func DefaultConfig() *Config {
	cfg := &Config{
		Version: 1,
		API: APIConfig{
			BaseURL: "https://farcaster.vote/app",
		},
		Browser: BrowserConfig{
			PageSize: 20,
		},
	}
	applyEnv(cfg)
	return cfg
}

// applyEnv overlays environment variables onto cfg. Missing .env files are
// not an error.
func applyEnv(cfg *Config) {
	_ = godotenv.Load()
	if v := os.Getenv(envBaseURL); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv(envAuthToken); v != "" {
		cfg.API.AuthToken = v
	}
}
