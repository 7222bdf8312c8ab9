package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// The deployment the original harness was written against; overridable via
// flag, config file, or environment.
const defaultBaseURL = "https://chic-attire-6.preview.emergentagent.com"

const baseURLEnvVar = "STOREFRONT_BASE_URL"

// fileConfig is the optional YAML config file shape.
type fileConfig struct {
	BaseURL        string        `yaml:"baseUrl"`
	RequestTimeout time.Duration `yaml:"requestTimeout"`
	UserName       string        `yaml:"userName"`
}

func loadConfigFile(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// resolveBaseURL picks the target deployment: explicit flag first, then the
// config file, then the environment (a .env file is honored if present),
// then the built-in default.
func resolveBaseURL(flagValue string, cfg fileConfig) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg.BaseURL != "" {
		return cfg.BaseURL
	}
	_ = godotenv.Load()
	if v := os.Getenv(baseURLEnvVar); v != "" {
		return v
	}
	return defaultBaseURL
}
