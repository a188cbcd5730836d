package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables holding provider credentials
const (
	EnvGeminiKey      = "GEMINI_API_KEY"
	EnvOpenAIKey      = "OPENAI_API_KEY"
	EnvDashScopeKey   = "DASHSCOPE_API_KEY"
	EnvHuggingFaceKey = "HF_API_TOKEN"
)

var providerKeys = map[string]string{
	"gemini":      EnvGeminiKey,
	"openai":      EnvOpenAIKey,
	"qwen":        EnvDashScopeKey,
	"huggingface": EnvHuggingFaceKey,
}

// Load reads and validates a YAML config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault is Load, except that a missing file (or an empty path)
// yields the defaults
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadEnv loads variables from a .env file without overriding ones already
// set. A missing default ".env" is ignored; an explicitly named file must exist.
func LoadEnv(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// APIKey returns the credential for a provider from the environment
func APIKey(provider string) string {
	name, ok := providerKeys[strings.ToLower(provider)]
	if !ok {
		return ""
	}
	return os.Getenv(name)
}
