// Package config resolves use-ai settings: the API credential, the default
// model, and an optional YAML file overriding both.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultModelName is the model used when a caller does not name one.
	DefaultModelName = "gpt-4o-mini"
	// DefaultBaseURL is the OpenAI API root (no trailing slash).
	DefaultBaseURL = "https://api.openai.com"
	// DefaultAPIKeyEnv is the environment variable holding the API key.
	DefaultAPIKeyEnv = "OPENAI_API_KEY"
	// DefaultTimeout bounds a single HTTP exchange with the API.
	DefaultTimeout = "10m"
)

// AvailableModels is an informational catalog of well-known model names.
// Nothing validates requests against it; the remote service is the authority.
var AvailableModels = []string{
	"gpt-4o-mini",
	"gpt-4o",
	"gpt-4.5-preview",
	"o3-mini",
}

// Config holds client settings. Zero fields are filled from the defaults
// above by LoadConfig and Default.
type Config struct {
	BaseURL      string   `yaml:"base_url"`
	APIKey       string   `yaml:"api_key"`     //nolint:gosec // usually an ${ENV} reference, not a literal secret
	APIKeyEnv    string   `yaml:"api_key_env"` // Variable read when APIKey is empty.
	DefaultModel string   `yaml:"default_model"`
	Models       []string `yaml:"models"` // Informational only.
	Timeout      string   `yaml:"timeout"`
}

// Default returns a Config populated entirely with defaults.
func Default() Config {
	return Config{}.withDefaults()
}

// LoadConfig reads a YAML file and returns a Config.
// Environment variables referenced as ${VAR} or $VAR are expanded before
// parsing so the key itself can live in the environment or a .env file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration
	if err != nil {
		return Config{}, fmt.Errorf("config: load: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	return cfg.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.APIKeyEnv == "" {
		c.APIKeyEnv = DefaultAPIKeyEnv
	}
	if c.DefaultModel == "" {
		c.DefaultModel = DefaultModelName
	}
	if len(c.Models) == 0 {
		c.Models = append([]string(nil), AvailableModels...)
	}
	if c.Timeout == "" {
		c.Timeout = DefaultTimeout
	}

	return c
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("config: base_url %q: %w", c.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config: base_url %q: must be an http(s) URL", c.BaseURL)
	}

	if c.DefaultModel == "" {
		return fmt.Errorf("config: default_model is required")
	}

	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return fmt.Errorf("config: invalid timeout %q: %w", c.Timeout, err)
	}
	if d <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %q", c.Timeout)
	}

	return nil
}

// HTTPTimeout returns the parsed timeout, falling back to DefaultTimeout when
// the field is empty or malformed.
func (c Config) HTTPTimeout() time.Duration {
	if d, err := time.ParseDuration(c.Timeout); err == nil && d > 0 {
		return d
	}

	d, _ := time.ParseDuration(DefaultTimeout)
	return d
}

// Credential returns the provider for this configuration's API key: the
// literal api_key when set, otherwise the api_key_env variable.
func (c Config) Credential() CredentialProvider {
	if c.APIKey != "" {
		return Static(c.APIKey)
	}

	name := c.APIKeyEnv
	if name == "" {
		name = DefaultAPIKeyEnv
	}

	return Env(name)
}
