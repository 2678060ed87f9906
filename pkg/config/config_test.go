package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
base_url: https://llm.internal.example
api_key: ${USEAI_TEST_KEY}
default_model: o3-mini
models: [o3-mini, gpt-4o]
timeout: 30s
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "useai.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("USEAI_TEST_KEY", "sk-from-env")

	cfg, err := LoadConfig(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "https://llm.internal.example", cfg.BaseURL)
	assert.Equal(t, "sk-from-env", cfg.APIKey)
	assert.Equal(t, "o3-mini", cfg.DefaultModel)
	assert.Equal(t, []string{"o3-mini", "gpt-4o"}, cfg.Models)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout())
	assert.Equal(t, DefaultAPIKeyEnv, cfg.APIKeyEnv)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "api_key_env: MY_KEY\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, "MY_KEY", cfg.APIKeyEnv)
	assert.Equal(t, DefaultModelName, cfg.DefaultModel)
	assert.Equal(t, AvailableModels, cfg.Models)
	assert.Equal(t, 10*time.Minute, cfg.HTTPTimeout())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: load")
}

func TestLoadConfig_BadYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "models: [unterminated\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultModelName, cfg.DefaultModel)
	assert.Empty(t, cfg.APIKey)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad scheme", func(c *Config) { c.BaseURL = "ftp://example.com" }, "must be an http(s) URL"},
		{"no host", func(c *Config) { c.BaseURL = "https://" }, "must be an http(s) URL"},
		{"empty model", func(c *Config) { c.DefaultModel = "" }, "default_model is required"},
		{"bad timeout", func(c *Config) { c.Timeout = "soon" }, "invalid timeout"},
		{"zero timeout", func(c *Config) { c.Timeout = "0s" }, "timeout must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestHTTPTimeout_Fallback(t *testing.T) {
	cfg := Config{Timeout: "garbage"}
	assert.Equal(t, 10*time.Minute, cfg.HTTPTimeout())
}

func TestConfigCredential_PrefersLiteralKey(t *testing.T) {
	t.Setenv("USEAI_UNUSED", "from-env")

	cfg := Config{APIKey: "sk-literal", APIKeyEnv: "USEAI_UNUSED"}
	key, err := cfg.Credential()()
	require.NoError(t, err)
	assert.Equal(t, "sk-literal", key)
}

func TestConfigCredential_FallsBackToEnv(t *testing.T) {
	t.Setenv("USEAI_KEY_VAR", "sk-env")

	cfg := Config{APIKeyEnv: "USEAI_KEY_VAR"}
	key, err := cfg.Credential()()
	require.NoError(t, err)
	assert.Equal(t, "sk-env", key)
}
