package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable the loader reads so ambient settings on the
// machine running the tests cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		ConfigFileEnv,
		"SLIDEGEN_SERVER_HOST",
		"SLIDEGEN_SERVER_PORT",
		"SLIDEGEN_SERVER_LOG_LEVEL",
		"SLIDEGEN_LLM_PROVIDER",
		"SLIDEGEN_LLM_API_KEY",
		"SLIDEGEN_LLM_BASE_URL",
		"SLIDEGEN_LLM_MODEL",
		"SLIDEGEN_LLM_VIRAL_TEMPERATURE",
		"SLIDEGEN_LLM_ORGANIC_TEMPERATURE",
		"SLIDEGEN_LLM_MAX_TOKENS",
		"SLIDEGEN_LLM_SCHEMA_VERSION",
		"SLIDEGEN_LLM_REQUEST_TIMEOUT_SECONDS",
		"SLIDEGEN_BUSINESS_DESCRIPTION",
		"SLIDEGEN_PREFERENCES_PATH",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

// TestLoadDefaults verifies that Load works with no file and no environment,
// and that the API key and business description are not required.
func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)

	assert.Equal(t, ProviderDeepSeek, cfg.LLM.Provider)
	assert.Empty(t, cfg.LLM.APIKey)
	assert.Equal(t, "https://api.deepseek.com/", cfg.LLM.BaseURL)
	assert.Equal(t, "deepseek-chat", cfg.LLM.Model)
	assert.InDelta(t, 0.9, cfg.LLM.ViralTemperature, 1e-9)
	assert.InDelta(t, 0.7, cfg.LLM.OrganicTemperature, 1e-9)
	assert.Equal(t, 1500, cfg.LLM.MaxTokens)
	assert.Equal(t, "hook_variations", cfg.LLM.SchemaVersion)
	assert.Zero(t, cfg.LLM.RequestTimeout())

	assert.Empty(t, cfg.Business.Description)
	assert.NotEmpty(t, cfg.Preferences.Path)
}

// TestLoadFromEnv verifies that environment variables override defaults.
func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SLIDEGEN_SERVER_PORT", "9090")
	t.Setenv("SLIDEGEN_SERVER_LOG_LEVEL", "debug")
	t.Setenv("SLIDEGEN_LLM_API_KEY", "sk-test")
	t.Setenv("SLIDEGEN_LLM_MAX_TOKENS", "1000")
	t.Setenv("SLIDEGEN_LLM_SCHEMA_VERSION", "hook")
	t.Setenv("SLIDEGEN_LLM_REQUEST_TIMEOUT_SECONDS", "45")
	t.Setenv("SLIDEGEN_BUSINESS_DESCRIPTION", "sleep coaching for toddlers")
	t.Setenv("SLIDEGEN_PREFERENCES_PATH", "/tmp/prefs.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, 1000, cfg.LLM.MaxTokens)
	assert.Equal(t, "hook", cfg.LLM.SchemaVersion)
	assert.Equal(t, 45*time.Second, cfg.LLM.RequestTimeout())
	assert.Equal(t, "sleep coaching for toddlers", cfg.Business.Description)
	assert.Equal(t, "/tmp/prefs.yaml", cfg.Preferences.Path)
}

func TestLoadGeminiDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SLIDEGEN_LLM_PROVIDER", "gemini")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultGeminiBaseURL, cfg.LLM.BaseURL)
	assert.Equal(t, DefaultGeminiModel, cfg.LLM.Model)
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
server:
  port: 7070
llm:
  model: deepseek-reasoner
  viral_temperature: 0.8
business:
  description: handmade ceramics studio
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv(ConfigFileEnv, path)
	t.Setenv("SLIDEGEN_SERVER_PORT", "6060")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Server.Port, "environment wins over the file")
	assert.Equal(t, "deepseek-reasoner", cfg.LLM.Model)
	assert.InDelta(t, 0.8, cfg.LLM.ViralTemperature, 1e-9)
	assert.Equal(t, "handmade ceramics studio", cfg.Business.Description)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(ConfigFileEnv, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

// TestLoadValidationErrors verifies that Load rejects invalid values.
func TestLoadValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "port out of range", env: map[string]string{"SLIDEGEN_SERVER_PORT": "70000"}},
		{name: "unknown log level", env: map[string]string{"SLIDEGEN_SERVER_LOG_LEVEL": "verbose"}},
		{name: "unknown provider", env: map[string]string{"SLIDEGEN_LLM_PROVIDER": "llama"}},
		{name: "bad base url", env: map[string]string{"SLIDEGEN_LLM_BASE_URL": "not a url"}},
		{name: "temperature too high", env: map[string]string{"SLIDEGEN_LLM_VIRAL_TEMPERATURE": "3"}},
		{name: "zero max tokens", env: map[string]string{"SLIDEGEN_LLM_MAX_TOKENS": "0"}},
		{name: "unknown schema version", env: map[string]string{"SLIDEGEN_LLM_SCHEMA_VERSION": "slides"}},
		{name: "negative timeout", env: map[string]string{"SLIDEGEN_LLM_REQUEST_TIMEOUT_SECONDS": "-1"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, DefaultDeepSeekBaseURL, cfg.LLM.BaseURL)
	assert.Equal(t, DefaultDeepSeekModel, cfg.LLM.Model)
}
