package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	LLM         LLMConfig         `mapstructure:"llm" validate:"required"`
	Business    BusinessConfig    `mapstructure:"business"`
	Preferences PreferencesConfig `mapstructure:"preferences" validate:"required"`
}

// ServerConfig contains the local HTTP surface and logging settings.
type ServerConfig struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// Provider names accepted by LLMConfig.Provider.
const (
	ProviderDeepSeek = "deepseek"
	ProviderGemini   = "gemini"
)

// LLMConfig contains the text-generation settings.
type LLMConfig struct {
	Provider string `mapstructure:"provider" validate:"required,oneof=deepseek gemini"`

	// APIKey may be empty: a missing key is reported at generation time as a
	// setup error, not at startup.
	APIKey string `mapstructure:"api_key"`

	// BaseURL overrides the provider endpoint. Empty means the provider default.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`

	Model              string  `mapstructure:"model" validate:"required"`
	ViralTemperature   float64 `mapstructure:"viral_temperature" validate:"gte=0,lte=2"`
	OrganicTemperature float64 `mapstructure:"organic_temperature" validate:"gte=0,lte=2"`
	MaxTokens          int     `mapstructure:"max_tokens" validate:"required,gt=0"`
	SchemaVersion      string  `mapstructure:"schema_version" validate:"required,oneof=hook hook_variations"`

	// RequestTimeoutSeconds bounds a whole generation run. Zero means no
	// deadline.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gte=0"`
}

// RequestTimeout returns the run deadline, or zero when none is configured.
func (c LLMConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// BusinessConfig describes the creator's business. It is interpolated into
// every prompt.
type BusinessConfig struct {
	Description string `mapstructure:"description"`
}

// PreferencesConfig locates the remembered user choices.
type PreferencesConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}
