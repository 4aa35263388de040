package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader binds.
const EnvPrefix = "SLIDEGEN"

// ConfigFileEnv names an explicit configuration file.
const ConfigFileEnv = "SLIDEGEN_CONFIG"

// Default values for every configuration key.
const (
	DefaultHost               = "127.0.0.1"
	DefaultPort               = 8080
	DefaultLogLevel           = "info"
	DefaultProvider           = ProviderDeepSeek
	DefaultDeepSeekBaseURL    = "https://api.deepseek.com/"
	DefaultDeepSeekModel      = "deepseek-chat"
	DefaultGeminiBaseURL      = "https://generativelanguage.googleapis.com/"
	DefaultGeminiModel        = "gemini-2.0-flash"
	DefaultViralTemperature   = 0.9
	DefaultOrganicTemperature = 0.7
	DefaultMaxTokens          = 1500
	DefaultSchemaVersion      = "hook_variations"
	DefaultPreferencesFile    = "preferences.yaml"
)

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from the file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path := os.Getenv(ConfigFileEnv); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("slidegen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.LLM.applyProviderDefaults()

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its validate tags.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Default returns a Config populated only with default values.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Defaults are static; unmarshalling them cannot fail.
	_ = v.Unmarshal(&cfg)
	cfg.LLM.applyProviderDefaults()
	return &cfg
}

// setDefaults registers every key so AutomaticEnv can resolve it during
// Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", DefaultHost)
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)

	v.SetDefault("llm.provider", DefaultProvider)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.viral_temperature", DefaultViralTemperature)
	v.SetDefault("llm.organic_temperature", DefaultOrganicTemperature)
	v.SetDefault("llm.max_tokens", DefaultMaxTokens)
	v.SetDefault("llm.schema_version", DefaultSchemaVersion)
	v.SetDefault("llm.request_timeout_seconds", 0)

	v.SetDefault("business.description", "")

	v.SetDefault("preferences.path", defaultPreferencesPath())
}

func defaultPreferencesPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultPreferencesFile
	}
	return filepath.Join(dir, "slidegen", DefaultPreferencesFile)
}

// applyProviderDefaults fills the endpoint and model the provider uses when
// neither is configured.
func (c *LLMConfig) applyProviderDefaults() {
	switch c.Provider {
	case ProviderGemini:
		if c.BaseURL == "" {
			c.BaseURL = DefaultGeminiBaseURL
		}
		if c.Model == "" {
			c.Model = DefaultGeminiModel
		}
	default:
		if c.BaseURL == "" {
			c.BaseURL = DefaultDeepSeekBaseURL
		}
		if c.Model == "" {
			c.Model = DefaultDeepSeekModel
		}
	}
}
