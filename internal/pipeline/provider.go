package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/slidegen/internal/config"
	"github.com/phrazzld/slidegen/internal/generation"
	"github.com/phrazzld/slidegen/internal/platform/deepseek"
	"github.com/phrazzld/slidegen/internal/platform/gemini"
)

// NewCompleter returns the Completer for the configured provider.
func NewCompleter(logger *slog.Logger, cfg config.LLMConfig) (generation.Completer, error) {
	switch cfg.Provider {
	case config.ProviderDeepSeek, "":
		c, err := deepseek.NewClient(logger, cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.ProviderGemini:
		c, err := gemini.NewClient(logger, cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}
