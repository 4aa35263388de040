package pipeline

import (
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/slidegen/internal/config"
	"github.com/phrazzld/slidegen/internal/generation"
	"github.com/phrazzld/slidegen/internal/platform/deepseek"
	"github.com/phrazzld/slidegen/internal/platform/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleter(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c, err := NewCompleter(logger, config.LLMConfig{Provider: config.ProviderDeepSeek})
	require.NoError(t, err)
	assert.IsType(t, &deepseek.Client{}, c)

	c, err = NewCompleter(logger, config.LLMConfig{Provider: config.ProviderGemini})
	require.NoError(t, err)
	assert.IsType(t, &gemini.Client{}, c)

	c, err = NewCompleter(logger, config.LLMConfig{Provider: "llama"})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	assert.Nil(t, c)

	_, err = NewCompleter(nil, config.LLMConfig{})
	assert.Error(t, err)
}

func TestSettingsFromConfig(t *testing.T) {
	t.Parallel()

	s := SettingsFromConfig(config.Default().LLM)
	assert.Equal(t, config.DefaultDeepSeekModel, s.Model)
	assert.InDelta(t, 0.9, s.temperature("viral"), 1e-9)
	assert.InDelta(t, 0.7, s.temperature("organic"), 1e-9)
	assert.Equal(t, "hook_variations", string(s.SchemaVersion))
}
