package api

import (
	"github.com/phrazzld/slidegen/internal/domain"
	"github.com/phrazzld/slidegen/internal/generation"
	"github.com/phrazzld/slidegen/internal/pipeline"
)

// GenerateRequest is the body of POST /api/generate. Empty fields fall back to
// the saved preferences.
type GenerateRequest struct {
	Format       string `json:"format" validate:"max=32"`
	Topic        string `json:"topic" validate:"max=500"`
	Language     string `json:"language" validate:"max=8"`
	Mode         string `json:"mode" validate:"omitempty,oneof=viral organic"`
	CustomFormat string `json:"custom_format" validate:"max=2000"`
}

// applyTo overlays the request's non-empty fields on prefs.
func (r GenerateRequest) applyTo(prefs domain.UserPreferences) domain.UserPreferences {
	if r.Format != "" {
		prefs.FormatID = domain.FormatID(r.Format)
	}
	if r.Language != "" {
		prefs.Language = domain.Language(r.Language)
	}
	if r.Mode != "" {
		prefs.Mode = domain.Mode(r.Mode)
	}
	if r.CustomFormat != "" {
		prefs.CustomFormat = r.CustomFormat
	}
	return prefs
}

// GenerateResponse is the result of a generation run.
type GenerateResponse struct {
	RunID    string                  `json:"run_id"`
	Content  domain.GeneratedContent `json:"content"`
	Fallback bool                    `json:"fallback"`
	Notice   string                  `json:"notice,omitempty"`
	Reason   string                  `json:"reason,omitempty"`
}

func resultToResponse(res *pipeline.Result) GenerateResponse {
	return GenerateResponse{
		RunID:    res.RunID.String(),
		Content:  res.Content,
		Fallback: res.Fallback,
		Notice:   res.Notice,
		Reason:   res.Reason,
	}
}

// ProgressResponse is the data of a progress event on the generation stream.
type ProgressResponse struct {
	Stage generation.ProgressStage `json:"stage"`
}

// PreferencesRequest is the body of PUT /api/preferences.
type PreferencesRequest struct {
	Format       string `json:"format" validate:"required,max=32"`
	Language     string `json:"language" validate:"required,max=8"`
	Mode         string `json:"mode" validate:"required,oneof=viral organic"`
	CustomFormat string `json:"custom_format" validate:"max=2000"`
}

func (r PreferencesRequest) toDomain() domain.UserPreferences {
	return domain.UserPreferences{
		FormatID:     domain.FormatID(r.Format),
		Language:     domain.Language(r.Language),
		Mode:         domain.Mode(r.Mode),
		CustomFormat: r.CustomFormat,
	}
}

// PreferencesResponse mirrors domain.UserPreferences.
type PreferencesResponse struct {
	Format       string `json:"format"`
	Language     string `json:"language"`
	Mode         string `json:"mode"`
	CustomFormat string `json:"custom_format,omitempty"`
}

func preferencesToResponse(p domain.UserPreferences) PreferencesResponse {
	return PreferencesResponse{
		Format:       string(p.FormatID),
		Language:     string(p.Language),
		Mode:         string(p.Mode),
		CustomFormat: p.CustomFormat,
	}
}

// FormatResponse describes one catalog entry.
type FormatResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Emoji        string `json:"emoji"`
	ExampleTopic string `json:"example_topic,omitempty"`
}

// LanguageResponse describes one supported language.
type LanguageResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
