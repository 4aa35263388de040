package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/slidegen/internal/config"
	"github.com/phrazzld/slidegen/internal/domain"
	"github.com/phrazzld/slidegen/internal/events"
	"github.com/phrazzld/slidegen/internal/fallback"
	"github.com/phrazzld/slidegen/internal/generation"
	"github.com/phrazzld/slidegen/internal/prompt"
	"github.com/phrazzld/slidegen/internal/redact"
	"github.com/phrazzld/slidegen/internal/response"
)

// DemoNotice is shown next to fallback content.
const DemoNotice = "Showing demo content because the live generation failed. Generate again for personalized content."

// Settings are the model parameters shared by every run.
type Settings struct {
	Model              string
	ViralTemperature   float64
	OrganicTemperature float64
	MaxTokens          int
	SchemaVersion      domain.SchemaVersion
}

// SettingsFromConfig extracts the run settings from the LLM configuration.
func SettingsFromConfig(cfg config.LLMConfig) Settings {
	return Settings{
		Model:              cfg.Model,
		ViralTemperature:   cfg.ViralTemperature,
		OrganicTemperature: cfg.OrganicTemperature,
		MaxTokens:          cfg.MaxTokens,
		SchemaVersion:      domain.SchemaVersion(cfg.SchemaVersion),
	}
}

func (s Settings) temperature(mode domain.Mode) float64 {
	if mode == domain.ModeOrganic {
		return s.OrganicTemperature
	}
	return s.ViralTemperature
}

// Result is the outcome of a run that did not fail hard.
type Result struct {
	RunID   uuid.UUID               `json:"run_id"`
	Content domain.GeneratedContent `json:"content"`

	// Fallback is true when Content is demo content.
	Fallback bool `json:"fallback"`

	// Notice is the message to show alongside fallback content.
	Notice string `json:"notice,omitempty"`

	// Reason is the generation.Classify label of the error that caused the
	// fallback.
	Reason string `json:"reason,omitempty"`
}

// Service wires the prompt builder, a Completer, the response validator and
// the fallback table. It holds no per-run state and is safe for concurrent
// use.
type Service struct {
	completer generation.Completer
	emitter   events.EventEmitter
	settings  Settings
	logger    *slog.Logger
}

// NewService creates a Service. emitter may be nil when nobody observes
// progress events.
func NewService(
	logger *slog.Logger,
	completer generation.Completer,
	emitter events.EventEmitter,
	settings Settings,
) (*Service, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if completer == nil {
		return nil, errors.New("completer cannot be nil")
	}
	if !settings.SchemaVersion.IsValid() {
		settings.SchemaVersion = domain.SchemaHookVariations
	}

	return &Service{
		completer: completer,
		emitter:   emitter,
		settings:  settings,
		logger:    logger.With("component", "pipeline"),
	}, nil
}

// Generate runs the pipeline for req. onProgress may be nil.
//
// It returns generation.ErrSetup when req lacks an API key or business
// description, a *domain.ValidationError when a choice is invalid and the
// context's error when ctx ends first. Every other failure yields a Result
// with Fallback set.
func (s *Service) Generate(
	ctx context.Context,
	req domain.GenerationRequest,
	onProgress generation.ProgressFunc,
) (*Result, error) {
	if !req.HasSetup() {
		return nil, generation.ErrSetup
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.New()
	log := s.logger.With(
		"run_id", runID,
		"format", req.FormatID,
		"language", req.Language,
		"mode", req.Mode,
	)
	progress := s.progress(ctx, log, runID, onProgress)

	progress(generation.StagePreparing)
	log.DebugContext(ctx, "generation started", "schema_version", s.settings.SchemaVersion)

	content, err := s.run(ctx, req, progress)
	if err == nil {
		log.InfoContext(ctx, "generation succeeded")
		return &Result{RunID: runID, Content: content}, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		log.InfoContext(ctx, "generation cancelled", "error", ctxErr)
		return nil, ctxErr
	}

	reason := generation.Classify(err)
	log.WarnContext(ctx, "generation failed, serving demo content",
		"reason", reason,
		"error", redact.Error(err))

	return &Result{
		RunID:    runID,
		Content:  s.demoContent(req),
		Fallback: true,
		Notice:   DemoNotice,
		Reason:   reason,
	}, nil
}

func (s *Service) run(
	ctx context.Context,
	req domain.GenerationRequest,
	progress generation.ProgressFunc,
) (domain.GeneratedContent, error) {
	raw, err := s.completer.Complete(ctx, generation.Completion{
		Prompt:      prompt.Build(req, s.settings.SchemaVersion),
		APIKey:      req.APIKey,
		Model:       s.settings.Model,
		Temperature: s.settings.temperature(req.Mode),
		MaxTokens:   s.settings.MaxTokens,
	}, progress)
	if err != nil {
		return domain.GeneratedContent{}, err
	}

	jsonText, err := response.Extract(raw)
	if err != nil {
		return domain.GeneratedContent{}, err
	}

	return response.Validate(jsonText, response.Context{
		Version:        s.settings.SchemaVersion,
		FormatID:       req.FormatID,
		Language:       req.Language,
		SearchTermPool: fallback.SearchTerms(req.FormatID, req.Language),
	})
}

// demoContent returns fallback content shaped like the active schema version.
func (s *Service) demoContent(req domain.GenerationRequest) domain.GeneratedContent {
	content := fallback.Content(req.FormatID, req.Topic, req.Language)
	if s.settings.SchemaVersion == domain.SchemaHook {
		content.HookVariations = nil
		content.SelectedHookIndex = 0
	}
	return content
}

// progress fans every stage out to the caller and the event emitter. Emitter
// failures are logged and never affect the run.
func (s *Service) progress(
	ctx context.Context,
	log *slog.Logger,
	runID uuid.UUID,
	onProgress generation.ProgressFunc,
) generation.ProgressFunc {
	return func(stage generation.ProgressStage) {
		onProgress.Report(stage)
		if s.emitter == nil {
			return
		}
		if err := s.emitter.EmitEvent(ctx, events.NewProgressEvent(runID, stage)); err != nil {
			log.WarnContext(ctx, "progress event handler failed",
				"stage", stage,
				"error", redact.Error(err))
		}
	}
}
