package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/slidegen/internal/api/shared"
	"github.com/phrazzld/slidegen/internal/domain"
	"github.com/phrazzld/slidegen/internal/generation"
	"github.com/phrazzld/slidegen/internal/pipeline"
	"github.com/phrazzld/slidegen/internal/redact"
)

// Generator runs one content generation.
type Generator interface {
	Generate(ctx context.Context, req domain.GenerationRequest, onProgress generation.ProgressFunc) (*pipeline.Result, error)
}

// PreferencesStore loads and saves the remembered choices.
type PreferencesStore interface {
	Load() (domain.UserPreferences, error)
	Save(prefs domain.UserPreferences) error
}

// Credentials are the per-user settings every generation needs.
type Credentials struct {
	APIKey              string
	BusinessDescription string
}

// GenerationHandler handles POST /api/generate.
type GenerationHandler struct {
	generator   Generator
	preferences PreferencesStore
	credentials Credentials
	timeout     time.Duration
	logger      *slog.Logger
}

// NewGenerationHandler creates a GenerationHandler. A positive timeout bounds
// each run.
func NewGenerationHandler(
	generator Generator,
	preferences PreferencesStore,
	credentials Credentials,
	timeout time.Duration,
	logger *slog.Logger,
) *GenerationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GenerationHandler{
		generator:   generator,
		preferences: preferences,
		credentials: credentials,
		timeout:     timeout,
		logger:      logger.With("component", "generation_handler"),
	}
}

// Generate handles POST /api/generate. With Accept: text/event-stream the
// response is a stream of progress events ending in a result or error event.
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	chosen := req.applyTo(h.loadPreferences(r.Context()))
	genReq := chosen.NewRequest(req.Topic, h.credentials.BusinessDescription, h.credentials.APIKey)

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	if shared.WantsEventStream(r) {
		h.stream(ctx, w, r, genReq, chosen)
		return
	}

	result, err := h.generator.Generate(ctx, genReq, nil)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.remember(ctx, chosen)
	shared.RespondWithJSON(w, r, http.StatusOK, resultToResponse(result))
}

func (h *GenerationHandler) stream(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	genReq domain.GenerationRequest,
	chosen domain.UserPreferences,
) {
	// Checked before the stream opens so these keep their status codes.
	if !genReq.HasSetup() {
		err := generation.ErrSetup
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	if err := genReq.Validate(); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	events, err := shared.NewEventStream(w)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Streaming is not supported", err)
		return
	}

	traceID := shared.GetTraceID(ctx)
	onProgress := func(stage generation.ProgressStage) {
		if err := events.Send("progress", ProgressResponse{Stage: stage}); err != nil {
			h.logger.DebugContext(ctx, "failed to send progress event",
				"trace_id", traceID,
				"stage", stage,
				"error", err)
		}
	}

	result, err := h.generator.Generate(ctx, genReq, onProgress)
	if err != nil {
		h.logger.WarnContext(ctx, "generation failed",
			"trace_id", traceID,
			"error", redact.Error(err))
		_ = events.Send("error", shared.ErrorResponse{
			Error:   GetSafeErrorMessage(err),
			TraceID: traceID,
		})
		return
	}

	h.remember(ctx, chosen)
	if err := events.Send("result", resultToResponse(result)); err != nil {
		h.logger.DebugContext(ctx, "failed to send result event",
			"trace_id", traceID,
			"error", err)
	}
}

// loadPreferences returns the saved preferences, or the defaults when they
// cannot be read.
func (h *GenerationHandler) loadPreferences(ctx context.Context) domain.UserPreferences {
	prefs, err := h.preferences.Load()
	if err != nil {
		h.logger.WarnContext(ctx, "failed to load preferences, using defaults",
			"trace_id", shared.GetTraceID(ctx),
			"error", redact.Error(err))
		return domain.DefaultPreferences()
	}
	return prefs
}

// remember saves the choices of a completed run.
func (h *GenerationHandler) remember(ctx context.Context, chosen domain.UserPreferences) {
	if err := h.preferences.Save(chosen); err != nil {
		h.logger.WarnContext(ctx, "failed to save preferences",
			"trace_id", shared.GetTraceID(ctx),
			"error", redact.Error(err))
	}
}
