package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/slidegen/internal/api/shared"
)

// PreferencesHandler handles the preference endpoints.
type PreferencesHandler struct {
	store  PreferencesStore
	logger *slog.Logger
}

// NewPreferencesHandler creates a new PreferencesHandler
func NewPreferencesHandler(store PreferencesStore, logger *slog.Logger) *PreferencesHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PreferencesHandler{
		store:  store,
		logger: logger.With("component", "preferences_handler"),
	}
}

// GetPreferences handles GET /api/preferences
func (h *PreferencesHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.store.Load()
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, preferencesToResponse(prefs))
}

// UpdatePreferences handles PUT /api/preferences
func (h *PreferencesHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req PreferencesRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	prefs := req.toDomain()
	if err := prefs.Validate(); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.store.Save(prefs); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Failed to save preferences", err)
		return
	}

	h.logger.InfoContext(r.Context(), "preferences updated",
		"trace_id", shared.GetTraceID(r.Context()),
		"format", prefs.FormatID,
		"language", prefs.Language,
		"mode", prefs.Mode)
	shared.RespondWithJSON(w, r, http.StatusOK, preferencesToResponse(prefs))
}
