package api

import (
	"net/http"

	"github.com/phrazzld/slidegen/internal/api/shared"
	"github.com/phrazzld/slidegen/internal/domain"
)

// ListFormats handles GET /api/formats
func ListFormats(w http.ResponseWriter, r *http.Request) {
	formats := domain.Formats()
	resp := make([]FormatResponse, 0, len(formats))
	for _, f := range formats {
		resp = append(resp, FormatResponse{
			ID:           string(f.ID),
			Title:        f.Title,
			Description:  f.Description,
			Emoji:        f.Emoji,
			ExampleTopic: f.ExampleTopic,
		})
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// ListLanguages handles GET /api/languages
func ListLanguages(w http.ResponseWriter, r *http.Request) {
	langs := domain.Languages()
	resp := make([]LanguageResponse, 0, len(langs))
	for _, l := range langs {
		resp = append(resp, LanguageResponse{Code: string(l), Name: l.Name()})
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Health handles GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
