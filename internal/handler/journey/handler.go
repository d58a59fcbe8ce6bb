package journey

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	journeyModel "github.com/eventure-app/eventure/backend/internal/model/journey"
	journeyService "github.com/eventure-app/eventure/backend/internal/service/journey"
	"github.com/eventure-app/eventure/backend/pkg/utils"
)

// Handler exposes the emotional journey feature endpoint.
type Handler struct {
	journeys *journeyService.Service
}

// New creates the journey handler.
func New(journeys *journeyService.Service) *Handler {
	return &Handler{journeys: journeys}
}

// RegisterRoutes mounts the journey route. Preflight OPTIONS is answered by
// the CORS middleware; non-POST methods get the router's 405 envelope.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/features/emotional-journey", h.handleGenerate)
}

// handleGenerate runs the full flow: validate, generate (or fall back),
// respond. Validation failures are hard 400s; generation failures are soft
// and still produce a 200 with the fallback journey, so the caller's UI
// always has something to render.
func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[journey] unexpected failure: %v", rec)
			utils.RespondJSON(w, http.StatusInternalServerError, map[string]any{
				"success": false,
				"message": "Failed to generate emotional journey map",
				"error":   fmt.Sprintf("%v", rec),
			})
		}
	}()

	var req journeyModel.Request
	// Decode errors are deliberately ignored: an unreadable body leaves the
	// request zero-valued and validation reports the first missing field.
	_ = json.NewDecoder(r.Body).Decode(&req)

	if err := req.Validate(); err != nil {
		utils.RespondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	result := h.journeys.Generate(r.Context(), req)

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"journeyMap": result,
	})
}
