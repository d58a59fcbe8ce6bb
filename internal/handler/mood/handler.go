package mood

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	moodModel "github.com/eventure-app/eventure/backend/internal/model/mood"
	moodService "github.com/eventure-app/eventure/backend/internal/service/mood"
	"github.com/eventure-app/eventure/backend/pkg/utils"
)

// Handler exposes the weather-mood adaptation feature endpoint. Same flow as
// the journey endpoint: validate, generate or fall back, always 200 once
// validation passes.
type Handler struct {
	moods *moodService.Service
}

// New creates the mood handler.
func New(moods *moodService.Service) *Handler {
	return &Handler{moods: moods}
}

// RegisterRoutes mounts the weather-mood route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/features/weather-mood", h.handleGenerate)
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[mood] unexpected failure: %v", rec)
			utils.RespondJSON(w, http.StatusInternalServerError, map[string]any{
				"success": false,
				"message": "Failed to generate weather mood adaptation",
				"error":   fmt.Sprintf("%v", rec),
			})
		}
	}()

	var req moodModel.Request
	_ = json.NewDecoder(r.Body).Decode(&req)

	if err := req.Validate(); err != nil {
		utils.RespondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	result := h.moods.Generate(r.Context(), req)

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"moodAdaptation": result,
	})
}
