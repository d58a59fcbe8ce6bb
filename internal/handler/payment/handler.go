package payment

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/eventure-app/eventure/backend/internal/auth"
	recordModel "github.com/eventure-app/eventure/backend/internal/model/record"
	"github.com/eventure-app/eventure/backend/internal/store"
	"github.com/eventure-app/eventure/backend/pkg/utils"
)

// Handler simulates payment capture: the amount is validated and a payment
// record is written, but no gateway is contacted.
type Handler struct {
	store store.Store
}

// New creates the payment handler.
func New(st store.Store) *Handler {
	return &Handler{store: st}
}

// RegisterRoutes mounts the payment routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/payments", h.handleCapture)
}

type captureRequest struct {
	EventID string  `json:"eventId"`
	Amount  float64 `json:"amount"`
	Method  string  `json:"method"`
}

func (h *Handler) handleCapture(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !auth.IsAuthenticated(ctx) {
		utils.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req captureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.EventID == "" {
		utils.RespondError(w, http.StatusBadRequest, "eventId is required")
		return
	}
	if req.Amount <= 0 {
		utils.RespondError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	method := req.Method
	if method == "" {
		method = "card"
	}

	rec, err := h.store.Create(ctx, "payments", recordModel.Record{
		OwnerID: auth.CurrentUserID(ctx),
		Fields: map[string]any{
			"eventId":    req.EventID,
			"amount":     req.Amount,
			"method":     method,
			"status":     "captured",
			"capturedAt": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to record payment")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"payment": rec,
	})
}
