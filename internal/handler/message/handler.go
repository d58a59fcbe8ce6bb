package message

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventure-app/eventure/backend/internal/auth"
	messageModel "github.com/eventure-app/eventure/backend/internal/model/message"
	messageService "github.com/eventure-app/eventure/backend/internal/service/message"
	"github.com/eventure-app/eventure/backend/pkg/utils"
)

// Handler serves conversation transcripts, message posting and the live
// WebSocket feed.
type Handler struct {
	messages *messageService.Service
	ws       *webSocketHandler
}

// New creates the message handler.
func New(messages *messageService.Service) *Handler {
	return &Handler{
		messages: messages,
		ws:       newWebSocketHandler(messages),
	}
}

// RegisterRoutes mounts the messaging routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/messages", h.handleTranscript)
	r.Post("/messages", h.handlePost)
	r.Get("/messages/ws", h.ws.handleFeed)
}

type postRequest struct {
	ConversationID string `json:"conversationId"`
	Body           string `json:"body"`
}

func (h *Handler) handlePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !auth.IsAuthenticated(ctx) {
		utils.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ConversationID == "" {
		utils.RespondError(w, http.StatusBadRequest, "conversationId is required")
		return
	}

	msg, err := h.messages.Append(ctx, messageModel.Message{
		ConversationID: req.ConversationID,
		SenderID:       auth.CurrentUserID(ctx),
		SenderEmail:    auth.CurrentUserEmail(ctx),
		Body:           req.Body,
	})
	if err != nil {
		if errors.Is(err, messageService.ErrEmptyBody) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to save message")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, msg)
}

func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	conversationID := r.URL.Query().Get("conversationId")
	if conversationID == "" {
		utils.RespondError(w, http.StatusBadRequest, "conversationId query parameter is required")
		return
	}
	utils.RespondJSON(w, http.StatusOK, h.messages.Transcript(r.Context(), conversationID))
}
