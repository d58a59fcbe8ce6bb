package message

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	messageService "github.com/eventure-app/eventure/backend/internal/service/message"
	"github.com/eventure-app/eventure/backend/pkg/utils"
)

// webSocketHandler pushes new conversation messages to connected clients.
type webSocketHandler struct {
	messages *messageService.Service
	upgrader websocket.Upgrader
}

func newWebSocketHandler(messages *messageService.Service) *webSocketHandler {
	return &webSocketHandler{
		messages: messages,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

type feedFrame struct {
	Type      string `json:"type"`
	Data      any    `json:"data,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// handleFeed upgrades the connection and streams every message appended to
// the conversation after connect, until the client disconnects.
func (h *webSocketHandler) handleFeed(w http.ResponseWriter, r *http.Request) {
	conversationID := r.URL.Query().Get("conversationId")
	if conversationID == "" {
		utils.RespondError(w, http.StatusBadRequest, "conversationId query parameter is required")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[message] websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	feed, cancel := h.messages.Subscribe(conversationID)
	defer cancel()

	// Reader goroutine exists only to detect the client closing.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := conn.WriteJSON(feedFrame{Type: "subscribed", Timestamp: time.Now().UnixMilli()}); err != nil {
		return
	}

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case msg, ok := <-feed:
			if !ok {
				return
			}
			if err := conn.WriteJSON(feedFrame{Type: "message", Data: msg, Timestamp: time.Now().UnixMilli()}); err != nil {
				log.Printf("[message] websocket write failed: %v", err)
				return
			}
		}
	}
}
