// Package message keeps per-conversation transcripts and fans new messages
// out to live subscribers.
package message

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eventure-app/eventure/backend/internal/model/message"
)

var ErrEmptyBody = errors.New("message body is required")

// subscriberBuffer bounds how far a slow subscriber may lag before messages
// are dropped for it.
const subscriberBuffer = 16

// Service is an in-memory conversation log safe for concurrent use.
type Service struct {
	mu          sync.RWMutex
	transcripts map[string][]message.Message
	subscribers map[string]map[int]chan message.Message
	nextSubID   int
}

// NewService returns an empty message service.
func NewService() *Service {
	return &Service{
		transcripts: make(map[string][]message.Message),
		subscribers: make(map[string]map[int]chan message.Message),
	}
}

// Append stores a message and notifies the conversation's subscribers.
func (s *Service) Append(_ context.Context, msg message.Message) (message.Message, error) {
	if msg.Body == "" {
		return message.Message{}, ErrEmptyBody
	}

	msg.ID = uuid.NewString()
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcripts[msg.ConversationID] = append(s.transcripts[msg.ConversationID], msg)

	// Notify under the lock so a concurrent cancel cannot close a channel
	// mid-send. Sends never block: a stalled subscriber drops messages.
	for _, ch := range s.subscribers[msg.ConversationID] {
		select {
		case ch <- msg:
		default:
		}
	}

	return msg, nil
}

// Transcript returns the conversation's messages in append order.
func (s *Service) Transcript(_ context.Context, conversationID string) []message.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	transcript := s.transcripts[conversationID]
	copied := make([]message.Message, len(transcript))
	copy(copied, transcript)
	return copied
}

// Subscribe registers a live feed for a conversation. The returned cancel
// function must be called to release the subscription; the channel is closed
// by cancel.
func (s *Service) Subscribe(conversationID string) (<-chan message.Message, func()) {
	ch := make(chan message.Message, subscriberBuffer)

	s.mu.Lock()
	if s.subscribers[conversationID] == nil {
		s.subscribers[conversationID] = make(map[int]chan message.Message)
	}
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[conversationID][id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[conversationID][id]; ok {
			delete(s.subscribers[conversationID], id)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}
