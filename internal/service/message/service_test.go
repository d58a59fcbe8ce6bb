package message

import (
	"context"
	"testing"
	"time"

	"github.com/eventure-app/eventure/backend/internal/model/message"
)

func TestAppendAndTranscript(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	first, err := svc.Append(ctx, message.Message{ConversationID: "c1", SenderID: "u1", Body: "hello"})
	if err != nil {
		t.Fatalf("Append err: %v", err)
	}
	if first.ID == "" || first.CreatedAt.IsZero() {
		t.Fatalf("Append did not assign id/timestamp: %+v", first)
	}

	if _, err := svc.Append(ctx, message.Message{ConversationID: "c1", SenderID: "u2", Body: "hi back"}); err != nil {
		t.Fatalf("Append err: %v", err)
	}

	transcript := svc.Transcript(ctx, "c1")
	if len(transcript) != 2 || transcript[0].Body != "hello" || transcript[1].Body != "hi back" {
		t.Fatalf("unexpected transcript: %+v", transcript)
	}

	if got := svc.Transcript(ctx, "other"); len(got) != 0 {
		t.Fatalf("expected empty transcript, got %+v", got)
	}
}

func TestAppendRejectsEmptyBody(t *testing.T) {
	svc := NewService()
	if _, err := svc.Append(context.Background(), message.Message{ConversationID: "c1"}); err != ErrEmptyBody {
		t.Fatalf("expected ErrEmptyBody, got %v", err)
	}
}

func TestSubscribeReceivesNewMessages(t *testing.T) {
	svc := NewService()
	ch, cancel := svc.Subscribe("c1")
	defer cancel()

	if _, err := svc.Append(context.Background(), message.Message{ConversationID: "c1", Body: "ping"}); err != nil {
		t.Fatalf("Append err: %v", err)
	}
	// other conversations must not leak into this feed
	if _, err := svc.Append(context.Background(), message.Message{ConversationID: "c2", Body: "noise"}); err != nil {
		t.Fatalf("Append err: %v", err)
	}

	select {
	case msg := <-ch:
		if msg.Body != "ping" {
			t.Fatalf("unexpected message: %+v", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for subscribed message")
	}

	select {
	case msg := <-ch:
		t.Fatalf("unexpected extra message: %+v", msg)
	default:
	}
}

func TestCancelClosesFeed(t *testing.T) {
	svc := NewService()
	ch, cancel := svc.Subscribe("c1")
	cancel()

	if _, ok := <-ch; ok {
		t.Fatal("expected closed channel after cancel")
	}

	// appending after cancel must not panic on the closed channel
	if _, err := svc.Append(context.Background(), message.Message{ConversationID: "c1", Body: "late"}); err != nil {
		t.Fatalf("Append err: %v", err)
	}
}
