package journey

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/eventure-app/eventure/backend/internal/model/journey"
	"github.com/eventure-app/eventure/backend/internal/service/generation"
)

func validRequest() journey.Request {
	return journey.Request{
		EventType:     "conference",
		EventDuration: 4,
		AudienceSize:  200,
		EventGoals:    "networking",
	}
}

func segmentsJSON(n int) string {
	segs := make([]journey.Segment, n)
	for i := range segs {
		segs[i] = journey.Segment{
			Timepoint:   "Phase " + string(rune('A'+i)),
			Emotion:     "Curiosity",
			Description: "desc",
			Elements:    "elements",
			Transitions: "transition",
		}
	}
	payload, _ := json.Marshal(map[string]any{"journey": segs})
	return string(payload)
}

func TestGenerateUsesModelOutput(t *testing.T) {
	gen := generation.NewMockGenerator(segmentsJSON(8))
	svc := NewService(gen)

	result := svc.Generate(context.Background(), validRequest())

	if len(result.Journey) != 8 {
		t.Fatalf("expected 8 segments, got %d", len(result.Journey))
	}
	if result.Metadata.Error != "" {
		t.Fatalf("unexpected metadata error: %q", result.Metadata.Error)
	}
	if result.Metadata.EventType != "conference" || result.Metadata.Duration != 4 || result.Metadata.AudienceSize != 200 {
		t.Fatalf("metadata does not echo request: %+v", result.Metadata)
	}
	if result.Metadata.GeneratedAt == "" {
		t.Fatal("expected generatedAt timestamp")
	}
}

func TestGeneratePromptContents(t *testing.T) {
	gen := generation.NewMockGenerator(segmentsJSON(5))
	svc := NewService(gen)

	req := validRequest()
	req.AudienceDetails = "tech leads"
	req.KeyMoments = []string{"keynote", "award ceremony"}
	req.DesiredEmotions = []string{"excitement"}
	svc.Generate(context.Background(), req)

	for _, want := range []string{
		"conference",
		"4 hours",
		"Audience size: 200",
		"tech leads",
		"networking",
		"keynote, award ceremony",
		"excitement",
		"exactly 8 chronological segments", // segments(4) = 8
		`"timepoint", "emotion", "description", "elements" and "transitions"`,
	} {
		if !strings.Contains(gen.LastPrompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, gen.LastPrompt)
		}
	}
	if gen.LastSystem == "" {
		t.Fatal("expected a system instruction")
	}
}

func TestGeneratePromptDefaults(t *testing.T) {
	gen := generation.NewMockGenerator(segmentsJSON(5))
	svc := NewService(gen)

	svc.Generate(context.Background(), validRequest())

	for _, want := range []string{"General audience", "None specified", "Not specified"} {
		if !strings.Contains(gen.LastPrompt, want) {
			t.Fatalf("prompt missing default %q:\n%s", want, gen.LastPrompt)
		}
	}
}

func TestGenerateFallsBackOnGeneratorError(t *testing.T) {
	gen := generation.NewMockGeneratorWithError(errors.New("upstream down"))
	svc := NewService(gen)

	result := svc.Generate(context.Background(), validRequest())

	// segments(4) = 8 but the fallback template caps at its 5 authored entries
	if len(result.Journey) != 5 {
		t.Fatalf("expected 5 fallback segments, got %d", len(result.Journey))
	}
	if result.Metadata.Error == "" {
		t.Fatal("expected metadata.error on fallback")
	}
	if gen.Calls != 1 {
		t.Fatalf("expected a single generation attempt, got %d", gen.Calls)
	}
}

func TestGenerateFallsBackOnUnparseablePayload(t *testing.T) {
	gen := generation.NewMockGenerator(`{"journey": "not an array"}`)
	svc := NewService(gen)

	result := svc.Generate(context.Background(), validRequest())

	if len(result.Journey) != 5 {
		t.Fatalf("expected fallback journey, got %d segments", len(result.Journey))
	}
	if result.Metadata.Error == "" {
		t.Fatal("expected metadata.error on fallback")
	}
}

func TestGenerateWithoutGeneratorIsDegraded(t *testing.T) {
	svc := NewService(nil)

	result := svc.Generate(context.Background(), validRequest())

	if len(result.Journey) != 5 {
		t.Fatalf("expected fallback journey, got %d segments", len(result.Journey))
	}
	if result.Metadata.Error == "" {
		t.Fatal("expected metadata.error when no generator is configured")
	}
	if svc.GenerationLive() {
		t.Fatal("expected GenerationLive to be false")
	}
}

func TestGenerateIdempotentWithDeterministicGenerator(t *testing.T) {
	gen := generation.NewMockGenerator(segmentsJSON(6))
	svc := NewService(gen)

	first := svc.Generate(context.Background(), validRequest())
	second := svc.Generate(context.Background(), validRequest())

	if !reflect.DeepEqual(first.Journey, second.Journey) {
		t.Fatal("expected identical journey content for identical input")
	}
}

func TestNormalizeWrappedShape(t *testing.T) {
	raw := json.RawMessage(`{"journey":[{"timepoint":"t1","emotion":"joy"},{"timepoint":"t2"}]}`)
	segs, err := Normalize(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 2 || segs[0].Timepoint != "t1" || segs[1].Timepoint != "t2" {
		t.Fatalf("unexpected segments: %+v", segs)
	}
	// permissive: missing fields stay empty, the segment is kept
	if segs[1].Emotion != "" {
		t.Fatalf("expected empty emotion, got %q", segs[1].Emotion)
	}
}

func TestNormalizeBareArrayShape(t *testing.T) {
	raw := json.RawMessage(`[{"timepoint":"a"},{"timepoint":"b"},{"timepoint":"c"}]`)
	segs, err := Normalize(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 3 || segs[0].Timepoint != "a" || segs[2].Timepoint != "c" {
		t.Fatalf("unexpected segments: %+v", segs)
	}
}

func TestNormalizePreservesOrder(t *testing.T) {
	raw := json.RawMessage(segmentsJSON(5))
	segs, err := Normalize(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, seg := range segs {
		want := "Phase " + string(rune('A'+i))
		if seg.Timepoint != want {
			t.Fatalf("segment %d out of order: got %q want %q", i, seg.Timepoint, want)
		}
	}
}

func TestNormalizeRejectsNonListObject(t *testing.T) {
	if _, err := Normalize(json.RawMessage(`{"message":"hello"}`)); err == nil {
		t.Fatal("expected error for object without journey array")
	}
}
