// Package mood generates weather-driven mood adaptations for an event.
// Structurally it mirrors the journey service: build prompt, single model
// call, normalize, fall back to a canned list on failure.
package mood

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/eventure-app/eventure/backend/internal/model/mood"
	"github.com/eventure-app/eventure/backend/internal/service/generation"
)

const systemPrompt = "You are an event production specialist who adapts event atmospheres to " +
	"weather conditions. Respond with JSON only, no surrounding prose."

const fallbackDiagnostic = "Failed to generate weather adaptation, using default suggestions"

// Service generates mood adaptations. A nil Generator degrades every
// request to the canned suggestions.
type Service struct {
	gen generation.Generator
}

// NewService wires the mood service to a generation client.
func NewService(gen generation.Generator) *Service {
	return &Service{gen: gen}
}

// Generate produces an adaptation set for a validated request; generation
// failures degrade to the fallback list, never to an error.
func (s *Service) Generate(ctx context.Context, req mood.Request) mood.Result {
	adaptations, degraded := s.generateAdaptations(ctx, req)

	meta := mood.Metadata{
		EventType:        req.EventType,
		WeatherCondition: req.WeatherCondition,
		GeneratedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	if degraded {
		meta.Error = fallbackDiagnostic
	}

	return mood.Result{Metadata: meta, Adaptations: adaptations}
}

func (s *Service) generateAdaptations(ctx context.Context, req mood.Request) ([]mood.Adaptation, bool) {
	if s.gen == nil {
		return mood.FallbackAdaptations(), true
	}

	raw, err := s.gen.GenerateJSON(ctx, systemPrompt, buildPrompt(req))
	if err != nil {
		log.Printf("[mood] generation failed, using fallback: %v", err)
		return mood.FallbackAdaptations(), true
	}

	adaptations, err := normalize(raw)
	if err != nil {
		log.Printf("[mood] normalize failed, using fallback: %v", err)
		return mood.FallbackAdaptations(), true
	}

	return adaptations, false
}

func buildPrompt(req mood.Request) string {
	venue := strings.TrimSpace(req.VenueType)
	if venue == "" {
		venue = "Unspecified venue"
	}

	planned := "None specified"
	if kept := strings.TrimSpace(strings.Join(req.PlannedElements, ", ")); kept != "" {
		planned = kept
	}

	var b strings.Builder
	b.WriteString("Suggest mood adaptations for the following event given the weather:\n\n")
	b.WriteString(fmt.Sprintf("Event type: %s\n", req.EventType))
	b.WriteString(fmt.Sprintf("Weather condition: %s\n", req.WeatherCondition))
	b.WriteString(fmt.Sprintf("Temperature: %g°C\n", req.Temperature))
	b.WriteString(fmt.Sprintf("Venue: %s\n", venue))
	b.WriteString(fmt.Sprintf("Planned elements: %s\n\n", planned))
	b.WriteString(`Return a JSON object of the form {"adaptations": [...]} where each entry has `)
	b.WriteString(`the string fields "aspect", "suggestion" and "reason".`)
	return b.String()
}

// normalize accepts {"adaptations": [...]} or a bare array, mirroring the
// journey normalizer's tolerance for the wrapper being dropped.
func normalize(raw json.RawMessage) ([]mood.Adaptation, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty generation payload")
	}

	if trimmed[0] != '[' {
		var wrapper struct {
			Adaptations json.RawMessage `json:"adaptations"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, fmt.Errorf("decode generation payload: %w", err)
		}
		if wrapper.Adaptations != nil {
			trimmed = wrapper.Adaptations
		}
	}

	var adaptations []mood.Adaptation
	if err := json.Unmarshal(trimmed, &adaptations); err != nil {
		return nil, fmt.Errorf("generation payload is not an adaptation list: %w", err)
	}
	return adaptations, nil
}
