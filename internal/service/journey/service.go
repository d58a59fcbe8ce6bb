// Package journey orchestrates emotional journey generation: it derives the
// segment plan, builds the model prompt, invokes the generation client and
// normalizes the response, degrading to a canned journey when anything on
// the generation side fails.
package journey

import (
	"context"
	"log"
	"time"

	"github.com/eventure-app/eventure/backend/internal/model/journey"
	"github.com/eventure-app/eventure/backend/internal/service/generation"
)

// fallbackDiagnostic is recorded in metadata.error whenever the returned
// journey is the fallback template rather than a generated one.
const fallbackDiagnostic = "Failed to generate custom journey, using default template"

// Service generates journey maps. A nil Generator puts the service in
// degraded mode where every request receives the fallback journey.
type Service struct {
	gen generation.Generator
}

// NewService wires the journey service to a generation client. gen may be
// nil when no provider is configured.
func NewService(gen generation.Generator) *Service {
	return &Service{gen: gen}
}

// GenerationLive reports whether a generation client is attached.
func (s *Service) GenerationLive() bool {
	return s != nil && s.gen != nil
}

// Generate produces a journey map for a validated request. Generation-side
// failures never surface as errors: the result degrades to the fallback
// journey and the failure is noted in metadata.error only.
func (s *Service) Generate(ctx context.Context, req journey.Request) journey.Result {
	segmentCount := journey.SegmentCount(req.EventDuration)

	segments, degraded := s.generateSegments(ctx, req, segmentCount)

	meta := journey.Metadata{
		EventType:    req.EventType,
		Duration:     req.EventDuration,
		AudienceSize: req.AudienceSize,
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if degraded {
		meta.Error = fallbackDiagnostic
	}

	return journey.Result{Metadata: meta, Journey: segments}
}

// generateSegments attempts a single model call; the bool result reports
// whether the fallback was used.
func (s *Service) generateSegments(ctx context.Context, req journey.Request, segmentCount int) ([]journey.Segment, bool) {
	if s.gen == nil {
		return journey.FallbackJourney(segmentCount), true
	}

	prompt := BuildPrompt(req, segmentCount)

	raw, err := s.gen.GenerateJSON(ctx, systemPrompt, prompt)
	if err != nil {
		log.Printf("[journey] generation failed, using fallback: %v", err)
		return journey.FallbackJourney(segmentCount), true
	}

	segments, err := Normalize(raw)
	if err != nil {
		log.Printf("[journey] normalize failed, using fallback: %v", err)
		return journey.FallbackJourney(segmentCount), true
	}

	return segments, false
}
