package journey

import (
	"fmt"
	"math"
)

// Request carries the event parameters submitted for journey generation.
// Field names follow the wire format used by the frontend.
type Request struct {
	EventType       string   `json:"eventType"`
	EventDuration   float64  `json:"eventDuration"`
	AudienceSize    float64  `json:"audienceSize"`
	AudienceDetails string   `json:"audienceDetails"`
	EventGoals      string   `json:"eventGoals"`
	KeyMoments      []string `json:"keyMoments"`
	DesiredEmotions []string `json:"desiredEmotions"`
}

// MissingParameterError reports the first required field absent from a request.
type MissingParameterError struct {
	Field string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("Missing required parameter: %s", e.Field)
}

// Validate checks required fields in a fixed order and returns the first
// failure. The order matters to callers and tests: eventType, eventDuration,
// audienceSize, eventGoals.
func (r *Request) Validate() error {
	if r.EventType == "" {
		return &MissingParameterError{Field: "eventType"}
	}
	if r.EventDuration <= 0 {
		return &MissingParameterError{Field: "eventDuration"}
	}
	if r.AudienceSize <= 0 {
		return &MissingParameterError{Field: "audienceSize"}
	}
	if r.EventGoals == "" {
		return &MissingParameterError{Field: "eventGoals"}
	}
	return nil
}

// Segment is one labeled phase of an event's emotional arc.
type Segment struct {
	Timepoint   string `json:"timepoint"`
	Emotion     string `json:"emotion"`
	Description string `json:"description"`
	Elements    string `json:"elements"`
	Transitions string `json:"transitions"`
}

// Metadata describes the request a journey was generated for. Error is set
// only when the journey is the fallback template.
type Metadata struct {
	EventType    string  `json:"eventType"`
	Duration     float64 `json:"duration"`
	AudienceSize float64 `json:"audienceSize"`
	GeneratedAt  string  `json:"generatedAt"`
	Error        string  `json:"error,omitempty"`
}

// Result is the full journey map returned to the caller.
type Result struct {
	Metadata Metadata  `json:"metadata"`
	Journey  []Segment `json:"journey"`
}

const (
	minSegments = 5
	maxSegments = 10
)

// SegmentCount derives how many phases an event should be divided into:
// one segment per half hour, floored at 5 and capped at 10. Fractional
// durations round up so even a minutes-long event gets the full 5-phase arc.
func SegmentCount(durationHours float64) int {
	n := int(math.Ceil(durationHours / 0.5))
	if n < minSegments {
		return minSegments
	}
	if n > maxSegments {
		return maxSegments
	}
	return n
}
