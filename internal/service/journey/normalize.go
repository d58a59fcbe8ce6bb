package journey

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/eventure-app/eventure/backend/internal/model/journey"
)

// Normalize reshapes a raw model completion into the canonical segment list.
// The model is asked for {"journey": [...]} but sometimes returns the array
// at the top level; both shapes are accepted. Individual segment fields are
// passed through permissively: a segment missing a field keeps it empty and
// is never rejected for the omission.
func Normalize(raw json.RawMessage) ([]journey.Segment, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty generation payload")
	}

	if trimmed[0] != '[' {
		var wrapper struct {
			Journey json.RawMessage `json:"journey"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, fmt.Errorf("decode generation payload: %w", err)
		}
		if wrapper.Journey != nil {
			trimmed = wrapper.Journey
		}
	}

	var segments []journey.Segment
	if err := json.Unmarshal(trimmed, &segments); err != nil {
		return nil, fmt.Errorf("generation payload is not a segment list: %w", err)
	}
	return segments, nil
}
