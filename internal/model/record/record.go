package record

import "time"

// Record is a schemaless document held in a named collection. Domain fields
// (event name, vendor contact, ...) live in Fields; the envelope carries only
// what the store itself needs.
type Record struct {
	ID        string         `json:"id"`
	OwnerID   string         `json:"ownerId,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Fields    map[string]any `json:"fields"`
}

// Query narrows a collection listing: optional single-field equality filter
// and optional single-field ordering, matching the narrow surface the
// application actually uses.
type Query struct {
	Field   string
	Value   string
	OrderBy string
}
