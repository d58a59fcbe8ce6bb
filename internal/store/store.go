// Package store provides the collection-scoped document store the record
// endpoints run on: create/read/update/delete plus single-field equality
// filtering and single-field ordering. Nothing richer is offered because
// nothing richer is consumed.
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/eventure-app/eventure/backend/internal/model/record"
)

// ErrNotFound is returned when a record id does not exist in the collection.
var ErrNotFound = errors.New("record not found")

// Store is the narrow persistence surface consumed by the HTTP handlers.
type Store interface {
	Create(ctx context.Context, collection string, rec record.Record) (record.Record, error)
	Get(ctx context.Context, collection, id string) (record.Record, error)
	List(ctx context.Context, collection string, q record.Query) ([]record.Record, error)
	Update(ctx context.Context, collection, id string, fields map[string]any) (record.Record, error)
	Delete(ctx context.Context, collection, id string) error
}

// applyQuery filters and orders an in-memory record slice. Both backends
// funnel through this so filter semantics cannot drift between them.
func applyQuery(records []record.Record, q record.Query) []record.Record {
	out := make([]record.Record, 0, len(records))
	for _, rec := range records {
		if q.Field != "" && fieldString(rec, q.Field) != q.Value {
			continue
		}
		out = append(out, rec)
	}

	if q.OrderBy != "" {
		sort.SliceStable(out, func(i, j int) bool {
			return fieldString(out[i], q.OrderBy) < fieldString(out[j], q.OrderBy)
		})
	} else {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	}
	return out
}

// fieldString renders a document field for comparison. JSON numbers decode
// as float64, so %v keeps "3" and 3 distinct from "3.5" without special
// casing every scalar type.
func fieldString(rec record.Record, field string) string {
	val, ok := rec.Fields[field]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%v", val)
}
