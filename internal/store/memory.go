package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eventure-app/eventure/backend/internal/model/record"
)

// MemoryStore keeps collections in process memory. It is the default
// backend and the one the test suite runs against.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]record.Record
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]record.Record)}
}

// Create inserts a record, assigning id and timestamps.
func (s *MemoryStore) Create(_ context.Context, collection string, rec record.Record) (record.Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	if rec.Fields == nil {
		rec.Fields = make(map[string]any)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]record.Record)
	}
	s.collections[collection][rec.ID] = rec
	return rec, nil
}

// Get returns a record by id.
func (s *MemoryStore) Get(_ context.Context, collection, id string) (record.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.collections[collection][id]
	if !ok {
		return record.Record{}, ErrNotFound
	}
	return rec, nil
}

// List returns the collection's records, filtered and ordered by q.
func (s *MemoryStore) List(_ context.Context, collection string, q record.Query) ([]record.Record, error) {
	s.mu.RLock()
	records := make([]record.Record, 0, len(s.collections[collection]))
	for _, rec := range s.collections[collection] {
		records = append(records, rec)
	}
	s.mu.RUnlock()

	return applyQuery(records, q), nil
}

// Update merges the supplied fields into an existing record.
func (s *MemoryStore) Update(_ context.Context, collection, id string, fields map[string]any) (record.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.collections[collection][id]
	if !ok {
		return record.Record{}, ErrNotFound
	}

	merged := make(map[string]any, len(rec.Fields)+len(fields))
	for k, v := range rec.Fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	rec.Fields = merged
	rec.UpdatedAt = time.Now().UTC()

	s.collections[collection][id] = rec
	return rec, nil
}

// Delete removes a record by id.
func (s *MemoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection][id]; !ok {
		return ErrNotFound
	}
	delete(s.collections[collection], id)
	return nil
}
