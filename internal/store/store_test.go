package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/eventure-app/eventure/backend/internal/model/record"
)

// runStoreSuite exercises the Store contract shared by both backends.
func runStoreSuite(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	first, err := s.Create(ctx, "events", record.Record{
		OwnerID: "user-1",
		Fields:  map[string]any{"name": "Spring Gala", "status": "draft"},
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if first.ID == "" || first.CreatedAt.IsZero() {
		t.Fatalf("Create did not assign id/timestamps: %+v", first)
	}

	second, err := s.Create(ctx, "events", record.Record{
		OwnerID: "user-2",
		Fields:  map[string]any{"name": "Autumn Expo", "status": "open"},
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}

	got, err := s.Get(ctx, "events", first.ID)
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if got.Fields["name"] != "Spring Gala" || got.OwnerID != "user-1" {
		t.Fatalf("unexpected record: %+v", got)
	}

	if _, err := s.Get(ctx, "events", "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// collections are isolated
	if _, err := s.Get(ctx, "vendors", first.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound across collections, got %v", err)
	}

	all, err := s.List(ctx, "events", record.Query{})
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
	// default ordering is by creation time
	if all[0].ID != first.ID {
		t.Fatalf("expected creation order, got %s first", all[0].ID)
	}

	open, err := s.List(ctx, "events", record.Query{Field: "status", Value: "open"})
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(open) != 1 || open[0].ID != second.ID {
		t.Fatalf("equality filter failed: %+v", open)
	}

	byName, err := s.List(ctx, "events", record.Query{OrderBy: "name"})
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if byName[0].Fields["name"] != "Autumn Expo" {
		t.Fatalf("orderBy failed: %+v", byName)
	}

	updated, err := s.Update(ctx, "events", first.ID, map[string]any{"status": "open", "capacity": 120})
	if err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if updated.Fields["status"] != "open" || updated.Fields["name"] != "Spring Gala" {
		t.Fatalf("Update did not merge fields: %+v", updated.Fields)
	}

	if _, err := s.Update(ctx, "events", "missing", nil); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.Delete(ctx, "events", second.ID); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if err := s.Delete(ctx, "events", second.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}

	remaining, err := s.List(ctx, "events", record.Query{})
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("expected 1 record after delete, got %d", len(remaining))
	}
}

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite err: %v", err)
	}
	defer s.Close()

	runStoreSuite(t, s)
}
