package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/eventure-app/eventure/backend/internal/model/record"
)

// Safe to run repeatedly; uses IF NOT EXISTS.
const schema = `
CREATE TABLE IF NOT EXISTS records (
    collection TEXT NOT NULL,
    id         TEXT NOT NULL,
    owner_id   TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    doc        TEXT NOT NULL,
    PRIMARY KEY (collection, id)
);

CREATE INDEX IF NOT EXISTS idx_records_collection ON records(collection);
`

// SQLiteStore persists collections in a single SQLite database. Documents
// are stored as JSON; filtering and ordering run on the decoded records so
// they share semantics with MemoryStore.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at dsn and ensures the
// schema exists.
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Create inserts a record, assigning id and timestamps.
func (s *SQLiteStore) Create(ctx context.Context, collection string, rec record.Record) (record.Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	if rec.Fields == nil {
		rec.Fields = make(map[string]any)
	}

	doc, err := json.Marshal(rec.Fields)
	if err != nil {
		return record.Record{}, fmt.Errorf("encode document: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records (collection, id, owner_id, created_at, updated_at, doc) VALUES (?, ?, ?, ?, ?, ?)`,
		collection, rec.ID, rec.OwnerID, rec.CreatedAt, rec.UpdatedAt, string(doc))
	if err != nil {
		return record.Record{}, fmt.Errorf("insert record: %w", err)
	}
	return rec, nil
}

// Get returns a record by id.
func (s *SQLiteStore) Get(ctx context.Context, collection, id string) (record.Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, owner_id, created_at, updated_at, doc FROM records WHERE collection = ? AND id = ?`,
		collection, id)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return record.Record{}, ErrNotFound
	}
	return rec, err
}

// List returns the collection's records, filtered and ordered by q.
func (s *SQLiteStore) List(ctx context.Context, collection string, q record.Query) ([]record.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, owner_id, created_at, updated_at, doc FROM records WHERE collection = ?`,
		collection)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []record.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	return applyQuery(records, q), nil
}

// Update merges the supplied fields into an existing record.
func (s *SQLiteStore) Update(ctx context.Context, collection, id string, fields map[string]any) (record.Record, error) {
	rec, err := s.Get(ctx, collection, id)
	if err != nil {
		return record.Record{}, err
	}

	for k, v := range fields {
		rec.Fields[k] = v
	}
	rec.UpdatedAt = time.Now().UTC()

	doc, err := json.Marshal(rec.Fields)
	if err != nil {
		return record.Record{}, fmt.Errorf("encode document: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE records SET doc = ?, updated_at = ? WHERE collection = ? AND id = ?`,
		string(doc), rec.UpdatedAt, collection, id)
	if err != nil {
		return record.Record{}, fmt.Errorf("update record: %w", err)
	}
	return rec, nil
}

// Delete removes a record by id.
func (s *SQLiteStore) Delete(ctx context.Context, collection, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM records WHERE collection = ? AND id = ?`, collection, id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (record.Record, error) {
	var rec record.Record
	var doc string
	if err := row.Scan(&rec.ID, &rec.OwnerID, &rec.CreatedAt, &rec.UpdatedAt, &doc); err != nil {
		return record.Record{}, err
	}
	if err := json.Unmarshal([]byte(doc), &rec.Fields); err != nil {
		return record.Record{}, fmt.Errorf("decode document: %w", err)
	}
	return rec, nil
}
