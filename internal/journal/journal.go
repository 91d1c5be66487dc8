// Package journal persists failed gateway calls to a local SQLite file.
// Remote failures never roll back the optimistic mirror; the journal is where
// they surface for human inspection and manual retry. It holds no entity
// state; durable planning data lives only behind the gateways.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Record is one failed gateway call. Payload keeps the JSON body that was
// (or would have been) sent, so the call can be re-issued as-is.
type Record struct {
	ID        int64
	Gateway   string
	Op        string
	Kind      string
	EntityID  string
	Payload   []byte
	Cause     string
	CreatedAt time.Time
}

// Recorder is the append-side interface the dispatcher and converter use.
type Recorder interface {
	Append(ctx context.Context, r *Record) error
}

// Noop discards records; used when no journal path is configured.
type Noop struct{}

func (Noop) Append(context.Context, *Record) error { return nil }

// Journal is a SQLite-backed Recorder with list/delete for the CLI.
type Journal struct {
	db *sql.DB
}

// Open opens (or creates) the journal database at path. ":memory:" is
// supported for tests. WAL mode is set and the schema applied.
func Open(path string) (*Journal, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening journal database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying journal schema: %w", err)
	}

	return &Journal{db: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS failed_calls (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    gateway    TEXT NOT NULL,
    op         TEXT NOT NULL,
    kind       TEXT NOT NULL,
    entity_id  TEXT NOT NULL,
    payload    BLOB,
    cause      TEXT NOT NULL,
    created_at TEXT NOT NULL
);
`

func (j *Journal) Close() error { return j.db.Close() }

func (j *Journal) Append(ctx context.Context, r *Record) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	res, err := j.db.ExecContext(ctx,
		`INSERT INTO failed_calls (gateway, op, kind, entity_id, payload, cause, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Gateway, r.Op, r.Kind, r.EntityID, r.Payload, r.Cause,
		r.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("appending journal record: %w", err)
	}
	r.ID, _ = res.LastInsertId()
	return nil
}

func (j *Journal) List(ctx context.Context) ([]*Record, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT id, gateway, op, kind, entity_id, payload, cause, created_at
		 FROM failed_calls ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing journal records: %w", err)
	}
	defer rows.Close()

	var out []*Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (j *Journal) Get(ctx context.Context, id int64) (*Record, error) {
	row := j.db.QueryRowContext(ctx,
		`SELECT id, gateway, op, kind, entity_id, payload, cause, created_at
		 FROM failed_calls WHERE id = ?`, id)
	r, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("journal record %d not found", id)
	}
	return r, err
}

func (j *Journal) Delete(ctx context.Context, id int64) error {
	_, err := j.db.ExecContext(ctx, `DELETE FROM failed_calls WHERE id = ?`, id)
	return err
}

func (j *Journal) Clear(ctx context.Context) error {
	_, err := j.db.ExecContext(ctx, `DELETE FROM failed_calls`)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*Record, error) {
	var r Record
	var createdAt string
	if err := s.Scan(&r.ID, &r.Gateway, &r.Op, &r.Kind, &r.EntityID, &r.Payload, &r.Cause, &createdAt); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing journal timestamp: %w", err)
	}
	r.CreatedAt = t
	return &r, nil
}
