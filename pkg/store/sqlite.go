package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// SQLite stores records in a single table of a SQLite database.
type SQLite struct {
	conn *sql.DB
}

var _ Store = (*SQLite)(nil)

// OpenSQLite opens (or creates) the database at path and applies the schema.
func OpenSQLite(path string) (*SQLite, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("store: sqlite path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("store: create db directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	// single writer
	conn.SetMaxOpenConns(1)

	db := &SQLite{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	return db, nil
}

func (db *SQLite) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS field_values (
			object_id TEXT NOT NULL,
			field_key TEXT NOT NULL,
			value TEXT NOT NULL DEFAULT '',
			revision TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			PRIMARY KEY (object_id, field_key)
		)`,
	}
	for _, m := range migrations {
		if _, err := db.conn.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection.
func (db *SQLite) Close() error {
	return db.conn.Close()
}

func (db *SQLite) Get(ctx context.Context, objectID, fieldKey string) (Record, error) {
	objectID, fieldKey, err := validateKey(objectID, fieldKey)
	if err != nil {
		return Record{}, err
	}
	row := db.conn.QueryRowContext(ctx,
		`SELECT object_id, field_key, value, revision, updated_at FROM field_values WHERE object_id = ? AND field_key = ?`,
		objectID, fieldKey)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s/%s", ErrNotFound, objectID, fieldKey)
	}
	if err != nil {
		return Record{}, fmt.Errorf("store: get %s/%s: %w", objectID, fieldKey, err)
	}
	return record, nil
}

func (db *SQLite) Put(ctx context.Context, objectID, fieldKey, value string) (Record, error) {
	objectID, fieldKey, err := validateKey(objectID, fieldKey)
	if err != nil {
		return Record{}, err
	}
	record := Record{
		ObjectID:  objectID,
		FieldKey:  fieldKey,
		Value:     value,
		Revision:  newRevision(),
		UpdatedAt: time.Now().UTC(),
	}
	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO field_values (object_id, field_key, value, revision, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(object_id, field_key) DO UPDATE SET
			value = excluded.value,
			revision = excluded.revision,
			updated_at = excluded.updated_at`,
		record.ObjectID, record.FieldKey, record.Value, record.Revision, record.UpdatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return Record{}, fmt.Errorf("store: put %s/%s: %w", objectID, fieldKey, err)
	}
	return record, nil
}

func (db *SQLite) List(ctx context.Context, objectID string) ([]Record, error) {
	objectID = strings.TrimSpace(objectID)

	query := `SELECT object_id, field_key, value, revision, updated_at FROM field_values`
	var args []any
	if objectID != "" {
		query += ` WHERE object_id = ?`
		args = append(args, objectID)
	}
	query += ` ORDER BY object_id, field_key`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("store: list: %w", err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var (
		record  Record
		updated string
	)
	if err := row.Scan(&record.ObjectID, &record.FieldKey, &record.Value, &record.Revision, &updated); err != nil {
		return Record{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, updated)
	if err != nil {
		return Record{}, fmt.Errorf("parse updated_at: %w", err)
	}
	record.UpdatedAt = ts
	return record, nil
}
