package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubecoord"
)

// TableRecord describes a stored move table without its data.
type TableRecord struct {
	Name      string
	BuildID   string
	ByteLen   int
	CreatedAt time.Time
}

// TableRepository stores encoded move tables, one row per key.
// It implements cubecoord.TableStore.
type TableRepository struct {
	db *DB
}

// NewTableRepository creates a new table repository.
func NewTableRepository(db *DB) *TableRepository {
	return &TableRepository{db: db}
}

var _ cubecoord.TableStore = (*TableRepository)(nil)

// Load returns the stored data for key.
func (r *TableRepository) Load(key string) ([]byte, error) {
	var data []byte
	err := r.db.QueryRow("SELECT data FROM move_tables WHERE name = ?", key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", cubecoord.ErrCacheMiss, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load table %s: %w", key, err)
	}
	return data, nil
}

// Save replaces the data stored under key inside a single transaction.
func (r *TableRepository) Save(key string, data []byte) error {
	buildID := uuid.New().String()
	createdAt := time.Now().UTC().Format(time.RFC3339)

	return r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO move_tables (name, build_id, byte_len, data, created_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				build_id = excluded.build_id,
				byte_len = excluded.byte_len,
				data = excluded.data,
				created_at = excluded.created_at
		`, key, buildID, len(data), data, createdAt)
		if err != nil {
			return fmt.Errorf("failed to save table %s: %w", key, err)
		}
		return nil
	})
}

// Delete removes the table stored under key. Deleting a missing key is not
// an error.
func (r *TableRepository) Delete(key string) error {
	if _, err := r.db.Exec("DELETE FROM move_tables WHERE name = ?", key); err != nil {
		return fmt.Errorf("failed to delete table %s: %w", key, err)
	}
	return nil
}

// Get returns the metadata of the table stored under key, or nil.
func (r *TableRepository) Get(key string) (*TableRecord, error) {
	row := r.db.QueryRow(`
		SELECT name, build_id, byte_len, created_at
		FROM move_tables
		WHERE name = ?
	`, key)

	rec, err := scanTableRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get table %s: %w", key, err)
	}
	return rec, nil
}

// List returns the metadata of every stored table ordered by name.
func (r *TableRepository) List() ([]TableRecord, error) {
	rows, err := r.db.Query(`
		SELECT name, build_id, byte_len, created_at
		FROM move_tables
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var records []TableRecord
	for rows.Next() {
		rec, err := scanTableRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan table: %w", err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTableRecord(s scanner) (*TableRecord, error) {
	var rec TableRecord
	var createdAt string
	if err := s.Scan(&rec.Name, &rec.BuildID, &rec.ByteLen, &createdAt); err != nil {
		return nil, err
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &rec, nil
}
