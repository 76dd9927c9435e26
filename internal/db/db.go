// Package db provides PostgreSQL persistence for resume snapshots.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/resume-builder/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping checks the connection is still usable
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// SnapshotRecord is a stored snapshot with its metadata
type SnapshotRecord struct {
	ID        uuid.UUID      `json:"id"`
	Snapshot  types.Snapshot `json:"snapshot"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Save upserts the snapshot stored under id
func (db *DB) Save(ctx context.Context, id uuid.UUID, snap types.Snapshot) error {
	document, order, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resume_snapshots (id, document, section_order, updated_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (id) DO UPDATE SET document = $2, section_order = $3, updated_at = NOW()`,
		id, document, order,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", id, err)
	}
	return nil
}

// Load returns the snapshot stored under id, or nil when there is none
func (db *DB) Load(ctx context.Context, id uuid.UUID) (*types.Snapshot, error) {
	record, err := db.Get(ctx, id)
	if err != nil || record == nil {
		return nil, err
	}
	return &record.Snapshot, nil
}

// Get returns the full record stored under id, or nil when there is none
func (db *DB) Get(ctx context.Context, id uuid.UUID) (*SnapshotRecord, error) {
	var document, order []byte
	record := SnapshotRecord{ID: id}
	err := db.pool.QueryRow(ctx,
		`SELECT document, section_order, updated_at FROM resume_snapshots WHERE id = $1`,
		id,
	).Scan(&document, &order, &record.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot %s: %w", id, err)
	}

	record.Snapshot, err = decodeSnapshot(document, order)
	if err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", id, err)
	}
	return &record, nil
}

// List returns stored snapshots, most recently updated first
func (db *DB) List(ctx context.Context, limit int) ([]SnapshotRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, document, section_order, updated_at
		 FROM resume_snapshots ORDER BY updated_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var records []SnapshotRecord
	for rows.Next() {
		var record SnapshotRecord
		var document, order []byte
		if err := rows.Scan(&record.ID, &document, &order, &record.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		if record.Snapshot, err = decodeSnapshot(document, order); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot %s: %w", record.ID, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshots: %w", err)
	}
	return records, nil
}

// Delete removes the snapshot stored under id. Deleting a missing id is not an error.
func (db *DB) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM resume_snapshots WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", id, err)
	}
	return nil
}

func encodeSnapshot(snap types.Snapshot) (document, order []byte, err error) {
	document, err = json.Marshal(snap.Document)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	sectionOrder := snap.SectionOrder
	if sectionOrder == nil {
		sectionOrder = types.SectionOrder{}
	}
	order, err = json.Marshal(sectionOrder)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal section order: %w", err)
	}
	return document, order, nil
}

func decodeSnapshot(document, order []byte) (types.Snapshot, error) {
	var snap types.Snapshot
	if err := json.Unmarshal(document, &snap.Document); err != nil {
		return types.Snapshot{}, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	if err := json.Unmarshal(order, &snap.SectionOrder); err != nil {
		return types.Snapshot{}, fmt.Errorf("failed to unmarshal section order: %w", err)
	}
	return snap, nil
}
