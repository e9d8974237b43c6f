// Package backup keeps a local, time-boxed copy of in-progress proposal
// drafts so a crashed or closed wizard session can be recovered. Records
// live in an embedded SQLite database next to the service.
package backup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// RetentionPeriod is how long a backup stays recoverable. Older records are
// purged lazily on the next access.
const RetentionPeriod = 24 * time.Hour

// ErrNotFound is returned when no live backup exists for a draft.
var ErrNotFound = errors.New("backup: not found")

// Record is one step-keyed draft backup.
type Record struct {
	DraftID uuid.UUID
	Step    string
	Payload []byte
	SavedAt time.Time
}

// Store persists draft backups in SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

const schema = `CREATE TABLE IF NOT EXISTS draft_backups (
	draft_id TEXT NOT NULL,
	step TEXT NOT NULL,
	payload BLOB NOT NULL,
	saved_at TEXT NOT NULL,
	PRIMARY KEY (draft_id, step)
)`

// Open opens (creating if needed) the backup database at path. Use ":memory:"
// for tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening backup database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating backup schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Save writes the backup for a draft step, replacing any previous record for
// the same (draft, step) pair.
func (s *Store) Save(ctx context.Context, draftID uuid.UUID, step string, payload []byte) error {
	query := `INSERT INTO draft_backups (draft_id, step, payload, saved_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (draft_id, step) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at`
	_, err := s.db.ExecContext(ctx, query,
		draftID.String(),
		step,
		payload,
		s.now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving draft backup: %w", err)
	}
	return nil
}

// Latest returns the most recent live backup for a draft. Expired records are
// purged first; ErrNotFound means nothing recoverable remains.
func (s *Store) Latest(ctx context.Context, draftID uuid.UUID) (*Record, error) {
	if err := s.purgeExpired(ctx); err != nil {
		return nil, err
	}

	query := `SELECT draft_id, step, payload, saved_at
		FROM draft_backups WHERE draft_id = ?
		ORDER BY saved_at DESC LIMIT 1`
	row := s.db.QueryRowContext(ctx, query, draftID.String())

	var (
		rec   Record
		rawID string
		rawAt string
	)
	if err := row.Scan(&rawID, &rec.Step, &rec.Payload, &rawAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading draft backup: %w", err)
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("parsing backup draft id: %w", err)
	}
	rec.DraftID = id

	savedAt, err := time.Parse(time.RFC3339, rawAt)
	if err != nil {
		return nil, fmt.Errorf("parsing backup timestamp: %w", err)
	}
	rec.SavedAt = savedAt

	return &rec, nil
}

// Delete removes every backup of a draft, typically after finalization.
func (s *Store) Delete(ctx context.Context, draftID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM draft_backups WHERE draft_id = ?`, draftID.String())
	if err != nil {
		return fmt.Errorf("deleting draft backups: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) purgeExpired(ctx context.Context) error {
	cutoff := s.now().UTC().Add(-RetentionPeriod).Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, `DELETE FROM draft_backups WHERE saved_at < ?`, cutoff)
	if err != nil {
		return fmt.Errorf("purging expired backups: %w", err)
	}
	return nil
}
