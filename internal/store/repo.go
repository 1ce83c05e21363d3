package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dverbeek/chirp/internal/apperr"
	"github.com/dverbeek/chirp/internal/models"
)

const noteColumns = `id, text, parent_id, created_at`

// ListTopLevel returns all notes without a parent, newest first.
// An empty store yields an empty slice, not an error.
func (db *DB) ListTopLevel(ctx context.Context) ([]models.Note, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT `+noteColumns+` FROM notes
		WHERE parent_id IS NULL
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: list top-level: %w", err)
	}
	defer rows.Close()
	return scanNotes(rows)
}

// ListReplies returns all notes whose parent_id equals parentID, oldest
// first. An unknown parentID yields an empty slice; the store does not
// distinguish "no replies" from "no such parent".
func (db *DB) ListReplies(ctx context.Context, parentID int64) ([]models.Note, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT `+noteColumns+` FROM notes
		WHERE parent_id = ?
		ORDER BY created_at ASC, id ASC`, parentID)
	if err != nil {
		return nil, fmt.Errorf("store: list replies: %w", err)
	}
	defer rows.Close()
	return scanNotes(rows)
}

// Get returns the note with the given id, or apperr.ErrNotFound.
func (db *DB) Get(ctx context.Context, id int64) (*models.Note, error) {
	row := db.conn.QueryRowContext(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = ?`, id)
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: get note %d: %w", id, err)
	}
	return n, nil
}

// Create inserts a note and returns the stored record. Timestamps are
// assigned here rather than by the SQLite default so that sub-second
// creation order survives into the created_at ordering.
func (db *DB) Create(ctx context.Context, text string, parentID *int64) (*models.Note, error) {
	res, err := db.conn.ExecContext(ctx, `
		INSERT INTO notes (text, parent_id, created_at) VALUES (?, ?, ?)`,
		text, parentID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("store: insert note: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("store: last insert id: %w", err)
	}
	return db.Get(ctx, id)
}

// Delete removes the note with the given id together with all of its
// direct replies, in a single transaction, and returns the total number
// of rows removed. A missing id is not an error: it returns 0.
func (db *DB) Delete(ctx context.Context, id int64) (int64, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	replies, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE parent_id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("store: delete replies: %w", err)
	}
	note, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("store: delete note: %w", err)
	}

	replyCount, err := replies.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("store: replies affected: %w", err)
	}
	noteCount, err := note.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("store: note affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("store: commit delete: %w", err)
	}
	return replyCount + noteCount, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(r rowScanner) (*models.Note, error) {
	var (
		n      models.Note
		parent sql.NullInt64
	)
	if err := r.Scan(&n.ID, &n.Text, &parent, &n.CreatedAt); err != nil {
		return nil, err
	}
	if parent.Valid {
		n.ParentID = &parent.Int64
	}
	return &n, nil
}

func scanNotes(rows *sql.Rows) ([]models.Note, error) {
	var out []models.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("store: scan note: %w", err)
		}
		out = append(out, *n)
	}
	return out, rows.Err()
}
