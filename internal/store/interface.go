package store

import (
	"context"

	"github.com/dverbeek/chirp/internal/models"
)

// NoteStore defines the persistence operations for notes.
// Consumers should depend on this interface rather than the concrete
// *DB type to facilitate testing with mocks.
type NoteStore interface {
	ListTopLevel(ctx context.Context) ([]models.Note, error)
	ListReplies(ctx context.Context, parentID int64) ([]models.Note, error)
	Get(ctx context.Context, id int64) (*models.Note, error)
	Create(ctx context.Context, text string, parentID *int64) (*models.Note, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Close() error
}

// Verify *DB satisfies NoteStore at compile time.
var _ NoteStore = (*DB)(nil)
