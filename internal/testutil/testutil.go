// Package testutil provides shared test helpers for setting up note stores.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/dverbeek/chirp/internal/models"
	"github.com/dverbeek/chirp/internal/store"
)

// TestStore creates a temporary SQLite store that is automatically cleaned up.
func TestStore(t *testing.T) *store.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "chirp-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := store.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// FailingStore is a NoteStore stub whose every operation fails with Err,
// for exercising storage-error paths.
type FailingStore struct {
	Err error
}

var _ store.NoteStore = (*FailingStore)(nil)

func (f *FailingStore) ListTopLevel(context.Context) ([]models.Note, error) {
	return nil, f.Err
}

func (f *FailingStore) ListReplies(context.Context, int64) ([]models.Note, error) {
	return nil, f.Err
}

func (f *FailingStore) Get(context.Context, int64) (*models.Note, error) {
	return nil, f.Err
}

func (f *FailingStore) Create(context.Context, string, *int64) (*models.Note, error) {
	return nil, f.Err
}

func (f *FailingStore) Delete(context.Context, int64) (int64, error) {
	return 0, f.Err
}

func (f *FailingStore) Close() error { return nil }
