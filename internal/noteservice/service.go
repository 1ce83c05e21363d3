// Package noteservice implements the validation and policy layer
// between the HTTP API and the note store.
package noteservice

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/dverbeek/chirp/internal/apperr"
	"github.com/dverbeek/chirp/internal/models"
	"github.com/dverbeek/chirp/internal/store"
)

// MaxTextLength is the maximum note length in runes, matching the
// character counter in the browser client.
const MaxTextLength = 280

// Service coordinates note operations against the store.
type Service struct {
	store store.NoteStore
}

// NewService creates a new note service.
func NewService(st store.NoteStore) *Service {
	return &Service{store: st}
}

// ListNotes returns all top-level notes, newest first.
func (s *Service) ListNotes(ctx context.Context) ([]models.Note, error) {
	notes, err := s.store.ListTopLevel(ctx)
	if err != nil {
		return nil, err
	}
	return nonNilSlice(notes), nil
}

// ListReplies returns the replies to the given note, oldest first.
// An unknown parent id yields an empty slice, never an error.
func (s *Service) ListReplies(ctx context.Context, parentID int64) ([]models.Note, error) {
	notes, err := s.store.ListReplies(ctx, parentID)
	if err != nil {
		return nil, err
	}
	return nonNilSlice(notes), nil
}

// CreateNote validates and persists a new note or reply.
//
// Rejected inputs: empty text (apperr.ErrTextRequired), text longer
// than MaxTextLength runes (apperr.ErrTextTooLong), a parent id that
// does not exist (apperr.ErrParentNotFound), and a parent that is
// itself a reply (apperr.ErrNestedReply) — threads are one level deep.
func (s *Service) CreateNote(ctx context.Context, text string, parentID *int64) (*models.Note, error) {
	if text == "" {
		return nil, apperr.ErrTextRequired
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return nil, apperr.ErrTextTooLong
	}
	if parentID != nil {
		parent, err := s.store.Get(ctx, *parentID)
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrParentNotFound
		}
		if err != nil {
			return nil, err
		}
		if parent.IsReply() {
			return nil, apperr.ErrNestedReply
		}
	}
	return s.store.Create(ctx, text, parentID)
}

// DeleteNote removes a note and its replies. Deleting an id that does
// not exist succeeds with zero changes.
func (s *Service) DeleteNote(ctx context.Context, id int64) (*models.DeleteResult, error) {
	changes, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.DeleteResult{Deleted: changes > 0, Changes: changes}, nil
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
