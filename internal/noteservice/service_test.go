package noteservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dverbeek/chirp/internal/apperr"
	"github.com/dverbeek/chirp/internal/testutil"
)

func TestCreateNoteValidation(t *testing.T) {
	svc := NewService(testutil.TestStore(t))
	ctx := context.Background()

	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{"empty text", "", apperr.ErrTextRequired},
		{"over limit", strings.Repeat("a", MaxTextLength+1), apperr.ErrTextTooLong},
		{"at limit", strings.Repeat("a", MaxTextLength), nil},
		{"multibyte at limit", strings.Repeat("ü", MaxTextLength), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateNote(ctx, tt.text, nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateNoteRejectedInputPersistsNothing(t *testing.T) {
	svc := NewService(testutil.TestStore(t))
	ctx := context.Background()

	_, err := svc.CreateNote(ctx, "", nil)
	require.ErrorIs(t, err, apperr.ErrTextRequired)

	notes, err := svc.ListNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestCreateReplyParentMustExist(t *testing.T) {
	svc := NewService(testutil.TestStore(t))
	ctx := context.Background()

	missing := int64(77)
	_, err := svc.CreateNote(ctx, "orphan", &missing)
	assert.ErrorIs(t, err, apperr.ErrParentNotFound)
}

func TestCreateReplyNestingIsOneLevel(t *testing.T) {
	svc := NewService(testutil.TestStore(t))
	ctx := context.Background()

	parent, err := svc.CreateNote(ctx, "top", nil)
	require.NoError(t, err)
	reply, err := svc.CreateNote(ctx, "first level", &parent.ID)
	require.NoError(t, err)

	_, err = svc.CreateNote(ctx, "second level", &reply.ID)
	assert.ErrorIs(t, err, apperr.ErrNestedReply)
}

func TestListNotesReturnsEmptySliceNotNil(t *testing.T) {
	svc := NewService(testutil.TestStore(t))

	notes, err := svc.ListNotes(context.Background())
	require.NoError(t, err)
	require.NotNil(t, notes, "empty store must serialize as [], not null")
	assert.Len(t, notes, 0)

	replies, err := svc.ListReplies(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, replies)
}

func TestDeleteNoteReportsCascadeCount(t *testing.T) {
	svc := NewService(testutil.TestStore(t))
	ctx := context.Background()

	parent, err := svc.CreateNote(ctx, "top", nil)
	require.NoError(t, err)
	_, err = svc.CreateNote(ctx, "r1", &parent.ID)
	require.NoError(t, err)
	_, err = svc.CreateNote(ctx, "r2", &parent.ID)
	require.NoError(t, err)

	res, err := svc.DeleteNote(ctx, parent.ID)
	require.NoError(t, err)
	assert.True(t, res.Deleted)
	assert.Equal(t, int64(3), res.Changes)

	// Repeating the delete is safe.
	res, err = svc.DeleteNote(ctx, parent.ID)
	require.NoError(t, err)
	assert.False(t, res.Deleted)
	assert.Equal(t, int64(0), res.Changes)
}

func TestStorageErrorsPropagate(t *testing.T) {
	boom := errors.New("disk on fire")
	svc := NewService(&testutil.FailingStore{Err: boom})
	ctx := context.Background()

	_, err := svc.ListNotes(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = svc.ListReplies(ctx, 1)
	assert.ErrorIs(t, err, boom)

	_, err = svc.CreateNote(ctx, "hello", nil)
	assert.ErrorIs(t, err, boom)

	// A parent lookup failure that is not "not found" surfaces too,
	// rather than being mistaken for a missing parent.
	pid := int64(1)
	_, err = svc.CreateNote(ctx, "reply", &pid)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, apperr.ErrParentNotFound)

	_, err = svc.DeleteNote(ctx, 1)
	assert.ErrorIs(t, err, boom)
}
