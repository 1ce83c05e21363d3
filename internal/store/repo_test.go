package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dverbeek/chirp/internal/apperr"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	f, err := os.CreateTemp("", "chirp-store-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := Open(f.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	start := time.Now().UTC().Add(-time.Second)

	first, err := db.Create(ctx, "first", nil)
	require.NoError(t, err)
	second, err := db.Create(ctx, "second", nil)
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID)
	assert.Nil(t, first.ParentID)
	assert.Equal(t, "first", first.Text)
	assert.False(t, first.CreatedAt.Before(start), "created_at should be stamped at insertion")
}

func TestIDsAreNeverReused(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	n, err := db.Create(ctx, "short-lived", nil)
	require.NoError(t, err)

	_, err = db.Delete(ctx, n.ID)
	require.NoError(t, err)

	next, err := db.Create(ctx, "successor", nil)
	require.NoError(t, err)
	assert.Greater(t, next.ID, n.ID, "AUTOINCREMENT must not reassign a deleted id")
}

func TestListTopLevelEmptyStore(t *testing.T) {
	db := testDB(t)

	notes, err := db.ListTopLevel(context.Background())
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestListTopLevelNewestFirst(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	for _, text := range []string{"oldest", "middle", "newest"} {
		_, err := db.Create(ctx, text, nil)
		require.NoError(t, err)
	}

	notes, err := db.ListTopLevel(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "newest", notes[0].Text)
	assert.Equal(t, "middle", notes[1].Text)
	assert.Equal(t, "oldest", notes[2].Text)
}

func TestListTopLevelExcludesReplies(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	parent, err := db.Create(ctx, "parent", nil)
	require.NoError(t, err)
	_, err = db.Create(ctx, "reply", &parent.ID)
	require.NoError(t, err)

	notes, err := db.ListTopLevel(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, parent.ID, notes[0].ID)
}

func TestListRepliesOldestFirst(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	parent, err := db.Create(ctx, "parent", nil)
	require.NoError(t, err)
	r1, err := db.Create(ctx, "first reply", &parent.ID)
	require.NoError(t, err)
	r2, err := db.Create(ctx, "second reply", &parent.ID)
	require.NoError(t, err)

	replies, err := db.ListReplies(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, r1.ID, replies[0].ID)
	assert.Equal(t, r2.ID, replies[1].ID)
	require.NotNil(t, replies[0].ParentID)
	assert.Equal(t, parent.ID, *replies[0].ParentID)
}

func TestListRepliesUnknownParent(t *testing.T) {
	db := testDB(t)

	replies, err := db.ListReplies(context.Background(), 9999)
	require.NoError(t, err, "unknown parent is not an error")
	assert.Empty(t, replies)
}

func TestDeleteCascadesToReplies(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	parent, err := db.Create(ctx, "parent", nil)
	require.NoError(t, err)
	_, err = db.Create(ctx, "reply one", &parent.ID)
	require.NoError(t, err)
	_, err = db.Create(ctx, "reply two", &parent.ID)
	require.NoError(t, err)

	changes, err := db.Delete(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), changes, "note plus both replies")

	replies, err := db.ListReplies(ctx, parent.ID)
	require.NoError(t, err)
	assert.Empty(t, replies)

	notes, err := db.ListTopLevel(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestDeleteNonexistentIsNotAnError(t *testing.T) {
	db := testDB(t)

	changes, err := db.Delete(context.Background(), 12345)
	require.NoError(t, err)
	assert.Equal(t, int64(0), changes)
}

func TestDeleteLeavesSiblingsAlone(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	keep, err := db.Create(ctx, "keep me", nil)
	require.NoError(t, err)
	drop, err := db.Create(ctx, "drop me", nil)
	require.NoError(t, err)

	changes, err := db.Delete(ctx, drop.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)

	notes, err := db.ListTopLevel(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, keep.ID, notes[0].ID)
}

func TestGetNotFound(t *testing.T) {
	db := testDB(t)

	_, err := db.Get(context.Background(), 404)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
