package client

import (
	"context"
	"log/slog"
)

// BestEffort degrades every gateway failure to a safe default: an empty
// slice for listings, nil for create and delete. Failures are logged,
// so "failed" and "empty" are indistinguishable to the caller on
// purpose, exactly as the browser client treats them.
type BestEffort struct {
	c   *Client
	log *slog.Logger
}

// NewBestEffort wraps a Client. A nil logger falls back to slog.Default.
func NewBestEffort(c *Client, log *slog.Logger) *BestEffort {
	if log == nil {
		log = slog.Default()
	}
	return &BestEffort{c: c, log: log}
}

// Notes returns all top-level notes, or an empty slice on any failure.
func (b *BestEffort) Notes(ctx context.Context) []Note {
	notes, err := b.c.Notes(ctx)
	if err != nil {
		b.log.Error("fetch notes failed", slog.String("error", err.Error()))
		return []Note{}
	}
	return notes
}

// Replies returns the replies to a note, or an empty slice on any failure.
func (b *BestEffort) Replies(ctx context.Context, noteID int64) []Note {
	replies, err := b.c.Replies(ctx, noteID)
	if err != nil {
		b.log.Error("fetch replies failed",
			slog.Int64("note_id", noteID), slog.String("error", err.Error()))
		return []Note{}
	}
	return replies
}

// Create posts a note and returns it, or nil on any failure.
func (b *BestEffort) Create(ctx context.Context, text string, parentID *int64) *Note {
	note, err := b.c.Create(ctx, text, parentID)
	if err != nil {
		b.log.Error("create note failed", slog.String("error", err.Error()))
		return nil
	}
	return note
}

// Delete removes a note and returns the result, or nil on any failure.
func (b *BestEffort) Delete(ctx context.Context, noteID int64) *DeleteResult {
	res, err := b.c.Delete(ctx, noteID)
	if err != nil {
		b.log.Error("delete note failed",
			slog.Int64("note_id", noteID), slog.String("error", err.Error()))
		return nil
	}
	return res
}
