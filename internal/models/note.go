// Package models defines the domain types for Chirp.
package models

import "time"

// Note is a persisted text record, either top-level or a reply.
// ParentID is nil for top-level notes and references another note's
// ID for replies.
type Note struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	ParentID  *int64    `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
}

// IsReply reports whether the note references a parent.
func (n *Note) IsReply() bool {
	return n.ParentID != nil
}

// DeleteResult reports the outcome of a delete. Changes counts every
// removed row: the note itself plus any cascaded replies. Deleting an
// id that does not exist yields Deleted=false, Changes=0.
type DeleteResult struct {
	Deleted bool
	Changes int64
}
