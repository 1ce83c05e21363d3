package api

import "github.com/dverbeek/chirp/internal/models"

// Note is the wire representation of a note (aliased from the domain layer).
type Note = models.Note

// CreateNoteRequest is the request body for creating a note or reply.
// ParentID is null (or omitted) for a top-level note.
type CreateNoteRequest struct {
	Text     string `json:"text" example:"hello world"`
	ParentID *int64 `json:"parent_id" example:"1"`
}

// DeleteNoteResponse reports how many rows a delete removed: the note
// itself plus any cascaded replies. Deleting an id that never existed
// reports zero changes.
type DeleteNoteResponse struct {
	Message string `json:"message" example:"Note deleted"`
	Changes int64  `json:"changes" example:"2"`
}
