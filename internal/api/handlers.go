package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dverbeek/chirp/internal/apperr"
	"github.com/dverbeek/chirp/internal/noteservice"
)

// Handler holds API route handlers.
type Handler struct {
	svc *noteservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *noteservice.Service) *Handler {
	return &Handler{svc: svc}
}

// noteID extracts and parses the {id} path parameter.
func noteID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// ListNotes handles GET /api/notes.
//
//	@Summary		List top-level notes, newest first
//	@Tags			notes
//	@Produce		json
//	@Success		200	{array}		Note
//	@Failure		500	{object}	errResponse
//	@Router			/notes [get]
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.ListNotes(r.Context())
	if err != nil {
		slog.Error("list notes failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

// ListReplies handles GET /api/notes/{id}/replies.
//
// An id with no replies and an id that never existed both return an
// empty array; absence is never a 404 here.
//
//	@Summary		List replies to a note, oldest first
//	@Tags			notes
//	@Produce		json
//	@Param			id	path		int	true	"Parent note id"
//	@Success		200	{array}		Note
//	@Failure		400	{object}	errResponse
//	@Failure		500	{object}	errResponse
//	@Router			/notes/{id}/replies [get]
func (h *Handler) ListReplies(w http.ResponseWriter, r *http.Request) {
	id, err := noteID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid note id")
		return
	}
	notes, err := h.svc.ListReplies(r.Context(), id)
	if err != nil {
		slog.Error("list replies failed", slog.Int64("id", id), slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

// CreateNote handles POST /api/notes.
//
//	@Summary		Create a note or a reply
//	@Tags			notes
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateNoteRequest	true	"Note to create"
//	@Success		201		{object}	Note
//	@Failure		400		{object}	errResponse
//	@Failure		500		{object}	errResponse
//	@Router			/notes [post]
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	note, err := h.svc.CreateNote(r.Context(), req.Text, req.ParentID)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrTextRequired):
			writeError(w, http.StatusBadRequest, "Text is required")
		case errors.Is(err, apperr.ErrTextTooLong):
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("Text must be at most %d characters", noteservice.MaxTextLength))
		case errors.Is(err, apperr.ErrParentNotFound):
			writeError(w, http.StatusBadRequest, "Parent note not found")
		case errors.Is(err, apperr.ErrNestedReply):
			writeError(w, http.StatusBadRequest, "Replies cannot be nested")
		default:
			slog.Error("create note failed", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

// DeleteNote handles DELETE /api/notes/{id}.
//
// The note's replies are removed together with the note; changes counts
// every removed row. Repeating a delete is safe and reports changes=0.
//
//	@Summary		Delete a note and its replies
//	@Tags			notes
//	@Produce		json
//	@Param			id	path		int	true	"Note id"
//	@Success		200	{object}	DeleteNoteResponse
//	@Failure		400	{object}	errResponse
//	@Failure		500	{object}	errResponse
//	@Router			/notes/{id} [delete]
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid note id")
		return
	}
	res, err := h.svc.DeleteNote(r.Context(), id)
	if err != nil {
		slog.Error("delete note failed", slog.Int64("id", id), slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, DeleteNoteResponse{
		Message: "Note deleted",
		Changes: res.Changes,
	})
}
