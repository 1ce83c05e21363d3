package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/dverbeek/chirp/internal/noteservice"
)

// NewRouter creates a chi router with all API routes mounted.
func NewRouter(svc *noteservice.Service) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()

	r.Get("/notes", h.ListNotes)
	r.Post("/notes", h.CreateNote)
	r.Get("/notes/{id}/replies", h.ListReplies)
	r.Delete("/notes/{id}", h.DeleteNote)

	return r
}
