package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"notes-api/internal/service"
)

// PublicHandler serves the unauthenticated read-only routes.
type PublicHandler struct {
	notes    service.NotesService
	accounts service.AccountService
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(notes service.NotesService, accounts service.AccountService) *PublicHandler {
	return &PublicHandler{notes: notes, accounts: accounts}
}

// PublicUser is the part of an account visible to anyone.
type PublicUser struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// PublicProfileEnvelope wraps a public profile.
type PublicProfileEnvelope struct {
	Error bool       `json:"error"`
	User  PublicUser `json:"user"`
}

// NoteWithAuthorResponse is a note with its author's display fields.
type NoteWithAuthorResponse struct {
	NoteResponse
	Author PublicUser `json:"author"`
}

// NotesWithAuthorsEnvelope lists every note with its author.
type NotesWithAuthorsEnvelope struct {
	Error   bool                     `json:"error"`
	Notes   []NoteWithAuthorResponse `json:"notes"`
	Message string                   `json:"message"`
}

// PublicNotes handles GET /public-notes/{userId}.
func (h *PublicHandler) PublicNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, limit := pageParams(r)

	result, err := h.notes.ListPublic(ctx, chi.URLParam(r, "userId"), page, limit)
	if err != nil {
		handleServiceError(w, ctx, err, "Notes")
		return
	}

	writeJSON(w, ctx, http.StatusOK, newNotesPage(result, "Public notes retrieved successfully"))
}

// PublicProfile handles GET /public-profile/{userId}.
func (h *PublicHandler) PublicProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.accounts.PublicProfile(ctx, chi.URLParam(r, "userId"))
	if err != nil {
		handleServiceError(w, ctx, err, "User")
		return
	}

	writeJSON(w, ctx, http.StatusOK, PublicProfileEnvelope{User: PublicUser{FullName: user.FullName, Email: user.Email}})
}

// NotesWithAuthors handles GET /notes-with-authors.
func (h *PublicHandler) NotesWithAuthors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	notes, err := h.notes.ListAll(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Notes")
		return
	}

	out := make([]NoteWithAuthorResponse, 0, len(notes))
	for i := range notes {
		out = append(out, NoteWithAuthorResponse{
			NoteResponse: toNoteResponse(&notes[i].Note),
			Author:       PublicUser{FullName: notes[i].AuthorName, Email: notes[i].AuthorEmail},
		})
	}

	writeJSON(w, ctx, http.StatusOK, NotesWithAuthorsEnvelope{Notes: out, Message: "All notes retrieved successfully"})
}

// formatDate renders a timestamp for HTML pages.
func formatDate(t time.Time) string {
	return t.UTC().Format("Jan 2, 2006")
}
