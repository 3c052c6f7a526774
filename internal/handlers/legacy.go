package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"notes-api/internal/service"
	"notes-api/internal/storage"
)

// LegacyHandler serves the unauthenticated routes that address notes by id alone.
// They perform no ownership checks and are mounted only when explicitly enabled.
type LegacyHandler struct {
	notes    service.NotesService
	unscoped service.UnscopedNotesService
	accounts service.AccountService
}

// NewLegacyHandler creates a new LegacyHandler.
func NewLegacyHandler(notes service.NotesService, unscoped service.UnscopedNotesService, accounts service.AccountService) *LegacyHandler {
	return &LegacyHandler{notes: notes, unscoped: unscoped, accounts: accounts}
}

// LegacyCreateRequest names the owner in the body.
type LegacyCreateRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	IsPinned bool     `json:"isPinned"`
	UserID   string   `json:"userId"`
}

// NotesEnvelope is an unpaginated list of notes.
type NotesEnvelope struct {
	Error   bool           `json:"error"`
	Notes   []NoteResponse `json:"notes"`
	Message string         `json:"message"`
}

// UsersEnvelope lists accounts.
type UsersEnvelope struct {
	Error bool           `json:"error"`
	Users []UserResponse `json:"users"`
}

// Create handles POST /notes.
func (h *LegacyHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LegacyCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	note, err := h.notes.Create(ctx, req.UserID, service.CreateNoteInput{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Note")
		return
	}

	writeJSON(w, ctx, http.StatusCreated, NoteEnvelope{Note: toNoteResponse(note), Message: "Note created successfully"})
}

// List handles GET /notes.
func (h *LegacyHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	all, err := h.notes.ListAll(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Notes")
		return
	}

	notes := make([]storage.Note, 0, len(all))
	for _, n := range all {
		notes = append(notes, n.Note)
	}

	writeJSON(w, ctx, http.StatusOK, NotesEnvelope{Notes: toNoteResponses(notes), Message: "All notes retrieved successfully"})
}

// Get handles GET /notes/{id}.
func (h *LegacyHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	note, err := h.unscoped.GetAny(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Note")
		return
	}

	writeJSON(w, ctx, http.StatusOK, NoteEnvelope{Note: toNoteResponse(note), Message: "Note retrieved successfully"})
}

// Replace handles PUT /notes/{id}.
func (h *LegacyHandler) Replace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	note, err := h.unscoped.Replace(ctx, chi.URLParam(r, "id"), service.CreateNoteInput{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Note")
		return
	}

	writeJSON(w, ctx, http.StatusOK, NoteEnvelope{Note: toNoteResponse(note), Message: "Note updated successfully"})
}

// SetTags handles PATCH /notes/{id}/tags.
func (h *LegacyHandler) SetTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TagsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	note, err := h.unscoped.SetTagsAny(ctx, chi.URLParam(r, "id"), req.Tags)
	if err != nil {
		handleServiceError(w, ctx, err, "Note")
		return
	}

	writeJSON(w, ctx, http.StatusOK, NoteEnvelope{Note: toNoteResponse(note), Message: "Tags updated successfully"})
}

// TogglePin handles PATCH /notes/{id}/pin.
func (h *LegacyHandler) TogglePin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	note, err := h.unscoped.TogglePinAny(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Note")
		return
	}

	writeJSON(w, ctx, http.StatusOK, NoteEnvelope{Note: toNoteResponse(note), Message: "Note pin status toggled"})
}

// Delete handles DELETE /notes/{id}.
func (h *LegacyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.unscoped.DeleteAny(ctx, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, ctx, err, "Note")
		return
	}

	writeJSON(w, ctx, http.StatusOK, MessageEnvelope{Message: "Note deleted successfully"})
}

// ListUsers handles GET /users.
func (h *LegacyHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.accounts.ListUsers(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Users")
		return
	}

	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	writeJSON(w, ctx, http.StatusOK, UsersEnvelope{Users: out})
}

// ListUserNotes handles GET /users/{id}/notes.
func (h *LegacyHandler) ListUserNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	notes, err := h.unscoped.ListByOwner(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Notes")
		return
	}

	writeJSON(w, ctx, http.StatusOK, NotesEnvelope{Notes: toNoteResponses(notes), Message: "Notes retrieved successfully"})
}
