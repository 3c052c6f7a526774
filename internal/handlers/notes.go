package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"notes-api/internal/contextutil"
	"notes-api/internal/service"
	"notes-api/internal/storage"
)

// NotesHandler serves the owner-scoped note routes.
type NotesHandler struct {
	notes service.NotesService
}

// NewNotesHandler creates a new NotesHandler.
func NewNotesHandler(notes service.NotesService) *NotesHandler {
	return &NotesHandler{notes: notes}
}

// CreateNoteRequest is the body of POST /add-note.
type CreateNoteRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	IsPinned bool     `json:"isPinned"`
	IsPublic bool     `json:"isPublic"`
}

// EditNoteRequest is a merge-patch: absent fields stay unchanged.
type EditNoteRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Tags     *[]string `json:"tags"`
	IsPinned *bool     `json:"isPinned"`
	IsPublic *bool     `json:"isPublic"`
}

// PinRequest sets the pinned flag. A missing flag toggles it.
type PinRequest struct {
	IsPinned *bool `json:"isPinned"`
}

// TagsRequest replaces the tags of a note.
type TagsRequest struct {
	Tags []string `json:"tags"`
}

// VisibilityRequest makes a note public or private.
type VisibilityRequest struct {
	IsPublic *bool `json:"isPublic"`
}

// NoteEnvelope wraps a single note.
type NoteEnvelope struct {
	Error   bool         `json:"error"`
	Note    NoteResponse `json:"note"`
	Message string       `json:"message"`
}

// MessageEnvelope is a payload-less success response.
type MessageEnvelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// NotesPageEnvelope is one page of notes.
type NotesPageEnvelope struct {
	Error      bool           `json:"error"`
	Notes      []NoteResponse `json:"notes"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	Total      int            `json:"total"`
	TotalPages int            `json:"totalPages"`
	Message    string         `json:"message"`
}

func newNotesPage(p *service.NotePage, message string) NotesPageEnvelope {
	return NotesPageEnvelope{
		Notes:      toNoteResponses(p.Notes),
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		Message:    message,
	}
}

// Create handles POST /add-note.
func (h *NotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	note, err := h.notes.Create(ctx, callerID(r), service.CreateNoteInput{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		IsPinned: req.IsPinned,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Note")
		return
	}

	writeJSON(w, ctx, http.StatusCreated, NoteEnvelope{Note: toNoteResponse(note), Message: "Note added successfully"})
}

// Edit handles PUT /edit-note/{noteId}.
func (h *NotesHandler) Edit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req EditNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	note, err := h.notes.Update(ctx, callerID(r), chi.URLParam(r, "noteId"), storage.NotePatch{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		IsPinned: req.IsPinned,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Note")
		return
	}

	writeJSON(w, ctx, http.StatusOK, NoteEnvelope{Note: toNoteResponse(note), Message: "Note updated successfully"})
}

// UpdatePinned handles PUT /update-note-pinned/{noteId}.
// An explicit isPinned sets the flag, an empty body toggles it.
func (h *NotesHandler) UpdatePinned(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	noteID := chi.URLParam(r, "noteId")

	var req PinRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	var (
		note *storage.Note
		err  error
	)
	if req.IsPinned != nil {
		note, err = h.notes.SetPinned(ctx, callerID(r), noteID, *req.IsPinned)
	} else {
		note, err = h.notes.TogglePin(ctx, callerID(r), noteID)
	}
	if err != nil {
		handleServiceError(w, ctx, err, "Note")
		return
	}

	writeJSON(w, ctx, http.StatusOK, NoteEnvelope{Note: toNoteResponse(note), Message: "Note pinned status updated successfully"})
}

// UpdateTags handles PUT /update-note-tags/{noteId}.
func (h *NotesHandler) UpdateTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TagsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.notes.SetTags(ctx, callerID(r), chi.URLParam(r, "noteId"), req.Tags); err != nil {
		handleServiceError(w, ctx, err, "Note")
		return
	}

	writeJSON(w, ctx, http.StatusOK, MessageEnvelope{Message: "Tags updated successfully"})
}

// SetVisibility handles PUT /notes/{noteId}/visibility.
func (h *NotesHandler) SetVisibility(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req VisibilityRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.IsPublic == nil {
		writeError(w, http.StatusBadRequest, "isPublic must be a boolean")
		return
	}

	note, err := h.notes.SetVisibility(ctx, callerID(r), chi.URLParam(r, "noteId"), *req.IsPublic)
	if err != nil {
		handleServiceError(w, ctx, err, "Note")
		return
	}

	msg := "Note is now private"
	if note.IsPublic {
		msg = "Note is now public"
	}
	writeJSON(w, ctx, http.StatusOK, NoteEnvelope{Note: toNoteResponse(note), Message: msg})
}

// Get handles GET /get-note/{noteId}.
func (h *NotesHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	note, err := h.notes.Get(ctx, callerID(r), chi.URLParam(r, "noteId"))
	if err != nil {
		handleServiceError(w, ctx, err, "Note")
		return
	}

	writeJSON(w, ctx, http.StatusOK, NoteEnvelope{Note: toNoteResponse(note), Message: "Note retrieved successfully"})
}

// Delete handles DELETE /delete-note/{noteId}.
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.notes.Delete(ctx, callerID(r), chi.URLParam(r, "noteId")); err != nil {
		handleServiceError(w, ctx, err, "Note")
		return
	}

	writeJSON(w, ctx, http.StatusOK, MessageEnvelope{Message: "Note deleted successfully"})
}

// List handles GET /get-all-notes?page&limit&q.
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, limit := pageParams(r)

	result, err := h.notes.ListOwn(ctx, callerID(r), service.ListQuery{
		Page:  page,
		Limit: limit,
		Query: r.URL.Query().Get("q"),
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Notes")
		return
	}

	writeJSON(w, ctx, http.StatusOK, newNotesPage(result, "All notes retrieved successfully"))
}

// Search handles GET /search-notes?query. The query is required.
func (h *NotesHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		logger.WarnContext(ctx, "search without query")
		writeError(w, http.StatusBadRequest, "Search query is required")
		return
	}

	page, limit := pageParams(r)
	result, err := h.notes.ListOwn(ctx, callerID(r), service.ListQuery{Page: page, Limit: limit, Query: query})
	if err != nil {
		handleServiceError(w, ctx, err, "Notes")
		return
	}

	writeJSON(w, ctx, http.StatusOK, newNotesPage(result, "Notes matching the search query retrieved successfully"))
}
