package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_notes_service.go -package=mocks notes-api/internal/service NotesService,UnscopedNotesService
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_note_indexer.go -package=mocks notes-api/internal/service NoteIndexer

import (
	"context"
	"errors"
	"strings"

	"notes-api/internal/contextutil"
	"notes-api/internal/storage"
)

const (
	// DefaultPageLimit is used when a list request names no limit.
	DefaultPageLimit = 10
	// MaxPageLimit caps the page size of every list operation.
	MaxPageLimit = 100
)

// NoteIndexer keeps a search index in step with note writes.
// This interface is defined from the service layer's perspective (consumer-first).
type NoteIndexer interface {
	// IndexNote creates or refreshes the index entry of note.
	IndexNote(ctx context.Context, note storage.Note) error
	// RemoveNote drops the index entry of noteID.
	RemoveNote(ctx context.Context, noteID string) error
}

// CreateNoteInput carries the fields of a new note.
type CreateNoteInput struct {
	Title    string
	Content  string
	Tags     []string
	IsPinned bool
	IsPublic bool
}

// ListQuery selects one page of the caller's notes.
type ListQuery struct {
	Page  int
	Limit int
	// Query, when non-empty, filters by case-insensitive substring.
	Query string
}

// NotePage is one page of a paginated listing.
type NotePage struct {
	Notes      []storage.Note
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// NotesService is the owner-scoped notes access layer.
// A note that exists but belongs to someone else is reported as ErrNotFound.
type NotesService interface {
	Create(ctx context.Context, ownerID string, in CreateNoteInput) (*storage.Note, error)
	Get(ctx context.Context, ownerID, noteID string) (*storage.Note, error)
	// Update applies a merge-patch: only non-nil fields change.
	Update(ctx context.Context, ownerID, noteID string, patch storage.NotePatch) (*storage.Note, error)
	TogglePin(ctx context.Context, ownerID, noteID string) (*storage.Note, error)
	SetPinned(ctx context.Context, ownerID, noteID string, pinned bool) (*storage.Note, error)
	// SetTags replaces the tags wholesale. A nil slice is rejected.
	SetTags(ctx context.Context, ownerID, noteID string, tags []string) error
	SetVisibility(ctx context.Context, ownerID, noteID string, isPublic bool) (*storage.Note, error)
	Delete(ctx context.Context, ownerID, noteID string) error
	// ListOwn lists the caller's notes, pinned first then newest first.
	ListOwn(ctx context.Context, ownerID string, q ListQuery) (*NotePage, error)
	// GetPublic returns ownerID's note if it is public. No caller identity is needed.
	GetPublic(ctx context.Context, ownerID, noteID string) (*storage.Note, error)
	// ListPublic lists another user's public notes, newest first. No caller identity is needed.
	ListPublic(ctx context.Context, ownerID string, page, limit int) (*NotePage, error)
	// ListAll returns every note with its author. It performs no access control.
	ListAll(ctx context.Context) ([]storage.NoteWithAuthor, error)
}

// UnscopedNotesService backs the legacy routes that address notes by id alone.
type UnscopedNotesService interface {
	GetAny(ctx context.Context, noteID string) (*storage.Note, error)
	// Replace overwrites title, content, tags and pin state. Missing tags become empty.
	Replace(ctx context.Context, noteID string, in CreateNoteInput) (*storage.Note, error)
	SetTagsAny(ctx context.Context, noteID string, tags []string) (*storage.Note, error)
	TogglePinAny(ctx context.Context, noteID string) (*storage.Note, error)
	DeleteAny(ctx context.Context, noteID string) error
	ListByOwner(ctx context.Context, ownerID string) ([]storage.Note, error)
}

// notesService implements NotesService and UnscopedNotesService.
type notesService struct {
	store   storage.NoteStore
	indexer NoteIndexer
}

// NewNotesService creates the notes access layer over store.
// indexer may be nil when semantic search is disabled.
func NewNotesService(store storage.NoteStore, indexer NoteIndexer) NotesService {
	return &notesService{store: store, indexer: indexer}
}

// NewUnscopedNotesService creates the id-only notes layer over store.
func NewUnscopedNotesService(store storage.NoteStore, indexer NoteIndexer) UnscopedNotesService {
	return &notesService{store: store, indexer: indexer}
}

// Create validates and persists a new note owned by ownerID.
func (s *notesService) Create(ctx context.Context, ownerID string, in CreateNoteInput) (*storage.Note, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := validateNoteText(in.Title, in.Content); err != nil {
		logger.WarnContext(ctx, "invalid note", "error", err)
		return nil, err
	}
	if ownerID == "" {
		return nil, &ValidationError{Field: "userId", Message: "User ID is required"}
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	note := &storage.Note{
		Title:    in.Title,
		Content:  in.Content,
		Tags:     tags,
		IsPinned: in.IsPinned,
		IsPublic: in.IsPublic,
		OwnerID:  ownerID,
	}
	if err := s.store.Insert(ctx, note); err != nil {
		logger.ErrorContext(ctx, "failed to insert note", "error", err)
		return nil, fromStore(err, "failed to create note")
	}

	logger.InfoContext(ctx, "note created", "note_id", note.ID)
	s.index(ctx, *note)
	return note, nil
}

// Get returns the note if it belongs to ownerID.
func (s *notesService) Get(ctx context.Context, ownerID, noteID string) (*storage.Note, error) {
	if ownerID == "" {
		return nil, ErrUnauthorized
	}
	note, err := s.store.FindOne(ctx, storage.NoteFilter{ID: noteID, OwnerID: ownerID})
	if err != nil {
		return nil, fromStore(err, "failed to load note")
	}
	return note, nil
}

// Update applies patch to the caller's note.
func (s *notesService) Update(ctx context.Context, ownerID, noteID string, patch storage.NotePatch) (*storage.Note, error) {
	if ownerID == "" {
		return nil, ErrUnauthorized
	}
	if patch.IsEmpty() {
		return nil, &ValidationError{Field: "body", Message: "No changes provided"}
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}
	return s.write(ctx, storage.NoteFilter{ID: noteID, OwnerID: ownerID}, patch, "failed to update note")
}

// TogglePin flips the pinned flag of the caller's note.
func (s *notesService) TogglePin(ctx context.Context, ownerID, noteID string) (*storage.Note, error) {
	if ownerID == "" {
		return nil, ErrUnauthorized
	}
	return s.togglePin(ctx, storage.NoteFilter{ID: noteID, OwnerID: ownerID})
}

// SetPinned sets the pinned flag of the caller's note to pinned.
func (s *notesService) SetPinned(ctx context.Context, ownerID, noteID string, pinned bool) (*storage.Note, error) {
	if ownerID == "" {
		return nil, ErrUnauthorized
	}
	return s.write(ctx, storage.NoteFilter{ID: noteID, OwnerID: ownerID}, storage.NotePatch{IsPinned: &pinned}, "failed to pin note")
}

// SetTags replaces the tags of the caller's note.
func (s *notesService) SetTags(ctx context.Context, ownerID, noteID string, tags []string) error {
	if ownerID == "" {
		return ErrUnauthorized
	}
	if tags == nil {
		return &ValidationError{Field: "tags", Message: "Tags must be an array"}
	}
	_, err := s.write(ctx, storage.NoteFilter{ID: noteID, OwnerID: ownerID}, storage.NotePatch{Tags: &tags}, "failed to set tags")
	return err
}

// SetVisibility makes the caller's note public or private.
func (s *notesService) SetVisibility(ctx context.Context, ownerID, noteID string, isPublic bool) (*storage.Note, error) {
	if ownerID == "" {
		return nil, ErrUnauthorized
	}
	return s.write(ctx, storage.NoteFilter{ID: noteID, OwnerID: ownerID}, storage.NotePatch{IsPublic: &isPublic}, "failed to set visibility")
}

// Delete removes the caller's note.
func (s *notesService) Delete(ctx context.Context, ownerID, noteID string) error {
	if ownerID == "" {
		return ErrUnauthorized
	}
	return s.delete(ctx, storage.NoteFilter{ID: noteID, OwnerID: ownerID})
}

// ListOwn lists one page of the caller's notes.
func (s *notesService) ListOwn(ctx context.Context, ownerID string, q ListQuery) (*NotePage, error) {
	if ownerID == "" {
		return nil, ErrUnauthorized
	}
	filter := storage.NoteFilter{OwnerID: ownerID, Text: strings.TrimSpace(q.Query)}
	return s.page(ctx, filter, storage.SortPinnedNewest, q.Page, q.Limit)
}

// GetPublic returns a public note of ownerID.
func (s *notesService) GetPublic(ctx context.Context, ownerID, noteID string) (*storage.Note, error) {
	if ownerID == "" {
		return nil, &ValidationError{Field: "userId", Message: "User ID is required"}
	}
	public := true
	note, err := s.store.FindOne(ctx, storage.NoteFilter{ID: noteID, OwnerID: ownerID, Public: &public})
	if err != nil {
		return nil, fromStore(err, "failed to load note")
	}
	return note, nil
}

// ListPublic lists one page of ownerID's public notes.
func (s *notesService) ListPublic(ctx context.Context, ownerID string, page, limit int) (*NotePage, error) {
	if ownerID == "" {
		return nil, &ValidationError{Field: "userId", Message: "User ID is required"}
	}
	public := true
	return s.page(ctx, storage.NoteFilter{OwnerID: ownerID, Public: &public}, storage.SortNewest, page, limit)
}

// ListAll returns every note in the system joined with its author.
func (s *notesService) ListAll(ctx context.Context) ([]storage.NoteWithAuthor, error) {
	notes, err := s.store.ListWithAuthors(ctx)
	if err != nil {
		return nil, fromStore(err, "failed to list notes")
	}
	return notes, nil
}

// GetAny returns a note by id regardless of owner.
func (s *notesService) GetAny(ctx context.Context, noteID string) (*storage.Note, error) {
	note, err := s.store.FindOne(ctx, storage.NoteFilter{ID: noteID})
	if err != nil {
		return nil, fromStore(err, "failed to load note")
	}
	return note, nil
}

// Replace overwrites a note by id regardless of owner.
func (s *notesService) Replace(ctx context.Context, noteID string, in CreateNoteInput) (*storage.Note, error) {
	if err := validateNoteText(in.Title, in.Content); err != nil {
		return nil, err
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	patch := storage.NotePatch{
		Title:    &in.Title,
		Content:  &in.Content,
		Tags:     &tags,
		IsPinned: &in.IsPinned,
	}
	return s.write(ctx, storage.NoteFilter{ID: noteID}, patch, "failed to replace note")
}

// SetTagsAny replaces the tags of a note by id regardless of owner.
func (s *notesService) SetTagsAny(ctx context.Context, noteID string, tags []string) (*storage.Note, error) {
	if tags == nil {
		return nil, &ValidationError{Field: "tags", Message: "Tags must be an array"}
	}
	return s.write(ctx, storage.NoteFilter{ID: noteID}, storage.NotePatch{Tags: &tags}, "failed to set tags")
}

// TogglePinAny flips the pinned flag of a note by id regardless of owner.
func (s *notesService) TogglePinAny(ctx context.Context, noteID string) (*storage.Note, error) {
	return s.togglePin(ctx, storage.NoteFilter{ID: noteID})
}

// DeleteAny removes a note by id regardless of owner.
func (s *notesService) DeleteAny(ctx context.Context, noteID string) error {
	return s.delete(ctx, storage.NoteFilter{ID: noteID})
}

// ListByOwner returns every note of ownerID, newest first.
func (s *notesService) ListByOwner(ctx context.Context, ownerID string) ([]storage.Note, error) {
	if ownerID == "" {
		return nil, &ValidationError{Field: "userId", Message: "User ID is required"}
	}
	notes, _, err := s.store.FindMany(ctx, storage.NoteFilter{OwnerID: ownerID}, storage.FindOptions{Sort: storage.SortNewest})
	if err != nil {
		return nil, fromStore(err, "failed to list notes")
	}
	return notes, nil
}

func (s *notesService) write(ctx context.Context, filter storage.NoteFilter, patch storage.NotePatch, msg string) (*storage.Note, error) {
	logger := contextutil.LoggerFromContext(ctx)

	note, err := s.store.Update(ctx, filter, patch)
	if err != nil {
		err = fromStore(err, msg)
		if !errors.Is(err, ErrNotFound) {
			logger.ErrorContext(ctx, msg, "note_id", filter.ID, "error", err)
		}
		return nil, err
	}

	logger.InfoContext(ctx, "note updated", "note_id", note.ID)
	if patch.Title != nil || patch.Content != nil || patch.Tags != nil || patch.IsPublic != nil {
		s.index(ctx, *note)
	}
	return note, nil
}

func (s *notesService) togglePin(ctx context.Context, filter storage.NoteFilter) (*storage.Note, error) {
	note, err := s.store.TogglePin(ctx, filter)
	if err != nil {
		return nil, fromStore(err, "failed to toggle pin")
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "note pin toggled", "note_id", note.ID, "is_pinned", note.IsPinned)
	return note, nil
}

func (s *notesService) delete(ctx context.Context, filter storage.NoteFilter) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := s.store.Delete(ctx, filter); err != nil {
		return fromStore(err, "failed to delete note")
	}

	logger.InfoContext(ctx, "note deleted", "note_id", filter.ID)
	if s.indexer != nil {
		if err := s.indexer.RemoveNote(ctx, filter.ID); err != nil {
			logger.WarnContext(ctx, "failed to remove note from search index", "note_id", filter.ID, "error", err)
		}
	}
	return nil
}

func (s *notesService) page(ctx context.Context, filter storage.NoteFilter, sort storage.SortOrder, page, limit int) (*NotePage, error) {
	page, limit = NormalizePage(page, limit)

	notes, total, err := s.store.FindMany(ctx, filter, storage.FindOptions{
		Sort:  sort,
		Skip:  (page - 1) * limit,
		Limit: limit,
	})
	if err != nil {
		return nil, fromStore(err, "failed to list notes")
	}

	return &NotePage{
		Notes:      notes,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: TotalPages(total, limit),
	}, nil
}

// index pushes note to the search index. Failures are logged, not returned.
func (s *notesService) index(ctx context.Context, note storage.Note) {
	if s.indexer == nil {
		return
	}
	if err := s.indexer.IndexNote(ctx, note); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "failed to index note", "note_id", note.ID, "error", err)
	}
}

// NormalizePage floors page at 1 and clamps limit to [1, MaxPageLimit].
// A zero or negative limit selects DefaultPageLimit.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

// TotalPages returns ceil(total/limit), never less than 1.
func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 1
	}
	return (total + limit - 1) / limit
}

func validateNoteText(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Message: "Title is required"}
	}
	if strings.TrimSpace(content) == "" {
		return &ValidationError{Field: "content", Message: "Content is required"}
	}
	return nil
}

func validatePatch(p storage.NotePatch) error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return &ValidationError{Field: "title", Message: "Title cannot be empty"}
	}
	if p.Content != nil && strings.TrimSpace(*p.Content) == "" {
		return &ValidationError{Field: "content", Message: "Content cannot be empty"}
	}
	return nil
}
