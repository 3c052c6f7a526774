package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_note_store.go -package=mocks notes-api/internal/storage NoteStore

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate record")
)

// NoteStore defines the interface for note storage operations.
// Both the relational and the document backend implement it.
type NoteStore interface {
	// Insert persists a new note, assigning ID, CreatedAt and UpdatedAt.
	Insert(ctx context.Context, note *Note) error
	// FindOne returns the first note matching filter, or ErrNotFound.
	FindOne(ctx context.Context, filter NoteFilter) (*Note, error)
	// FindMany returns one page of matching notes and the total match count.
	FindMany(ctx context.Context, filter NoteFilter, opts FindOptions) ([]Note, int, error)
	// Update applies patch to the note matching filter in a single conditional write
	// and returns the updated note. Returns ErrNotFound when nothing matched.
	Update(ctx context.Context, filter NoteFilter, patch NotePatch) (*Note, error)
	// TogglePin atomically negates is_pinned of the matching note.
	TogglePin(ctx context.Context, filter NoteFilter) (*Note, error)
	// Delete removes the matching note. Returns ErrNotFound when nothing matched.
	Delete(ctx context.Context, filter NoteFilter) error
	// ListWithAuthors returns every note joined with its author, newest first.
	ListWithAuthors(ctx context.Context) ([]NoteWithAuthor, error)
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}

const noteColumns = "id, title, content, tags, is_pinned, is_public, owner_id, created_at, updated_at"

// NoteRepo is the relational NoteStore.
type NoteRepo struct {
	db     *sql.DB
	driver string
	now    func() time.Time
}

// NewNoteRepo creates a new NoteRepo. driver is DriverSQLite or DriverPostgres.
func NewNoteRepo(db *sql.DB, driver string) *NoteRepo {
	return &NoteRepo{db: db, driver: driver, now: now}
}

// now returns the current time at the precision both SQL backends preserve.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Insert persists a new note.
func (r *NoteRepo) Insert(ctx context.Context, note *Note) error {
	tags, err := encodeTags(note.Tags)
	if err != nil {
		return err
	}

	ts := r.now()
	id := uuid.New().String()

	_, err = r.db.ExecContext(ctx, rebind(r.driver,
		`INSERT INTO notes (`+noteColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		id, note.Title, note.Content, tags, note.IsPinned, note.IsPublic, note.OwnerID, ts, ts,
	)
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}

	note.ID = id
	note.CreatedAt = ts
	note.UpdatedAt = ts
	if note.Tags == nil {
		note.Tags = []string{}
	}
	return nil
}

// FindOne returns the first note matching filter.
func (r *NoteRepo) FindOne(ctx context.Context, filter NoteFilter) (*Note, error) {
	return r.findOne(ctx, r.db, filter)
}

func (r *NoteRepo) findOne(ctx context.Context, q queryer, filter NoteFilter) (*Note, error) {
	where, args := buildNoteWhere(filter)
	row := q.QueryRowContext(ctx, rebind(r.driver,
		"SELECT "+noteColumns+" FROM notes"+where+" LIMIT 1"), args...)

	note, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query note: %w", err)
	}
	return note, nil
}

// FindMany returns one page of matching notes and the total number of matches.
func (r *NoteRepo) FindMany(ctx context.Context, filter NoteFilter, opts FindOptions) ([]Note, int, error) {
	where, args := buildNoteWhere(filter)

	var total int
	if err := r.db.QueryRowContext(ctx, rebind(r.driver,
		"SELECT COUNT(*) FROM notes"+where), args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notes: %w", err)
	}

	query := "SELECT " + noteColumns + " FROM notes" + where + " ORDER BY " + orderBy(opts.Sort, "")
	if opts.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, opts.Limit, max(opts.Skip, 0))
	}

	rows, err := r.db.QueryContext(ctx, rebind(r.driver, query), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query notes: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	notes := make([]Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, *note)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, total, nil
}

// Update applies patch to the matching note and returns the result.
// The filter is part of the UPDATE statement, so a note owned by someone
// else is never written.
func (r *NoteRepo) Update(ctx context.Context, filter NoteFilter, patch NotePatch) (*Note, error) {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 6)

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *patch.Content)
	}
	if patch.Tags != nil {
		tags, err := encodeTags(*patch.Tags)
		if err != nil {
			return nil, err
		}
		sets = append(sets, "tags = ?")
		args = append(args, tags)
	}
	if patch.IsPinned != nil {
		sets = append(sets, "is_pinned = ?")
		args = append(args, *patch.IsPinned)
	}
	if patch.IsPublic != nil {
		sets = append(sets, "is_public = ?")
		args = append(args, *patch.IsPublic)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, r.now())

	return r.updateAndFetch(ctx, filter, strings.Join(sets, ", "), args)
}

// TogglePin negates is_pinned in one statement.
func (r *NoteRepo) TogglePin(ctx context.Context, filter NoteFilter) (*Note, error) {
	return r.updateAndFetch(ctx, filter, "is_pinned = NOT is_pinned, updated_at = ?", []any{r.now()})
}

func (r *NoteRepo) updateAndFetch(ctx context.Context, filter NoteFilter, set string, setArgs []any) (*Note, error) {
	if filter.ID == "" {
		return nil, fmt.Errorf("update requires a note id")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	where, whereArgs := buildNoteWhere(filter)
	res, err := tx.ExecContext(ctx, rebind(r.driver, "UPDATE notes SET "+set+where), append(setArgs, whereArgs...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	note, err := r.findOne(ctx, tx, NoteFilter{ID: filter.ID})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit note update: %w", err)
	}
	return note, nil
}

// Delete removes the matching note.
func (r *NoteRepo) Delete(ctx context.Context, filter NoteFilter) error {
	if filter.ID == "" {
		return fmt.Errorf("delete requires a note id")
	}

	where, args := buildNoteWhere(filter)
	res, err := r.db.ExecContext(ctx, rebind(r.driver, "DELETE FROM notes"+where), args...)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListWithAuthors returns all notes joined with their authors.
func (r *NoteRepo) ListWithAuthors(ctx context.Context) ([]NoteWithAuthor, error) {
	query := `SELECT n.id, n.title, n.content, n.tags, n.is_pinned, n.is_public, n.owner_id, n.created_at, n.updated_at,
		COALESCE(u.full_name, ''), COALESCE(u.email, '')
		FROM notes n LEFT JOIN users u ON u.id = n.owner_id
		ORDER BY ` + orderBy(SortNewestPinned, "n.")

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes with authors: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]NoteWithAuthor, 0)
	for rows.Next() {
		var (
			item NoteWithAuthor
			tags string
		)
		if err := rows.Scan(&item.ID, &item.Title, &item.Content, &tags, &item.IsPinned, &item.IsPublic,
			&item.OwnerID, &item.CreatedAt, &item.UpdatedAt, &item.AuthorName, &item.AuthorEmail); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		if item.Tags, err = decodeTags(tags); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}
	return result, nil
}

// Ping checks the database connection.
func (r *NoteRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(s scanner) (*Note, error) {
	var (
		note Note
		tags string
	)
	if err := s.Scan(&note.ID, &note.Title, &note.Content, &tags, &note.IsPinned, &note.IsPublic,
		&note.OwnerID, &note.CreatedAt, &note.UpdatedAt); err != nil {
		return nil, err
	}

	var err error
	if note.Tags, err = decodeTags(tags); err != nil {
		return nil, err
	}
	return &note, nil
}

// buildNoteWhere renders filter as a WHERE clause with ? placeholders.
func buildNoteWhere(filter NoteFilter) (string, []any) {
	conds := make([]string, 0, 4)
	args := make([]any, 0, 6)

	if filter.ID != "" {
		conds = append(conds, "id = ?")
		args = append(args, filter.ID)
	}
	if filter.OwnerID != "" {
		conds = append(conds, "owner_id = ?")
		args = append(args, filter.OwnerID)
	}
	if filter.Public != nil {
		conds = append(conds, "is_public = ?")
		args = append(args, *filter.Public)
	}
	if filter.Text != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter.Text)) + "%"
		conds = append(conds, `(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(content) LIKE ? ESCAPE '\' OR LOWER(tags) LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern, pattern)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func orderBy(sort SortOrder, prefix string) string {
	var cols []string
	switch sort {
	case SortNewest:
		cols = []string{"created_at DESC", "id DESC"}
	case SortNewestPinned:
		cols = []string{"created_at DESC", "is_pinned DESC", "id DESC"}
	default:
		cols = []string{"is_pinned DESC", "created_at DESC", "id DESC"}
	}
	for i, c := range cols {
		cols[i] = prefix + c
	}
	return strings.Join(cols, ", ")
}

// encodeTags serializes tags as a JSON array without HTML escaping,
// so a text search sees the tags as written.
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tags); err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func decodeTags(raw string) ([]string, error) {
	tags := []string{}
	if raw == "" {
		return tags, nil
	}
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}
