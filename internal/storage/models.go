package storage

import "time"

// Note is one user-authored note as persisted by either backend.
type Note struct {
	ID        string
	Title     string
	Content   string
	Tags      []string // never nil once loaded
	IsPinned  bool
	IsPublic  bool
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// User is one account. PasswordHash never leaves the service layer.
type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// NoteWithAuthor is a note joined with the display fields of its owner.
// Author fields are empty when the owner no longer exists.
type NoteWithAuthor struct {
	Note
	AuthorName  string
	AuthorEmail string
}

// NoteFilter selects notes. Zero-valued fields do not constrain the match.
type NoteFilter struct {
	ID      string
	OwnerID string
	Public  *bool
	// Text is matched case-insensitively as a substring of the title,
	// the content or the tags. The SQL store matches against the JSON-encoded
	// tag array and the document store against each tag, so queries holding
	// JSON punctuation such as `","` can match in SQL and not in Mongo.
	Text string
}

// SortOrder names the supported orderings of FindMany.
type SortOrder int

const (
	// SortPinnedNewest puts pinned notes first, then newest first.
	SortPinnedNewest SortOrder = iota
	// SortNewest orders by creation time, newest first.
	SortNewest
	// SortNewestPinned orders newest first, pinned first among equal timestamps.
	SortNewestPinned
)

// FindOptions controls ordering and paging of FindMany. Limit 0 means no limit.
type FindOptions struct {
	Sort  SortOrder
	Skip  int
	Limit int
}

// NotePatch lists the fields to change. Nil fields are left untouched.
type NotePatch struct {
	Title    *string
	Content  *string
	Tags     *[]string
	IsPinned *bool
	IsPublic *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Tags == nil && p.IsPinned == nil && p.IsPublic == nil
}
