package vault

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"notes-api/internal/contextutil"
	"notes-api/internal/service"
	"notes-api/internal/storage"
)

// NoteCreator creates notes on behalf of an owner. service.NotesService satisfies it.
type NoteCreator interface {
	Create(ctx context.Context, ownerID string, in service.CreateNoteInput) (*storage.Note, error)
}

// ImportStats summarises one import run.
type ImportStats struct {
	FilesScanned  int
	NotesImported int
	Skipped       int
}

// Importer turns markdown files into notes.
type Importer struct {
	notes NoteCreator
}

// NewImporter creates a new Importer.
func NewImporter(notes NoteCreator) *Importer {
	return &Importer{notes: notes}
}

// Import creates one note per markdown file under root, owned by ownerID.
// Files that fail validation (for example empty ones) are skipped and counted.
// Any other error stops the run.
func (i *Importer) Import(ctx context.Context, ownerID, root string) (*ImportStats, error) {
	logger := contextutil.LoggerFromContext(ctx)

	files, err := Scan(ctx, root)
	if err != nil {
		return nil, err
	}

	stats := &ImportStats{FilesScanned: len(files)}
	for _, f := range files {
		raw, err := os.ReadFile(f.AbsPath)
		if err != nil {
			return stats, fmt.Errorf("failed to read %s: %w", f.RelPath, err)
		}

		in := ParseFile(f, string(raw))
		if _, err := i.notes.Create(ctx, ownerID, in); err != nil {
			var validationErr *service.ValidationError
			if errors.As(err, &validationErr) {
				logger.WarnContext(ctx, "skipping file", "path", f.RelPath, "error", err)
				stats.Skipped++
				continue
			}
			return stats, fmt.Errorf("failed to import %s: %w", f.RelPath, err)
		}
		stats.NotesImported++
		logger.DebugContext(ctx, "imported file", "path", f.RelPath)
	}

	logger.InfoContext(ctx, "import finished",
		"scanned", stats.FilesScanned,
		"imported", stats.NotesImported,
		"skipped", stats.Skipped,
	)
	return stats, nil
}

// ParseFile builds a note from a markdown file. A leading "# " heading becomes
// the title and is removed from the content; otherwise the file name is used.
// Each folder on the path becomes a tag.
func ParseFile(f ScannedFile, raw string) service.CreateNoteInput {
	content := strings.TrimSpace(strings.ReplaceAll(raw, "\r\n", "\n"))
	title := strings.TrimSuffix(filepath.Base(f.RelPath), filepath.Ext(f.RelPath))

	if first, rest, _ := strings.Cut(content, "\n"); strings.HasPrefix(first, "# ") {
		title = strings.TrimSpace(strings.TrimPrefix(first, "# "))
		content = strings.TrimSpace(rest)
	}

	tags := []string{}
	if f.Folder != "" {
		tags = strings.Split(f.Folder, "/")
	}

	return service.CreateNoteInput{
		Title:   title,
		Content: content,
		Tags:    tags,
	}
}
