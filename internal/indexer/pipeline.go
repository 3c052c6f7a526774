package indexer

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_embedder.go -package=mocks notes-api/internal/indexer Embedder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"notes-api/internal/contextutil"
	"notes-api/internal/storage"
	"notes-api/internal/vectorstore"
)

// reindexPageSize bounds how many notes ReindexOwner loads per store call.
const reindexPageSize = 50

// Payload keys stored with every vector point.
const (
	PayloadNoteID   = "note_id"
	PayloadOwnerID  = "owner_id"
	PayloadIsPublic = "is_public"
	PayloadTitle    = "title"
)

// Embedder turns texts into vectors, one per input, in order.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Pipeline keeps the vector collection in step with note writes.
type Pipeline struct {
	notes       storage.NoteStore
	embedder    Embedder
	vectorStore vectorstore.VectorStore
	collection  string
}

// NewPipeline creates a new indexing pipeline.
func NewPipeline(
	notes storage.NoteStore,
	embedder Embedder,
	vectorStore vectorstore.VectorStore,
	collection string,
) *Pipeline {
	return &Pipeline{
		notes:       notes,
		embedder:    embedder,
		vectorStore: vectorStore,
		collection:  collection,
	}
}

// ReindexStats summarises one ReindexOwner run.
type ReindexStats struct {
	NotesProcessed int `json:"notesProcessed"`
	NotesIndexed   int `json:"notesIndexed"`
	Errors         int `json:"errors"`
}

// PointID maps a note id to its stable vector point id.
func PointID(noteID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(noteID)).String()
}

// EmbeddingText is the text embedded for note.
func EmbeddingText(note storage.Note) string {
	var b strings.Builder
	b.WriteString(note.Title)
	b.WriteString("\n\n")
	b.WriteString(note.Content)
	if len(note.Tags) > 0 {
		b.WriteString("\n\nTags: ")
		b.WriteString(strings.Join(note.Tags, ", "))
	}
	return b.String()
}

// IndexNote embeds note and upserts its point, replacing any previous one.
func (p *Pipeline) IndexNote(ctx context.Context, note storage.Note) error {
	logger := contextutil.LoggerFromContext(ctx)

	embeddings, err := p.embedder.EmbedTexts(ctx, []string{EmbeddingText(note)})
	if err != nil {
		return fmt.Errorf("failed to generate embedding: %w", err)
	}
	if len(embeddings) != 1 {
		return fmt.Errorf("embedding count mismatch: expected 1, got %d", len(embeddings))
	}

	point := vectorstore.Point{
		ID:  PointID(note.ID),
		Vec: embeddings[0],
		Meta: map[string]any{
			PayloadNoteID:   note.ID,
			PayloadOwnerID:  note.OwnerID,
			PayloadIsPublic: note.IsPublic,
			PayloadTitle:    note.Title,
		},
	}
	if err := p.vectorStore.Upsert(ctx, p.collection, []vectorstore.Point{point}); err != nil {
		return fmt.Errorf("failed to upsert vector: %w", err)
	}

	logger.DebugContext(ctx, "indexed note", "note_id", note.ID)
	return nil
}

// RemoveNote deletes the point of noteID. Removing an unknown note is not an error.
func (p *Pipeline) RemoveNote(ctx context.Context, noteID string) error {
	if err := p.vectorStore.Delete(ctx, p.collection, []string{PointID(noteID)}); err != nil {
		return fmt.Errorf("failed to delete vector: %w", err)
	}
	return nil
}

// ReindexOwner re-embeds every note of ownerID.
// Errors for individual notes are logged but don't stop the run.
func (p *Pipeline) ReindexOwner(ctx context.Context, ownerID string) (*ReindexStats, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if ownerID == "" {
		return nil, errors.New("owner id is required")
	}

	stats := &ReindexStats{}
	filter := storage.NoteFilter{OwnerID: ownerID}

	for skip := 0; ; skip += reindexPageSize {
		notes, total, err := p.notes.FindMany(ctx, filter, storage.FindOptions{
			Sort:  storage.SortNewest,
			Skip:  skip,
			Limit: reindexPageSize,
		})
		if err != nil {
			return stats, fmt.Errorf("failed to list notes: %w", err)
		}

		for _, note := range notes {
			select {
			case <-ctx.Done():
				return stats, ctx.Err()
			default:
			}

			stats.NotesProcessed++
			if err := p.IndexNote(ctx, note); err != nil {
				stats.Errors++
				logger.ErrorContext(ctx, "failed to index note", "note_id", note.ID, "error", err)
				continue
			}
			stats.NotesIndexed++
		}

		if len(notes) == 0 || skip+len(notes) >= total {
			break
		}
	}

	logger.InfoContext(ctx, "reindex completed", "owner_id", ownerID, "processed", stats.NotesProcessed, "indexed", stats.NotesIndexed, "errors", stats.Errors)

	if stats.Errors > 0 {
		return stats, fmt.Errorf("reindex completed with %d errors", stats.Errors)
	}
	return stats, nil
}
