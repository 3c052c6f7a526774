package rag

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_rag.go -package=mocks notes-api/internal/rag Embedder,ChatClient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"notes-api/internal/contextutil"
	"notes-api/internal/indexer"
	"notes-api/internal/llm"
	"notes-api/internal/storage"
	"notes-api/internal/vectorstore"
)

const (
	// TopK is the number of nearest notes retrieved per query.
	TopK = 5
	// answerMaxTokens caps the length of generated answers.
	answerMaxTokens = 300
	// answerTemperature is the sampling temperature of generated answers.
	answerTemperature = 0.7
)

// ErrNoMatches is returned when the vector search finds no usable note.
var ErrNoMatches = errors.New("no relevant notes found")

const systemPrompt = "You are an assistant that answers questions about a user's notes. " +
	"Answer using only the notes below. If they don't contain the answer, say so."

// Embedder turns texts into vectors.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// ChatClient generates chat completions.
type ChatClient interface {
	ChatWithMessages(ctx context.Context, messages []llm.Message, params llm.ChatParams) (string, error)
}

// Engine provides semantic retrieval and RAG (Retrieval-Augmented Generation) over notes.
type Engine interface {
	// Search returns the caller's notes nearest to query, best first.
	Search(ctx context.Context, ownerID, query string) ([]Hit, error)
	// Ask answers a question from the owner's public notes.
	Ask(ctx context.Context, req AskRequest) (AskResponse, error)
}

// ragEngine implements the Engine interface.
type ragEngine struct {
	embedder    Embedder
	vectorStore vectorstore.VectorStore
	collection  string
	notes       storage.NoteStore
	llmClient   ChatClient
}

// NewEngine creates a new RAG engine.
func NewEngine(
	embedder Embedder,
	vectorStore vectorstore.VectorStore,
	collection string,
	notes storage.NoteStore,
	llmClient ChatClient,
) Engine {
	return &ragEngine{
		embedder:    embedder,
		vectorStore: vectorStore,
		collection:  collection,
		notes:       notes,
		llmClient:   llmClient,
	}
}

// Search embeds query and loads the matching notes under the owner's scope.
func (e *ragEngine) Search(ctx context.Context, ownerID, query string) ([]Hit, error) {
	logger := contextutil.LoggerFromContext(ctx)

	hits, err := e.retrieve(ctx, query, map[string]any{
		indexer.PayloadOwnerID: ownerID,
	}, storage.NoteFilter{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "semantic search completed", "results", len(hits))
	return hits, nil
}

// Ask answers req.Question from the owner's public notes.
func (e *ragEngine) Ask(ctx context.Context, req AskRequest) (AskResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	logger.InfoContext(ctx, "RAG query started", "owner_id", req.OwnerID, "question_length", len(req.Question))

	public := true
	hits, err := e.retrieve(ctx, req.Question, map[string]any{
		indexer.PayloadOwnerID:  req.OwnerID,
		indexer.PayloadIsPublic: true,
	}, storage.NoteFilter{OwnerID: req.OwnerID, Public: &public})
	if err != nil {
		return AskResponse{}, err
	}

	userMessage := fmt.Sprintf("Notes:\n%s\n\nQuestion: %s\nAnswer:", formatContext(hits), req.Question)
	messages := []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userMessage},
	}

	logger.DebugContext(ctx, "sending request to LLM", "notes_included", len(hits), "user_message_length", len(userMessage))

	answer, err := e.llmClient.ChatWithMessages(ctx, messages, llm.ChatParams{
		MaxTokens:   answerMaxTokens,
		Temperature: answerTemperature,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to get LLM response", "error", err)
		return AskResponse{}, fmt.Errorf("failed to get LLM response: %w", err)
	}

	sources := make([]Source, 0, len(hits))
	for _, hit := range hits {
		sources = append(sources, Source{NoteID: hit.Note.ID, Title: hit.Note.Title, Score: hit.Score})
	}

	logger.InfoContext(ctx, "RAG query completed", "notes_used", len(hits), "answer_length", len(answer))

	return AskResponse{
		Answer:  strings.TrimSpace(answer),
		Sources: sources,
	}, nil
}

// retrieve embeds text, searches the collection with payload filters and
// loads each hit through scope. Points whose note is gone or out of scope are skipped.
func (e *ragEngine) retrieve(ctx context.Context, text string, filters map[string]any, scope storage.NoteFilter) ([]Hit, error) {
	logger := contextutil.LoggerFromContext(ctx)

	embeddings, err := e.embedder.EmbedTexts(ctx, []string{text})
	if err != nil {
		logger.ErrorContext(ctx, "failed to embed text", "error", err)
		return nil, fmt.Errorf("failed to embed text: %w", err)
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embedding returned")
	}

	results, err := e.vectorStore.Search(ctx, e.collection, embeddings[0], TopK, filters)
	if err != nil {
		logger.ErrorContext(ctx, "failed to search vector store", "error", err)
		return nil, fmt.Errorf("failed to search vector store: %w", err)
	}

	hits := make([]Hit, 0, len(results))
	for _, result := range results {
		noteID, _ := result.Meta[indexer.PayloadNoteID].(string)
		if noteID == "" {
			logger.WarnContext(ctx, "search result without note id", "point_id", result.PointID)
			continue
		}

		filter := scope
		filter.ID = noteID
		note, err := e.notes.FindOne(ctx, filter)
		if errors.Is(err, storage.ErrNotFound) {
			logger.DebugContext(ctx, "skipping stale search result", "note_id", noteID)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load note: %w", err)
		}

		hits = append(hits, Hit{Note: *note, Score: result.Score})
	}

	if len(hits) == 0 {
		return nil, ErrNoMatches
	}
	return hits, nil
}

// formatContext renders hits as the context block of the prompt.
func formatContext(hits []Hit) string {
	var b strings.Builder
	for i, hit := range hits {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Title: %s\nContent: %s", hit.Note.Title, hit.Note.Content)
	}
	return b.String()
}
