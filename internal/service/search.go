package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_search_service.go -package=mocks notes-api/internal/service SearchService,Reindexer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"notes-api/internal/contextutil"
	"notes-api/internal/indexer"
	"notes-api/internal/rag"
	"notes-api/internal/storage"
)

// SearchHit is a note ranked by semantic similarity.
type SearchHit struct {
	Note  storage.Note
	Score float32
}

// Answer is a generated answer with the notes used as context.
type Answer struct {
	Text    string
	Sources []rag.Source
}

// Reindexer rebuilds the search index of one owner.
type Reindexer interface {
	ReindexOwner(ctx context.Context, ownerID string) (*indexer.ReindexStats, error)
}

// SearchService exposes semantic search and question answering.
// Every method fails with ErrFeatureDisabled when semantic search is not configured.
type SearchService interface {
	// Enabled reports whether semantic search is configured.
	Enabled() bool
	// SemanticSearch returns the caller's notes closest to query. No match is ErrNotFound.
	SemanticSearch(ctx context.Context, ownerID, query string) ([]SearchHit, error)
	// Answer answers question from userID's public notes. No match is ErrNotFound.
	Answer(ctx context.Context, userID, question string) (*Answer, error)
	// Reindex re-embeds every note of ownerID.
	Reindex(ctx context.Context, ownerID string) (*indexer.ReindexStats, error)
}

type searchService struct {
	engine    rag.Engine
	reindexer Reindexer
}

// NewSearchService creates a SearchService. Passing a nil engine yields a
// service that reports ErrFeatureDisabled.
func NewSearchService(engine rag.Engine, reindexer Reindexer) SearchService {
	return &searchService{engine: engine, reindexer: reindexer}
}

func (s *searchService) Enabled() bool {
	return s.engine != nil
}

func (s *searchService) SemanticSearch(ctx context.Context, ownerID, query string) ([]SearchHit, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if s.engine == nil {
		return nil, ErrFeatureDisabled
	}
	if ownerID == "" {
		return nil, ErrUnauthorized
	}
	if strings.TrimSpace(query) == "" {
		return nil, &ValidationError{Field: "query", Message: "Search query is required"}
	}

	hits, err := s.engine.Search(ctx, ownerID, query)
	if err != nil {
		if errors.Is(err, rag.ErrNoMatches) {
			return nil, ErrNotFound
		}
		logger.ErrorContext(ctx, "semantic search failed", "error", err)
		return nil, fmt.Errorf("%w: semantic search: %w", ErrExternalService, err)
	}

	out := make([]SearchHit, 0, len(hits))
	for _, hit := range hits {
		out = append(out, SearchHit{Note: hit.Note, Score: hit.Score})
	}
	return out, nil
}

func (s *searchService) Answer(ctx context.Context, userID, question string) (*Answer, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if s.engine == nil {
		return nil, ErrFeatureDisabled
	}
	if strings.TrimSpace(question) == "" {
		return nil, &ValidationError{Field: "question", Message: "Question is required and must be a non-empty string"}
	}
	if userID == "" {
		return nil, &ValidationError{Field: "userId", Message: "Invalid user ID"}
	}

	resp, err := s.engine.Ask(ctx, rag.AskRequest{OwnerID: userID, Question: question})
	if err != nil {
		if errors.Is(err, rag.ErrNoMatches) {
			return nil, ErrNotFound
		}
		logger.ErrorContext(ctx, "failed to answer question", "error", err)
		return nil, fmt.Errorf("%w: answer question: %w", ErrExternalService, err)
	}

	return &Answer{Text: resp.Answer, Sources: resp.Sources}, nil
}

func (s *searchService) Reindex(ctx context.Context, ownerID string) (*indexer.ReindexStats, error) {
	if s.reindexer == nil {
		return nil, ErrFeatureDisabled
	}
	if ownerID == "" {
		return nil, ErrUnauthorized
	}

	stats, err := s.reindexer.ReindexOwner(ctx, ownerID)
	if err != nil {
		return stats, fmt.Errorf("%w: reindex: %w", ErrExternalService, err)
	}
	return stats, nil
}
