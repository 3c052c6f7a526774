package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"notes-api/internal/indexer"
	"notes-api/internal/rag"
	"notes-api/internal/service"
	"notes-api/internal/service/mocks"
	"notes-api/internal/storage"
)

// fakeEngine is a rag.Engine with canned results.
type fakeEngine struct {
	hits   []rag.Hit
	answer rag.AskResponse
	err    error
	asked  rag.AskRequest
}

func (f *fakeEngine) Search(_ context.Context, _, _ string) ([]rag.Hit, error) {
	return f.hits, f.err
}

func (f *fakeEngine) Ask(_ context.Context, req rag.AskRequest) (rag.AskResponse, error) {
	f.asked = req
	return f.answer, f.err
}

func TestSearchService_Disabled(t *testing.T) {
	svc := service.NewSearchService(nil, nil)
	ctx := testContext()

	assert.False(t, svc.Enabled())

	_, err := svc.SemanticSearch(ctx, "u1", "milk")
	assert.ErrorIs(t, err, service.ErrFeatureDisabled)

	_, err = svc.Answer(ctx, "u1", "what?")
	assert.ErrorIs(t, err, service.ErrFeatureDisabled)

	_, err = svc.Reindex(ctx, "u1")
	assert.ErrorIs(t, err, service.ErrFeatureDisabled)
}

func TestSearchService_SemanticSearch(t *testing.T) {
	tests := []struct {
		name         string
		ownerID      string
		query        string
		engine       *fakeEngine
		wantHits     int
		checkErrType func(error) bool
	}{
		{
			name:    "hits are returned in order",
			ownerID: "u1",
			query:   "groceries",
			engine: &fakeEngine{hits: []rag.Hit{
				{Note: storage.Note{ID: "n1"}, Score: 0.9},
				{Note: storage.Note{ID: "n2"}, Score: 0.4},
			}},
			wantHits: 2,
		},
		{
			name:    "no match is not found",
			ownerID: "u1",
			query:   "groceries",
			engine:  &fakeEngine{err: rag.ErrNoMatches},
			checkErrType: func(err error) bool {
				return errors.Is(err, service.ErrNotFound)
			},
		},
		{
			name:    "embedding failure is external",
			ownerID: "u1",
			query:   "groceries",
			engine:  &fakeEngine{err: errors.New("bad status 500")},
			checkErrType: func(err error) bool {
				return errors.Is(err, service.ErrExternalService)
			},
		},
		{
			name:         "blank query",
			ownerID:      "u1",
			query:        "  ",
			engine:       &fakeEngine{},
			checkErrType: isValidation("query"),
		},
		{
			name:   "no caller",
			query:  "groceries",
			engine: &fakeEngine{},
			checkErrType: func(err error) bool {
				return errors.Is(err, service.ErrUnauthorized)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := service.NewSearchService(tt.engine, nil)
			hits, err := svc.SemanticSearch(testContext(), tt.ownerID, tt.query)
			if tt.checkErrType != nil {
				require.Error(t, err)
				assert.True(t, tt.checkErrType(err), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			require.Len(t, hits, tt.wantHits)
			assert.Equal(t, "n1", hits[0].Note.ID)
			assert.InDelta(t, 0.9, hits[0].Score, 1e-6)
		})
	}
}

func TestSearchService_Answer(t *testing.T) {
	engine := &fakeEngine{answer: rag.AskResponse{
		Answer:  "Buy milk.",
		Sources: []rag.Source{{NoteID: "n1", Title: "Groceries"}},
	}}
	svc := service.NewSearchService(engine, nil)

	answer, err := svc.Answer(testContext(), "u2", "What should I buy?")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk.", answer.Text)
	assert.Len(t, answer.Sources, 1)
	assert.Equal(t, rag.AskRequest{OwnerID: "u2", Question: "What should I buy?"}, engine.asked)

	_, err = svc.Answer(testContext(), "u2", "")
	assert.True(t, isValidation("question")(err))
}

func TestSearchService_Reindex(t *testing.T) {
	ctrl := gomock.NewController(t)
	reindexer := mocks.NewMockReindexer(ctrl)

	reindexer.EXPECT().
		ReindexOwner(gomock.Any(), "u1").
		Return(&indexer.ReindexStats{NotesProcessed: 3, NotesIndexed: 3}, nil)

	svc := service.NewSearchService(&fakeEngine{}, reindexer)
	stats, err := svc.Reindex(testContext(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.NotesIndexed)
}
