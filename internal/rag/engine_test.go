package rag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"notes-api/internal/llm"
	rag_mocks "notes-api/internal/rag/mocks"
	"notes-api/internal/storage"
	storage_mocks "notes-api/internal/storage/mocks"
	"notes-api/internal/vectorstore"
	vectorstore_mocks "notes-api/internal/vectorstore/mocks"
)

type engineMocks struct {
	embedder *rag_mocks.MockEmbedder
	vectors  *vectorstore_mocks.MockVectorStore
	notes    *storage_mocks.MockNoteStore
	chat     *rag_mocks.MockChatClient
}

func newTestEngine(t *testing.T) (Engine, engineMocks) {
	ctrl := gomock.NewController(t)
	m := engineMocks{
		embedder: rag_mocks.NewMockEmbedder(ctrl),
		vectors:  vectorstore_mocks.NewMockVectorStore(ctrl),
		notes:    storage_mocks.NewMockNoteStore(ctrl),
		chat:     rag_mocks.NewMockChatClient(ctrl),
	}
	return NewEngine(m.embedder, m.vectors, "notes", m.notes, m.chat), m
}

func result(noteID string, score float32) vectorstore.SearchResult {
	return vectorstore.SearchResult{PointID: "p-" + noteID, Score: score, Meta: map[string]any{"note_id": noteID}}
}

func TestEngine_Search(t *testing.T) {
	engine, m := newTestEngine(t)
	ctx := context.Background()

	m.embedder.EXPECT().EmbedTexts(gomock.Any(), []string{"boots"}).Return([][]float32{{0.5}}, nil)
	m.vectors.EXPECT().
		Search(gomock.Any(), "notes", []float32{0.5}, TopK, map[string]any{"owner_id": "u1"}).
		Return([]vectorstore.SearchResult{result("n1", 0.9), result("stale", 0.8), result("n2", 0.3)}, nil)
	m.notes.EXPECT().FindOne(gomock.Any(), storage.NoteFilter{ID: "n1", OwnerID: "u1"}).Return(&storage.Note{ID: "n1"}, nil)
	m.notes.EXPECT().FindOne(gomock.Any(), storage.NoteFilter{ID: "stale", OwnerID: "u1"}).Return(nil, storage.ErrNotFound)
	m.notes.EXPECT().FindOne(gomock.Any(), storage.NoteFilter{ID: "n2", OwnerID: "u1"}).Return(&storage.Note{ID: "n2"}, nil)

	hits, err := engine.Search(ctx, "u1", "boots")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("Search() returned %d hits, want 2", len(hits))
	}
	if hits[0].Note.ID != "n1" || hits[0].Score != 0.9 {
		t.Errorf("hits[0] = %+v", hits[0])
	}
}

func TestEngine_Search_NoMatches(t *testing.T) {
	engine, m := newTestEngine(t)

	m.embedder.EXPECT().EmbedTexts(gomock.Any(), gomock.Any()).Return([][]float32{{0.5}}, nil)
	m.vectors.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := engine.Search(context.Background(), "u1", "boots")
	if !errors.Is(err, ErrNoMatches) {
		t.Errorf("Search() error = %v, want ErrNoMatches", err)
	}
}

func TestEngine_Search_EmbedError(t *testing.T) {
	engine, m := newTestEngine(t)

	m.embedder.EXPECT().EmbedTexts(gomock.Any(), gomock.Any()).Return(nil, errors.New("bad status 401"))

	_, err := engine.Search(context.Background(), "u1", "boots")
	if err == nil || errors.Is(err, ErrNoMatches) {
		t.Errorf("Search() error = %v, want embedding failure", err)
	}
}

func TestEngine_Ask(t *testing.T) {
	engine, m := newTestEngine(t)
	public := true

	m.embedder.EXPECT().EmbedTexts(gomock.Any(), []string{"What do I pack?"}).Return([][]float32{{0.1}}, nil)
	m.vectors.EXPECT().
		Search(gomock.Any(), "notes", gomock.Any(), TopK, map[string]any{"owner_id": "u2", "is_public": true}).
		Return([]vectorstore.SearchResult{result("n1", 0.7)}, nil)
	m.notes.EXPECT().
		FindOne(gomock.Any(), storage.NoteFilter{ID: "n1", OwnerID: "u2", Public: &public}).
		Return(&storage.Note{ID: "n1", Title: "Trip", Content: "Pack boots"}, nil)
	m.chat.EXPECT().
		ChatWithMessages(gomock.Any(), gomock.Any(), llm.ChatParams{MaxTokens: 300, Temperature: 0.7}).
		DoAndReturn(func(_ context.Context, messages []llm.Message, _ llm.ChatParams) (string, error) {
			if len(messages) != 2 || messages[0].Role != "system" {
				t.Fatalf("unexpected messages: %+v", messages)
			}
			user := messages[1].Content
			if !strings.Contains(user, "Title: Trip\nContent: Pack boots") || !strings.Contains(user, "Question: What do I pack?") {
				t.Errorf("user message missing context: %q", user)
			}
			return "  Boots.\n", nil
		})

	resp, err := engine.Ask(context.Background(), AskRequest{OwnerID: "u2", Question: "What do I pack?"})
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if resp.Answer != "Boots." {
		t.Errorf("Answer = %q, want %q", resp.Answer, "Boots.")
	}
	if len(resp.Sources) != 1 || resp.Sources[0].NoteID != "n1" || resp.Sources[0].Title != "Trip" {
		t.Errorf("Sources = %+v", resp.Sources)
	}
}

func TestEngine_Ask_LLMError(t *testing.T) {
	engine, m := newTestEngine(t)

	m.embedder.EXPECT().EmbedTexts(gomock.Any(), gomock.Any()).Return([][]float32{{0.1}}, nil)
	m.vectors.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]vectorstore.SearchResult{result("n1", 0.7)}, nil)
	m.notes.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(&storage.Note{ID: "n1"}, nil)
	m.chat.EXPECT().ChatWithMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("bad status 500"))

	if _, err := engine.Ask(context.Background(), AskRequest{OwnerID: "u2", Question: "q"}); err == nil {
		t.Fatal("Ask() expected error")
	}
}

func TestFormatContext(t *testing.T) {
	hits := []Hit{
		{Note: storage.Note{Title: "A", Content: "one"}},
		{Note: storage.Note{Title: "B", Content: "two"}},
	}
	want := "Title: A\nContent: one\n\nTitle: B\nContent: two"
	if got := formatContext(hits); got != want {
		t.Errorf("formatContext() = %q, want %q", got, want)
	}
}
