package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"notes-api/internal/rag"
	"notes-api/internal/service"
)

// SearchHandler serves semantic search and question answering.
type SearchHandler struct {
	search service.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(search service.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// SemanticSearchRequest is the body of POST /search-notes.
type SemanticSearchRequest struct {
	Query string `json:"query"`
}

// SearchResultResponse is one ranked note.
type SearchResultResponse struct {
	Note  NoteResponse `json:"note"`
	Score float32      `json:"score"`
}

// SemanticSearchEnvelope lists ranked notes, best first.
type SemanticSearchEnvelope struct {
	Error   bool                   `json:"error"`
	Results []SearchResultResponse `json:"results"`
	Message string                 `json:"message"`
}

// AnswerRequest is the body of POST /answer-question/{userId}.
type AnswerRequest struct {
	Question string `json:"question"`
}

// AnswerEnvelope carries a generated answer.
type AnswerEnvelope struct {
	Error   bool         `json:"error"`
	Answer  string       `json:"answer"`
	Sources []rag.Source `json:"sources"`
}

// SemanticSearch handles POST /search-notes.
func (h *SearchHandler) SemanticSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SemanticSearchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	hits, err := h.search.SemanticSearch(ctx, callerID(r), req.Query)
	if err != nil {
		handleServiceError(w, ctx, err, "Matching notes")
		return
	}

	results := make([]SearchResultResponse, 0, len(hits))
	for i := range hits {
		results = append(results, SearchResultResponse{Note: toNoteResponse(&hits[i].Note), Score: hits[i].Score})
	}

	writeJSON(w, ctx, http.StatusOK, SemanticSearchEnvelope{Results: results, Message: "Semantic search completed"})
}

// Answer handles POST /answer-question/{userId}.
func (h *SearchHandler) Answer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	answer, err := h.search.Answer(ctx, chi.URLParam(r, "userId"), req.Question)
	if err != nil {
		handleServiceError(w, ctx, err, "Relevant notes")
		return
	}

	sources := answer.Sources
	if sources == nil {
		sources = []rag.Source{}
	}
	writeJSON(w, ctx, http.StatusOK, AnswerEnvelope{Answer: answer.Text, Sources: sources})
}
