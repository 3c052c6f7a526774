package handlers

import (
	"context"
	"net/http"

	"notes-api/internal/contextutil"
	"notes-api/internal/service"
)

// IndexHandler handles HTTP requests for triggering re-indexing.
type IndexHandler struct {
	search service.SearchService
	// done, when set, receives the outcome of each background run.
	done func(error)
}

// NewIndexHandler creates a new IndexHandler.
func NewIndexHandler(search service.SearchService) *IndexHandler {
	return &IndexHandler{search: search}
}

// IndexResponse represents the response from the index endpoint.
type IndexResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ServeHTTP re-embeds the caller's notes in the background and answers 202 right away.
func (h *IndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if !h.search.Enabled() {
		handleServiceError(w, ctx, service.ErrFeatureDisabled, "")
		return
	}
	userID := callerID(r)
	if userID == "" {
		handleServiceError(w, ctx, service.ErrUnauthorized, "")
		return
	}

	logger.InfoContext(ctx, "re-indexing triggered via API")

	// Detach from the request so indexing continues after the response;
	// the request logger travels along.
	indexCtx := context.WithoutCancel(ctx)
	go func() {
		stats, err := h.search.Reindex(indexCtx, userID)
		if err != nil {
			logger.ErrorContext(indexCtx, "re-indexing completed with errors", "error", err)
		} else {
			logger.InfoContext(indexCtx, "re-indexing completed successfully", "indexed", stats.NotesIndexed)
		}
		if h.done != nil {
			h.done(err)
		}
	}()

	writeJSON(w, ctx, http.StatusAccepted, IndexResponse{
		Message: "Indexing started. Check server logs for progress.",
		Status:  "accepted",
	})
}
