package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"notes-api/internal/contextutil"
	"notes-api/internal/vectorstore"
)

// Pinger is anything that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// VectorStoreChecker reports on the vector index backing semantic search.
type VectorStoreChecker interface {
	Ping(ctx context.Context) error
	CollectionExists(ctx context.Context, collection string) (bool, error)
	Stats(ctx context.Context, collection string) (*vectorstore.CollectionStats, error)
}

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	store              Pinger
	vectorStore        VectorStoreChecker // nil when semantic search is disabled
	collectionName     string
	healthCheckTimeout time.Duration
}

// NewHealthHandler creates a new HealthHandler. vectorStore may be nil.
func NewHealthHandler(store Pinger, vectorStore VectorStoreChecker, collectionName string) *HealthHandler {
	return &HealthHandler{
		store:              store,
		vectorStore:        vectorStore,
		collectionName:     collectionName,
		healthCheckTimeout: 5 * time.Second,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy" or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// List of issues (only present if status is unhealthy)
	Issues []string `json:"issues,omitempty"`

	// Points indexed in the vector collection, when it could be read
	VectorPoints *int `json:"vector_points,omitempty"`
}

// ServeHTTP handles HTTP requests for health checks.
// Returns 200 OK if healthy, 503 Service Unavailable otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	// Create context with timeout for health checks
	checkCtx, cancel := context.WithTimeout(ctx, h.healthCheckTimeout)
	defer cancel()

	checks := make(map[string]string)
	var issues []string

	if err := h.store.Ping(checkCtx); err != nil {
		logger.WarnContext(ctx, "store health check failed", "error", err)
		checks["store"] = "error"
		issues = append(issues, "store_unavailable")
	} else {
		checks["store"] = "ok"
	}

	var vectorPoints *int
	if h.vectorStore != nil {
		if h.checkVectorStore(checkCtx, logger) {
			checks["vector_store"] = "ok"
			vectorPoints = h.vectorPoints(checkCtx, logger)
		} else {
			checks["vector_store"] = "error"
			issues = append(issues, "vector_store_unavailable")
		}
	} else {
		checks["vector_store"] = "disabled"
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if len(issues) > 0 {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, ctx, httpStatus, HealthResponse{
		Status:       status,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Checks:       checks,
		Issues:       issues,
		VectorPoints: vectorPoints,
	})
}

// checkVectorStore checks if the vector store is accessible.
func (h *HealthHandler) checkVectorStore(ctx context.Context, logger *slog.Logger) bool {
	if err := h.vectorStore.Ping(ctx); err != nil {
		logger.WarnContext(ctx, "vector store unreachable", "error", err)
		return false
	}
	exists, err := h.vectorStore.CollectionExists(ctx, h.collectionName)
	if err != nil {
		logger.WarnContext(ctx, "vector store health check failed", "error", err)
		return false
	}
	if !exists {
		logger.WarnContext(ctx, "vector store collection does not exist", "collection", h.collectionName)
		return false
	}
	return true
}

// vectorPoints reads the collection point count. A failure only drops the figure.
func (h *HealthHandler) vectorPoints(ctx context.Context, logger *slog.Logger) *int {
	stats, err := h.vectorStore.Stats(ctx, h.collectionName)
	if err != nil {
		logger.WarnContext(ctx, "failed to read vector collection stats", "error", err)
		return nil
	}
	return &stats.Points
}
