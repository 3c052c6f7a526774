package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"notes-api/internal/contextutil"
	"notes-api/internal/service"
	"notes-api/internal/storage"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// NoteResponse is the wire form of a note.
type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	IsPinned  bool      `json:"isPinned"`
	IsPublic  bool      `json:"isPublic"`
	UserID    string    `json:"userId"`
	CreatedOn time.Time `json:"createdOn"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserResponse is the wire form of an account. It never carries the password hash.
type UserResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	CreatedOn time.Time `json:"createdOn"`
}

func toNoteResponse(n *storage.Note) NoteResponse {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      tags,
		IsPinned:  n.IsPinned,
		IsPublic:  n.IsPublic,
		UserID:    n.OwnerID,
		CreatedOn: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func toNoteResponses(notes []storage.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		out = append(out, toNoteResponse(&notes[i]))
	}
	return out
}

func toUserResponse(u *storage.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		CreatedOn: u.CreatedAt,
	}
}

// writeJSON writes v with statusCode. Encoding failures are only logged,
// the status line is already on the wire.
func writeJSON(w http.ResponseWriter, ctx context.Context, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:   true,
		Message: message,
	})
}

// handleServiceError maps service errors to appropriate HTTP status codes and responses.
// resource names the entity in 404 messages.
func handleServiceError(w http.ResponseWriter, ctx context.Context, err error, resource string) {
	logger := contextutil.LoggerFromContext(ctx)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		logger.WarnContext(ctx, "validation failed", "field", validationErr.Field, "error", err)
		writeError(w, http.StatusBadRequest, validationErr.Message)
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMessage(resource))
	case errors.Is(err, service.ErrConflict):
		writeError(w, http.StatusConflict, "Email already in use")
	case errors.Is(err, service.ErrFeatureDisabled):
		writeError(w, http.StatusServiceUnavailable, "Semantic search is not enabled")
	default:
		logger.ErrorContext(ctx, "service error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// notFoundMessage picks the 404 message for a handler's resource.
func notFoundMessage(resource string) string {
	if resource == "" {
		return "Resource not found"
	}
	return resource + " not found"
}

// decodeJSON reads the request body into dst.
// It writes the error response itself and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	return decodeBody(w, r, dst, false)
}

// decodeOptionalJSON is decodeJSON for routes where an empty body is meaningful.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	return decodeBody(w, r, dst, true)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any, optional bool) bool {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return true
	}

	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
	case errors.Is(err, io.EOF):
		writeError(w, http.StatusBadRequest, "Request body is required")
	default:
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
	}
	return false
}

// pageParams reads page and limit from the query string. Malformed values
// read as zero and are normalized by the service.
func pageParams(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return page, limit
}

// AccessTokenCookie is the cookie that carries the token for cookie sessions.
const AccessTokenCookie = "accessToken"

// TokenFromRequest returns the bearer token of r, falling back to the access token cookie.
func TokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// callerID returns the authenticated user id set by the auth middleware.
func callerID(r *http.Request) string {
	userID, _ := contextutil.UserIDFromContext(r.Context())
	return userID
}
