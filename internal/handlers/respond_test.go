package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"notes-api/internal/service"
)

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "validation error",
			err:         &service.ValidationError{Field: "title", Message: "Title is required"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Title is required",
		},
		{name: "invalid credentials", err: service.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantMessage: "Invalid credentials"},
		{name: "unauthorized", err: fmt.Errorf("%w: expired", service.ErrUnauthorized), wantStatus: http.StatusUnauthorized, wantMessage: "Unauthorized"},
		{name: "not found", err: service.ErrNotFound, wantStatus: http.StatusNotFound, wantMessage: "Note not found"},
		{name: "conflict", err: service.ErrConflict, wantStatus: http.StatusConflict, wantMessage: "Email already in use"},
		{name: "feature disabled", err: service.ErrFeatureDisabled, wantStatus: http.StatusServiceUnavailable},
		{name: "backend", err: fmt.Errorf("%w: boom", service.ErrBackend), wantStatus: http.StatusInternalServerError, wantMessage: "Internal Server Error"},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMessage: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handleServiceError(w, context.Background(), tt.err, "Note")

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			resp := readJSON[ErrorResponse](t, w)
			if !resp.Error {
				t.Error("error flag should be true")
			}
			if tt.wantMessage != "" && resp.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", resp.Message, tt.wantMessage)
			}
		})
	}
}

func TestTokenFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{name: "bearer header", header: "Bearer abc.def", want: "abc.def"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "wrong scheme", header: "Basic Zm9v", want: ""},
		{name: "cookie fallback", cookie: "from-cookie", want: "from-cookie"},
		{name: "header wins over cookie", header: "Bearer h", cookie: "c", want: "h"},
		{name: "nothing", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/auth/verify", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: tt.cookie})
			}
			if got := TokenFromRequest(req); got != tt.want {
				t.Errorf("TokenFromRequest() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeJSON_BodyTooLarge(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/add-note", strings.NewReader(`{"title":"far too long"}`))
	w := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(w, req.Body, 4)

	var dst CreateNoteRequest
	if decodeJSON(w, req, &dst) {
		t.Fatal("decodeJSON() should fail for oversized body")
	}
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want %d", w.Code, http.StatusRequestEntityTooLarge)
	}
}

func TestDecodeOptionalJSON_EmptyBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/update-note-pinned/n1", http.NoBody)
	w := httptest.NewRecorder()

	var dst PinRequest
	if !decodeOptionalJSON(w, req, &dst) {
		t.Fatalf("decodeOptionalJSON() failed, status %d", w.Code)
	}
	if dst.IsPinned != nil {
		t.Error("IsPinned should stay nil for empty body")
	}

	w = httptest.NewRecorder()
	if decodeJSON(w, httptest.NewRequest(http.MethodPost, "/add-note", http.NoBody), &dst) {
		t.Fatal("decodeJSON() should reject empty body")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
