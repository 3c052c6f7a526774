package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"notes-api/internal/contextutil"
)

type stubVerifier struct {
	userID string
	err    error
	got    string
}

func (s *stubVerifier) VerifyToken(_ context.Context, token string) (string, error) {
	s.got = token
	return s.userID, s.err
}

func TestLoggerMiddleware(t *testing.T) {
	var capturedCtx context.Context
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedCtx = r.Context()
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	LoggerMiddleware(handler).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("LoggerMiddleware() status = %v, want %v", w.Code, http.StatusOK)
	}
	if capturedCtx == nil {
		t.Fatal("LoggerMiddleware() should capture context")
	}
	if contextutil.LoggerFromContext(capturedCtx) == nil {
		t.Error("LoggerMiddleware() should add logger to context")
	}
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
	}{
		{name: "regular request", method: http.MethodPost, path: "/add-note", statusCode: http.StatusCreated},
		{name: "health check", method: http.MethodGet, path: "/health", statusCode: http.StatusOK},
		{name: "failing health check", method: http.MethodGet, path: "/health", statusCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			RequestLogger(handler).ServeHTTP(w, req)

			if w.Code != tt.statusCode {
				t.Errorf("RequestLogger() status = %v, want %v", w.Code, tt.statusCode)
			}
		})
	}
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	w := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusNotFound)

	if rw.statusCode != http.StatusNotFound {
		t.Errorf("responseWriter.WriteHeader() statusCode = %v, want %v", rw.statusCode, http.StatusNotFound)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("responseWriter.WriteHeader() underlying status = %v, want %v", w.Code, http.StatusNotFound)
	}
}

func TestCORS(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := CORS([]string{"http://localhost:5173"})

	tests := []struct {
		name           string
		method         string
		origin         string
		preflight      bool
		wantStatusCode int
		wantOrigin     string
	}{
		{
			name:           "preflight from allowed origin",
			method:         http.MethodOptions,
			origin:         "http://localhost:5173",
			preflight:      true,
			wantStatusCode: http.StatusNoContent,
			wantOrigin:     "http://localhost:5173",
		},
		{
			name:           "request from allowed origin",
			method:         http.MethodPost,
			origin:         "http://localhost:5173",
			wantStatusCode: http.StatusOK,
			wantOrigin:     "http://localhost:5173",
		},
		{
			name:           "request from other origin",
			method:         http.MethodPost,
			origin:         "http://evil.example",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "request without origin",
			method:         http.MethodPost,
			wantStatusCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPut)
			}
			w := httptest.NewRecorder()

			middleware(handler).ServeHTTP(w, req)

			if w.Code != tt.wantStatusCode {
				t.Errorf("CORS() status = %v, want %v", w.Code, tt.wantStatusCode)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			if tt.wantOrigin != "" && w.Header().Get("Access-Control-Allow-Credentials") != "true" {
				t.Error("CORS() should allow credentials for allowed origins")
			}
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	for _, hsts := range []bool{false, true} {
		w := httptest.NewRecorder()
		SecurityHeaders(hsts)(handler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if got := w.Header().Get("X-Frame-Options"); got != "DENY" {
			t.Errorf("X-Frame-Options = %q, want DENY", got)
		}
		if got := w.Header().Get("Strict-Transport-Security") != ""; got != hsts {
			t.Errorf("HSTS present = %v, want %v", got, hsts)
		}
	}
}

func TestBodyLimit(t *testing.T) {
	var readErr error
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	})

	req := httptest.NewRequest(http.MethodPost, "/add-note", strings.NewReader(strings.Repeat("x", 64)))
	BodyLimit(16)(handler).ServeHTTP(httptest.NewRecorder(), req)

	var maxErr *http.MaxBytesError
	if !errors.As(readErr, &maxErr) {
		t.Errorf("reading oversized body error = %v, want *http.MaxBytesError", readErr)
	}
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		cookie     string
		verifier   *stubVerifier
		wantStatus int
		wantUserID string
		wantToken  string
	}{
		{
			name:       "no credentials",
			verifier:   &stubVerifier{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "bearer header",
			header:     "Bearer abc",
			verifier:   &stubVerifier{userID: "u1"},
			wantStatus: http.StatusOK,
			wantUserID: "u1",
			wantToken:  "abc",
		},
		{
			name:       "cookie",
			cookie:     "from-cookie",
			verifier:   &stubVerifier{userID: "u2"},
			wantStatus: http.StatusOK,
			wantUserID: "u2",
			wantToken:  "from-cookie",
		},
		{
			name:       "rejected token",
			header:     "Bearer expired",
			verifier:   &stubVerifier{err: errors.New("token is expired")},
			wantStatus: http.StatusUnauthorized,
			wantToken:  "expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = contextutil.UserIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/get-all-notes", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "accessToken", Value: tt.cookie})
			}
			w := httptest.NewRecorder()

			Authenticate(tt.verifier)(handler).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Authenticate() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if gotUserID != tt.wantUserID {
				t.Errorf("user id = %q, want %q", gotUserID, tt.wantUserID)
			}
			if tt.verifier.got != tt.wantToken {
				t.Errorf("verified token = %q, want %q", tt.verifier.got, tt.wantToken)
			}
		})
	}
}
