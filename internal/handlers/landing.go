package handlers

import (
	"html/template"
	"net/http"

	"notes-api/internal/contextutil"
)

var landingTemplate = template.Must(template.New("landing").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Notes API</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 720px;
      background: #050b18;
      color: #e4ecff;
    }
    code {
      background: rgba(99, 102, 241, 0.18);
      padding: 2px 5px;
      border-radius: 6px;
    }
  </style>
</head>
<body>
  <h1>Notes API</h1>
  <p>The API is running. Authenticate with <code>POST /auth/login</code> and send the token as a Bearer credential.</p>
  <p>Semantic search: {{if .Semantic}}enabled{{else}}disabled{{end}}.</p>
</body>
</html>`))

// LandingHandler serves the HTML page at the site root.
type LandingHandler struct {
	semantic bool
}

// NewLandingHandler creates a new LandingHandler.
func NewLandingHandler(semantic bool) *LandingHandler {
	return &LandingHandler{semantic: semantic}
}

func (h *LandingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := landingTemplate.Execute(w, struct{ Semantic bool }{h.semantic}); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to render landing page", "error", err)
	}
}
