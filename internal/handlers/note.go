package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"notes-api/internal/contextutil"
	"notes-api/internal/service"
)

// NoteViewHandler serves public notes as rendered HTML pages.
type NoteViewHandler struct {
	notes    service.NotesService
	parser   goldmark.Markdown
	template *template.Template
}

// notePageData holds template data for rendered note pages.
type notePageData struct {
	Title   string
	Tags    []string
	Created string
	Content template.HTML
}

var notePageTemplate = template.Must(template.New("note").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    :root {
      color-scheme: dark;
    }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 900px;
      line-height: 1.7;
      background: #050b18;
      color: #e4ecff;
    }
    header {
      margin-bottom: 2rem;
      border-bottom: 1px solid rgba(148, 163, 184, 0.2);
      padding-bottom: 1.5rem;
    }
    h1 {
      margin-top: 0;
      color: #fff;
    }
    article {
      background: rgba(12, 19, 35, 0.85);
      border: 1px solid rgba(99, 102, 241, 0.2);
      border-radius: 16px;
      padding: 2rem;
    }
    pre {
      background: #0f172a;
      padding: 1rem;
      overflow-x: auto;
      border-radius: 10px;
    }
    code {
      font-family: 'SFMono-Regular', Consolas, 'Liberation Mono', Menlo, monospace;
    }
    .tag {
      display: inline-block;
      margin-right: 0.4rem;
      padding: 0 0.5rem;
      border-radius: 999px;
      background: rgba(99, 102, 241, 0.18);
      color: #cbd5ff;
      font-size: 0.85rem;
    }
    .meta {
      color: #94a3b8;
      font-size: 0.95rem;
    }
  </style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
    <p class="meta">{{.Created}}</p>
    {{range .Tags}}<span class="tag">{{.}}</span>{{end}}
  </header>
  <article>{{.Content}}</article>
</body>
</html>`))

// NewNoteViewHandler creates a new handler for rendering public notes.
func NewNoteViewHandler(notes service.NotesService) *NoteViewHandler {
	return &NoteViewHandler{
		notes: notes,
		// Raw HTML stays escaped: note bodies are user input.
		parser: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
		template: notePageTemplate,
	}
}

// ServeHTTP handles GET /public-notes/{userId}/{noteId}/view.
func (h *NoteViewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	userID := strings.TrimSpace(chi.URLParam(r, "userId"))
	noteID := strings.TrimSpace(chi.URLParam(r, "noteId"))

	note, err := h.notes.GetPublic(ctx, userID, noteID)
	if err != nil {
		handleServiceError(w, ctx, err, "Note")
		return
	}

	htmlContent, err := h.renderMarkdown([]byte(note.Content))
	if err != nil {
		logger.ErrorContext(ctx, "failed to render markdown", "note_id", note.ID, "error", err)
		http.Error(w, "failed to render note", http.StatusInternalServerError)
		return
	}

	pageData := notePageData{
		Title:   note.Title,
		Tags:    note.Tags,
		Created: formatDate(note.CreatedAt),
		Content: template.HTML(htmlContent),
	}

	var page bytes.Buffer
	if err := h.template.Execute(&page, pageData); err != nil {
		logger.ErrorContext(ctx, "failed to execute note template", "note_id", note.ID, "error", err)
		http.Error(w, "failed to render note", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = page.WriteTo(w)
}

func (h *NoteViewHandler) renderMarkdown(content []byte) (string, error) {
	var buf bytes.Buffer
	if err := h.parser.Convert(content, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
