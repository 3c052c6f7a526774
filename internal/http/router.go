package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"notes-api/internal/handlers"
	"notes-api/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Notes    service.NotesService
	Unscoped service.UnscopedNotesService
	Accounts service.AccountService
	Search   service.SearchService

	// Store is pinged by the health check.
	Store handlers.Pinger
	// VectorStore is nil when semantic search is disabled.
	VectorStore handlers.VectorStoreChecker
	Collection  string

	CORSOrigins []string
	// RateLimit is requests per minute per client IP. Zero disables limiting.
	RateLimit int
	// Production enables secure cookies and HSTS.
	Production bool
	// UnscopedRoutes mounts the routes that address notes without ownership checks.
	UnscopedRoutes bool
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeaders(deps.Production))
	r.Use(CORS(deps.CORSOrigins))
	if deps.RateLimit > 0 {
		r.Use(httprate.LimitByIP(deps.RateLimit, time.Minute))
	}
	r.Use(BodyLimit(MaxBodyBytes))

	notesHandler := handlers.NewNotesHandler(deps.Notes)
	authHandler := handlers.NewAuthHandler(deps.Accounts, deps.Production)
	publicHandler := handlers.NewPublicHandler(deps.Notes, deps.Accounts)
	searchHandler := handlers.NewSearchHandler(deps.Search)
	indexHandler := handlers.NewIndexHandler(deps.Search)
	noteViewHandler := handlers.NewNoteViewHandler(deps.Notes)
	healthHandler := handlers.NewHealthHandler(deps.Store, deps.VectorStore, deps.Collection)
	landingHandler := handlers.NewLandingHandler(deps.Search.Enabled())

	r.Method(http.MethodGet, "/", landingHandler)
	r.Method(http.MethodGet, "/health", healthHandler)

	// Accounts
	r.Post("/auth/register", authHandler.Register)
	r.Post("/create-account", authHandler.CreateAccount)
	r.Post("/auth/login", authHandler.Login)
	r.Post("/auth/cookie/login", authHandler.CookieLogin)
	r.Post("/auth/logout", authHandler.Logout)
	r.Get("/auth/verify", authHandler.Verify)
	r.Get("/auth/me", authHandler.Me)

	// Public, no caller identity
	r.Get("/public-notes/{userId}", publicHandler.PublicNotes)
	r.Method(http.MethodGet, "/public-notes/{userId}/{noteId}/view", noteViewHandler)
	r.Get("/public-profile/{userId}", publicHandler.PublicProfile)
	r.Get("/notes-with-authors", publicHandler.NotesWithAuthors)
	r.Post("/answer-question/{userId}", searchHandler.Answer)

	// Owner-scoped
	r.Group(func(r chi.Router) {
		r.Use(Authenticate(deps.Accounts))

		r.Get("/auth/profile", authHandler.Profile)
		r.Get("/get-user", authHandler.Profile)

		r.Post("/add-note", notesHandler.Create)
		r.Put("/edit-note/{noteId}", notesHandler.Edit)
		r.Put("/update-note-pinned/{noteId}", notesHandler.UpdatePinned)
		r.Put("/update-note-tags/{noteId}", notesHandler.UpdateTags)
		r.Put("/notes/{noteId}/visibility", notesHandler.SetVisibility)
		r.Get("/get-note/{noteId}", notesHandler.Get)
		r.Delete("/delete-note/{noteId}", notesHandler.Delete)
		r.Get("/get-all-notes", notesHandler.List)
		r.Get("/search-notes", notesHandler.Search)
		r.Post("/search-notes", searchHandler.SemanticSearch)
		r.Method(http.MethodPost, "/index", indexHandler)
	})

	if deps.UnscopedRoutes {
		legacyHandler := handlers.NewLegacyHandler(deps.Notes, deps.Unscoped, deps.Accounts)

		r.Post("/notes", legacyHandler.Create)
		r.Get("/notes", legacyHandler.List)
		r.Get("/notes/{id}", legacyHandler.Get)
		r.Put("/notes/{id}", legacyHandler.Replace)
		r.Patch("/notes/{id}/tags", legacyHandler.SetTags)
		r.Patch("/notes/{id}/pin", legacyHandler.TogglePin)
		r.Delete("/notes/{id}", legacyHandler.Delete)
		r.Get("/users", legacyHandler.ListUsers)
		r.Post("/users", authHandler.Register)
		r.Get("/users/{id}/notes", legacyHandler.ListUserNotes)
	}

	return r
}
