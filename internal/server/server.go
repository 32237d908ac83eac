package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/claude/planlog/internal/ingest/sheet"
	"github.com/claude/planlog/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	sheet  *sheet.Provider
	log    *slog.Logger
	apiKey string
	router chi.Router

	// now supplies the date for renders that don't pass one; swapped
	// out in tests for deterministic output.
	now func() time.Time
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, sheetProvider *sheet.Provider, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		sheet:  sheetProvider,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
		now:    time.Now,
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Stateless render: paste in, text out. No auth — nothing is stored.
	s.router.Get("/api/v1/render", s.handleRender)

	// Persisting ingest (API key required)
	s.router.Route("/api/v1/logs", func(r chi.Router) {
		r.With(APIKeyAuth(s.apiKey)).Post("/", s.handleCreateLog)
		r.Get("/", s.handleQueryLogs)
		r.Get("/{id}", s.handleGetLog)
	})

	s.router.Get("/api/v1/volume", s.handleVolume)
	s.router.Get("/api/v1/stats", s.handleStats)
}
