package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/booksum/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yuin/goldmark"
)

// Server is the local preview server: it regenerates the summary on each
// request and serves the notes as HTML.
type Server struct {
	router chi.Router
	log    *slog.Logger
	opts   config.Options
	md     goldmark.Markdown
}

// NewServer creates and configures the preview server.
func NewServer(opts config.Options, log *slog.Logger) *Server {
	s := &Server{
		log:  log,
		opts: opts,
		md:   goldmark.New(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleSummary)
	r.Get("/summary.md", s.handleSummaryRaw)
	// Wildcard last; links inside the rendered summary resolve here.
	r.Get("/*", s.handleNote)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
