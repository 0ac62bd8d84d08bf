package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/poiesic/strand/storage"
)

// Server routes HTTP requests to the analysis core and the record
// repository.
type Server struct {
	records storage.RecordRepository
	logger  *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// New creates a server over the given repository.
func New(records storage.RecordRepository, opts ...Option) (*Server, error) {
	if records == nil {
		return nil, ErrRecordRepositoryRequired
	}

	s := &Server{
		records: records,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Handler builds the router with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(s.logger))

	r.Get("/health", s.health)

	r.Route("/strings", func(r chi.Router) {
		r.Post("/", s.createString)
		r.Get("/", s.listStrings)
		r.Get("/filter-by-natural-language", s.naturalLanguageFilter)
		r.Get("/{identifier}", s.getString)
		r.Delete("/{identifier}", s.deleteString)
	})

	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
