package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meltforce/liftlog/internal/tracker"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	tracker *tracker.Tracker
	log     *slog.Logger
	apiKey  string
	router  chi.Router
}

// New creates a new Server with all routes configured.
func New(t *tracker.Tracker, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		tracker: t,
		log:     log,
		apiKey:  apiKey,
		router:  chi.NewRouter(),
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

	// Read endpoints
	s.router.Get("/api/v1/health", s.handleHealth)
	s.router.Get("/api/v1/athletes", s.handleAthletes)
	s.router.Get("/api/v1/exercises", s.handleListExercises)
	s.router.Get("/api/v1/summary", s.handleSummary)
	s.router.Get("/api/v1/analytics/max-lifts", s.handleMaxLifts)
	s.router.Get("/api/v1/analytics/weekly-volume", s.handleWeeklyVolume)
	s.router.Get("/api/v1/analytics/weekly-frequency", s.handleWeeklyFrequency)

	// Write endpoints (API key required)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/api/v1/log", s.handleSubmitLog)
		r.Post("/api/v1/exercises", s.handleAddExercise)
	})
}
