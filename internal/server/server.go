// Package server is the HTTP adapter the browser dashboard consumes. It
// holds no state of its own; all reads and mutations go through the tracker.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/claude/fittrack/internal/tracker"
	"github.com/claude/fittrack/internal/validate"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	tracker *tracker.Tracker
	valid   *validate.Validator
	log     *slog.Logger
	router  chi.Router
	now     func() time.Time // injected for tests
}

// New creates a Server with all routes configured.
func New(tr *tracker.Tracker, log *slog.Logger) *Server {
	s := &Server{
		tracker: tr,
		valid:   validate.New(),
		log:     log,
		router:  chi.NewRouter(),
		now:     time.Now,
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

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Route("/workouts", func(r chi.Router) {
			r.Get("/", s.handleListWorkouts)
			r.Post("/", s.handleCreateWorkout)
			r.Get("/totals", s.handleWorkoutTotals)
			r.Get("/{id}", s.handleGetWorkout)
			r.Patch("/{id}", s.handleUpdateWorkout)
			r.Delete("/{id}", s.handleDeleteWorkout)
		})

		r.Route("/goals", func(r chi.Router) {
			r.Get("/", s.handleListGoals)
			r.Post("/", s.handleCreateGoal)
			r.Get("/{id}", s.handleGetGoal)
			r.Patch("/{id}", s.handleUpdateGoal)
			r.Delete("/{id}", s.handleDeleteGoal)
			r.Put("/{id}/progress", s.handleGoalProgress)
			r.Get("/{id}/percent", s.handleGoalPercent)
			r.Post("/{id}/complete", s.handleCompleteGoal)
			r.Post("/{id}/cancel", s.handleCancelGoal)
			r.Post("/{id}/reactivate", s.handleReactivateGoal)
		})

		r.Get("/stats/weekly", s.handleWeeklySummary)
		r.Get("/stats/distribution", s.handleDistribution)
		r.Get("/stats/streak", s.handleStreak)
		r.Get("/stats/totals", s.handleTotals)

		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handleUpdateSettings)
	})
}
