package server

import (
	"net/http"

	"github.com/claude/fittrack/internal/models"
	"github.com/claude/fittrack/internal/stats"
)

func (s *Server) handleWeeklySummary(w http.ResponseWriter, r *http.Request) {
	today := models.DateOf(s.now())
	writeJSON(w, http.StatusOK, stats.WeeklySummary(s.tracker.Workouts().All(), today))
}

func (s *Server) handleDistribution(w http.ResponseWriter, r *http.Request) {
	dist := stats.Distribution(s.tracker.Workouts().All())
	if dist == nil {
		dist = []stats.TypeCount{}
	}
	writeJSON(w, http.StatusOK, dist)
}

func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	today := models.DateOf(s.now())
	writeJSON(w, http.StatusOK, map[string]int{"streak": stats.Streak(s.tracker.Workouts().All(), today)})
}

func (s *Server) handleTotals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stats.Totals(s.tracker.Workouts().All()))
}
