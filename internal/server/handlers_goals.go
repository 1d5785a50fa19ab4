package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/claude/fittrack/internal/models"
)

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	var gs []models.Goal
	switch r.URL.Query().Get("status") {
	case "active":
		gs = s.tracker.Goals().Active()
	case "completed":
		gs = s.tracker.Goals().Completed()
	default:
		gs = s.tracker.Goals().All()
	}
	if gs == nil {
		gs = []models.Goal{}
	}
	writeJSON(w, http.StatusOK, gs)
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var in models.GoalInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if errs := s.valid.Goal(in); errs != nil {
		writeFieldErrors(w, errs)
		return
	}
	writeJSON(w, http.StatusCreated, s.tracker.AddGoal(in))
}

func (s *Server) handleGetGoal(w http.ResponseWriter, r *http.Request) {
	goal, err := s.tracker.Goals().Get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	var patch models.GoalPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	current, err := s.tracker.Goals().Get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	// The end-after-start rule holds on the merged window, even when the
	// patch moves only one of the two dates.
	if errs := s.valid.GoalUpdate(current, patch); errs != nil {
		writeFieldErrors(w, errs)
		return
	}

	goal, err := s.tracker.UpdateGoal(current.ID, patch)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := s.tracker.DeleteGoal(chi.URLParam(r, "id")); err != nil {
		s.writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGoalProgress(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Value float64 `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	goal, err := s.tracker.SetGoalProgress(chi.URLParam(r, "id"), body.Value)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

func (s *Server) handleGoalPercent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.tracker.Goals().Get(id); err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"percent": s.tracker.Goals().ProgressPercent(id)})
}

func (s *Server) handleCompleteGoal(w http.ResponseWriter, r *http.Request) {
	goal, err := s.tracker.CompleteGoal(chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

func (s *Server) handleCancelGoal(w http.ResponseWriter, r *http.Request) {
	goal, err := s.tracker.CancelGoal(chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

func (s *Server) handleReactivateGoal(w http.ResponseWriter, r *http.Request) {
	goal, err := s.tracker.ReactivateGoal(chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}
