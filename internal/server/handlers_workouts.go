package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/claude/fittrack/internal/models"
	"github.com/claude/fittrack/internal/store"
)

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var ws []models.Workout
	startStr, endStr := q.Get("start"), q.Get("end")
	if startStr != "" || endStr != "" {
		start, end, err := parseDateRange(startStr, endStr)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		ws = s.tracker.Workouts().ByDateRange(start, end)
	} else {
		ws = s.tracker.Workouts().All()
	}

	if typ := q.Get("type"); typ != "" {
		filtered := ws[:0]
		for _, workout := range ws {
			if workout.Type == models.ExerciseType(typ) {
				filtered = append(filtered, workout)
			}
		}
		ws = filtered
	}

	if ws == nil {
		ws = []models.Workout{}
	}
	writeJSON(w, http.StatusOK, ws)
}

func (s *Server) handleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	var in models.WorkoutInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if errs := s.valid.Workout(in); errs != nil {
		writeFieldErrors(w, errs)
		return
	}
	writeJSON(w, http.StatusCreated, s.tracker.AddWorkout(in))
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	workout, err := s.tracker.Workouts().Get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleUpdateWorkout(w http.ResponseWriter, r *http.Request) {
	var patch models.WorkoutPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	current, err := s.tracker.Workouts().Get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	// Invariants like the strength-field rule span the patch and the stored
	// record, so validate the merged result rather than the patch alone.
	if errs := s.valid.WorkoutUpdate(current, patch); errs != nil {
		writeFieldErrors(w, errs)
		return
	}

	workout, err := s.tracker.UpdateWorkout(current.ID, patch)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	if err := s.tracker.DeleteWorkout(chi.URLParam(r, "id")); err != nil {
		s.writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleWorkoutTotals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.Workouts().Totals())
}

// writeStoreError maps store errors to HTTP status codes.
func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeFieldErrors reports validation failures per field; the mutation was
// not applied.
func writeFieldErrors(w http.ResponseWriter, errs map[string]string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
}

// parseDateRange parses start/end query parameters as calendar dates. Both
// must be present when either is.
func parseDateRange(startStr, endStr string) (models.Date, models.Date, error) {
	if startStr == "" || endStr == "" {
		return models.Date{}, models.Date{}, errors.New("start and end parameters are both required")
	}
	start, err := models.ParseDate(startStr)
	if err != nil {
		return models.Date{}, models.Date{}, err
	}
	end, err := models.ParseDate(endStr)
	if err != nil {
		return models.Date{}, models.Date{}, err
	}
	return start, end, nil
}
