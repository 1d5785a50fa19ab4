package server

import (
	"encoding/json"
	"net/http"

	"github.com/claude/fittrack/internal/models"
)

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.Settings())
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var in models.Settings
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !in.Theme.Valid() {
		writeFieldErrors(w, map[string]string{"theme": "must be one of light, dark, system"})
		return
	}
	writeJSON(w, http.StatusOK, s.tracker.SetTheme(in.Theme))
}
