// Package store owns the two mutable entity collections (workouts, goals)
// and the synchronization between them. Stores are constructed explicitly
// and passed by reference; there are no package-level singletons.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/claude/fittrack/internal/models"
)

// ErrNotFound is returned when no record matches the given id.
var ErrNotFound = errors.New("not found")

// WorkoutStore owns the workout collection. Registered change callbacks run
// to completion before a mutation returns, so goal progress and persisted
// state are already consistent when the caller observes the result.
type WorkoutStore struct {
	mu       sync.RWMutex
	workouts []models.Workout
	onChange []func([]models.Workout)
}

// NewWorkoutStore returns an empty store.
func NewWorkoutStore() *WorkoutStore {
	return &WorkoutStore{}
}

// OnChange registers a callback invoked with a collection snapshot after
// every successful mutation. Register callbacks before use; registration is
// not safe concurrently with mutations.
func (s *WorkoutStore) OnChange(fn func([]models.Workout)) {
	s.onChange = append(s.onChange, fn)
}

func (s *WorkoutStore) notify() {
	snap := s.All()
	for _, fn := range s.onChange {
		fn(snap)
	}
}

// Add creates a workout from validated input with a fresh id and creation
// timestamp, prepended so the collection reads newest-first.
func (s *WorkoutStore) Add(in models.WorkoutInput) models.Workout {
	w := models.Workout{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Type:      in.Type,
		Duration:  in.Duration,
		Calories:  in.Calories,
		Sets:      in.Sets,
		Reps:      in.Reps,
		Weight:    in.Weight,
		Intensity: in.Intensity,
		Notes:     in.Notes,
		Date:      in.Date,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.workouts = append([]models.Workout{w}, s.workouts...)
	s.mu.Unlock()

	s.notify()
	return w
}

// Update replaces only the fields set on patch and returns the updated
// record, or ErrNotFound.
func (s *WorkoutStore) Update(id string, patch models.WorkoutPatch) (models.Workout, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.Workout{}, ErrNotFound
	}

	w := &s.workouts[idx]
	if patch.Name != nil {
		w.Name = *patch.Name
	}
	if patch.Type != nil {
		w.Type = *patch.Type
	}
	if patch.Duration != nil {
		w.Duration = *patch.Duration
	}
	if patch.Calories != nil {
		w.Calories = *patch.Calories
	}
	if patch.Sets != nil {
		w.Sets = patch.Sets
	}
	if patch.Reps != nil {
		w.Reps = patch.Reps
	}
	if patch.Weight != nil {
		w.Weight = patch.Weight
	}
	if patch.Intensity != nil {
		w.Intensity = *patch.Intensity
	}
	if patch.Notes != nil {
		w.Notes = *patch.Notes
	}
	if patch.Date != nil {
		w.Date = *patch.Date
	}
	updated := *w
	s.mu.Unlock()

	s.notify()
	return updated, nil
}

// Delete removes the record matching id, or returns ErrNotFound.
func (s *WorkoutStore) Delete(id string) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.workouts = append(s.workouts[:idx], s.workouts[idx+1:]...)
	s.mu.Unlock()

	s.notify()
	return nil
}

// Get returns the workout matching id, or ErrNotFound.
func (s *WorkoutStore) Get(id string) (models.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.indexOf(id); idx >= 0 {
		return s.workouts[idx], nil
	}
	return models.Workout{}, ErrNotFound
}

// All returns a copy of the collection in stored (newest-first) order.
func (s *WorkoutStore) All() []models.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Workout, len(s.workouts))
	copy(out, s.workouts)
	return out
}

// ByDateRange returns all workouts whose date falls within [start, end],
// inclusive, compared as calendar dates.
func (s *WorkoutStore) ByDateRange(start, end models.Date) []models.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Workout
	for _, w := range s.workouts {
		if w.Date.Before(start) || w.Date.After(end) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// ByType returns all workouts with the given exercise type.
func (s *WorkoutStore) ByType(t models.ExerciseType) []models.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Workout
	for _, w := range s.workouts {
		if w.Type == t {
			out = append(out, w)
		}
	}
	return out
}

// Totals sums duration and calories and counts workouts across the whole
// collection. An empty collection yields zeros.
func (s *WorkoutStore) Totals() models.Totals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var t models.Totals
	for _, w := range s.workouts {
		t.Count++
		t.Duration += w.Duration
		t.Calories += w.Calories
	}
	return t
}

// Replace swaps in a previously persisted collection without firing change
// callbacks; callers run synchronization themselves after restoring state.
func (s *WorkoutStore) Replace(ws []models.Workout) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workouts = make([]models.Workout, len(ws))
	copy(s.workouts, ws)
}

// indexOf returns the position of id, or -1. Callers hold the lock.
func (s *WorkoutStore) indexOf(id string) int {
	for i := range s.workouts {
		if s.workouts[i].ID == id {
			return i
		}
	}
	return -1
}
