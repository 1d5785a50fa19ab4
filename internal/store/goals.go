package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/claude/fittrack/internal/models"
)

// GoalStore owns the goal collection.
type GoalStore struct {
	mu    sync.RWMutex
	goals []models.Goal
}

// NewGoalStore returns an empty store.
func NewGoalStore() *GoalStore {
	return &GoalStore{}
}

// Add creates a goal from validated input: active, zero progress, fresh id
// and creation timestamp, prepended newest-first.
func (s *GoalStore) Add(in models.GoalInput) models.Goal {
	g := models.Goal{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		TargetType:   in.TargetType,
		TargetValue:  in.TargetValue,
		CurrentValue: 0,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Status:       models.StatusActive,
		CreatedAt:    time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = append([]models.Goal{g}, s.goals...)
	return g
}

// Update replaces only the fields set on patch and returns the updated goal,
// or ErrNotFound.
func (s *GoalStore) Update(id string, patch models.GoalPatch) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Goal{}, ErrNotFound
	}

	g := &s.goals[idx]
	if patch.Title != nil {
		g.Title = *patch.Title
	}
	if patch.Description != nil {
		g.Description = *patch.Description
	}
	if patch.TargetType != nil {
		g.TargetType = *patch.TargetType
	}
	if patch.TargetValue != nil {
		g.TargetValue = *patch.TargetValue
	}
	if patch.StartDate != nil {
		g.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		g.EndDate = *patch.EndDate
	}
	return *g, nil
}

// Delete removes the goal matching id, or returns ErrNotFound.
func (s *GoalStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	s.goals = append(s.goals[:idx], s.goals[idx+1:]...)
	return nil
}

// SetProgress sets a goal's progress, clamped to >= 0. Progress only applies
// while the goal is active; completed and cancelled goals ignore updates.
// Reaching the target value transitions the goal to completed.
func (s *GoalStore) SetProgress(id string, value float64) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Goal{}, ErrNotFound
	}

	g := &s.goals[idx]
	if g.Status != models.StatusActive {
		return *g, nil
	}
	if value < 0 {
		value = 0
	}
	g.CurrentValue = value
	if g.CurrentValue >= g.TargetValue {
		g.Status = models.StatusCompleted
	}
	return *g, nil
}

// Complete forces the goal to completed with its progress pinned to the
// target value, regardless of current progress.
func (s *GoalStore) Complete(id string) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Goal{}, ErrNotFound
	}
	g := &s.goals[idx]
	g.Status = models.StatusCompleted
	g.CurrentValue = g.TargetValue
	return *g, nil
}

// Cancel forces the goal to cancelled. Progress is left untouched.
func (s *GoalStore) Cancel(id string) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Goal{}, ErrNotFound
	}
	g := &s.goals[idx]
	g.Status = models.StatusCancelled
	return *g, nil
}

// Reactivate forces the goal back to active from any status. Progress is
// left untouched, so a reactivated goal that still meets its target will
// complete again on the next workout-driven synchronization.
func (s *GoalStore) Reactivate(id string) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Goal{}, ErrNotFound
	}
	g := &s.goals[idx]
	g.Status = models.StatusActive
	return *g, nil
}

// Get returns the goal matching id, or ErrNotFound.
func (s *GoalStore) Get(id string) (models.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.indexOf(id); idx >= 0 {
		return s.goals[idx], nil
	}
	return models.Goal{}, ErrNotFound
}

// All returns a copy of the collection in stored (newest-first) order.
func (s *GoalStore) All() []models.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

// Active returns all goals with status active.
func (s *GoalStore) Active() []models.Goal {
	return s.byStatus(models.StatusActive)
}

// Completed returns all goals with status completed.
func (s *GoalStore) Completed() []models.Goal {
	return s.byStatus(models.StatusCompleted)
}

func (s *GoalStore) byStatus(status models.GoalStatus) []models.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Goal
	for _, g := range s.goals {
		if g.Status == status {
			out = append(out, g)
		}
	}
	return out
}

// ProgressPercent returns min(100, current/target*100), or 0 when the goal
// is absent.
func (s *GoalStore) ProgressPercent(id string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return 0
	}
	g := s.goals[idx]
	if g.TargetValue <= 0 {
		return 0
	}
	pct := g.CurrentValue / g.TargetValue * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// Replace swaps in a previously persisted collection.
func (s *GoalStore) Replace(gs []models.Goal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = make([]models.Goal, len(gs))
	copy(s.goals, gs)
}

// indexOf returns the position of id, or -1. Callers hold the lock.
func (s *GoalStore) indexOf(id string) int {
	for i := range s.goals {
		if s.goals[i].ID == id {
			return i
		}
	}
	return -1
}
