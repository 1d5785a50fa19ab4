package store

import "github.com/claude/fittrack/internal/models"

// Syncer recomputes derived goal progress from the workout collection. It is
// the single coupling between the two stores: the workout store invokes Sync
// through its change callback after every mutation, so goal progress is
// consistent before the mutating call returns.
type Syncer struct {
	goals *GoalStore
}

// NewSyncer returns a Syncer targeting the given goal store.
func NewSyncer(goals *GoalStore) *Syncer {
	return &Syncer{goals: goals}
}

// Sync recomputes CurrentValue for every active goal with a derived target
// type. Only workouts dated inside the goal's [StartDate, EndDate] window
// count toward it; weight_lifted goals are user-entered and skipped.
func (s *Syncer) Sync(workouts []models.Workout) {
	for _, g := range s.goals.Active() {
		if !g.TargetType.Derived() {
			continue
		}

		var agg float64
		for _, w := range workouts {
			if w.Date.Before(g.StartDate) || w.Date.After(g.EndDate) {
				continue
			}
			switch g.TargetType {
			case models.TargetWorkoutsCount:
				agg++
			case models.TargetTotalDuration:
				agg += w.Duration
			case models.TargetCaloriesBurned:
				agg += w.Calories
			}
		}

		// SetProgress only errors on a vanished id.
		_, _ = s.goals.SetProgress(g.ID, agg)
	}
}
