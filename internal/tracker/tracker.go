// Package tracker wires the entity stores, goal synchronization, and
// persistence into the single application service the adapters (HTTP, MCP,
// import CLI) talk to.
package tracker

import (
	"log/slog"
	"sync"
	"time"

	"github.com/claude/fittrack/internal/models"
	"github.com/claude/fittrack/internal/storage"
	"github.com/claude/fittrack/internal/store"
)

// Tracker owns one workout store, one goal store, and the one-directional
// synchronization between them. Every mutation runs store update, goal sync,
// and persistence to completion before returning, so any read issued
// afterwards observes fully synchronized state.
type Tracker struct {
	log      *slog.Logger
	db       *storage.DB
	workouts *store.WorkoutStore
	goals    *store.GoalStore
	syncer   *store.Syncer

	mu       sync.Mutex
	settings models.Settings
	nextSub  int
	subs     map[int]func(models.Settings)
}

// New constructs a Tracker around the given blob store. The stores start
// empty; call Load to restore persisted state.
func New(db *storage.DB, log *slog.Logger) *Tracker {
	t := &Tracker{
		log:      log,
		db:       db,
		workouts: store.NewWorkoutStore(),
		goals:    store.NewGoalStore(),
		settings: models.DefaultSettings(),
		subs:     make(map[int]func(models.Settings)),
	}
	t.syncer = store.NewSyncer(t.goals)
	t.workouts.OnChange(t.syncer.Sync)
	return t
}

// Workouts exposes the workout store for read paths.
func (t *Tracker) Workouts() *store.WorkoutStore { return t.workouts }

// Goals exposes the goal store for read paths.
func (t *Tracker) Goals() *store.GoalStore { return t.goals }

// Load restores both collections and the settings blob, substituting sample
// data when a blob is missing or unreadable, then runs an initial sync so
// restored goal progress matches the restored workouts.
func (t *Tracker) Load() {
	today := models.DateOf(time.Now())

	ws, err := t.db.LoadWorkouts()
	if err != nil {
		t.log.Warn("loading workouts, using samples", "error", err)
		ws = storage.SampleWorkouts(today)
	}
	t.workouts.Replace(ws)

	gs, err := t.db.LoadGoals()
	if err != nil {
		t.log.Warn("loading goals, using samples", "error", err)
		gs = storage.SampleGoals(today)
	}
	t.goals.Replace(gs)

	settings, err := t.db.LoadSettings()
	if err != nil {
		t.log.Warn("loading settings, using defaults", "error", err)
		settings = models.DefaultSettings()
	}
	t.mu.Lock()
	t.settings = settings
	t.mu.Unlock()

	t.syncer.Sync(t.workouts.All())
}

// AddWorkout logs a workout, re-derives goal progress, and persists both
// collections before returning.
func (t *Tracker) AddWorkout(in models.WorkoutInput) models.Workout {
	w := t.workouts.Add(in)
	t.persist()
	return w
}

// UpdateWorkout applies a partial update, re-derives goal progress, and
// persists.
func (t *Tracker) UpdateWorkout(id string, patch models.WorkoutPatch) (models.Workout, error) {
	w, err := t.workouts.Update(id, patch)
	if err != nil {
		return models.Workout{}, err
	}
	t.persist()
	return w, nil
}

// DeleteWorkout removes a workout, re-derives goal progress, and persists.
func (t *Tracker) DeleteWorkout(id string) error {
	if err := t.workouts.Delete(id); err != nil {
		return err
	}
	t.persist()
	return nil
}

// AddGoal creates a goal. Progress starts at zero and is picked up by the
// next workout-driven synchronization for derived targets.
func (t *Tracker) AddGoal(in models.GoalInput) models.Goal {
	g := t.goals.Add(in)
	t.persist()
	return g
}

// UpdateGoal applies a partial update and persists.
func (t *Tracker) UpdateGoal(id string, patch models.GoalPatch) (models.Goal, error) {
	g, err := t.goals.Update(id, patch)
	if err != nil {
		return models.Goal{}, err
	}
	t.persist()
	return g, nil
}

// DeleteGoal removes a goal and persists.
func (t *Tracker) DeleteGoal(id string) error {
	if err := t.goals.Delete(id); err != nil {
		return err
	}
	t.persist()
	return nil
}

// SetGoalProgress records user-entered progress and persists.
func (t *Tracker) SetGoalProgress(id string, value float64) (models.Goal, error) {
	g, err := t.goals.SetProgress(id, value)
	if err != nil {
		return models.Goal{}, err
	}
	t.persist()
	return g, nil
}

// CompleteGoal forces completion and persists.
func (t *Tracker) CompleteGoal(id string) (models.Goal, error) {
	g, err := t.goals.Complete(id)
	if err != nil {
		return models.Goal{}, err
	}
	t.persist()
	return g, nil
}

// CancelGoal cancels a goal and persists.
func (t *Tracker) CancelGoal(id string) (models.Goal, error) {
	g, err := t.goals.Cancel(id)
	if err != nil {
		return models.Goal{}, err
	}
	t.persist()
	return g, nil
}

// ReactivateGoal returns a goal to active and persists. Progress is kept, so
// a goal that still meets its target re-completes on the next workout-driven
// synchronization.
func (t *Tracker) ReactivateGoal(id string) (models.Goal, error) {
	g, err := t.goals.Reactivate(id)
	if err != nil {
		return models.Goal{}, err
	}
	t.persist()
	return g, nil
}

// persist writes both collections. Failures are logged, never surfaced: a
// broken disk must not block in-memory use.
func (t *Tracker) persist() {
	if err := t.db.SaveWorkouts(t.workouts.All()); err != nil {
		t.log.Error("persisting workouts", "error", err)
	}
	if err := t.db.SaveGoals(t.goals.All()); err != nil {
		t.log.Error("persisting goals", "error", err)
	}
}
