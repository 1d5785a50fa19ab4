package store

import (
	"testing"
	"time"

	"github.com/claude/fittrack/internal/models"
)

func syncFixture(t *testing.T) (*WorkoutStore, *GoalStore) {
	t.Helper()
	workouts := NewWorkoutStore()
	goals := NewGoalStore()
	workouts.OnChange(NewSyncer(goals).Sync)
	return workouts, goals
}

// TestSyncDerivedTargets verifies each derived target type aggregates the
// matching workout field.
func TestSyncDerivedTargets(t *testing.T) {
	workouts, goals := syncFixture(t)
	day := models.NewDate(2026, time.March, 10)

	count := goals.Add(goalInput("Count", models.TargetWorkoutsCount, 100))
	duration := goals.Add(goalInput("Duration", models.TargetTotalDuration, 10000))
	calories := goals.Add(goalInput("Calories", models.TargetCaloriesBurned, 100000))

	workouts.Add(cardioInput("Run", day))  // 30 min, 300 kcal
	in := cardioInput("Ride", day)
	in.Duration, in.Calories = 45, 250
	workouts.Add(in)

	if g, _ := goals.Get(count.ID); g.CurrentValue != 2 {
		t.Errorf("count progress = %v, want 2", g.CurrentValue)
	}
	if g, _ := goals.Get(duration.ID); g.CurrentValue != 75 {
		t.Errorf("duration progress = %v, want 75", g.CurrentValue)
	}
	if g, _ := goals.Get(calories.ID); g.CurrentValue != 550 {
		t.Errorf("calories progress = %v, want 550", g.CurrentValue)
	}
}

// TestSyncWindow verifies only workouts dated inside the goal's date window
// count toward it.
func TestSyncWindow(t *testing.T) {
	workouts, goals := syncFixture(t)

	g := goals.Add(models.GoalInput{
		Title:       "March workouts",
		TargetType:  models.TargetWorkoutsCount,
		TargetValue: 100,
		StartDate:   models.NewDate(2026, time.March, 1),
		EndDate:     models.NewDate(2026, time.March, 31),
	})

	workouts.Add(cardioInput("In window", models.NewDate(2026, time.March, 15)))
	workouts.Add(cardioInput("Start edge", models.NewDate(2026, time.March, 1)))
	workouts.Add(cardioInput("End edge", models.NewDate(2026, time.March, 31)))
	workouts.Add(cardioInput("Too early", models.NewDate(2026, time.February, 28)))
	workouts.Add(cardioInput("Too late", models.NewDate(2026, time.April, 1)))

	if got, _ := goals.Get(g.ID); got.CurrentValue != 3 {
		t.Errorf("progress = %v, want 3 (window edges inclusive)", got.CurrentValue)
	}
}

// TestSyncSkipsUserEnteredTargets verifies weight_lifted goals are never
// overwritten by workout mutations.
func TestSyncSkipsUserEnteredTargets(t *testing.T) {
	workouts, goals := syncFixture(t)

	g := goals.Add(goalInput("Lift 5000 kg", models.TargetWeightLifted, 5000))
	goals.SetProgress(g.ID, 1250)

	workouts.Add(cardioInput("Run", models.NewDate(2026, time.March, 10)))

	if got, _ := goals.Get(g.ID); got.CurrentValue != 1250 {
		t.Errorf("weight_lifted progress = %v, want untouched 1250", got.CurrentValue)
	}
}

// TestSyncAutoCompletes verifies a derived goal completes when workout
// aggregates reach its target, and deleting workouts does not reopen it.
func TestSyncAutoCompletes(t *testing.T) {
	workouts, goals := syncFixture(t)
	day := models.NewDate(2026, time.March, 10)

	g := goals.Add(goalInput("Two workouts", models.TargetWorkoutsCount, 2))
	workouts.Add(cardioInput("One", day))
	w := workouts.Add(cardioInput("Two", day))

	got, _ := goals.Get(g.ID)
	if got.Status != models.StatusCompleted || got.CurrentValue != 2 {
		t.Fatalf("after reaching target: %v/%q, want 2/completed", got.CurrentValue, got.Status)
	}

	// A completed goal no longer follows the workout collection.
	if err := workouts.Delete(w.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	got, _ = goals.Get(g.ID)
	if got.Status != models.StatusCompleted || got.CurrentValue != 2 {
		t.Errorf("after delete: %v/%q, want frozen at 2/completed", got.CurrentValue, got.Status)
	}
}

// TestSyncReactivatedGoal verifies a reactivated goal that still meets its
// target completes again on the next workout-driven synchronization, not on
// reactivation itself.
func TestSyncReactivatedGoal(t *testing.T) {
	workouts, goals := syncFixture(t)
	day := models.NewDate(2026, time.March, 10)

	g := goals.Add(goalInput("One workout", models.TargetWorkoutsCount, 1))
	workouts.Add(cardioInput("Run", day))

	if got, _ := goals.Get(g.ID); got.Status != models.StatusCompleted {
		t.Fatalf("goal did not complete: %q", got.Status)
	}

	got, err := goals.Reactivate(g.ID)
	if err != nil {
		t.Fatalf("Reactivate error: %v", err)
	}
	if got.Status != models.StatusActive {
		t.Fatalf("after Reactivate: %q, want active", got.Status)
	}

	// The next workout mutation re-runs sync and re-completes the goal.
	workouts.Add(cardioInput("Ride", day))
	if got, _ := goals.Get(g.ID); got.Status != models.StatusCompleted {
		t.Errorf("after next mutation: %q, want completed again", got.Status)
	}
}
