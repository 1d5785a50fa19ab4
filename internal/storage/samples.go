package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/claude/fittrack/internal/models"
)

// SampleWorkouts returns a small set of example workouts spread over the
// days leading up to today, shown on first run or when the persisted blob
// cannot be read.
func SampleWorkouts(today models.Date) []models.Workout {
	now := time.Now().UTC()
	return []models.Workout{
		{
			ID:        uuid.NewString(),
			Name:      "Morning Run",
			Type:      models.TypeCardio,
			Duration:  30,
			Calories:  320,
			Intensity: models.IntensityMedium,
			Notes:     "Easy pace along the river",
			Date:      today.AddDays(-1),
			CreatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Name:      "Upper Body Strength",
			Type:      models.TypeStrength,
			Duration:  45,
			Calories:  280,
			Sets:      ptr(4),
			Reps:      ptr(10),
			Weight:    ptr(52.5),
			Intensity: models.IntensityHigh,
			Date:      today.AddDays(-2),
			CreatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Name:      "Evening Yoga",
			Type:      models.TypeFlexibility,
			Duration:  25,
			Calories:  90,
			Intensity: models.IntensityLow,
			Date:      today.AddDays(-3),
			CreatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Name:      "Pickup Basketball",
			Type:      models.TypeSports,
			Duration:  60,
			Calories:  450,
			Intensity: models.IntensityHigh,
			Date:      today.AddDays(-5),
			CreatedAt: now,
		},
	}
}

// SampleGoals returns example goals covering one derived target and one
// user-entered target.
func SampleGoals(today models.Date) []models.Goal {
	now := time.Now().UTC()
	return []models.Goal{
		{
			ID:          uuid.NewString(),
			Title:       "Work out 12 times this month",
			TargetType:  models.TargetWorkoutsCount,
			TargetValue: 12,
			StartDate:   today.AddDays(-14),
			EndDate:     today.AddDays(16),
			Status:      models.StatusActive,
			CreatedAt:   now,
		},
		{
			ID:           uuid.NewString(),
			Title:        "Lift 5000 kg total",
			Description:  "Cumulative weight moved across strength sessions",
			TargetType:   models.TargetWeightLifted,
			TargetValue:  5000,
			CurrentValue: 1250,
			StartDate:    today.AddDays(-14),
			EndDate:      today.AddDays(46),
			Status:       models.StatusActive,
			CreatedAt:    now,
		},
	}
}

func ptr[T any](v T) *T { return &v }
