package models

import "time"

// ExerciseType categorizes a workout.
type ExerciseType string

const (
	TypeCardio      ExerciseType = "cardio"
	TypeStrength    ExerciseType = "strength"
	TypeFlexibility ExerciseType = "flexibility"
	TypeBalance     ExerciseType = "balance"
	TypeSports      ExerciseType = "sports"
)

// ExerciseTypes lists all exercise types in canonical display order.
var ExerciseTypes = []ExerciseType{TypeCardio, TypeStrength, TypeFlexibility, TypeBalance, TypeSports}

// Color returns the display color used for this type in distribution charts.
func (t ExerciseType) Color() string {
	switch t {
	case TypeCardio:
		return "#ef4444"
	case TypeStrength:
		return "#3b82f6"
	case TypeFlexibility:
		return "#10b981"
	case TypeBalance:
		return "#f59e0b"
	case TypeSports:
		return "#8b5cf6"
	default:
		return "#6b7280"
	}
}

// Intensity is the perceived effort of a workout.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// Workout is a single logged exercise session. Sets, reps, and weight are
// present together or absent; they only carry meaning for strength work.
type Workout struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Type      ExerciseType `json:"exercise_type"`
	Duration  float64      `json:"duration"` // minutes
	Calories  float64      `json:"calories"`
	Sets      *int         `json:"sets,omitempty"`
	Reps      *int         `json:"reps,omitempty"`
	Weight    *float64     `json:"weight,omitempty"` // kg
	Intensity Intensity    `json:"intensity"`
	Notes     string       `json:"notes,omitempty"`
	Date      Date         `json:"date"`
	CreatedAt time.Time    `json:"created_at"`
}

// WorkoutInput carries the fields for creating a workout. The id and
// creation timestamp are generated by the store.
type WorkoutInput struct {
	Name      string       `json:"name" validate:"required,min=2,max=50"`
	Type      ExerciseType `json:"exercise_type" validate:"required,oneof=cardio strength flexibility balance sports"`
	Duration  float64      `json:"duration" validate:"required,gt=0,lte=600"`
	Calories  float64      `json:"calories" validate:"required,gt=0,lte=10000"`
	Sets      *int         `json:"sets,omitempty" validate:"omitempty,gt=0"`
	Reps      *int         `json:"reps,omitempty" validate:"omitempty,gt=0"`
	Weight    *float64     `json:"weight,omitempty" validate:"omitempty,gt=0"`
	Intensity Intensity    `json:"intensity" validate:"required,oneof=low medium high"`
	Notes     string       `json:"notes,omitempty" validate:"max=500"`
	Date      Date         `json:"date" validate:"required"`
}

// WorkoutPatch holds optional replacement values for a partial update. Nil
// fields are left unchanged. Patches are validated merged over the record
// they target, so the rules live on WorkoutInput.
type WorkoutPatch struct {
	Name      *string       `json:"name,omitempty"`
	Type      *ExerciseType `json:"exercise_type,omitempty"`
	Duration  *float64      `json:"duration,omitempty"`
	Calories  *float64      `json:"calories,omitempty"`
	Sets      *int          `json:"sets,omitempty"`
	Reps      *int          `json:"reps,omitempty"`
	Weight    *float64      `json:"weight,omitempty"`
	Intensity *Intensity    `json:"intensity,omitempty"`
	Notes     *string       `json:"notes,omitempty"`
	Date      *Date         `json:"date,omitempty"`
}

// Totals aggregates count, duration, and calories over a workout collection.
type Totals struct {
	Count    int     `json:"count"`
	Duration float64 `json:"duration"`
	Calories float64 `json:"calories"`
}
