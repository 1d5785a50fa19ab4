package models

import "time"

// TargetType selects which workout aggregate a goal tracks.
type TargetType string

const (
	TargetWorkoutsCount  TargetType = "workouts_count"
	TargetTotalDuration  TargetType = "total_duration"
	TargetCaloriesBurned TargetType = "calories_burned"
	TargetWeightLifted   TargetType = "weight_lifted"
)

// Derived reports whether progress for this target type is recomputed from
// the workout collection. weight_lifted has no workout-level source of truth
// and stays user-entered.
func (t TargetType) Derived() bool {
	switch t {
	case TargetWorkoutsCount, TargetTotalDuration, TargetCaloriesBurned:
		return true
	default:
		return false
	}
}

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

const (
	StatusActive    GoalStatus = "active"
	StatusCompleted GoalStatus = "completed"
	StatusCancelled GoalStatus = "cancelled"
)

// Goal is a user-defined target over an aggregate workout metric, tracked
// over a date window. CurrentValue is derived for count/duration/calories
// targets and user-entered for weight_lifted.
type Goal struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	TargetType   TargetType `json:"target_type"`
	TargetValue  float64    `json:"target_value"`
	CurrentValue float64    `json:"current_value"`
	StartDate    Date       `json:"start_date"`
	EndDate      Date       `json:"end_date"`
	Status       GoalStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

// GoalInput carries the fields for creating a goal. New goals start active
// with zero progress.
type GoalInput struct {
	Title       string     `json:"title" validate:"required,min=2,max=100"`
	Description string     `json:"description,omitempty" validate:"max=500"`
	TargetType  TargetType `json:"target_type" validate:"required,oneof=workouts_count total_duration calories_burned weight_lifted"`
	TargetValue float64    `json:"target_value" validate:"required,gt=0"`
	StartDate   Date       `json:"start_date" validate:"required"`
	EndDate     Date       `json:"end_date" validate:"required,gtfield=StartDate"`
}

// GoalPatch holds optional replacement values for a partial update. Nil
// fields are left unchanged. Patches are validated merged over the record
// they target, so the rules live on GoalInput.
type GoalPatch struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	TargetType  *TargetType `json:"target_type,omitempty"`
	TargetValue *float64    `json:"target_value,omitempty"`
	StartDate   *Date       `json:"start_date,omitempty"`
	EndDate     *Date       `json:"end_date,omitempty"`
}
