// Package validate is the input-validation collaborator for the entity
// stores: every add/update payload must pass here before a mutation is
// invoked. Failures are reported per field and block the mutation.
package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/claude/fittrack/internal/models"
)

// Validator checks workout and goal payloads against the form rules:
// workout name 2-50 chars, duration (0,600] minutes, calories (0,10000],
// sets/reps positive integers and weight positive (together or absent),
// notes up to 500 chars; goal title 2-100 chars, description up to 500,
// target value positive, end date strictly after start date.
type Validator struct {
	v *validator.Validate
}

// New constructs a Validator with calendar-date handling and the
// together-or-absent rule for strength fields registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(dateToTime, models.Date{})
	v.RegisterTagNameFunc(jsonName)
	v.RegisterStructValidation(strengthFields, models.WorkoutInput{})
	return &Validator{v: v}
}

// Workout validates a workout creation payload. The returned map is keyed by
// JSON field name and nil when the payload is valid.
func (va *Validator) Workout(in models.WorkoutInput) map[string]string {
	return fieldErrors(va.v.Struct(in))
}

// WorkoutUpdate validates a partial workout update against the record it
// patches. Patch fields are merged over current and the result must satisfy
// the same rules as a create payload, so invariants that span fields (the
// together-or-absent strength rule) hold on the stored record, not just the
// supplied fields.
func (va *Validator) WorkoutUpdate(current models.Workout, p models.WorkoutPatch) map[string]string {
	return fieldErrors(va.v.Struct(mergeWorkout(current, p)))
}

// Goal validates a goal creation payload.
func (va *Validator) Goal(in models.GoalInput) map[string]string {
	return fieldErrors(va.v.Struct(in))
}

// GoalUpdate validates a partial goal update against the record it patches,
// merging before checking so the date window stays valid even when only one
// end of it changes.
func (va *Validator) GoalUpdate(current models.Goal, p models.GoalPatch) map[string]string {
	return fieldErrors(va.v.Struct(mergeGoal(current, p)))
}

func mergeWorkout(w models.Workout, p models.WorkoutPatch) models.WorkoutInput {
	in := models.WorkoutInput{
		Name:      w.Name,
		Type:      w.Type,
		Duration:  w.Duration,
		Calories:  w.Calories,
		Sets:      w.Sets,
		Reps:      w.Reps,
		Weight:    w.Weight,
		Intensity: w.Intensity,
		Notes:     w.Notes,
		Date:      w.Date,
	}
	if p.Name != nil {
		in.Name = *p.Name
	}
	if p.Type != nil {
		in.Type = *p.Type
	}
	if p.Duration != nil {
		in.Duration = *p.Duration
	}
	if p.Calories != nil {
		in.Calories = *p.Calories
	}
	if p.Sets != nil {
		in.Sets = p.Sets
	}
	if p.Reps != nil {
		in.Reps = p.Reps
	}
	if p.Weight != nil {
		in.Weight = p.Weight
	}
	if p.Intensity != nil {
		in.Intensity = *p.Intensity
	}
	if p.Notes != nil {
		in.Notes = *p.Notes
	}
	if p.Date != nil {
		in.Date = *p.Date
	}
	return in
}

func mergeGoal(g models.Goal, p models.GoalPatch) models.GoalInput {
	in := models.GoalInput{
		Title:       g.Title,
		Description: g.Description,
		TargetType:  g.TargetType,
		TargetValue: g.TargetValue,
		StartDate:   g.StartDate,
		EndDate:     g.EndDate,
	}
	if p.Title != nil {
		in.Title = *p.Title
	}
	if p.Description != nil {
		in.Description = *p.Description
	}
	if p.TargetType != nil {
		in.TargetType = *p.TargetType
	}
	if p.TargetValue != nil {
		in.TargetValue = *p.TargetValue
	}
	if p.StartDate != nil {
		in.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		in.EndDate = *p.EndDate
	}
	return in
}

// dateToTime lets the validator see models.Date fields as time.Time, so
// required and gtfield work on calendar dates.
func dateToTime(field reflect.Value) any {
	if d, ok := field.Interface().(models.Date); ok {
		return d.Time()
	}
	return nil
}

// jsonName reports fields by their JSON name so errors match the wire format.
func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// strengthFields enforces that sets, reps, and weight appear together or not
// at all.
func strengthFields(sl validator.StructLevel) {
	in := sl.Current().Interface().(models.WorkoutInput)
	present := 0
	if in.Sets != nil {
		present++
	}
	if in.Reps != nil {
		present++
	}
	if in.Weight != nil {
		present++
	}
	if present == 0 || present == 3 {
		return
	}
	if in.Sets == nil {
		sl.ReportError(in.Sets, "sets", "Sets", "required_with", "")
	}
	if in.Reps == nil {
		sl.ReportError(in.Reps, "reps", "Reps", "required_with", "")
	}
	if in.Weight == nil {
		sl.ReportError(in.Weight, "weight", "Weight", "required_with", "")
	}
}

func fieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["_"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gt":
		if fe.Param() == "0" {
			return "must be positive"
		}
		return "must be greater than " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gtfield":
		return "must be after the start date"
	case "required_with":
		return "sets, reps, and weight must be provided together"
	default:
		return "is invalid"
	}
}
