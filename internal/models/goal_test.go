package models

import "testing"

// TestTargetTypeDerived verifies which target types follow the workout
// collection and which stay user-entered.
func TestTargetTypeDerived(t *testing.T) {
	derived := []TargetType{TargetWorkoutsCount, TargetTotalDuration, TargetCaloriesBurned}
	for _, tt := range derived {
		if !tt.Derived() {
			t.Errorf("%s.Derived() = false, want true", tt)
		}
	}
	if TargetWeightLifted.Derived() {
		t.Error("weight_lifted.Derived() = true, want false")
	}
}

func TestThemeValid(t *testing.T) {
	for _, theme := range []Theme{ThemeLight, ThemeDark, ThemeSystem} {
		if !theme.Valid() {
			t.Errorf("%q.Valid() = false", theme)
		}
	}
	if Theme("neon").Valid() {
		t.Error(`"neon".Valid() = true`)
	}
}

func TestExerciseTypeColor(t *testing.T) {
	seen := map[string]ExerciseType{}
	for _, typ := range ExerciseTypes {
		c := typ.Color()
		if c == "" {
			t.Errorf("%s has no color", typ)
		}
		if prev, dup := seen[c]; dup {
			t.Errorf("%s and %s share color %s", typ, prev, c)
		}
		seen[c] = typ
	}
	if ExerciseType("swimming").Color() == "" {
		t.Error("unknown type has no fallback color")
	}
}
