// Package stats computes derived statistics over workout collection
// snapshots. Every function is pure and deterministic: the caller passes the
// snapshot and "today", nothing is cached, results are recomputed per query.
package stats

import (
	"sort"

	"github.com/claude/fittrack/internal/models"
)

// DaySummary is one day of the current-week summary.
type DaySummary struct {
	Day      string      `json:"day"` // "Sun".."Sat"
	Date     models.Date `json:"date"`
	Workouts int         `json:"workouts"`
	Duration float64     `json:"duration"`
	Calories float64     `json:"calories"`
}

// WeeklySummary aggregates workouts per day for the calendar week containing
// today. Weeks start on Sunday; the result always has seven entries.
func WeeklySummary(ws []models.Workout, today models.Date) []DaySummary {
	weekStart := today.AddDays(-int(today.Weekday()))

	out := make([]DaySummary, 7)
	dayIndex := make(map[models.Date]int, 7)
	for i := range out {
		d := weekStart.AddDays(i)
		out[i] = DaySummary{Day: d.Weekday().String()[:3], Date: d}
		dayIndex[d] = i
	}

	for _, w := range ws {
		i, ok := dayIndex[w.Date]
		if !ok {
			continue
		}
		out[i].Workouts++
		out[i].Duration += w.Duration
		out[i].Calories += w.Calories
	}
	return out
}

// TypeCount is one slice of the exercise-type distribution.
type TypeCount struct {
	Type  models.ExerciseType `json:"type"`
	Count int                 `json:"count"`
	Color string              `json:"color"`
}

// Distribution counts workouts per exercise type, one entry per type present,
// in canonical type order.
func Distribution(ws []models.Workout) []TypeCount {
	counts := make(map[models.ExerciseType]int)
	for _, w := range ws {
		counts[w.Type]++
	}

	out := make([]TypeCount, 0, len(counts))
	for _, t := range models.ExerciseTypes {
		if n := counts[t]; n > 0 {
			out = append(out, TypeCount{Type: t, Count: n, Color: t.Color()})
		}
	}
	return out
}

// Streak returns the number of consecutive calendar days with at least one
// workout. The run is anchored at today with one day of slack: a user who
// hasn't logged today keeps yesterday's streak, but a most recent entry older
// than yesterday resets to 0. Within the run, a gap of more than one day
// between distinct workout dates ends the count. Workouts dated after today
// are ignored.
func Streak(ws []models.Workout, today models.Date) int {
	seen := make(map[models.Date]bool, len(ws))
	dates := make([]models.Date, 0, len(ws))
	for _, w := range ws {
		if w.Date.After(today) {
			continue
		}
		if !seen[w.Date] {
			seen[w.Date] = true
			dates = append(dates, w.Date)
		}
	}
	if len(dates) == 0 {
		return 0
	}
	sort.Slice(dates, func(i, j int) bool { return dates[j].Before(dates[i]) })

	if models.DaysBetween(dates[0], today) > 1 {
		return 0
	}

	streak := 1
	for i := 1; i < len(dates); i++ {
		if models.DaysBetween(dates[i], dates[i-1]) > 1 {
			break
		}
		streak++
	}
	return streak
}

// Totals sums duration and calories and counts workouts across the whole
// collection (all-time).
func Totals(ws []models.Workout) models.Totals {
	var t models.Totals
	for _, w := range ws {
		t.Count++
		t.Duration += w.Duration
		t.Calories += w.Calories
	}
	return t
}
