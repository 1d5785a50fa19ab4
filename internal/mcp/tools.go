package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/fittrack/internal/models"
	"github.com/claude/fittrack/internal/stats"
)

// dateRange returns start/end defaulting to the last 7 days ending today.
func dateRange(startStr, endStr string, today models.Date) (models.Date, models.Date, error) {
	var start, end models.Date
	var err error

	if endStr != "" {
		end, err = models.ParseDate(endStr)
		if err != nil {
			return models.Date{}, models.Date{}, err
		}
	} else {
		end = today
	}

	if startStr != "" {
		start, err = models.ParseDate(startStr)
		if err != nil {
			return models.Date{}, models.Date{}, err
		}
	} else {
		start = end.AddDays(-7)
	}

	return start, end, nil
}

// --- Tool definitions ---

var toolGetWorkouts = mcp.NewTool("get_workouts",
	mcp.WithDescription("Query workouts with an optional exercise type filter. Returns workout details including duration, calories, intensity, and strength fields where present."),
	mcp.WithString("start", mcp.Description("Start date (YYYY-MM-DD). Defaults to 7 days ago.")),
	mcp.WithString("end", mcp.Description("End date (YYYY-MM-DD). Defaults to today.")),
	mcp.WithString("type", mcp.Description("Filter by exercise type"), mcp.Enum("cardio", "strength", "flexibility", "balance", "sports")),
)

var toolGetGoals = mcp.NewTool("get_goals",
	mcp.WithDescription("List goals with an optional status filter. Returns target type, target value, current progress, and date window for each goal."),
	mcp.WithString("status", mcp.Description("Filter by goal status. Defaults to all goals."), mcp.Enum("active", "completed")),
)

var toolGetWeeklySummary = mcp.NewTool("get_weekly_summary",
	mcp.WithDescription("Per-day workout counts, total duration, and total calories for the current week, Sunday through Saturday."),
)

var toolGetDistribution = mcp.NewTool("get_distribution",
	mcp.WithDescription("Workout count per exercise type across all recorded workouts, with a display color for each type."),
)

var toolGetStreak = mcp.NewTool("get_streak",
	mcp.WithDescription("Current consecutive-day workout streak. A streak counts backward from today or yesterday; an older gap means the streak is 0."),
)

var toolGetTotals = mcp.NewTool("get_totals",
	mcp.WithDescription("All-time totals: workout count, total duration in minutes, and total calories."),
)

// --- Tool handlers ---

func (h *handlers) getWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	today := models.DateOf(h.now())
	start, end, err := dateRange(req.GetString("start", ""), req.GetString("end", ""), today)
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	workouts := h.tracker.Workouts().ByDateRange(start, end)
	if typ := req.GetString("type", ""); typ != "" {
		filtered := workouts[:0]
		for _, w := range workouts {
			if w.Type == models.ExerciseType(typ) {
				filtered = append(filtered, w)
			}
		}
		workouts = filtered
	}
	if workouts == nil {
		workouts = []models.Workout{}
	}

	result, err := mcp.NewToolResultJSON(workouts)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getGoals(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var goals []models.Goal
	switch req.GetString("status", "") {
	case "active":
		goals = h.tracker.Goals().Active()
	case "completed":
		goals = h.tracker.Goals().Completed()
	default:
		goals = h.tracker.Goals().All()
	}
	if goals == nil {
		goals = []models.Goal{}
	}

	result, err := mcp.NewToolResultJSON(goals)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWeeklySummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	today := models.DateOf(h.now())
	summary := stats.WeeklySummary(h.tracker.Workouts().All(), today)

	result, err := mcp.NewToolResultJSON(summary)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getDistribution(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dist := stats.Distribution(h.tracker.Workouts().All())
	if dist == nil {
		dist = []stats.TypeCount{}
	}

	result, err := mcp.NewToolResultJSON(dist)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getStreak(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	today := models.DateOf(h.now())
	streak := stats.Streak(h.tracker.Workouts().All(), today)

	result, err := mcp.NewToolResultJSON(map[string]int{"streak": streak})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTotals(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(stats.Totals(h.tracker.Workouts().All()))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
