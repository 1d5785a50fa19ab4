package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/fittrack/internal/models"
	"github.com/claude/fittrack/internal/stats"
)

func (h *handlers) weeklySummary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	today := models.DateOf(h.now())
	summary := stats.WeeklySummary(h.tracker.Workouts().All(), today)
	return jsonContents(req, summary)
}

func (h *handlers) activeGoals(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	goals := h.tracker.Goals().Active()
	if goals == nil {
		goals = []models.Goal{}
	}
	return jsonContents(req, goals)
}

func (h *handlers) recentWorkouts(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	today := models.DateOf(h.now())
	workouts := h.tracker.Workouts().ByDateRange(today.AddDays(-14), today)
	if workouts == nil {
		workouts = []models.Workout{}
	}
	return jsonContents(req, workouts)
}

func jsonContents(req mcp.ReadResourceRequest, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
