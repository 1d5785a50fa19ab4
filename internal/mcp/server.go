// Package mcp exposes the tracker over the Model Context Protocol so an
// LLM client can query workouts, goals, and derived statistics.
package mcp

import (
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/claude/fittrack/internal/tracker"
)

// New creates an MCP server with all tools and resources registered.
func New(tr *tracker.Tracker, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("FitTrack", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("FitTrack fitness tracker. Query workouts, goals, and derived statistics such as weekly summaries, type distribution, and streaks. All data belongs to a single user."),
	)

	h := &handlers{tracker: tr, log: log, now: time.Now}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetWorkouts, Handler: h.getWorkouts},
		server.ServerTool{Tool: toolGetGoals, Handler: h.getGoals},
		server.ServerTool{Tool: toolGetWeeklySummary, Handler: h.getWeeklySummary},
		server.ServerTool{Tool: toolGetDistribution, Handler: h.getDistribution},
		server.ServerTool{Tool: toolGetStreak, Handler: h.getStreak},
		server.ServerTool{Tool: toolGetTotals, Handler: h.getTotals},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resWeeklySummary, Handler: h.weeklySummary},
		server.ServerResource{Resource: resActiveGoals, Handler: h.activeGoals},
		server.ServerResource{Resource: resRecentWorkouts, Handler: h.recentWorkouts},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	tracker *tracker.Tracker
	log     *slog.Logger
	now     func() time.Time
}

// --- Resource definitions ---

var resWeeklySummary = mcp.NewResource(
	"fittrack://weekly_summary",
	"Weekly Summary",
	mcp.WithResourceDescription("Per-day workout counts, duration, and calories for the current week (Sunday through Saturday)"),
	mcp.WithMIMEType("application/json"),
)

var resActiveGoals = mcp.NewResource(
	"fittrack://active_goals",
	"Active Goals",
	mcp.WithResourceDescription("All goals currently in the active status, with target and current progress values"),
	mcp.WithMIMEType("application/json"),
)

var resRecentWorkouts = mcp.NewResource(
	"fittrack://recent_workouts",
	"Recent Workouts",
	mcp.WithResourceDescription("Workouts from the last 14 days"),
	mcp.WithMIMEType("application/json"),
)
