package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("PlanLog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("PlanLog workout log server. Render pasted spreadsheet training plans into dated log text, and query saved logs and per-exercise volume. All data is scoped to the authenticated user."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolRenderPlan, Handler: h.renderPlan},
		server.ServerTool{Tool: toolGetWorkoutLogs, Handler: h.getWorkoutLogs},
		server.ServerTool{Tool: toolGetWorkoutLog, Handler: h.getWorkoutLog},
		server.ServerTool{Tool: toolGetExerciseVolume, Handler: h.getExerciseVolume},
		server.ServerTool{Tool: toolGetLogStats, Handler: h.getLogStats},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resRecentLogs, Handler: h.recentLogs},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resRecentLogs = mcp.NewResource(
	"planlog://recent_logs",
	"Recent Logs",
	mcp.WithResourceDescription("Rendered workout logs from the last 14 days"),
	mcp.WithMIMEType("application/json"),
)
