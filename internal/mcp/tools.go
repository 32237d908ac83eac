package mcp

import (
	"context"
	"time"

	"github.com/claude/planlog/internal/plan"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// defaultTimeRange returns start/end defaulting to the last 30 days.
func defaultTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -30)
	}

	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// --- Tool definitions ---

var toolRenderPlan = mcp.NewTool("render_plan",
	mcp.WithDescription("Render base64-encoded spreadsheet plan text (tab/newline-delimited cells, one title row plus six detail rows per exercise) into formatted workout log text. Pure transform; nothing is stored."),
	mcp.WithString("data", mcp.Required(), mcp.Description("Base64-encoded plan text, exactly as copied from the spreadsheet")),
	mcp.WithString("date", mcp.Description("Log date (YYYY-MM-DD). Defaults to today.")),
)

var toolGetWorkoutLogs = mcp.NewTool("get_workout_logs",
	mcp.WithDescription("Query saved workout logs. Returns rendered log text with dates."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
)

var toolGetWorkoutLog = mcp.NewTool("get_workout_log",
	mcp.WithDescription("Retrieve one saved workout log by ID, including the original spreadsheet source text."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Workout log UUID")),
)

var toolGetExerciseVolume = mcp.NewTool("get_exercise_volume",
	mcp.WithDescription("Per-exercise volume aggregates over a date range: set count, total reps, tonnage (kg), average actual RPE, and session count."),
	mcp.WithString("start", mcp.Description("Start date. Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
	mcp.WithString("exercise", mcp.Description("Filter by exercise name (partial match, e.g. 'bench press')")),
)

var toolGetLogStats = mcp.NewTool("get_log_stats",
	mcp.WithDescription("Aggregate statistics about all saved logs: totals, date range, distinct exercises."),
)

// --- Tool handlers ---

func (h *handlers) renderPlan(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	encoded, err := req.RequireString("data")
	if err != nil {
		return mcp.NewToolResultError("data parameter is required"), nil
	}

	date := time.Now()
	if dateStr := req.GetString("date", ""); dateStr != "" {
		date, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
		}
	}

	rendered, err := plan.RenderEncoded(encoded, date)
	if err != nil {
		return mcp.NewToolResultError("render failed: " + err.Error()), nil
	}
	return mcp.NewToolResultText(rendered), nil
}

func (h *handlers) getWorkoutLogs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	logs, err := h.ds.QueryWorkoutLogs(ctx, start, end, uid)
	if err != nil {
		h.log.Error("mcp get_workout_logs", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(logs)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutLog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idStr, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	logID, err := uuid.Parse(idStr)
	if err != nil {
		return mcp.NewToolResultError("invalid log ID: " + err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	logRow, err := h.ds.GetWorkoutLog(ctx, logID, uid)
	if err != nil {
		h.log.Error("mcp get_workout_log", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(logRow)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExerciseVolume(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	volume, err := h.ds.GetExerciseVolume(ctx, start, end, uid, req.GetString("exercise", ""))
	if err != nil {
		h.log.Error("mcp get_exercise_volume", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(volume)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getLogStats(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)
	stats, err := h.ds.GetLogStats(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_log_stats", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(stats)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
