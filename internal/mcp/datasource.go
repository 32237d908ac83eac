package mcp

import (
	"context"
	"time"

	"github.com/claude/planlog/internal/models"
	"github.com/claude/planlog/internal/storage"
	"github.com/google/uuid"
)

// DataSource abstracts the data layer for MCP tools. Both *storage.DB
// (local) and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	QueryWorkoutLogs(ctx context.Context, start, end time.Time, userID int) ([]models.WorkoutLogRow, error)
	GetWorkoutLog(ctx context.Context, id uuid.UUID, userID int) (*models.WorkoutLogRow, error)
	GetExerciseVolume(ctx context.Context, start, end time.Time, userID int, exerciseFilter string) ([]storage.ExerciseVolume, error)
	GetLogStats(ctx context.Context, userID int) (*storage.LogStats, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
