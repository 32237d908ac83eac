package storage

import (
	"context"
	"fmt"
	"time"
)

// ExerciseVolume holds aggregated set volume for one exercise over a range.
// Tonnage counts only sets that have both a parsed rep count and an actual
// weight; sets with a missing cell still count toward TotalSets.
type ExerciseVolume struct {
	ExerciseName string   `json:"exercise_name"`
	TotalSets    int      `json:"total_sets"`
	TotalReps    int      `json:"total_reps"`
	TonnageKg    float64  `json:"tonnage_kg"`
	AvgActualRPE *float64 `json:"avg_actual_rpe,omitempty"`
	Sessions     int      `json:"sessions"`
}

// GetExerciseVolume returns per-exercise volume aggregates over a date range.
// When exerciseFilter is non-empty it matches exercise names case-insensitively
// as a substring.
func (db *DB) GetExerciseVolume(ctx context.Context, start, end time.Time, userID int, exerciseFilter string) ([]ExerciseVolume, error) {
	query := `SELECT exercise_name,
	                 COUNT(*)::int AS total_sets,
	                 COALESCE(SUM(reps), 0)::int AS total_reps,
	                 COALESCE(SUM(actual_weight * reps), 0) AS tonnage,
	                 AVG((lower_actual_rpe + upper_actual_rpe) / 2) FILTER (WHERE upper_actual_rpe > 0) AS avg_rpe,
	                 COUNT(DISTINCT log_id)::int AS sessions
	          FROM logged_sets
	          WHERE log_date >= $1 AND log_date < $2 AND user_id = $3`
	args := []any{start, end, userID}

	if exerciseFilter != "" {
		query += ` AND exercise_name ILIKE '%' || $4 || '%'`
		args = append(args, exerciseFilter)
	}
	query += ` GROUP BY exercise_name ORDER BY tonnage DESC`

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying exercise volume: %w", err)
	}
	defer rows.Close()

	var result []ExerciseVolume
	for rows.Next() {
		var v ExerciseVolume
		if err := rows.Scan(&v.ExerciseName, &v.TotalSets, &v.TotalReps,
			&v.TonnageKg, &v.AvgActualRPE, &v.Sessions); err != nil {
			return nil, fmt.Errorf("scanning exercise volume: %w", err)
		}
		result = append(result, v)
	}
	return result, rows.Err()
}

// LogStats holds aggregate counts about all stored logs for one user.
type LogStats struct {
	TotalLogs     int64      `json:"total_logs"`
	TotalSets     int64      `json:"total_sets"`
	EarliestLog   *time.Time `json:"earliest_log"`
	LatestLog     *time.Time `json:"latest_log"`
	ExerciseCount int64      `json:"exercise_count"`
}

// GetLogStats returns aggregate statistics for a user's stored logs.
func (db *DB) GetLogStats(ctx context.Context, userID int) (*LogStats, error) {
	stats := &LogStats{}

	err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*), MIN(log_date), MAX(log_date) FROM workout_logs WHERE user_id = $1`,
		userID).Scan(&stats.TotalLogs, &stats.EarliestLog, &stats.LatestLog)
	if err != nil {
		return nil, fmt.Errorf("counting logs: %w", err)
	}

	err = db.Pool.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(DISTINCT exercise_name) FROM logged_sets WHERE user_id = $1`,
		userID).Scan(&stats.TotalSets, &stats.ExerciseCount)
	if err != nil {
		return nil, fmt.Errorf("counting sets: %w", err)
	}

	return stats, nil
}
