package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/claude/planlog/internal/models"
	"github.com/google/uuid"
)

// InsertWorkoutLog stores one rendered log.
func (db *DB) InsertWorkoutLog(ctx context.Context, row models.WorkoutLogRow) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO workout_logs (id, user_id, log_date, source, rendered)
		 VALUES ($1, $2, $3, $4, $5)`,
		row.ID, row.UserID, row.LogDate, row.Source, row.Rendered)
	if err != nil {
		return fmt.Errorf("inserting workout log: %w", err)
	}
	return nil
}

// InsertLoggedSets batch-inserts the expanded sets of a log. Returns count inserted.
func (db *DB) InsertLoggedSets(ctx context.Context, rows []models.LoggedSetRow) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	query := `INSERT INTO logged_sets (log_id, user_id, log_date, exercise_name,
		exercise_number, set_number, reps, planned_rpe, planned_weight,
		actual_weight, lower_actual_rpe, upper_actual_rpe) VALUES `
	args := make([]any, 0, len(rows)*12)
	valueStrings := make([]string, 0, len(rows))

	for i, r := range rows {
		base := i * 12
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6,
			base+7, base+8, base+9, base+10, base+11, base+12,
		))
		args = append(args, r.LogID, r.UserID, r.LogDate, r.ExerciseName,
			r.ExerciseNumber, r.SetNumber, r.Reps, r.PlannedRPE, r.PlannedWeight,
			r.ActualWeight, r.LowerActualRPE, r.UpperActualRPE)
	}

	query += strings.Join(valueStrings, ",") + " ON CONFLICT DO NOTHING"

	tag, err := db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("inserting logged sets: %w", err)
	}
	return tag.RowsAffected(), nil
}

// QueryWorkoutLogs retrieves logs in a date range, newest first. The
// spreadsheet source text is omitted from list results.
func (db *DB) QueryWorkoutLogs(ctx context.Context, start, end time.Time, userID int) ([]models.WorkoutLogRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, log_date, rendered, created_at
		 FROM workout_logs
		 WHERE log_date >= $1 AND log_date < $2 AND user_id = $3
		 ORDER BY log_date DESC, created_at DESC`,
		start, end, userID)
	if err != nil {
		return nil, fmt.Errorf("querying workout logs: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutLogRow
	for rows.Next() {
		var r models.WorkoutLogRow
		if err := rows.Scan(&r.ID, &r.UserID, &r.LogDate, &r.Rendered, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning workout log: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// GetWorkoutLog retrieves one log with its source text.
func (db *DB) GetWorkoutLog(ctx context.Context, id uuid.UUID, userID int) (*models.WorkoutLogRow, error) {
	var r models.WorkoutLogRow
	err := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, log_date, source, rendered, created_at
		 FROM workout_logs
		 WHERE id = $1 AND user_id = $2`,
		id, userID).Scan(&r.ID, &r.UserID, &r.LogDate, &r.Source, &r.Rendered, &r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("getting workout log: %w", err)
	}
	return &r, nil
}

// GetLoggedSets retrieves the expanded sets of one log in plan order.
func (db *DB) GetLoggedSets(ctx context.Context, logID uuid.UUID, userID int) ([]models.LoggedSetRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT log_id, user_id, log_date, exercise_name, exercise_number,
		        set_number, reps, planned_rpe, planned_weight,
		        actual_weight, lower_actual_rpe, upper_actual_rpe
		 FROM logged_sets
		 WHERE log_id = $1 AND user_id = $2
		 ORDER BY exercise_number ASC, set_number ASC`,
		logID, userID)
	if err != nil {
		return nil, fmt.Errorf("querying logged sets: %w", err)
	}
	defer rows.Close()

	var result []models.LoggedSetRow
	for rows.Next() {
		var r models.LoggedSetRow
		if err := rows.Scan(&r.LogID, &r.UserID, &r.LogDate, &r.ExerciseName,
			&r.ExerciseNumber, &r.SetNumber, &r.Reps, &r.PlannedRPE, &r.PlannedWeight,
			&r.ActualWeight, &r.LowerActualRPE, &r.UpperActualRPE); err != nil {
			return nil, fmt.Errorf("scanning logged set: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}
