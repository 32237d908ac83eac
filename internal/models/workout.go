package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutLogRow is a rendered workout log ready for insertion into the
// workout_logs table. Source holds the decoded spreadsheet text the log
// was rendered from; Rendered is the formatted output.
type WorkoutLogRow struct {
	ID        uuid.UUID `json:"id"`
	UserID    int       `json:"user_id"`
	LogDate   time.Time `json:"log_date"`
	Source    string    `json:"source,omitempty"`
	Rendered  string    `json:"rendered"`
	CreatedAt time.Time `json:"created_at"`
}

// LoggedSetRow is one expanded set of a persisted log, ready for
// insertion into the logged_sets table. Optional columns mirror the
// pipeline's absent-vs-zero distinction.
type LoggedSetRow struct {
	LogID          uuid.UUID `json:"log_id"`
	UserID         int       `json:"user_id"`
	LogDate        time.Time `json:"log_date"`
	ExerciseName   string    `json:"exercise_name"`
	ExerciseNumber int       `json:"exercise_number"`
	SetNumber      int       `json:"set_number"`
	Reps           *int      `json:"reps"`
	PlannedRPE     *float64  `json:"planned_rpe"`
	PlannedWeight  *float64  `json:"planned_weight"`
	ActualWeight   *float64  `json:"actual_weight"`
	LowerActualRPE float64   `json:"lower_actual_rpe"`
	UpperActualRPE float64   `json:"upper_actual_rpe"`
}
