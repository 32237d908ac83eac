package sheet

import (
	"testing"
	"time"

	"github.com/claude/planlog/internal/plan"
	"github.com/google/uuid"
)

// TestSetRowsFor verifies flattening of expanded exercises into set rows,
// including the NULL-reps handling for cells that never parsed.
func TestSetRowsFor(t *testing.T) {
	w := 80.0
	exercises := []plan.Exercise{
		{
			Name: "bench press",
			Sets: []plan.Set{
				{Reps: 8, RepsValid: true, ActualWeight: &w, LowerActualRPE: 7, UpperActualRPE: 8},
				{RepsValid: false, ActualWeight: &w},
			},
		},
		{
			Name: "squat",
			Sets: []plan.Set{
				{Reps: 5, RepsValid: true},
			},
		},
	}

	logID := uuid.New()
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	rows := setRowsFor(logID, 1, date, exercises)

	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}

	first := rows[0]
	if first.ExerciseNumber != 1 || first.SetNumber != 1 {
		t.Errorf("first row numbering = %d/%d, want 1/1", first.ExerciseNumber, first.SetNumber)
	}
	if first.Reps == nil || *first.Reps != 8 {
		t.Errorf("first row reps = %v, want 8", first.Reps)
	}
	if first.LowerActualRPE != 7 || first.UpperActualRPE != 8 {
		t.Errorf("first row rpe bounds = %v-%v, want 7-8", first.LowerActualRPE, first.UpperActualRPE)
	}

	if rows[1].Reps != nil {
		t.Errorf("invalid reps row stored %v, want nil", *rows[1].Reps)
	}

	last := rows[2]
	if last.ExerciseName != "squat" || last.ExerciseNumber != 2 || last.SetNumber != 1 {
		t.Errorf("last row = %q %d/%d, want squat 2/1", last.ExerciseName, last.ExerciseNumber, last.SetNumber)
	}
	if last.ActualWeight != nil {
		t.Errorf("last row actual weight = %v, want nil", *last.ActualWeight)
	}
	if last.LogID != logID {
		t.Errorf("last row log ID = %v, want %v", last.LogID, logID)
	}
}
