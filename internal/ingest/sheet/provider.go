// Package sheet ingests pasted spreadsheet plan blocks: it runs the
// render pipeline and persists both the formatted log and the expanded
// per-set rows for volume queries.
package sheet

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"github.com/claude/planlog/internal/ingest"
	"github.com/claude/planlog/internal/models"
	"github.com/claude/planlog/internal/plan"
	"github.com/claude/planlog/internal/storage"
	"github.com/google/uuid"
)

// Provider processes base64-encoded spreadsheet plan text.
type Provider struct {
	db  *storage.DB
	log *slog.Logger
}

// NewProvider creates a new spreadsheet ingest provider.
func NewProvider(db *storage.DB, log *slog.Logger) *Provider {
	return &Provider{db: db, log: log}
}

// Ingest decodes, renders, and stores one plan. The encoded payload is
// the only hard failure; everything past decoding follows the
// pipeline's permissive parsing.
func (p *Provider) Ingest(ctx context.Context, encoded string, date time.Time, userID int) (*ingest.Result, error) {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding plan data: %w", err)
	}
	source := string(decoded)

	blocks := plan.ParseGrid(source)
	exercises := make([]plan.Exercise, 0, len(blocks))
	for _, b := range blocks {
		exercises = append(exercises, plan.Expand(b))
	}
	rendered := plan.Render(exercises, date)

	logID := uuid.New()
	logDate := date.Truncate(24 * time.Hour)

	if err := p.db.InsertWorkoutLog(ctx, models.WorkoutLogRow{
		ID:       logID,
		UserID:   userID,
		LogDate:  logDate,
		Source:   source,
		Rendered: rendered,
	}); err != nil {
		return nil, fmt.Errorf("storing log: %w", err)
	}

	setRows := setRowsFor(logID, userID, logDate, exercises)
	inserted, err := p.db.InsertLoggedSets(ctx, setRows)
	if err != nil {
		return nil, fmt.Errorf("storing sets: %w", err)
	}

	p.log.Info("plan ingested",
		"log_id", logID,
		"exercises", len(exercises),
		"sets", len(setRows),
	)

	return &ingest.Result{
		LogID:        logID,
		LogDate:      logDate.Format("2006-01-02"),
		Exercises:    len(exercises),
		SetsReceived: len(setRows),
		SetsInserted: inserted,
		Rendered:     rendered,
	}, nil
}

// setRowsFor flattens expanded exercises into insertable set rows. A set
// whose reps cell never parsed gets a NULL reps column; it still counts
// as a set.
func setRowsFor(logID uuid.UUID, userID int, logDate time.Time, exercises []plan.Exercise) []models.LoggedSetRow {
	var rows []models.LoggedSetRow
	for exNum, ex := range exercises {
		for setNum, s := range ex.Sets {
			var reps *int
			if s.RepsValid {
				r := s.Reps
				reps = &r
			}
			rows = append(rows, models.LoggedSetRow{
				LogID:          logID,
				UserID:         userID,
				LogDate:        logDate,
				ExerciseName:   ex.Name,
				ExerciseNumber: exNum + 1,
				SetNumber:      setNum + 1,
				Reps:           reps,
				PlannedRPE:     s.RPE,
				PlannedWeight:  s.Weight,
				ActualWeight:   s.ActualWeight,
				LowerActualRPE: s.LowerActualRPE,
				UpperActualRPE: s.UpperActualRPE,
			})
		}
	}
	return rows
}
