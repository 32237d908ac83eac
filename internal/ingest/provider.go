package ingest

import "github.com/google/uuid"

// Result holds the outcome of a plan ingest operation.
type Result struct {
	LogID        uuid.UUID `json:"log_id"`
	LogDate      string    `json:"log_date"`
	Exercises    int       `json:"exercises"`
	SetsReceived int       `json:"sets_received"`
	SetsInserted int64     `json:"sets_inserted"`
	Rendered     string    `json:"rendered"`
}
