package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/claude/planlog/internal/models"
	"github.com/google/uuid"
)

// TestHTTPClientQueryWorkoutLogs verifies that the client hits the right
// path with RFC3339 time parameters and decodes the response.
func TestHTTPClientQueryWorkoutLogs(t *testing.T) {
	logID := uuid.New()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/logs" {
			t.Errorf("path = %q, want /api/v1/logs", r.URL.Path)
		}
		if r.URL.Query().Get("start") == "" || r.URL.Query().Get("end") == "" {
			t.Error("missing start/end query parameters")
		}
		json.NewEncoder(w).Encode([]models.WorkoutLogRow{
			{ID: logID, UserID: 1, Rendered: "2026-03-14\n\nsquat\n100kg 3x5 @ 8"},
		})
	}))
	defer ts.Close()

	c := NewHTTPClient(ts.URL)
	logs, err := c.QueryWorkoutLogs(context.Background(), time.Now().AddDate(0, 0, -7), time.Now(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("logs = %d, want 1", len(logs))
	}
	if logs[0].ID != logID {
		t.Errorf("log ID = %v, want %v", logs[0].ID, logID)
	}
}

// TestHTTPClientGetWorkoutLog verifies unwrapping of the {log, sets}
// detail response.
func TestHTTPClientGetWorkoutLog(t *testing.T) {
	logID := uuid.New()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/logs/"+logID.String() {
			t.Errorf("path = %q, want /api/v1/logs/%s", r.URL.Path, logID)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"log":  models.WorkoutLogRow{ID: logID, Source: "squat\t\t\t\t\t"},
			"sets": []models.LoggedSetRow{},
		})
	}))
	defer ts.Close()

	c := NewHTTPClient(ts.URL)
	logRow, err := c.GetWorkoutLog(context.Background(), logID, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logRow.ID != logID {
		t.Errorf("log ID = %v, want %v", logRow.ID, logID)
	}
	if logRow.Source == "" {
		t.Error("source text missing from detail response")
	}
}

// TestHTTPClientErrorStatus verifies that non-200 responses surface as
// errors including the body.
func TestHTTPClientErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := NewHTTPClient(ts.URL)
	if _, err := c.GetLogStats(context.Background(), 1); err == nil {
		t.Fatal("expected error for 500 response")
	}
}
