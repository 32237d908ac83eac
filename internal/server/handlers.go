package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/claude/planlog/internal/plan"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// handleRender converts a base64-encoded plan from the query string into
// formatted log text without persisting anything. Malformed base64 is
// the caller's problem and comes back as a 400.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	encoded := r.URL.Query().Get("data")
	if encoded == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "data parameter required"})
		return
	}

	date, err := s.renderDate(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date: " + err.Error()})
		return
	}

	rendered, err := plan.RenderEncoded(encoded, date)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(rendered))
}

func (s *Server) handleCreateLog(w http.ResponseWriter, r *http.Request) {
	encoded := r.URL.Query().Get("data")
	if encoded == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "data parameter required"})
		return
	}

	date, err := s.renderDate(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date: " + err.Error()})
		return
	}

	result, err := s.sheet.Ingest(r.Context(), encoded, date, 1)
	if err != nil {
		s.log.Error("plan ingest error", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleQueryLogs(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	logs, err := s.db.QueryWorkoutLogs(r.Context(), start, end, 1)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

func (s *Server) handleGetLog(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	logID, err := uuid.Parse(idStr)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid log ID"})
		return
	}

	logRow, err := s.db.GetWorkoutLog(r.Context(), logID, 1)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "log not found"})
		return
	}

	sets, err := s.db.GetLoggedSets(r.Context(), logID, 1)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"log":  logRow,
		"sets": sets,
	})
}

func (s *Server) handleVolume(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	volume, err := s.db.GetExerciseVolume(r.Context(), start, end, 1, r.URL.Query().Get("exercise"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, volume)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.GetLogStats(r.Context(), 1)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// renderDate resolves the date query parameter, defaulting to the
// server clock when absent.
func (s *Server) renderDate(r *http.Request) (time.Time, error) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		return s.now(), nil
	}
	return time.Parse("2006-01-02", dateStr)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func parseTimeRange(r *http.Request) (start, end time.Time, err error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if endStr == "" {
		end = time.Now()
	} else {
		end, err = time.Parse(time.RFC3339, endStr)
		if err != nil {
			end, err = time.Parse("2006-01-02", endStr)
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			// End of day for date-only
			end = end.Add(24 * time.Hour)
		}
	}

	if startStr == "" {
		// Default: the 30 days before end
		start = end.AddDate(0, 0, -30)
		return
	}

	start, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return
}
