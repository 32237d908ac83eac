package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/claude/planlog/internal/models"
	"github.com/claude/planlog/internal/storage"
	"github.com/google/uuid"
)

// HTTPClient implements DataSource by calling the PlanLog REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func timeParams(start, end time.Time) url.Values {
	v := url.Values{}
	v.Set("start", start.Format(time.RFC3339))
	v.Set("end", end.Format(time.RFC3339))
	return v
}

func (c *HTTPClient) QueryWorkoutLogs(ctx context.Context, start, end time.Time, _ int) ([]models.WorkoutLogRow, error) {
	body, err := c.get(ctx, "/api/v1/logs", timeParams(start, end))
	if err != nil {
		return nil, err
	}

	var logs []models.WorkoutLogRow
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("httpclient: decode logs: %w", err)
	}
	return logs, nil
}

func (c *HTTPClient) GetWorkoutLog(ctx context.Context, id uuid.UUID, _ int) (*models.WorkoutLogRow, error) {
	body, err := c.get(ctx, "/api/v1/logs/"+id.String(), nil)
	if err != nil {
		return nil, err
	}

	// The REST endpoint wraps the log with its set rows; tools only
	// need the log itself here.
	var detail struct {
		Log models.WorkoutLogRow `json:"log"`
	}
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("httpclient: decode log: %w", err)
	}
	return &detail.Log, nil
}

func (c *HTTPClient) GetExerciseVolume(ctx context.Context, start, end time.Time, _ int, exerciseFilter string) ([]storage.ExerciseVolume, error) {
	params := timeParams(start, end)
	if exerciseFilter != "" {
		params.Set("exercise", exerciseFilter)
	}

	body, err := c.get(ctx, "/api/v1/volume", params)
	if err != nil {
		return nil, err
	}

	var volume []storage.ExerciseVolume
	if err := json.Unmarshal(body, &volume); err != nil {
		return nil, fmt.Errorf("httpclient: decode volume: %w", err)
	}
	return volume, nil
}

func (c *HTTPClient) GetLogStats(ctx context.Context, _ int) (*storage.LogStats, error) {
	body, err := c.get(ctx, "/api/v1/stats", nil)
	if err != nil {
		return nil, err
	}

	var stats storage.LogStats
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, fmt.Errorf("httpclient: decode stats: %w", err)
	}
	return &stats, nil
}
