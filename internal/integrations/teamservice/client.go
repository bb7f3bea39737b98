package teamservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger is the subset of the application logger the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to the staffing service that owns assembly and assistance crews.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a staffing service client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetTeam fetches one team by ID.
func (c *Client) GetTeam(ctx context.Context, teamID int64) (*Team, error) {
	url := fmt.Sprintf("%s/internal/teams/%d", c.baseURL, teamID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid team ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrTeamNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var team Team
	if err := json.NewDecoder(resp.Body).Decode(&team); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &team, nil
}

// GetTeamWithGracefulDegradation fetches one team, and when the staffing
// service is unreachable returns ErrServiceDegraded so the caller can keep
// scheduling with just the team ID.
func (c *Client) GetTeamWithGracefulDegradation(ctx context.Context, teamID int64) (*Team, error) {
	team, err := c.GetTeam(ctx, teamID)
	if err != nil {
		if err == ErrTeamNotFound {
			c.log.Info("No team found for team_id=%d", teamID)
			return nil, err
		}

		c.log.Error("TeamService unavailable, applying graceful degradation for team_id=%d: %v", teamID, err)
		return nil, fmt.Errorf("%w: team_id=%d, error=%v", ErrServiceDegraded, teamID, err)
	}

	return team, nil
}
