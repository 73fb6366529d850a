package scoreboard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// CreateMatchRequest names the two competing teams by id plus the match
// category.
type CreateMatchRequest struct {
	TeamA int    `json:"teamA"`
	TeamB int    `json:"teamB"`
	Type  string `json:"type"`
}

// CreateMatchResponse wraps the created match record the way the backend
// nests it.
type CreateMatchResponse struct {
	Match Match `json:"match"`
}

// ScoreUpdate carries both running scores; the backend replaces its record
// wholesale rather than applying deltas.
type ScoreUpdate struct {
	ScoreA int `json:"scoreA"`
	ScoreB int `json:"scoreB"`
}

// CreateMatch starts a match between two distinct teams and returns the
// record, including the shareable match code.
func (c *Client) CreateMatch(ctx context.Context, req CreateMatchRequest, token string) (*CreateMatchResponse, error) {
	var out CreateMatchResponse
	if err := c.postJSON(ctx, "/api/matches", token, req, &out, "Failed to start match"); err != nil {
		return nil, fmt.Errorf("CreateMatch: %w", err)
	}
	return &out, nil
}

// UpdateScore persists both running scores for a match. Callers treat this as
// best-effort: a failure here is logged by the session, never surfaced.
func (c *Client) UpdateScore(ctx context.Context, matchID int, update ScoreUpdate, token string) error {
	path := fmt.Sprintf("/api/matches/%d/score", matchID)
	if err := c.putJSON(ctx, path, token, update, nil, "Failed to update score"); err != nil {
		return fmt.Errorf("UpdateScore: %w", err)
	}
	return nil
}

// EndMatch marks a match ended. Unlike score updates this is a critical call:
// failure is surfaced and the session stays active so the caller can retry.
func (c *Client) EndMatch(ctx context.Context, matchID int, token string) error {
	path := fmt.Sprintf("/api/matches/%d/end", matchID)
	if err := c.postJSON(ctx, path, token, nil, nil, "Failed to end match"); err != nil {
		return fmt.Errorf("EndMatch: %w", err)
	}
	return nil
}

// GetMatchByCode looks a match up by its shareable code. A 404 becomes
// ErrMatchNotFound so callers can distinguish "absent" from "failed".
func (c *Client) GetMatchByCode(ctx context.Context, code, token string) (*Match, error) {
	var out Match
	path := "/api/matches/code/" + code
	if err := c.getJSON(ctx, path, token, &out, "Failed to fetch match by code"); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("GetMatchByCode: %w", err)
	}
	return &out, nil
}

// GetCompletedMatches lists ended matches for the authenticated user.
func (c *Client) GetCompletedMatches(ctx context.Context, token string) ([]Match, error) {
	var out []Match
	if err := c.getJSON(ctx, "/api/matches/completed", token, &out, "Failed to fetch completed matches"); err != nil {
		return nil, fmt.Errorf("GetCompletedMatches: %w", err)
	}
	return out, nil
}
