package scoreboard

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/rs/zerolog/log"
)

// CreateTeamRequest is the payload for CreateTeam and UpdateTeam. LogoID is
// the asset id returned by UploadLogo; zero means no logo change is requested
// and the field is omitted from the wire payload.
type CreateTeamRequest struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	LogoID  int    `json:"logo,omitempty"`
}

// CreateTeam creates a team record.
func (c *Client) CreateTeam(ctx context.Context, req CreateTeamRequest) (*Team, error) {
	var out Team
	if err := c.postJSON(ctx, "/api/teams", "", req, &out, "Failed to create team"); err != nil {
		return nil, fmt.Errorf("CreateTeam: %w", err)
	}
	return &out, nil
}

// GetTeams fetches the full roster. Any failure yields an empty list: the
// caller's screen stays usable, the list is simply empty.
func (c *Client) GetTeams(ctx context.Context) []Team {
	var out []Team
	if err := c.getJSON(ctx, "/api/teams", "", &out, "Failed to fetch teams"); err != nil {
		log.Warn().Err(err).Msg("roster fetch failed, returning empty list")
		return []Team{}
	}
	if out == nil {
		out = []Team{}
	}
	return out
}

// GetTeamDetails fetches one team record. Failure is logged and nil returned;
// callers treat a nil team as "details unavailable".
func (c *Client) GetTeamDetails(ctx context.Context, teamID int, token string) *Team {
	var out Team
	path := fmt.Sprintf("/api/teams/%d", teamID)
	if err := c.getJSON(ctx, path, token, &out, "Failed to fetch team"); err != nil {
		log.Warn().Err(err).Int("team", teamID).Msg("team details fetch failed")
		return nil
	}
	return &out
}

// UpdateTeam updates a team's fields. Fields with zero values in req other
// than LogoID are still sent; callers populate the full record.
func (c *Client) UpdateTeam(ctx context.Context, teamID int, req CreateTeamRequest, token string) (*Team, error) {
	var out Team
	path := fmt.Sprintf("/api/teams/%d", teamID)
	if err := c.putJSON(ctx, path, token, req, &out, "Failed to update team"); err != nil {
		return nil, fmt.Errorf("UpdateTeam: %w", err)
	}
	return &out, nil
}

// DeleteTeam removes a team record.
func (c *Client) DeleteTeam(ctx context.Context, teamID int) error {
	path := fmt.Sprintf("/api/teams/%d", teamID)
	if err := c.do(ctx, http.MethodDelete, path, "", nil, "", nil, "Failed to delete team"); err != nil {
		return fmt.Errorf("DeleteTeam: %w", err)
	}
	return nil
}

// UploadLogo uploads one image under the multipart field "files" and returns
// the created asset descriptors (the backend responds with a list even for a
// single file). The reader is consumed exactly once, so callers may wrap it
// for progress reporting.
func (c *Client) UploadLogo(ctx context.Context, filename string, r io.Reader, token string) ([]Logo, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("files", filename)
	if err != nil {
		return nil, fmt.Errorf("UploadLogo: failed to build form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("UploadLogo: failed to read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("UploadLogo: failed to finish form: %w", err)
	}

	var out []Logo
	err = c.do(ctx, http.MethodPost, "/api/upload", token, &body, mw.FormDataContentType(), &out, "Logo upload failed")
	if err != nil {
		return nil, fmt.Errorf("UploadLogo: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("UploadLogo: backend returned no asset descriptor")
	}
	return out, nil
}
