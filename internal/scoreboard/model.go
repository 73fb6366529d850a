package scoreboard

import (
	"fmt"
	"time"
)

// Team represents one team record as the backend stores it.
// The client only ever holds a transient, possibly-stale copy.
type Team struct {
	// ID is the backend-assigned record identifier.
	ID int `json:"id"`

	// Name is the team's display name.
	Name string `json:"name"`

	// Country is the free-text country the team plays for.
	Country string `json:"country"`

	// Logo is the optional uploaded logo asset. Nil when the team has none.
	Logo *Logo `json:"logo,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t Team) String() string {
	if t.Country == "" {
		return t.Name
	}
	return fmt.Sprintf("%s (%s)", t.Name, t.Country)
}

// Logo is an uploaded image asset with optional pre-rendered size variants.
type Logo struct {
	ID      int          `json:"id"`
	Name    string       `json:"name"`
	URL     string       `json:"url"`
	Formats *LogoFormats `json:"formats,omitempty"`
}

// LogoFormats holds the size variants the backend generates on upload.
type LogoFormats struct {
	Thumbnail *LogoFormat `json:"thumbnail,omitempty"`
	Small     *LogoFormat `json:"small,omitempty"`
}

// LogoFormat is one rendered size of an uploaded logo.
type LogoFormat struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// DisplayURL returns the absolute URL of the best variant for list display,
// preferring thumbnail, then small, then the original. Relative paths are
// resolved against base. An empty string means the logo has no usable URL.
func (l *Logo) DisplayURL(base string) string {
	if l == nil {
		return ""
	}
	path := l.URL
	if l.Formats != nil {
		if l.Formats.Thumbnail != nil && l.Formats.Thumbnail.URL != "" {
			path = l.Formats.Thumbnail.URL
		} else if l.Formats.Small != nil && l.Formats.Small.URL != "" {
			path = l.Formats.Small.URL
		}
	}
	if path == "" {
		return ""
	}
	if len(path) > 0 && path[0] == '/' {
		return base + path
	}
	return path
}

// MatchStatus is the lifecycle state of a match on the backend.
type MatchStatus string

const (
	MatchActive MatchStatus = "active"
	MatchEnded  MatchStatus = "ended"
)

// Match represents one match record. Scores are non-negative integers owned by
// the backend; the client mirrors a working copy while a session is active.
type Match struct {
	ID int `json:"id"`

	// MatchCode is the human-readable code used for sharing and lookup.
	MatchCode string `json:"match_code"`

	// Type is the match category, e.g. "single".
	Type string `json:"type"`

	TeamA *Team `json:"teamA,omitempty"`
	TeamB *Team `json:"teamB,omitempty"`

	ScoreA int `json:"scoreA"`
	ScoreB int `json:"scoreB"`

	Status MatchStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
}

// TeamName returns the display name of the requested side with a placeholder
// fallback, matching how the backend's optional team fields are rendered.
func (m Match) TeamName(side string) string {
	switch side {
	case "A":
		if m.TeamA != nil && m.TeamA.Name != "" {
			return m.TeamA.Name
		}
		return "Team A"
	default:
		if m.TeamB != nil && m.TeamB.Name != "" {
			return m.TeamB.Name
		}
		return "Team B"
	}
}

// User is the profile record returned by login and register.
type User struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// AuthResponse is the payload of a successful login: an opaque bearer token
// plus the authenticated user's profile.
type AuthResponse struct {
	JWT  string `json:"jwt"`
	User User   `json:"user"`
}
