package scoreboard

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// LoginRequest is the credential payload for Login. Identifier is the email
// address the account was registered with.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// RegisterRequest is the payload for Register.
type RegisterRequest struct {
	Username    string `json:"username"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
}

// Login exchanges credentials for a bearer token and the user's profile.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.postJSON(ctx, "/api/auth/local", "", req, &out, "Login failed"); err != nil {
		return nil, fmt.Errorf("Login: %w", err)
	}
	return &out, nil
}

// Register creates a new account and returns the created profile.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.postJSON(ctx, "/api/auth/local/register", "", req, &out, "Registration failed"); err != nil {
		return nil, fmt.Errorf("Register: %w", err)
	}
	return &out, nil
}

// CheckEmailExists asks whether an account already uses the given address.
// This is a best-effort call: a transport or backend failure is logged and
// reported as not-existing rather than interrupting the caller.
func (c *Client) CheckEmailExists(ctx context.Context, email string) bool {
	var out struct {
		Exists bool `json:"exists"`
	}
	in := map[string]string{"email": email}
	if err := c.postJSON(ctx, "/api/auth/check-email", "", in, &out, "Email check failed"); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("email existence check failed, assuming available")
		return false
	}
	return out.Exists
}
