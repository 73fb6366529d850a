package authflow

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/sportsynz/scorectl/internal/matchsession"
	"github.com/sportsynz/scorectl/internal/scoreboard"
)

// ValidationError blocks an auth action before any network call is made. The
// field messages are shown inline, one per field.
type ValidationError struct {
	Fields matchsession.FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, e.Fields[name])
	}
	return strings.Join(parts, "; ")
}

// Login validates the form, exchanges credentials for a token, and persists
// token, profile, and the remember-me preference. Validation failure blocks
// the call entirely; a backend rejection is surfaced with its message.
func Login(ctx *Context) error {
	if errs := matchsession.ValidateLogin(ctx.Email, ctx.Password); !errs.OK() {
		return &ValidationError{Fields: errs}
	}

	res, err := ctx.Client.Login(ctx, scoreboard.LoginRequest{
		Identifier: ctx.Email,
		Password:   ctx.Password,
	})
	if err != nil {
		return fmt.Errorf("Login: %w", err)
	}

	if err := ctx.Store.SaveLogin(res.JWT, res.User, ctx.RememberMe); err != nil {
		return fmt.Errorf("Login: %w", err)
	}

	log.Info().Str("email", res.User.Email).Msg("logged in")
	return nil
}
