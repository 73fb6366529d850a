package authflow

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/sportsynz/scorectl/internal/matchsession"
	"github.com/sportsynz/scorectl/internal/scoreboard"
)

// Register validates the sign-up form and creates the account. The
// email-exists check is best-effort: when it cannot be answered the address
// is assumed available and the backend gets the final say. Registration does
// not log the user in; they are routed to login afterwards.
func Register(ctx *Context) (*scoreboard.User, error) {
	errs := matchsession.ValidateSignUp(ctx.FullName, ctx.Email, ctx.Phone, ctx.Password)
	if !errs.OK() {
		return nil, &ValidationError{Fields: errs}
	}

	if ctx.Client.CheckEmailExists(ctx, ctx.Email) {
		return nil, &ValidationError{Fields: matchsession.FieldErrors{"email": "Email already exists"}}
	}

	res, err := ctx.Client.Register(ctx, scoreboard.RegisterRequest{
		Username:    ctx.Email,
		FullName:    ctx.FullName,
		Email:       ctx.Email,
		Password:    ctx.Password,
		PhoneNumber: ctx.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("Register: %w", err)
	}

	log.Info().Str("email", res.User.Email).Msg("account created")
	return &res.User, nil
}
