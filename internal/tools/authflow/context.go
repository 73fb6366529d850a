package authflow

import (
	"context"

	"github.com/sportsynz/scorectl/internal/scoreboard"
	"github.com/sportsynz/scorectl/internal/session"
)

// Context represents a set of options passed to the auth commands.
type Context struct {
	context.Context

	Client *scoreboard.Client
	Store  *session.Store

	Email    string
	Password string

	// RememberMe persists the preference so a later run can skip the login
	// prompt.
	RememberMe bool

	// Registration fields.
	FullName string
	Phone    string
}

// NewContext creates and returns an authflow Context from a base context
// object.
func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}
