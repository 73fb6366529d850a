package matchday

import (
	"context"
	"io"
	"os"

	"github.com/sportsynz/scorectl/internal/scoreboard"
	"github.com/sportsynz/scorectl/internal/session"
)

// Context represents a set of options passed to the match commands.
type Context struct {
	context.Context

	Client *scoreboard.Client
	Store  *session.Store

	// Force skips interactive confirmation prompts.
	Force bool

	// Out receives scoreboard and table output. Defaults to stdout.
	Out io.Writer

	// TeamAID and TeamBID preselect the two slots, bypassing the interactive
	// picker. Zero means "ask".
	TeamAID int
	TeamBID int

	// Code selects a match for lookup by its shareable code.
	Code string

	// Export is a path for the Excel export of the match history. Empty
	// prints the table to Out instead.
	Export string

	// Channel picks a share channel up front instead of prompting.
	Channel Channel
}

// NewContext creates and returns a matchday Context from a base context
// object.
func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx, Out: os.Stdout}
}
