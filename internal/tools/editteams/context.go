package editteams

import (
	"context"
	"io"
	"os"

	"github.com/sportsynz/scorectl/internal/scoreboard"
	"github.com/sportsynz/scorectl/internal/session"
)

// Context represents a set of options passed to the team management commands.
type Context struct {
	context.Context

	Client *scoreboard.Client
	Store  *session.Store

	// Force skips interactive confirmation prompts.
	Force bool

	// Out receives table output. Defaults to stdout.
	Out io.Writer

	// TeamID selects the team to edit or delete. Zero means "create new".
	TeamID int

	Name    string
	Country string

	// ImagePath is the working logo image: a local file path, or empty for
	// "no change".
	ImagePath string

	// PersistedLogoURL is the last known persisted logo location, used for
	// change detection. Populated from the fetched team record on edit.
	PersistedLogoURL string

	// ShowProgress enables the upload progress bar. Off in tests.
	ShowProgress bool
}

// NewContext creates and returns an editteams Context from a base context
// object.
func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx, Out: os.Stdout}
}
