package authflow

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Logout clears every persisted session value: token, profile, remember-me.
func Logout(ctx *Context) error {
	if err := ctx.Store.Clear(); err != nil {
		return fmt.Errorf("Logout: %w", err)
	}
	log.Info().Msg("logged out")
	return nil
}
