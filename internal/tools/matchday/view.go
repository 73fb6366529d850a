package matchday

import (
	"errors"
	"fmt"

	"github.com/sportsynz/scorectl/internal/matchsession"
	"github.com/sportsynz/scorectl/internal/scoreboard"
)

// ViewMatch looks a match up by its shareable code and prints its current
// state. An unknown code is a normal outcome, not a failure.
func ViewMatch(ctx *Context) error {
	if ctx.Code == "" {
		return fmt.Errorf("ViewMatch: match code required")
	}

	token, err := ctx.Store.Token()
	if err != nil {
		return fmt.Errorf("ViewMatch: %w", err)
	}

	m, err := ctx.Client.GetMatchByCode(ctx, ctx.Code, token)
	if errors.Is(err, scoreboard.ErrMatchNotFound) {
		fmt.Fprintln(ctx.Out, "No match found for this code!")
		return nil
	}
	if err != nil {
		return fmt.Errorf("ViewMatch: %w", err)
	}

	fmt.Fprintf(ctx.Out, "Match %s (%s)\n", m.MatchCode, matchType(*m))
	fmt.Fprintf(ctx.Out, "%s %s : %s %s\n",
		m.TeamName("A"), matchsession.FormatScore(m.ScoreA),
		matchsession.FormatScore(m.ScoreB), m.TeamName("B"))
	if m.Status == scoreboard.MatchEnded {
		fmt.Fprintln(ctx.Out, winnerLine(*m))
	} else {
		fmt.Fprintf(ctx.Out, "Live: %s\n", matchsession.LiveURL(m.MatchCode))
	}
	return nil
}
