package matchday

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/sportsynz/scorectl/internal/matchsession"
)

// RunScoreboard drives the interactive scoring loop for one active session.
// Score changes apply locally at once and sync in the background; ending the
// match is the only blocking call. An end-match failure keeps the session
// active so the user can pick "Over the match" again.
func RunScoreboard(ctx *Context, s *matchsession.Session) error {
	home := s.TeamName(matchsession.Home)
	away := s.TeamName(matchsession.Away)

	actions := []string{
		"+1 " + home,
		"-1 " + home,
		"+1 " + away,
		"-1 " + away,
		"Share match",
		"Over the match",
	}

	for s.State() == matchsession.Active {
		fmt.Fprintln(ctx.Out, scoreLine(s))

		var choice string
		q := &survey.Select{Message: "Action:", Options: actions}
		if err := survey.AskOne(q, &choice); err != nil {
			// Prompt aborted: leave the session without ending the match.
			// Any in-flight score syncs are drained, never cancelled.
			s.Teardown()
			return nil
		}

		switch choice {
		case actions[0]:
			s.Increment(matchsession.Home)
		case actions[1]:
			s.Decrement(matchsession.Home)
		case actions[2]:
			s.Increment(matchsession.Away)
		case actions[3]:
			s.Decrement(matchsession.Away)
		case actions[4]:
			if err := ShareMatch(ctx, s); err != nil {
				// Not fatal: the target app may simply not be available.
				fmt.Fprintf(ctx.Out, "Share failed: %v\n", err)
			}
		case actions[5]:
			if !confirmEnd(ctx) {
				continue
			}
			if err := s.End(ctx); err != nil {
				fmt.Fprintf(ctx.Out, "Error: %v\n", err)
				continue
			}
			fmt.Fprintln(ctx.Out, "Match ended successfully!")
		}
	}

	s.Teardown()
	return nil
}

func confirmEnd(ctx *Context) bool {
	if ctx.Force {
		return true
	}
	confirmed := false
	q := &survey.Confirm{Message: "End this match?", Default: true}
	if err := survey.AskOne(q, &confirmed); err != nil {
		return false
	}
	return confirmed
}

// scoreLine renders both sides the way the scoreboard shows them, scores
// zero-padded below ten.
func scoreLine(s *matchsession.Session) string {
	return fmt.Sprintf("%s %s : %s %s",
		s.TeamName(matchsession.Home), matchsession.FormatScore(s.Score(matchsession.Home)),
		matchsession.FormatScore(s.Score(matchsession.Away)), s.TeamName(matchsession.Away))
}
