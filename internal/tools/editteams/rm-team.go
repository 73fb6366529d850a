package editteams

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/rs/zerolog/log"

	"github.com/sportsynz/scorectl/internal/scoreboard"
)

// RmTeam deletes a team after confirmation and returns the in-memory roster
// with the team removed. Removal happens only after the delete call resolves
// successfully; on failure the roster is returned untouched so nothing
// disappears that the backend still has.
func RmTeam(ctx *Context, roster []scoreboard.Team) ([]scoreboard.Team, error) {
	var target *scoreboard.Team
	for i := range roster {
		if roster[i].ID == ctx.TeamID {
			target = &roster[i]
			break
		}
	}
	if target == nil {
		return roster, fmt.Errorf("RmTeam: no team with id %d", ctx.TeamID)
	}

	if !ctx.Force {
		confirmed := false
		q := &survey.Confirm{Message: fmt.Sprintf("Delete team %q?", target.Name)}
		if err := survey.AskOne(q, &confirmed); err != nil || !confirmed {
			return roster, nil
		}
	}

	if err := ctx.Client.DeleteTeam(ctx, ctx.TeamID); err != nil {
		return roster, fmt.Errorf("RmTeam: %w", err)
	}
	log.Info().Str("team", target.Name).Msg("team deleted")

	out := make([]scoreboard.Team, 0, len(roster)-1)
	for _, t := range roster {
		if t.ID == ctx.TeamID {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
