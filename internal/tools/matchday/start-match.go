package matchday

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/rs/zerolog/log"

	"github.com/sportsynz/scorectl/internal/matchsession"
	"github.com/sportsynz/scorectl/internal/scoreboard"
)

// StartMatch fills both team slots, creates the match, and returns an Active
// session seeded with the two teams and zero scores. Slot selection never
// offers the team already occupying the other slot. Creation failure leaves
// nothing to tear down: the caller may simply re-run.
func StartMatch(ctx *Context) (*matchsession.Session, error) {
	token, err := ctx.Store.Token()
	if err != nil {
		return nil, fmt.Errorf("StartMatch: %w", err)
	}

	roster := ctx.Client.GetTeams(ctx)
	if len(roster) < 2 {
		return nil, fmt.Errorf("StartMatch: need at least two teams, have %d (create some with 'scoretool teams add')", len(roster))
	}

	var sel matchsession.Selection
	if err := fillSlot(ctx, &sel, matchsession.SlotA, roster, ctx.TeamAID); err != nil {
		return nil, fmt.Errorf("StartMatch: %w", err)
	}
	if err := fillSlot(ctx, &sel, matchsession.SlotB, roster, ctx.TeamBID); err != nil {
		return nil, fmt.Errorf("StartMatch: %w", err)
	}

	teamA, teamB, err := sel.Pair()
	if err != nil {
		return nil, fmt.Errorf("StartMatch: %w", err)
	}

	res, err := ctx.Client.CreateMatch(ctx, scoreboard.CreateMatchRequest{
		TeamA: teamA.ID,
		TeamB: teamB.ID,
		Type:  "single",
	}, token)
	if err != nil {
		return nil, fmt.Errorf("StartMatch: %w", err)
	}

	log.Info().Str("code", res.Match.MatchCode).Msg("match started")
	fmt.Fprintf(ctx.Out, "Match started. Code: %s\n", res.Match.MatchCode)

	return matchsession.New(ctx.Client, token, res.Match, teamA, teamB), nil
}

// fillSlot places a team in one slot, either from a preselected id or by
// prompting over the selectable remainder of the roster.
func fillSlot(ctx *Context, sel *matchsession.Selection, slot matchsession.Slot, roster []scoreboard.Team, preselect int) error {
	if preselect != 0 {
		for _, t := range roster {
			if t.ID == preselect {
				return sel.Select(slot, t)
			}
		}
		return fmt.Errorf("no team with id %d", preselect)
	}

	options := sel.Selectable(slot, roster)
	names := make([]string, len(options))
	byName := make(map[string]scoreboard.Team, len(options))
	for i, t := range options {
		label := t.String()
		names[i] = label
		byName[label] = t
	}

	var answer string
	q := &survey.Select{
		Message: fmt.Sprintf("Select Team %s:", slot),
		Options: names,
	}
	if err := survey.AskOne(q, &answer, survey.WithValidator(survey.Required)); err != nil {
		return err
	}
	return sel.Select(slot, byName[answer])
}
