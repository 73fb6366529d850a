package main

import (
	"context"
	"fmt"

	"github.com/sportsynz/scorectl/internal/tools/editteams"
)

type addTeamCmd struct {
	Name    string `arg:"" help:"Team name." required:""`
	Country string `help:"Country the team plays for." required:""`
	Logo    string `help:"Path of a logo image to upload. Prompted for when omitted." type:"existingfile"`
	NoLogo  bool   `help:"Create the team without a logo."`
}

func (a *addTeamCmd) Run(g *globalCmd) error {
	ctx := editteams.NewContext(context.Background())
	ctx.Client = g.client()
	var err error
	ctx.Store, err = g.store()
	if err != nil {
		return err
	}
	ctx.Name = a.Name
	ctx.Country = a.Country
	ctx.ImagePath = a.Logo
	ctx.ShowProgress = true
	if ctx.ImagePath == "" && !a.NoLogo {
		ctx.ImagePath = editteams.PickImage()
	}
	team, err := editteams.SaveTeam(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Created team %s (id %d)\n", team.Name, team.ID)
	return nil
}

type editTeamCmd struct {
	ID      int    `arg:"" help:"ID of the team to edit." required:""`
	Name    string `help:"New team name."`
	Country string `help:"New country."`
	Logo    string `help:"Path of a replacement logo image." type:"existingfile"`
}

func (a *editTeamCmd) Run(g *globalCmd) error {
	ctx := editteams.NewContext(context.Background())
	ctx.Client = g.client()
	var err error
	ctx.Store, err = g.store()
	if err != nil {
		return err
	}
	token, err := ctx.Store.Token()
	if err != nil {
		return err
	}

	// Seed the form from the current record so omitted flags keep their
	// stored values and an unchanged logo path skips the re-upload.
	current := ctx.Client.GetTeamDetails(ctx, a.ID, token)
	if current == nil {
		return fmt.Errorf("no team with id %d", a.ID)
	}
	ctx.TeamID = current.ID
	ctx.Name = current.Name
	ctx.Country = current.Country
	if current.Logo != nil {
		ctx.PersistedLogoURL = current.Logo.URL
	}

	if a.Name != "" {
		ctx.Name = a.Name
	}
	if a.Country != "" {
		ctx.Country = a.Country
	}
	ctx.ImagePath = a.Logo
	ctx.ShowProgress = true

	team, err := editteams.SaveTeam(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Updated team %s (id %d)\n", team.Name, team.ID)
	return nil
}

type rmTeamCmd struct {
	Force bool `help:"Delete without asking for confirmation."`
	ID    int  `arg:"" help:"ID of the team to delete." required:""`
}

func (a *rmTeamCmd) Run(g *globalCmd) error {
	ctx := editteams.NewContext(context.Background())
	ctx.Client = g.client()
	var err error
	ctx.Store, err = g.store()
	if err != nil {
		return err
	}
	ctx.Force = a.Force
	ctx.TeamID = a.ID

	roster := ctx.Client.GetTeams(ctx)
	remaining, err := editteams.RmTeam(ctx, roster)
	if err != nil {
		return err
	}
	if len(remaining) == len(roster) {
		// Confirmation declined.
		return nil
	}
	fmt.Printf("Deleted team %d\n", a.ID)
	return nil
}

type lsTeamsCmd struct{}

func (a *lsTeamsCmd) Run(g *globalCmd) error {
	ctx := editteams.NewContext(context.Background())
	ctx.Client = g.client()
	var err error
	ctx.Store, err = g.store()
	if err != nil {
		return err
	}
	return editteams.LsTeams(ctx)
}
