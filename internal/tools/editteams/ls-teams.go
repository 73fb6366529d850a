package editteams

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
)

// LsTeams renders the roster newest-first. A fetch failure shows as an empty
// roster rather than an error: the screen stays usable.
func LsTeams(ctx *Context) error {
	teams := ctx.Client.GetTeams(ctx)
	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].CreatedAt.After(teams[j].CreatedAt)
	})

	if len(teams) == 0 {
		fmt.Fprintln(ctx.Out, "No teams yet. Create one with 'scoretool teams add'.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(ctx.Out)
	t.AppendHeader(table.Row{"ID", "Name", "Country", "Logo"})
	for _, team := range teams {
		logo := team.Logo.DisplayURL(ctx.Client.BaseURL())
		if logo == "" {
			logo = "-"
		}
		t.AppendRow(table.Row{team.ID, team.Name, team.Country, logo})
	}
	t.Render()
	return nil
}
