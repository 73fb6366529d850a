package main

import (
	"context"

	"github.com/sportsynz/scorectl/internal/tools/matchday"
)

type startMatchCmd struct {
	TeamA int    `help:"ID of the home team. Prompted for when omitted."`
	TeamB int    `help:"ID of the away team. Prompted for when omitted."`
	Share string `help:"Preselect a share channel (whatsapp, sms, copy)." enum:"whatsapp,sms,copy,"`
	Force bool   `help:"End the match without asking for confirmation."`
}

func (a *startMatchCmd) Run(g *globalCmd) error {
	ctx := matchday.NewContext(context.Background())
	ctx.Client = g.client()
	var err error
	ctx.Store, err = g.store()
	if err != nil {
		return err
	}
	ctx.TeamAID = a.TeamA
	ctx.TeamBID = a.TeamB
	ctx.Channel = matchday.Channel(a.Share)
	ctx.Force = a.Force

	s, err := matchday.StartMatch(ctx)
	if err != nil {
		return err
	}
	return matchday.RunScoreboard(ctx, s)
}

type viewMatchCmd struct {
	Code string `arg:"" help:"Share code of the match." required:""`
}

func (a *viewMatchCmd) Run(g *globalCmd) error {
	ctx := matchday.NewContext(context.Background())
	ctx.Client = g.client()
	var err error
	ctx.Store, err = g.store()
	if err != nil {
		return err
	}
	ctx.Code = a.Code
	return matchday.ViewMatch(ctx)
}

type historyCmd struct {
	Export string `help:"Write the history to an Excel workbook at this path instead of printing it."`
}

func (a *historyCmd) Run(g *globalCmd) error {
	ctx := matchday.NewContext(context.Background())
	ctx.Client = g.client()
	var err error
	ctx.Store, err = g.store()
	if err != nil {
		return err
	}
	ctx.Export = a.Export
	return matchday.History(ctx)
}
