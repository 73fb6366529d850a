package main

import (
	"context"
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/sportsynz/scorectl/internal/tools/authflow"
)

type loginCmd struct {
	Email    string `arg:"" help:"Gmail address of the account." required:""`
	Password string `help:"Account password. Prompted for when omitted."`
	Remember bool   `help:"Skip the login prompt on later runs." default:"true" negatable:""`
}

func (a *loginCmd) Run(g *globalCmd) error {
	ctx := authflow.NewContext(context.Background())
	ctx.Client = g.client()
	var err error
	ctx.Store, err = g.store()
	if err != nil {
		return err
	}
	ctx.Email = a.Email
	ctx.Password = a.Password
	ctx.RememberMe = a.Remember
	if ctx.Password == "" {
		q := &survey.Password{Message: "Password:"}
		if err := survey.AskOne(q, &ctx.Password, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}
	if err := authflow.Login(ctx); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", a.Email)
	return nil
}

type registerCmd struct {
	Email    string `arg:"" help:"Gmail address to register." required:""`
	FullName string `help:"Full name of the account holder." required:""`
	Phone    string `help:"Phone number." required:""`
	Password string `help:"Account password. Prompted for when omitted."`
}

func (a *registerCmd) Run(g *globalCmd) error {
	ctx := authflow.NewContext(context.Background())
	ctx.Client = g.client()
	var err error
	ctx.Store, err = g.store()
	if err != nil {
		return err
	}
	ctx.Email = a.Email
	ctx.FullName = a.FullName
	ctx.Phone = a.Phone
	ctx.Password = a.Password
	if ctx.Password == "" {
		q := &survey.Password{Message: "Choose a password:"}
		if err := survey.AskOne(q, &ctx.Password, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}
	user, err := authflow.Register(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Account created for %s. Log in with 'scoretool login %s'.\n", user.Email, user.Email)
	return nil
}

type logoutCmd struct{}

func (a *logoutCmd) Run(g *globalCmd) error {
	ctx := authflow.NewContext(context.Background())
	ctx.Client = g.client()
	var err error
	ctx.Store, err = g.store()
	if err != nil {
		return err
	}
	if err := authflow.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

type whoamiCmd struct{}

func (a *whoamiCmd) Run(g *globalCmd) error {
	store, err := g.store()
	if err != nil {
		return err
	}
	user, err := store.User()
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s>\n", user.FullName, user.Email)
	return nil
}
