package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sportsynz/scorectl/internal/scoreboard"
	"github.com/sportsynz/scorectl/internal/session"
)

const defaultAPIURL = "https://api.scoreboard.xyzdemowebsites.com"

type globalCmd struct {
	APIURL    string `help:"Scoreboard API base URL." env:"SPORTSYNZ_API_URL" default:"${default_api_url}"`
	StateFile string `help:"Path of the local session file." env:"SPORTSYNZ_STATE_FILE"`
	Verbose   bool   `help:"Enable debug logging." short:"v"`
}

func (g *globalCmd) client() *scoreboard.Client {
	return scoreboard.NewClient(scoreboard.Config{BaseURL: g.APIURL})
}

func (g *globalCmd) store() (*session.Store, error) {
	path := g.StateFile
	if path == "" {
		var err error
		path, err = session.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("cannot determine session file location: %w", err)
		}
	}
	return session.NewStore(path), nil
}

var CLI struct {
	globalCmd

	Login    loginCmd    `cmd:"" help:"Log in and store a session."`
	Register registerCmd `cmd:"" help:"Create an account."`
	Logout   logoutCmd   `cmd:"" help:"Discard the stored session."`
	Whoami   whoamiCmd   `cmd:"" help:"Show the logged-in user."`

	Teams struct {
		Add  addTeamCmd  `cmd:"" help:"Create a team."`
		Edit editTeamCmd `cmd:"" help:"Edit a team."`
		Rm   rmTeamCmd   `cmd:"" help:"Delete a team."`
		Ls   lsTeamsCmd  `cmd:"" help:"List all teams."`
	} `cmd:""`

	Match struct {
		Start   startMatchCmd `cmd:"" help:"Start a match and run the live scoreboard."`
		View    viewMatchCmd  `cmd:"" help:"Look a match up by its share code."`
		History historyCmd    `cmd:"" help:"List completed matches."`
	} `cmd:""`
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	ctx := kong.Parse(&CLI,
		kong.Name("scoretool"),
		kong.Description("Manage teams and score live matches from the command line."),
		kong.Vars{"default_api_url": defaultAPIURL},
	)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if CLI.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	err := ctx.Run(&CLI.globalCmd)
	ctx.FatalIfErrorf(err)
}
