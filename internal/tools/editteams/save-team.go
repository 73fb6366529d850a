package editteams

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/sportsynz/scorectl/internal/matchsession"
	"github.com/sportsynz/scorectl/internal/scoreboard"
	"github.com/sportsynz/scorectl/internal/tools/authflow"
)

// SaveTeam creates or updates a team. The textual fields are validated before
// any network call. When a working image is present and differs from the last
// persisted logo URL it is uploaded first and its asset id attached to the
// create/update; an unchanged image is never re-uploaded. Upload failure
// aborts the whole save: the team call is not attempted.
func SaveTeam(ctx *Context) (*scoreboard.Team, error) {
	if errs := matchsession.ValidateTeamForm(ctx.Name, ctx.Country); !errs.OK() {
		return nil, &authflow.ValidationError{Fields: errs}
	}

	token, err := ctx.Store.Token()
	if err != nil {
		return nil, fmt.Errorf("SaveTeam: %w", err)
	}

	req := scoreboard.CreateTeamRequest{Name: ctx.Name, Country: ctx.Country}

	if logoChanged(ctx) {
		logoID, err := uploadLogo(ctx, token)
		if err != nil {
			return nil, fmt.Errorf("SaveTeam: %w", err)
		}
		req.LogoID = logoID
	} else if ctx.ImagePath != "" {
		log.Debug().Str("image", ctx.ImagePath).Msg("logo unchanged, skipping upload")
	}

	if ctx.TeamID == 0 {
		team, err := ctx.Client.CreateTeam(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("SaveTeam: %w", err)
		}
		log.Info().Str("team", team.Name).Msg("team created")
		return team, nil
	}

	team, err := ctx.Client.UpdateTeam(ctx, ctx.TeamID, req, token)
	if err != nil {
		return nil, fmt.Errorf("SaveTeam: %w", err)
	}
	log.Info().Str("team", team.Name).Msg("team updated")
	return team, nil
}

// logoChanged applies the change-detection rule: a working image counts as
// new only when it differs from the last known persisted URL.
func logoChanged(ctx *Context) bool {
	return ctx.ImagePath != "" && ctx.ImagePath != ctx.PersistedLogoURL
}

func uploadLogo(ctx *Context, token string) (int, error) {
	f, err := os.Open(ctx.ImagePath)
	if err != nil {
		return 0, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	if ctx.ShowProgress {
		if info, err := f.Stat(); err == nil {
			bar := progressbar.DefaultBytes(info.Size(), "uploading logo")
			reader = io.TeeReader(f, bar)
		}
	}

	logos, err := ctx.Client.UploadLogo(ctx, stemOf(ctx.ImagePath), reader, token)
	if err != nil {
		return 0, err
	}
	return logos[0].ID, nil
}
