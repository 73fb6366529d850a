package editteams

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/rs/zerolog/log"
)

// PickImage prompts for a logo image path. An empty answer, a cancelled
// prompt, or an unreadable file all mean "no change" — none of them is an
// error.
func PickImage() string {
	var path string
	q := &survey.Input{
		Message: "Logo image path (leave blank to keep current):",
		Suggest: func(toComplete string) []string {
			matches, _ := filepath.Glob(toComplete + "*")
			return matches
		},
	}
	if err := survey.AskOne(q, &path); err != nil {
		return ""
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		log.Warn().Str("path", path).Err(err).Msg("cannot read image, keeping current logo")
		return ""
	}
	return path
}

func stemOf(path string) string {
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) {
		return "cover-art.jpg"
	}
	return name
}
