package matchday

import (
	"fmt"
	"net/url"

	"github.com/AlecAivazis/survey/v2"
	"github.com/atotto/clipboard"
	"github.com/pkg/browser"

	"github.com/sportsynz/scorectl/internal/matchsession"
)

// Channel is one of the supported share surfaces.
type Channel string

const (
	ChannelWhatsApp  Channel = "whatsapp"
	ChannelSMS       Channel = "sms"
	ChannelClipboard Channel = "copy"
)

var channelLabels = map[string]Channel{
	"Share via WhatsApp":  ChannelWhatsApp,
	"Share via SMS":       ChannelSMS,
	"Copy match link":     ChannelClipboard,
}

// ShareURL builds the deep link that hands the message to a messaging app.
// Clipboard has no URL and reports ok=false.
func ShareURL(ch Channel, message string) (string, bool) {
	switch ch {
	case ChannelWhatsApp:
		return "whatsapp://send?text=" + url.QueryEscape(message), true
	case ChannelSMS:
		return "sms:?body=" + url.QueryEscape(message), true
	default:
		return "", false
	}
}

// ShareMatch formats the session's share message and dispatches it through
// the chosen channel, prompting when none was chosen up front. Dispatch
// failure means the target app is not available; it is reported to the
// caller, never fatal, and mutates no session state.
func ShareMatch(ctx *Context, s *matchsession.Session) error {
	ch := ctx.Channel
	if ch == "" {
		labels := make([]string, 0, len(channelLabels))
		for label := range channelLabels {
			labels = append(labels, label)
		}
		var answer string
		q := &survey.Select{Message: "Share match:", Options: labels}
		if err := survey.AskOne(q, &answer); err != nil {
			return nil // cancelled
		}
		ch = channelLabels[answer]
	}
	return dispatch(ctx, ch, s.ShareText())
}

func dispatch(ctx *Context, ch Channel, message string) error {
	switch ch {
	case ChannelClipboard:
		if err := clipboard.WriteAll(message); err != nil {
			return fmt.Errorf("clipboard unavailable: %w", err)
		}
		fmt.Fprintln(ctx.Out, "Match link copied to clipboard")
		return nil
	case ChannelWhatsApp, ChannelSMS:
		u, _ := ShareURL(ch, message)
		if err := browser.OpenURL(u); err != nil {
			return fmt.Errorf("%s not installed: %w", ch, err)
		}
		return nil
	default:
		return fmt.Errorf("unknown share channel %q", ch)
	}
}
