package announce

import (
	"context"
	"fmt"

	"github.com/bot-api/telegram"

	"github.com/courtside/pickleball-platform/internal/blog"
)

// Announcer posts new blog entries to the site's Telegram channel.
// A zero API token disables it, so local and test runs skip the network.
type Announcer struct {
	api       *telegram.API
	channelID int64
	siteURL   string
	enabled   bool
}

func NewAnnouncer(apiToken string, channelID int64, siteURL string) Announcer {
	a := Announcer{
		channelID: channelID,
		siteURL:   siteURL,
		enabled:   apiToken != "",
	}
	if a.enabled {
		a.api = telegram.New(apiToken)
	}
	return a
}

func (a Announcer) Enabled() bool {
	return a.enabled
}

func (a Announcer) AnnounceBlogPost(ctx context.Context, b blog.BlogPost) error {
	if !a.enabled {
		return nil
	}
	msg := fmt.Sprintf("%s by %s\n\n#pickleball\n\n%s/blog/%s", b.Heading, b.AuthorName, a.siteURL, b.Slug)
	_, err := a.api.SendMessage(ctx, telegram.NewMessage(a.channelID, msg))
	return err
}
