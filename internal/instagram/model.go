package instagram

import "regexp"

type Link struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

type LinkRq struct {
	URL string `json:"url"`
}

// urlRe accepts instagram.com post, reel, tv, story and highlight paths only
var urlRe = regexp.MustCompile(`^https?://(www\.)?instagram\.com/(p|reel|tv|stories|highlights)/[A-Za-z0-9_-]+/?.*$`)

func ValidURL(url string) bool {
	return urlRe.MatchString(url)
}
