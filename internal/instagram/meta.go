package instagram

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

var metaClient = &http.Client{Timeout: 5 * time.Second}

// FetchPageTitle scrapes the og:title (falling back to <title>) of a public
// instagram page. Best-effort: callers treat any error as "no title".
func FetchPageTitle(url string) (string, error) {
	res, err := metaClient.Get(url)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", errors.New("unexpected status fetching instagram page")
	}
	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return "", err
	}
	if title, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && title != "" {
		return strings.TrimSpace(title), nil
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return "", errors.New("no title found")
	}
	return title, nil
}
