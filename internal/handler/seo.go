package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/courtside/pickleball-platform/internal/render"
	"github.com/courtside/pickleball-platform/internal/server"
	"github.com/gorilla/feeds"
	"github.com/snabb/sitemap"
)

func siteURL(svr server.Server) string {
	return svr.GetConfig().URLProtocol + svr.GetConfig().SiteHost
}

func ServeRSSFeed(svr server.Server, blogRepo blogRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := blogRepo.All()
		if err != nil {
			svr.Log(err, "unable to retrieve blog posts for RSS feed")
			svr.XML(w, http.StatusInternalServerError, []byte{})
			return
		}
		now := time.Now()
		feed := &feeds.Feed{
			Title:       fmt.Sprintf("%s Blog", svr.GetConfig().SiteName),
			Link:        &feeds.Link{Href: siteURL(svr)},
			Description: fmt.Sprintf("%s community blog", svr.GetConfig().SiteName),
			Author:      &feeds.Author{Name: svr.GetConfig().SiteName, Email: svr.GetConfig().NoReplyEmail},
			Created:     now,
		}
		for _, bp := range posts {
			feed.Items = append(feed.Items, &feeds.Item{
				Title:       bp.Heading,
				Link:        &feeds.Link{Href: fmt.Sprintf("%s/blog/%s", siteURL(svr), bp.Slug)},
				Description: render.MarkdownToHTML(bp.Description),
				Author:      &feeds.Author{Name: bp.AuthorName},
				Created:     bp.CreatedAt,
			})
		}
		rssFeed, err := feed.ToRss()
		if err != nil {
			svr.Log(err, "unable to convert rss feed to xml")
			svr.XML(w, http.StatusInternalServerError, []byte{})
			return
		}
		svr.XML(w, http.StatusOK, []byte(rssFeed))
	}
}

func SitemapHandler(svr server.Server, blogRepo blogRepository, tournamentRepo tournamentRepository, clubRepo clubRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sitemapFile := sitemap.New()
		now := time.Now()
		for _, loc := range []string{"", "/blogs", "/tournaments/all", "/clublist/all", "/court/all", "/athletes"} {
			sitemapFile.Add(&sitemap.URL{
				Loc:        siteURL(svr) + loc,
				LastMod:    &now,
				ChangeFreq: sitemap.Daily,
			})
		}
		posts, err := blogRepo.All()
		if err != nil {
			svr.Log(err, "unable to retrieve blog posts for sitemap")
			svr.TEXT(w, http.StatusInternalServerError, "unable to fetch sitemap")
			return
		}
		for _, bp := range posts {
			lastMod := bp.CreatedAt
			sitemapFile.Add(&sitemap.URL{
				Loc:     fmt.Sprintf("%s/blog/%s", siteURL(svr), bp.Slug),
				LastMod: &lastMod,
			})
		}
		tournaments, err := tournamentRepo.ByStatus("approved")
		if err != nil {
			svr.Log(err, "unable to retrieve tournaments for sitemap")
			svr.TEXT(w, http.StatusInternalServerError, "unable to fetch sitemap")
			return
		}
		for _, t := range tournaments {
			lastMod := t.CreatedAt
			sitemapFile.Add(&sitemap.URL{
				Loc:     fmt.Sprintf("%s/tournaments/%s", siteURL(svr), t.ID),
				LastMod: &lastMod,
			})
		}
		clubs, err := clubRepo.Filter("", "approved")
		if err != nil {
			svr.Log(err, "unable to retrieve clubs for sitemap")
			svr.TEXT(w, http.StatusInternalServerError, "unable to fetch sitemap")
			return
		}
		for _, c := range clubs {
			lastMod := c.CreatedAt
			sitemapFile.Add(&sitemap.URL{
				Loc:     fmt.Sprintf("%s/clublist/%s", siteURL(svr), c.ID),
				LastMod: &lastMod,
			})
		}
		buf := new(bytes.Buffer)
		if _, err := sitemapFile.WriteTo(buf); err != nil {
			svr.Log(err, "sitemapFile.WriteTo")
			svr.TEXT(w, http.StatusInternalServerError, "unable to save sitemap file")
			return
		}
		svr.XML(w, http.StatusOK, buf.Bytes())
	}
}
