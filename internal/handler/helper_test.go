package handler

import (
	"github.com/courtside/pickleball-platform/internal/config"
	"github.com/courtside/pickleball-platform/internal/email"
	"github.com/courtside/pickleball-platform/internal/server"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/lib/pq"
)

// newTestServer builds a Server with a zero-config stack: email sending,
// telegram announcements and link metadata scraping are all disabled, so
// handlers exercise no network side effects.
func newTestServer(router *mux.Router) server.Server {
	cfg := config.Config{
		Env:           "dev",
		SiteName:      "Courtside",
		SiteHost:      "courtside.test",
		URLProtocol:   "http://",
		FrontendURL:   "http://localhost:8080",
		SessionKey:    []byte("0123456789abcdef0123456789abcdef"),
		JwtSigningKey: []byte("0123456789abcdef0123456789abcdef"),
	}
	return server.NewServer(cfg, nil, router, email.Client{}, sessions.NewCookieStore(cfg.SessionKey))
}

// uniqueViolation mimics what lib/pq returns when a unique index rejects a row
func uniqueViolation() error {
	return &pq.Error{Code: "23505"}
}
