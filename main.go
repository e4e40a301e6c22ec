package main

import (
	"log"
	"net/http"

	"github.com/courtside/pickleball-platform/internal/admin"
	"github.com/courtside/pickleball-platform/internal/ai"
	"github.com/courtside/pickleball-platform/internal/announce"
	"github.com/courtside/pickleball-platform/internal/athlete"
	"github.com/courtside/pickleball-platform/internal/blog"
	"github.com/courtside/pickleball-platform/internal/club"
	"github.com/courtside/pickleball-platform/internal/config"
	"github.com/courtside/pickleball-platform/internal/court"
	"github.com/courtside/pickleball-platform/internal/database"
	"github.com/courtside/pickleball-platform/internal/email"
	"github.com/courtside/pickleball-platform/internal/googleauth"
	"github.com/courtside/pickleball-platform/internal/handler"
	"github.com/courtside/pickleball-platform/internal/inquiry"
	"github.com/courtside/pickleball-platform/internal/instagram"
	"github.com/courtside/pickleball-platform/internal/meta"
	"github.com/courtside/pickleball-platform/internal/newsletter"
	"github.com/courtside/pickleball-platform/internal/server"
	"github.com/courtside/pickleball-platform/internal/tournament"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("unable to load config: %+v", err)
	}
	conn, err := database.GetDbConn(cfg.DatabaseUser, cfg.DatabasePassword, cfg.DatabaseHost, cfg.DatabasePort, cfg.DatabaseName, cfg.DatabaseSSLMode)
	if err != nil {
		log.Fatalf("unable to connect to postgres: %v", err)
	}
	defer database.CloseDbConn(conn)
	emailClient, err := email.NewClient(cfg.EmailAPIKey, cfg.NoReplyEmail, cfg.AdminEmail, cfg.SiteName)
	if err != nil {
		log.Fatalf("unable to initialise email client: %v", err)
	}
	sessionStore := sessions.NewCookieStore(cfg.SessionKey)
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		Secure:   cfg.Env != "dev",
		SameSite: http.SameSiteLaxMode,
	}

	svr := server.NewServer(
		cfg,
		conn,
		mux.NewRouter(),
		emailClient,
		sessionStore,
	)

	blogRepo := blog.NewRepository(conn)
	linkRepo := instagram.NewRepository(conn)
	adminRepo := admin.NewRepository(conn)
	subscriberRepo := newsletter.NewRepository(conn)
	inquiryRepo := inquiry.NewRepository(conn)
	tournamentRepo := tournament.NewRepository(conn)
	clubRepo := club.NewRepository(conn)
	courtRepo := court.NewRepository(conn)
	athleteRepo := athlete.NewRepository(conn)
	metaRepo := meta.NewRepository(conn)

	announcer := announce.NewAnnouncer(cfg.TelegramAPIToken, cfg.TelegramChannelID, cfg.URLProtocol+cfg.SiteHost)
	aiClient := ai.NewClient(cfg.GeminiAPIKey, cfg.GeminiAPIURL)
	oauth := googleauth.NewFromCreds(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.URLProtocol, cfg.SiteHost)

	svr.RegisterRoute("/sitemap.xml", handler.SitemapHandler(svr, blogRepo, tournamentRepo, clubRepo), []string{"GET"})

	// blog
	svr.RegisterRoute("/blogs/add", handler.CreateBlogPostHandler(svr, blogRepo, announcer, metaRepo), []string{"POST"})
	svr.RegisterRoute("/blogs", handler.ListBlogPostsHandler(svr, blogRepo), []string{"GET"})
	svr.RegisterRoute("/blogs/feed", handler.ServeRSSFeed(svr, blogRepo), []string{"GET"})
	svr.RegisterRoute("/blogs/update/{id}", handler.UpdateBlogPostHandler(svr, blogRepo), []string{"PUT"})
	svr.RegisterRoute("/blogs/delete/{id}", handler.DeleteBlogPostHandler(svr, blogRepo), []string{"DELETE"})
	svr.RegisterRoute("/blogs/{id}", handler.GetBlogPostHandler(svr, blogRepo), []string{"GET"})

	// instagram links
	svr.RegisterRoute("/instagram", handler.CreateInstagramLinkHandler(svr, linkRepo), []string{"POST"})
	svr.RegisterRoute("/instagram", handler.ListInstagramLinksHandler(svr, linkRepo), []string{"GET"})
	svr.RegisterRoute("/instagram/{id}", handler.UpdateInstagramLinkHandler(svr, linkRepo), []string{"PUT"})
	svr.RegisterRoute("/instagram/{id}", handler.DeleteInstagramLinkHandler(svr, linkRepo), []string{"DELETE"})

	// admin accounts
	svr.RegisterRoute("/admin/signup", handler.AdminSignupHandler(svr, adminRepo), []string{"POST"})
	svr.RegisterRoute("/admin/login", handler.AdminLoginHandler(svr, adminRepo), []string{"POST"})

	// sponsor inquiries
	svr.RegisterRoute("/inquiry", handler.CreateInquiryHandler(svr, inquiryRepo), []string{"POST"})
	svr.RegisterRoute("/inquiry", handler.ListInquiriesHandler(svr, inquiryRepo), []string{"GET"})
	svr.RegisterRoute("/inquiry/{id}", handler.GetInquiryHandler(svr, inquiryRepo), []string{"GET"})
	svr.RegisterRoute("/inquiry/{id}", handler.UpdateInquiryHandler(svr, inquiryRepo), []string{"PUT"})
	svr.RegisterRoute("/inquiry/{id}", handler.DeleteInquiryHandler(svr, inquiryRepo), []string{"DELETE"})

	// newsletter
	svr.RegisterRoute("/newsletter/subscribe", handler.SubscribeNewsletterHandler(svr, subscriberRepo), []string{"POST"})
	svr.RegisterRoute("/newsletter/subscribers", handler.ListNewsletterSubscribersHandler(svr, subscriberRepo), []string{"GET"})
	svr.RegisterRoute("/newsletter/unsubscribe/{email}", handler.UnsubscribeNewsletterHandler(svr, subscriberRepo), []string{"DELETE"})

	// auth
	svr.RegisterRoute("/auth/login/success", handler.LoginSuccessHandler(svr), []string{"GET"})
	svr.RegisterRoute("/auth/login/failed", handler.LoginFailedHandler(svr), []string{"GET"})
	svr.RegisterRoute("/auth/google", handler.GoogleSignOnHandler(svr, oauth), []string{"GET"})
	svr.RegisterRoute("/auth/google/callback", handler.GoogleCallbackHandler(svr, oauth), []string{"GET"})
	svr.RegisterRoute("/auth/logout", handler.LogoutHandler(svr), []string{"GET"})

	// ai chat proxy
	svr.RegisterRoute("/ai/chat", handler.AIChatHandler(svr, aiClient), []string{"POST"})

	// tournaments
	svr.RegisterRoute("/tournaments/add", handler.CreateTournamentHandler(svr, tournamentRepo), []string{"POST"})
	svr.RegisterRoute("/tournaments/all", handler.ListTournamentsHandler(svr, tournamentRepo), []string{"GET"})
	svr.RegisterRoute("/tournaments/pending", handler.ListTournamentsByStatusHandler(svr, tournamentRepo, tournament.StatusPending), []string{"GET"})
	svr.RegisterRoute("/tournaments/approved", handler.ListTournamentsByStatusHandler(svr, tournamentRepo, tournament.StatusApproved), []string{"GET"})
	svr.RegisterRoute("/tournaments/status/{id}", handler.UpdateTournamentStatusHandler(svr, tournamentRepo), []string{"PATCH"})
	svr.RegisterRoute("/tournaments/update/{id}", handler.UpdateTournamentHandler(svr, tournamentRepo), []string{"PUT"})
	svr.RegisterRoute("/tournaments/delete/{id}", handler.DeleteTournamentHandler(svr, tournamentRepo), []string{"DELETE"})
	svr.RegisterRoute("/tournaments/{id}", handler.GetTournamentHandler(svr, tournamentRepo), []string{"GET"})

	// clubs
	svr.RegisterRoute("/clublist/add", handler.CreateClubHandler(svr, clubRepo), []string{"POST"})
	svr.RegisterRoute("/clublist/all", handler.ListClubsHandler(svr, clubRepo), []string{"GET"})
	svr.RegisterRoute("/clublist/filter", handler.FilterClubsHandler(svr, clubRepo), []string{"GET"})
	svr.RegisterRoute("/clublist/status/{id}", handler.UpdateClubStatusHandler(svr, clubRepo), []string{"PATCH"})
	svr.RegisterRoute("/clublist/update/{id}", handler.UpdateClubHandler(svr, clubRepo), []string{"PUT"})
	svr.RegisterRoute("/clublist/delete/{id}", handler.DeleteClubHandler(svr, clubRepo), []string{"DELETE"})
	svr.RegisterRoute("/clublist/{id}", handler.GetClubHandler(svr, clubRepo), []string{"GET"})

	// courts
	svr.RegisterRoute("/court/add", handler.CreateCourtHandler(svr, courtRepo), []string{"POST"})
	svr.RegisterRoute("/court/all", handler.ListCourtsHandler(svr, courtRepo), []string{"GET"})
	svr.RegisterRoute("/court/filter", handler.FilterCourtsHandler(svr, courtRepo), []string{"GET"})
	svr.RegisterRoute("/court/update/{id}", handler.UpdateCourtHandler(svr, courtRepo), []string{"PUT"})
	svr.RegisterRoute("/court/delete/{id}", handler.DeleteCourtHandler(svr, courtRepo), []string{"DELETE"})
	svr.RegisterRoute("/court/{id}", handler.GetCourtHandler(svr, courtRepo), []string{"GET"})

	// athletes
	svr.RegisterRoute("/athletes", handler.CreateAthleteHandler(svr, athleteRepo), []string{"POST"})
	svr.RegisterRoute("/athletes", handler.ListAthletesHandler(svr, athleteRepo), []string{"GET"})
	svr.RegisterRoute("/athletes/stats", handler.AthleteStatsHandler(svr, athleteRepo), []string{"GET"})
	svr.RegisterRoute("/athletes/{id}", handler.GetAthleteHandler(svr, athleteRepo), []string{"GET"})
	svr.RegisterRoute("/athletes/{id}", handler.UpdateAthleteHandler(svr, athleteRepo), []string{"PUT"})
	svr.RegisterRoute("/athletes/{id}", handler.DeleteAthleteHandler(svr, athleteRepo), []string{"DELETE"})

	log.Fatal(svr.Run())
}
