package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Config struct {
	Port               string
	DatabaseUser       string
	DatabasePassword   string
	DatabaseHost       string
	DatabasePort       string
	DatabaseName       string
	DatabaseSSLMode    string
	SessionKey         []byte
	JwtSigningKey      []byte
	Env                string // either prod or dev, disables https redirect and few other bits
	SentryDSN          string
	AdminEmail         string // receives sponsor inquiry notifications
	NoReplyEmail       string // used for transactional emails
	EmailAPIKey        string // transactional email API key, email sending disabled when empty
	FrontendURL        string // origin allowed by CORS, also the OAuth success redirect target
	SiteName           string
	SiteHost           string
	URLProtocol        string
	GeminiAPIKey       string // generative AI upstream API key, env-sourced only
	GeminiAPIURL       string
	GoogleClientID     string
	GoogleClientSecret string
	TelegramAPIToken   string // optional, blog announcements disabled when empty
	TelegramChannelID  int64
	FetchLinkMetadata  bool // best-effort instagram page title scrape on link create
}

func LoadConfig() (Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		return Config{}, fmt.Errorf("PORT cannot be empty")
	}
	databaseUser := os.Getenv("DATABASE_USER")
	if databaseUser == "" {
		return Config{}, fmt.Errorf("DATABASE_USER cannot be empty")
	}
	databasePassword := os.Getenv("DATABASE_PASSWORD")
	if databasePassword == "" {
		return Config{}, fmt.Errorf("DATABASE_PASSWORD cannot be empty")
	}
	databaseHost := os.Getenv("DATABASE_HOST")
	if databaseHost == "" {
		return Config{}, fmt.Errorf("DATABASE_HOST cannot be empty")
	}
	databasePort := os.Getenv("DATABASE_PORT")
	if databasePort == "" {
		return Config{}, fmt.Errorf("DATABASE_PORT cannot be empty")
	}
	databaseName := os.Getenv("DATABASE_NAME")
	if databaseName == "" {
		return Config{}, fmt.Errorf("DATABASE_NAME cannot be empty")
	}
	databaseSSLMode := os.Getenv("DATABASE_SSL_MODE")
	if databaseSSLMode == "" {
		return Config{}, fmt.Errorf("DATABASE_SSL_MODE cannot be empty")
	}
	env := strings.ToLower(os.Getenv("ENV"))
	if env == "" {
		return Config{}, fmt.Errorf("ENV cannot be empty")
	}
	sessionKeyString := os.Getenv("SESSION_KEY")
	if sessionKeyString == "" {
		return Config{}, fmt.Errorf("SESSION_KEY cannot be empty")
	}
	sessionKeyBytes, err := base64.StdEncoding.DecodeString(sessionKeyString)
	if err != nil {
		return Config{}, errors.Wrapf(err, "unable to decode session key to bytes")
	}
	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		return Config{}, fmt.Errorf("JWT_SIGNING_KEY cannot be empty")
	}
	jwtSigningKeyBytes, err := base64.StdEncoding.DecodeString(jwtSigningKey)
	if err != nil {
		return Config{}, errors.Wrapf(err, "unable to decode jwt signing key to bytes")
	}
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		return Config{}, fmt.Errorf("ADMIN_EMAIL cannot be empty")
	}
	noReplyEmail := os.Getenv("NO_REPLY_EMAIL")
	if noReplyEmail == "" {
		return Config{}, fmt.Errorf("NO_REPLY_EMAIL cannot be empty")
	}
	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		return Config{}, fmt.Errorf("FRONTEND_URL cannot be empty")
	}
	siteName := os.Getenv("SITE_NAME")
	if siteName == "" {
		return Config{}, fmt.Errorf("SITE_NAME cannot be empty")
	}
	siteHost := os.Getenv("SITE_HOST")
	if siteHost == "" {
		return Config{}, fmt.Errorf("SITE_HOST cannot be empty")
	}
	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return Config{}, fmt.Errorf("GEMINI_API_KEY cannot be empty")
	}
	geminiAPIURL := os.Getenv("GEMINI_API_URL")
	if geminiAPIURL == "" {
		geminiAPIURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"
	}
	googleClientID := os.Getenv("GOOGLE_CLIENT_ID")
	if googleClientID == "" {
		return Config{}, fmt.Errorf("GOOGLE_CLIENT_ID cannot be empty")
	}
	googleClientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	if googleClientSecret == "" {
		return Config{}, fmt.Errorf("GOOGLE_CLIENT_SECRET cannot be empty")
	}
	sentryDSN := os.Getenv("SENTRY_DSN")
	emailAPIKey := os.Getenv("EMAIL_API_KEY")
	telegramAPIToken := os.Getenv("TELEGRAM_API_TOKEN")
	var telegramChannelID int64
	if telegramAPIToken != "" {
		telegramChannelIDStr := os.Getenv("TELEGRAM_CHANNEL_ID")
		if telegramChannelIDStr == "" {
			return Config{}, fmt.Errorf("TELEGRAM_CHANNEL_ID cannot be empty when TELEGRAM_API_TOKEN is set")
		}
		channelID, err := strconv.Atoi(telegramChannelIDStr)
		if err != nil {
			return Config{}, errors.Wrap(err, "unable to convert telegram channel id to int")
		}
		telegramChannelID = int64(channelID)
	}
	urlProtocol := "http://"
	if !strings.EqualFold(env, "dev") {
		urlProtocol = "https://"
	}

	return Config{
		Port:               port,
		DatabaseUser:       databaseUser,
		DatabasePassword:   databasePassword,
		DatabaseHost:       databaseHost,
		DatabasePort:       databasePort,
		DatabaseName:       databaseName,
		DatabaseSSLMode:    databaseSSLMode,
		SessionKey:         sessionKeyBytes,
		JwtSigningKey:      jwtSigningKeyBytes,
		Env:                env,
		SentryDSN:          sentryDSN,
		AdminEmail:         adminEmail,
		NoReplyEmail:       noReplyEmail,
		EmailAPIKey:        emailAPIKey,
		FrontendURL:        frontendURL,
		SiteName:           siteName,
		SiteHost:           siteHost,
		URLProtocol:        urlProtocol,
		GeminiAPIKey:       geminiAPIKey,
		GeminiAPIURL:       geminiAPIURL,
		GoogleClientID:     googleClientID,
		GoogleClientSecret: googleClientSecret,
		TelegramAPIToken:   telegramAPIToken,
		TelegramChannelID:  telegramChannelID,
		FetchLinkMetadata:  strings.EqualFold(os.Getenv("FETCH_LINK_METADATA"), "true"),
	}, nil
}
