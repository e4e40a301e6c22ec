package handler

import (
	"net/http"
	"time"

	"github.com/courtside/pickleball-platform/internal/googleauth"
	"github.com/courtside/pickleball-platform/internal/middleware"
	"github.com/courtside/pickleball-platform/internal/server"
	jwt "github.com/dgrijalva/jwt-go"
	"github.com/segmentio/ksuid"
)

// GoogleSignOnHandler kicks off the OAuth dance, the state nonce lives in the
// session cookie until the callback
func GoogleSignOnHandler(svr server.Server, oauth *googleauth.GoogleOAuth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := svr.SessionStore.Get(r, middleware.SessionName)
		if err != nil {
			svr.Log(err, "unable to get session for google sign on")
			svr.Redirect(w, r, http.StatusTemporaryRedirect, "/auth/login/failed")
			return
		}
		state := ksuid.New().String()
		sess.Values["oauth_state"] = state
		if err := sess.Save(r, w); err != nil {
			svr.Log(err, "unable to save oauth state into session")
			svr.Redirect(w, r, http.StatusTemporaryRedirect, "/auth/login/failed")
			return
		}
		svr.Redirect(w, r, http.StatusTemporaryRedirect, oauth.AuthCodeURL(state))
	}
}

func GoogleCallbackHandler(svr server.Server, oauth *googleauth.GoogleOAuth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := svr.SessionStore.Get(r, middleware.SessionName)
		if err != nil {
			svr.Log(err, "unable to get session on google callback")
			svr.Redirect(w, r, http.StatusTemporaryRedirect, "/auth/login/failed")
			return
		}
		state, ok := sess.Values["oauth_state"].(string)
		if !ok || state == "" || state != r.URL.Query().Get("state") {
			svr.Redirect(w, r, http.StatusTemporaryRedirect, "/auth/login/failed")
			return
		}
		delete(sess.Values, "oauth_state")
		token, err := oauth.Exchange(r.Context(), r.URL.Query().Get("code"))
		if err != nil {
			svr.Log(err, "unable to exchange google oauth code")
			svr.Redirect(w, r, http.StatusTemporaryRedirect, "/auth/login/failed")
			return
		}
		gUser, err := oauth.GetUser(r.Context(), token)
		if err != nil {
			svr.Log(err, "unable to fetch google user info")
			svr.Redirect(w, r, http.StatusTemporaryRedirect, "/auth/login/failed")
			return
		}
		stdClaims := &jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).UTC().Unix(),
			IssuedAt:  time.Now().UTC().Unix(),
			Issuer:    svr.GetConfig().URLProtocol + svr.GetConfig().SiteHost,
		}
		claims := middleware.UserJWT{
			UserID:         gUser.ID,
			Email:          gUser.Email,
			Name:           gUser.Name,
			Picture:        gUser.Picture,
			IsAdmin:        false,
			CreatedAt:      time.Now(),
			StandardClaims: *stdClaims,
		}
		tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		ss, err := tkn.SignedString(svr.GetJWTSigningKey())
		if err != nil {
			svr.Log(err, "unable to sign user session token")
			svr.Redirect(w, r, http.StatusTemporaryRedirect, "/auth/login/failed")
			return
		}
		sess.Values["jwt"] = ss
		if err := sess.Save(r, w); err != nil {
			svr.Log(err, "unable to save jwt into session cookie")
			svr.Redirect(w, r, http.StatusTemporaryRedirect, "/auth/login/failed")
			return
		}
		svr.Redirect(w, r, http.StatusTemporaryRedirect, svr.GetConfig().FrontendURL+"/dashboard")
	}
}

func LoginSuccessHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusForbidden, map[string]interface{}{"error": true, "message": "User not authenticated"})
			return
		}
		svr.JSON(w, http.StatusOK, map[string]interface{}{
			"error":   false,
			"message": "Successfully Logged In",
			"user": map[string]string{
				"id":      claims.UserID,
				"email":   claims.Email,
				"name":    claims.Name,
				"picture": claims.Picture,
			},
		})
	}
}

func LoginFailedHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svr.JSON(w, http.StatusUnauthorized, map[string]interface{}{"error": true, "message": "Login Failure"})
	}
}

// LogoutHandler clears the session cookie, success even when no session exists
func LogoutHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := svr.SessionStore.Get(r, middleware.SessionName)
		if err != nil {
			// a broken cookie still means the caller ends up logged out
			svr.JSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
			return
		}
		delete(sess.Values, "jwt")
		sess.Options.MaxAge = -1
		if err := sess.Save(r, w); err != nil {
			svr.Log(err, "unable to destroy session on logout")
			svr.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": true, "message": "Logout Failed"})
			return
		}
		svr.JSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
	}
}
