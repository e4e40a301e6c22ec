package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/courtside/pickleball-platform/internal/admin"
	"github.com/courtside/pickleball-platform/internal/database"
	"github.com/courtside/pickleball-platform/internal/middleware"
	"github.com/courtside/pickleball-platform/internal/server"
	jwt "github.com/dgrijalva/jwt-go"
	"github.com/segmentio/ksuid"
	"golang.org/x/crypto/bcrypt"
)

type adminRepository interface {
	Create(a admin.Admin) error
	GetByEmail(email string) (admin.Admin, error)
}

func AdminSignupHandler(svr server.Server, adminRepo adminRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rq admin.SignupRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
			return
		}
		if rq.Name == "" || rq.Email == "" || rq.Password == "" {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "All fields are required."})
			return
		}
		if !svr.IsEmail(rq.Email) {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid email"})
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(rq.Password), bcrypt.DefaultCost)
		if err != nil {
			svr.Log(err, "unable to hash admin password")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		a := admin.Admin{
			ID:           ksuid.New().String(),
			Name:         rq.Name,
			Email:        rq.Email,
			PasswordHash: string(hash),
			CreatedAt:    time.Now(),
		}
		if err := adminRepo.Create(a); err != nil {
			if database.IsUniqueViolation(err) {
				svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "Admin already exists."})
				return
			}
			svr.Log(err, "unable to create admin account")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		svr.JSON(w, http.StatusCreated, map[string]interface{}{"message": "Admin registered successfully", "admin": a})
	}
}

func AdminLoginHandler(svr server.Server, adminRepo adminRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rq admin.LoginRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
			return
		}
		if rq.Email == "" || rq.Password == "" {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "All fields are required."})
			return
		}
		a, err := adminRepo.GetByEmail(rq.Email)
		if err == sql.ErrNoRows {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid credentials."})
			return
		}
		if err != nil {
			svr.Log(err, "unable to load admin account on login")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(rq.Password)); err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid credentials."})
			return
		}
		sess, err := svr.SessionStore.Get(r, middleware.SessionName)
		if err != nil {
			svr.Log(err, "unable to get session on admin login")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		stdClaims := &jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).UTC().Unix(),
			IssuedAt:  time.Now().UTC().Unix(),
			Issuer:    svr.GetConfig().URLProtocol + svr.GetConfig().SiteHost,
		}
		claims := middleware.UserJWT{
			UserID:         a.ID,
			Email:          a.Email,
			Name:           a.Name,
			IsAdmin:        true,
			CreatedAt:      a.CreatedAt,
			StandardClaims: *stdClaims,
		}
		tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		ss, err := tkn.SignedString(svr.GetJWTSigningKey())
		if err != nil {
			svr.Log(err, "unable to sign admin session token")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		sess.Values["jwt"] = ss
		if err := sess.Save(r, w); err != nil {
			svr.Log(err, "unable to save jwt into session cookie")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, map[string]interface{}{"message": "Login successful", "admin": a})
	}
}
