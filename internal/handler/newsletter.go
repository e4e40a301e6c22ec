package handler

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/courtside/pickleball-platform/internal/database"
	"github.com/courtside/pickleball-platform/internal/email"
	"github.com/courtside/pickleball-platform/internal/newsletter"
	"github.com/courtside/pickleball-platform/internal/server"
	"github.com/gorilla/mux"
	"github.com/segmentio/ksuid"
)

type newsletterRepository interface {
	Subscribe(s newsletter.Subscriber) error
	Subscribers() ([]newsletter.Subscriber, error)
	Unsubscribe(email string) error
}

func SubscribeNewsletterHandler(svr server.Server, subscriberRepo newsletterRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rq newsletter.SubscribeRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
			return
		}
		if rq.Email == "" {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "Email is required"})
			return
		}
		if !svr.IsEmail(rq.Email) {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid email"})
			return
		}
		s := newsletter.Subscriber{
			ID:        ksuid.New().String(),
			Email:     rq.Email,
			CreatedAt: time.Now(),
		}
		if err := subscriberRepo.Subscribe(s); err != nil {
			if database.IsUniqueViolation(err) {
				svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "Email is already subscribed"})
				return
			}
			svr.Log(err, "unable to subscribe email to newsletter")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		if svr.GetEmail().Enabled() {
			go func(to string) {
				err := svr.GetEmail().SendTextEmail(
					email.Address{Name: svr.GetEmail().DefaultSenderName(), Email: svr.GetEmail().NoReplySenderAddress()},
					email.Address{Email: to},
					fmt.Sprintf("Welcome to the %s newsletter", svr.GetConfig().SiteName),
					fmt.Sprintf("Thanks for subscribing to the %s newsletter. You can unsubscribe at any time: %s%s/newsletter/unsubscribe/%s", svr.GetConfig().SiteName, svr.GetConfig().URLProtocol, svr.GetConfig().SiteHost, to),
				)
				if err != nil {
					svr.Log(err, "unable to send newsletter welcome email")
				}
			}(s.Email)
		}
		svr.JSON(w, http.StatusCreated, map[string]string{"message": "Successfully subscribed to newsletter", "email": s.Email})
	}
}

func ListNewsletterSubscribersHandler(svr server.Server, subscriberRepo newsletterRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subscribers, err := subscriberRepo.Subscribers()
		if err != nil {
			svr.Log(err, "unable to list newsletter subscribers")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, subscribers)
	}
}

func UnsubscribeNewsletterHandler(svr server.Server, subscriberRepo newsletterRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		addr := vars["email"]
		if err := subscriberRepo.Unsubscribe(addr); err == sql.ErrNoRows {
			svr.JSON(w, http.StatusNotFound, map[string]string{"message": "Email not found"})
			return
		} else if err != nil {
			svr.Log(err, "unable to unsubscribe email from newsletter")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, map[string]string{"message": "Successfully unsubscribed", "email": addr})
	}
}
