package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/courtside/pickleball-platform/internal/database"
	"github.com/courtside/pickleball-platform/internal/instagram"
	"github.com/courtside/pickleball-platform/internal/server"
	"github.com/gorilla/mux"
	"github.com/segmentio/ksuid"
)

type instagramRepository interface {
	Create(l instagram.Link) error
	All() ([]instagram.Link, error)
	Update(l instagram.Link) error
	UpdateTitle(id, title string) error
	Delete(id string) (instagram.Link, error)
}

func CreateInstagramLinkHandler(svr server.Server, linkRepo instagramRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rq instagram.LinkRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if !instagram.ValidURL(rq.URL) {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid instagram url"})
			return
		}
		l := instagram.Link{
			ID:  ksuid.New().String(),
			URL: rq.URL,
		}
		if err := linkRepo.Create(l); err != nil {
			if database.IsUniqueViolation(err) {
				svr.JSON(w, http.StatusBadRequest, map[string]string{"error": "url already exists"})
				return
			}
			svr.Log(err, "unable to create instagram link")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"error": "unable to save url"})
			return
		}
		// page titles are nice to have, never worth failing the request over
		if svr.GetConfig().FetchLinkMetadata {
			go func(l instagram.Link) {
				title, err := instagram.FetchPageTitle(l.URL)
				if err != nil {
					svr.Log(err, "unable to fetch instagram page title")
					return
				}
				if err := linkRepo.UpdateTitle(l.ID, title); err != nil {
					svr.Log(err, "unable to save instagram page title")
				}
			}(l)
		}
		svr.JSON(w, http.StatusCreated, map[string]interface{}{"message": "Instagram URL added", "data": l})
	}
}

func ListInstagramLinksHandler(svr server.Server, linkRepo instagramRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links, err := linkRepo.All()
		if err != nil {
			svr.Log(err, "unable to list instagram links")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"error": "unable to fetch urls"})
			return
		}
		svr.JSON(w, http.StatusOK, links)
	}
}

func UpdateInstagramLinkHandler(svr server.Server, linkRepo instagramRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		var rq instagram.LinkRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if !instagram.ValidURL(rq.URL) {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid instagram url"})
			return
		}
		l := instagram.Link{ID: vars["id"], URL: rq.URL}
		if err := linkRepo.Update(l); err == sql.ErrNoRows {
			svr.JSON(w, http.StatusNotFound, map[string]string{"message": "URL not found"})
			return
		} else if err != nil {
			if database.IsUniqueViolation(err) {
				svr.JSON(w, http.StatusBadRequest, map[string]string{"error": "url already exists"})
				return
			}
			svr.Log(err, "unable to update instagram link")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"error": "unable to update url"})
			return
		}
		svr.JSON(w, http.StatusOK, map[string]interface{}{"message": "URL updated", "data": l})
	}
}

func DeleteInstagramLinkHandler(svr server.Server, linkRepo instagramRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		deleted, err := linkRepo.Delete(vars["id"])
		if err == sql.ErrNoRows {
			svr.JSON(w, http.StatusNotFound, map[string]string{"message": "URL not found"})
			return
		}
		if err != nil {
			svr.Log(err, "unable to delete instagram link")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"error": "unable to delete url"})
			return
		}
		svr.JSON(w, http.StatusOK, map[string]interface{}{"message": "URL deleted", "data": deleted})
	}
}
