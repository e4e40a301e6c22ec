package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/courtside/pickleball-platform/internal/club"
	"github.com/courtside/pickleball-platform/internal/middleware"
	"github.com/courtside/pickleball-platform/internal/server"
	"github.com/gorilla/mux"
	"github.com/segmentio/ksuid"
)

type clubRepository interface {
	Create(c club.Club) error
	All() ([]club.Club, error)
	Filter(country, status string) ([]club.Club, error)
	GetByID(id string) (club.Club, error)
	Update(c club.Club) error
	UpdateStatus(id, status string) error
	Delete(id string) error
}

func clubFromRq(rq club.ClubRq) club.Club {
	c := club.Club{
		Name:         rq.Name,
		Email:        rq.Email,
		Contact:      rq.Contact,
		Location:     rq.Location,
		Country:      rq.Country,
		BookingLink:  rq.BookingLink,
		ClubImageURL: rq.ClubImageURL,
		LogoImageURL: rq.LogoImageURL,
		Description:  rq.Description,
	}
	if len(rq.Coords) == 2 {
		c.Coords[0] = rq.Coords[0]
		c.Coords[1] = rq.Coords[1]
	}
	return c
}

func CreateClubHandler(svr server.Server, clubRepo clubRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rq club.ClubRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
			return
		}
		if rq.Name == "" || rq.Location == "" || rq.Country == "" || rq.Description == "" {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "All fields are required."})
			return
		}
		if len(rq.Coords) != 2 {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid locationCoordinates format. Must be an array of [latitude, longitude]."})
			return
		}
		c := clubFromRq(rq)
		c.ID = ksuid.New().String()
		c.Status = club.StatusPending
		c.CreatedAt = time.Now()
		if err := clubRepo.Create(c); err != nil {
			svr.Log(err, "unable to create club")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		svr.JSON(w, http.StatusCreated, map[string]interface{}{"message": "Club added successfully", "club": c})
	}
}

func ListClubsHandler(svr server.Server, clubRepo clubRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clubs, err := clubRepo.All()
		if err != nil {
			svr.Log(err, "unable to list clubs")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, clubs)
	}
}

func FilterClubsHandler(svr server.Server, clubRepo clubRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		country := r.URL.Query().Get("country")
		status := r.URL.Query().Get("status")
		if status != "" && !club.ValidStatus(status) {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid status value"})
			return
		}
		clubs, err := clubRepo.Filter(country, status)
		if err != nil {
			svr.Log(err, "unable to filter clubs")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, clubs)
	}
}

func GetClubHandler(svr server.Server, clubRepo clubRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		c, err := clubRepo.GetByID(vars["id"])
		if err == sql.ErrNoRows {
			svr.JSON(w, http.StatusNotFound, map[string]string{"message": "Club not found"})
			return
		}
		if err != nil {
			svr.Log(err, "unable to get club")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, c)
	}
}

func UpdateClubHandler(svr server.Server, clubRepo clubRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		var rq club.ClubRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
			return
		}
		if len(rq.Coords) != 2 {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid locationCoordinates format. Must be an array of [latitude, longitude]."})
			return
		}
		c := clubFromRq(rq)
		c.ID = vars["id"]
		if err := clubRepo.Update(c); err == sql.ErrNoRows {
			svr.JSON(w, http.StatusNotFound, map[string]string{"message": "Club not found"})
			return
		} else if err != nil {
			svr.Log(err, "unable to update club")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		updated, err := clubRepo.GetByID(vars["id"])
		if err != nil {
			svr.Log(err, "unable to reload club after update")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, map[string]interface{}{"message": "Club updated successfully", "club": updated})
	}
}

// UpdateClubStatusHandler moderates a club submission, admins only
func UpdateClubStatusHandler(svr server.Server, clubRepo clubRepository) http.HandlerFunc {
	return middleware.AdminAuthenticatedMiddleware(
		svr.SessionStore,
		svr.GetJWTSigningKey(),
		func(w http.ResponseWriter, r *http.Request) {
			vars := mux.Vars(r)
			var rq struct {
				Status string `json:"status"`
			}
			if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
				svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
				return
			}
			if !club.ValidStatus(rq.Status) {
				svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid status value"})
				return
			}
			if err := clubRepo.UpdateStatus(vars["id"], rq.Status); err == sql.ErrNoRows {
				svr.JSON(w, http.StatusNotFound, map[string]string{"message": "Club not found"})
				return
			} else if err != nil {
				svr.Log(err, "unable to update club status")
				svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
				return
			}
			updated, err := clubRepo.GetByID(vars["id"])
			if err != nil {
				svr.Log(err, "unable to reload club after status update")
				svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
				return
			}
			svr.JSON(w, http.StatusOK, map[string]interface{}{"message": "Club status updated successfully", "club": updated})
		},
	)
}

func DeleteClubHandler(svr server.Server, clubRepo clubRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		if err := clubRepo.Delete(vars["id"]); err == sql.ErrNoRows {
			svr.JSON(w, http.StatusNotFound, map[string]string{"message": "Club not found"})
			return
		} else if err != nil {
			svr.Log(err, "unable to delete club")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, map[string]string{"message": "Club deleted successfully"})
	}
}
