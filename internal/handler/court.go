package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/courtside/pickleball-platform/internal/court"
	"github.com/courtside/pickleball-platform/internal/server"
	"github.com/gorilla/mux"
	"github.com/segmentio/ksuid"
)

type courtRepository interface {
	Create(c court.Court) error
	All() ([]court.Court, error)
	Filter(minCourts int, country string) ([]court.Court, error)
	GetByID(id string) (court.Court, error)
	Update(c court.Court) error
	Delete(id string) error
}

func courtFromRq(rq court.CourtRq) court.Court {
	c := court.Court{
		Name:           rq.Name,
		Location:       rq.Location,
		Country:        rq.Country,
		NumberOfCourts: rq.NumberOfCourts,
		Contact:        rq.Contact,
		Description:    rq.Description,
	}
	if len(rq.Coords) == 2 {
		c.Coords[0] = rq.Coords[0]
		c.Coords[1] = rq.Coords[1]
	}
	return c
}

func CreateCourtHandler(svr server.Server, courtRepo courtRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rq court.CourtRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
			return
		}
		if rq.Name == "" || rq.Location == "" || rq.Country == "" || rq.Contact == "" || rq.Description == "" {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "All fields are required."})
			return
		}
		if rq.NumberOfCourts < 1 {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "numberOfCourts must be at least 1"})
			return
		}
		if len(rq.Coords) != 2 {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid locationCoordinates format. Must be an array of [latitude, longitude]."})
			return
		}
		c := courtFromRq(rq)
		c.ID = ksuid.New().String()
		c.CreatedAt = time.Now()
		if err := courtRepo.Create(c); err != nil {
			svr.Log(err, "unable to create court")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		svr.JSON(w, http.StatusCreated, map[string]interface{}{"message": "Court added successfully", "court": c})
	}
}

func ListCourtsHandler(svr server.Server, courtRepo courtRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courts, err := courtRepo.All()
		if err != nil {
			svr.Log(err, "unable to list courts")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, courts)
	}
}

func FilterCourtsHandler(svr server.Server, courtRepo courtRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		minCourts := 0
		if raw := r.URL.Query().Get("minCourts"); raw != "" {
			var err error
			minCourts, err = strconv.Atoi(raw)
			if err != nil || minCourts < 0 {
				svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid minCourts value"})
				return
			}
		}
		courts, err := courtRepo.Filter(minCourts, r.URL.Query().Get("country"))
		if err != nil {
			svr.Log(err, "unable to filter courts")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, courts)
	}
}

func GetCourtHandler(svr server.Server, courtRepo courtRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		c, err := courtRepo.GetByID(vars["id"])
		if err == sql.ErrNoRows {
			svr.JSON(w, http.StatusNotFound, map[string]string{"message": "Court not found"})
			return
		}
		if err != nil {
			svr.Log(err, "unable to get court")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, c)
	}
}

func UpdateCourtHandler(svr server.Server, courtRepo courtRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		var rq court.CourtRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
			return
		}
		if rq.NumberOfCourts < 1 {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "numberOfCourts must be at least 1"})
			return
		}
		if len(rq.Coords) != 2 {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid locationCoordinates format. Must be an array of [latitude, longitude]."})
			return
		}
		c := courtFromRq(rq)
		c.ID = vars["id"]
		if err := courtRepo.Update(c); err == sql.ErrNoRows {
			svr.JSON(w, http.StatusNotFound, map[string]string{"message": "Court not found"})
			return
		} else if err != nil {
			svr.Log(err, "unable to update court")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		updated, err := courtRepo.GetByID(vars["id"])
		if err != nil {
			svr.Log(err, "unable to reload court after update")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, map[string]interface{}{"message": "Court updated successfully", "court": updated})
	}
}

func DeleteCourtHandler(svr server.Server, courtRepo courtRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		if err := courtRepo.Delete(vars["id"]); err == sql.ErrNoRows {
			svr.JSON(w, http.StatusNotFound, map[string]string{"message": "Court not found"})
			return
		} else if err != nil {
			svr.Log(err, "unable to delete court")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, map[string]string{"message": "Court deleted successfully"})
	}
}
