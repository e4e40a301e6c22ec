package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/courtside/pickleball-platform/internal/athlete"
	"github.com/courtside/pickleball-platform/internal/server"
	"github.com/gorilla/mux"
	"github.com/segmentio/ksuid"
)

type athleteRepository interface {
	Create(a athlete.Athlete) error
	All(gender, country string, sortByPoints bool) ([]athlete.Athlete, error)
	GetByID(id string) (athlete.Athlete, error)
	Update(a athlete.Athlete) error
	Delete(id string) error
}

func athleteFromRq(rq athlete.AthleteRq) athlete.Athlete {
	titles := rq.TitlesWon
	if titles == nil {
		titles = []string{}
	}
	return athlete.Athlete{
		Name:      rq.Name,
		Age:       rq.Age,
		Gender:    rq.Gender,
		Country:   rq.Country,
		HeightCm:  rq.HeightCm,
		Points:    rq.Points,
		TitlesWon: titles,
		ImageURL:  rq.ImageURL,
	}
}

func validateAthleteRq(rq athlete.AthleteRq) string {
	switch {
	case rq.Name == "" || rq.Country == "" || rq.ImageURL == "":
		return "name, country and imageUrl are required"
	case rq.Age < 10:
		return "age must be at least 10"
	case !athlete.ValidGender(rq.Gender):
		return "gender must be one of Male, Female, Other"
	case rq.HeightCm <= 0:
		return "height is required"
	}
	return ""
}

func CreateAthleteHandler(svr server.Server, athleteRepo athleteRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rq athlete.AthleteRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if msg := validateAthleteRq(rq); msg != "" {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"error": msg})
			return
		}
		a := athleteFromRq(rq)
		a.ID = ksuid.New().String()
		a.CreatedAt = time.Now()
		if err := athleteRepo.Create(a); err != nil {
			svr.Log(err, "unable to create athlete")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Server error"})
			return
		}
		svr.JSON(w, http.StatusCreated, a)
	}
}

func ListAthletesHandler(svr server.Server, athleteRepo athleteRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		athletes, err := athleteRepo.All(q.Get("gender"), q.Get("country"), q.Get("sort") == "points")
		if err != nil {
			svr.Log(err, "unable to list athletes")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, athletes)
	}
}

// AthleteStatsHandler summarizes the points distribution of the current
// ranking list
func AthleteStatsHandler(svr server.Server, athleteRepo athleteRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		athletes, err := athleteRepo.All("", "", false)
		if err != nil {
			svr.Log(err, "unable to load athletes for stats")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, athlete.ComputePointsStats(athletes))
	}
}

func GetAthleteHandler(svr server.Server, athleteRepo athleteRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		a, err := athleteRepo.GetByID(vars["id"])
		if err == sql.ErrNoRows {
			svr.JSON(w, http.StatusNotFound, map[string]string{"message": "Athlete not found"})
			return
		}
		if err != nil {
			svr.Log(err, "unable to get athlete")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, a)
	}
}

func UpdateAthleteHandler(svr server.Server, athleteRepo athleteRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		var rq athlete.AthleteRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if msg := validateAthleteRq(rq); msg != "" {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"error": msg})
			return
		}
		a := athleteFromRq(rq)
		a.ID = vars["id"]
		if err := athleteRepo.Update(a); err == sql.ErrNoRows {
			svr.JSON(w, http.StatusNotFound, map[string]string{"message": "Athlete not found"})
			return
		} else if err != nil {
			svr.Log(err, "unable to update athlete")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Server error"})
			return
		}
		updated, err := athleteRepo.GetByID(vars["id"])
		if err != nil {
			svr.Log(err, "unable to reload athlete after update")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, updated)
	}
}

func DeleteAthleteHandler(svr server.Server, athleteRepo athleteRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		if err := athleteRepo.Delete(vars["id"]); err == sql.ErrNoRows {
			svr.JSON(w, http.StatusNotFound, map[string]string{"message": "Athlete not found"})
			return
		} else if err != nil {
			svr.Log(err, "unable to delete athlete")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, map[string]string{"message": "Athlete deleted successfully"})
	}
}
