package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/courtside/pickleball-platform/internal/middleware"
	"github.com/courtside/pickleball-platform/internal/server"
	"github.com/courtside/pickleball-platform/internal/tournament"
	"github.com/gorilla/mux"
	"github.com/segmentio/ksuid"
)

type tournamentRepository interface {
	Create(t tournament.Tournament) error
	All() ([]tournament.Tournament, error)
	ByStatus(status string) ([]tournament.Tournament, error)
	GetByID(id string) (tournament.Tournament, error)
	Update(t tournament.Tournament) error
	UpdateStatus(id, status string) error
	Delete(id string) error
}

func tournamentFromRq(rq tournament.TournamentRq) tournament.Tournament {
	t := tournament.Tournament{
		Name:        rq.Name,
		Organizer:   rq.Organizer,
		Location:    rq.Location,
		Country:     rq.Country,
		Continent:   rq.Continent,
		Tier:        rq.Tier,
		StartDate:   rq.StartDate,
		EndDate:     rq.EndDate,
		ImageURL:    rq.ImageURL,
		Description: rq.Description,
	}
	if len(rq.LocationCoords) == 2 {
		t.LocationCoords[0] = rq.LocationCoords[0]
		t.LocationCoords[1] = rq.LocationCoords[1]
	}
	return t
}

func CreateTournamentHandler(svr server.Server, tournamentRepo tournamentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rq tournament.TournamentRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
			return
		}
		if rq.Name == "" || rq.Location == "" || rq.Country == "" || rq.Description == "" {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "All fields are required."})
			return
		}
		if len(rq.LocationCoords) != 2 {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "locationCoords must be [latitude, longitude]"})
			return
		}
		t := tournamentFromRq(rq)
		t.ID = ksuid.New().String()
		t.Status = tournament.StatusPending
		t.CreatedAt = time.Now()
		if err := tournamentRepo.Create(t); err != nil {
			svr.Log(err, "unable to create tournament")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		svr.JSON(w, http.StatusCreated, map[string]interface{}{"message": "Tournament added successfully", "tournament": t})
	}
}

func ListTournamentsHandler(svr server.Server, tournamentRepo tournamentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tournaments, err := tournamentRepo.All()
		if err != nil {
			svr.Log(err, "unable to list tournaments")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, tournaments)
	}
}

func ListTournamentsByStatusHandler(svr server.Server, tournamentRepo tournamentRepository, status string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tournaments, err := tournamentRepo.ByStatus(status)
		if err != nil {
			svr.Log(err, "unable to list tournaments by status")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, tournaments)
	}
}

func GetTournamentHandler(svr server.Server, tournamentRepo tournamentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		t, err := tournamentRepo.GetByID(vars["id"])
		if err == sql.ErrNoRows {
			svr.JSON(w, http.StatusNotFound, map[string]string{"message": "Tournament not found"})
			return
		}
		if err != nil {
			svr.Log(err, "unable to get tournament")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, t)
	}
}

func UpdateTournamentHandler(svr server.Server, tournamentRepo tournamentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		var rq tournament.TournamentRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
			return
		}
		if len(rq.LocationCoords) != 2 {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "locationCoords must be [latitude, longitude]"})
			return
		}
		t := tournamentFromRq(rq)
		t.ID = vars["id"]
		if err := tournamentRepo.Update(t); err == sql.ErrNoRows {
			svr.JSON(w, http.StatusNotFound, map[string]string{"message": "Tournament not found"})
			return
		} else if err != nil {
			svr.Log(err, "unable to update tournament")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		updated, err := tournamentRepo.GetByID(vars["id"])
		if err != nil {
			svr.Log(err, "unable to reload tournament after update")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, map[string]interface{}{"message": "Tournament updated successfully", "tournament": updated})
	}
}

// UpdateTournamentStatusHandler moderates a submission, admins only
func UpdateTournamentStatusHandler(svr server.Server, tournamentRepo tournamentRepository) http.HandlerFunc {
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
			if !tournament.ValidStatus(rq.Status) {
				svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid status value"})
				return
			}
			if err := tournamentRepo.UpdateStatus(vars["id"], rq.Status); err == sql.ErrNoRows {
				svr.JSON(w, http.StatusNotFound, map[string]string{"message": "Tournament not found"})
				return
			} else if err != nil {
				svr.Log(err, "unable to update tournament status")
				svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
				return
			}
			updated, err := tournamentRepo.GetByID(vars["id"])
			if err != nil {
				svr.Log(err, "unable to reload tournament after status update")
				svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
				return
			}
			svr.JSON(w, http.StatusOK, map[string]interface{}{"message": "Tournament status updated successfully", "tournament": updated})
		},
	)
}

func DeleteTournamentHandler(svr server.Server, tournamentRepo tournamentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		if err := tournamentRepo.Delete(vars["id"]); err == sql.ErrNoRows {
			svr.JSON(w, http.StatusNotFound, map[string]string{"message": "Tournament not found"})
			return
		} else if err != nil {
			svr.Log(err, "unable to delete tournament")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, map[string]string{"message": "Tournament deleted successfully"})
	}
}
