package handler

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/courtside/pickleball-platform/internal/email"
	"github.com/courtside/pickleball-platform/internal/inquiry"
	"github.com/courtside/pickleball-platform/internal/render"
	"github.com/courtside/pickleball-platform/internal/server"
	"github.com/dustin/go-humanize"
	"github.com/gorilla/mux"
	"github.com/segmentio/ksuid"
)

type inquiryRepository interface {
	Create(i inquiry.Inquiry) error
	All() ([]inquiry.Inquiry, error)
	GetByID(id string) (inquiry.Inquiry, error)
	Update(i inquiry.Inquiry) error
	Delete(id string) error
}

func CreateInquiryHandler(svr server.Server, inquiryRepo inquiryRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rq inquiry.InquiryRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "message": "invalid request body"})
			return
		}
		i := inquiry.Inquiry{
			ID:        ksuid.New().String(),
			Name:      render.StripTags(rq.Name),
			Company:   render.StripTags(rq.Company),
			Email:     rq.Email,
			Message:   render.StripTags(rq.Message),
			CreatedAt: time.Now(),
		}
		if err := inquiryRepo.Create(i); err != nil {
			svr.Log(err, "unable to create sponsor inquiry")
			svr.JSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Server error"})
			return
		}
		if svr.GetEmail().Enabled() {
			go func(i inquiry.Inquiry) {
				err := svr.GetEmail().SendTextEmail(
					email.Address{Name: svr.GetEmail().DefaultSenderName(), Email: svr.GetEmail().NoReplySenderAddress()},
					email.Address{Email: svr.GetEmail().DefaultAdminAddress()},
					fmt.Sprintf("New sponsor inquiry from %s", i.Company),
					fmt.Sprintf("%s (%s) at %s wrote:\n\n%s", i.Name, i.Email, i.Company, i.Message),
				)
				if err != nil {
					svr.Log(err, "unable to notify admin about sponsor inquiry")
				}
			}(i)
		}
		svr.JSON(w, http.StatusCreated, map[string]interface{}{"success": true, "message": "Inquiry submitted successfully"})
	}
}

func ListInquiriesHandler(svr server.Server, inquiryRepo inquiryRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inquiries, err := inquiryRepo.All()
		if err != nil {
			svr.Log(err, "unable to list sponsor inquiries")
			svr.JSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Server error"})
			return
		}
		for idx := range inquiries {
			inquiries[idx].CreatedAtHumanized = humanize.Time(inquiries[idx].CreatedAt)
		}
		svr.JSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": inquiries})
	}
}

func GetInquiryHandler(svr server.Server, inquiryRepo inquiryRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		i, err := inquiryRepo.GetByID(vars["id"])
		if err == sql.ErrNoRows {
			svr.JSON(w, http.StatusNotFound, map[string]interface{}{"success": false, "message": "Inquiry not found"})
			return
		}
		if err != nil {
			svr.Log(err, "unable to get sponsor inquiry")
			svr.JSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Server error"})
			return
		}
		i.CreatedAtHumanized = humanize.Time(i.CreatedAt)
		svr.JSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": i})
	}
}

func UpdateInquiryHandler(svr server.Server, inquiryRepo inquiryRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		var rq inquiry.InquiryRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "message": "invalid request body"})
			return
		}
		i := inquiry.Inquiry{
			ID:      vars["id"],
			Name:    render.StripTags(rq.Name),
			Company: render.StripTags(rq.Company),
			Email:   rq.Email,
			Message: render.StripTags(rq.Message),
		}
		if err := inquiryRepo.Update(i); err == sql.ErrNoRows {
			svr.JSON(w, http.StatusNotFound, map[string]interface{}{"success": false, "message": "Inquiry not found"})
			return
		} else if err != nil {
			svr.Log(err, "unable to update sponsor inquiry")
			svr.JSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Server error"})
			return
		}
		updated, err := inquiryRepo.GetByID(vars["id"])
		if err != nil {
			svr.Log(err, "unable to reload sponsor inquiry after update")
			svr.JSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Server error"})
			return
		}
		updated.CreatedAtHumanized = humanize.Time(updated.CreatedAt)
		svr.JSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Inquiry updated successfully", "data": updated})
	}
}

func DeleteInquiryHandler(svr server.Server, inquiryRepo inquiryRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		if err := inquiryRepo.Delete(vars["id"]); err == sql.ErrNoRows {
			svr.JSON(w, http.StatusNotFound, map[string]interface{}{"success": false, "message": "Inquiry not found"})
			return
		} else if err != nil {
			svr.Log(err, "unable to delete sponsor inquiry")
			svr.JSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Server error"})
			return
		}
		svr.JSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Inquiry deleted successfully"})
	}
}
