package handler

import (
	"encoding/json"
	"net/http"

	"github.com/courtside/pickleball-platform/internal/ai"
	"github.com/courtside/pickleball-platform/internal/server"
)

type aiChatter interface {
	Chat(message string) (string, error)
}

func AIChatHandler(svr server.Server, aiClient aiChatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rq struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"error": "Message is required"})
			return
		}
		if rq.Message == "" {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"error": "Message is required"})
			return
		}
		reply, err := aiClient.Chat(rq.Message)
		if err != nil {
			svr.Log(err, "ai chat upstream call failed")
			if upstreamErr, ok := err.(*ai.UpstreamError); ok {
				svr.JSON(w, http.StatusInternalServerError, map[string]string{"error": upstreamErr.Body})
				return
			}
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
			return
		}
		svr.JSON(w, http.StatusOK, map[string]string{"reply": reply})
	}
}
