package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/studypulse/studypulse-backend/internal/tutor"
)

// POST /tutor/chat
func TutorChatHandler(relay *tutor.Relay) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req tutor.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
		req.Message = strings.TrimSpace(req.Message)
		if req.Message == "" {
			writeError(w, http.StatusBadRequest, "No message provided")
			return
		}
		if req.StressLevel == "" {
			req.StressLevel = "low"
		}

		reply, err := relay.Chat(r.Context(), req)
		if err != nil {
			status, apology, detail := tutor.MapError(err)
			writeJSON(w, status, map[string]string{
				"response": apology,
				"error":    detail,
			})
			return
		}
		writeJSON(w, http.StatusOK, reply)
	}
}
