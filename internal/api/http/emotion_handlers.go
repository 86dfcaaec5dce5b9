package http

import (
	"encoding/json"
	"log"
	"net/http"
)

type emotionLogReq struct {
	StressScore float64     `json:"stress_score"`
	Timestamp   interface{} `json:"timestamp"`
}

// POST /emotion-log
//
// Readings are acknowledged for the client's analytics flow but not
// persisted anywhere; the log line is the only trace.
func EmotionLogHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req emotionLogReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
		log.Printf("emotion logged: stress_score=%v timestamp=%v", req.StressScore, req.Timestamp)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":       "logged",
			"stress_score": req.StressScore,
			"timestamp":    req.Timestamp,
		})
	}
}
