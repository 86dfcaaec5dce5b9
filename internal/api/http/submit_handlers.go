package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/studypulse/studypulse-backend/internal/grading"
)

type submitReq struct {
	Answers []grading.AnswerRecord `json:"answers"`
	Stress  []float64              `json:"stress"`
}

// POST /submit
func SubmitHandler(fb *grading.FeedbackGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
		score, err := grading.Score(req.Answers, req.Stress)
		if err != nil {
			if errors.Is(err, grading.ErrNoAnswers) {
				writeError(w, http.StatusBadRequest, "No answers submitted")
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		feedback := fb.Feedback(r.Context(), score.Score, score.AvgStress)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"score":      score.Score,
			"avg_stress": score.AvgStress,
			"feedback":   feedback.Text,
		})
	}
}
