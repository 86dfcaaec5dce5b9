package grading

import (
	"errors"
	"math"
)

// AnswerRecord is one answered question from a submission. Only correctness
// reaches the backend; the question itself stays client-side.
type AnswerRecord struct {
	IsCorrect bool `json:"isCorrect"`
}

type ScoreResult struct {
	Score     float64 `json:"score"`      // accuracy percentage, 2 decimals
	AvgStress float64 `json:"avg_stress"` // mean stress sample, 2 decimals
}

// ErrNoAnswers signals an empty submission; accuracy is undefined.
var ErrNoAnswers = errors.New("no answers submitted")

// Score reduces a submission to accuracy and average stress. Accuracy is
// always within [0,100] for boolean inputs; no further clamping is applied.
func Score(answers []AnswerRecord, stress []float64) (ScoreResult, error) {
	if len(answers) == 0 {
		return ScoreResult{}, ErrNoAnswers
	}
	correct := 0
	for _, a := range answers {
		if a.IsCorrect {
			correct++
		}
	}
	res := ScoreResult{
		Score: round2(100 * float64(correct) / float64(len(answers))),
	}
	if len(stress) > 0 {
		sum := 0.0
		for _, s := range stress {
			sum += s
		}
		res.AvgStress = round2(sum / float64(len(stress)))
	}
	return res, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
