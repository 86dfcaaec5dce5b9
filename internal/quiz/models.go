package quiz

// Question is a single MCQ: exactly four options, one of which is the
// correct answer verbatim. Invariant: CorrectAnswer is always an element of
// Options, whichever path produced the question.
type Question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

const numOptions = 4

// Valid reports whether a question satisfies the MCQ invariant.
func (q Question) Valid() bool {
	if q.Question == "" || len(q.Options) != numOptions {
		return false
	}
	for _, o := range q.Options {
		if o == q.CorrectAnswer {
			return true
		}
	}
	return false
}

type GenerateRequest struct {
	Text         string
	NumQuestions int
	Subject      string
	Topics       string // comma-separated
	Difficulty   string
}
