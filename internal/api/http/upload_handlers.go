package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/studypulse/studypulse-backend/internal/extract"
	"github.com/studypulse/studypulse-backend/internal/quiz"
)

// POST /upload
func UploadHandler(ex *extract.Extractor, gen *quiz.Generator, defaultQuestions int, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

		f, hdr, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "No file uploaded")
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unreadable upload: "+err.Error())
			return
		}

		numQuestions := defaultQuestions
		if v := r.FormValue("num_questions"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				numQuestions = n
			}
		}

		text := ex.Extract(r.Context(), hdr.Filename, data)

		// Empty text still produces a quiz: the generator's fallback path
		// synthesizes placeholder questions so the UI never breaks.
		res := gen.Generate(r.Context(), quiz.GenerateRequest{
			Text:         text,
			NumQuestions: numQuestions,
			Subject:      r.FormValue("subject"),
			Topics:       r.FormValue("topics"),
			Difficulty:   r.FormValue("difficulty"),
		})
		writeJSON(w, http.StatusOK, map[string]interface{}{"questions": res.Questions})
	}
}
