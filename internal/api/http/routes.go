package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/studypulse/studypulse-backend/internal/extract"
	"github.com/studypulse/studypulse-backend/internal/grading"
	"github.com/studypulse/studypulse-backend/internal/quiz"
	"github.com/studypulse/studypulse-backend/internal/tutor"
)

type Deps struct {
	Extractor        *extract.Extractor
	Quiz             *quiz.Generator
	Feedback         *grading.FeedbackGenerator
	Tutor            *tutor.Relay
	DefaultQuestions int
	MaxUploadBytes   int64
}

// Mount attaches the API surface. Each action endpoint answers GET with a
// usage descriptor, mirroring the original frontend's probe behavior.
func Mount(r chi.Router, d Deps) {
	r.Post("/upload", UploadHandler(d.Extractor, d.Quiz, d.DefaultQuestions, d.MaxUploadBytes))
	r.Get("/upload", usageHandler("/upload",
		"POST multipart/form-data with fields: file (pdf/txt/docx), num_questions (int)"))

	r.Post("/submit", SubmitHandler(d.Feedback))
	r.Get("/submit", usageHandler("/submit",
		"POST application/json with fields: answers:[{isCorrect: bool}], stress:[number]"))

	r.Post("/tutor/chat", TutorChatHandler(d.Tutor))
	r.Get("/tutor/chat", usageHandler("/tutor/chat",
		"POST application/json with fields: message (string), stress_level (string), conversation_history (array)"))

	r.Post("/emotion-log", EmotionLogHandler())
	r.Get("/emotion-log", usageHandler("/emotion-log",
		"POST application/json with fields: stress_score (number), timestamp (optional)"))
}
