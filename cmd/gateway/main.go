package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/studypulse/studypulse-backend/internal/api/http"
	"github.com/studypulse/studypulse-backend/internal/config"
	"github.com/studypulse/studypulse-backend/internal/extract"
	"github.com/studypulse/studypulse-backend/internal/extract/ocr"
	"github.com/studypulse/studypulse-backend/internal/grading"
	"github.com/studypulse/studypulse-backend/internal/llm"
	"github.com/studypulse/studypulse-backend/internal/quiz"
	"github.com/studypulse/studypulse-backend/internal/tutor"
)

func main() {
	cfg := config.FromEnv()

	client := llm.NewClient(cfg.APIKey, cfg.BaseURL, cfg.Model)
	if !client.Configured() {
		log.Printf("no OPENROUTER_API_KEY set; remote-model paths disabled, fallbacks active")
	}

	var engine extract.OCR
	if cfg.OCREnabled {
		t := ocr.NewTesseract()
		if t.Available() {
			engine = t
		} else {
			log.Printf("OCR enabled but tesseract/pdftoppm not on PATH; escalation disabled")
		}
	}
	extractor := extract.New(extract.Options{
		MaxChars:    cfg.ExtractMaxChars,
		OCRMinChars: cfg.OCRMinChars,
		OCR:         engine,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	// Outer bound above the longest remote-model timeout.
	r.Use(middleware.Timeout(cfg.QuizTimeout + 30*time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	api.Mount(r, api.Deps{
		Extractor:        extractor,
		Quiz:             quiz.NewGenerator(client, cfg.MaxQuestions, cfg.QuizTimeout),
		Feedback:         grading.NewFeedbackGenerator(client, cfg.QuizTimeout),
		Tutor:            tutor.NewRelay(client, cfg.ChatTimeout),
		DefaultQuestions: cfg.DefaultQuestions,
		MaxUploadBytes:   cfg.MaxUploadBytes,
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (model=%s, remote=%t, ocr=%t)",
		cfg.HTTPAddr, cfg.Model, client.Configured(), engine != nil)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
