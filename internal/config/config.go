package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is built once at process start and passed explicitly to every
// component. An empty APIKey disables all remote-model paths; the local
// fallbacks keep every endpoint functional without it.
type Config struct {
	HTTPAddr string

	APIKey  string // OpenRouter credential; empty => remote paths disabled
	BaseURL string
	Model   string

	CORSOrigins []string

	ExtractMaxChars int
	OCREnabled      bool
	OCRMinChars     int

	DefaultQuestions int
	MaxQuestions     int
	MaxUploadBytes   int64

	QuizTimeout time.Duration
	ChatTimeout time.Duration
}

func FromEnv() Config {
	return Config{
		HTTPAddr: envOr("HTTP_ADDR", ":8080"),

		APIKey:  os.Getenv("OPENROUTER_API_KEY"),
		BaseURL: envOr("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		Model:   envOr("LLM_MODEL", "google/gemini-1.5-flash-8b"),

		CORSOrigins: csvOr("CORS_ORIGINS", "http://localhost:3000"),

		ExtractMaxChars: envInt("EXTRACT_MAX_CHARS", 16000),
		OCREnabled:      envBool("OCR_ENABLED", false),
		OCRMinChars:     envInt("OCR_MIN_CHARS", 50),

		DefaultQuestions: envInt("DEFAULT_QUESTIONS", 10),
		MaxQuestions:     envInt("MAX_QUESTIONS", 50),
		MaxUploadBytes:   int64(envInt("MAX_UPLOAD_BYTES", 16<<20)),

		QuizTimeout: time.Duration(envInt("QUIZ_TIMEOUT_SECONDS", 60)) * time.Second,
		ChatTimeout: time.Duration(envInt("CHAT_TIMEOUT_SECONDS", 30)) * time.Second,
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
