package tutor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/studypulse/studypulse-backend/internal/llm"
)

// maxHistory bounds how much prior conversation is forwarded to the model.
const maxHistory = 6

var stressContext = map[string]string{
	"low":    "The student is calm and focused. Provide detailed explanations and encourage deeper exploration.",
	"medium": "The student shows some stress. Keep explanations clear and concise, offer encouragement.",
	"high":   "The student is stressed. Provide simple, reassuring explanations. Focus on building confidence and suggest breaks if needed.",
}

// Chatter is the slice of the LLM client the relay needs.
type Chatter interface {
	Configured() bool
	Chat(ctx context.Context, msgs []llm.Message, maxTokens int, temperature float32) (llm.Completion, error)
}

type ChatRequest struct {
	Message     string        `json:"message"`
	StressLevel string        `json:"stress_level"`
	History     []llm.Message `json:"conversation_history"`
}

type Reply struct {
	Response    string `json:"response"`
	StressLevel string `json:"stress_level"`
	Timestamp   int64  `json:"timestamp"`
}

type Relay struct {
	chat    Chatter
	timeout time.Duration
}

func NewRelay(chat Chatter, timeout time.Duration) *Relay {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Relay{chat: chat, timeout: timeout}
}

// Chat forwards the user message plus bounded history to the model with a
// stress-adapted system prompt. Errors are returned as-is; MapError turns
// them into user-facing apologies.
func (r *Relay) Chat(ctx context.Context, req ChatRequest) (Reply, error) {
	level := req.StressLevel
	if _, ok := stressContext[level]; !ok {
		level = "low"
	}

	msgs := []llm.Message{{Role: llm.RoleSystem, Content: systemPrompt(req.StressLevel, level)}}

	history := req.History
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}
	for _, m := range history {
		if m.Role == "" || m.Content == "" {
			continue
		}
		msgs = append(msgs, m)
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: req.Message})

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	comp, err := r.chat.Chat(ctx, msgs, 800, 0.7)
	if err != nil {
		return Reply{}, err
	}
	return Reply{
		Response:    comp.Content,
		StressLevel: req.StressLevel,
		Timestamp:   comp.Created,
	}, nil
}

func systemPrompt(declared, effective string) string {
	var b strings.Builder
	b.WriteString("You are an empathetic AI tutor that adapts to student stress levels. \n")
	fmt.Fprintf(&b, "Current stress level: %s\n", declared)
	b.WriteString(stressContext[effective])
	b.WriteString("\n\nGuidelines:\n")
	b.WriteString("- Be encouraging and supportive\n")
	b.WriteString("- Adapt explanation complexity to stress level\n")
	b.WriteString("- If stress is high, suggest taking breaks\n")
	b.WriteString("- Use examples and analogies to clarify concepts\n")
	b.WriteString("- Ask follow-up questions to check understanding\n")
	b.WriteString("- Keep responses conversational and helpful")
	return b.String()
}

// MapError classifies a relay failure into an HTTP status, a user-facing
// apology, and an operator-facing detail. Each failure class has its own
// apology so the client can always render something human.
func MapError(err error) (status int, apology string, detail string) {
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		return http.StatusServiceUnavailable,
			"I'm sorry, the AI tutor service is currently unavailable. Please try again later.",
			"No API key configured"
	case llm.IsTimeout(err):
		return http.StatusServiceUnavailable,
			"I'm taking a bit longer to respond. Please wait a moment and try again.",
			"Request timeout"
	case errors.Is(err, llm.ErrEmptyContent):
		return http.StatusServiceUnavailable,
			"I didn't quite understand that. Could you rephrase your question?",
			"Empty response from AI"
	default:
		if code, ok := llm.StatusCode(err); ok {
			return http.StatusServiceUnavailable,
				"I'm having trouble connecting right now. Please try again in a moment.",
				fmt.Sprintf("API error: %d", code)
		}
		return http.StatusInternalServerError,
			"I'm experiencing some technical difficulties. Please try again later.",
			err.Error()
	}
}
