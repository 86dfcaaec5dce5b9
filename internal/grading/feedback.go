package grading

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/studypulse/studypulse-backend/internal/llm"
)

// Chatter is the slice of the LLM client feedback generation needs.
type Chatter interface {
	Configured() bool
	Chat(ctx context.Context, msgs []llm.Message, maxTokens int, temperature float32) (llm.Completion, error)
}

type FeedbackResult struct {
	Text   string
	Source llm.Source
}

type FeedbackGenerator struct {
	chat    Chatter
	timeout time.Duration
}

func NewFeedbackGenerator(chat Chatter, timeout time.Duration) *FeedbackGenerator {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &FeedbackGenerator{chat: chat, timeout: timeout}
}

// Feedback asks the remote model for short revision guidance, falling back
// to the canned rubric on any failure. The result is never empty.
func (f *FeedbackGenerator) Feedback(ctx context.Context, accuracy, avgStress float64) FeedbackResult {
	if f.chat != nil && f.chat.Configured() {
		ctx, cancel := context.WithTimeout(ctx, f.timeout)
		defer cancel()
		comp, err := f.chat.Chat(ctx, []llm.Message{
			{Role: llm.RoleSystem, Content: "You are a helpful tutor."},
			{Role: llm.RoleUser, Content: fmt.Sprintf(
				"A student scored %v%% with average stress level %v. "+
					"Give concise, actionable revision guidance in 3-5 bullet points.",
				accuracy, avgStress)},
		}, 400, 0.5)
		if err == nil {
			return FeedbackResult{Text: comp.Content, Source: llm.SourceRemote}
		}
		log.Printf("grading: remote feedback failed, using rubric: %v", err)
	}
	return FeedbackResult{Text: FallbackFeedback(accuracy), Source: llm.SourceFallback}
}

// FallbackFeedback maps every accuracy value to exactly one of four canned
// messages. Band edges are inclusive at 90, 70 and 50.
func FallbackFeedback(accuracy float64) string {
	switch {
	case accuracy >= 90:
		return "Excellent work! You've mastered this material. Consider exploring more advanced topics."
	case accuracy >= 70:
		return "Good job! You're on the right track. Review the incorrect answers and practice similar problems."
	case accuracy >= 50:
		return "Keep practicing! Focus on understanding the fundamental concepts before moving to advanced topics."
	default:
		return "Don't worry, learning takes time! Review the material thoroughly and try again. Consider breaking down complex topics into smaller parts."
	}
}
