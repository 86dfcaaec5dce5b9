package quiz

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/studypulse/studypulse-backend/internal/llm"
)

const systemInstructions = "You are a helpful educational content generator. " +
	"Return strictly valid JSON arrays without any commentary."

// Chatter is the slice of the LLM client the generator needs.
type Chatter interface {
	Configured() bool
	Chat(ctx context.Context, msgs []llm.Message, maxTokens int, temperature float32) (llm.Completion, error)
}

// GenerateResult tags its questions with the path that produced them so
// call sites branch on an explicit source rather than on swallowed errors.
type GenerateResult struct {
	Questions []Question `json:"questions"`
	Source    llm.Source `json:"-"`
}

type Generator struct {
	chat         Chatter
	maxQuestions int
	timeout      time.Duration
}

func NewGenerator(chat Chatter, maxQuestions int, timeout time.Duration) *Generator {
	if maxQuestions < 1 {
		maxQuestions = 50
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Generator{chat: chat, maxQuestions: maxQuestions, timeout: timeout}
}

// Generate produces MCQs from extracted text. The remote model is asked
// first when configured; any remote failure, unparseable output, or empty
// result falls through to the deterministic fallback, which always yields
// max(1, n) valid questions.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) GenerateResult {
	n := req.NumQuestions
	if n < 1 {
		n = 1
	}
	if n > g.maxQuestions {
		n = g.maxQuestions
	}

	if g.chat != nil && g.chat.Configured() && strings.TrimSpace(req.Text) != "" {
		questions, err := g.remote(ctx, req.Text, n, req.Difficulty)
		if err != nil {
			log.Printf("quiz: remote generation failed, using fallback: %v", err)
		} else if len(questions) > 0 {
			return GenerateResult{Questions: questions, Source: llm.SourceRemote}
		}
	}
	return GenerateResult{Questions: Fallback(req.Text, n, req.Subject, req.Topics), Source: llm.SourceFallback}
}

func (g *Generator) remote(ctx context.Context, text string, n int, difficulty string) ([]Question, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	comp, err := g.chat.Chat(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: systemInstructions},
		{Role: llm.RoleUser, Content: buildPrompt(text, n, difficulty)},
	}, 2000, 0.4)
	if err != nil {
		return nil, err
	}

	questions, err := ParseQuestions(comp.Content)
	if err != nil {
		return nil, err
	}
	for i := range questions {
		questions[i].ID = uuid.NewString()
	}
	return questions, nil
}

func buildPrompt(text string, n int, difficulty string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d MCQs from the following content.\n", n)
	b.WriteString("Return a JSON array of objects with: \n")
	b.WriteString("question (string), options (array of 4 short strings), correct_answer (one of the options).\n")
	b.WriteString("Avoid explanations or markdown.\n")
	if difficulty != "" {
		fmt.Fprintf(&b, "Target difficulty: %s.\n", difficulty)
	}
	fmt.Fprintf(&b, "\nContent:\n%s", text)
	return b.String()
}
