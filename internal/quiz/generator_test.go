package quiz

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/studypulse/studypulse-backend/internal/llm"
)

type fakeChat struct {
	configured bool
	content    string
	err        error

	gotMsgs      []llm.Message
	gotMaxTokens int
	calls        int
}

func (f *fakeChat) Configured() bool { return f.configured }

func (f *fakeChat) Chat(_ context.Context, msgs []llm.Message, maxTokens int, _ float32) (llm.Completion, error) {
	f.calls++
	f.gotMsgs = msgs
	f.gotMaxTokens = maxTokens
	if f.err != nil {
		return llm.Completion{}, f.err
	}
	return llm.Completion{Content: f.content, Created: 1700000000}, nil
}

func TestGenerateRemotePath(t *testing.T) {
	chat := &fakeChat{configured: true, content: strictArray}
	g := NewGenerator(chat, 50, time.Second)

	res := g.Generate(context.Background(), GenerateRequest{Text: "cell biology notes", NumQuestions: 2})
	if res.Source != llm.SourceRemote {
		t.Fatalf("source = %q, want remote", res.Source)
	}
	if len(res.Questions) != 2 {
		t.Fatalf("got %d questions", len(res.Questions))
	}
	for _, q := range res.Questions {
		if q.ID == "" {
			t.Fatal("remote question missing id")
		}
	}
	if chat.gotMaxTokens != 2000 {
		t.Fatalf("max tokens = %d", chat.gotMaxTokens)
	}
	if !strings.Contains(chat.gotMsgs[1].Content, "Generate 2 MCQs") {
		t.Fatalf("prompt missing count: %q", chat.gotMsgs[1].Content)
	}
}

func TestGenerateFallsBackOnRemoteError(t *testing.T) {
	chat := &fakeChat{configured: true, err: errors.New("boom")}
	g := NewGenerator(chat, 50, time.Second)

	res := g.Generate(context.Background(), GenerateRequest{Text: "neurons and synapses everywhere", NumQuestions: 3})
	if res.Source != llm.SourceFallback {
		t.Fatalf("source = %q, want fallback", res.Source)
	}
	if len(res.Questions) != 3 {
		t.Fatalf("got %d questions", len(res.Questions))
	}
}

func TestGenerateFallsBackOnUnparseableOutput(t *testing.T) {
	chat := &fakeChat{configured: true, content: "I am unable to produce JSON today."}
	g := NewGenerator(chat, 50, time.Second)

	res := g.Generate(context.Background(), GenerateRequest{Text: "thermodynamics", NumQuestions: 1})
	if res.Source != llm.SourceFallback {
		t.Fatalf("source = %q, want fallback", res.Source)
	}
}

func TestGenerateUnconfiguredSkipsRemote(t *testing.T) {
	chat := &fakeChat{configured: false}
	g := NewGenerator(chat, 50, time.Second)

	res := g.Generate(context.Background(), GenerateRequest{Text: "anything", NumQuestions: 2})
	if chat.calls != 0 {
		t.Fatalf("remote called %d times", chat.calls)
	}
	if res.Source != llm.SourceFallback {
		t.Fatalf("source = %q", res.Source)
	}
}

func TestGenerateEmptyTextSkipsRemote(t *testing.T) {
	chat := &fakeChat{configured: true, content: strictArray}
	g := NewGenerator(chat, 50, time.Second)

	res := g.Generate(context.Background(), GenerateRequest{Text: "   ", NumQuestions: 2})
	if chat.calls != 0 {
		t.Fatalf("remote called for empty text")
	}
	if res.Source != llm.SourceFallback {
		t.Fatalf("source = %q", res.Source)
	}
}

func TestGenerateClampsCount(t *testing.T) {
	chat := &fakeChat{configured: false}
	g := NewGenerator(chat, 10, time.Second)

	if got := g.Generate(context.Background(), GenerateRequest{NumQuestions: 10000}); len(got.Questions) != 10 {
		t.Fatalf("upper clamp: got %d", len(got.Questions))
	}
	if got := g.Generate(context.Background(), GenerateRequest{NumQuestions: -5}); len(got.Questions) != 1 {
		t.Fatalf("lower clamp: got %d", len(got.Questions))
	}
}

func TestBuildPromptIncludesDifficulty(t *testing.T) {
	p := buildPrompt("body", 4, "hard")
	if !strings.Contains(p, "Target difficulty: hard.") {
		t.Fatalf("difficulty missing from prompt: %q", p)
	}
	if !strings.Contains(p, "Content:\nbody") {
		t.Fatalf("content missing from prompt: %q", p)
	}
}
