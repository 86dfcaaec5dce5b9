package tutor

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/studypulse/studypulse-backend/internal/llm"
)

type fakeChat struct {
	content string
	err     error
	gotMsgs []llm.Message
}

func (f *fakeChat) Configured() bool { return true }

func (f *fakeChat) Chat(_ context.Context, msgs []llm.Message, _ int, _ float32) (llm.Completion, error) {
	f.gotMsgs = msgs
	if f.err != nil {
		return llm.Completion{}, f.err
	}
	return llm.Completion{Content: f.content, Created: 1700000001}, nil
}

func history(n int) []llm.Message {
	out := make([]llm.Message, 0, n)
	for i := 0; i < n; i++ {
		role := llm.RoleUser
		if i%2 == 1 {
			role = llm.RoleAssistant
		}
		out = append(out, llm.Message{Role: role, Content: "turn"})
	}
	return out
}

func TestChatBoundsHistory(t *testing.T) {
	chat := &fakeChat{content: "sure"}
	r := NewRelay(chat, time.Second)

	reply, err := r.Chat(context.Background(), ChatRequest{
		Message:     "what is osmosis?",
		StressLevel: "medium",
		History:     history(10),
	})
	if err != nil {
		t.Fatal(err)
	}
	// system + 6 history turns + current message
	if len(chat.gotMsgs) != 8 {
		t.Fatalf("forwarded %d messages, want 8", len(chat.gotMsgs))
	}
	if chat.gotMsgs[0].Role != llm.RoleSystem {
		t.Fatalf("first message role %q", chat.gotMsgs[0].Role)
	}
	last := chat.gotMsgs[len(chat.gotMsgs)-1]
	if last.Role != llm.RoleUser || last.Content != "what is osmosis?" {
		t.Fatalf("last message %+v", last)
	}
	if reply.Response != "sure" || reply.Timestamp != 1700000001 {
		t.Fatalf("reply %+v", reply)
	}
	if reply.StressLevel != "medium" {
		t.Fatalf("stress level %q", reply.StressLevel)
	}
}

func TestChatDropsMalformedHistory(t *testing.T) {
	chat := &fakeChat{content: "ok"}
	r := NewRelay(chat, time.Second)

	_, err := r.Chat(context.Background(), ChatRequest{
		Message: "hi",
		History: []llm.Message{
			{Role: "", Content: "no role"},
			{Role: llm.RoleUser, Content: ""},
			{Role: llm.RoleUser, Content: "kept"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(chat.gotMsgs) != 3 { // system + kept + current
		t.Fatalf("forwarded %d messages, want 3", len(chat.gotMsgs))
	}
}

func TestChatUnknownStressLevelFramesAsLow(t *testing.T) {
	chat := &fakeChat{content: "ok"}
	r := NewRelay(chat, time.Second)

	_, err := r.Chat(context.Background(), ChatRequest{Message: "hi", StressLevel: "panicking"})
	if err != nil {
		t.Fatal(err)
	}
	sys := chat.gotMsgs[0].Content
	if !strings.Contains(sys, "Current stress level: panicking") {
		t.Fatalf("declared level missing: %q", sys)
	}
	if !strings.Contains(sys, stressContext["low"]) {
		t.Fatalf("low framing missing: %q", sys)
	}
}

func TestMapError(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantDetail string
	}{
		{llm.ErrNotConfigured, http.StatusServiceUnavailable, "No API key configured"},
		{context.DeadlineExceeded, http.StatusServiceUnavailable, "Request timeout"},
		{llm.ErrEmptyContent, http.StatusServiceUnavailable, "Empty response from AI"},
		{&openai.APIError{HTTPStatusCode: 502}, http.StatusServiceUnavailable, "API error: 502"},
		{errors.New("wat"), http.StatusInternalServerError, "wat"},
	}
	for _, c := range cases {
		status, apology, detail := MapError(c.err)
		if status != c.wantStatus {
			t.Fatalf("%v: status %d, want %d", c.err, status, c.wantStatus)
		}
		if detail != c.wantDetail {
			t.Fatalf("%v: detail %q, want %q", c.err, detail, c.wantDetail)
		}
		if apology == "" {
			t.Fatalf("%v: empty apology", c.err)
		}
	}
}
