package llm

import (
	"context"
	"errors"
	"net"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Role values accepted in chat messages.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

var (
	// ErrNotConfigured means no API credential was supplied at startup.
	// Callers are expected to treat this as a routine condition and take
	// their fallback path, not as a hard failure.
	ErrNotConfigured = errors.New("llm: no API key configured")

	// ErrEmptyContent means the provider answered 2xx but with no text.
	ErrEmptyContent = errors.New("llm: empty response content")
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completion is the text content of a single chat-completion call plus the
// provider's creation timestamp (unix seconds).
type Completion struct {
	Content string
	Created int64
}

// Client is a thin wrapper over an OpenAI-compatible chat-completion
// endpoint (OpenRouter in the default deployment). A Client built without a
// credential is valid: every call returns ErrNotConfigured.
type Client struct {
	api   *openai.Client
	model string
}

func NewClient(apiKey, baseURL, model string) *Client {
	c := &Client{model: model}
	if apiKey == "" {
		return c
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
	c.api = openai.NewClientWithConfig(cfg)
	return c
}

func (c *Client) Configured() bool { return c.api != nil }

// Chat performs one blocking chat-completion call. The caller bounds the
// call with a context deadline; no retries are attempted.
func (c *Client) Chat(ctx context.Context, msgs []Message, maxTokens int, temperature float32) (Completion, error) {
	if c.api == nil {
		return Completion{}, ErrNotConfigured
	}
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
	for _, m := range msgs {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return Completion{}, err
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return Completion{}, ErrEmptyContent
	}
	return Completion{
		Content: resp.Choices[0].Message.Content,
		Created: resp.Created,
	}, nil
}

// IsTimeout reports whether err was caused by the call deadline or a
// network timeout rather than a provider-side rejection.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// StatusCode extracts the HTTP status of a provider error, when present.
func StatusCode(err error) (int, bool) {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode, true
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode, true
	}
	return 0, false
}
