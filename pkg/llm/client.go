// Package llm provides the chat-completion client used for prose generation
// and intent extraction. The LLM is an oracle, never an authority: every call
// site owns a deterministic fallback, and decisions are made in code.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/moim-labs/moim/pkg/version"
)

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a chat-completion conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options are per-call generation parameters. Zero values fall back to the
// client's configured defaults.
type Options struct {
	Temperature float64
	MaxTokens   int
}

// Client is the completion interface consumed by agents, the intent
// extractor, and the chat orchestrator.
type Client interface {
	Complete(ctx context.Context, messages []Message, opts Options) (string, error)
}

// Config holds HTTP client configuration.
type Config struct {
	Endpoint    string
	APIKey      string
	Model       string
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
}

// HTTPClient talks to a chat-completion endpoint. Two provider response
// shapes are accepted transparently: a bare `{"response": "..."}` object and
// an OpenAI-style choices array.
type HTTPClient struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
	defaults   Options
	logger     *slog.Logger
}

// NewHTTPClient creates a chat-completion client with sane defaults
// (20 s timeout, temperature 0.7, 500 max tokens).
func NewHTTPClient(cfg Config) *HTTPClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.7
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 500
	}
	return &HTTPClient{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		defaults:   Options{Temperature: cfg.Temperature, MaxTokens: cfg.MaxTokens},
		logger:     slog.Default().With("component", "llm-client"),
	}
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Stream      bool      `json:"stream"`
}

// chatResponse is a superset of the supported provider shapes.
type chatResponse struct {
	Response string `json:"response"`
	Choices  []struct {
		Text    string `json:"text"`
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends one chat-completion request and returns the text reply.
func (c *HTTPClient) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("no messages")
	}
	if opts.Temperature <= 0 {
		opts.Temperature = c.defaults.Temperature
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = c.defaults.MaxTokens
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
		Stream:      false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.Full())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read llm response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("llm returned HTTP %d: %s", resp.StatusCode, snippet(raw))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode llm response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("llm error: %s", parsed.Error.Message)
	}

	text := extractText(parsed)
	if text == "" {
		return "", fmt.Errorf("llm returned empty completion")
	}
	return text, nil
}

func extractText(r chatResponse) string {
	if len(r.Choices) > 0 {
		if content := strings.TrimSpace(r.Choices[0].Message.Content); content != "" {
			return content
		}
		if text := strings.TrimSpace(r.Choices[0].Text); text != "" {
			return text
		}
	}
	return strings.TrimSpace(r.Response)
}

func snippet(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
