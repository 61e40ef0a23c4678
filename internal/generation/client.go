// Package generation sends rendered prompts to the upstream chat-completion
// API and turns the reply into a title/content pair.
package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	// SystemPrompt is sent ahead of every rendered template.
	SystemPrompt = "You are FastGenius, an AI assistant that generates high-quality content quickly. " +
		"Always respond with valid JSON format."

	// DefaultBaseURL is the Together chat-completions API root.
	DefaultBaseURL = "https://api.together.xyz/v1/"
	// DefaultModel is the model requested when Settings.Model is empty.
	DefaultModel = "mistralai/Mixtral-8x7B-Instruct-v0.1"

	maxTokens   = 1000
	temperature = 0.7
	topP        = 0.9
)

var (
	// ErrMissingAPIKey is returned by NewClient without a credential.
	ErrMissingAPIKey = errors.New("API key required: set TOGETHER_API_KEY")
	// ErrEmptyChoices is recorded when the upstream reply has no choices.
	ErrEmptyChoices = errors.New("empty choices in completion response")
)

// Settings configures the upstream connection.
type Settings struct {
	APIKey  string
	BaseURL string
	Model   string
	// HTTPClient overrides the transport. Nil uses the SDK default.
	HTTPClient *http.Client
}

// Client handles chat-completion requests for content generation.
type Client struct {
	client openai.Client
	model  string
	logger *slog.Logger
}

// NewClient creates a new generation client.
func NewClient(settings Settings, logger *slog.Logger) (*Client, error) {
	if settings.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL := settings.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	model := settings.Model
	if model == "" {
		model = DefaultModel
	}

	if logger == nil {
		logger = slog.Default()
	}

	opts := []option.RequestOption{
		option.WithAPIKey(settings.APIKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	}
	if settings.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(settings.HTTPClient))
	}

	return &Client{
		client: openai.NewClient(opts...),
		model:  model,
		logger: logger,
	}, nil
}

// Generate sends prompt upstream and extracts a Result from the reply.
// It never returns an error: network failures, non-2xx replies, malformed
// payloads and panics are logged and reported as StatusFailed with ErrorResult.
func (c *Client) Generate(ctx context.Context, prompt string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("content generation panicked: %v", r)
			c.logger.Error("Content generation failed", "error", err)
			out = failed(err)
		}
	}()

	text, err := c.complete(ctx, prompt)
	if err != nil {
		c.logger.Error("Completion request failed", "model", c.model, "error", err)
		return failed(err)
	}

	out = Extract(text)
	c.logger.Debug("Completion received", "model", c.model, "status", out.Status.String(), "chars", len(text))

	return out
}

// complete performs the single upstream call and returns the first choice's text.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemPrompt),
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(maxTokens),
		Temperature: openai.Float(temperature),
		TopP:        openai.Float(topP),
	}

	resp, err := c.client.Chat.Completions.New(ctx, params, option.WithJSONSet("stream", false))
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyChoices
	}

	return resp.Choices[0].Message.Content, nil
}
