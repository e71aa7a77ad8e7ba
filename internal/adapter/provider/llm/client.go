// Package llm implements the hosted text-generation provider on top of the
// Anthropic Messages API.
package llm

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/kceleski/ava-care-compass/internal/config"
	"github.com/kceleski/ava-care-compass/internal/domain"
	"github.com/kceleski/ava-care-compass/internal/provider"
)

// Client sends prompts to the model. Every call is made once: the SDK's
// built-in retries are disabled.
type Client struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
	log         *slog.Logger
}

// NewClient creates a Client from LLMConfig.
func NewClient(cfg config.LLMConfig, logger *slog.Logger) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		client:      anthropic.NewClient(opts...),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		log:         logger.With("adapter", "llm"),
	}
}

// Complete sends the system prompt and conversation history and returns the
// concatenated text of the reply. Errors are wrapped in domain.ErrProvider.
func (c *Client) Complete(ctx context.Context, system string, history []provider.Message) (string, error) {
	if len(history) == 0 {
		return "", errors.New("llm: empty conversation")
	}

	msgs := make([]anthropic.MessageParam, 0, len(history))
	for _, m := range history {
		block := anthropic.NewTextBlock(m.Content)
		if m.Role == domain.MessageRoleAssistant {
			msgs = append(msgs, anthropic.NewAssistantMessage(block))
		} else {
			msgs = append(msgs, anthropic.NewUserMessage(block))
		}
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   c.maxTokens,
		Messages:    msgs,
		Temperature: anthropic.Float(c.temperature),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		c.log.ErrorContext(ctx, "llm request failed", slog.String("model", c.model), slog.String("error", err.Error()))
		return "", domain.NewProviderError("llm", "messages call", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", domain.NewProviderError("llm", "empty response", nil)
	}

	c.log.DebugContext(ctx, "llm response",
		slog.String("model", c.model),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	return sb.String(), nil
}
