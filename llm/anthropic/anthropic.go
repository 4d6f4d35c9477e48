// Package anthropic provides an Anthropic LLM provider implementation.
package anthropic

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/ourstudio-se/phonehub/llm"
)

const providerName = "anthropic"

// DefaultModel is used when a request names no model.
const DefaultModel = "claude-3-5-haiku-latest"

const defaultMaxTokens = 512

// Provider implements llm.Provider for Anthropic's API.
type Provider struct {
	client anthropic.Client
}

// Config for the Anthropic provider.
type Config struct {
	APIKey  string
	BaseURL string
}

// New creates a new Anthropic provider with the given config.
// Retries are left to llm.Resilient.
func New(cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("Anthropic API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Provider{
		client: anthropic.NewClient(opts...),
	}, nil
}

// Chat sends a chat request to Anthropic and returns the response.
func (p *Provider) Chat(ctx context.Context, req llm.Request) (*llm.Response, error) {
	model := req.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   int64(maxTokens),
		Messages:    toAnthropicMessages(req.Messages),
		Temperature: anthropic.Float(req.Temperature),
	}

	if req.System != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: req.System},
		}
	}

	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, classify(err)
	}

	result := &llm.Response{
		Usage: llm.Usage{
			InputTokens:  int(resp.Usage.InputTokens),
			OutputTokens: int(resp.Usage.OutputTokens),
		},
	}
	for _, block := range resp.Content {
		if block.Type == "text" {
			result.Content += block.Text
		}
	}

	if result.Content == "" {
		return nil, llm.InvalidResponse(providerName, llm.ErrEmptyResponse)
	}
	return result, nil
}

// toAnthropicMessages converts our messages to Anthropic format. The API
// requires the first turn to be the user's, so leading assistant turns
// are dropped.
func toAnthropicMessages(msgs []llm.Message) []anthropic.MessageParam {
	for len(msgs) > 0 && msgs[0].Role != llm.RoleUser {
		msgs = msgs[1:]
	}
	result := make([]anthropic.MessageParam, 0, len(msgs))

	for _, msg := range msgs {
		switch msg.Role {
		case llm.RoleUser:
			result = append(result, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		case llm.RoleAssistant:
			result = append(result, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}

	return result
}

func classify(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return llm.FromStatus(providerName, apiErr.StatusCode, err)
	}
	return llm.FromTransport(providerName, err)
}
