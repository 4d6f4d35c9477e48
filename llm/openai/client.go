// Package openai provides an OpenAI chat completion provider.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	oai "github.com/sashabaranov/go-openai"

	"github.com/ourstudio-se/phonehub/llm"
)

const providerName = "openai"

// DefaultModel is used when a request names no model.
const DefaultModel = "gpt-3.5-turbo"

// Config for the OpenAI provider.
type Config struct {
	APIKey string

	// BaseURL points at an OpenAI-compatible gateway. Empty means OpenAI.
	BaseURL string

	Logger *slog.Logger
}

// Provider implements llm.Provider for the chat completions API.
type Provider struct {
	client *oai.Client
	logger *slog.Logger
}

// New creates an OpenAI provider.
func New(cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	clientCfg := oai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Provider{
		client: oai.NewClientWithConfig(clientCfg),
		logger: logger,
	}, nil
}

// Chat sends the conversation as a single chat completion.
func (p *Provider) Chat(ctx context.Context, req llm.Request) (*llm.Response, error) {
	model := req.Model
	if model == "" {
		model = DefaultModel
	}

	messages := make([]oai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, oai.ChatCompletionMessage{
			Role:    oai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, m := range req.Messages {
		role := oai.ChatMessageRoleUser
		if m.Role == llm.RoleAssistant {
			role = oai.ChatMessageRoleAssistant
		}
		messages = append(messages, oai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	p.logger.Debug("creating chat completion",
		slog.String("model", model),
		slog.Float64("temperature", req.Temperature),
		slog.Int("messages", len(messages)),
	)

	creq := oai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: float32(req.Temperature),
	}
	// go-openai drops a zero temperature from the payload, which the API
	// reads as its own default.
	if req.Temperature == 0 {
		creq.Temperature = math.SmallestNonzeroFloat32
	}
	if req.MaxTokens > 0 {
		creq.MaxTokens = req.MaxTokens
	}

	resp, err := p.client.CreateChatCompletion(ctx, creq)
	if err != nil {
		return nil, classify(err)
	}

	if len(resp.Choices) == 0 {
		return nil, llm.InvalidResponse(providerName, errors.New("no choices returned"))
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return nil, llm.InvalidResponse(providerName, llm.ErrEmptyResponse)
	}

	p.logger.Debug("chat completion successful",
		slog.String("model", model),
		slog.Int("response_len", len(content)),
		slog.Int("prompt_tokens", resp.Usage.PromptTokens),
		slog.Int("completion_tokens", resp.Usage.CompletionTokens),
	)

	return &llm.Response{
		Content: content,
		Usage: llm.Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		},
	}, nil
}

func classify(err error) error {
	var apiErr *oai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return llm.FromStatus(providerName, apiErr.HTTPStatusCode, fmt.Errorf("%s", apiErr.Message))
	}

	var reqErr *oai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return llm.FromStatus(providerName, reqErr.HTTPStatusCode, err)
	}

	return llm.FromTransport(providerName, err)
}
